package render

// Inline elements get no newline around their children in pretty mode.
var inlineElements = map[string]bool{
	"a": true, "b": true, "code": true, "em": true, "i": true,
	"label": true, "small": true, "span": true, "strong": true,
}

// Boolean attributes render as a bare name when true and not at all when
// false.
var booleanAttrs = map[string]bool{
	"checked":  true,
	"disabled": true,
	"hidden":   true,
	"open":     true,
	"readonly": true,
	"required": true,
	"selected": true,
}

func isInlineElement(tag string) bool { return inlineElements[tag] }

func isBooleanAttr(name string) bool { return booleanAttrs[name] }
