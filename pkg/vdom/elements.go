package vdom

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// IsVoidElement reports whether tag has no closing tag.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// El creates an element with an arbitrary tag.
func El(tag string, args ...any) *VNode {
	return createElement(tag, args)
}

// createElement sorts args into props and children.
// Accepted: nil, Attr, []Attr, EventHandler, *VNode, []*VNode, Component,
// string. Anything else is ignored.
func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:  KindElement,
		Tag:   tag,
		Props: make(Props),
	}
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
		case Attr:
			node.setAttr(v)
		case []Attr:
			for _, a := range v {
				node.setAttr(a)
			}
		case EventHandler:
			if v.Handler != nil {
				node.Props[v.Event] = v.Handler
			}
		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*VNode:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}
		case Component:
			node.Children = append(node.Children, &VNode{Kind: KindComponent, Comp: v})
		case string:
			node.Children = append(node.Children, Text(v))
		}
	}
	return node
}

func (v *VNode) setAttr(a Attr) {
	if a.Key == "" {
		return
	}
	if a.Key == "key" {
		if s, ok := a.Value.(string); ok {
			v.Key = s
		}
		return
	}
	// Repeated class attributes accumulate.
	if a.Key == "class" {
		if prev, ok := v.Props["class"].(string); ok && prev != "" {
			if s, ok := a.Value.(string); ok {
				if s != "" {
					v.Props["class"] = prev + " " + s
				}
				return
			}
		}
	}
	v.Props[a.Key] = a.Value
}

func Html(args ...any) *VNode   { return createElement("html", args) }
func Head(args ...any) *VNode   { return createElement("head", args) }
func Body(args ...any) *VNode   { return createElement("body", args) }
func Title(args ...any) *VNode  { return createElement("title", args) }
func Meta(args ...any) *VNode   { return createElement("meta", args) }
func Link(args ...any) *VNode   { return createElement("link", args) }
func Script(args ...any) *VNode { return createElement("script", args) }
func Style(args ...any) *VNode  { return createElement("style", args) }

func Header(args ...any) *VNode  { return createElement("header", args) }
func Main(args ...any) *VNode    { return createElement("main", args) }
func Nav(args ...any) *VNode     { return createElement("nav", args) }
func Section(args ...any) *VNode { return createElement("section", args) }
func Aside(args ...any) *VNode   { return createElement("aside", args) }
func H1(args ...any) *VNode      { return createElement("h1", args) }
func H2(args ...any) *VNode      { return createElement("h2", args) }
func H3(args ...any) *VNode      { return createElement("h3", args) }

func Div(args ...any) *VNode  { return createElement("div", args) }
func P(args ...any) *VNode    { return createElement("p", args) }
func Span(args ...any) *VNode { return createElement("span", args) }
func Pre(args ...any) *VNode  { return createElement("pre", args) }
func Code(args ...any) *VNode { return createElement("code", args) }
func Ul(args ...any) *VNode   { return createElement("ul", args) }
func Li(args ...any) *VNode   { return createElement("li", args) }
func A(args ...any) *VNode    { return createElement("a", args) }
func I(args ...any) *VNode    { return createElement("i", args) }

func Button(args ...any) *VNode { return createElement("button", args) }
func Input(args ...any) *VNode  { return createElement("input", args) }
func Label(args ...any) *VNode  { return createElement("label", args) }
