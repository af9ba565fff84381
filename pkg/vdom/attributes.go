package vdom

import (
	"fmt"
	"strings"
)

func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// AttrOf sets an arbitrary attribute.
func AttrOf(key string, value any) Attr { return attr(key, value) }

func ID(id string) Attr             { return attr("id", id) }
func StyleAttr(style string) Attr   { return attr("style", style) }
func Data(key, value string) Attr   { return attr("data-"+key, value) }
func Role(role string) Attr         { return attr("role", role) }
func Href(url string) Attr          { return attr("href", url) }
func Rel(rel string) Attr           { return attr("rel", rel) }
func Src(url string) Attr           { return attr("src", url) }
func Name(name string) Attr         { return attr("name", name) }
func Value(value string) Attr       { return attr("value", value) }
func Type(t string) Attr            { return attr("type", t) }
func Charset(cs string) Attr        { return attr("charset", cs) }
func Content(c string) Attr         { return attr("content", c) }
func TabIndex(i int) Attr           { return attr("tabindex", i) }
func AriaLabel(label string) Attr   { return attr("aria-label", label) }
func AriaChecked(on bool) Attr      { return attr("aria-checked", on) }
func AriaSelected(on bool) Attr     { return attr("aria-selected", on) }
func AriaExpanded(open bool) Attr   { return attr("aria-expanded", open) }
func AriaHasPopup(kind string) Attr { return attr("aria-haspopup", kind) }

// Boolean attributes. A false argument renders nothing.

func Checked(on bool) Attr  { return attr("checked", on) }
func Disabled(on bool) Attr { return attr("disabled", on) }
func Selected(on bool) Attr { return attr("selected", on) }
func Hidden(on bool) Attr   { return attr("hidden", on) }

// Class joins non-empty class names.
func Class(classes ...string) Attr {
	return attr("class", joinNonEmpty(classes))
}

// ClassIf is a class name applied when On is true.
type ClassIf struct {
	Name string
	On   bool
}

// Classes builds a class attribute from a base class plus conditional ones.
//
//	Classes("melt-radio", ClassIf{"melt-radio--checked", checked})
func Classes(base string, conds ...ClassIf) Attr {
	names := []string{base}
	for _, c := range conds {
		if c.On {
			names = append(names, c.Name)
		}
	}
	return Class(names...)
}

// Key sets the reconciliation key.
func Key(key any) Attr {
	return attr("key", fmt.Sprintf("%v", key))
}

func joinNonEmpty(parts []string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
