package vdom

import "strings"

// VKind discriminates node types.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, ...
	KindText                   // escaped text
	KindFragment               // children without a wrapper
	KindComponent              // nested Component, rendered lazily
	KindRaw                    // unescaped HTML
)

func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is one node of the tree.
type VNode struct {
	Kind     VKind
	Tag      string
	Props    Props
	Children []*VNode
	Key      string
	Text     string    // KindText and KindRaw
	Comp     Component // KindComponent
	HID      string    // assigned by the renderer
}

// Props holds attributes and "on*" event handlers of an element.
type Props map[string]any

// Handlers returns the event handler props of the node, keyed by prop name.
func (v *VNode) Handlers() map[string]any {
	if v == nil || v.Kind != KindElement {
		return nil
	}
	var out map[string]any
	for key, value := range v.Props {
		if !strings.HasPrefix(key, "on") || !IsHandler(value) {
			continue
		}
		if out == nil {
			out = make(map[string]any)
		}
		out[key] = value
	}
	return out
}

// IsInteractive reports whether the node carries event handlers.
func (v *VNode) IsInteractive() bool {
	return len(v.Handlers()) > 0
}

// Walk visits n and its element, fragment and text descendants depth first.
// Components are not expanded.
func Walk(n *VNode, fn func(*VNode)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// Attr is one attribute.
type Attr struct {
	Key   string
	Value any
}

// EventHandler binds a handler to an "on*" prop.
type EventHandler struct {
	Event   string
	Handler any
}

// Component is anything that renders to a node.
type Component interface {
	Render() *VNode
}

type funcComponent struct {
	render func() *VNode
}

func (f *funcComponent) Render() *VNode { return f.render() }

// Func turns a render function into a Component.
func Func(render func() *VNode) Component {
	return &funcComponent{render: render}
}
