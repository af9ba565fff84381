// Package vdom is the node tree melt components render into.
//
// Elements are built with variadic factories that accept attributes, event
// handlers, child nodes, components and plain strings in any order:
//
//	Div(Class("melt-radio"), OnClick(toggle),
//	    Input(Type("radio"), Checked(on)),
//	    Span(Class("melt-radio__label"), "private"),
//	)
//
// nil arguments are skipped, which keeps conditional attributes inline.
// The tree is rendered to HTML by package render; handlers stay on the
// server and are reached again through the hydration id the renderer
// assigns to their element.
package vdom
