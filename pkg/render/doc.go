// Package render turns vdom trees into HTML on the server.
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(node)
//
// Elements carrying event handlers get a data-hid attribute and a
// data-on-<event> marker per handler. The handlers are kept in the renderer,
// keyed by hid and prop name, so an event reported by the browser can be
// routed back with Dispatch:
//
//	err := r.Dispatch(vdom.Event{HID: "h2", Type: "onclick"})
//
// Text and attribute values are escaped. KindRaw nodes are written as is
// and must only carry trusted markup.
package render
