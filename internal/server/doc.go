// Package server serves the component gallery.
//
// Routes:
//
//	GET /              demo index
//	GET /demos/{name}  demo page with its initial render
//	GET /ws/{name}     live channel for one demo session
//	GET /metrics       Prometheus metrics
//	GET /healthz       liveness
//
// Each websocket connection owns one gallery.Session and handles all of its
// events on a single goroutine. The client sends
//
//	{"hid":"h3","event":"onclick","value":"..."}
//
// and receives the re-rendered live region as {"html":"..."}, or
// {"error":"..."} when an event could not be handled. The first message on
// a connection is the session's initial render, so hydration ids always
// refer to the connection's own session.
//
// With Config.Watch set, the theme file is watched and every open session
// re-renders when it changes.
package server
