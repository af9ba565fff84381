package vdom

import "fmt"

// Event is what the client reports when a bound DOM event fires.
type Event struct {
	// Type is the handler prop, e.g. "onclick".
	Type string `json:"event"`
	// HID is the hydration id of the element the handler is bound to.
	HID string `json:"hid"`
	// Value carries the element's value for input and change events.
	Value string `json:"value,omitempty"`
}

func event(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

func OnClick(handler any) EventHandler   { return event("click", handler) }
func OnInput(handler any) EventHandler   { return event("input", handler) }
func OnChange(handler any) EventHandler  { return event("change", handler) }
func OnKeyDown(handler any) EventHandler { return event("keydown", handler) }

// OnClickOutside fires when a click lands outside the element and its
// descendants. The client runtime reports it for every element carrying
// the handler.
func OnClickOutside(handler any) EventHandler { return event("clickoutside", handler) }

// IsHandler reports whether v is a supported handler function.
func IsHandler(v any) bool {
	switch v.(type) {
	case func(), func(Event), func(string):
		return true
	}
	return false
}

// Invoke calls handler with ev, adapting to the handler's signature.
func Invoke(handler any, ev Event) error {
	switch h := handler.(type) {
	case func():
		h()
	case func(Event):
		h(ev)
	case func(string):
		h(ev.Value)
	default:
		return fmt.Errorf("vdom: unsupported handler type %T", handler)
	}
	return nil
}
