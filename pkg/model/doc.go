// Package model provides Model, the two-way bindable value that stateful
// melt components take for every property the caller may want to control.
//
// A component declares the property as a Model and reads and writes it
// without knowing where the state lives:
//
//	func Radio(checked model.Model[bool], label string) *vdom.VNode
//
// Callers choose the shape that fits them:
//
//	ui.Radio(model.New(false), "private")         // component owns the state
//	ui.Radio(model.FromSignal(agreed), "shared")  // caller and component share a cell
//	ui.Radio(model.FromField(prefs.Agreed), "")   // slot of a store
//	ui.Radio(model.WithSink(&initial, onChange), "") // value plus change callback
//
// A Model is a small value. Copies address the same storage.
package model
