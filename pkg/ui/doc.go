// Package ui contains melt's widgets.
//
// Every widget takes its state as a model.Model, so callers choose how the
// state is held: a private value, a shared signal, a store field or a value
// plus change callback.
//
//	checked := model.New(false)
//	ui.Radio(ui.RadioValue(checked), ui.RadioLabel("Subscribe"))
//
// Widgets must be rendered inside a reactive owner. They read the theme
// provided with theme.Provide, falling back to the light theme, and mount
// their stylesheet into the sheet provided with styles.Provide.
package ui
