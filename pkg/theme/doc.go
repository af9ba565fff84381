// Package theme holds the colour palettes melt widgets read their CSS
// custom properties from.
//
// A theme is provided to a component subtree through the reactive owner
// and read back with Use, so switching the provided signal restyles every
// widget below it:
//
//	sig := reactive.NewSignal(theme.Dark())
//	theme.Provide(sig)
//	...
//	th := theme.Use(theme.Light) // inside a widget
//
// Themes can also be loaded from YAML or TOML files; fields missing from
// the file keep the light theme's values.
package theme
