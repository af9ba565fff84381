// Package store holds structured state in a single reactive cell and hands
// out read/write projections into its slots.
//
//	type Settings struct {
//	    Theme string
//	    Tabs  struct{ Selected string }
//	}
//
//	settings := store.New(Settings{Theme: "light"})
//	theme := store.At(settings, func(s *Settings) *string { return &s.Theme })
//	tabs := store.At(settings, func(s *Settings) *struct{ Selected string } { return &s.Tabs })
//	selected := store.Sub(tabs, func(t *struct{ Selected string }) *string { return &t.Selected })
//
//	selected.Set("i")
//	theme.Get() // tracked read of the whole store, projected to Theme
//
// Fields share the store's storage and liveness: two fields over the same
// slot are interchangeable, and disposing the store's owner disposes every
// field. Reads track the store as a whole, so an observer of one field
// re-runs when any slot of the store is written.
package store
