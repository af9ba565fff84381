// Package errors provides the coded, user-facing errors the melt CLI and
// gallery server report.
//
// Each code maps to a registered template with a category, a short
// message, a longer detail and a documentation link:
//
//	err := errors.New("M004").
//	    WithDetail(`"theme.json" is not a theme file`).
//	    WithSuggestion("Use a .yaml, .yml or .toml file").
//	    Wrap(cause)
//
//	fmt.Fprint(os.Stderr, err.Format())
//	// ERROR M004: Unknown theme file format
//	//
//	//   "theme.json" is not a theme file
//	//
//	//   Hint: Use a .yaml, .yml or .toml file
//	//
//	//   Learn more: https://melt-ui.dev/errors/M004
//
// Library packages do not use this package; they return sentinel errors
// that callers map onto codes with FromError.
package errors
