package theme

import "github.com/meltui/melt/pkg/reactive"

type contextKey struct{}

// Provide makes th the theme of the current owner and its descendants.
func Provide(th reactive.Accessor[Theme]) {
	reactive.ProvideContext(contextKey{}, th)
}

// Use returns the nearest provided theme. When none is provided it returns
// a fresh signal holding fallback().
func Use(fallback func() Theme) reactive.Accessor[Theme] {
	if th, ok := reactive.UseContext[reactive.Accessor[Theme]](contextKey{}); ok && th != nil {
		return th
	}
	return reactive.NewSignal(fallback())
}

// Vars memoizes a CSS custom-property string built from th.
func Vars(th reactive.Accessor[Theme], build func(Theme) string) *reactive.Memo[string] {
	return reactive.NewMemo(func() string {
		return build(th.Get())
	})
}
