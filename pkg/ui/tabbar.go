package ui

import (
	"github.com/meltui/melt/pkg/model"
	"github.com/meltui/melt/pkg/styles"
	"github.com/meltui/melt/pkg/theme"
	"github.com/meltui/melt/pkg/vdom"
)

// TabbarItem is one tab.
type TabbarItem struct {
	Name  string
	Label string
	// Icon is a CSS class for an icon font glyph, rendered above the label.
	Icon string
}

// Tabbar renders a bottom navigation bar. selected holds the Name of the
// active item; clicking an item selects it.
func Tabbar(selected model.Model[string], items ...TabbarItem) *vdom.VNode {
	styles.MountBuiltin("tabbar")
	vars := theme.Vars(theme.Use(theme.Light), theme.TabbarVars)

	active := selected.Get()
	return vdom.Div(
		vdom.Class("melt-tabbar"),
		vdom.StyleAttr(vars.Get()),
		vdom.Role("tablist"),
		vdom.Range(items, func(item TabbarItem, _ int) *vdom.VNode {
			on := item.Name == active
			return vdom.Div(
				vdom.Classes("melt-tabbar-item", vdom.ClassIf{Name: "melt-tabbar-item--selected", On: on}),
				vdom.Key(item.Name),
				vdom.Role("tab"),
				vdom.AriaSelected(on),
				vdom.OnClick(func() { selected.Set(item.Name) }),
				vdom.When(item.Icon != "", func() *vdom.VNode {
					return vdom.I(vdom.Class("melt-tabbar-item__icon", item.Icon))
				}),
				vdom.Div(vdom.Class("melt-tabbar-item__content"), item.Label),
			)
		}),
	)
}
