package ui

import (
	"github.com/meltui/melt/pkg/model"
	"github.com/meltui/melt/pkg/styles"
	"github.com/meltui/melt/pkg/theme"
	"github.com/meltui/melt/pkg/vdom"
)

// SelectItem is one option of a Select.
type SelectItem[T comparable] struct {
	Label string
	Value T
}

// SelectConfig configures a Select.
type SelectConfig[T comparable] struct {
	// Value is the selected option value. A value that matches no option
	// shows the placeholder.
	Value model.Model[T]

	Options []SelectItem[T]

	// MenuVisible holds whether the dropdown is open. Optional; when unset
	// the select keeps it in a private cell.
	MenuVisible model.Model[bool]

	Placeholder string
	Class       string

	// OnSelect runs after an option was picked.
	OnSelect func(SelectItem[T])
}

// Select renders a trigger that opens a dropdown of options. Picking an
// option sets Value and closes the menu; a click anywhere outside the
// trigger and the menu closes it too.
func Select[T comparable](cfg SelectConfig[T]) *vdom.VNode {
	visible := cfg.MenuVisible
	if visible.IsDisposed() {
		visible = model.Default[bool]()
	}
	value := cfg.Value

	styles.MountBuiltin("select")
	th := theme.Use(theme.Light)
	vars := theme.Vars(th, theme.SelectVars)
	menuVars := theme.Vars(th, theme.SelectMenuVars)

	current := value.Get()
	open := visible.Get()

	label := cfg.Placeholder
	for _, opt := range cfg.Options {
		if opt.Value == current {
			label = opt.Label
			break
		}
	}

	hide := func() { visible.Set(false) }

	var outside any
	if open {
		outside = vdom.OnClickOutside(hide)
	}

	return vdom.Div(
		vdom.Class("melt-select-wrapper"),
		outside,
		vdom.Div(
			vdom.Class("melt-select", cfg.Class),
			vdom.StyleAttr(vars.Get()),
			vdom.AriaHasPopup("listbox"),
			vdom.AriaExpanded(open),
			vdom.OnClick(func() { visible.Set(true) }),
			label,
		),
		vdom.When(open, func() *vdom.VNode {
			return vdom.Div(
				vdom.Class("melt-select-menu"),
				vdom.StyleAttr(menuVars.Get()),
				vdom.Role("listbox"),
				vdom.Range(cfg.Options, func(opt SelectItem[T], _ int) *vdom.VNode {
					selected := opt.Value == current
					return vdom.Div(
						vdom.Classes("melt-select-menu__item", vdom.ClassIf{Name: "melt-select-menu__item--selected", On: selected}),
						vdom.Role("option"),
						vdom.AriaSelected(selected),
						vdom.OnClick(func() {
							value.Set(opt.Value)
							hide()
							if cfg.OnSelect != nil {
								cfg.OnSelect(opt)
							}
						}),
						opt.Label,
					)
				}),
			)
		}),
	)
}
