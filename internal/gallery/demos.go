package gallery

import (
	"log/slog"

	"github.com/meltui/melt/pkg/model"
	"github.com/meltui/melt/pkg/reactive"
	"github.com/meltui/melt/pkg/store"
	"github.com/meltui/melt/pkg/ui"
	"github.com/meltui/melt/pkg/vdom"
)

// Default returns a registry with every built-in demo.
func Default() (*Registry, error) {
	r := NewRegistry()
	for _, d := range []Demo{
		{Name: "radio", Setup: radioDemo},
		{Name: "select", Setup: selectDemo},
		{Name: "tabbar", Setup: tabbarDemo},
		{Name: "button", Setup: buttonDemo},
	} {
		if err := r.Register(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}

type order struct {
	Fruit string
	Count int
}

func radioDemo() View {
	checked := model.New(false)

	o := store.New(order{Fruit: "apple", Count: 1})
	fruit := model.FromField[string](store.At(o, func(o *order) *string { return &o.Fruit }))

	return func() *vdom.VNode {
		return vdom.Div(
			ui.Radio(ui.RadioValue(checked), ui.RadioLabel("Click me")),
			vdom.P(vdom.Textf("checked: %v", checked.Get())),
			ui.RadioGroup(fruit,
				ui.RadioItem{Value: "apple", Label: "Apple"},
				ui.RadioItem{Value: "pear", Label: "Pear"},
			),
			vdom.P(vdom.Textf("order: %+v", o.Get())),
		)
	}
}

func selectDemo() View {
	value := model.New("")
	return func() *vdom.VNode {
		return vdom.Div(
			ui.Select(ui.SelectConfig[string]{
				Value:       value,
				Placeholder: "Choose a colour",
				Options: []ui.SelectItem[string]{
					{Label: "Red", Value: "red"},
					{Label: "Green", Value: "green"},
					{Label: "Blue", Value: "blue"},
				},
			}),
			vdom.P(vdom.Textf("value: %q", value.Get())),
		)
	}
}

func tabbarDemo() View {
	selected := reactive.NewSignal("o")
	tabs := model.FromSignal(selected)
	return func() *vdom.VNode {
		return vdom.Div(
			vdom.StyleAttr("min-height: 200px; background: #f5f5f5"),
			vdom.P(selected.Get()),
			ui.Tabbar(tabs,
				ui.TabbarItem{Name: "a", Label: "and"},
				ui.TabbarItem{Name: "i", Label: "if"},
				ui.TabbarItem{Name: "o", Label: "or", Icon: "icon-close"},
			),
		)
	}
}

func buttonDemo() View {
	count := model.WithCallback(nil, func(n int) {
		slog.Debug("gallery: count changed", "count", n)
	})
	return func() *vdom.VNode {
		return vdom.Div(
			ui.Button(
				ui.ButtonVariantOf(ui.ButtonPrimary),
				ui.ButtonOnClick(func() {
					count.Update(func(n *int) bool { *n++; return true })
				}),
				ui.ButtonChildren("Add"),
			),
			ui.Button(
				ui.ButtonDisabled(count.Get() == 0),
				ui.ButtonOnClick(func() {
					prev, _ := model.UpdateWith(count, func(n *int) (bool, int) {
						was := *n
						*n = 0
						return was != 0, was
					})
					slog.Debug("gallery: count reset", "was", prev)
				}),
				ui.ButtonChildren("Reset"),
			),
			vdom.P(vdom.Textf("count: %d", count.Get())),
		)
	}
}
