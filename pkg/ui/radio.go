package ui

import (
	"strconv"

	"github.com/meltui/melt/pkg/model"
	"github.com/meltui/melt/pkg/styles"
	"github.com/meltui/melt/pkg/theme"
	"github.com/meltui/melt/pkg/vdom"
)

// RadioOption configures a Radio.
type RadioOption func(*radioConfig)

type radioConfig struct {
	value     model.Model[bool]
	hasValue  bool
	label     []any
	className string
}

// RadioValue binds the checked state.
func RadioValue(m model.Model[bool]) RadioOption {
	return func(c *radioConfig) {
		c.value = m
		c.hasValue = true
	}
}

// RadioLabel sets the label content.
func RadioLabel(children ...any) RadioOption {
	return func(c *radioConfig) {
		c.label = children
	}
}

// RadioClass adds CSS classes.
func RadioClass(className string) RadioOption {
	return func(c *radioConfig) {
		c.className = className
	}
}

// Radio renders a radio button. Clicking it toggles the bound value.
func Radio(opts ...RadioOption) *vdom.VNode {
	cfg := radioConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.hasValue {
		cfg.value = model.Default[bool]()
	}

	styles.MountBuiltin("radio")
	vars := theme.Vars(theme.Use(theme.Light), theme.RadioVars)

	value := cfg.value
	checked := value.Get()

	return vdom.Div(
		vdom.Classes("melt-radio", vdom.ClassIf{Name: "melt-radio--checked", On: checked}),
		vdom.Class(cfg.className),
		vdom.StyleAttr(vars.Get()),
		vdom.Role("radio"),
		vdom.AriaChecked(checked),
		vdom.OnClick(func() {
			value.Set(!value.Peek())
		}),
		vdom.Input(vdom.Class("melt-radio__input"), vdom.Type("radio"), vdom.Value(strconv.FormatBool(checked)), vdom.Checked(checked)),
		vdom.Div(vdom.Class("melt-radio__dot")),
		vdom.Div(append([]any{vdom.Class("melt-radio__label")}, cfg.label...)...),
	)
}

// RadioItem is one choice of a RadioGroup.
type RadioItem struct {
	Value string
	Label string
}

// RadioGroup renders one Radio per item. Checking an item sets value to the
// item's Value; unchecking the current item leaves value as is.
func RadioGroup(value model.Model[string], items ...RadioItem) *vdom.VNode {
	current := value.Get()
	radios := vdom.Range(items, func(item RadioItem, _ int) *vdom.VNode {
		checked := current == item.Value
		m := model.WithCallback(&checked, func(on bool) {
			if on {
				value.Set(item.Value)
			}
		})
		return Radio(RadioValue(m), RadioLabel(item.Label))
	})
	return vdom.Div(vdom.Class("melt-radio-group"), vdom.Role("radiogroup"), radios)
}
