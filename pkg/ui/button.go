package ui

import (
	"github.com/meltui/melt/pkg/styles"
	"github.com/meltui/melt/pkg/theme"
	"github.com/meltui/melt/pkg/vdom"
)

// ButtonVariant selects the button style.
type ButtonVariant string

const (
	ButtonDefault ButtonVariant = "default"
	ButtonPrimary ButtonVariant = "primary"
)

// ButtonOption configures a Button.
type ButtonOption func(*buttonConfig)

type buttonConfig struct {
	variant   ButtonVariant
	disabled  bool
	className string
	onClick   func()
	children  []any
}

func ButtonVariantOf(v ButtonVariant) ButtonOption {
	return func(c *buttonConfig) { c.variant = v }
}

func ButtonDisabled(disabled bool) ButtonOption {
	return func(c *buttonConfig) { c.disabled = disabled }
}

func ButtonClass(className string) ButtonOption {
	return func(c *buttonConfig) { c.className = className }
}

func ButtonOnClick(handler func()) ButtonOption {
	return func(c *buttonConfig) { c.onClick = handler }
}

func ButtonChildren(children ...any) ButtonOption {
	return func(c *buttonConfig) { c.children = children }
}

// Button renders a button. A disabled button has no click handler.
func Button(opts ...ButtonOption) *vdom.VNode {
	cfg := buttonConfig{variant: ButtonDefault}
	for _, opt := range opts {
		opt(&cfg)
	}

	styles.MountBuiltin("button")
	vars := theme.Vars(theme.Use(theme.Light), theme.ButtonVars)

	args := []any{
		vdom.Classes("melt-button", vdom.ClassIf{Name: "melt-button--primary", On: cfg.variant == ButtonPrimary}),
		vdom.Class(cfg.className),
		vdom.StyleAttr(vars.Get()),
		vdom.Type("button"),
		vdom.Disabled(cfg.disabled),
	}
	if cfg.onClick != nil && !cfg.disabled {
		args = append(args, vdom.OnClick(cfg.onClick))
	}
	args = append(args, cfg.children...)
	return vdom.El("button", args...)
}
