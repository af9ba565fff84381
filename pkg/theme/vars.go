package theme

import "strings"

// varList builds "--name: value;" declarations in order.
type varList struct {
	b strings.Builder
}

func (v *varList) add(name, value string) *varList {
	v.b.WriteString("--")
	v.b.WriteString(name)
	v.b.WriteString(": ")
	v.b.WriteString(value)
	v.b.WriteString(";")
	return v
}

func (v *varList) String() string { return v.b.String() }

// RadioVars styles the checked radio dot.
func RadioVars(t Theme) string {
	var v varList
	return v.add("melt-background-color-checked", t.Common.ColorPrimary).String()
}

// SelectVars styles the select trigger.
func SelectVars(t Theme) string {
	var v varList
	return v.add("melt-border-color-hover", t.Common.ColorPrimary).
		add("melt-background-color", t.Select.BackgroundColor).
		add("melt-font-color", t.Select.FontColor).
		add("melt-border-color", t.Select.BorderColor).
		String()
}

// SelectMenuVars styles the select dropdown.
func SelectMenuVars(t Theme) string {
	var v varList
	return v.add("melt-background-color", t.Select.MenuBackgroundColor).
		add("melt-background-color-hover", t.Select.MenuBackgroundColorHover).
		add("melt-font-color", t.Select.FontColor).
		add("melt-font-color-selected", t.Common.ColorPrimary).
		String()
}

// TabbarVars styles the tab bar and its active item.
func TabbarVars(t Theme) string {
	var v varList
	return v.add("melt-background-color", t.Tabbar.BackgroundColor).
		add("melt-font-color", t.Tabbar.ItemColor).
		add("melt-font-color-active", t.Common.ColorPrimary).
		String()
}

// ButtonVars styles the button border, text and corner radius.
func ButtonVars(t Theme) string {
	var v varList
	return v.add("melt-border-color", t.Button.BorderColor).
		add("melt-font-color", t.Button.FontColor).
		add("melt-border-color-hover", t.Common.ColorPrimary).
		add("melt-border-radius", t.Common.BorderRadius).
		String()
}

// PageVars sets the page background and text colour.
func PageVars(t Theme) string {
	var v varList
	return v.add("melt-page-background", t.Common.BackgroundColor).
		add("melt-page-color", t.Common.FontColor).
		String()
}
