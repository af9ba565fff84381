package ui

import (
	"reflect"
	"strings"
	"testing"

	"github.com/meltui/melt/pkg/model"
	"github.com/meltui/melt/pkg/reactive"
	"github.com/meltui/melt/pkg/store"
	"github.com/meltui/melt/pkg/theme"
	"github.com/meltui/melt/pkg/vdom"
)

func TestRadioToggles(t *testing.T) {
	var checked model.Model[bool]
	h := mount(t, theme.Light(), func() func() *vdom.VNode {
		checked = model.New(false)
		return func() *vdom.VNode {
			return Radio(RadioValue(checked), RadioLabel("Subscribe"))
		}
	})

	html := h.render()
	if strings.Contains(html, "melt-radio--checked") {
		t.Fatalf("radio starts checked: %s", html)
	}
	if !strings.Contains(html, "--melt-background-color-checked: #f5222d;") {
		t.Errorf("missing themed vars: %s", html)
	}

	h.click("h1")
	if !checked.Peek() {
		t.Fatal("click did not check the radio")
	}
	html = h.render()
	if !strings.Contains(html, "melt-radio--checked") || !strings.Contains(html, " checked") {
		t.Errorf("checked state not rendered: %s", html)
	}

	h.click("h1")
	if checked.Peek() {
		t.Error("second click did not uncheck")
	}
}

func TestRadioUsesProvidedTheme(t *testing.T) {
	h := mount(t, theme.Dark(), func() func() *vdom.VNode {
		return func() *vdom.VNode { return Radio() }
	})
	if html := h.render(); !strings.Contains(html, theme.RadioVars(theme.Dark())) {
		t.Errorf("dark vars missing: %s", html)
	}
}

func TestRadioBoundToStoreField(t *testing.T) {
	type prefs struct {
		Newsletter bool
		Name       string
	}
	var s *store.Store[prefs]
	h := mount(t, theme.Light(), func() func() *vdom.VNode {
		s = store.New(prefs{Name: "ada"})
		field := store.At(s, func(p *prefs) *bool { return &p.Newsletter })
		m := model.FromField[bool](field)
		return func() *vdom.VNode { return Radio(RadioValue(m)) }
	})

	h.render()
	h.click("h1")
	if got := s.Peek(); !got.Newsletter || got.Name != "ada" {
		t.Errorf("store = %+v", got)
	}
}

func TestRadioGroupSelectsItem(t *testing.T) {
	var value model.Model[string]
	h := mount(t, theme.Light(), func() func() *vdom.VNode {
		value = model.New("a")
		return func() *vdom.VNode {
			return RadioGroup(value,
				RadioItem{Value: "a", Label: "Apple"},
				RadioItem{Value: "b", Label: "Banana"},
			)
		}
	})

	html := h.render()
	if strings.Count(html, "melt-radio--checked") != 1 {
		t.Fatalf("want exactly one checked radio: %s", html)
	}

	h.click("h2")
	if got := value.Peek(); got != "b" {
		t.Fatalf("value = %q, want b", got)
	}

	// Clicking the checked item unchecks its private model only.
	h.render()
	h.click("h2")
	if got := value.Peek(); got != "b" {
		t.Errorf("value = %q after re-click, want b", got)
	}
}

func TestSelect(t *testing.T) {
	var (
		value   model.Model[string]
		visible model.Model[bool]
		picked  []string
	)
	h := mount(t, theme.Light(), func() func() *vdom.VNode {
		value = model.New("")
		visible = model.New(false)
		return func() *vdom.VNode {
			return Select(SelectConfig[string]{
				Value:       value,
				MenuVisible: visible,
				Placeholder: "Pick one",
				Options: []SelectItem[string]{
					{Label: "Red", Value: "red"},
					{Label: "Blue", Value: "blue"},
				},
				OnSelect: func(item SelectItem[string]) { picked = append(picked, item.Value) },
			})
		}
	})

	html := h.render()
	if !strings.Contains(html, "Pick one") || strings.Contains(html, "melt-select-menu") {
		t.Fatalf("closed select rendered wrong: %s", html)
	}

	h.click("h1")
	if !visible.Peek() {
		t.Fatal("trigger click did not open the menu")
	}

	// Open: wrapper h1, trigger h2, options h3 and h4.
	html = h.render()
	if !strings.Contains(html, `data-on-clickoutside="true"`) {
		t.Errorf("open select has no outside handler: %s", html)
	}
	h.click("h4")
	if value.Peek() != "blue" || visible.Peek() {
		t.Errorf("after option click value=%q visible=%v", value.Peek(), visible.Peek())
	}
	if !reflect.DeepEqual(picked, []string{"blue"}) {
		t.Errorf("OnSelect calls = %v", picked)
	}

	html = h.render()
	if !strings.Contains(html, ">Blue</div>") {
		t.Errorf("selected label not shown: %s", html)
	}

	h.click("h1")
	h.render()
	h.fire("h1", "onclickoutside")
	if visible.Peek() {
		t.Error("outside click did not close the menu")
	}
}

func TestSelectPrivateMenuState(t *testing.T) {
	h := mount(t, theme.Light(), func() func() *vdom.VNode {
		value := model.New(1)
		return func() *vdom.VNode {
			return Select(SelectConfig[int]{
				Value:   value,
				Options: []SelectItem[int]{{Label: "One", Value: 1}},
			})
		}
	})
	if html := h.render(); !strings.Contains(html, ">One</div>") {
		t.Errorf("label = %s", html)
	}
	h.click("h1")
}

func TestTabbar(t *testing.T) {
	var selected model.Model[string]
	h := mount(t, theme.Light(), func() func() *vdom.VNode {
		selected = model.New("o")
		return func() *vdom.VNode {
			return Tabbar(selected,
				TabbarItem{Name: "a", Label: "and"},
				TabbarItem{Name: "i", Label: "if"},
				TabbarItem{Name: "o", Label: "or", Icon: "icon-close"},
			)
		}
	})

	html := h.render()
	if strings.Count(html, "melt-tabbar-item--selected") != 1 {
		t.Fatalf("want one selected tab: %s", html)
	}
	if !strings.Contains(html, `class="melt-tabbar-item__icon icon-close"`) {
		t.Errorf("icon missing: %s", html)
	}

	h.click("h1")
	if got := selected.Peek(); got != "a" {
		t.Errorf("selected = %q, want a", got)
	}
}

func TestTabbarSharedSignal(t *testing.T) {
	var sig *reactive.Signal[string]
	h := mount(t, theme.Light(), func() func() *vdom.VNode {
		sig = reactive.NewSignal("a")
		m := model.FromSignal(sig)
		return func() *vdom.VNode {
			return Tabbar(m, TabbarItem{Name: "a"}, TabbarItem{Name: "b"})
		}
	})

	runs := 0
	reactive.WithOwner(h.root, func() {
		reactive.CreateEffect(func() reactive.Cleanup {
			sig.Get()
			runs++
			return nil
		})
	})

	h.render()
	h.click("h2")
	if sig.Peek() != "b" {
		t.Fatalf("signal = %q", sig.Peek())
	}
	if runs != 2 {
		t.Errorf("observer runs = %d, want 2", runs)
	}
}

func TestButton(t *testing.T) {
	clicks := 0
	h := mount(t, theme.Light(), func() func() *vdom.VNode {
		return func() *vdom.VNode {
			return vdom.Div(
				Button(ButtonVariantOf(ButtonPrimary), ButtonOnClick(func() { clicks++ }), ButtonChildren("Go")),
				Button(ButtonDisabled(true), ButtonOnClick(func() { clicks++ }), ButtonChildren("Stop")),
			)
		}
	})

	html := h.render()
	if strings.Count(html, "data-hid=") != 1 {
		t.Fatalf("disabled button should not be interactive: %s", html)
	}
	if !strings.Contains(html, "melt-button--primary") || !strings.Contains(html, " disabled") {
		t.Errorf("variants not rendered: %s", html)
	}
	h.click("h1")
	if clicks != 1 {
		t.Errorf("clicks = %d", clicks)
	}
}

func TestStylesMountedOncePerWidget(t *testing.T) {
	h := mount(t, theme.Light(), func() func() *vdom.VNode {
		return func() *vdom.VNode {
			return vdom.Div(Radio(), Radio(), Button())
		}
	})
	h.render()
	if got := h.sheet.IDs(); !reflect.DeepEqual(got, []string{"radio", "button"}) {
		t.Errorf("mounted = %v", got)
	}
}
