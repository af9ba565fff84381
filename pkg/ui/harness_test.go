package ui

import (
	"testing"

	"github.com/meltui/melt/pkg/reactive"
	"github.com/meltui/melt/pkg/render"
	"github.com/meltui/melt/pkg/styles"
	"github.com/meltui/melt/pkg/theme"
	"github.com/meltui/melt/pkg/vdom"
)

// harness renders a view inside its own root the way a page session does:
// each render gets a fresh child scope that lives until the next render, so
// handlers from the last render can still be dispatched.
type harness struct {
	t     *testing.T
	root  *reactive.Owner
	scope *reactive.Owner
	r     *render.Renderer
	sheet *styles.Sheet
	view  func() *vdom.VNode
}

func mount(t *testing.T, th theme.Theme, setup func() func() *vdom.VNode) *harness {
	t.Helper()
	h := &harness{
		t:     t,
		r:     render.NewRenderer(render.RendererConfig{}),
		sheet: styles.NewSheet(),
	}
	h.root = reactive.NewRoot(func(*reactive.Owner) {
		theme.Provide(reactive.NewSignal(th))
		styles.Provide(h.sheet)
		h.view = setup()
	})
	t.Cleanup(h.root.Dispose)
	return h
}

func (h *harness) render() string {
	h.t.Helper()
	if h.scope != nil {
		h.scope.Dispose()
	}
	h.r.Reset()
	var node *vdom.VNode
	h.scope = h.root.Child(func() {
		node = h.view()
	})
	html, err := h.r.RenderToString(node)
	if err != nil {
		h.t.Fatalf("render: %v", err)
	}
	return html
}

func (h *harness) fire(hid, event string) {
	h.t.Helper()
	if err := h.r.Dispatch(vdom.Event{HID: hid, Type: event}); err != nil {
		h.t.Fatalf("dispatch %s %s: %v", event, hid, err)
	}
	h.root.RunPendingEffects()
}

func (h *harness) click(hid string) {
	h.t.Helper()
	h.fire(hid, "onclick")
}
