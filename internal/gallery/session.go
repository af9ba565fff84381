package gallery

import (
	"errors"
	"fmt"
	"sync"

	"github.com/meltui/melt/pkg/reactive"
	"github.com/meltui/melt/pkg/render"
	"github.com/meltui/melt/pkg/styles"
	"github.com/meltui/melt/pkg/theme"
	"github.com/meltui/melt/pkg/vdom"
)

// ErrSessionClosed is returned by a Session after Close.
var ErrSessionClosed = errors.New("gallery: session closed")

// Session is one live instance of a demo. Its reactive root owns the demo
// state; each render runs in a child scope that is kept until the next
// render so the handlers it bound stay usable.
//
// A Session serializes its calls; the websocket loop is its only caller in
// practice.
type Session struct {
	mu sync.Mutex

	demo     Demo
	root     *reactive.Owner
	scope    *reactive.Owner
	view     View
	renderer *render.Renderer
	sheet    *styles.Sheet
	closed   bool
	renders  int
}

// NewSession sets the demo up under th.
func NewSession(d Demo, th reactive.Accessor[theme.Theme], cfg render.RendererConfig) *Session {
	s := &Session{
		demo:     d,
		renderer: render.NewRenderer(cfg),
		sheet:    styles.NewSheet(),
	}
	s.root = reactive.NewRoot(func(*reactive.Owner) {
		theme.Provide(th)
		styles.Provide(s.sheet)
		s.view = d.Setup()
	})
	return s
}

// Demo returns the demo this session runs.
func (s *Session) Demo() Demo {
	return s.demo
}

// Render renders the live region.
func (s *Session) Render() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renderLocked()
}

func (s *Session) renderLocked() (string, error) {
	if s.closed {
		return "", ErrSessionClosed
	}
	if s.scope != nil {
		s.scope.Dispose()
	}
	s.renderer.Reset()

	var node *vdom.VNode
	s.scope = s.root.Child(func() {
		node = s.view()
	})
	html, err := s.renderer.RenderToString(node)
	if err != nil {
		return "", fmt.Errorf("gallery: render %s: %w", s.demo.Name, err)
	}
	s.renders++
	return html, nil
}

// Dispatch routes ev to its handler, runs the effects it scheduled and
// returns the re-rendered live region.
func (s *Session) Dispatch(ev vdom.Event) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", ErrSessionClosed
	}
	if err := s.renderer.Dispatch(ev); err != nil {
		return "", err
	}
	s.root.RunPendingEffects()
	return s.renderLocked()
}

// Styles returns the stylesheets the widgets mounted so far.
func (s *Session) Styles() []string {
	return s.sheet.Styles()
}

// Renders reports how many renders completed.
func (s *Session) Renders() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renders
}

// Close disposes the demo state. It is safe to call twice.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.root.Dispose()
}
