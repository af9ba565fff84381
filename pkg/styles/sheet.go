package styles

import (
	"log/slog"
	"sync"

	"github.com/meltui/melt/pkg/reactive"
)

// Sheet collects the stylesheets mounted while rendering one page.
type Sheet struct {
	mu  sync.Mutex
	ids []string
	css map[string]string
}

// NewSheet creates an empty sheet.
func NewSheet() *Sheet {
	return &Sheet{css: make(map[string]string)}
}

// Mount adds css under id. Later mounts of the same id are ignored.
// It reports whether the stylesheet was added.
func (s *Sheet) Mount(id, css string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.css[id]; ok {
		return false
	}
	s.css[id] = css
	s.ids = append(s.ids, id)
	return true
}

// Styles returns the mounted stylesheets in mount order.
func (s *Sheet) Styles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.ids))
	for i, id := range s.ids {
		out[i] = s.css[id]
	}
	return out
}

// IDs returns the mounted ids in mount order.
func (s *Sheet) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.ids...)
}

type contextKey struct{}

// Provide makes sheet the mount target for the current owner's subtree.
func Provide(sheet *Sheet) {
	reactive.ProvideContext(contextKey{}, sheet)
}

// Mount adds css to the nearest provided sheet. Without one it does
// nothing.
func Mount(id, css string) {
	if sheet, ok := reactive.UseContext[*Sheet](contextKey{}); ok {
		sheet.Mount(id, css)
	}
}

// MountBuiltin mounts the embedded stylesheet for id.
func MountBuiltin(id string) {
	css, err := Builtin(id)
	if err != nil {
		slog.Warn("styles: mount", "id", id, "error", err)
		return
	}
	Mount(id, css)
}
