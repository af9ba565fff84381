package gallery

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/meltui/melt/pkg/vdom"
)

// ErrUnknownDemo is returned for names no demo is registered under.
var ErrUnknownDemo = errors.New("gallery: unknown demo")

// View renders a demo's live region. It is called once per render.
type View func() *vdom.VNode

// Demo is one gallery entry.
type Demo struct {
	Name string
	Doc  Doc
	// Setup creates the demo's state inside the session's reactive root
	// and returns its view.
	Setup func() View
}

// Registry holds demos by name.
type Registry struct {
	mu    sync.RWMutex
	demos map[string]Demo
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{demos: make(map[string]Demo)}
}

// Register adds d. A demo without a title takes its embedded doc, if any.
func (r *Registry) Register(d Demo) error {
	if d.Name == "" || d.Setup == nil {
		return fmt.Errorf("gallery: demo needs a name and a setup")
	}
	if d.Doc.Title == "" {
		doc, err := LoadDoc(d.Name)
		if err != nil {
			return err
		}
		d.Doc = doc
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.demos[d.Name]; dup {
		return fmt.Errorf("gallery: demo %q registered twice", d.Name)
	}
	r.demos[d.Name] = d
	return nil
}

// Get returns the demo registered under name.
func (r *Registry) Get(name string) (Demo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.demos[name]
	if !ok {
		return Demo{}, fmt.Errorf("%w: %q", ErrUnknownDemo, name)
	}
	return d, nil
}

// List returns the demos by doc order, then name.
func (r *Registry) List() []Demo {
	r.mu.RLock()
	out := make([]Demo, 0, len(r.demos))
	for _, d := range r.demos {
		out = append(out, d)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Doc.Order != out[j].Doc.Order {
			return out[i].Doc.Order < out[j].Doc.Order
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Names returns the demo names in List order.
func (r *Registry) Names() []string {
	demos := r.List()
	names := make([]string, len(demos))
	for i, d := range demos {
		names[i] = d.Name
	}
	return names
}
