package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/meltui/melt/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty indents the output. Development only.
	Pretty bool

	// Indent is one indentation level in pretty mode. Defaults to two spaces.
	Indent string
}

// Renderer renders vdom trees and remembers the handlers it saw.
//
// A Renderer is reused across renders of the same page: Reset clears the
// hid counter and the handler registry so ids stay stable between renders
// of an unchanged tree.
type Renderer struct {
	config RendererConfig

	mu         sync.Mutex
	hidCounter uint32
	handlers   map[string]any
}

// NewRenderer creates a Renderer.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{
		config:   config,
		handlers: make(map[string]any),
	}
}

// RenderToString renders node to a string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams node to w.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0)
}

// Handlers returns a copy of the handler registry, keyed "hid_onevent".
func (r *Renderer) Handlers() map[string]any {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]any, len(r.handlers))
	for k, v := range r.handlers {
		out[k] = v
	}
	return out
}

// Reset clears the hid counter and the handler registry.
func (r *Renderer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hidCounter = 0
	r.handlers = make(map[string]any)
}

// Dispatch invokes the handler bound to ev.HID and ev.Type.
func (r *Renderer) Dispatch(ev vdom.Event) error {
	r.mu.Lock()
	handler, ok := r.handlers[handlerKey(ev.HID, ev.Type)]
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s on %s", ErrHandlerNotFound, ev.Type, ev.HID)
	}
	return vdom.Invoke(handler, ev)
}

func handlerKey(hid, event string) string {
	return hid + "_" + event
}

func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case vdom.KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	case vdom.KindFragment:
		for _, child := range node.Children {
			if err := r.renderNode(w, child, depth); err != nil {
				return err
			}
		}
		return nil
	case vdom.KindComponent:
		if node.Comp == nil {
			return nil
		}
		return r.renderNode(w, node.Comp.Render(), depth)
	default:
		return fmt.Errorf("render: unknown node kind %d", node.Kind)
	}
}

func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int) error {
	tag := node.Tag

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}

	if handlers := node.Handlers(); len(handlers) > 0 {
		hid := r.register(handlers)
		node.HID = hid
		if _, err := fmt.Fprintf(w, ` data-hid="%s"`, hid); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if vdom.IsVoidElement(tag) {
		r.newline(w)
		return nil
	}

	block := !isInlineElement(tag) && hasElementChildren(node)
	if block {
		r.newline(w)
	}
	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth+1); err != nil {
			return err
		}
	}
	if r.config.Pretty && block {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	r.newline(w)
	return nil
}

func hasElementChildren(node *vdom.VNode) bool {
	for _, c := range node.Children {
		if c != nil && c.Kind != vdom.KindText {
			return true
		}
	}
	return false
}

// register assigns the next hid and stores the handlers under it.
func (r *Renderer) register(handlers map[string]any) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hidCounter++
	hid := "h" + strconv.FormatUint(uint64(r.hidCounter), 10)
	for event, h := range handlers {
		r.handlers[handlerKey(hid, event)] = h
	}
	return hid
}

func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var events []string
	for _, key := range keys {
		value := node.Props[key]

		if strings.HasPrefix(key, "on") && vdom.IsHandler(value) {
			events = append(events, strings.ToLower(key[2:]))
			continue
		}

		if isBooleanAttr(key) {
			if on, ok := value.(bool); ok {
				if on {
					if _, err := io.WriteString(w, " "+key); err != nil {
						return err
					}
				}
				continue
			}
		}

		s := attrToString(value)
		if s == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(s)); err != nil {
			return err
		}
	}

	// Markers the client uses to bind listeners.
	for _, name := range events {
		if _, err := fmt.Fprintf(w, ` data-on-%s="true"`, name); err != nil {
			return err
		}
	}
	return nil
}

func attrToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func (r *Renderer) newline(w io.Writer) {
	if r.config.Pretty {
		io.WriteString(w, "\n")
	}
}

func (r *Renderer) writeIndent(w io.Writer, depth int) {
	io.WriteString(w, strings.Repeat(r.config.Indent, depth))
}
