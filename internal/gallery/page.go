package gallery

import (
	_ "embed"
	"io"

	"github.com/meltui/melt/pkg/render"
	"github.com/meltui/melt/pkg/theme"
	"github.com/meltui/melt/pkg/vdom"
)

// LiveRegionID is the id of the element whose content the live channel
// replaces.
const LiveRegionID = "melt-live"

//go:embed gallery.css
var galleryCSS string

// PageOptions carries what a page needs besides the demo.
type PageOptions struct {
	Theme theme.Theme
	// Script is inline JavaScript appended to the body, e.g. the live
	// channel client. Empty renders a static page.
	Script string
	Pretty bool
}

func layout(th theme.Theme, demos []Demo, current string, content ...any) *vdom.VNode {
	links := vdom.Range(demos, func(d Demo, _ int) *vdom.VNode {
		return vdom.Li(vdom.A(
			vdom.Href("/demos/"+d.Name),
			vdom.Classes("gallery-nav__link", vdom.ClassIf{Name: "gallery-nav__link--active", On: d.Name == current}),
			d.Doc.Title,
		))
	})
	return vdom.Div(
		vdom.Class("gallery"),
		vdom.StyleAttr(theme.PageVars(th)),
		vdom.Nav(vdom.Class("gallery-nav"),
			vdom.A(vdom.Href("/"), vdom.Class("gallery-nav__home"), "melt"),
			vdom.Ul(links),
		),
		vdom.Main(append([]any{vdom.Class("gallery-main")}, content...)...),
	)
}

// RenderDemoPage renders a session's demo as a full document. The live
// region holds the session's current render.
func RenderDemoPage(w io.Writer, reg *Registry, s *Session, opts PageOptions) error {
	live, err := s.Render()
	if err != nil {
		return err
	}
	d := s.Demo()

	body := layout(opts.Theme, reg.List(), d.Name,
		vdom.H1(d.Doc.Title),
		vdom.If(d.Doc.Summary != "", vdom.P(vdom.Class("gallery-summary"), d.Doc.Summary)),
		vdom.Section(vdom.Class("gallery-preview"),
			vdom.Div(vdom.ID(LiveRegionID), vdom.Data("demo", d.Name), vdom.Raw(live)),
		),
		vdom.Section(vdom.Class("gallery-doc"), vdom.Raw(d.Doc.HTML)),
	)

	page := render.PageData{
		Title:  "melt · " + d.Doc.Title,
		Styles: append([]string{galleryCSS}, s.Styles()...),
		Body:   body,
	}
	if opts.Script != "" {
		page.Scripts = []string{opts.Script}
	}
	return render.NewRenderer(render.RendererConfig{Pretty: opts.Pretty}).RenderPage(w, page)
}

// RenderIndex renders the demo list.
func RenderIndex(w io.Writer, reg *Registry, opts PageOptions) error {
	demos := reg.List()
	body := layout(opts.Theme, demos, "",
		vdom.H1("melt components"),
		vdom.Ul(vdom.Class("gallery-index"), vdom.Range(demos, func(d Demo, _ int) *vdom.VNode {
			return vdom.Li(
				vdom.A(vdom.Href("/demos/"+d.Name), d.Doc.Title),
				vdom.If(d.Doc.Summary != "", vdom.Span(" · ", d.Doc.Summary)),
			)
		})),
	)
	return render.NewRenderer(render.RendererConfig{Pretty: opts.Pretty}).RenderPage(w, render.PageData{
		Title:  "melt",
		Styles: []string{galleryCSS},
		Body:   body,
	})
}
