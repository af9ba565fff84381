package render

import (
	"fmt"
	"io"

	"github.com/meltui/melt/pkg/vdom"
)

// PageData is everything needed for a full HTML document.
type PageData struct {
	Title string
	// Lang defaults to "en".
	Lang string

	// Styles are inline <style> blocks, in order.
	Styles []string

	Body *vdom.VNode

	// Scripts are inline scripts appended to the body.
	Scripts []string
}

// RenderPage writes a complete document.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"%s\">\n<head>\n", escapeAttr(lang)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `  <meta charset="utf-8">`+"\n"+
		`  <meta name="viewport" content="width=device-width, initial-scale=1">`+"\n"); err != nil {
		return err
	}
	if page.Title != "" {
		if _, err := fmt.Fprintf(w, "  <title>%s</title>\n", escapeHTML(page.Title)); err != nil {
			return err
		}
	}
	for _, style := range page.Styles {
		if _, err := fmt.Fprintf(w, "  <style>%s</style>\n", style); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "</head>\n<body>\n"); err != nil {
		return err
	}

	if err := r.RenderToWriter(w, page.Body); err != nil {
		return err
	}

	for _, script := range page.Scripts {
		if _, err := fmt.Fprintf(w, "<script>%s</script>\n", script); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}
