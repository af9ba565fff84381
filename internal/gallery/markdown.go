package gallery

import (
	"bytes"
	"embed"
	"fmt"
	"path"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

//go:embed docs/*.md
var docsFS embed.FS

// Doc is a parsed demo page.
type Doc struct {
	Title   string
	Summary string
	Order   int
	HTML    string
}

var markdown = goldmark.New(
	goldmark.WithExtensions(
		meta.Meta,
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
)

// ParseDoc converts markdown with front matter.
func ParseDoc(source []byte) (Doc, error) {
	var buf bytes.Buffer
	ctx := parser.NewContext()
	if err := markdown.Convert(source, &buf, parser.WithContext(ctx)); err != nil {
		return Doc{}, fmt.Errorf("convert markdown: %w", err)
	}

	front := meta.Get(ctx)
	doc := Doc{HTML: buf.String()}
	if v, ok := front["title"].(string); ok {
		doc.Title = v
	}
	if v, ok := front["summary"].(string); ok {
		doc.Summary = v
	}
	if v, ok := front["order"].(int); ok {
		doc.Order = v
	}
	return doc, nil
}

// LoadDoc parses the embedded docs/<name>.md.
func LoadDoc(name string) (Doc, error) {
	data, err := docsFS.ReadFile(path.Join("docs", name+".md"))
	if err != nil {
		return Doc{}, fmt.Errorf("gallery: no doc for %q: %w", name, err)
	}
	return ParseDoc(data)
}
