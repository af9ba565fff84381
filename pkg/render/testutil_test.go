package render

import (
	"strings"
	"testing"
)

// attrValues returns every double-quoted value of attr in html, in order.
func attrValues(t *testing.T, html, attr string) []string {
	t.Helper()

	var values []string
	needle := " " + attr + `="`
	rest := html
	for {
		idx := strings.Index(rest, needle)
		if idx == -1 {
			return values
		}
		rest = rest[idx+len(needle):]
		end := strings.IndexByte(rest, '"')
		if end == -1 {
			t.Fatalf("unterminated %s in %q", attr, html)
		}
		values = append(values, rest[:end])
		rest = rest[end+1:]
	}
}

func attrValue(t *testing.T, html, attr string) string {
	t.Helper()
	values := attrValues(t, html, attr)
	if len(values) == 0 {
		t.Fatalf("no %s in %q", attr, html)
	}
	return values[0]
}
