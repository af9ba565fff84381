package styles

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed css/*.css
var embedded embed.FS

// Builtin returns the embedded stylesheet for a component id.
func Builtin(id string) (string, error) {
	data, err := embedded.ReadFile(path.Join("css", id+".css"))
	if err != nil {
		return "", fmt.Errorf("styles: no stylesheet for %q: %w", id, err)
	}
	return string(data), nil
}

// BuiltinIDs lists the embedded stylesheet ids.
func BuiltinIDs() ([]string, error) {
	entries, err := fs.ReadDir(embedded, "css")
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, strings.TrimSuffix(e.Name(), ".css"))
	}
	return ids, nil
}
