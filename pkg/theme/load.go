package theme

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for theme files that are neither YAML nor
// TOML.
var ErrUnknownFormat = errors.New("theme: unknown file format")

// Format is a theme file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// LoadFile reads a theme file. The file may set "extends" to a built-in
// theme name; unset fields come from that theme, or from Light.
func LoadFile(path string) (Theme, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Theme{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: read %s: %w", path, err)
	}
	t, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: %s: %w", path, err)
	}
	if t.Name == "" {
		t.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return t, nil
}

type themeFile struct {
	Extends string `yaml:"extends" toml:"extends"`
}

// Decode reads a theme in the given format. Name is empty unless the
// document sets it.
func Decode(r io.Reader, format Format) (Theme, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Theme{}, err
	}

	var head themeFile
	if err := unmarshal(data, format, &head); err != nil {
		return Theme{}, err
	}
	base, ok := ByName(head.Extends)
	if !ok {
		return Theme{}, fmt.Errorf("unknown base theme %q", head.Extends)
	}
	// The name is the file's own, never the base's.
	base.Name = ""

	if err := unmarshal(data, format, &base); err != nil {
		return Theme{}, err
	}
	return base, nil
}

func unmarshal(data []byte, format Format, v any) error {
	switch format {
	case FormatYAML:
		return yaml.Unmarshal(data, v)
	case FormatTOML:
		return toml.Unmarshal(data, v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
