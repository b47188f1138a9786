package library

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/multiline"
)

// Sentinel errors for library operations.
var (
	// ErrNotFound is returned when a template name is not in the library.
	ErrNotFound = errors.New("template not found")

	// ErrFormat is returned for an unsupported file extension or a
	// document that fails to decode.
	ErrFormat = errors.New("invalid library document")
)

// Format identifies the encoding of a library document.
type Format int

const (
	// YAML documents decode with gopkg.in/yaml.v3.
	YAML Format = iota

	// TOML documents decode with github.com/BurntSushi/toml.
	TOML
)

// Document is the on-disk shape of a library file.
type Document struct {
	// Templates maps snippet names to template bodies using {} placeholders.
	Templates map[string]string `yaml:"templates" toml:"templates" json:"templates" jsonschema:"title=Templates,description=Named multiline templates with {} placeholders"`
}

// Library is a validated set of named templates.
type Library struct {
	templates map[string]string
}

// Load reads and parses a library file. The format is chosen by the
// file extension: .yaml, .yml, or .toml.
func Load(path string) (*Library, error) {
	format, err := formatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read library: %w", err)
	}

	return Parse(data, format)
}

// Parse decodes a library document from memory and validates every
// template, so a template that violates the one-placeholder-per-line
// rule is rejected at load time rather than at render time.
func Parse(data []byte, format Format) (*Library, error) {
	var doc Document
	switch format {
	case YAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFormat, err)
		}
	case TOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFormat, err)
		}
	default:
		return nil, fmt.Errorf("%w: unknown format %d", ErrFormat, format)
	}

	lib := &Library{templates: make(map[string]string, len(doc.Templates))}
	for name, tmpl := range doc.Templates {
		if err := validate(tmpl); err != nil {
			return nil, fmt.Errorf("template %q: %w", name, err)
		}
		lib.templates[name] = tmpl
	}

	return lib, nil
}

// Render fills the named template with the given arguments via
// multiline.Fill. Returns ErrNotFound for an unknown name.
func (l *Library) Render(name string, args ...string) (string, error) {
	tmpl, ok := l.templates[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return multiline.Fill(tmpl, args...)
}

// Names returns the sorted template names in the library.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.templates))
	for name := range l.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Placeholders returns the number of {} markers in the named template,
// which is the number of arguments Render expects for it.
func (l *Library) Placeholders(name string) (int, error) {
	tmpl, ok := l.templates[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return strings.Count(tmpl, multiline.Marker), nil
}

// validate enforces the one-placeholder-per-line rule on a template.
func validate(tmpl string) error {
	for i, line := range strings.Split(tmpl, "\n") {
		if n := strings.Count(line, multiline.Marker); n > 1 {
			return fmt.Errorf("%w: line %d contains %d markers", multiline.ErrMultiplePlaceholders, i+1, n)
		}
	}
	return nil
}

// formatForPath maps a file extension to its Format.
func formatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("%w: unsupported extension %q", ErrFormat, filepath.Ext(path))
	}
}
