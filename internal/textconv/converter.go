package textconv

import (
	"fmt"
	"path/filepath"
	"strings"
)

// TextExtractor turns document bytes into best-effort UTF-8 text
type TextExtractor interface {
	ToText(data []byte, ext string) (string, error)
}

// Converter handles one family of document formats
type Converter interface {
	// Name returns the converter name
	Name() string

	// CanHandle checks if this converter understands the extension (lowercase, with dot)
	CanHandle(ext string) bool

	// Convert extracts text from the document bytes
	Convert(data []byte) (string, error)
}

// Registry manages format converters
type Registry struct {
	converters []Converter
	generic    Converter
}

// NewRegistry creates a registry with the built-in converters
func NewRegistry() *Registry {
	registry := &Registry{
		converters: make([]Converter, 0),
	}

	registry.Register(NewCSVConverter())
	registry.Register(NewHTMLConverter())
	registry.Register(NewDocxConverter())
	registry.Register(NewXLSXConverter())
	registry.Register(NewPDFConverter())
	registry.Register(NewLegacyConverter())

	// Plain text is the fallback for .txt and anything unknown
	registry.generic = NewPlainConverter()

	return registry
}

// Register registers a new converter ahead of the fallback
func (r *Registry) Register(c Converter) {
	r.converters = append(r.converters, c)
}

// FindConverter finds the converter for an extension
func (r *Registry) FindConverter(ext string) Converter {
	ext = NormalizeExt(ext)
	for _, c := range r.converters {
		if c.CanHandle(ext) {
			return c
		}
	}
	return r.generic
}

// ToText converts data using the converter registered for ext
func (r *Registry) ToText(data []byte, ext string) (string, error) {
	c := r.FindConverter(ext)
	text, err := c.Convert(data)
	if err != nil {
		return "", fmt.Errorf("%s conversion failed: %w", c.Name(), err)
	}
	return text, nil
}

// NormalizeExt lowercases an extension or file name down to ".ext"
func NormalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if e := filepath.Ext(ext); e != "" {
		return e
	}
	if ext == "" {
		return ""
	}
	return "." + ext
}

func hasExt(ext string, exts ...string) bool {
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
