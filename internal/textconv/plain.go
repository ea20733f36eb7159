package textconv

import (
	"bytes"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// PlainConverter passes text through, dropping a BOM and invalid UTF-8
type PlainConverter struct{}

// NewPlainConverter creates a plain text converter
func NewPlainConverter() *PlainConverter {
	return &PlainConverter{}
}

func (c *PlainConverter) Name() string { return "plain" }

func (c *PlainConverter) CanHandle(ext string) bool {
	return hasExt(ext, ".txt", ".md", ".text", "")
}

func (c *PlainConverter) Convert(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	return strings.ToValidUTF8(string(data), ""), nil
}
