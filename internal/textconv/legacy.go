package textconv

import "strings"

const minRunLength = 4

// LegacyConverter recovers printable text runs from binary .doc/.xls files
type LegacyConverter struct{}

// NewLegacyConverter creates a binary office converter
func NewLegacyConverter() *LegacyConverter {
	return &LegacyConverter{}
}

func (c *LegacyConverter) Name() string { return "legacy" }

func (c *LegacyConverter) CanHandle(ext string) bool {
	return hasExt(ext, ".doc", ".xls")
}

func (c *LegacyConverter) Convert(data []byte) (string, error) {
	var lines []string
	var run strings.Builder

	flush := func() {
		if s := strings.TrimSpace(run.String()); len(s) >= minRunLength {
			lines = append(lines, s)
		}
		run.Reset()
	}

	for i := 0; i < len(data); i++ {
		b := data[i]
		switch {
		case b >= 0x20 && b < 0x7F:
			run.WriteByte(b)
		case b == 0 && run.Len() > 0 && i+1 < len(data) && data[i+1] >= 0x20 && data[i+1] < 0x7F:
			// UTF-16LE text stores a zero after each ASCII byte
		default:
			flush()
		}
	}
	flush()

	return strings.Join(lines, "\n"), nil
}
