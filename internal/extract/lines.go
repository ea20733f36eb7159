package extract

import (
	"regexp"
	"strings"
)

var bulletRe = regexp.MustCompile(`^[\s\-*\x{2022}]+`)

// splitLines splits text on LF or CRLF
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}

// stripBullets removes leading bullet and dash markers
func stripBullets(line string) string {
	return strings.TrimSpace(bulletRe.ReplaceAllString(line, ""))
}

// normalizeLabel lowercases a label and collapses inner whitespace
func normalizeLabel(label string) string {
	return strings.Join(strings.Fields(strings.ToLower(stripBullets(label))), " ")
}
