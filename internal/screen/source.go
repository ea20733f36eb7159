package screen

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// SanctionsSource supplies sanctions list entries, one name each
type SanctionsSource interface {
	Entries(ctx context.Context) ([]string, error)
}

// ParseEntries splits list text into entries, skipping blanks and # comments
func ParseEntries(text string) []string {
	var entries []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		value := strings.TrimSpace(line)
		if value == "" || strings.HasPrefix(value, "#") {
			continue
		}
		entries = append(entries, value)
	}
	return entries
}

// FileSource reads entries from a local text file
type FileSource struct {
	path string
}

// NewFileSource creates a file-backed sanctions source
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Entries reads and parses the file
func (s *FileSource) Entries(ctx context.Context) ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read sanctions list: %w", err)
	}
	return ParseEntries(string(data)), nil
}

// StaticSource is a fixed in-memory list
type StaticSource []string

// Entries returns the list
func (s StaticSource) Entries(ctx context.Context) ([]string, error) {
	return ParseEntries(strings.Join(s, "\n")), nil
}
