package textconv

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"
)

// transactionColumns marks a CSV as a transaction export
var transactionColumns = []string{"id", "amount", "currency", "source"}

// CSVConverter flattens CSV rows into parser-friendly lines.
// Transaction exports become key=value lines; other sheets are flattened like spreadsheets.
type CSVConverter struct{}

// NewCSVConverter creates a CSV converter
func NewCSVConverter() *CSVConverter {
	return &CSVConverter{}
}

func (c *CSVConverter) Name() string { return "csv" }

func (c *CSVConverter) CanHandle(ext string) bool {
	return hasExt(ext, ".csv")
}

func (c *CSVConverter) Convert(data []byte) (string, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	var rows [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		rows = append(rows, record)
	}
	if len(rows) == 0 {
		return "", nil
	}

	if isTransactionHeader(rows[0]) {
		return flattenKeyValue(rows), nil
	}
	return flattenRows(rows), nil
}

func isTransactionHeader(header []string) bool {
	seen := make(map[string]bool, len(header))
	for _, h := range header {
		seen[strings.ToLower(strings.TrimSpace(h))] = true
	}
	for _, col := range transactionColumns {
		if !seen[col] {
			return false
		}
	}
	return true
}

// flattenKeyValue renders each data row as "key=value,key=value".
// Commas inside values are dropped so the line stays splittable.
func flattenKeyValue(rows [][]string) string {
	header := rows[0]
	var buf strings.Builder
	for _, row := range rows[1:] {
		var pairs []string
		for i, cell := range row {
			if i >= len(header) {
				break
			}
			key := strings.ToLower(strings.TrimSpace(header[i]))
			value := strings.TrimSpace(strings.ReplaceAll(cell, ",", ""))
			if key == "" || value == "" {
				continue
			}
			pairs = append(pairs, key+"="+value)
		}
		if len(pairs) == 0 {
			continue
		}
		buf.WriteString(strings.Join(pairs, ","))
		buf.WriteString("\n")
	}
	return buf.String()
}
