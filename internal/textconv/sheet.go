package textconv

import "strings"

// flattenRows renders tabular rows as pipe-joined lines,
// adding a "first: second" line for rows with exactly two cells
func flattenRows(rows [][]string) string {
	var buf strings.Builder
	for _, row := range rows {
		cells := nonEmptyCells(row)
		if len(cells) == 0 {
			continue
		}
		buf.WriteString(strings.Join(cells, " | "))
		buf.WriteString("\n")
		if len(cells) == 2 {
			buf.WriteString(cells[0] + ": " + cells[1])
			buf.WriteString("\n")
		}
	}
	return buf.String()
}

func nonEmptyCells(row []string) []string {
	cells := make([]string, 0, len(row))
	for _, cell := range row {
		if cell = strings.TrimSpace(cell); cell != "" {
			cells = append(cells, cell)
		}
	}
	return cells
}
