package textconv

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXConverter flattens every sheet of a workbook
type XLSXConverter struct{}

// NewXLSXConverter creates a workbook converter
func NewXLSXConverter() *XLSXConverter {
	return &XLSXConverter{}
}

func (c *XLSXConverter) Name() string { return "xlsx" }

func (c *XLSXConverter) CanHandle(ext string) bool {
	return hasExt(ext, ".xlsx", ".xlsm")
}

func (c *XLSXConverter) Convert(data []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	var buf bytes.Buffer
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("read sheet %q: %w", sheet, err)
		}
		buf.WriteString(flattenRows(rows))
	}
	return buf.String(), nil
}
