package textconv

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const docxBody = "word/document.xml"

// DocxConverter reads paragraph text from an Office Open XML document
type DocxConverter struct{}

// NewDocxConverter creates a .docx converter
func NewDocxConverter() *DocxConverter {
	return &DocxConverter{}
}

func (c *DocxConverter) Name() string { return "docx" }

func (c *DocxConverter) CanHandle(ext string) bool {
	return hasExt(ext, ".docx")
}

func (c *DocxConverter) Convert(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}

	for _, f := range zr.File {
		if f.Name != docxBody {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("open %s: %w", docxBody, err)
		}
		defer func() { _ = rc.Close() }()
		return paragraphText(rc)
	}
	return "", fmt.Errorf("docx has no %s", docxBody)
}

// paragraphText walks WordprocessingML: w:t is text, w:p ends a line, w:tab and w:br are whitespace
func paragraphText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var buf strings.Builder
	inText := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse %s: %w", docxBody, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				buf.WriteString("\t")
			case "br", "cr":
				buf.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				buf.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				buf.Write(t)
			}
		}
	}
	return buf.String(), nil
}
