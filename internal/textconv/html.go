package textconv

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// blockElements end a line of visible text
var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"table": true, "ul": true, "ol": true, "pre": true, "section": true,
	"article": true, "header": true, "footer": true, "title": true,
}

// HTMLConverter extracts visible text from HTML pages, one block per line
type HTMLConverter struct{}

// NewHTMLConverter creates an HTML converter
func NewHTMLConverter() *HTMLConverter {
	return &HTMLConverter{}
}

func (c *HTMLConverter) Name() string { return "html" }

func (c *HTMLConverter) CanHandle(ext string) bool {
	return hasExt(ext, ".html", ".htm")
}

func (c *HTMLConverter) Convert(data []byte) (string, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	return VisibleText(doc), nil
}

// VisibleText renders the text of a node tree, skipping scripts and styles
func VisibleText(n *html.Node) string {
	var buf strings.Builder
	var line strings.Builder

	endLine := func() {
		if s := strings.Join(strings.Fields(line.String()), " "); s != "" {
			buf.WriteString(flattenRows([][]string{strings.Split(s, " | ")}))
		}
		line.Reset()
	}

	var walk func(*html.Node)
	walk = func(node *html.Node) {
		switch node.Type {
		case html.TextNode:
			line.WriteString(node.Data)
			line.WriteString(" ")
			return
		case html.ElementNode:
			switch node.Data {
			case "script", "style", "noscript", "template":
				return
			case "td", "th":
				if strings.TrimSpace(line.String()) != "" {
					line.WriteString(" | ")
				}
			}
		}

		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		if node.Type == html.ElementNode && blockElements[node.Data] {
			endLine()
		}
	}

	walk(n)
	endLine()
	return buf.String()
}
