package output

import (
	"fmt"
	"html"
	"os"
	"strings"
)

// HTML renders art into a standalone HTML document styled with the
// given font family. Every Render overwrites the file, so the document
// always shows the latest conversion.
type HTML struct {
	path string
	font string
}

// NewHTML creates an HTML renderer writing to path.
func NewHTML(path, font string) *HTML {
	return &HTML{path: path, font: font}
}

// Render writes the document. Characters are HTML-escaped; the tight
// line height and letter spacing keep the glyph aspect close to square.
func (h *HTML) Render(art [][]rune) error {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<body style=\"background-color:white; color:black;\">\n")
	fmt.Fprintf(&sb, "<pre style=\"font-family:'%s', monospace; font-size:16px; letter-spacing:0.4em; line-height:1;\">\n", h.font)
	for _, row := range art {
		sb.WriteString(html.EscapeString(string(row)))
		sb.WriteByte('\n')
	}
	sb.WriteString("</pre>\n</body>\n</html>\n")

	if err := os.WriteFile(h.path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write html output: %w", err)
	}
	return nil
}
