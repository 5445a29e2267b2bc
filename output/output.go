// Package output renders finished character art to its destinations:
// terminal text, HTML documents, and rasterized PNG images.
package output

import (
	"io"
	"strings"
)

// Renderer writes a grid of matched characters somewhere useful.
type Renderer interface {
	Render(art [][]rune) error
}

// Console renders art as plain text, one grid row per line. A space
// follows every character to compensate for glyphs being taller than
// they are wide.
type Console struct {
	w io.Writer
}

// NewConsole creates a console renderer writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Render writes the art as text in a single write.
func (c *Console) Render(art [][]rune) error {
	var sb strings.Builder
	for _, row := range art {
		for _, r := range row {
			sb.WriteRune(r)
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(c.w, sb.String())
	return err
}
