package asciiart

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// FontGlyphData represents pre-computed glyph bitmaps for a font
// (for serialization)
type FontGlyphData struct {
	FontName string
	Glyphs   map[rune]GlyphBitmap
}

// FontBitmapsFromGlyphData wraps pre-computed glyph data as a usable font.
func FontBitmapsFromGlyphData(data *FontGlyphData) *FontBitmaps {
	return &FontBitmaps{
		glyphs: data.Glyphs,
		name:   data.FontName,
	}
}

// WriteGlyphData serializes glyph data as gzipped gob, the format
// produced by cmd/glyphgen and accepted by ReadGlyphData.
func WriteGlyphData(w io.Writer, data *FontGlyphData) error {
	gz := gzip.NewWriter(w)
	enc := gob.NewEncoder(gz)
	if err := enc.Encode(data); err != nil {
		gz.Close()
		return fmt.Errorf("failed to encode glyph data: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("failed to close gzip: %w", err)
	}
	return nil
}

// ReadGlyphData decodes glyph data written by WriteGlyphData. The reader
// may come from a file on disk or from an embedded file system.
func ReadGlyphData(r io.Reader) (*FontGlyphData, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gz.Close()

	var data FontGlyphData
	dec := gob.NewDecoder(gz)
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode glyph data: %w", err)
	}
	return &data, nil
}

// LoadGlyphFile loads pre-computed glyph data from a .glyphs file.
func LoadGlyphFile(path string) (*FontBitmaps, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open glyph file: %w", err)
	}
	defer f.Close()

	data, err := ReadGlyphData(f)
	if err != nil {
		return nil, err
	}
	return FontBitmapsFromGlyphData(data), nil
}
