package asciiart

import "math/bits"

const (
	// GlyphWidth and GlyphHeight define the standard character cell size
	GlyphWidth  = 8
	GlyphHeight = 8
)

// GlyphBitmap represents an 8x8 character as a 64-bit integer
// Each bit represents a pixel: 1 = ink, 0 = background
type GlyphBitmap uint64

// BitmapSource supplies the glyph raster for a character. Implementations
// must be deterministic: the same rune always yields the same bitmap.
type BitmapSource interface {
	Glyph(r rune) (GlyphBitmap, bool)
}

// Bit reports whether the pixel at (x, y) is ink.
func (g GlyphBitmap) Bit(x, y int) bool {
	if x < 0 || x >= GlyphWidth || y < 0 || y >= GlyphHeight {
		return false
	}
	return g&(1<<(y*GlyphWidth+x)) != 0
}

// setBit sets a specific bit in the bitmap
func (g *GlyphBitmap) setBit(x, y int, value bool) {
	if x < 0 || x >= GlyphWidth || y < 0 || y >= GlyphHeight {
		return
	}
	pos := y*GlyphWidth + x
	if value {
		*g |= 1 << pos
	} else {
		*g &= ^(1 << pos)
	}
}

// OnCount returns the number of ink pixels in the glyph.
func (g GlyphBitmap) OnCount() int {
	return bits.OnesCount64(uint64(g))
}

// InkRatio returns the fraction of the cell covered by ink, in [0, 1].
func (g GlyphBitmap) InkRatio() float64 {
	return float64(g.OnCount()) / float64(GlyphWidth*GlyphHeight)
}
