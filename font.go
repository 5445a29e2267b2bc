package asciiart

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// FontBitmaps holds pre-rendered character bitmaps for a font
type FontBitmaps struct {
	glyphs map[rune]GlyphBitmap
	name   string
}

// Name returns the name of the font the bitmaps were rendered from.
func (fb *FontBitmaps) Name() string {
	return fb.name
}

// Glyph returns the bitmap for a character. The second return is false
// for characters the font was not rendered with.
func (fb *FontBitmaps) Glyph(r rune) (GlyphBitmap, bool) {
	bitmap, exists := fb.glyphs[r]
	return bitmap, exists
}

// LoadFontBitmaps pre-renders a TrueType font to 8x8 bitmaps covering
// the printable ASCII range.
func LoadFontBitmaps(path string) (*FontBitmaps, error) {
	data, err := ComputeGlyphData(path)
	if err != nil {
		return nil, err
	}
	return FontBitmapsFromGlyphData(data), nil
}

// ComputeGlyphData renders every printable ASCII glyph of a TrueType
// font to its bitmap form, ready for serialization or direct use.
func ComputeGlyphData(fontPath string) (*FontGlyphData, error) {
	ttf, err := loadFont(fontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	data := &FontGlyphData{
		FontName: filepath.Base(fontPath),
		Glyphs:   make(map[rune]GlyphBitmap),
	}

	// Pre-render ASCII printable characters
	for r := rune(32); r <= rune(126); r++ {
		data.Glyphs[r] = renderGlyphToBitmap(ttf, r)
	}

	return data, nil
}

// loadFont loads a TrueType font from file
func loadFont(path string) (*truetype.Font, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return freetype.ParseFont(fontBytes)
}

// renderGlyphToBitmap renders a single glyph to an 8x8 bitmap.
//
// The glyph is drawn to an alpha image so the anti-aliased coverage
// survives until thresholding. The 25% threshold (64/255) keeps thin
// strokes such as the dot on 'i' that a 50% cut would lose, and the
// baseline comes from the face metrics so descenders are not clipped.
func renderGlyphToBitmap(ttfFont *truetype.Font, r rune) GlyphBitmap {
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    float64(GlyphHeight), // 8 point size
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	img := image.NewAlpha(image.Rect(0, 0, GlyphWidth, GlyphHeight))

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttfFont)
	ctx.SetFontSize(float64(GlyphHeight))
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	metrics := face.Metrics()
	ascent := metrics.Ascent >> 6   // Convert from 26.6 fixed point to pixels
	descent := metrics.Descent >> 6 // Descent is typically negative
	baselineY := (GlyphHeight + int(ascent) - int(descent)) / 2

	pt := freetype.Pt(0, baselineY)
	ctx.DrawString(string(r), pt)

	var bitmap GlyphBitmap
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if img.AlphaAt(x, y).A > 64 { // 25% threshold
				bitmap.setBit(x, y, true)
			}
		}
	}

	return bitmap
}
