package output

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	asciiart "github.com/ShakedAmar118/ascii-art-generator"
	"github.com/ShakedAmar118/ascii-art-generator/imageproc"
)

// PNG rasterizes art back into an image, drawing each cell with its
// glyph bitmap as black ink on white. Characters the source has no
// bitmap for render blank.
type PNG struct {
	path   string
	source asciiart.BitmapSource
	scale  int
}

// NewPNG creates a PNG renderer writing to path. Glyph pixels come
// from source and are magnified scale times; scales below one render
// at native glyph size.
func NewPNG(path string, source asciiart.BitmapSource, scale int) *PNG {
	if scale < 1 {
		scale = 1
	}
	return &PNG{path: path, source: source, scale: scale}
}

// Render rasterizes and writes the art.
func (p *PNG) Render(art [][]rune) error {
	rows := len(art)
	cols := 0
	if rows > 0 {
		cols = len(art[0])
	}

	base := image.NewRGBA(image.Rect(0, 0, cols*asciiart.GlyphWidth, rows*asciiart.GlyphHeight))
	draw.Draw(base, base.Bounds(), image.White, image.Point{}, draw.Src)

	black := color.RGBA{A: 255}
	for rowIdx, row := range art {
		for colIdx, r := range row {
			glyph, ok := p.source.Glyph(r)
			if !ok {
				continue
			}
			x0, y0 := colIdx*asciiart.GlyphWidth, rowIdx*asciiart.GlyphHeight
			for y := 0; y < asciiart.GlyphHeight; y++ {
				for x := 0; x < asciiart.GlyphWidth; x++ {
					if glyph.Bit(x, y) {
						base.SetRGBA(x0+x, y0+y, black)
					}
				}
			}
		}
	}

	out := base
	if p.scale > 1 {
		scaled := image.NewRGBA(image.Rect(0, 0,
			base.Bounds().Dx()*p.scale, base.Bounds().Dy()*p.scale))
		xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), base, base.Bounds(), xdraw.Src, nil)
		out = scaled
	}
	return imageproc.SavePNG(out, p.path)
}
