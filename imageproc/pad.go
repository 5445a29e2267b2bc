package imageproc

import (
	"image"
	"image/draw"
	"math/bits"
)

// NextPowerOfTwo returns the smallest power of two greater than or
// equal to n. Values below one round up to one.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// Pad extends an image to power-of-two dimensions. The source lands
// centered on a white canvas; an image whose dimensions are already
// powers of two is returned as is, without copying.
func Pad(img *RGBAImage) *RGBAImage {
	w, h := img.Width(), img.Height()
	pw, ph := NextPowerOfTwo(w), NextPowerOfTwo(h)
	if pw == w && ph == h {
		return img
	}

	padded := NewRGBAImage(pw, ph)
	draw.Draw(padded.RGBA, padded.Bounds(), image.White, image.Point{}, draw.Src)

	offset := image.Pt((pw-w)/2, (ph-h)/2)
	draw.Draw(padded.RGBA, image.Rectangle{Min: offset, Max: offset.Add(image.Pt(w, h))},
		img.RGBA, image.Point{}, draw.Src)
	return padded
}
