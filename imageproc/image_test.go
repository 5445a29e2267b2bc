package imageproc

import (
	"image/color"
	"path/filepath"
	"testing"
)

func TestRGBColorRoundTrip(t *testing.T) {
	t.Parallel()

	rgb := RGB{R: 10, G: 20, B: 30}
	c := rgb.ToColor()
	if c != (color.RGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("Expected opaque {10 20 30}, got %v", c)
	}
	if got := RGBFromColor(c); got != rgb {
		t.Errorf("Expected %v back, got %v", rgb, got)
	}
}

func TestRGBAImageAccessors(t *testing.T) {
	t.Parallel()

	img := NewRGBAImage(4, 3)
	if img.Width() != 4 || img.Height() != 3 {
		t.Fatalf("Expected 4x3, got %dx%d", img.Width(), img.Height())
	}

	c := RGB{R: 200, G: 100, B: 50}
	img.SetRGB(3, 2, c)
	if got := img.GetRGB(3, 2); got != c {
		t.Errorf("Expected %v, got %v", c, got)
	}
	if got := img.GetRGB(0, 0); got != (RGB{}) {
		t.Errorf("Expected zero value at untouched pixel, got %v", got)
	}
}

func TestRGBAImageClone(t *testing.T) {
	t.Parallel()

	img := CreateSolidImage(2, 2, RGB{R: 5, G: 5, B: 5})
	clone := img.Clone()
	clone.SetRGB(0, 0, RGB{R: 99})

	if got := img.GetRGB(0, 0); got != (RGB{R: 5, G: 5, B: 5}) {
		t.Errorf("Expected original untouched by clone edit, got %v", got)
	}
	if got := clone.GetRGB(0, 0); got != (RGB{R: 99}) {
		t.Errorf("Expected clone edit to stick, got %v", got)
	}
}

func TestSaveAndLoadPNG(t *testing.T) {
	t.Parallel()

	img := CreateGradientImage(16, 8)
	path := filepath.Join(t.TempDir(), "gradient.png")
	if err := SavePNG(img, path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	loaded, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if loaded.Width() != 16 || loaded.Height() != 8 {
		t.Fatalf("Expected 16x8, got %dx%d", loaded.Width(), loaded.Height())
	}
	for _, x := range []int{0, 7, 15} {
		if got, want := loaded.GetRGB(x, 4), img.GetRGB(x, 4); got != want {
			t.Errorf("Expected %v at x=%d, got %v", want, x, got)
		}
	}
}

func TestLoadImageMissing(t *testing.T) {
	t.Parallel()

	if _, err := LoadImage(filepath.Join(t.TempDir(), "absent.png")); err == nil {
		t.Error("Expected error for missing image")
	}
}
