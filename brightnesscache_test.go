package asciiart

import "testing"

// glyphWithInk returns a bitmap with exactly n ink pixels set.
func glyphWithInk(n int) GlyphBitmap {
	var g GlyphBitmap
	for i := 0; i < n; i++ {
		g.setBit(i%GlyphWidth, i/GlyphWidth, true)
	}
	return g
}

// stubSource maps runes to fixed ink counts for predictable brightnesses.
type stubSource map[rune]int

func (s stubSource) Glyph(r rune) (GlyphBitmap, bool) {
	n, ok := s[r]
	if !ok {
		return 0, false
	}
	return glyphWithInk(n), true
}

func TestCacheEnsureIdempotent(t *testing.T) {
	t.Parallel()

	c := NewGlyphBrightnessCache(stubSource{'a': 16})

	first := c.Ensure('a')
	if first != 16.0/64.0 {
		t.Errorf("Expected brightness %f, got %f", 16.0/64.0, first)
	}

	second := c.Ensure('a')
	if second != first {
		t.Errorf("Expected repeated Ensure to return %f, got %f", first, second)
	}
	if c.Len() != 1 {
		t.Errorf("Expected 1 cached entry, got %d", c.Len())
	}

	hits, computes := c.Stats()
	if hits != 1 || computes != 1 {
		t.Errorf("Expected hits=1 computes=1, got hits=%d computes=%d", hits, computes)
	}
}

func TestCacheBrightnessLookup(t *testing.T) {
	t.Parallel()

	c := NewGlyphBrightnessCache(stubSource{'a': 32})

	if _, ok := c.Brightness('a'); ok {
		t.Error("Brightness should report unregistered characters as absent")
	}

	c.Ensure('a')
	b, ok := c.Brightness('a')
	if !ok {
		t.Fatal("Expected 'a' to be registered after Ensure")
	}
	if b != 0.5 {
		t.Errorf("Expected brightness 0.5, got %f", b)
	}
}

// TestCacheUnknownGlyph verifies characters the source cannot raster are
// registered as blank rather than rejected.
func TestCacheUnknownGlyph(t *testing.T) {
	t.Parallel()

	c := NewGlyphBrightnessCache(stubSource{})

	b := c.Ensure('?')
	if b != 0 {
		t.Errorf("Expected unknown glyph brightness 0, got %f", b)
	}
	if got, ok := c.Brightness('?'); !ok || got != 0 {
		t.Errorf("Expected registered blank entry, got %f ok=%v", got, ok)
	}
}

func TestCacheExtremes(t *testing.T) {
	t.Parallel()

	c := NewGlyphBrightnessCache(stubSource{'#': 64, ' ': 0})

	if b := c.Ensure('#'); b != 1.0 {
		t.Errorf("Expected full glyph brightness 1, got %f", b)
	}
	if b := c.Ensure(' '); b != 0.0 {
		t.Errorf("Expected blank glyph brightness 0, got %f", b)
	}
}

func TestCacheStatsReset(t *testing.T) {
	t.Parallel()

	c := NewGlyphBrightnessCache(stubSource{'a': 8})
	c.Ensure('a')
	c.Ensure('a')

	c.ResetStats()
	hits, computes := c.Stats()
	if hits != 0 || computes != 0 {
		t.Errorf("Expected zero stats after reset, got hits=%d computes=%d", hits, computes)
	}

	// Stored values survive a stats reset.
	if b, ok := c.Brightness('a'); !ok || b != 8.0/64.0 {
		t.Errorf("Expected cached brightness to survive reset, got %f ok=%v", b, ok)
	}
}
