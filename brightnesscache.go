package asciiart

// GlyphBrightnessCache memoizes the raw brightness of characters,
// computed once from their glyph bitmaps. Raw brightness is the ink
// ratio of the glyph cell, before any charset normalization. Entries
// never change for the lifetime of the cache, so re-registering a
// character is free and matchers sharing a cache see identical values.
type GlyphBrightnessCache struct {
	source     BitmapSource
	brightness map[rune]float64

	// Stats (private)
	hits     int
	computes int
}

// NewGlyphBrightnessCache creates a cache backed by the given bitmap source.
func NewGlyphBrightnessCache(source BitmapSource) *GlyphBrightnessCache {
	return &GlyphBrightnessCache{
		source:     source,
		brightness: make(map[rune]float64),
	}
}

// Ensure registers a character, computing its raw brightness on first
// sight, and returns the stored value. Characters the source has no
// glyph for raster as blank and get brightness 0.
func (c *GlyphBrightnessCache) Ensure(r rune) float64 {
	if b, ok := c.brightness[r]; ok {
		c.hits++
		return b
	}
	var b float64
	if glyph, ok := c.source.Glyph(r); ok {
		b = glyph.InkRatio()
	}
	c.brightness[r] = b
	c.computes++
	return b
}

// Brightness returns the stored raw brightness for a character. The
// second return is false for characters never registered through Ensure.
func (c *GlyphBrightnessCache) Brightness(r rune) (float64, bool) {
	b, ok := c.brightness[r]
	return b, ok
}

// Len returns the number of characters registered so far.
func (c *GlyphBrightnessCache) Len() int {
	return len(c.brightness)
}

// Stats returns hit/compute statistics for the cache.
func (c *GlyphBrightnessCache) Stats() (hits, computes int) {
	return c.hits, c.computes
}

// ResetStats resets the counters without touching stored brightnesses.
func (c *GlyphBrightnessCache) ResetStats() {
	c.hits = 0
	c.computes = 0
}
