package asciiart

import (
	"slices"
	"sort"
)

// indexEntry is one bucket of the brightness index: every active
// character whose normalized brightness equals key, sorted ascending.
type indexEntry struct {
	key   float64
	chars []rune
}

// brightnessIndex is an ordered mapping from normalized brightness to
// the characters at that exact value. Entries stay sorted by key so
// floor and ceiling lookups are binary searches.
type brightnessIndex struct {
	entries []indexEntry
}

func (ix *brightnessIndex) reset() {
	ix.entries = ix.entries[:0]
}

func (ix *brightnessIndex) len() int {
	return len(ix.entries)
}

// search returns the position of the first entry with key >= target,
// or len(entries) if there is none.
func (ix *brightnessIndex) search(target float64) int {
	return sort.Search(len(ix.entries), func(i int) bool {
		return ix.entries[i].key >= target
	})
}

// insert adds a character at the given key, creating the bucket if
// needed. Inserting a character already in its bucket is a no-op.
func (ix *brightnessIndex) insert(key float64, r rune) {
	pos := ix.search(key)
	if pos < len(ix.entries) && ix.entries[pos].key == key {
		e := &ix.entries[pos]
		cpos, found := slices.BinarySearch(e.chars, r)
		if !found {
			e.chars = slices.Insert(e.chars, cpos, r)
		}
		return
	}
	ix.entries = slices.Insert(ix.entries, pos, indexEntry{key: key, chars: []rune{r}})
}

// remove deletes a character from its bucket, dropping the bucket when
// it empties. Missing keys and missing characters are no-ops.
func (ix *brightnessIndex) remove(key float64, r rune) {
	pos := ix.search(key)
	if pos == len(ix.entries) || ix.entries[pos].key != key {
		return
	}
	e := &ix.entries[pos]
	cpos, found := slices.BinarySearch(e.chars, r)
	if !found {
		return
	}
	e.chars = slices.Delete(e.chars, cpos, cpos+1)
	if len(e.chars) == 0 {
		ix.entries = slices.Delete(ix.entries, pos, pos+1)
	}
}

func (ix *brightnessIndex) first() *indexEntry {
	if len(ix.entries) == 0 {
		return nil
	}
	return &ix.entries[0]
}

func (ix *brightnessIndex) last() *indexEntry {
	if len(ix.entries) == 0 {
		return nil
	}
	return &ix.entries[len(ix.entries)-1]
}

// ceiling returns the entry with the smallest key >= target, or nil.
func (ix *brightnessIndex) ceiling(target float64) *indexEntry {
	pos := ix.search(target)
	if pos == len(ix.entries) {
		return nil
	}
	return &ix.entries[pos]
}

// floor returns the entry with the largest key <= target, or nil.
func (ix *brightnessIndex) floor(target float64) *indexEntry {
	pos := ix.search(target)
	if pos < len(ix.entries) && ix.entries[pos].key == target {
		return &ix.entries[pos]
	}
	if pos == 0 {
		return nil
	}
	return &ix.entries[pos-1]
}
