package asciiart

import (
	"errors"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// RoundingPolicy selects which neighbor wins when a queried brightness
// falls between two charset entries.
type RoundingPolicy int

const (
	// RoundAbs picks the nearer neighbor, the lower one on exact ties.
	RoundAbs RoundingPolicy = iota
	// RoundUp always picks the neighbor at or above the query.
	RoundUp
	// RoundDown always picks the neighbor at or below the query.
	RoundDown
)

// String returns the policy name as it appears in shell commands.
func (p RoundingPolicy) String() string {
	switch p {
	case RoundUp:
		return "up"
	case RoundDown:
		return "down"
	default:
		return "abs"
	}
}

// ErrEmptyCharset is returned by Match when no characters are active.
var ErrEmptyCharset = errors.New("charset is empty")

// Matcher maps brightness values to the closest character of an active
// charset. Matching works on normalized brightness: each character's
// raw ink ratio rescaled against the darkest and brightest members of
// the current set, so the full [0, 1] range is always covered.
// Mutations keep the running raw bounds current but defer the full
// renormalization to the next Match call, so a burst of adds and
// removes costs one index rebuild instead of many. Adds and removes
// that leave the bounds untouched edit the index in place.
type Matcher struct {
	cache  *GlyphBrightnessCache
	active map[rune]struct{}
	policy RoundingPolicy

	// Normalization state
	maxRaw float64
	minRaw float64
	index  brightnessIndex
	stale  bool

	// Stats
	rebuilds int
}

// MatcherOption is a functional option for configuring a Matcher.
type MatcherOption func(*Matcher)

// WithPolicy sets the initial rounding policy. The default is RoundAbs.
func WithPolicy(p RoundingPolicy) MatcherOption {
	return func(m *Matcher) {
		m.policy = p
	}
}

// NewMatcher creates a matcher over the given brightness cache and
// registers every character of the initial charset.
func NewMatcher(cache *GlyphBrightnessCache, charset []rune, opts ...MatcherOption) *Matcher {
	m := &Matcher{
		cache:  cache,
		active: make(map[rune]struct{}),
		policy: RoundAbs,

		// maxRaw below minRaw marks the empty set; the first Add
		// collapses both onto its own raw brightness.
		maxRaw: 0.0,
		minRaw: 1.0,
		stale:  true,
	}
	for _, opt := range opts {
		opt(m)
	}
	for _, r := range charset {
		m.Add(r)
	}
	return m
}

// Add registers a character with the active set. Adding a character
// that is already active is a no-op. A character darker or brighter
// than everything seen so far moves a bound and schedules a rebuild;
// otherwise it slots straight into the index.
func (m *Matcher) Add(r rune) {
	raw := m.cache.Ensure(r)
	m.active[r] = struct{}{}

	boundsChanged := false
	if raw > m.maxRaw {
		m.maxRaw = raw
		m.stale = true
		boundsChanged = true
	}
	if raw < m.minRaw {
		m.minRaw = raw
		m.stale = true
		boundsChanged = true
	}
	if !boundsChanged && !m.stale {
		m.index.insert(m.normalized(raw), r)
	}
}

// Remove drops a character from the active set. Removing a character
// that is not active is a no-op. Removing a character that sits on a
// bound rescans the remaining set for fresh bounds and schedules a
// rebuild; otherwise the character leaves the index in place.
func (m *Matcher) Remove(r rune) {
	if _, ok := m.active[r]; !ok {
		return
	}
	delete(m.active, r)

	raw, _ := m.cache.Brightness(r)
	if raw == m.maxRaw || raw == m.minRaw {
		m.stale = true
		m.rescanBounds()
		return
	}
	if !m.stale {
		m.index.remove(m.normalized(raw), r)
	}
}

// SetPolicy changes the rounding policy, effective from the next Match.
func (m *Matcher) SetPolicy(p RoundingPolicy) {
	m.policy = p
}

// Policy returns the current rounding policy.
func (m *Matcher) Policy() RoundingPolicy {
	return m.policy
}

// Match returns the active character whose normalized brightness is
// closest to the given value under the current rounding policy. Values
// at or beyond the charset's extremes clamp to the extreme bucket, and
// characters sharing a brightness resolve to the smallest one.
func (m *Matcher) Match(brightness float64) (rune, error) {
	if len(m.active) == 0 {
		return 0, ErrEmptyCharset
	}
	if m.stale {
		m.rebuild()
	}

	if last := m.index.last(); brightness >= last.key {
		return last.chars[0], nil
	}
	if first := m.index.first(); brightness <= first.key {
		return first.chars[0], nil
	}

	upper := m.index.ceiling(brightness)
	lower := m.index.floor(brightness)
	switch m.policy {
	case RoundUp:
		return upper.chars[0], nil
	case RoundDown:
		return lower.chars[0], nil
	}

	// RoundAbs: the lower bucket wins exact distance ties.
	if upper.key-brightness < brightness-lower.key {
		return upper.chars[0], nil
	}
	return lower.chars[0], nil
}

// Size returns the number of characters currently active.
func (m *Matcher) Size() int {
	return len(m.active)
}

// Chars returns the active characters in ascending order.
func (m *Matcher) Chars() []rune {
	chars := maps.Keys(m.active)
	slices.Sort(chars)
	return chars
}

// String returns the active characters as a sorted space-separated
// string, the form the shell's chars command prints.
func (m *Matcher) String() string {
	var sb strings.Builder
	for _, r := range m.Chars() {
		sb.WriteRune(r)
		sb.WriteByte(' ')
	}
	return sb.String()
}

// Rebuilds returns how many full index rebuilds Match has performed.
func (m *Matcher) Rebuilds() int {
	return m.rebuilds
}

// normalized rescales a raw brightness against the current bounds.
// Coinciding bounds normalize to 0 rather than dividing by zero, so a
// uniform charset still matches.
func (m *Matcher) normalized(raw float64) float64 {
	if m.maxRaw == m.minRaw {
		return 0
	}
	return (raw - m.minRaw) / (m.maxRaw - m.minRaw)
}

// rescanBounds recomputes the raw bounds from the remaining active set.
// The bounds reset first: the new extremes must come from the remaining
// characters, and an emptied set returns to the initial bounds.
func (m *Matcher) rescanBounds() {
	m.maxRaw = 0.0
	m.minRaw = 1.0
	for r := range m.active {
		raw, _ := m.cache.Brightness(r)
		if raw > m.maxRaw {
			m.maxRaw = raw
		}
		if raw < m.minRaw {
			m.minRaw = raw
		}
	}
}

// rebuild renormalizes every active character into a fresh index.
func (m *Matcher) rebuild() {
	m.index.reset()
	for r := range m.active {
		raw, _ := m.cache.Brightness(r)
		m.index.insert(m.normalized(raw), r)
	}
	m.stale = false
	m.rebuilds++
}
