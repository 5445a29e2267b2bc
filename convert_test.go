package asciiart

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConvert(t *testing.T) {
	t.Parallel()

	m := newTestMatcher(stubSource{'a': 0, 'b': 32, 'c': 64}, "abc")

	grid := [][]float64{
		{0.0, 0.3},
		{0.7, 1.0},
	}
	art, err := Convert(m, grid)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	want := [][]rune{
		{'a', 'b'},
		{'b', 'c'},
	}
	if diff := cmp.Diff(want, art); diff != "" {
		t.Errorf("Art mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertEmptyCharset(t *testing.T) {
	t.Parallel()

	m := newTestMatcher(stubSource{}, "")
	if _, err := Convert(m, [][]float64{{0.5}}); !errors.Is(err, ErrEmptyCharset) {
		t.Errorf("Expected ErrEmptyCharset, got %v", err)
	}
}

func TestConvertEmptyGrid(t *testing.T) {
	t.Parallel()

	m := newTestMatcher(stubSource{'a': 32}, "a")
	art, err := Convert(m, nil)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if len(art) != 0 {
		t.Errorf("Expected empty art for empty grid, got %d rows", len(art))
	}
}
