// Package verify decides whether a sequence of rendered UI values matches an
// expected sort order. It is the one piece of test logic that is not a thin
// wrapper around the browser automation layer, so it lives on its own and is
// covered by unit tests independent of any browser.
package verify

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Key selects which interpretation of the rendered text drives the ordering.
type Key string

// Sort keys
const (
	KeyPrice Key = "price"
	KeyName  Key = "name"
)

// Direction selects ascending (natural) or descending (reversed) order.
type Direction string

// Sort directions
const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// SortSpec describes the ordering a sequence is expected to follow.
type SortSpec struct {
	Key       Key
	Direction Direction
}

// Verdict is the result of a single verification call. When Sorted is false,
// Index is the first position at which the observed sequence diverges from
// its sorted copy, and Got/Want carry the values at that position.
type Verdict struct {
	Sorted bool
	Index  int
	Got    string
	Want   string
}

// ParseError reports an element whose text could not be interpreted under the
// requested sort key. It is distinct from a NotSorted verdict: the captured
// text was malformed, not merely out of order.
type ParseError struct {
	Index int
	Text  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q at index %d as a price", e.Text, e.Index)
}

// Verify reports whether observed is sorted according to spec. The input is
// never mutated; the expected order is derived on a separate copy so the
// original sequence stays available for diagnostics. Empty and single-element
// sequences are trivially sorted.
func Verify(observed []string, spec SortSpec) (Verdict, error) {
	if len(observed) <= 1 {
		return Verdict{Sorted: true}, nil
	}

	less, err := lessFunc(observed, spec)
	if err != nil {
		return Verdict{}, err
	}

	expected := make([]string, len(observed))
	copy(expected, observed)

	// Stable sort so equal keys keep their original relative order; a
	// sequence must never be flagged unsorted because of ties.
	sort.SliceStable(expected, func(i, j int) bool {
		return less(expected[i], expected[j])
	})

	for i := range observed {
		if observed[i] != expected[i] {
			return Verdict{Index: i, Got: observed[i], Want: expected[i]}, nil
		}
	}
	return Verdict{Sorted: true}, nil
}

// lessFunc builds the comparison for the given spec, parsing all prices up
// front so a malformed element surfaces as a ParseError before any sorting.
func lessFunc(observed []string, spec SortSpec) (func(a, b string) bool, error) {
	var less func(a, b string) bool

	switch spec.Key {
	case KeyPrice:
		prices := make(map[string]float64, len(observed))
		for i, text := range observed {
			value, err := parsePrice(text)
			if err != nil {
				return nil, &ParseError{Index: i, Text: text}
			}
			prices[text] = value
		}
		less = func(a, b string) bool { return prices[a] < prices[b] }
	default:
		// Name comparisons are case-sensitive, byte-wise ordinal order.
		less = func(a, b string) bool { return a < b }
	}

	if spec.Direction == Descending {
		natural := less
		less = func(a, b string) bool { return natural(b, a) }
	}
	return less, nil
}

// parsePrice converts a rendered price like "$29.99" to its numeric value.
// A single leading currency symbol is stripped; the remainder must be a
// plain decimal number.
func parsePrice(text string) (float64, error) {
	trimmed := strings.TrimPrefix(text, "$")
	return strconv.ParseFloat(trimmed, 64)
}
