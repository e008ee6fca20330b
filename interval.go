package aoc

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Interval is the closed integer range [Lo, Hi].
type Interval struct {
	Lo, Hi int
}

// Len returns the number of integers in the interval.
func (iv Interval) Len() int {
	return iv.Hi - iv.Lo + 1
}

func (iv Interval) Contains(x int) bool {
	return iv.Lo <= x && x <= iv.Hi
}

// ParseInterval parses "lo-hi".
func ParseInterval(s string) (Interval, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Interval{}, fmt.Errorf("invalid range %q", s)
	}
	a, err := Int(lo)
	if err != nil {
		return Interval{}, fmt.Errorf("range %q: %w", s, err)
	}
	b, err := Int(hi)
	if err != nil {
		return Interval{}, fmt.Errorf("range %q: %w", s, err)
	}
	if b < a {
		return Interval{}, fmt.Errorf("range %q ends before it starts", s)
	}
	return Interval{a, b}, nil
}

// MergeIntervals returns the union of ivs as sorted, disjoint,
// non-adjacent intervals. ivs is not modified.
func MergeIntervals(ivs []Interval) []Interval {
	sorted := slices.Clone(ivs)
	slices.SortFunc(sorted, func(a, b Interval) int {
		return cmp.Or(cmp.Compare(a.Lo, b.Lo), cmp.Compare(a.Hi, b.Hi))
	})
	var out []Interval
	for _, iv := range sorted {
		if n := len(out); n > 0 && iv.Lo <= out[n-1].Hi+1 {
			out[n-1].Hi = max(out[n-1].Hi, iv.Hi)
			continue
		}
		out = append(out, iv)
	}
	return out
}
