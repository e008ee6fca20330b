// Package day12 checks which regions under the tree can take their list
// of presents. A region qualifies when its area covers the presents'
// total area.
package day12

import (
	"fmt"
	"strings"

	"github.com/maisem/aoc2025"
)

var Solution = aoc.Puzzle[Farm]{
	Day:   12,
	Parse: Parse,
	Part1: aoc.Answer(Part1),
}

func init() { aoc.Register(Solution) }

type Region struct {
	Width, Height int
	Counts        []int // presents wanted, per shape
}

type Farm struct {
	Shapes  []aoc.Grid[bool]
	Regions []Region
}

// Parse reads the present shapes, each an "N:" header over a '#'/'.'
// drawing, followed by one block of "WxH: counts..." regions.
func Parse(in aoc.Input) (Farm, error) {
	var f Farm
	var regions []string
	for _, b := range aoc.Blocks(in.Text) {
		if !strings.Contains(b, "#") {
			regions = append(regions, b)
			continue
		}
		s, err := parseShape(b, len(f.Shapes))
		if err != nil {
			return Farm{}, fmt.Errorf("shape %d: %w", len(f.Shapes), err)
		}
		f.Shapes = append(f.Shapes, s)
	}
	if len(regions) != 1 {
		return Farm{}, fmt.Errorf("want one block of regions, got %d", len(regions))
	}
	rs, err := aoc.ParseLines(regions[0], parseRegion)
	if err != nil {
		return Farm{}, fmt.Errorf("regions: %w", err)
	}
	for i, r := range rs {
		if len(r.Counts) != len(f.Shapes) {
			return Farm{}, fmt.Errorf("region %d: %d counts for %d shapes", i+1, len(r.Counts), len(f.Shapes))
		}
	}
	f.Regions = rs
	return f, nil
}

func parseShape(b string, idx int) (aoc.Grid[bool], error) {
	header, drawing, _ := strings.Cut(b, "\n")
	n, err := aoc.Int(strings.TrimSuffix(header, ":"))
	if err != nil || !strings.HasSuffix(header, ":") {
		return nil, fmt.Errorf("bad header %q", header)
	}
	if n != idx {
		return nil, fmt.Errorf("header says %d", n)
	}
	return aoc.ParseCharGrid(drawing, func(r rune) (bool, error) {
		switch r {
		case '#':
			return true, nil
		case '.':
			return false, nil
		}
		return false, fmt.Errorf("unexpected %q", r)
	})
}

func parseRegion(s string) (Region, error) {
	size, counts, ok := strings.Cut(s, ":")
	if !ok {
		return Region{}, fmt.Errorf("want \"WxH: counts\", got %q", s)
	}
	w, h, ok := strings.Cut(size, "x")
	if !ok {
		return Region{}, fmt.Errorf("bad size %q", size)
	}
	var r Region
	var err error
	if r.Width, err = aoc.Int(w); err != nil {
		return Region{}, err
	}
	if r.Height, err = aoc.Int(h); err != nil {
		return Region{}, err
	}
	if r.Counts, err = aoc.Ints(counts); err != nil {
		return Region{}, err
	}
	return r, nil
}

func cells(s aoc.Grid[bool]) int {
	return s.Count(func(b bool) bool { return b })
}

// Part1 counts the regions whose area is at least the combined area of
// their presents.
func Part1(f Farm) int {
	n := 0
	for _, r := range f.Regions {
		need := 0
		for i, c := range r.Counts {
			need += c * cells(f.Shapes[i])
		}
		if need <= r.Width*r.Height {
			n++
		}
	}
	return n
}
