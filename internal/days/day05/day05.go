// Package day05 checks ingredient IDs against the database's fresh ranges.
package day05

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/maisem/aoc2025"
)

var Solution = aoc.Puzzle[Inventory]{
	Day:   5,
	Parse: Parse,
	Part1: aoc.Answer(Part1),
	Part2: aoc.Answer(Part2),
}

func init() { aoc.Register(Solution) }

type Inventory struct {
	Fresh []aoc.Interval // merged, sorted
	IDs   []int          // sorted
}

// Parse reads the fresh ranges, a blank line and the available IDs.
func Parse(in aoc.Input) (Inventory, error) {
	blocks := aoc.Blocks(in.Text)
	if len(blocks) != 2 {
		return Inventory{}, fmt.Errorf("want ranges and IDs separated by a blank line, got %d sections", len(blocks))
	}
	ranges, err := aoc.ParseLines(blocks[0], aoc.ParseInterval)
	if err != nil {
		return Inventory{}, fmt.Errorf("ranges: %w", err)
	}
	ids, err := aoc.ParseLines(blocks[1], aoc.Int)
	if err != nil {
		return Inventory{}, fmt.Errorf("IDs: %w", err)
	}
	if len(ranges) == 0 {
		return Inventory{}, errors.New("no fresh ranges")
	}
	slices.Sort(ids)
	return Inventory{Fresh: aoc.MergeIntervals(ranges), IDs: ids}, nil
}

// Part1 counts the available IDs that fall in a fresh range.
func Part1(inv Inventory) int {
	n := 0
	for _, iv := range inv.Fresh {
		lo := sort.SearchInts(inv.IDs, iv.Lo)
		hi := sort.SearchInts(inv.IDs, iv.Hi+1)
		n += hi - lo
	}
	return n
}

// Part2 counts every ID the fresh ranges cover.
func Part2(inv Inventory) int {
	n := 0
	for _, iv := range inv.Fresh {
		n += iv.Len()
	}
	return n
}
