// Package day04 finds the paper rolls a forklift can reach: those with
// fewer than four rolls among their eight neighbours.
package day04

import (
	"fmt"

	"github.com/maisem/aoc2025"
)

var Solution = aoc.Puzzle[aoc.Grid[bool]]{
	Day:   4,
	Parse: Parse,
	Part1: aoc.Answer(Part1),
	Part2: aoc.Answer(Part2),
}

func init() { aoc.Register(Solution) }

// Parse reads the floor plan; '@' is a roll and '.' is empty.
func Parse(in aoc.Input) (aoc.Grid[bool], error) {
	return aoc.ParseCharGrid(in.Text, func(r rune) (bool, error) {
		switch r {
		case '@':
			return true, nil
		case '.':
			return false, nil
		}
		return false, fmt.Errorf("unexpected %q", r)
	})
}

// accessible returns the rolls with fewer than four neighbouring rolls.
func accessible(g aoc.Grid[bool]) []aoc.Pt {
	var out []aoc.Pt
	for p, roll := range g.All() {
		if !roll {
			continue
		}
		n := 0
		p.ForNeighbors(func(q aoc.Pt) bool {
			if v, _ := g.AtOk(q); v {
				n++
			}
			return n < 4
		})
		if n < 4 {
			out = append(out, p)
		}
	}
	return out
}

// Part1 counts the rolls that can be reached right away.
func Part1(g aoc.Grid[bool]) int {
	return len(accessible(g))
}

// Part2 keeps removing every accessible roll until none is left and
// returns how many were removed.
func Part2(g aoc.Grid[bool]) int {
	g = g.Clone()
	removed := 0
	for {
		rolls := accessible(g)
		if len(rolls) == 0 {
			return removed
		}
		for _, p := range rolls {
			g.Set(p, false)
		}
		removed += len(rolls)
	}
}
