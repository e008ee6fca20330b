// Package day03 picks the largest joltage each battery bank can produce by
// turning on a fixed number of its batteries.
package day03

import (
	"errors"

	"github.com/maisem/aoc2025"
)

var Solution = aoc.Puzzle[aoc.Grid[int]]{
	Day:   3,
	Parse: Parse,
	Part1: aoc.Answer(Part1),
	Part2: aoc.Answer(Part2),
}

func init() { aoc.Register(Solution) }

// Parse reads one bank of single-digit batteries per line.
func Parse(in aoc.Input) (aoc.Grid[int], error) {
	g, err := aoc.ParseCharGrid(in.Text, aoc.Digit)
	if err != nil {
		return nil, err
	}
	if len(g) > 0 && len(g[0]) < 2 {
		return nil, errors.New("banks need at least two batteries")
	}
	return g, nil
}

// maxJoltage returns the largest number formed by k of bank's digits kept
// in order, or 0 if the bank has fewer than k.
func maxJoltage(bank []int, k int) int {
	// best[n] is the largest n-digit pick seen so far, -1 if none.
	best := make([]int, k+1)
	for i := 1; i <= k; i++ {
		best[i] = -1
	}
	for _, d := range bank {
		for n := k; n >= 1; n-- {
			if best[n-1] >= 0 {
				best[n] = max(best[n], best[n-1]*10+d)
			}
		}
	}
	return max(best[k], 0)
}

func total(banks aoc.Grid[int], k int) int {
	sum := 0
	for _, bank := range banks {
		sum += maxJoltage(bank, k)
	}
	return sum
}

// Part1 turns on two batteries per bank.
func Part1(banks aoc.Grid[int]) int { return total(banks, 2) }

// Part2 turns on twelve batteries per bank.
func Part2(banks aoc.Grid[int]) int { return total(banks, 12) }
