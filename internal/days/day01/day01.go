// Package day01 turns a safe dial left and right and counts how often it
// points at 0.
package day01

import (
	"fmt"

	"github.com/maisem/aoc2025"
)

var Solution = aoc.Puzzle[[]int]{
	Day:   1,
	Parse: Parse,
	Part1: aoc.Answer(Part1),
	Part2: aoc.Answer(Part2),
}

func init() { aoc.Register(Solution) }

const (
	dialSize = 100
	start    = 50
)

// Parse reads one rotation per line, "L68" or "R48". Left turns are
// negative.
func Parse(in aoc.Input) ([]int, error) {
	return aoc.ParseLines(in.Text, parseRotation)
}

func parseRotation(s string) (int, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid rotation %q", s)
	}
	// Only plain digits: no sign or spaces after the direction.
	if _, err := aoc.Digits(s[1:]); err != nil {
		return 0, fmt.Errorf("invalid rotation %q: %w", s, err)
	}
	n, err := aoc.Int(s[1:])
	if err != nil {
		return 0, fmt.Errorf("invalid rotation %q: %w", s, err)
	}
	switch s[0] {
	case 'L':
		return -n, nil
	case 'R':
		return n, nil
	}
	return 0, fmt.Errorf("invalid direction in %q", s)
}

func mod(a int) int {
	return ((a % dialSize) + dialSize) % dialSize
}

// Part1 counts the rotations that leave the dial at 0.
func Part1(rots []int) int {
	pos, n := start, 0
	for _, r := range rots {
		pos = mod(pos + r)
		if pos == 0 {
			n++
		}
	}
	return n
}

// Part2 counts every click that lands on 0, including those in the middle
// of a rotation.
func Part2(rots []int) int {
	pos, n := start, 0
	for _, r := range rots {
		n += aoc.AbsDiff(r, 0) / dialSize
		next := pos + r%dialSize
		if pos > 0 && next <= 0 || next >= dialSize {
			n++
		}
		pos = mod(next)
	}
	return n
}
