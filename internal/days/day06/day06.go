// Package day06 solves the cephalopod math worksheet: problems laid out
// side by side in fixed-width columns, each closed by a '+' or '*' on the
// last line.
package day06

import (
	"errors"
	"fmt"
	"strings"

	"github.com/maisem/aoc2025"
)

var Solution = aoc.Puzzle[Worksheet]{
	Day:   6,
	Parse: Parse,
	Part1: aoc.Answer(Part1),
	Part2: aoc.Answer(Part2),
}

func init() { aoc.Register(Solution) }

// Worksheet holds the raw text of every problem.
type Worksheet struct {
	// Cells[row][problem] is the slice of a number line under one problem,
	// spaces included.
	Cells aoc.Grid[string]
	Ops   []byte
}

// Parse splits the worksheet on the operator positions of its last line.
// Each problem starts at its operator and runs up to the next one.
func Parse(in aoc.Input) (Worksheet, error) {
	lines := in.Lines()
	if len(lines) < 2 {
		return Worksheet{}, errors.New("want number lines followed by an operator line")
	}
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	for i, l := range lines {
		lines[i] = l + strings.Repeat(" ", width-len(l))
	}

	opLine := lines[len(lines)-1]
	var ops []byte
	var starts []int
	for i := range len(opLine) {
		switch c := opLine[i]; c {
		case '+', '*':
			ops = append(ops, c)
			starts = append(starts, i)
		case ' ':
		default:
			return Worksheet{}, fmt.Errorf("line %d: unexpected %q in operator line", len(lines), c)
		}
	}
	if len(starts) == 0 || starts[0] != 0 {
		return Worksheet{}, fmt.Errorf("line %d: operator line must start with an operator", len(lines))
	}
	widths := make([]int, len(starts)-1)
	for i := range widths {
		widths[i] = starts[i+1] - starts[i]
	}

	body := strings.Join(lines[:len(lines)-1], "\n")
	cells, err := aoc.ParseFixedWidthGrid(body, widths, func(s string) (string, error) { return s, nil })
	if err != nil {
		return Worksheet{}, err
	}
	ws := Worksheet{Cells: cells, Ops: ops}
	for i := range ops {
		p := ws.problem(i)
		for y, c := range p {
			if _, err := aoc.Int(c); err != nil {
				return Worksheet{}, fmt.Errorf("line %d, problem %d: %w", y+1, i+1, err)
			}
		}
		if _, err := columns(p); err != nil {
			return Worksheet{}, fmt.Errorf("problem %d: %w", i+1, err)
		}
	}
	return ws, nil
}

// problem returns the cells of problem i, top to bottom.
func (ws Worksheet) problem(i int) []string {
	out := make([]string, len(ws.Cells))
	for y, row := range ws.Cells {
		out[y] = row[i]
	}
	return out
}

// columns reads a problem right-to-left the cephalopod way: each character
// column is one number, most significant digit at the top.
func columns(cells []string) ([]int, error) {
	g := make(aoc.Grid[byte], len(cells))
	for y, c := range cells {
		g[y] = []byte(c)
	}
	var out []int
	for x, col := range g.Transpose() {
		s := strings.TrimSpace(string(col))
		if s == "" {
			continue
		}
		n, err := aoc.Int(s)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", x+1, err)
		}
		out = append(out, n)
	}
	return out, nil
}

func apply(op byte, nums []int) int {
	if op == '*' {
		return aoc.Product(nums...)
	}
	return aoc.Sum(nums...)
}

// Part1 reads each number left to right along its line.
func Part1(ws Worksheet) int {
	total := 0
	for i, op := range ws.Ops {
		var nums []int
		for _, c := range ws.problem(i) {
			nums = append(nums, aoc.MustGet(aoc.Int(c)))
		}
		total += apply(op, nums)
	}
	return total
}

// Part2 reads the numbers column-wise.
func Part2(ws Worksheet) int {
	total := 0
	for i, op := range ws.Ops {
		total += apply(op, aoc.MustGet(columns(ws.problem(i))))
	}
	return total
}
