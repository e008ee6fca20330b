// Package day07 follows a tachyon beam down a manifold. The beam enters at
// 'S' and moves straight down; a splitter '^' stops it and emits two new
// beams from its left and right neighbours.
package day07

import (
	"fmt"

	"github.com/maisem/aoc2025"
)

var Solution = aoc.Puzzle[Manifold]{
	Day:   7,
	Parse: Parse,
	Part1: aoc.Answer(Part1),
	Part2: aoc.Answer(Part2),
}

func init() { aoc.Register(Solution) }

type cell byte

const (
	empty    cell = '.'
	start    cell = 'S'
	splitter cell = '^'
)

type Manifold struct {
	Start aoc.Pt
	// Drop[y][x] is how far a beam at (x, y) falls before it reaches a
	// splitter. A beam that falls past the last row leaves the manifold.
	Drop aoc.Grid[int]
}

func Parse(in aoc.Input) (Manifold, error) {
	g, err := aoc.ParseCharGrid(in.Text, func(r rune) (cell, error) {
		switch c := cell(r); c {
		case empty, start, splitter:
			return c, nil
		}
		return 0, fmt.Errorf("unexpected %q", r)
	})
	if err != nil {
		return Manifold{}, err
	}
	if n := g.Count(func(c cell) bool { return c == start }); n != 1 {
		return Manifold{}, fmt.Errorf("want exactly one start, found %d", n)
	}
	s, _ := g.Find(func(c cell) bool { return c == start })

	size := g.Size()
	drop := aoc.MakeGrid[int](size.X, size.Y)
	for x := range size.X {
		next := 0
		for y := size.Y - 1; y >= 0; y-- {
			if g[y][x] == splitter {
				next = 0
			} else {
				next++
			}
			drop[y][x] = next
		}
	}
	return Manifold{Start: s, Drop: drop}, nil
}

// fall moves a beam at p down to the splitter it hits. It reports false if
// the beam leaves the manifold instead.
func (m Manifold) fall(p aoc.Pt) (aoc.Pt, bool) {
	p.Y += m.Drop.At(p)
	return p, p.Y < len(m.Drop)
}

// split returns the beams a splitter at p emits.
func (m Manifold) split(p aoc.Pt, f func(aoc.Pt)) {
	for _, dx := range []int{-1, 1} {
		if q := p.Add(aoc.Pt{X: dx}); m.Drop.In(q) {
			f(q)
		}
	}
}

// Part1 counts the splitters a beam reaches.
func Part1(m Manifold) int {
	hit := map[aoc.Pt]bool{}
	var beams aoc.Stack[aoc.Pt]
	beams.Push(m.Start)
	beams.While(func(p aoc.Pt) bool {
		s, ok := m.fall(p)
		if !ok || hit[s] {
			return true
		}
		hit[s] = true
		m.split(s, beams.Push)
		return true
	})
	return len(hit)
}

// Part2 counts the timelines: every split doubles the paths a single
// particle can take, and paths that meet again stay distinct.
func Part2(m Manifold) int {
	done := 0
	layer := map[aoc.Pt]int{m.Start: 1}
	for len(layer) > 0 {
		next := map[aoc.Pt]int{}
		for p, n := range layer {
			s, ok := m.fall(p)
			if !ok {
				done += n
				continue
			}
			m.split(s, func(q aoc.Pt) { next[q] += n })
		}
		layer = next
	}
	return done
}
