// Package day09 looks for the largest rectangle with red tiles in two
// opposite corners. The red tiles, in order, are the corners of a closed
// rectilinear loop.
package day09

import (
	"fmt"
	"slices"

	"github.com/maisem/aoc2025"
)

var Solution = aoc.Puzzle[[]aoc.Pt]{
	Day:   9,
	Parse: Parse,
	Part1: aoc.Answer(Part1),
	Part2: aoc.Answer(Part2),
}

func init() { aoc.Register(Solution) }

// Parse reads one "X,Y" tile per line. Each tile must share a row or a
// column with the next one, the last wrapping around to the first.
func Parse(in aoc.Input) ([]aoc.Pt, error) {
	tiles, err := aoc.ParseLines(in.Text, func(s string) (aoc.Pt, error) {
		v, err := aoc.ParseCommaSeparated(s, aoc.Int)
		if err != nil {
			return aoc.Pt{}, err
		}
		if len(v) != 2 {
			return aoc.Pt{}, fmt.Errorf("want X,Y, got %d fields", len(v))
		}
		return aoc.Pt{X: v[0], Y: v[1]}, nil
	})
	if err != nil {
		return nil, err
	}
	for i, a := range tiles {
		b := tiles[(i+1)%len(tiles)]
		if a.X != b.X && a.Y != b.Y {
			return nil, fmt.Errorf("line %d: %v and %v are not in line", i+1, a, b)
		}
	}
	return tiles, nil
}

func area(a, b aoc.Pt) int {
	return (aoc.AbsDiff(a.X, b.X) + 1) * (aoc.AbsDiff(a.Y, b.Y) + 1)
}

// Part1 returns the largest rectangle between any two red tiles.
func Part1(tiles []aoc.Pt) int {
	best := 0
	for i, a := range tiles {
		for _, b := range tiles[i+1:] {
			best = max(best, area(a, b))
		}
	}
	return best
}

// axis compresses one coordinate of the floor. Every coordinate used by a
// red tile gets its own slot, each run of unused coordinates between two of
// them shares one, and a spare slot on either end stays outside the loop.
// All tiles of a slot are alike: the loop never starts or turns inside it.
type axis struct {
	slot map[int]int
	n    int
}

func newAxis(vs []int) axis {
	vs = slices.Clone(vs)
	slices.Sort(vs)
	vs = slices.Compact(vs)
	a := axis{slot: make(map[int]int, len(vs)), n: 1}
	for i, v := range vs {
		if i > 0 && v > vs[i-1]+1 {
			a.n++
		}
		a.slot[v] = a.n
		a.n++
	}
	a.n++
	return a
}

// Part2 returns the largest rectangle between two red tiles whose every
// tile is red or green, that is on the loop or enclosed by it.
//
// The floor is compressed to slots, the loop is drawn on them and the
// outside is flood filled from the border. A rectangle fits when it holds
// no outside slot, which a prefix sum answers in constant time.
// Candidates are tried largest first and the first one that fits wins.
func Part2(tiles []aoc.Pt) int {
	xs := make([]int, len(tiles))
	ys := make([]int, len(tiles))
	for i, t := range tiles {
		xs[i], ys[i] = t.X, t.Y
	}
	ax, ay := newAxis(xs), newAxis(ys)
	slot := func(p aoc.Pt) aoc.Pt {
		return aoc.Pt{X: ax.slot[p.X], Y: ay.slot[p.Y]}
	}

	loop := aoc.MakeGrid[bool](ax.n, ay.n)
	for i, t := range tiles {
		a, b := slot(t), slot(tiles[(i+1)%len(tiles)])
		for y := min(a.Y, b.Y); y <= max(a.Y, b.Y); y++ {
			for x := min(a.X, b.X); x <= max(a.X, b.X); x++ {
				loop[y][x] = true
			}
		}
	}

	outside := aoc.MakeGrid[bool](ax.n, ay.n)
	outside[0][0] = true
	q := aoc.Queue[aoc.Pt]{}
	q.Push(aoc.Pt{})
	q.While(func(p aoc.Pt) bool {
		p.ForImmediateNeighbors(func(n aoc.Pt) bool {
			if onLoop, ok := loop.AtOk(n); ok && !onLoop && !outside.At(n) {
				outside.Set(n, true)
				q.Push(n)
			}
			return true
		})
		return true
	})

	// holes[y][x] counts the outside slots above and left of (x, y).
	holes := aoc.MakeGrid[int](ax.n+1, ay.n+1)
	for y := range ay.n {
		for x := range ax.n {
			holes[y+1][x+1] = holes[y][x+1] + holes[y+1][x] - holes[y][x]
			if outside[y][x] {
				holes[y+1][x+1]++
			}
		}
	}
	fits := func(a, b aoc.Pt) bool {
		a, b = slot(a), slot(b)
		x1, x2 := min(a.X, b.X), max(a.X, b.X)+1
		y1, y2 := min(a.Y, b.Y), max(a.Y, b.Y)+1
		return holes[y2][x2]-holes[y1][x2]-holes[y2][x1]+holes[y1][x1] == 0
	}

	pq := aoc.MaxQueue[[2]aoc.Pt]()
	for i, a := range tiles {
		for _, b := range tiles[i+1:] {
			pq.Push(&aoc.PQI[[2]aoc.Pt]{V: [2]aoc.Pt{a, b}, P: area(a, b)})
		}
	}
	for pq.Len() > 0 {
		c := pq.Pop()
		if fits(c.V[0], c.V[1]) {
			return c.P
		}
	}
	return 0
}
