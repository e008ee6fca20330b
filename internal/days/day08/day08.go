// Package day08 wires junction boxes into circuits, always connecting the
// closest pair of boxes first.
package day08

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/maisem/aoc2025"
)

var Solution = aoc.Puzzle[Playground]{
	Day:   8,
	Parse: Parse,
	Part1: aoc.Answer(Part1),
	Part2: aoc.Answer(Part2),
}

func init() { aoc.Register(Solution) }

type Box struct {
	X, Y, Z int
}

// dist returns the squared straight-line distance between a and b.
func (a Box) dist(b Box) int {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return dx*dx + dy*dy + dz*dz
}

type Playground struct {
	Boxes []Box
	// Pairs is how many of the closest pairs Part1 connects: 10 for the
	// example, 1000 for a real input.
	Pairs int
}

func Parse(in aoc.Input) (Playground, error) {
	boxes, err := aoc.ParseLines(in.Text, func(s string) (Box, error) {
		v, err := aoc.ParseCommaSeparated(s, aoc.Int)
		if err != nil {
			return Box{}, err
		}
		if len(v) != 3 {
			return Box{}, fmt.Errorf("want X,Y,Z, got %d fields", len(v))
		}
		return Box{v[0], v[1], v[2]}, nil
	})
	if err != nil {
		return Playground{}, err
	}
	pairs := 1000
	if in.Example {
		pairs = 10
	}
	return Playground{Boxes: boxes, Pairs: pairs}, nil
}

type edge struct {
	d, i, j int
}

// Part1 connects the closest pairs and multiplies the sizes of the three
// largest circuits.
func Part1(pg Playground) int {
	n := len(pg.Boxes)
	edges := make([]edge, 0, n*(n-1)/2)
	for i := range n {
		for j := i + 1; j < n; j++ {
			edges = append(edges, edge{pg.Boxes[i].dist(pg.Boxes[j]), i, j})
		}
	}
	slices.SortFunc(edges, func(a, b edge) int {
		return cmp.Or(cmp.Compare(a.d, b.d), cmp.Compare(a.i, b.i), cmp.Compare(a.j, b.j))
	})

	ds := aoc.NewDisjointSet(n)
	for _, e := range edges[:min(pg.Pairs, len(edges))] {
		ds.Union(e.i, e.j)
	}
	sizes := ds.Sizes()
	slices.SortFunc(sizes, func(a, b int) int { return b - a })
	return aoc.Product(sizes[:min(3, len(sizes))]...)
}

// Part2 keeps connecting until every box is in one circuit and multiplies
// the X coordinates of the last two boxes joined.
//
// Each box keeps one entry in a queue: its closest box in another circuit.
// Entries go stale as circuits merge and are recomputed when popped, so
// the full list of pairs is never built.
func Part2(pg Playground) int {
	n := len(pg.Boxes)
	if n < 2 {
		return 0
	}
	ds := aoc.NewDisjointSet(n)
	q := aoc.MinQueue[[2]int]()
	nearest := func(i int) {
		root := ds.Find(i)
		best := &aoc.PQI[[2]int]{P: -1}
		for j, b := range pg.Boxes {
			if ds.Find(j) == root {
				continue
			}
			if d := pg.Boxes[i].dist(b); best.P < 0 || d < best.P {
				best.V, best.P = [2]int{i, j}, d
			}
		}
		if best.P >= 0 {
			q.Push(best)
		}
	}
	for i := range n {
		nearest(i)
	}
	for q.Len() > 0 {
		e := q.Pop().V
		i, j := e[0], e[1]
		ds.Union(i, j)
		if ds.Sets() == 1 {
			return pg.Boxes[i].X * pg.Boxes[j].X
		}
		nearest(i)
	}
	panic("unreachable: queue drained before every box was connected")
}
