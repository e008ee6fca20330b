package aoc

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Grid is a rectangular grid addressed as g[y][x].
type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

// AtOk returns the cell at p, or false if p is outside the grid.
func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.In(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

// In reports whether p is inside the grid.
func (g Grid[T]) In(p Pt) bool {
	size := g.Size()
	return p.X >= 0 && p.Y >= 0 && p.X < size.X && p.Y < size.Y
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// Size returns the width and height of the grid as a point.
func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// Clone returns a copy of g that shares no rows with it.
func (g Grid[T]) Clone() Grid[T] {
	out := make(Grid[T], len(g))
	for y, row := range g {
		out[y] = append([]T(nil), row...)
	}
	return out
}

// All yields every cell in row-major order.
func (g Grid[T]) All() iter.Seq2[Pt, T] {
	return func(yield func(Pt, T) bool) {
		for y, row := range g {
			for x, v := range row {
				if !yield(Pt{x, y}, v) {
					return
				}
			}
		}
	}
}

// Find returns the first point whose cell satisfies f.
func (g Grid[T]) Find(f func(T) bool) (Pt, bool) {
	for p, v := range g.All() {
		if f(v) {
			return p, true
		}
	}
	return Pt{}, false
}

// Count returns how many cells satisfy f.
func (g Grid[T]) Count(f func(T) bool) int {
	n := 0
	for _, v := range g.All() {
		if f(v) {
			n++
		}
	}
	return n
}

func (g Grid[T]) TransposeInto(out Grid[T]) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			out[x][y] = g[y][x]
		}
	}
}

func (g Grid[T]) Transpose() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.TransposeInto(out)
	return out
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + q.X, p.Y + q.Y}
}

// ForImmediateNeighbors calls f with the 4 points sharing an edge with p
// until f returns false.
func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if p.X == n.X || p.Y == n.Y {
			return f(n)
		}
		return true
	})
}

// ForNeighbors calls f with the 8 points around p until f returns false.
func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}
