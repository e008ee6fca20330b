// Package aoc holds the pieces shared by the Advent of Code 2025
// solutions: the per-day Puzzle contract, input loading, parsing helpers
// and the small data structures the days lean on.
// (grew out of maisem/aoc, itself forked from bradfitz/aoc)
package aoc

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"tailscale.com/util/deephash"
)

// NA is reported in place of the answer of a part a day does not have.
const NA = "N/A"

// ErrMutated is returned by Solve when a part changed the parsed model.
var ErrMutated = errors.New("solver mutated the parsed input")

// Puzzle describes one day: how its input is parsed and how each part is
// answered from the parsed model. Part2 is nil for days with a single part.
type Puzzle[M any] struct {
	Day   int
	Parse func(Input) (M, error)
	Part1 func(M) any
	Part2 func(M) any
}

// Answer adapts a typed part solver to the shape Puzzle wants.
func Answer[M, A any](f func(M) A) func(M) any {
	return func(m M) any { return f(m) }
}

// Solver is the type-erased view of a Puzzle used by the runners.
type Solver interface {
	Number() int
	Solve(Input) (Result, error)
	Bench(in Input, limit time.Duration) ([]BenchResult, error)
}

// Result is the outcome of solving one input.
type Result struct {
	Day     int
	Example bool
	Part1   string
	Part2   string

	Parse time.Duration
	Time1 time.Duration
	Time2 time.Duration
}

// Number returns the day number.
func (p Puzzle[M]) Number() int { return p.Day }

// Solve parses in once and answers both parts from the same model. The
// model is fingerprinted around each part so a solver that writes to it
// is reported instead of silently skewing the other part.
func (p Puzzle[M]) Solve(in Input) (Result, error) {
	r := Result{Day: p.Day, Example: in.Example, Part2: NA}

	t0 := time.Now()
	m, err := p.parse(in)
	if err != nil {
		return r, err
	}
	r.Parse = time.Since(t0)

	sum := Fingerprint(&m)
	r.Part1, r.Time1 = solve(p.Part1, m)
	if Fingerprint(&m) != sum {
		return r, fmt.Errorf("day %02d part 1: %w", p.Day, ErrMutated)
	}
	if p.Part2 == nil {
		return r, nil
	}
	r.Part2, r.Time2 = solve(p.Part2, m)
	if Fingerprint(&m) != sum {
		return r, fmt.Errorf("day %02d part 2: %w", p.Day, ErrMutated)
	}
	return r, nil
}

// Bench times parsing and each part separately, spending roughly limit
// on each of them.
func (p Puzzle[M]) Bench(in Input, limit time.Duration) ([]BenchResult, error) {
	m, err := p.parse(in)
	if err != nil {
		return nil, err
	}
	out := []BenchResult{
		MeasureMany("Parsing", limit, func() any {
			return MustGet(p.Parse(in))
		}),
		MeasureMany("Part 1", limit, func() any { return p.Part1(m) }),
	}
	if p.Part2 != nil {
		out = append(out, MeasureMany("Part 2", limit, func() any { return p.Part2(m) }))
	}
	return out, nil
}

func (p Puzzle[M]) parse(in Input) (M, error) {
	m, err := p.Parse(in)
	if err != nil {
		return m, fmt.Errorf("parsing %s: %w", in.Name(), err)
	}
	return m, nil
}

func solve[M any](f func(M) any, m M) (string, time.Duration) {
	t0 := time.Now()
	v := f(m)
	return fmt.Sprint(v), time.Since(t0)
}

// Fingerprint returns a deep hash of *v, following slices, maps and
// pointers.
func Fingerprint[T any](v *T) deephash.Sum {
	return deephash.Hash(v)
}

// registry is only written from init functions.
var registry = map[int]Solver{}

// Register makes s available through Solvers and Lookup. Day packages
// call it from init; registering the same day twice panics.
func Register(s Solver) {
	if _, dup := registry[s.Number()]; dup {
		panic(fmt.Sprintf("aoc: day %d registered twice", s.Number()))
	}
	registry[s.Number()] = s
}

// Solvers returns the registered days in order.
func Solvers() []Solver {
	days := slices.Sorted(maps.Keys(registry))
	out := make([]Solver, 0, len(days))
	for _, d := range days {
		out = append(out, registry[d])
	}
	return out
}

// Lookup returns the solver registered for day.
func Lookup(day int) (Solver, bool) {
	s, ok := registry[day]
	return s, ok
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
