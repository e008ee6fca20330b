package aoc

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sumPuzzle(day int) Puzzle[[]int] {
	return Puzzle[[]int]{
		Day: day,
		Parse: func(in Input) ([]int, error) {
			return ParseLines(in.Text, Int)
		},
		Part1: Answer(func(v []int) int { return Sum(v...) }),
		Part2: Answer(func(v []int) int { return Product(v...) }),
	}
}

func TestSolve(t *testing.T) {
	p := sumPuzzle(1)
	r, err := p.Solve(NewInput(1, true, "2\n3\n4\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, r.Day)
	assert.True(t, r.Example)
	assert.Equal(t, "9", r.Part1)
	assert.Equal(t, "24", r.Part2)
}

func TestSolveSinglePart(t *testing.T) {
	p := sumPuzzle(25)
	p.Part2 = nil
	r, err := p.Solve(NewInput(25, false, "5\n"))
	require.NoError(t, err)
	assert.Equal(t, "5", r.Part1)
	assert.Equal(t, NA, r.Part2)
}

func TestSolveParseError(t *testing.T) {
	_, err := sumPuzzle(3).Solve(Input{Day: 3, Path: "inputs/day03.txt", Text: "1\nx\n"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inputs/day03.txt")
	assert.Contains(t, err.Error(), "line 2")
}

func TestSolveMutation(t *testing.T) {
	tests := []struct {
		name string
		p1   func([]int) any
		p2   func([]int) any
	}{
		{
			name: "part 1",
			p1:   func(v []int) any { v[0] = 7; return 0 },
			p2:   func(v []int) any { return 0 },
		},
		{
			name: "part 2",
			p1:   func(v []int) any { return v[0] },
			p2:   func(v []int) any { v[1]++; return 0 },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := sumPuzzle(4)
			p.Part1, p.Part2 = tt.p1, tt.p2
			_, err := p.Solve(NewInput(4, false, "1\n2\n"))
			assert.ErrorIs(t, err, ErrMutated)
			assert.Contains(t, err.Error(), tt.name)
		})
	}
}

func TestBenchPuzzle(t *testing.T) {
	rs, err := sumPuzzle(2).Bench(NewInput(2, true, "1\n2\n"), time.Millisecond)
	require.NoError(t, err)
	var names []string
	for _, r := range rs {
		names = append(names, r.Name)
		assert.GreaterOrEqual(t, r.Iterations, 3)
	}
	assert.Equal(t, []string{"Parsing", "Part 1", "Part 2"}, names)

	_, err = sumPuzzle(2).Bench(NewInput(2, true, "z\n"), time.Millisecond)
	assert.Error(t, err)
}

func TestBenchFlakyParse(t *testing.T) {
	p := sumPuzzle(6)
	calls := 0
	p.Parse = func(in Input) ([]int, error) {
		if calls++; calls > 1 {
			return nil, errors.New("parse failed on a later run")
		}
		return ParseLines(in.Text, Int)
	}
	assert.Panics(t, func() { p.Bench(NewInput(6, true, "1\n"), time.Millisecond) })
}

func TestRegistry(t *testing.T) {
	defer func(old map[int]Solver) { registry = old }(registry)
	registry = map[int]Solver{}

	Register(sumPuzzle(9))
	Register(sumPuzzle(2))
	assert.Panics(t, func() { Register(sumPuzzle(9)) })

	var days []int
	for _, s := range Solvers() {
		days = append(days, s.Number())
	}
	assert.Equal(t, []int{2, 9}, days)

	s, ok := Lookup(2)
	require.True(t, ok)
	assert.Equal(t, 2, s.Number())
	_, ok = Lookup(3)
	assert.False(t, ok)
}

func TestMust(t *testing.T) {
	assert.Equal(t, 4, MustGet(Int("4")))
	assert.Panics(t, func() { MustGet(Int("four")) })
	assert.Panics(t, func() { MustDo(errors.New("boom")) })
	assert.NotPanics(t, func() { MustDo(nil) })
}

func TestFingerprint(t *testing.T) {
	a := map[string][]int{"x": {1, 2}}
	b := map[string][]int{"x": {1, 2}}
	assert.Equal(t, Fingerprint(&a), Fingerprint(&b))
	b["x"][1] = 3
	assert.NotEqual(t, Fingerprint(&a), Fingerprint(&b))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "day01-example.txt", "1\n2\n")

	var out strings.Builder
	err := Run(&out, NewLogger(&strings.Builder{}, true), sumPuzzle(1), Loader{Dir: dir}, true)
	require.NoError(t, err)
	assert.Equal(t, "Day 1 Part 1: 3\nDay 1 Part 2: 2\n", out.String())

	err = Run(&out, NewLogger(&strings.Builder{}, false), sumPuzzle(1), Loader{Dir: dir}, false)
	assert.Error(t, err)
}
