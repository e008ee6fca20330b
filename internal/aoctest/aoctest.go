// Package aoctest holds the checks every day's tests run against its
// Puzzle.
package aoctest

import (
	"errors"
	"io/fs"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/maisem/aoc2025"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Input loads the input of day, failing t if it cannot be read.
func Input(t testing.TB, day int, example bool) aoc.Input {
	t.Helper()
	in, err := aoc.ReadInput(day, example)
	require.NoError(t, err)
	return in
}

// Example loads and parses the example input of p's day.
func Example[M any](t testing.TB, p aoc.Puzzle[M]) M {
	t.Helper()
	m, err := p.Parse(Input(t, p.Day, true))
	require.NoError(t, err)
	return m
}

// Solve solves the example input of p's day and checks both answers.
// want2 is ignored for days without a second part.
func Solve[M any](t *testing.T, p aoc.Puzzle[M], want1, want2 string) {
	t.Helper()
	r, err := p.Solve(Input(t, p.Day, true))
	require.NoError(t, err)
	NewLogger(t).Debug("solved example", "day", r.Day, "parse", r.Parse, "part1", r.Time1, "part2", r.Time2)
	assert.Equal(t, want1, r.Part1, "part 1")
	if p.Part2 == nil {
		assert.Equal(t, aoc.NA, r.Part2, "part 2")
		return
	}
	assert.Equal(t, want2, r.Part2, "part 2")
}

// Pure checks that parsing in is repeatable and that neither part changes
// the parsed model or its own answer when run again.
func Pure[M any](t *testing.T, p aoc.Puzzle[M], in aoc.Input) {
	t.Helper()
	m1, err := p.Parse(in)
	require.NoError(t, err)
	m2, err := p.Parse(in)
	require.NoError(t, err)
	require.Equal(t, aoc.Fingerprint(&m1), aoc.Fingerprint(&m2), "parse is not idempotent")

	sum := aoc.Fingerprint(&m1)
	for name, part := range map[string]func(M) any{"part 1": p.Part1, "part 2": p.Part2} {
		if part == nil {
			continue
		}
		first := part(m1)
		assert.Equal(t, first, part(m1), "%s is not deterministic", name)
		assert.Equal(t, sum, aoc.Fingerprint(&m1), "%s mutated the model", name)
	}
}

// Malformed checks that p rejects every input in cases.
func Malformed[M any](t *testing.T, p aoc.Puzzle[M], cases map[string]string) {
	t.Helper()
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := p.Parse(aoc.NewInput(p.Day, false, text))
			assert.Error(t, err)
		})
	}
}

// realInput loads the real input of day, skipping b when it is absent.
// Real inputs are personal and not checked in.
func realInput(b *testing.B, day int) aoc.Input {
	b.Helper()
	in, err := aoc.ReadInput(day, false)
	if errors.Is(err, fs.ErrNotExist) {
		b.Skipf("no input for day %02d", day)
	}
	require.NoError(b, err)
	return in
}

// BenchParse times parsing of the real input.
func BenchParse[M any](b *testing.B, p aoc.Puzzle[M]) {
	in := realInput(b, p.Day)
	for b.Loop() {
		if _, err := p.Parse(in); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchPart times one part on the parsed real input. part is 1 or 2.
func BenchPart[M any](b *testing.B, p aoc.Puzzle[M], part int) {
	f := p.Part1
	if part == 2 {
		f = p.Part2
	}
	if f == nil {
		b.Skipf("day %02d has no part %d", p.Day, part)
	}
	m, err := p.Parse(realInput(b, p.Day))
	require.NoError(b, err)
	for b.Loop() {
		f(m)
	}
}

// statsLimit is how long Stats spends timing each phase.
const statsLimit = 300 * time.Millisecond

// Stats runs the median ± MAD timer on the real input, the same numbers
// `aoc bench` reports, and records them as benchmark metrics.
func Stats[M any](b *testing.B, p aoc.Puzzle[M]) {
	in := realInput(b, p.Day)
	var rs []aoc.BenchResult
	for b.Loop() {
		var err error
		rs, err = p.Bench(in, statsLimit)
		require.NoError(b, err)
	}
	for _, r := range rs {
		b.Log(r)
		unit := strings.ReplaceAll(strings.ToLower(r.Name), " ", "")
		b.ReportMetric(float64(r.Median.Nanoseconds()), unit+"-median-ns")
		b.ReportMetric(float64(r.MAD.Nanoseconds()), unit+"-mad-ns")
	}
}

// NewLogger returns a logger that writes to t.Log.
func NewLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}
