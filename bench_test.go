package aoc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIterations(t *testing.T) {
	tests := []struct {
		n    int64
		want int
	}{
		{0, 3},
		{9, 3},
		{10, 10},
		{57, 50},
		{999, 900},
		{1234, 1000},
		{99_999, 99_000},
		{5_000_000_000, 1_000_000},
	}
	for _, tt := range tests {
		if got := iterations(tt.n); got != tt.want {
			t.Errorf("iterations(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	r := summarize([]time.Duration{3, 1, 100, 2, 4})
	assert.Equal(t, BenchResult{
		Iterations: 5,
		Fastest:    1,
		Slowest:    100,
		Mean:       22,
		StdDev:     39,
		Median:     3,
		MAD:        1,
	}, r)

	assert.Equal(t, time.Duration(2), median([]time.Duration{3, 1}))
	assert.Equal(t, time.Duration(5), median([]time.Duration{5}))
}

func TestMeasureMany(t *testing.T) {
	calls := 0
	r := MeasureMany("noop", time.Millisecond, func() any {
		calls++
		return calls
	})
	assert.Equal(t, "noop", r.Name)
	assert.Equal(t, time.Millisecond, r.Limit)
	assert.GreaterOrEqual(t, r.Iterations, 3)
	assert.Greater(t, calls, r.Iterations)
	assert.LessOrEqual(t, r.Fastest, r.Median)
	assert.LessOrEqual(t, r.Median, r.Slowest)
}

func TestUnit(t *testing.T) {
	const (
		ms = time.Millisecond
		us = time.Microsecond
	)
	tests := []struct {
		name string
		r    BenchResult
		want string
	}{
		{
			name: "zero",
			want: "ns",
		},
		{
			name: "micro",
			r:    BenchResult{Fastest: 5 * us, Slowest: 2 * ms, Mean: 40 * us, StdDev: 900, Median: 30 * us, MAD: 4 * us},
			want: "µs",
		},
		{
			name: "tie goes up",
			r:    BenchResult{Fastest: 500 * us, Slowest: 3 * ms, Mean: 2 * ms, StdDev: 800 * us, Median: 2 * ms, MAD: 100 * us},
			want: "ms",
		},
		{
			name: "seconds",
			r:    BenchResult{Fastest: 2 * time.Second, Slowest: 4 * time.Second, Mean: 3 * time.Second, StdDev: 100 * ms, Median: 3 * time.Second, MAD: 2 * time.Second},
			want: "s",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got := tt.r.Unit()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBenchResultString(t *testing.T) {
	r := BenchResult{
		Name:       "Part 1",
		Limit:      time.Second,
		Iterations: 3,
		Fastest:    time.Millisecond,
		Slowest:    3 * time.Millisecond,
		Mean:       2 * time.Millisecond,
		StdDev:     816 * time.Microsecond,
		Median:     2 * time.Millisecond,
		MAD:        time.Millisecond,
	}
	assert.Equal(t, "1.500ms", r.Format(1500*time.Microsecond))
	assert.Equal(t,
		"[Part 1] fastest: 1.000ms, slowest: 3.000ms, mean: 2.000ms, std_dev: 0.816ms, median: 2.000ms, mad: 1.000ms | 3 iterations in 1s",
		r.String())
}
