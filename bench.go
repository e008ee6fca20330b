package aoc

import (
	"fmt"
	"math"
	"slices"
	"time"
)

// BenchResult summarizes the timings of repeated runs of one function.
type BenchResult struct {
	Name       string
	Limit      time.Duration
	Iterations int

	Fastest time.Duration
	Slowest time.Duration
	Mean    time.Duration
	StdDev  time.Duration
	Median  time.Duration
	MAD     time.Duration // median absolute deviation from Median
}

// sink keeps results alive so the compiler cannot drop a measured call.
var sink any

// MeasureOnce returns how long a single call of f takes.
func MeasureOnce(f func() any) time.Duration {
	t0 := time.Now()
	sink = f()
	return time.Since(t0)
}

// MeasureMany runs f for roughly limit and reports the distribution of its
// run times. One cold run and a short burn-in estimate how many
// iterations fit in limit; at least 3 are always measured.
func MeasureMany(name string, limit time.Duration, f func() any) BenchResult {
	single := max(MeasureOnce(f), 1)
	burnIn := min(max(int64(limit/single)/100, 1), math.MaxUint32)
	var warm time.Duration
	for range burnIn {
		warm += MeasureOnce(f)
	}
	warm = max(warm/time.Duration(burnIn), 1)
	n := iterations(int64(limit / warm))

	ms := make([]time.Duration, n)
	for i := range ms {
		ms[i] = MeasureOnce(f)
	}
	r := summarize(ms)
	r.Name = name
	r.Limit = limit
	return r
}

// iterations rounds the estimated iteration count down to one significant
// digit so runs of similar speed measure the same number of times.
func iterations(n int64) int {
	switch {
	case n < 10:
		return 3
	case n < 100:
		return int(n / 10 * 10)
	case n < 1000:
		return int(n / 100 * 100)
	default:
		return int(min(n/1000*1000, 1_000_000))
	}
}

func summarize(ms []time.Duration) BenchResult {
	r := BenchResult{
		Iterations: len(ms),
		Fastest:    slices.Min(ms),
		Slowest:    slices.Max(ms),
	}
	var sum time.Duration
	for _, d := range ms {
		sum += d
	}
	r.Mean = sum / time.Duration(len(ms))
	var sq float64
	for _, d := range ms {
		sq += math.Pow(float64(d-r.Mean), 2)
	}
	r.StdDev = time.Duration(math.Sqrt(sq / float64(len(ms))))
	r.Median = median(ms)
	dev := make([]time.Duration, len(ms))
	for i, d := range ms {
		dev[i] = AbsDiff(d, r.Median)
	}
	r.MAD = median(dev)
	return r
}

func median(ds []time.Duration) time.Duration {
	s := slices.Clone(ds)
	slices.Sort(s)
	n := len(s)
	if n%2 == 0 {
		return (s[n/2-1] + s[n/2]) / 2
	}
	return s[n/2]
}

type unit struct {
	scale time.Duration
	name  string
}

var units = []unit{
	{time.Minute, "m"},
	{time.Second, "s"},
	{time.Millisecond, "ms"},
	{time.Microsecond, "µs"},
	{time.Nanosecond, "ns"},
}

func unitOf(d time.Duration) unit {
	for _, u := range units {
		if d >= u.scale {
			return u
		}
	}
	return units[len(units)-1]
}

// Unit returns the unit most of r's statistics fall in. Ties go to the
// larger unit.
func (r BenchResult) Unit() (scale time.Duration, name string) {
	votes := map[unit]int{}
	for _, d := range r.stats() {
		votes[unitOf(d)]++
	}
	best := units[0]
	for _, u := range units[1:] {
		if votes[u] > votes[best] {
			best = u
		}
	}
	return best.scale, best.name
}

func (r BenchResult) stats() []time.Duration {
	return []time.Duration{r.Fastest, r.Slowest, r.Mean, r.StdDev, r.Median, r.MAD}
}

// Format renders d with 3 decimals in r's unit.
func (r BenchResult) Format(d time.Duration) string {
	scale, name := r.Unit()
	return fmt.Sprintf("%.3f%s", float64(d)/float64(scale), name)
}

func (r BenchResult) String() string {
	return fmt.Sprintf("[%s] fastest: %s, slowest: %s, mean: %s, std_dev: %s, median: %s, mad: %s | %d iterations in %v",
		r.Name,
		r.Format(r.Fastest), r.Format(r.Slowest), r.Format(r.Mean),
		r.Format(r.StdDev), r.Format(r.Median), r.Format(r.MAD),
		r.Iterations, r.Limit)
}
