// Package day02 sums the invalid product IDs in a list of ID ranges. An ID
// is invalid when its digits are one block repeated.
package day02

import (
	"fmt"

	"github.com/maisem/aoc2025"
)

var Solution = aoc.Puzzle[[]aoc.Interval]{
	Day:   2,
	Parse: Parse,
	Part1: aoc.Answer(Part1),
	Part2: aoc.Answer(Part2),
}

func init() { aoc.Register(Solution) }

// Parse reads the comma-separated ranges and merges overlapping or
// touching ones so no ID is counted twice.
func Parse(in aoc.Input) ([]aoc.Interval, error) {
	ivs, err := aoc.ParseCommaSeparated(in.Text, parseRange)
	if err != nil {
		return nil, err
	}
	return aoc.MergeIntervals(ivs), nil
}

func parseRange(s string) (aoc.Interval, error) {
	iv, err := aoc.ParseInterval(s)
	if err != nil {
		return iv, err
	}
	if iv.Lo < 1 {
		return iv, fmt.Errorf("range %q: IDs start at 1", s)
	}
	return iv, nil
}

// repeatedSum returns the sum of the n-digit IDs in iv made of one block
// of n/rep digits repeated rep times.
//
// Such IDs are the multiples of base = 10^(n-k) + ... + 10^k + 1 (k = n/rep)
// by a k-digit block, so they form an arithmetic series once iv is clamped
// to the n-digit range.
func repeatedSum(iv aoc.Interval, n, rep int) int {
	k := n / rep
	lower := 0
	for i := k - 1; i < n; i += k {
		lower += aoc.Pow10(i)
	}
	base := lower / aoc.Pow10(k-1)
	upper := base * (aoc.Pow10(k) - 1)

	lo := aoc.CeilDiv(max(iv.Lo, lower), base)
	hi := min(iv.Hi, upper) / base
	if lo > hi {
		return 0
	}
	return (hi - lo + 1) * (lo + hi) / 2 * base
}

// Part1 sums the IDs made of a block repeated exactly twice.
func Part1(ivs []aoc.Interval) int {
	sum := 0
	for _, iv := range ivs {
		for n := aoc.NumDigits(iv.Lo); n <= aoc.NumDigits(iv.Hi); n++ {
			if n%2 == 0 {
				sum += repeatedSum(iv, n, 2)
			}
		}
	}
	return sum
}

// Part2 sums the IDs made of a block repeated at least twice.
//
// An ID repeated r times is also repeated every prime p dividing r, so the
// IDs of length n are the union of the series for the primes dividing n.
// Inclusion-exclusion over that union adds the series for each squarefree
// divisor d > 1 of n, with a sign that alternates with the number of prime
// factors of d.
func Part2(ivs []aoc.Interval) int {
	sum := 0
	for _, iv := range ivs {
		for n := max(aoc.NumDigits(iv.Lo), 2); n <= aoc.NumDigits(iv.Hi); n++ {
			for _, r := range repeats(n) {
				sum += r.sign * repeatedSum(iv, n, r.count)
			}
		}
	}
	return sum
}

type repeat struct {
	count int
	sign  int
}

// repeats returns the squarefree divisors of n above 1 with their
// inclusion-exclusion signs: +1 for an odd number of prime factors, -1 for
// an even one.
func repeats(n int) []repeat {
	primes := primeFactors(n)
	var out []repeat
	for set := 1; set < 1<<len(primes); set++ {
		r := repeat{count: 1, sign: -1}
		for i, p := range primes {
			if set&(1<<i) != 0 {
				r.count *= p
				r.sign = -r.sign
			}
		}
		out = append(out, r)
	}
	return out
}

// primeFactors returns the distinct prime factors of n in increasing order.
func primeFactors(n int) []int {
	var out []int
	for d := 2; d*d <= n; d++ {
		if n%d != 0 {
			continue
		}
		out = append(out, d)
		for n%d == 0 {
			n /= d
		}
	}
	if n > 1 {
		out = append(out, n)
	}
	return out
}
