package day05

import (
	"testing"

	"github.com/maisem/aoc2025"
	"github.com/maisem/aoc2025/internal/aoctest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExample(t *testing.T) {
	aoctest.Solve(t, Solution, "3", "14")
}

func TestPure(t *testing.T) {
	aoctest.Pure(t, Solution, aoctest.Input(t, 5, true))
}

func TestParse(t *testing.T) {
	inv := aoctest.Example(t, Solution)
	assert.Equal(t, []aoc.Interval{{Lo: 3, Hi: 5}, {Lo: 10, Hi: 20}}, inv.Fresh)
	assert.Equal(t, []int{1, 5, 8, 11, 17, 32}, inv.IDs)

	aoctest.Malformed(t, Solution, map[string]string{
		"no ids":    "3-5\n10-14\n",
		"bad range": "3-5\n10\n\n1\n",
		"bad id":    "3-5\n\n1\nx\n",
		"extra":     "3-5\n\n1\n\n2\n",
	})
}

func TestBoundaries(t *testing.T) {
	inv, err := Parse(aoc.NewInput(5, false, "5-5\n7-9\n\n4\n5\n6\n7\n9\n9\n10\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, Part1(inv))
	assert.Equal(t, 4, Part2(inv))
}

func BenchmarkParse(b *testing.B) { aoctest.BenchParse(b, Solution) }
func BenchmarkPart1(b *testing.B) { aoctest.BenchPart(b, Solution, 1) }
func BenchmarkPart2(b *testing.B) { aoctest.BenchPart(b, Solution, 2) }
func BenchmarkStats(b *testing.B) { aoctest.Stats(b, Solution) }
