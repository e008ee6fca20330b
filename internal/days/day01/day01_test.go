package day01

import (
	"testing"

	"github.com/maisem/aoc2025/internal/aoctest"
	"github.com/stretchr/testify/assert"
)

func TestExample(t *testing.T) {
	aoctest.Solve(t, Solution, "3", "6")
}

func TestPure(t *testing.T) {
	aoctest.Pure(t, Solution, aoctest.Input(t, 1, true))
}

func TestParse(t *testing.T) {
	rots := aoctest.Example(t, Solution)
	assert.Equal(t, []int{-68, -30, 48, -5, 60, -55, -1, -99, 14, -82}, rots)

	aoctest.Malformed(t, Solution, map[string]string{
		"direction": "U12\n",
		"number":    "L1x\n",
		"empty":     "R5\n\nL3\n",
		"negative":  "R-4\n",
		"plus sign": "L+5\n",
		"space":     "L 5\n",
		"trailing":  "R5 \n",
	})
}

func TestPart2(t *testing.T) {
	tests := []struct {
		rots []int
		want int
	}{
		{[]int{1000}, 10},
		{[]int{-50}, 1},
		{[]int{-50, 100}, 2},
		{[]int{50, -1, 1}, 2},
		{[]int{-150}, 2},
		{nil, 0},
	}
	for _, tt := range tests {
		if got := Part2(tt.rots); got != tt.want {
			t.Errorf("Part2(%v) = %v, want %v", tt.rots, got, tt.want)
		}
	}
}

func BenchmarkParse(b *testing.B) { aoctest.BenchParse(b, Solution) }
func BenchmarkPart1(b *testing.B) { aoctest.BenchPart(b, Solution, 1) }
func BenchmarkPart2(b *testing.B) { aoctest.BenchPart(b, Solution, 2) }
func BenchmarkStats(b *testing.B) { aoctest.Stats(b, Solution) }
