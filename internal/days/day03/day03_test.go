package day03

import (
	"testing"

	"github.com/maisem/aoc2025/internal/aoctest"
	"github.com/stretchr/testify/assert"
)

func TestExample(t *testing.T) {
	aoctest.Solve(t, Solution, "357", "3121910778619")
}

func TestPure(t *testing.T) {
	aoctest.Pure(t, Solution, aoctest.Input(t, 3, true))
}

func TestMalformed(t *testing.T) {
	aoctest.Malformed(t, Solution, map[string]string{
		"letter": "12a4\n",
		"ragged": "1234\n123\n",
		"short":  "1\n2\n",
	})
}

func TestMaxJoltage(t *testing.T) {
	tests := []struct {
		bank []int
		k    int
		want int
	}{
		{[]int{9, 8, 7, 6, 5, 4, 3, 2, 1, 1, 1, 1, 1, 1, 1}, 2, 98},
		{[]int{8, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 9}, 2, 89},
		{[]int{1, 2}, 2, 12},
		{[]int{2, 1}, 2, 21},
		{[]int{1, 2}, 3, 0},
		{[]int{9, 8, 7, 6, 5, 4, 3, 2, 1, 1, 1, 1, 1, 1, 1}, 12, 987654321111},
		{[]int{2, 3, 4, 2, 3, 4, 2, 3, 4, 2, 3, 4, 2, 7, 8}, 12, 434234234278},
	}
	for _, tt := range tests {
		if got := maxJoltage(tt.bank, tt.k); got != tt.want {
			t.Errorf("maxJoltage(%v, %d) = %d, want %d", tt.bank, tt.k, got, tt.want)
		}
	}
}

func TestPart1Empty(t *testing.T) {
	assert.Zero(t, Part1(nil))
}

func BenchmarkParse(b *testing.B) { aoctest.BenchParse(b, Solution) }
func BenchmarkPart1(b *testing.B) { aoctest.BenchPart(b, Solution, 1) }
func BenchmarkPart2(b *testing.B) { aoctest.BenchPart(b, Solution, 2) }
func BenchmarkStats(b *testing.B) { aoctest.Stats(b, Solution) }
