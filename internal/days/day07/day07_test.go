package day07

import (
	"testing"

	"github.com/maisem/aoc2025"
	"github.com/maisem/aoc2025/internal/aoctest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExample(t *testing.T) {
	aoctest.Solve(t, Solution, "21", "40")
}

func TestPure(t *testing.T) {
	aoctest.Pure(t, Solution, aoctest.Input(t, 7, true))
}

func TestParse(t *testing.T) {
	m := aoctest.Example(t, Solution)
	assert.Equal(t, aoc.Pt{X: 7, Y: 0}, m.Start)
	assert.Equal(t, 2, m.Drop.At(m.Start))
	assert.Equal(t, 0, m.Drop.At(aoc.Pt{X: 7, Y: 2}))
	assert.Equal(t, 16, m.Drop.At(aoc.Pt{X: 0, Y: 0}))
}

func TestMalformed(t *testing.T) {
	aoctest.Malformed(t, Solution, map[string]string{
		"no start":  "...\n.^.\n",
		"two start": "S.S\n.^.\n",
		"char":      ".S.\n.#.\n",
		"ragged":    ".S.\n..\n",
	})
}

func TestSmall(t *testing.T) {
	tests := []struct {
		grid         string
		part1, part2 int
	}{
		{".S.\n...\n", 0, 1},
		{".S.\n.^.\n...\n", 1, 2},
		{"S\n^\n", 1, 0},
		{"..S..\n..^..\n.^.^.\n", 3, 4},
	}
	for _, tt := range tests {
		m, err := Parse(aoc.NewInput(7, false, tt.grid))
		require.NoError(t, err)
		assert.Equal(t, tt.part1, Part1(m), "Part1(%q)", tt.grid)
		assert.Equal(t, tt.part2, Part2(m), "Part2(%q)", tt.grid)
	}
}

func BenchmarkParse(b *testing.B) { aoctest.BenchParse(b, Solution) }
func BenchmarkPart1(b *testing.B) { aoctest.BenchPart(b, Solution, 1) }
func BenchmarkPart2(b *testing.B) { aoctest.BenchPart(b, Solution, 2) }
func BenchmarkStats(b *testing.B) { aoctest.Stats(b, Solution) }
