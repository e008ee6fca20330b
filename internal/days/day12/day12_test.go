package day12

import (
	"testing"

	"github.com/maisem/aoc2025"
	"github.com/maisem/aoc2025/internal/aoctest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExample(t *testing.T) {
	aoctest.Solve(t, Solution, "3", "")
}

func TestPure(t *testing.T) {
	aoctest.Pure(t, Solution, aoctest.Input(t, 12, true))
}

func TestParse(t *testing.T) {
	f := aoctest.Example(t, Solution)
	require.Len(t, f.Shapes, 6)
	assert.Equal(t, 7, cells(f.Shapes[0]))
	assert.Equal(t, []Region{
		{4, 4, []int{0, 0, 0, 0, 2, 0}},
		{12, 5, []int{1, 0, 1, 0, 2, 2}},
		{12, 5, []int{1, 0, 1, 0, 3, 2}},
	}, f.Regions)

	aoctest.Malformed(t, Solution, map[string]string{
		"no regions":  "0:\n#\n",
		"two blocks":  "0:\n#\n\n1x1: 1\n\n2x2: 1\n",
		"counts":      "0:\n#\n\n1x1: 1 2\n",
		"size":        "0:\n#\n\n1by1: 1\n",
		"header":      "zero:\n#\n\n1x1: 1\n",
		"order":       "1:\n#\n\n1x1: 1\n",
		"shape char":  "0:\n#o\n\n1x1: 1\n",
		"no colon":    "0:\n#\n\n1x1 1\n",
		"count value": "0:\n#\n\n1x1: x\n",
	})
}

func TestTightFit(t *testing.T) {
	f, err := Parse(aoc.NewInput(12, false, "0:\n##\n#.\n\n3x1: 1\n2x1: 1\n1x1: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, Part1(f))
}

func BenchmarkParse(b *testing.B) { aoctest.BenchParse(b, Solution) }
func BenchmarkPart1(b *testing.B) { aoctest.BenchPart(b, Solution, 1) }
func BenchmarkStats(b *testing.B) { aoctest.Stats(b, Solution) }
