package day10

import (
	"testing"

	"github.com/maisem/aoc2025/internal/aoctest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExample(t *testing.T) {
	aoctest.Solve(t, Solution, "7", "33")
}

func TestPure(t *testing.T) {
	aoctest.Pure(t, Solution, aoctest.Input(t, 10, true))
}

func TestParse(t *testing.T) {
	ms := aoctest.Example(t, Solution)
	require.Len(t, ms, 3)
	assert.Equal(t, Machine{
		Lights:  4,
		Goal:    0b0110,
		Buttons: []uint32{0b1000, 0b1010, 0b0100, 0b1100, 0b0101, 0b0011},
		Joltage: []int{3, 5, 4, 7},
	}, ms[0])

	aoctest.Malformed(t, Solution, map[string]string{
		"no goal":        "(0) {1}\n",
		"no buttons":     "[#] {1}\n",
		"no joltage":     "[#] (0)\n",
		"light char":     "[#x] (0) {1,1}\n",
		"wide button":    "[#.] (0,2) {1,1}\n",
		"joltage count":  "[#.] (0,1) {1}\n",
		"negative":       "[#.] (0,1) {1,-1}\n",
		"empty button":   "[#.] () {1,1}\n",
		"stray":          "[#.] (0) x {1,1}\n",
		"button letters": "[#.] (a) {1,1}\n",
	})
}

func TestMachines(t *testing.T) {
	tests := []struct {
		name         string
		m            Machine
		part1, part2 int
	}{
		{
			name:  "single button",
			m:     Machine{Lights: 1, Goal: 1, Buttons: []uint32{1}, Joltage: []int{5}},
			part1: 1, part2: 5,
		},
		{
			name:  "shared button is cheaper",
			m:     Machine{Lights: 2, Goal: 0b11, Buttons: []uint32{0b01, 0b10, 0b11}, Joltage: []int{4, 6}},
			part1: 1, part2: 6,
		},
		{
			name:  "already done",
			m:     Machine{Lights: 2, Goal: 0, Buttons: []uint32{0b01, 0b10}, Joltage: []int{0, 0}},
			part1: 0, part2: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := minToggles(tt.m)
			require.True(t, ok)
			assert.Equal(t, tt.part1, n)
			n, ok = minPresses(tt.m)
			require.True(t, ok)
			assert.Equal(t, tt.part2, n)
		})
	}
}

func TestUnreachable(t *testing.T) {
	m := Machine{Lights: 2, Goal: 0b01, Buttons: []uint32{0b11}, Joltage: []int{1, 2}}
	_, ok := minToggles(m)
	assert.False(t, ok)
	_, ok = minPresses(m)
	assert.False(t, ok)
	assert.Panics(t, func() { Part1([]Machine{m}) })
	assert.Panics(t, func() { Part2([]Machine{m}) })
}

func BenchmarkParse(b *testing.B) { aoctest.BenchParse(b, Solution) }
func BenchmarkPart1(b *testing.B) { aoctest.BenchPart(b, Solution, 1) }
func BenchmarkPart2(b *testing.B) { aoctest.BenchPart(b, Solution, 2) }
func BenchmarkStats(b *testing.B) { aoctest.Stats(b, Solution) }
