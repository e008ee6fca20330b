// Package day10 configures factory machines by pressing buttons. Each
// button toggles a set of indicator lights, and in the second part bumps
// the joltage counters with the same indices.
package day10

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/maisem/aoc2025"
)

var Solution = aoc.Puzzle[[]Machine]{
	Day:   10,
	Parse: Parse,
	Part1: aoc.Answer(Part1),
	Part2: aoc.Answer(Part2),
}

func init() { aoc.Register(Solution) }

type Machine struct {
	Lights  int
	Goal    uint32   // bit i set if light i must end up on
	Buttons []uint32 // bit i set if the button affects light i
	Joltage []int
}

func Parse(in aoc.Input) ([]Machine, error) {
	return aoc.ParseLines(in.Text, parseMachine)
}

// parseMachine reads "[.##.] (3) (1,3) {3,5,4,7}".
func parseMachine(s string) (Machine, error) {
	var m Machine
	haveGoal := false
	for _, f := range strings.Fields(s) {
		switch {
		case strings.HasPrefix(f, "[") && strings.HasSuffix(f, "]"):
			lights := f[1 : len(f)-1]
			if len(lights) == 0 || len(lights) > 32 {
				return m, fmt.Errorf("want 1 to 32 lights, got %d", len(lights))
			}
			m.Lights = len(lights)
			for i, c := range lights {
				switch c {
				case '#':
					m.Goal |= 1 << i
				case '.':
				default:
					return m, fmt.Errorf("unexpected %q in %s", c, f)
				}
			}
			haveGoal = true
		case strings.HasPrefix(f, "(") && strings.HasSuffix(f, ")"):
			idx, err := aoc.ParseCommaSeparated(f[1:len(f)-1], aoc.Int)
			if err != nil {
				return m, fmt.Errorf("button %s: %w", f, err)
			}
			var b uint32
			for _, i := range idx {
				if i < 0 || i >= 32 {
					return m, fmt.Errorf("button %s: light %d out of range", f, i)
				}
				b |= 1 << i
			}
			m.Buttons = append(m.Buttons, b)
		case strings.HasPrefix(f, "{") && strings.HasSuffix(f, "}"):
			j, err := aoc.ParseCommaSeparated(f[1:len(f)-1], aoc.Int)
			if err != nil {
				return m, fmt.Errorf("joltage %s: %w", f, err)
			}
			m.Joltage = j
		default:
			return m, fmt.Errorf("unexpected %q", f)
		}
	}
	switch {
	case !haveGoal:
		return m, errors.New("missing light diagram")
	case len(m.Buttons) == 0:
		return m, errors.New("missing buttons")
	case m.Joltage == nil:
		return m, errors.New("missing joltage requirements")
	case len(m.Joltage) != m.Lights:
		return m, fmt.Errorf("%d joltage requirements for %d lights", len(m.Joltage), m.Lights)
	}
	for _, b := range m.Buttons {
		if b>>m.Lights != 0 {
			return m, fmt.Errorf("button wired to light %d of %d", bits.Len32(b)-1, m.Lights)
		}
	}
	for _, j := range m.Joltage {
		if j < 0 {
			return m, fmt.Errorf("negative joltage %d", j)
		}
	}
	return m, nil
}

// minToggles returns the fewest presses that light exactly m.Goal.
// Pressing a button twice undoes it, so each is pressed at most once.
func minToggles(m Machine) (int, bool) {
	best := map[uint32]int{0: 0}
	for _, b := range m.Buttons {
		next := make(map[uint32]int, 2*len(best))
		for s, n := range best {
			next[s] = n
		}
		for s, n := range best {
			if c, ok := next[s^b]; !ok || n+1 < c {
				next[s^b] = n + 1
			}
		}
		best = next
	}
	n, ok := best[m.Goal]
	return n, ok
}

// Part1 sums the fewest presses that set every machine's lights.
func Part1(ms []Machine) int {
	total := 0
	for i, m := range ms {
		n, ok := minToggles(m)
		if !ok {
			panic(fmt.Sprintf("machine %d: lights cannot be reached", i+1))
		}
		total += n
	}
	return total
}

// Part2 sums the fewest presses that bring every machine's counters to
// their joltage requirements.
func Part2(ms []Machine) int {
	total := 0
	for i, m := range ms {
		n, ok := minPresses(m)
		if !ok {
			panic(fmt.Sprintf("machine %d: joltage cannot be reached", i+1))
		}
		total += n
	}
	return total
}
