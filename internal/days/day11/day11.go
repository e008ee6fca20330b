// Package day11 counts the data paths through a rack of devices. Every
// device feeds its outputs forward, ending at the device "out".
package day11

import (
	"errors"
	"fmt"
	"strings"

	"github.com/maisem/aoc2025"
)

var Solution = aoc.Puzzle[*aoc.DAG[string]]{
	Day:   11,
	Parse: Parse,
	Part1: aoc.Answer(Part1),
	Part2: aoc.Answer(Part2),
}

func init() { aoc.Register(Solution) }

const out = "out"

type device struct {
	name    string
	outputs []string
}

// Parse reads one "name: out1 out2 ..." line per device. Every output
// must be a listed device or "out", and the connections may not loop.
func Parse(in aoc.Input) (*aoc.DAG[string], error) {
	devs, err := aoc.ParseLines(in.Text, func(s string) (device, error) {
		name, outs, ok := strings.Cut(s, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" || strings.ContainsAny(name, " \t") {
			return device{}, fmt.Errorf("want \"name: outputs...\", got %q", s)
		}
		return device{name, strings.Fields(outs)}, nil
	})
	if err != nil {
		return nil, err
	}

	g := &aoc.DAG[string]{}
	g.AddNode(out)
	defined := map[string]int{}
	for i, d := range devs {
		if prev, dup := defined[d.name]; dup {
			return nil, fmt.Errorf("line %d: %s already defined on line %d", i+1, d.name, prev)
		}
		defined[d.name] = i + 1
		g.AddNode(d.name)
		for _, o := range d.outputs {
			g.AddEdge(d.name, o)
		}
	}
	for i, d := range devs {
		for _, o := range d.outputs {
			if _, ok := defined[o]; !ok && o != out {
				return nil, fmt.Errorf("line %d: %s feeds unknown device %s", i+1, d.name, o)
			}
		}
	}
	if len(g.TopoOrder()) != len(g.Nodes) {
		return nil, errors.New("device connections form a loop")
	}
	return g, nil
}

// Part1 counts the paths from "you" to "out".
func Part1(g *aoc.DAG[string]) int {
	return g.CountPaths("you", out)
}

// Part2 counts the paths from "svr" to "out" that visit both "dac" and
// "fft". In an acyclic graph they are met in one order or the other,
// never both.
func Part2(g *aoc.DAG[string]) int {
	via := func(a, b string) int {
		return g.CountPaths("svr", a) * g.CountPaths(a, b) * g.CountPaths(b, out)
	}
	return via("dac", "fft") + via("fft", "dac")
}
