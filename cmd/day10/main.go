package main

import (
	"github.com/maisem/aoc2025"
	"github.com/maisem/aoc2025/internal/days/day10"
)

func main() {
	aoc.Main(day10.Solution)
}
