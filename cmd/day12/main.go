package main

import (
	"github.com/maisem/aoc2025"
	"github.com/maisem/aoc2025/internal/days/day12"
)

func main() {
	aoc.Main(day12.Solution)
}
