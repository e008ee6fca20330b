package main

import (
	"github.com/maisem/aoc2025"
	"github.com/maisem/aoc2025/internal/days/day11"
)

func main() {
	aoc.Main(day11.Solution)
}
