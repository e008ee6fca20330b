package main

import (
	"github.com/maisem/aoc2025"
	"github.com/maisem/aoc2025/internal/days/day03"
)

func main() {
	aoc.Main(day03.Solution)
}
