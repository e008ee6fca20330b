package main

import (
	"github.com/maisem/aoc2025"
	"github.com/maisem/aoc2025/internal/days/day04"
)

func main() {
	aoc.Main(day04.Solution)
}
