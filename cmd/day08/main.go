package main

import (
	"github.com/maisem/aoc2025"
	"github.com/maisem/aoc2025/internal/days/day08"
)

func main() {
	aoc.Main(day08.Solution)
}
