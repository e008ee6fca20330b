package main

import (
	"github.com/maisem/aoc2025"
	"github.com/maisem/aoc2025/internal/days/day06"
)

func main() {
	aoc.Main(day06.Solution)
}
