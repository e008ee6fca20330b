package main

import (
	"github.com/maisem/aoc2025"
	"github.com/maisem/aoc2025/internal/days/day01"
)

func main() {
	aoc.Main(day01.Solution)
}
