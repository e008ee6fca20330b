package main

import (
	"github.com/maisem/aoc2025"
	"github.com/maisem/aoc2025/internal/days/day05"
)

func main() {
	aoc.Main(day05.Solution)
}
