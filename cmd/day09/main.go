package main

import (
	"github.com/maisem/aoc2025"
	"github.com/maisem/aoc2025/internal/days/day09"
)

func main() {
	aoc.Main(day09.Solution)
}
