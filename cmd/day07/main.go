package main

import (
	"github.com/maisem/aoc2025"
	"github.com/maisem/aoc2025/internal/days/day07"
)

func main() {
	aoc.Main(day07.Solution)
}
