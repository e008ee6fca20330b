package main

import (
	"github.com/maisem/aoc2025"
	"github.com/maisem/aoc2025/internal/days/day02"
)

func main() {
	aoc.Main(day02.Solution)
}
