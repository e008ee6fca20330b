// Command aoc runs, benchmarks and scaffolds the Advent of Code solutions.
package main

import (
	"os"

	"github.com/maisem/aoc2025/internal/cli"
	_ "github.com/maisem/aoc2025/internal/days"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
