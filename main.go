package aoc

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
)

// Main is the body of a day's program. Without flags it solves the day's
// real input from the workspace's inputs directory and prints both
// answers; it exits non-zero on any failure.
func Main(s Solver) {
	fs := pflag.NewFlagSet(fmt.Sprintf("day%02d", s.Number()), pflag.ExitOnError)
	example := fs.Bool("example", false, "solve the example input instead of the real one")
	inputs := fs.String("inputs", "", "directory holding the input files (default <workspace>/inputs)")
	debug := fs.Bool("debug", false, "log phase timings")
	fs.Parse(os.Args[1:])

	log := NewLogger(os.Stderr, *debug)
	if err := Run(os.Stdout, log, s, Loader{Dir: *inputs}, *example); err != nil {
		log.Error("failed", "day", s.Number(), "err", err)
		os.Exit(1)
	}
}

// Run loads, solves and prints one day.
func Run(w io.Writer, log *slog.Logger, s Solver, l Loader, example bool) error {
	in, err := l.Load(s.Number(), example)
	if err != nil {
		return err
	}
	log.Debug("loaded input", "path", in.Path, "bytes", len(in.Text))
	r, err := s.Solve(in)
	if err != nil {
		return err
	}
	log.Debug("solved", "parse", r.Parse, "part1", r.Time1, "part2", r.Time2)
	fmt.Fprintf(w, "Day %d Part 1: %s\n", r.Day, r.Part1)
	fmt.Fprintf(w, "Day %d Part 2: %s\n", r.Day, r.Part2)
	return nil
}

// NewLogger returns a text logger writing to w at Info, or Debug when
// debug is set.
func NewLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
