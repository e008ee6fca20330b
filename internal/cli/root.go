// Package cli implements the aoc command, which runs, benchmarks and
// scaffolds the daily solutions.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/maisem/aoc2025"
	"github.com/spf13/cobra"
)

// app is the state shared by the subcommands once flags are parsed.
type app struct {
	cfg *Config
	log *slog.Logger
}

// NewRootCmd returns the aoc command.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "aoc",
		Short: "Advent of Code 2025 solutions",
		Long: `aoc runs the registered Advent of Code 2025 solutions.

Inputs are read from <workspace>/inputs/dayNN.txt, or dayNN-example.txt
with --example. Settings can also be given in aoc.yaml at the workspace
root; flags win over the file.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}
			cfg, err := LoadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = aoc.NewLogger(cmd.ErrOrStderr(), cfg.Debug)
			a.log.Debug("config loaded", "root", cfg.Root, "inputs", cfg.InputsDir)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.String("root", "", "workspace root (default: nearest directory with a go.mod)")
	pf.String("inputs", "", "input directory (default: <root>/inputs)")
	pf.Bool("debug", false, "debug logging")

	root.AddCommand(
		a.newRunCmd(),
		a.newBenchCmd(),
		a.newListCmd(),
		a.newNewCmd(),
	)
	return root
}

// Execute runs the aoc command.
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err.Error()))
		return err
	}
	return nil
}

func (a *app) loader() aoc.Loader {
	return aoc.Loader{Dir: a.cfg.InputsDir}
}

// solvers returns the solvers of the given day numbers, or all registered
// days when there are none.
func solvers(args []string) ([]aoc.Solver, error) {
	if len(args) == 0 {
		return aoc.Solvers(), nil
	}
	var out []aoc.Solver
	for _, arg := range args {
		day, err := parseDay(arg)
		if err != nil {
			return nil, err
		}
		s, ok := aoc.Lookup(day)
		if !ok {
			return nil, fmt.Errorf("day %d has no solution", day)
		}
		out = append(out, s)
	}
	return out, nil
}

func parseDay(s string) (int, error) {
	day, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid day %q", s)
	}
	if day < 1 || day > 25 {
		return 0, fmt.Errorf("day %d: %w", day, aoc.ErrInvalidDay)
	}
	return day, nil
}
