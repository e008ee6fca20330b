package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/maisem/aoc2025"
	"github.com/maisem/aoc2025/internal/scaffold"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func (a *app) newRunCmd() *cobra.Command {
	var example bool
	cmd := &cobra.Command{
		Use:   "run [day...]",
		Short: "Solve days and print their answers",
		Long: `run solves the selected days, all registered days by default, in
parallel and prints one row per day in the order the days were given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := solvers(args)
			if err != nil {
				return err
			}
			results := make([]aoc.Result, len(ss))
			var g errgroup.Group
			g.SetLimit(runtime.GOMAXPROCS(0))
			for i, s := range ss {
				g.Go(func() error {
					in, err := a.loader().Load(s.Number(), example)
					if err != nil {
						return err
					}
					r, err := s.Solve(in)
					if err != nil {
						return err
					}
					a.log.Debug("solved", "day", r.Day, "parse", r.Parse, "part1", r.Time1, "part2", r.Time2)
					results[i] = r
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			aoc.WriteResults(cmd.OutOrStdout(), results, aoc.Format(a.cfg.Format))
			return nil
		},
	}
	cmd.Flags().BoolVar(&example, "example", false, "use the example inputs")
	cmd.Flags().String("format", "", "output format: table, markdown or csv")
	return cmd
}

func (a *app) newBenchCmd() *cobra.Command {
	var example, save bool
	cmd := &cobra.Command{
		Use:   "bench [day...]",
		Short: "Time parsing and both parts of each day",
		Long: `bench times parsing and each part separately for about --time each,
and reports the median and median absolute deviation of the runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := solvers(args)
			if err != nil {
				return err
			}
			var days []aoc.DayBench
			for _, s := range ss {
				in, err := a.loader().Load(s.Number(), example)
				if err != nil {
					return err
				}
				a.log.Info("benchmarking", "day", s.Number(), "time", a.cfg.BenchTime)
				rs, err := s.Bench(in, a.cfg.BenchTime)
				if err != nil {
					return err
				}
				days = append(days, aoc.DayBench{Day: s.Number(), Results: rs})
			}
			w := cmd.OutOrStdout()
			aoc.WriteBench(w, days, aoc.Format(a.cfg.Format))
			if !save {
				return nil
			}
			for _, d := range days {
				path, err := aoc.SaveBenchCSV(a.cfg.OutputsDir, d.Day, d.Results)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), renderOK("wrote "+path))
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.BoolVar(&example, "example", false, "use the example inputs")
	f.BoolVar(&save, "save", false, "also write <outputs>/benchmark-dayNN.csv")
	f.Duration("time", 0, "time spent on each phase (default 1s)")
	f.String("format", "", "output format: table, markdown or csv")
	f.String("outputs", "", "directory for --save (default: <root>/outputs)")
	return cmd
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the solved days and whether their inputs are present",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, s := range aoc.Solvers() {
				fmt.Fprintf(w, "%s  %s  %s\n",
					styleBold.Render(fmt.Sprintf("day %02d", s.Number())),
					a.status(s.Number(), false),
					a.status(s.Number(), true))
			}
			return nil
		},
	}
}

func (a *app) status(day int, example bool) string {
	name := aoc.FileName(day, example)
	_, err := os.Stat(filepath.Join(a.cfg.InputsDir, name))
	switch {
	case err == nil:
		return renderOK(name)
	case errors.Is(err, fs.ErrNotExist):
		return styleMuted.Render(symbolError + " " + name)
	}
	return renderError(err.Error())
}

func (a *app) newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new <day>",
		Short: "Create the package, program and example input of a new day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDay(args[0])
			if err != nil {
				return err
			}
			files, err := scaffold.Generate(a.cfg.Root, day)
			if err != nil {
				return err
			}
			for _, f := range files {
				fmt.Fprintln(cmd.OutOrStdout(), renderOK("created "+f))
			}
			return nil
		},
	}
}
