package aoc

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Format selects how reports are rendered.
type Format string

const (
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
	FormatCSV      Format = "csv"
)

// ParseFormat validates a format name. "md" is accepted for markdown.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "table":
		return FormatTable, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "csv":
		return FormatCSV, nil
	}
	return "", fmt.Errorf("unknown format %q (want table, markdown or csv)", s)
}

// DayBench groups the benchmark results of one day.
type DayBench struct {
	Day     int
	Results []BenchResult
}

func render(t table.Writer, f Format) {
	switch f {
	case FormatMarkdown:
		t.RenderMarkdown()
	case FormatCSV:
		t.RenderCSV()
	default:
		t.SetStyle(table.StyleLight)
		t.Render()
	}
}

// WriteResults renders the answers and timings of solved days.
func WriteResults(w io.Writer, results []Result, f Format) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Day", "Input", "Part 1", "Part 2", "Parse", "Time 1", "Time 2"})
	for _, r := range results {
		input := "real"
		if r.Example {
			input = "example"
		}
		t.AppendRow(table.Row{
			fmt.Sprintf("%02d", r.Day), input, r.Part1, r.Part2,
			round(r.Parse), round(r.Time1), round(r.Time2),
		})
	}
	render(t, f)
}

func round(d time.Duration) time.Duration {
	switch {
	case d > time.Second:
		return d.Round(time.Millisecond)
	case d > time.Millisecond:
		return d.Round(time.Microsecond)
	}
	return d
}

// WriteBench renders benchmark results. The markdown form is the compact
// "median ± mad" table kept in the README; the others list every statistic.
func WriteBench(w io.Writer, days []DayBench, f Format) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	if f == FormatMarkdown {
		t.AppendHeader(table.Row{"Day", "Parsing", "Part 1", "Part 2"})
		for _, d := range days {
			row := table.Row{fmt.Sprintf("%02d", d.Day), NA, NA, NA}
			for i, r := range d.Results {
				if i < 3 {
					row[i+1] = fmt.Sprintf("%s ± %s", r.Format(r.Median), r.Format(r.MAD))
				}
			}
			t.AppendRow(row)
		}
		render(t, f)
		return
	}
	t.AppendHeader(append(table.Row{"Day"}, benchHeader...))
	for _, d := range days {
		for _, r := range d.Results {
			t.AppendRow(append(table.Row{fmt.Sprintf("%02d", d.Day)}, benchRow(r)...))
		}
	}
	render(t, f)
}

var benchHeader = table.Row{"name", "iterations", "time_limit", "fastest", "slowest", "mean", "std_dev", "median", "mad"}

func benchRow(r BenchResult) table.Row {
	return table.Row{
		r.Name, r.Iterations, r.Limit.String(),
		r.Format(r.Fastest), r.Format(r.Slowest), r.Format(r.Mean),
		r.Format(r.StdDev), r.Format(r.Median), r.Format(r.MAD),
	}
}

// BenchFileName returns the name of a day's benchmark CSV file.
func BenchFileName(day int) string {
	return fmt.Sprintf("benchmark-day%02d.csv", day)
}

// SaveBenchCSV writes results to dir/benchmark-dayNN.csv, creating dir as
// needed, and returns the path written.
func SaveBenchCSV(dir string, day int, results []BenchResult) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, BenchFileName(day))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	t := table.NewWriter()
	t.SetOutputMirror(f)
	t.AppendHeader(benchHeader)
	for _, r := range results {
		t.AppendRow(benchRow(r))
	}
	t.RenderCSV()
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
