package aoc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatTable},
		{in: "table", want: FormatTable},
		{in: "md", want: FormatMarkdown},
		{in: "markdown", want: FormatMarkdown},
		{in: "csv", want: FormatCSV},
		{in: "json", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParseFormat(%q)", tt.in)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got, "ParseFormat(%q)", tt.in)
	}
}

var testBench = []BenchResult{
	{Name: "Parsing", Limit: time.Second, Iterations: 1000, Fastest: 10 * time.Microsecond, Slowest: 30 * time.Microsecond, Mean: 12 * time.Microsecond, StdDev: 2 * time.Microsecond, Median: 11 * time.Microsecond, MAD: time.Microsecond},
	{Name: "Part 1", Limit: time.Second, Iterations: 3, Fastest: time.Millisecond, Slowest: 3 * time.Millisecond, Mean: 2 * time.Millisecond, StdDev: 816 * time.Microsecond, Median: 2 * time.Millisecond, MAD: time.Millisecond},
}

func TestWriteBenchMarkdown(t *testing.T) {
	var sb strings.Builder
	WriteBench(&sb, []DayBench{{Day: 12, Results: testBench}}, FormatMarkdown)
	out := sb.String()

	lines := Lines(out)
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Parsing")
	assert.Contains(t, lines[0], "Part 2")
	assert.Contains(t, lines[2], "| 12 ")
	assert.Contains(t, lines[2], "11.000µs ± 1.000µs")
	assert.Contains(t, lines[2], "2.000ms ± 1.000ms")
	assert.Contains(t, lines[2], NA)
}

func TestWriteBenchCSV(t *testing.T) {
	var sb strings.Builder
	WriteBench(&sb, []DayBench{{Day: 3, Results: testBench}}, FormatCSV)
	lines := Lines(sb.String())
	require.Len(t, lines, 3)
	assert.Equal(t, "Day,name,iterations,time_limit,fastest,slowest,mean,std_dev,median,mad", lines[0])
	assert.True(t, strings.HasPrefix(lines[2], "03,Part 1,3,1s,1.000ms,3.000ms,"), lines[2])
}

func TestWriteResults(t *testing.T) {
	var sb strings.Builder
	WriteResults(&sb, []Result{
		{Day: 5, Example: true, Part1: "3", Part2: "14"},
		{Day: 12, Part1: "2", Part2: NA},
	}, FormatCSV)
	lines := Lines(sb.String())
	require.Len(t, lines, 3)
	assert.Equal(t, "Day,Input,Part 1,Part 2,Parse,Time 1,Time 2", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "05,example,3,14,"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "12,real,2,N/A,"), lines[2])
}

func TestSaveBenchCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "outputs")
	path, err := SaveBenchCSV(dir, 7, testBench)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "benchmark-day07.csv"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := Lines(string(b))
	require.Len(t, lines, 3)
	assert.Equal(t, "name,iterations,time_limit,fastest,slowest,mean,std_dev,median,mad", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Parsing,1000,1s,10.000µs,"), lines[1])

	blocked := filepath.Join(t.TempDir(), "file")
	writeFile(t, filepath.Dir(blocked), "file", "")
	_, err = SaveBenchCSV(filepath.Join(blocked, "sub"), 7, testBench)
	assert.Error(t, err)
}
