package aoc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrInvalidDay is returned for days outside 1..25.
	ErrInvalidDay = errors.New("day must be between 1 and 25")
	// ErrNoWorkspace is returned when no go.mod is found above the
	// working directory.
	ErrNoWorkspace = errors.New("could not find workspace root")
)

// Input is the raw text of one puzzle input.
type Input struct {
	Day     int
	Example bool
	Path    string // empty for inputs not read from disk
	Text    string
}

// NewInput wraps text that did not come from a file.
func NewInput(day int, example bool, text string) Input {
	return Input{Day: day, Example: example, Text: text}
}

// Lines returns the lines of the input.
func (in Input) Lines() []string {
	return Lines(in.Text)
}

// Name identifies the input in error messages.
func (in Input) Name() string {
	if in.Path != "" {
		return in.Path
	}
	if in.Example {
		return fmt.Sprintf("day %02d example", in.Day)
	}
	return fmt.Sprintf("day %02d input", in.Day)
}

// FileName returns the conventional file name of a day's input,
// e.g. day07.txt or day07-example.txt.
func FileName(day int, example bool) string {
	if example {
		return fmt.Sprintf("day%02d-example.txt", day)
	}
	return fmt.Sprintf("day%02d.txt", day)
}

// WorkspaceRoot returns the nearest directory at or above the working
// directory that holds a go.mod.
func WorkspaceRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findRoot(wd)
}

func findRoot(dir string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoWorkspace
		}
		dir = parent
	}
}

// Loader reads puzzle inputs from a directory.
type Loader struct {
	// Dir holds the input files. Empty means <workspace root>/inputs.
	Dir string
}

// Path returns where the input of day is expected.
func (l Loader) Path(day int, example bool) (string, error) {
	if day < 1 || day > 25 {
		return "", fmt.Errorf("day %d: %w", day, ErrInvalidDay)
	}
	dir := l.Dir
	if dir == "" {
		root, err := WorkspaceRoot()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(root, "inputs")
	}
	return filepath.Join(dir, FileName(day, example)), nil
}

// Load reads the whole input of day. A missing file is reported as an
// error wrapping fs.ErrNotExist.
func (l Loader) Load(day int, example bool) (Input, error) {
	path, err := l.Path(day, example)
	if err != nil {
		return Input{}, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Input{}, fmt.Errorf("reading day %02d input: %w", day, err)
	}
	return Input{Day: day, Example: example, Path: path, Text: string(b)}, nil
}

// ReadInput loads the input of day from the workspace's inputs directory.
func ReadInput(day int, example bool) (Input, error) {
	return Loader{}.Load(day, example)
}
