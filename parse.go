package aoc

import (
	"fmt"
	"strconv"
	"strings"
)

// Lines splits s into lines. A trailing newline does not produce an empty
// last line, and "\r\n" line endings are accepted.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Blocks splits s into the paragraphs separated by blank lines.
func Blocks(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	var out []string
	for _, b := range strings.Split(s, "\n\n") {
		b = strings.Trim(b, "\n")
		if b == "" {
			continue
		}
		out = append(out, b)
	}
	return out
}

// ParseLines parses every line of s with parse.
func ParseLines[T any](s string, parse func(string) (T, error)) ([]T, error) {
	lines := Lines(s)
	out := make([]T, 0, len(lines))
	for i, line := range lines {
		v, err := parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// ParseCommaSeparated parses each comma-separated field of s, ignoring
// surrounding whitespace.
func ParseCommaSeparated[T any](s string, parse func(string) (T, error)) ([]T, error) {
	fields := strings.Split(strings.TrimSpace(s), ",")
	out := make([]T, 0, len(fields))
	for i, f := range fields {
		v, err := parse(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i+1, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// ParseWhitespaceSeparated parses each whitespace-separated field of s.
func ParseWhitespaceSeparated[T any](s string, parse func(string) (T, error)) ([]T, error) {
	fields := strings.Fields(s)
	out := make([]T, 0, len(fields))
	for i, f := range fields {
		v, err := parse(f)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i+1, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// ParseCharGrid parses s into a grid with one cell per character.
// All lines must have the same length.
func ParseCharGrid[T any](s string, parse func(rune) (T, error)) (Grid[T], error) {
	var g Grid[T]
	for y, line := range Lines(s) {
		row := make([]T, 0, len(line))
		for x, r := range []rune(line) {
			v, err := parse(r)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d: %w", y+1, x+1, err)
			}
			row = append(row, v)
		}
		g = append(g, row)
	}
	return g, checkRectangular(g)
}

// ParseGrid parses s into a grid of whitespace-separated values.
// All lines must have the same number of fields.
func ParseGrid[T any](s string, parse func(string) (T, error)) (Grid[T], error) {
	var g Grid[T]
	for y, line := range Lines(s) {
		row, err := ParseWhitespaceSeparated(line, parse)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", y+1, err)
		}
		g = append(g, row)
	}
	return g, checkRectangular(g)
}

// ParseFixedWidthGrid cuts every line of s into columns of the given byte
// widths. Whatever follows the last width becomes one more column. A line
// too short to hold a declared column is an error.
func ParseFixedWidthGrid[T any](s string, widths []int, parse func(string) (T, error)) (Grid[T], error) {
	var g Grid[T]
	for y, line := range Lines(s) {
		row := make([]T, 0, len(widths)+1)
		start := 0
		for x, w := range widths {
			end := start + w
			if end > len(line) {
				return nil, fmt.Errorf("line %d: column %d needs %d bytes, line has %d", y+1, x+1, end, len(line))
			}
			v, err := parse(line[start:end])
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d: %w", y+1, x+1, err)
			}
			row = append(row, v)
			start = end
		}
		if start < len(line) {
			v, err := parse(line[start:])
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d: %w", y+1, len(widths)+1, err)
			}
			row = append(row, v)
		}
		g = append(g, row)
	}
	return g, checkRectangular(g)
}

func checkRectangular[T any](g Grid[T]) error {
	for y, row := range g {
		if len(row) != len(g[0]) {
			return fmt.Errorf("line %d: %d columns, want %d", y+1, len(row), len(g[0]))
		}
	}
	return nil
}

// Int parses s as a decimal integer, ignoring surrounding whitespace.
func Int(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// Ints parses every whitespace-separated field of s as an integer.
func Ints(s string) ([]int, error) {
	return ParseWhitespaceSeparated(s, Int)
}

// Digit returns the value of the decimal digit r.
func Digit(r rune) (int, error) {
	if r < '0' || r > '9' {
		return 0, fmt.Errorf("not a digit: %q", r)
	}
	return int(r - '0'), nil
}

// Digits returns the individual digits of s.
func Digits(s string) ([]int, error) {
	out := make([]int, 0, len(s))
	for i, r := range s {
		d, err := Digit(r)
		if err != nil {
			return nil, fmt.Errorf("offset %d: %w", i, err)
		}
		out = append(out, d)
	}
	return out, nil
}
