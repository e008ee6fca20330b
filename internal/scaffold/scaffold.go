// Package scaffold creates the files of a new day from embedded templates.
package scaffold

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"go/format"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"text/template"

	"github.com/maisem/aoc2025"
	"golang.org/x/mod/modfile"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var tmpl = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// ErrExists is returned when a file of the new day is already present.
var ErrExists = errors.New("file already exists")

type data struct {
	Module string
	Day    int
	Pad    string
	Days   []string
}

type target struct {
	path string // relative to the workspace root
	tmpl string // empty for files created empty
}

func targets(d data) []target {
	pkg := "day" + d.Pad
	return []target{
		{filepath.Join("internal", "days", pkg, pkg+".go"), "day.go.tmpl"},
		{filepath.Join("internal", "days", pkg, pkg+"_test.go"), "day_test.go.tmpl"},
		{filepath.Join("cmd", pkg, "main.go"), "main.go.tmpl"},
		{filepath.Join("inputs", aoc.FileName(d.Day, true)), ""},
	}
}

// Generate creates the solution package, program and example input of day
// under root, then rewrites internal/days/days.go to import every day
// present. Nothing is written if any of the day's files already exists,
// and a failed write removes what was created. It returns the files
// created, relative to root.
func Generate(root string, day int) ([]string, error) {
	if day < 1 || day > 25 {
		return nil, fmt.Errorf("day %d: %w", day, aoc.ErrInvalidDay)
	}
	mod, err := modulePath(root)
	if err != nil {
		return nil, err
	}
	d := data{Module: mod, Day: day, Pad: fmt.Sprintf("%02d", day)}

	ts := targets(d)
	var dirs []string
	for _, t := range ts {
		_, err := os.Stat(filepath.Join(root, t.path))
		if err == nil {
			return nil, fmt.Errorf("%s: %w", t.path, ErrExists)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		dirs = append(dirs, missingDirs(root, t.path)...)
	}

	created, err := writeTargets(root, ts, d)
	if err == nil {
		err = WriteRegistry(root)
	}
	if err != nil {
		// Leave the tree as it was so the day can be generated again.
		for _, path := range slices.Concat(created, dirs) {
			os.Remove(filepath.Join(root, path))
		}
		return nil, err
	}
	return created, nil
}

func writeTargets(root string, ts []target, d data) ([]string, error) {
	var created []string
	for _, t := range ts {
		var src []byte
		if t.tmpl != "" {
			var err error
			if src, err = render(t.tmpl, d); err != nil {
				return created, err
			}
		}
		if err := write(filepath.Join(root, t.path), src); err != nil {
			return created, err
		}
		created = append(created, t.path)
	}
	return created, nil
}

// missingDirs returns the directories leading to path, relative to root,
// that do not exist yet, deepest first.
func missingDirs(root, path string) []string {
	var out []string
	for dir := filepath.Dir(path); dir != "."; dir = filepath.Dir(dir) {
		if _, err := os.Stat(filepath.Join(root, dir)); err == nil {
			break
		}
		out = append(out, dir)
	}
	return out
}

var dayDir = regexp.MustCompile(`^day(\d\d)$`)

// WriteRegistry rewrites internal/days/days.go from the day packages found
// on disk.
func WriteRegistry(root string) error {
	mod, err := modulePath(root)
	if err != nil {
		return err
	}
	dir := filepath.Join(root, "internal", "days")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	d := data{Module: mod}
	for _, e := range entries {
		if m := dayDir.FindStringSubmatch(e.Name()); e.IsDir() && m != nil {
			d.Days = append(d.Days, m[1])
		}
	}
	slices.Sort(d.Days)
	src, err := render("days.go.tmpl", d)
	if err != nil {
		return err
	}
	return write(filepath.Join(dir, "days.go"), src)
}

func modulePath(root string) (string, error) {
	b, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return "", err
	}
	mod := modfile.ModulePath(b)
	if mod == "" {
		return "", fmt.Errorf("%s: no module directive", filepath.Join(root, "go.mod"))
	}
	return mod, nil
}

func render(name string, d data) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, d); err != nil {
		return nil, err
	}
	if !strings.HasSuffix(name, ".go.tmpl") {
		return buf.Bytes(), nil
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", name, err)
	}
	return src, nil
}

func write(path string, b []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
