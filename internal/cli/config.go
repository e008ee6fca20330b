package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/maisem/aoc2025"
	"github.com/spf13/pflag"
)

// ConfigFile is read from the workspace root when present.
const ConfigFile = "aoc.yaml"

// Config holds the settings shared by every command.
type Config struct {
	// Root is the workspace root; relative paths are resolved against it.
	Root       string        `koanf:"root"`
	InputsDir  string        `koanf:"inputs_dir"`
	OutputsDir string        `koanf:"outputs_dir"`
	BenchTime  time.Duration `koanf:"bench_time"`
	Format     string        `koanf:"format"`
	Debug      bool          `koanf:"debug"`
}

// flagKeys maps flag names to config keys where they differ.
var flagKeys = map[string]string{
	"inputs":  "inputs_dir",
	"outputs": "outputs_dir",
	"time":    "bench_time",
}

// LoadConfig merges, lowest priority first: defaults, aoc.yaml at the
// workspace root, and the flags explicitly set on the command line.
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(map[string]any{
		"inputs_dir":  "inputs",
		"outputs_dir": "outputs",
		"bench_time":  time.Second,
		"format":      string(aoc.FormatTable),
		"debug":       false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	root, _ := flags.GetString("root")
	if root == "" {
		var err error
		if root, err = aoc.WorkspaceRoot(); err != nil {
			return nil, err
		}
	}
	path := filepath.Join(root, ConfigFile)
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
		if !f.Changed {
			return "", nil
		}
		key := f.Name
		if mapped, ok := flagKeys[key]; ok {
			key = mapped
		}
		return key, posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return nil, fmt.Errorf("loading flags: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Root = root
	cfg.InputsDir = resolve(root, cfg.InputsDir)
	cfg.OutputsDir = resolve(root, cfg.OutputsDir)
	f, err := aoc.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	cfg.Format = string(f)
	if cfg.BenchTime <= 0 {
		return nil, fmt.Errorf("bench_time must be positive, got %v", cfg.BenchTime)
	}
	return &cfg, nil
}

func resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
