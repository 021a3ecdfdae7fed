package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"

	toperrors "github.com/matzehuels/toporder/pkg/errors"
)

// Config is the optional TOML config file. Zero values mean "not set" and
// leave the flag defaults in place; flags given on the command line always win.
//
//	store = "threshold"
//	floor = 0.05
//	check = true
//
//	[bench]
//	nodes = 1000
//	edges = 5000
//	repeat = 3
type Config struct {
	Store   string  `toml:"store" validate:"omitempty,oneof=exact threshold"`
	Floor   float64 `toml:"floor" validate:"min=0"`
	Epsilon float64 `toml:"epsilon" validate:"min=0"`
	Check   bool    `toml:"check"`

	Bench BenchConfig `toml:"bench"`
}

// BenchConfig holds defaults for the bench command.
type BenchConfig struct {
	Nodes  int    `toml:"nodes" validate:"min=0"`
	Edges  int    `toml:"edges" validate:"min=0"`
	Repeat int    `toml:"repeat" validate:"min=0"`
	Seed   uint64 `toml:"seed"`
	Warmup bool   `toml:"warmup"`
}

var validate = validator.New()

// loadConfig reads the config file at path. An empty path selects the
// default location, which is allowed to be missing; an explicit path is not.
func loadConfig(path string) (Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, configFile)
	}

	if err := toperrors.ValidatePath(path); err != nil {
		return cfg, err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, toperrors.New(toperrors.ErrCodeFileNotFound, "config file %s not found", path)
		}
		return cfg, fmt.Errorf("stat config: %w", err)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, toperrors.Wrap(toperrors.ErrCodeInvalidFormat, err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, toperrors.New(toperrors.ErrCodeInvalidInput, "unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if err := validate.Struct(cfg); err != nil {
		return cfg, toperrors.Wrap(toperrors.ErrCodeInvalidInput, err, "invalid config %s", path)
	}
	return cfg, nil
}

// Flag setters used to layer config values under command-line flags. Each
// one writes the config value only when it is set and the flag was not.

func overrideString(flags *pflag.FlagSet, name string, dst *string, v string) {
	if v != "" && !flags.Changed(name) {
		*dst = v
	}
}

func overrideFloat(flags *pflag.FlagSet, name string, dst *float64, v float64) {
	if v != 0 && !flags.Changed(name) {
		*dst = v
	}
}

func overrideInt(flags *pflag.FlagSet, name string, dst *int, v int) {
	if v != 0 && !flags.Changed(name) {
		*dst = v
	}
}

func overrideUint(flags *pflag.FlagSet, name string, dst *uint64, v uint64) {
	if v != 0 && !flags.Changed(name) {
		*dst = v
	}
}

func overrideBool(flags *pflag.FlagSet, name string, dst *bool, v bool) {
	if v && !flags.Changed(name) {
		*dst = v
	}
}
