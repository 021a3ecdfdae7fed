package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/matzehuels/toporder/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", `
store = "threshold"
floor = 0.05
check = true

[bench]
nodes = 50
edges = 200
repeat = 3
seed = 42
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Store != "threshold" || cfg.Floor != 0.05 || !cfg.Check {
		t.Errorf("top-level config = %+v", cfg)
	}
	want := BenchConfig{Nodes: 50, Edges: 200, Repeat: 3, Seed: 42}
	if cfg.Bench != want {
		t.Errorf("bench config = %+v, want %+v", cfg.Bench, want)
	}
}

func TestLoadConfigDefaultLocation(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("missing default config should not fail: %v", err)
	}
	if cfg != (Config{}) {
		t.Errorf("missing default config = %+v, want zero", cfg)
	}

	writeFile(t, xdg, filepath.Join(appName, configFile), "store = \"threshold\"\n")
	cfg, err = loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Store != "threshold" {
		t.Errorf("Store = %q, want threshold", cfg.Store)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		code    errors.Code
		message string
	}{
		{
			name: "missing explicit file",
			path: filepath.Join(dir, "absent.toml"),
			code: errors.ErrCodeFileNotFound,
		},
		{
			name: "malformed",
			path: writeFile(t, dir, "bad.toml", "store = \n"),
			code: errors.ErrCodeInvalidFormat,
		},
		{
			name:    "unknown key",
			path:    writeFile(t, dir, "unknown.toml", "stor = \"exact\"\n"),
			code:    errors.ErrCodeInvalidInput,
			message: "stor",
		},
		{
			name: "invalid store",
			path: writeFile(t, dir, "store.toml", "store = \"fuzzy\"\n"),
			code: errors.ErrCodeInvalidInput,
		},
		{
			name: "negative floor",
			path: writeFile(t, dir, "floor.toml", "floor = -1.0\n"),
			code: errors.ErrCodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(tt.path)
			if err == nil {
				t.Fatal("loadConfig() should fail")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %q, want %q", errors.GetCode(err), tt.code)
			}
			if tt.message != "" && !strings.Contains(err.Error(), tt.message) {
				t.Errorf("error %q should mention %q", err, tt.message)
			}
		})
	}
}

func TestOverrides(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var (
		store  = "exact"
		floor  float64
		nodes  = 100
		seed   uint64
		check  bool
		edges  = 500
		unused = "keep"
	)
	flags.StringVar(&store, "store", store, "")
	flags.Float64Var(&floor, "floor", floor, "")
	flags.IntVar(&nodes, "nodes", nodes, "")
	flags.IntVar(&edges, "edges", edges, "")
	if err := flags.Parse([]string{"--nodes", "7"}); err != nil {
		t.Fatal(err)
	}

	overrideString(flags, "store", &store, "threshold")
	overrideFloat(flags, "floor", &floor, 0.5)
	overrideInt(flags, "nodes", &nodes, 50)
	overrideInt(flags, "edges", &edges, 0)
	overrideUint(flags, "seed", &seed, 9)
	overrideBool(flags, "check", &check, true)
	overrideString(flags, "unused", &unused, "")

	if store != "threshold" {
		t.Errorf("store = %q, config should fill an unset flag", store)
	}
	if floor != 0.5 {
		t.Errorf("floor = %v, want 0.5", floor)
	}
	if nodes != 7 {
		t.Errorf("nodes = %d, flag should win over config", nodes)
	}
	if edges != 500 {
		t.Errorf("edges = %d, zero config value should keep the default", edges)
	}
	if seed != 9 || !check {
		t.Errorf("seed = %d, check = %v", seed, check)
	}
	if unused != "keep" {
		t.Errorf("unused = %q, empty config value should keep the default", unused)
	}
}
