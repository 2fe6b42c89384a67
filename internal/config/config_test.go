package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if c.Rows != 20 || c.Cols != 20 || c.GapSize != 2 || c.TickPeriod != 500*time.Millisecond {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestParseFlags(t *testing.T) {
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	c, err := Parse(fs, []string{"-rows", "8", "-period", "250ms", "-cell", "20"})
	if err != nil {
		t.Fatal(err)
	}
	if c.Rows != 8 || c.Cols != 20 || c.TickPeriod != 250*time.Millisecond || c.CellSize != 20 {
		t.Fatalf("unexpected config: %+v", c)
	}
}

func TestParseFileThenFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "life.yaml")
	data := "rows: 12\ncols: 9\ntick_period: 1s\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	c, err := Parse(fs, []string{"-config", path, "-cols", "4"})
	if err != nil {
		t.Fatal(err)
	}
	if c.Rows != 12 {
		t.Fatalf("rows = %d, want value from file", c.Rows)
	}
	if c.Cols != 4 {
		t.Fatalf("cols = %d, want flag override", c.Cols)
	}
	if c.TickPeriod != time.Second || c.LogLevel != "debug" {
		t.Fatalf("unexpected config: %+v", c)
	}
	if c.CellSize != 30 {
		t.Fatalf("cell size = %g, want default", c.CellSize)
	}
	if c.File != path {
		t.Fatalf("file = %q", c.File)
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rows: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("err = %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"rows":   func(c *Config) { c.Rows = 0 },
		"cell":   func(c *Config) { c.CellSize = -1 },
		"gap":    func(c *Config) { c.GapSize = -2 },
		"period": func(c *Config) { c.TickPeriod = 0 },
		"window": func(c *Config) { c.Height = 0 },
		"tps":    func(c *Config) { c.TPS = 0 },
	}
	for name, mutate := range cases {
		c := Default()
		mutate(c)
		if err := c.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}
