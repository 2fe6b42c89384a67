// Package config loads the board and window settings from defaults, an
// optional YAML file and command-line flags, in that order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the runtime settings of the application.
type Config struct {
	// Rows and Cols size the board.
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`

	// CellSize and GapSize are in screen pixels.
	CellSize float64 `yaml:"cell_size"`
	GapSize  float64 `yaml:"gap_size"`

	// TickPeriod is the time between generations while running.
	TickPeriod time.Duration `yaml:"tick_period"`

	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`

	Seed     int64  `yaml:"seed"`
	LogLevel string `yaml:"log_level"`

	// File is the YAML file the config was read from, if any.
	File string `yaml:"-"`
}

// Default returns the reference settings: a 20x20 board of 30px cells
// with 2px gaps stepping every half second.
func Default() *Config {
	return &Config{
		Rows:       20,
		Cols:       20,
		CellSize:   30,
		GapSize:    2,
		TickPeriod: 500 * time.Millisecond,
		Width:      1280,
		Height:     900,
		TPS:        60,
		Seed:       42,
		LogLevel:   "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "YAML config file")
	fs.IntVar(&c.Rows, "rows", c.Rows, "board rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "board columns")
	fs.Float64Var(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.Float64Var(&c.GapSize, "gap", c.GapSize, "gap between cells in pixels")
	fs.DurationVar(&c.TickPeriod, "period", c.TickPeriod, "time between generations")
	fs.IntVar(&c.Width, "width", c.Width, "window width")
	fs.IntVar(&c.Height, "height", c.Height, "window height")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fill")
	fs.StringVar(&c.LogLevel, "log", c.LogLevel, "log level: info or debug")
}

// Parse applies defaults, then the file named by -config, then any flags
// set explicitly on the command line.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	c := Default()
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.File == "" {
		return c, c.Validate()
	}

	fileCfg, err := LoadFile(c.File)
	if err != nil {
		return nil, err
	}
	fileCfg.File = c.File
	// Re-apply explicit flags on top of the file values.
	over := flag.NewFlagSet(fs.Name(), flag.ContinueOnError)
	fileCfg.Bind(over)
	var reapply []string
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			return
		}
		reapply = append(reapply, "-"+f.Name+"="+f.Value.String())
	})
	if err := over.Parse(reapply); err != nil {
		return nil, err
	}
	return fileCfg, fileCfg.Validate()
}

// LoadFile reads a YAML config file. Keys missing from the file keep their
// default values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// Validate rejects settings the board cannot be built from.
func (c *Config) Validate() error {
	var errs []error
	if c.Rows <= 0 || c.Cols <= 0 {
		errs = append(errs, fmt.Errorf("board must be at least 1x1, got %dx%d", c.Rows, c.Cols))
	}
	if c.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cell size must be positive, got %g", c.CellSize))
	}
	if c.GapSize < 0 {
		errs = append(errs, fmt.Errorf("gap size must not be negative, got %g", c.GapSize))
	}
	if c.TickPeriod <= 0 {
		errs = append(errs, fmt.Errorf("tick period must be positive, got %s", c.TickPeriod))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window must be at least 1x1, got %dx%d", c.Width, c.Height))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	return errors.Join(errs...)
}
