package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"

	mtp "github.com/rmera/gomtp"
)

// Config holds the settings of a conversion. The TOML keys are the
// names of the command line flags.
type Config struct {
	Input            string `toml:"input"`
	Output           string `toml:"output"`
	Format           string `toml:"format"`
	Workers          int    `toml:"workers"`
	Compress         string `toml:"compress"`
	CompressionLevel int    `toml:"compression-level"`
	Plot             string `toml:"plot"`
	Bins             int    `toml:"bins"`
	Verbose          bool   `toml:"verbose"`
}

// DefaultConfig returns the settings used when nothing else is given.
func DefaultConfig() *Config {
	return &Config{
		Input:   "data.json",
		Output:  "train.cfgs",
		Format:  mtp.MLIP2.String(),
		Workers: runtime.NumCPU(),
		Bins:    30,
	}
}

// LoadConfig reads a TOML file on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Override copies into c the values of the flags in fs that were set on the command line.
// from holds the values bound to the flags.
func (c *Config) Override(fs *pflag.FlagSet, from *Config) {
	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("input", func() { c.Input = from.Input })
	set("output", func() { c.Output = from.Output })
	set("format", func() { c.Format = from.Format })
	set("workers", func() { c.Workers = from.Workers })
	set("compress", func() { c.Compress = from.Compress })
	set("compression-level", func() { c.CompressionLevel = from.CompressionLevel })
	set("plot", func() { c.Plot = from.Plot })
	set("bins", func() { c.Bins = from.Bins })
	set("verbose", func() { c.Verbose = from.Verbose })
}

// Validate checks the settings and returns the encoding options they describe.
func (c *Config) Validate() (*mtp.Options, error) {
	if strings.TrimSpace(c.Input) == "" {
		return nil, fmt.Errorf("no input file given")
	}
	if strings.TrimSpace(c.Output) == "" {
		return nil, fmt.Errorf("no output file given")
	}
	v, err := mtp.ParseVersion(c.Format)
	if err != nil {
		return nil, err
	}
	switch c.Compress {
	case "", mtp.CompressNone, mtp.CompressZstd, mtp.CompressGzip:
	default:
		return nil, fmt.Errorf("unknown compression %q, use none, zstd or gzip", c.Compress)
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.Plot != "" && c.Bins < 1 {
		return nil, fmt.Errorf("bins must be positive, got %d", c.Bins)
	}
	return &mtp.Options{
		Version:          v,
		Workers:          c.Workers,
		Compression:      c.Compress,
		CompressionLevel: c.CompressionLevel,
	}, nil
}
