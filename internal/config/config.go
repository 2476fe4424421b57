// Package config loads the randcompat CLI configuration from HCL.
package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Generators accepted by the generator setting.
var Generators = []string{"pcg", "step", "os"}

// Config represents the complete CLI configuration.
type Config struct {
	LogLevel  string        `hcl:"log_level,optional"`
	LogFormat string        `hcl:"log_format,optional"`
	Generator string        `hcl:"generator,optional"`
	Seed      int64         `hcl:"seed,optional"`
	Verify    *VerifyConfig `hcl:"verify,block"`
	Bench     *BenchConfig  `hcl:"bench,block"`
}

// VerifyConfig tunes the verify command.
type VerifyConfig struct {
	Seeds   int `hcl:"seeds,optional"`
	Ops     int `hcl:"ops,optional"`
	Workers int `hcl:"workers,optional"`
}

// BenchConfig tunes the bench command.
type BenchConfig struct {
	Bytes  int `hcl:"bytes,optional"`
	Rounds int `hcl:"rounds,optional"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
	if c.Generator == "" {
		c.Generator = "pcg"
	}

	if c.Verify == nil {
		c.Verify = &VerifyConfig{}
	}
	if c.Verify.Seeds == 0 {
		c.Verify.Seeds = 256
	}
	if c.Verify.Ops == 0 {
		c.Verify.Ops = 1024
	}
	if c.Verify.Workers == 0 {
		c.Verify.Workers = 4
	}

	if c.Bench == nil {
		c.Bench = &BenchConfig{}
	}
	if c.Bench.Bytes == 0 {
		c.Bench.Bytes = 4096
	}
	if c.Bench.Rounds == 0 {
		c.Bench.Rounds = 10000
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if !slices.Contains(Generators, c.Generator) {
		return fmt.Errorf("unknown generator %q (want one of %v)", c.Generator, Generators)
	}
	switch c.LogFormat {
	case "text", "logfmt", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.Verify.Seeds < 0 || c.Verify.Ops < 0 || c.Verify.Workers < 0 {
		return fmt.Errorf("verify settings must not be negative")
	}
	if c.Bench.Bytes < 0 || c.Bench.Rounds < 0 {
		return fmt.Errorf("bench settings must not be negative")
	}
	return nil
}
