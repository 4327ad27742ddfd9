package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	Prod = "prod"
	Dev  = "dev"
	Test = "test"
)

// EnvPath names the environment variable holding the default config file path.
const EnvPath = "MINHASH_CONFIG"

type Config struct {
	MinHash Box `yaml:"minhash"`
}

func (c *Config) IsProd() bool {
	return c.MinHash.Env == Prod
}

func (c *Config) IsDev() bool {
	return c.MinHash.Env == Dev
}

func (c *Config) IsTest() bool {
	return c.MinHash.Env == Test
}

type Box struct {
	Env        string     `yaml:"env"`
	Logs       Logs       `yaml:"logs"`
	Sketch     Sketch     `yaml:"sketch"`
	Simulation Simulation `yaml:"simulation"`
}

type Logs struct {
	Level string `yaml:"level"` // zerolog level name: debug, info, warn, error
}

type Sketch struct {
	Slots   int    `yaml:"slots"`   // number of hash functions
	Threads int    `yaml:"threads"` // 0 means min(GOMAXPROCS, slots)
	Seed    uint64 `yaml:"seed"`    // 0 means a random seed per run
}

type Simulation struct {
	Distinct int `yaml:"distinct"` // number of distinct elements fed first
	Stream   int `yaml:"stream"`   // total stream length, duplicates included
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		MinHash: Box{
			Env:  Dev,
			Logs: Logs{Level: "info"},
			Sketch: Sketch{
				Slots: 1000,
			},
			Simulation: Simulation{
				Distinct: 500,
				Stream:   10000,
			},
		},
	}
}

// LoadConfig reads a YAML file on top of Default. Relative paths are resolved against the working
// directory.
func LoadConfig(path string) (*Config, error) {
	path, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute config filepath: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config yaml file %s: %w", path, err)
	}

	cfg := Default()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml from %s: %w", path, err)
	}

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the values a sketch or simulation can't be built from. Slot and thread bounds
// relative to each other are left to the sketch constructor.
func (c *Config) Validate() error {
	switch c.MinHash.Env {
	case Prod, Dev, Test:
	default:
		return fmt.Errorf("unknown env %q", c.MinHash.Env)
	}
	if c.MinHash.Sketch.Slots < 1 {
		return fmt.Errorf("sketch.slots must be positive, got %d", c.MinHash.Sketch.Slots)
	}
	if c.MinHash.Sketch.Threads < 0 {
		return fmt.Errorf("sketch.threads must not be negative, got %d", c.MinHash.Sketch.Threads)
	}
	if c.MinHash.Simulation.Distinct < 1 {
		return fmt.Errorf("simulation.distinct must be positive, got %d", c.MinHash.Simulation.Distinct)
	}
	if c.MinHash.Simulation.Stream < c.MinHash.Simulation.Distinct {
		return fmt.Errorf("simulation.stream (%d) is shorter than simulation.distinct (%d)",
			c.MinHash.Simulation.Stream, c.MinHash.Simulation.Distinct)
	}
	return nil
}
