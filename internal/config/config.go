package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/swingby/internal/dynamo"
	"github.com/san-kum/swingby/internal/physics"
)

const (
	DefaultDt     = 0.1
	DefaultSteps  = 200000
	DefaultX      = 7.00e6
	DefaultVY     = 7.7e3
	DefaultOutput = "swingby.csv"
	DefaultFormat = FormatCSV
)

const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

type Config struct {
	// Mu is used as given when set; otherwise it is derived from GM.
	Mu      *float64        `yaml:"mu,omitempty"`
	GM      *GMConfig       `yaml:"gm,omitempty"`
	Dt      float64         `yaml:"dt"`
	Steps   int             `yaml:"steps"`
	T0      float64         `yaml:"t0"`
	Initial InitStateConfig `yaml:"initial"`
	Output  string          `yaml:"output"`
	Format  string          `yaml:"format"`
}

// GMConfig gives the gravitational parameter as its two factors.
type GMConfig struct {
	G    float64 `yaml:"g"`
	Mass float64 `yaml:"mass"`
}

type InitStateConfig struct {
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
	VX float64 `yaml:"vx"`
	VY float64 `yaml:"vy"`
}

func DefaultConfig() *Config {
	return &Config{
		GM:     &GMConfig{G: physics.G, Mass: physics.MassEarth},
		Dt:     DefaultDt,
		Steps:  DefaultSteps,
		T0:     0,
		Output: DefaultOutput,
		Format: DefaultFormat,
		Initial: InitStateConfig{
			X:  DefaultX,
			VY: DefaultVY,
		},
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of a copy of base: keys present in the file
// replace the base values, absent keys keep them. A file that names gm but
// not mu drops an explicit mu inherited from base.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var keys map[string]any
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", dynamo.ErrConfig, path, err)
	}

	cfg := base.Clone()
	_, hasMu := keys["mu"]
	_, hasGM := keys["gm"]
	if hasGM && !hasMu {
		cfg.Mu = nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", dynamo.ErrConfig, path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GravParam returns mu, preferring an explicit value over G*M.
func (c *Config) GravParam() float64 {
	switch {
	case c.Mu != nil:
		return *c.Mu
	case c.GM != nil:
		return c.GM.G * c.GM.Mass
	default:
		return 0
	}
}

// SetMu pins mu to an explicit value, overriding any GM factors.
func (c *Config) SetMu(mu float64) {
	c.Mu = &mu
}

func (c *Config) Params() dynamo.Params {
	return dynamo.Params{
		Mu:    c.GravParam(),
		Dt:    c.Dt,
		Steps: c.Steps,
		Initial: dynamo.State{
			Time: c.T0,
			X:    c.Initial.X,
			Y:    c.Initial.Y,
			VX:   c.Initial.VX,
			VY:   c.Initial.VY,
		},
	}
}

// Validate rejects configurations that cannot produce a run. All failures
// wrap dynamo.ErrConfig.
func (c *Config) Validate() error {
	if c.GM != nil && (math.IsNaN(c.GM.G*c.GM.Mass) || c.GM.G < 0 || c.GM.Mass < 0) {
		return dynamo.ConfigError("gm factors must be non-negative, got g=%g mass=%g", c.GM.G, c.GM.Mass)
	}
	if err := c.Params().Validate(); err != nil {
		return err
	}
	switch c.Format {
	case FormatCSV, FormatJSON:
	default:
		return dynamo.ConfigError("unknown output format %q", c.Format)
	}
	if c.Output == "" {
		return dynamo.ConfigError("output path is empty")
	}
	return nil
}

// Clone returns a deep copy so presets are never mutated through callers.
func (c *Config) Clone() *Config {
	cp := *c
	if c.Mu != nil {
		mu := *c.Mu
		cp.Mu = &mu
	}
	if c.GM != nil {
		gm := *c.GM
		cp.GM = &gm
	}
	return &cp
}
