// Package config loads the sandbox configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/clowdy/clowdy/internal/core/observability/log"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	DefaultTickRate = 60
	MaxTickRate     = 1000
)

type Config struct {
	Log LogConfig `json:"log" yaml:"log"`
	// Scene is the path of the scene file. LoadFile resolves relative paths
	// against the directory of the config file.
	Scene    string `json:"scene" yaml:"scene"`
	TickRate int    `json:"tick_rate" yaml:"tick_rate"`
	// Ticks bounds the run; zero runs until stopped.
	Ticks int `json:"ticks" yaml:"ticks"`
	// Census registers a census system per pool type.
	Census bool `json:"census" yaml:"census"`
}

type LogConfig struct {
	Level    string   `json:"level" yaml:"level"`
	Encoding string   `json:"encoding" yaml:"encoding"`
	Outputs  []string `json:"outputs,omitempty" yaml:"outputs,omitempty"`
}

func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
		TickRate: DefaultTickRate,
		Census:   true,
	}
}

// LoadYAML decodes r over the defaults and validates the result. Unknown keys
// are rejected; an empty document yields the defaults.
func LoadYAML(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if c.Scene != "" && !filepath.IsAbs(c.Scene) {
		c.Scene = filepath.Join(filepath.Dir(path), c.Scene)
	}
	return c, nil
}

func (c *Config) Validate() error {
	var errs []error
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch c.Log.Encoding {
	case "", "json", "console":
	default:
		errs = append(errs, fmt.Errorf("unknown log encoding %q", c.Log.Encoding))
	}
	if c.TickRate <= 0 || c.TickRate > MaxTickRate {
		errs = append(errs, fmt.Errorf("tick_rate %d out of range 1..%d", c.TickRate, MaxTickRate))
	}
	if c.Ticks < 0 {
		errs = append(errs, fmt.Errorf("ticks %d is negative", c.Ticks))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// TickInterval is the wall-clock duration of one tick.
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Logger converts the log block into logger options.
func (c *Config) Logger() log.Config {
	level, _ := log.ParseLevel(c.Log.Level)
	return log.Config{
		Level:    level,
		Encoding: c.Log.Encoding,
		Outputs:  c.Log.Outputs,
	}
}
