// Package config loads the simulator configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	gocube "github.com/SeamusWaldron/gocube_sim"
	"github.com/SeamusWaldron/gocube_sim/pkg/rubik"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full simulator configuration.
type Config struct {
	Animation Animation `yaml:"animation"`
	Input     Input     `yaml:"input"`
	Render    Render    `yaml:"render"`
}

// Animation configures turn animations. Duration is a Go duration string
// such as "300ms" or "1.5s"; a bare number is rejected by the decoder.
type Animation struct {
	Duration       time.Duration `yaml:"duration"`
	AnimateInverse bool          `yaml:"animate_inverse"`
	Verify         bool          `yaml:"verify"`
}

type Input struct {
	// Bindings maps a trigger key to a face letter, e.g. "j": "D".
	Bindings map[string]string `yaml:"bindings"`
}

type Render struct {
	FPS       int `yaml:"fps"`
	BlockSize int `yaml:"block_size"`
}

// Default returns the built-in configuration.
func Default() Config {
	bindings := make(map[string]string, rubik.NumLayers)
	for k, l := range gocube.DefaultBindings() {
		bindings[string(k)] = l.String()
	}
	return Config{
		Animation: Animation{
			Duration: gocube.DefaultDuration,
			Verify:   true,
		},
		Input: Input{Bindings: bindings},
		Render: Render{
			FPS:       60,
			BlockSize: 2,
		},
	}
}

// Load reads path over the defaults and validates the result. Keys the
// file leaves out keep their default value; a bindings table replaces the
// default one as a whole.
func Load(path string) (Config, error) {
	c := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	defaults := c.Input.Bindings
	c.Input.Bindings = nil
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	if c.Input.Bindings == nil {
		c.Input.Bindings = defaults
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks value ranges and the key bindings.
func (c Config) Validate() error {
	if c.Animation.Duration < 0 {
		return fmt.Errorf("%w: animation.duration must not be negative", ErrInvalidConfig)
	}
	if c.Render.FPS < 1 || c.Render.FPS > 240 {
		return fmt.Errorf("%w: render.fps must be in 1..240, got %d", ErrInvalidConfig, c.Render.FPS)
	}
	if c.Render.BlockSize < 1 {
		return fmt.Errorf("%w: render.block_size must be positive", ErrInvalidConfig)
	}
	if _, err := c.Bindings(); err != nil {
		return err
	}
	return nil
}

// Bindings converts the configured bindings.
func (c Config) Bindings() (gocube.Bindings, error) {
	if len(c.Input.Bindings) == 0 {
		return nil, fmt.Errorf("%w: input.bindings is empty", ErrInvalidConfig)
	}
	out := make(gocube.Bindings, len(c.Input.Bindings))
	for k, v := range c.Input.Bindings {
		key := gocube.Key(strings.ToLower(strings.TrimSpace(k)))
		if key == "" {
			return nil, fmt.Errorf("%w: empty binding key", ErrInvalidConfig)
		}
		if _, dup := out[key]; dup {
			return nil, fmt.Errorf("%w: key %q bound twice", ErrInvalidConfig, k)
		}
		l, err := rubik.ParseLayer(v)
		if err != nil {
			return nil, fmt.Errorf("%w: binding %q: %w", ErrInvalidConfig, k, err)
		}
		out[key] = l
	}
	return out, nil
}

// FrameInterval returns the tick interval for the configured FPS.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Render.FPS)
}

// EngineOptions returns the engine options described by c. c must be
// valid.
func (c Config) EngineOptions(logger *log.Logger) []gocube.Option {
	opts := []gocube.Option{
		gocube.WithDuration(c.Animation.Duration),
		gocube.WithInstantInverse(!c.Animation.AnimateInverse),
		gocube.WithVerify(c.Animation.Verify),
		gocube.WithLogger(logger),
	}
	if b, err := c.Bindings(); err == nil {
		opts = append(opts, gocube.WithBindings(b))
	}
	return opts
}
