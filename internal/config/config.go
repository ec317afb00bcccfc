// Package config loads game settings from defaults, an optional YAML file,
// the environment and command line flags, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"shell-game/internal/models"
)

// Config holds everything the application needs at start up.
type Config struct {
	LogLevel     string        `yaml:"log_level"`
	Seed         int64         `yaml:"seed"`
	ShuffleSteps int           `yaml:"shuffle_steps"`
	MoveDuration time.Duration `yaml:"move_duration"`
	Table        TableConfig   `yaml:"table"`
}

// TableConfig describes the table layout in canvas units.
type TableConfig struct {
	Width      float32   `yaml:"width"`
	Height     float32   `yaml:"height"`
	CupWidth   float32   `yaml:"cup_width"`
	CupHeight  float32   `yaml:"cup_height"`
	BallSize   float32   `yaml:"ball_size"`
	CupX       []float32 `yaml:"cup_x"`
	CupY       float32   `yaml:"cup_y"`
	RaiseBy    float32   `yaml:"raise_by"`
	BallOffset float32   `yaml:"ball_offset"`
}

// Default returns the classic three cup game.
func Default() Config {
	g := models.DefaultGeometry()
	return Config{
		LogLevel:     "info",
		ShuffleSteps: 5,
		MoveDuration: 300 * time.Millisecond,
		Table: TableConfig{
			Width:      g.Canvas.Width,
			Height:     g.Canvas.Height,
			CupWidth:   g.Cup.Width,
			CupHeight:  g.Cup.Height,
			BallSize:   g.Ball.Width,
			CupX:       append([]float32(nil), g.HomeX...),
			CupY:       g.HomeY,
			RaiseBy:    g.RaiseBy,
			BallOffset: g.BallDrop,
		},
	}
}

// LoadFile overlays the YAML file at path onto c. Keys missing from the
// file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv reads LOG_LEVEL, DEBUG and SHELL_GAME_SEED through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	} else if v, ok := lookup("DEBUG"); ok && v == "1" {
		c.LogLevel = "debug"
	}
	if v, ok := lookup("SHELL_GAME_SEED"); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("SHELL_GAME_SEED: %w", err)
		}
		c.Seed = seed
	}
	return nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.ShuffleSteps < 1 {
		errs = append(errs, fmt.Errorf("shuffle_steps must be at least 1, got %d", c.ShuffleSteps))
	}
	if c.MoveDuration <= 0 {
		errs = append(errs, fmt.Errorf("move_duration must be positive, got %s", c.MoveDuration))
	}
	t := c.Table
	if len(t.CupX) < 2 {
		errs = append(errs, fmt.Errorf("cup_x needs at least 2 cups, got %d", len(t.CupX)))
	}
	if t.Width <= 0 || t.Height <= 0 {
		errs = append(errs, errors.New("table width and height must be positive"))
	}
	if t.CupWidth <= 0 || t.CupHeight <= 0 || t.BallSize <= 0 {
		errs = append(errs, errors.New("cup and ball sizes must be positive"))
	}
	return errors.Join(errs...)
}

// Geometry converts the table settings into the model layout.
func (c Config) Geometry() models.Geometry {
	t := c.Table
	return models.Geometry{
		Canvas:   models.Size{Width: t.Width, Height: t.Height},
		Cup:      models.Size{Width: t.CupWidth, Height: t.CupHeight},
		Ball:     models.Size{Width: t.BallSize, Height: t.BallSize},
		HomeX:    append([]float32(nil), t.CupX...),
		HomeY:    t.CupY,
		RaiseBy:  t.RaiseBy,
		BallDrop: t.BallOffset,
	}
}
