// Package config loads the widget settings from .today.yaml, TODAY_*
// environment variables and flags.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/today/pkg/locale"
	"tableflip.dev/today/pkg/particle"
)

const (
	KeyDensity         = "density"
	KeyRepulsionRadius = "repulsion_radius"
	KeyFPS             = "fps"
	KeyCellWidth       = "cell_width"
	KeyCellHeight      = "cell_height"
	KeyLocale          = "locale"
	KeySeed            = "seed"
	KeyParticleColor   = "particle_color"
)

// Config is the resolved widget configuration.
type Config struct {
	Density         float64
	RepulsionRadius float64
	FPS             int
	// CellWidth and CellHeight are the canvas units covered by one terminal
	// cell.
	CellWidth     float64
	CellHeight    float64
	Locale        locale.Locale
	Seed          bool
	ParticleColor color.RGBA
}

// Defaults registers default values on v.
func Defaults(v *viper.Viper) {
	v.SetDefault(KeyDensity, particle.DefaultDensity)
	v.SetDefault(KeyRepulsionRadius, particle.DefaultRepulsionRadius)
	v.SetDefault(KeyFPS, 60)
	v.SetDefault(KeyCellWidth, 8)
	v.SetDefault(KeyCellHeight, 16)
	v.SetDefault(KeyLocale, string(locale.English))
	v.SetDefault(KeySeed, true)
	v.SetDefault(KeyParticleColor, "#9b70e5")
}

// Load reads .today(.yaml) from $TODAY_CONFIG_PATH, the working directory
// and the home directory, layered under TODAY_* environment variables.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.GetViper()
	}
	Defaults(v)
	v.SetConfigName(".today") // .yaml is implicit
	v.SetEnvPrefix("TODAY")
	v.AutomaticEnv()

	if override := os.Getenv("TODAY_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: reading config file: %w", err)
		}
	}
	return FromViper(v)
}

// FromViper resolves and validates a Config from values already set on v.
func FromViper(v *viper.Viper) (*Config, error) {
	loc, err := locale.Parse(v.GetString(KeyLocale))
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	col, err := colorful.Hex(v.GetString(KeyParticleColor))
	if err != nil {
		return nil, fmt.Errorf("config: particle_color: %w", err)
	}
	r, g, b := col.RGB255()
	cfg := &Config{
		Density:         v.GetFloat64(KeyDensity),
		RepulsionRadius: v.GetFloat64(KeyRepulsionRadius),
		FPS:             v.GetInt(KeyFPS),
		CellWidth:       v.GetFloat64(KeyCellWidth),
		CellHeight:      v.GetFloat64(KeyCellHeight),
		Locale:          loc,
		Seed:            v.GetBool(KeySeed),
		ParticleColor:   color.RGBA{R: r, G: g, B: b, A: 255},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings that would produce an empty or frozen field.
func (c *Config) Validate() error {
	switch {
	case c.Density <= 0:
		return fmt.Errorf("config: density must be positive, got %v", c.Density)
	case c.RepulsionRadius <= 0:
		return fmt.Errorf("config: repulsion_radius must be positive, got %v", c.RepulsionRadius)
	case c.FPS <= 0:
		return fmt.Errorf("config: fps must be positive, got %d", c.FPS)
	case c.CellWidth <= 0 || c.CellHeight <= 0:
		return fmt.Errorf("config: cell size must be positive, got %vx%v", c.CellWidth, c.CellHeight)
	}
	return nil
}

// ParticleOptions converts the config into field options.
func (c *Config) ParticleOptions() particle.Options {
	return particle.Options{
		Density:         c.Density,
		RepulsionRadius: c.RepulsionRadius,
		Color:           c.ParticleColor,
	}
}
