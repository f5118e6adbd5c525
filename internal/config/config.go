// Package config provides Viper-based render configuration for the
// sparkline CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/buffos/go-sparkline/sparkline"
)

// EnvPrefix is prepended to environment overrides, e.g. SPARKLINE_WIDTH.
const EnvPrefix = "SPARKLINE"

// Config is the file/env/flag view of one render.
type Config struct {
	Width       float64 `mapstructure:"width"`
	Height      float64 `mapstructure:"height"`
	Fill        bool    `mapstructure:"fill"`
	StrokeWidth float64 `mapstructure:"stroke_width"`
	Padding     float64 `mapstructure:"padding"`
	Theme       string  `mapstructure:"theme"`
	UpColor     string  `mapstructure:"up_color"`
	DownColor   string  `mapstructure:"down_color"`
	Color       string  `mapstructure:"color"`
	Background  string  `mapstructure:"background"`
	Smooth      bool    `mapstructure:"smooth"`
	Tension     float64 `mapstructure:"tension"`
	Knob        bool    `mapstructure:"knob"`
	KnobSize    float64 `mapstructure:"knob_size"`
	Fade        bool    `mapstructure:"fade"`
	FadeAmount  float64 `mapstructure:"fade_amount"`
	IDPrefix    string  `mapstructure:"id_prefix"`
	Points      int     `mapstructure:"points"`
}

// Load reads configuration from the optional file at path, environment
// variables and whatever flags the caller bound on v. A nil v gets a
// fresh instance.
func Load(path string, v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	if path != "" {
		// An explicit file must exist; only the search path may come up empty.
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".sparkline")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/sparkline")
	}

	// Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// setDefaults mirrors the rendering core's own defaults so that
// `sparkline render` prints a sensible chart with no flags at all.
func setDefaults(v *viper.Viper) {
	v.SetDefault("width", 120.0)
	v.SetDefault("height", 40.0)
	v.SetDefault("fill", true)
	v.SetDefault("stroke_width", 2.0)
	v.SetDefault("padding", 4.0)
	v.SetDefault("theme", "light")
	v.SetDefault("tension", 0.5)
	v.SetDefault("knob_size", 8.0)
	v.SetDefault("fade_amount", 30.0)
	v.SetDefault("points", 0)

	// Registered so AutomaticEnv can fill them during Unmarshal.
	for _, key := range []string{"up_color", "down_color", "color", "background", "id_prefix"} {
		v.SetDefault(key, "")
	}
	for _, key := range []string{"smooth", "knob", "fade"} {
		v.SetDefault(key, false)
	}
}

// Validate rejects settings the core would only render as garbage.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("width and height must be positive, got %vx%v", c.Width, c.Height)
	}
	if c.Padding < 0 {
		return fmt.Errorf("padding must not be negative, got %v", c.Padding)
	}
	if c.Tension < 0 || c.Tension > 1 {
		return fmt.Errorf("tension must be within [0, 1], got %v", c.Tension)
	}
	if c.FadeAmount < 0 || c.FadeAmount > 50 {
		return fmt.Errorf("fade_amount must be within [0, 50], got %v", c.FadeAmount)
	}
	if c.Points < 0 {
		return fmt.Errorf("points must not be negative, got %d", c.Points)
	}
	if _, ok := sparkline.ThemeByName(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q (want light or dark)", c.Theme)
	}
	return nil
}

// RenderConfig converts to the core's value object, filling unset colours
// from the selected theme.
func (c *Config) RenderConfig() sparkline.RenderConfig {
	theme, _ := sparkline.ThemeByName(c.Theme)
	padding := c.Padding
	return sparkline.RenderConfig{
		Width:           c.Width,
		Height:          c.Height,
		Fill:            c.Fill,
		StrokeWidth:     c.StrokeWidth,
		Padding:         &padding,
		UpColor:         c.UpColor,
		DownColor:       c.DownColor,
		CustomColor:     c.Color,
		Smooth:          c.Smooth,
		SmoothTension:   c.Tension,
		ShowKnob:        c.Knob,
		KnobSize:        c.KnobSize,
		BackgroundColor: c.Background,
		FadeEdges:       c.Fade,
		FadeAmount:      c.FadeAmount,
		IDPrefix:        c.IDPrefix,
	}.WithTheme(theme)
}

// BackgroundColor is the page colour previews should use.
func (c *Config) BackgroundColor() string {
	return c.RenderConfig().BackgroundColor
}
