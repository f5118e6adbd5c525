package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buffos/go-sparkline/sparkline"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("", viper.New())
	require.NoError(t, err)

	assert.Equal(t, 120.0, cfg.Width)
	assert.Equal(t, 40.0, cfg.Height)
	assert.True(t, cfg.Fill)
	assert.Equal(t, "light", cfg.Theme)

	rc := cfg.RenderConfig()
	require.NotNil(t, rc.Padding)
	assert.Equal(t, 4.0, *rc.Padding)
	assert.Equal(t, sparkline.LightTheme.Up, rc.UpColor)
	assert.Equal(t, sparkline.LightTheme.Background, cfg.BackgroundColor())
}

func TestLoadYAMLFile(t *testing.T) {
	path := writeConfig(t, "spark.yaml", `
width: 300
height: 80
fill: false
smooth: true
tension: 0.8
knob: true
knob_size: 12
theme: dark
color: "#3b82f6"
`)
	cfg, err := Load(path, nil)
	require.NoError(t, err)

	rc := cfg.RenderConfig()
	assert.Equal(t, 300.0, rc.Width)
	assert.Equal(t, 80.0, rc.Height)
	assert.False(t, rc.Fill)
	assert.True(t, rc.Smooth)
	assert.Equal(t, 0.8, rc.SmoothTension)
	assert.True(t, rc.ShowKnob)
	assert.Equal(t, 12.0, rc.KnobSize)
	assert.Equal(t, "#3b82f6", rc.CustomColor)
	assert.Equal(t, sparkline.DarkTheme.Down, rc.DownColor)
	assert.Equal(t, sparkline.DarkTheme.Background, rc.BackgroundColor)
}

func TestLoadJSONFile(t *testing.T) {
	path := writeConfig(t, "spark.json", `{"width": 64, "height": 16, "fade": true, "fade_amount": 10}`)
	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.True(t, cfg.Fade)
	assert.Equal(t, 10.0, cfg.FadeAmount)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "spark.yaml", "width: 300\n")
	t.Setenv("SPARKLINE_WIDTH", "500")
	t.Setenv("SPARKLINE_UP_COLOR", "lime")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 500.0, cfg.Width)
	assert.Equal(t, "lime", cfg.UpColor)
}

func TestLoadFlagOverridesFile(t *testing.T) {
	path := writeConfig(t, "spark.yaml", "height: 30\n")
	v := viper.New()
	v.Set("height", 90)

	cfg, err := Load(path, v)
	require.NoError(t, err)
	assert.Equal(t, 90.0, cfg.Height)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.ErrorContains(t, err, "reading config")

	path := writeConfig(t, "bad.yaml", "theme: neon\n")
	_, err = Load(path, nil)
	assert.ErrorContains(t, err, `unknown theme "neon"`)
}

func TestValidate(t *testing.T) {
	valid := Config{Width: 10, Height: 10, Theme: "light"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"negative padding", func(c *Config) { c.Padding = -2 }},
		{"tension too large", func(c *Config) { c.Tension = 1.5 }},
		{"fade too large", func(c *Config) { c.FadeAmount = 60 }},
		{"negative points", func(c *Config) { c.Points = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
