package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const risingJSON = `[[0, 10], [1, 12], [2, 11], [3, 15]]`

// execute runs the root command in an empty working directory so no stray
// .sparkline.yaml gets picked up.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	chdir(t, t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeData(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRenderSVGToStdout(t *testing.T) {
	data := writeData(t, "prices.json", risingJSON)

	stdout, stderr, err := execute(t, "", "render", data, "--id-prefix", "cli")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, `<svg xmlns="http://www.w3.org/2000/svg" width="120" height="40" viewBox="0 0 120 40">`))
	assert.True(t, strings.HasSuffix(stdout, "</svg>"))
	assert.Contains(t, stdout, `stroke="#16c784"`)
	assert.Contains(t, stdout, `id="cli-fill"`)
	assert.Contains(t, stderr, "▲ up (4 samples)")
}

func TestRenderFlagsReachTheChart(t *testing.T) {
	data := writeData(t, "prices.json", `[[0, 15], [1, 12], [2, 10]]`)

	stdout, stderr, err := execute(t, "", "render", data,
		"--width", "200", "--height", "50", "--theme", "dark", "--fill=false", "--knob")
	require.NoError(t, err)

	assert.Contains(t, stdout, `viewBox="0 0 200 50"`)
	assert.Contains(t, stdout, `stroke="#ef4444"`)
	assert.Contains(t, stdout, `<circle`)
	assert.Contains(t, stdout, `fill="#0d1117"`)
	assert.NotContains(t, stdout, "linearGradient")
	assert.Contains(t, stderr, "▼ down (3 samples)")
}

func TestRenderCSVFromStdin(t *testing.T) {
	stdout, _, err := execute(t, "timestamp,price\n0,1\n1,2\n", "render", "-", "--input-format", "csv", "-q")
	require.NoError(t, err)
	assert.Contains(t, stdout, "<svg")
}

func TestRenderHTMLInferredFromOutput(t *testing.T) {
	data := writeData(t, "prices.json", risingJSON)
	out := filepath.Join(t.TempDir(), "chart.html")

	stdout, _, err := execute(t, "", "render", data, "-o", out, "--title", "BTC")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	page, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(page), "<!DOCTYPE html>"))
	assert.Contains(t, string(page), "<title>BTC</title>")
	assert.Contains(t, string(page), "<svg")
}

func TestRenderUnknownExtensionFallsBackToSVG(t *testing.T) {
	data := writeData(t, "prices.json", risingJSON)
	out := filepath.Join(t.TempDir(), "chart.txt")

	_, _, err := execute(t, "", "render", data, "-o", out)
	require.NoError(t, err)

	body, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "<svg"))
}

func TestRenderNotEnoughSamples(t *testing.T) {
	data := writeData(t, "prices.json", `[[0, 10]]`)

	stdout, stderr, err := execute(t, "", "render", data)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "not enough samples")
	assert.NotContains(t, stderr, "samples)")
}

func TestRenderResamples(t *testing.T) {
	data := writeData(t, "prices.csv", "1\n2\n3\n4\n5\n6\n7\n8\n")

	_, stderr, err := execute(t, "", "render", data, "--points", "3")
	require.NoError(t, err)
	assert.Contains(t, stderr, "(3 samples)")
}

func TestRenderErrors(t *testing.T) {
	data := writeData(t, "prices.json", risingJSON)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad format", []string{"render", data, "-f", "gif"}, "unsupported export format 'gif'"},
		{"missing data", []string{"render", filepath.Join(t.TempDir(), "nope.json")}, "opening data file"},
		{"bad theme", []string{"render", data, "--theme", "neon"}, "unknown theme"},
		{"bad tension", []string{"render", data, "--tension", "2"}, "tension must be within"},
		{"missing config", []string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "render", data}, "loading config"},
		{"no args", []string{"render"}, "accepts 1 arg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRenderRemovesPartialOutput(t *testing.T) {
	data := writeData(t, "prices.json", risingJSON)
	out := filepath.Join(t.TempDir(), "chart.png")

	// An already-expired deadline makes the browser export fail straight away.
	_, _, err := execute(t, "", "render", data, "-o", out, "--timeout", "1ns")
	require.Error(t, err)
	assert.NoFileExists(t, out)
}

func TestRenderConfigFile(t *testing.T) {
	data := writeData(t, "prices.json", risingJSON)
	cfgPath := writeData(t, "sparkline.yaml", "width: 300\ncolor: \"#123456\"\n")

	stdout, _, err := execute(t, "", "--config", cfgPath, "render", data, "--height", "60")
	require.NoError(t, err)
	assert.Contains(t, stdout, `viewBox="0 0 300 60"`)
	assert.Contains(t, stdout, `stroke="#123456"`)
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "sparkline dev")
	assert.Contains(t, stdout, "go version:")
}

func TestVersionShort(t *testing.T) {
	stdout, _, err := execute(t, "", "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
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
