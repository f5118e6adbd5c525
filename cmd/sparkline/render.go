package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/buffos/go-sparkline/internal/config"
	"github.com/buffos/go-sparkline/internal/export"
	"github.com/buffos/go-sparkline/internal/series"
	"github.com/buffos/go-sparkline/sparkline"
)

var supportedFormats = map[string]bool{"svg": true, "html": true, "png": true, "jpg": true, "jpeg": true}

// flagKeys maps render flags onto config keys.
var flagKeys = map[string]string{
	"width":        "width",
	"height":       "height",
	"fill":         "fill",
	"stroke-width": "stroke_width",
	"padding":      "padding",
	"theme":        "theme",
	"up-color":     "up_color",
	"down-color":   "down_color",
	"color":        "color",
	"background":   "background",
	"smooth":       "smooth",
	"tension":      "tension",
	"knob":         "knob",
	"knob-size":    "knob_size",
	"fade":         "fade",
	"fade-amount":  "fade_amount",
	"id-prefix":    "id_prefix",
	"points":       "points",
}

type renderOptions struct {
	output  string
	format  string
	input   string
	title   string
	timeout time.Duration
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <data-file|->",
		Short: "Render a sparkline from a JSON or CSV sample file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if err := bindRenderFlags(v, cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(root.cfgFile, v)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			return runRender(cmd, args[0], cfg, opts, root)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "output file path (default: stdout)")
	f.StringVarP(&opts.format, "format", "f", "", "output format: svg, html, png, jpg/jpeg (default: from output extension, else svg)")
	f.StringVar(&opts.input, "input-format", "", "input format: json or csv (default: from extension or content)")
	f.StringVar(&opts.title, "title", "", "page title for html output")
	f.DurationVar(&opts.timeout, "timeout", 30*time.Second, "time limit for png/jpg rendering")

	f.Float64("width", 120, "canvas width in px")
	f.Float64("height", 40, "canvas height in px")
	f.Bool("fill", true, "draw the gradient area under the line")
	f.Float64("stroke-width", 2, "line thickness in px")
	f.Float64("padding", 4, "base inset from the canvas edge in px")
	f.String("theme", "light", "colour theme: light or dark")
	f.String("up-color", "", "line colour when the series rises")
	f.String("down-color", "", "line colour when the series falls")
	f.String("color", "", "fixed line colour, overrides the trend colours")
	f.String("background", "", "page background, also the knob interior")
	f.Bool("smooth", false, "draw a smoothed spline instead of straight segments")
	f.Float64("tension", 0.5, "spline tension in (0, 1]")
	f.Bool("knob", false, "mark the latest value with a ring")
	f.Float64("knob-size", 8, "knob diameter in px")
	f.Bool("fade", false, "fade the chart out towards its edges")
	f.Float64("fade-amount", 30, "percent of the width faded per edge")
	f.String("id-prefix", "", "prefix for gradient/mask ids (default: derived from content)")
	f.Int("points", 0, "resample to this many points (0 keeps all)")

	return cmd
}

func bindRenderFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("binding flag --%s: %w", name, err)
		}
	}
	return nil
}

func runRender(cmd *cobra.Command, dataPath string, cfg *config.Config, opts *renderOptions, root *rootOptions) error {
	format, err := resolveFormat(opts.format, opts.output)
	if err != nil {
		return err
	}

	samples, err := readSamples(cmd, dataPath, series.Format(strings.ToLower(opts.input)))
	if err != nil {
		return err
	}
	if cfg.Points > 0 {
		slog.Debug("resampling", "from", len(samples), "to", cfg.Points)
		samples = series.Resample(samples, cfg.Points)
	}

	res := sparkline.Render(samples, cfg.RenderConfig())
	if res.Empty() {
		slog.Warn("not enough samples to draw a chart", "samples", len(samples))
		return nil
	}

	if err := writeOutput(cmd, res, format, cfg, opts); err != nil {
		return err
	}
	if !root.quiet {
		printTrend(cmd.ErrOrStderr(), res, len(samples))
	}
	return nil
}

// resolveFormat prefers the explicit flag, then the output extension.
func resolveFormat(flagFormat, output string) (string, error) {
	format := strings.ToLower(flagFormat)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
		if !supportedFormats[format] {
			format = "svg"
		}
	}
	if !supportedFormats[format] {
		return "", fmt.Errorf("unsupported export format '%s'. Supported formats: html, svg, png, jpg/jpeg", format)
	}
	return format, nil
}

func readSamples(cmd *cobra.Command, path string, format series.Format) ([]sparkline.Sample, error) {
	var r io.Reader
	if path == "-" {
		slog.Debug("reading samples from stdin")
		r = cmd.InOrStdin()
	} else {
		slog.Debug("reading data file", "path", path)
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening data file '%s': %w", path, err)
		}
		defer f.Close()
		r = f
		if format == series.FormatAuto {
			format = series.FormatFromPath(path)
		}
	}

	samples, err := series.Load(r, format)
	if err != nil {
		return nil, fmt.Errorf("loading samples from '%s': %w", path, err)
	}
	slog.Debug("loaded samples", "count", len(samples))
	return samples, nil
}

// writeOutput sends the chart to stdout or a file. A file left behind by a
// failed export is removed.
func writeOutput(cmd *cobra.Command, res sparkline.RenderResult, format string, cfg *config.Config, opts *renderOptions) (err error) {
	var outputWriter io.Writer = cmd.OutOrStdout()
	if opts.output != "" {
		slog.Debug("output directed to file", "path", opts.output)
		outFile, createErr := os.Create(opts.output)
		if createErr != nil {
			return fmt.Errorf("creating output file '%s': %w", opts.output, createErr)
		}
		defer func() {
			if closeErr := outFile.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("closing output file '%s': %w", opts.output, closeErr)
			}
			if err != nil {
				if removeErr := os.Remove(opts.output); removeErr != nil {
					slog.Warn("could not remove incomplete output file", "path", opts.output, "error", removeErr)
				}
			}
		}()
		outputWriter = outFile
	}

	switch format {
	case "svg":
		if _, err := io.WriteString(outputWriter, res.SVG); err != nil {
			return fmt.Errorf("failed to write SVG output: %w", err)
		}
	case "html":
		page, err := export.HTML(res, export.PageOptions{Title: opts.title, Background: cfg.BackgroundColor()})
		if err != nil {
			return fmt.Errorf("HTML generation failed: %w", err)
		}
		if _, err := io.WriteString(outputWriter, page); err != nil {
			return fmt.Errorf("failed to write HTML output: %w", err)
		}
	default:
		ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
		defer cancel()
		if err := export.Rasterize(ctx, res.SVG, format, outputWriter, export.ImageOptions{}); err != nil {
			return fmt.Errorf("generating %s: %w", format, err)
		}
	}

	slog.Debug("generated output", "format", strings.ToUpper(format))
	return nil
}

func printTrend(w io.Writer, res sparkline.RenderResult, samples int) {
	if res.IsUp {
		color.New(color.FgGreen, color.Bold).Fprint(w, "▲ up")
	} else {
		color.New(color.FgRed, color.Bold).Fprint(w, "▼ down")
	}
	fmt.Fprintf(w, " (%d samples)\n", samples)
}
