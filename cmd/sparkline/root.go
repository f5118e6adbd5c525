package main

import (
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	cfgFile string
	verbose bool
	quiet   bool
	noColor bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "sparkline",
		Short: "Render compact price-history charts",
		Long: `sparkline turns a series of (timestamp, price) samples into a small
self-contained chart.

Example usage:
  sparkline render prices.json                     # SVG on stdout
  sparkline render prices.csv -o chart.png --knob  # PNG through headless Chrome
  sparkline render prices.json -f html --theme dark --smooth --fade`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is .sparkline.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress the trend summary")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable coloured output")

	cmd.AddCommand(newRenderCmd(opts), newVersionCmd())
	return cmd
}

// setupLogging installs a text slog handler on stderr as the default logger.
func setupLogging(cmd *cobra.Command, opts *rootOptions) {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	} else if opts.quiet {
		level = slog.LevelWarn
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	})))
	if opts.noColor {
		color.NoColor = true
	}
}
