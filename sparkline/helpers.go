package sparkline

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	defaultStrokeWidth   = 2.0
	defaultPadding       = 4.0
	defaultTension       = 0.5
	defaultKnobSize      = 8.0
	defaultFadeAmount    = 30.0
	maxFadeAmount        = 50.0
	fillTopOpacity       = 0.3
	smoothOvershootRatio = 0.15
)

// Helper to get value from pointer or default
func getFloat64(ptr *float64, def float64) float64 {
	if ptr != nil {
		return *ptr
	}
	return def
}

// renderSettings is a RenderConfig with every default filled in.
type renderSettings struct {
	width, height   float64
	fill            bool
	strokeWidth     float64
	padding         float64
	smooth          bool
	tension         float64
	showKnob        bool
	knobSize        float64
	fadeEdges       bool
	fadeAmount      float64
	upColor         string
	downColor       string
	customColor     string
	backgroundColor string
	idPrefix        string
}

// Initialize render settings from the caller's config
func resolveSettings(cfg RenderConfig) renderSettings {
	cfg = cfg.WithTheme(LightTheme)
	s := renderSettings{
		width:           finiteOr(cfg.Width, 0),
		height:          finiteOr(cfg.Height, 0),
		fill:            cfg.Fill,
		strokeWidth:     finiteOr(cfg.StrokeWidth, 0),
		padding:         finiteOr(getFloat64(cfg.Padding, defaultPadding), defaultPadding),
		smooth:          cfg.Smooth,
		tension:         finiteOr(cfg.SmoothTension, 0),
		showKnob:        cfg.ShowKnob,
		knobSize:        finiteOr(cfg.KnobSize, 0),
		fadeEdges:       cfg.FadeEdges,
		fadeAmount:      finiteOr(cfg.FadeAmount, 0),
		upColor:         cfg.UpColor,
		downColor:       cfg.DownColor,
		customColor:     strings.TrimSpace(cfg.CustomColor),
		backgroundColor: cfg.BackgroundColor,
		idPrefix:        cfg.IDPrefix,
	}
	if s.strokeWidth <= 0 {
		s.strokeWidth = defaultStrokeWidth
	}
	if s.tension <= 0 {
		s.tension = defaultTension
	}
	if s.tension > 1 {
		s.tension = 1
	}
	if s.knobSize <= 0 {
		s.knobSize = defaultKnobSize
	}
	if s.fadeAmount <= 0 {
		s.fadeAmount = defaultFadeAmount
	}
	if s.fadeAmount > maxFadeAmount {
		s.fadeAmount = maxFadeAmount
	}
	return s
}

func finiteOr(v, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

// num formats a coordinate with exactly two decimals.
// Rounding happens on the decimal value, so 0.125 becomes 0.13 and never -0.00.
func num(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0.00"
	}
	s := decimal.NewFromFloat(v).StringFixed(2)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}

// dim formats a canvas dimension without trailing zeros ("100", "12.5").
func dim(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	return decimal.NewFromFloat(v).Round(2).String()
}
