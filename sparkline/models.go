package sparkline

// --- Input Structs ---

// Sample is one time-ordered observation. Index is usually a timestamp but
// only the position of the sample in its slice affects the horizontal layout.
type Sample struct {
	Index float64 `json:"index"`
	Value float64 `json:"value"`
}

// Point is a sample mapped into canvas pixel space (y grows downwards).
type Point struct {
	X float64
	Y float64
}

// RenderConfig holds every option of a single render. Zero values select
// the documented defaults; Padding is a pointer because 0 is a valid inset.
type RenderConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Fill   bool    `json:"fill"`

	StrokeWidth float64  `json:"stroke_width,omitempty"` // default 2
	Padding     *float64 `json:"padding,omitempty"`      // default 4

	UpColor     string `json:"up_color,omitempty"`
	DownColor   string `json:"down_color,omitempty"`
	CustomColor string `json:"custom_color,omitempty"` // wins over the trend colours when set

	Smooth        bool    `json:"smooth,omitempty"`
	SmoothTension float64 `json:"smooth_tension,omitempty"` // (0,1], default 0.5

	ShowKnob        bool    `json:"show_knob,omitempty"`
	KnobSize        float64 `json:"knob_size,omitempty"` // diameter, default 8
	BackgroundColor string  `json:"background_color,omitempty"`

	FadeEdges  bool    `json:"fade_edges,omitempty"`
	FadeAmount float64 `json:"fade_amount,omitempty"` // percent of width per edge, default 30

	// IDPrefix names the gradient and mask elements. Empty derives a
	// stable name from the rendered content.
	IDPrefix string `json:"id_prefix,omitempty"`
}

// WithTheme returns a copy of c whose unset colours are taken from t.
func (c RenderConfig) WithTheme(t Theme) RenderConfig {
	if c.UpColor == "" {
		c.UpColor = t.Up
	}
	if c.DownColor == "" {
		c.DownColor = t.Down
	}
	if c.BackgroundColor == "" {
		c.BackgroundColor = t.Background
	}
	return c
}

// --- Output Structs ---

// RenderResult is the serialised document plus the trend direction.
// An empty SVG means there was not enough data to draw anything.
type RenderResult struct {
	SVG  string
	IsUp bool
}

// Empty reports whether the render produced no document.
func (r RenderResult) Empty() bool { return r.SVG == "" }

// Frame is the canvas the mapper places points into.
type Frame struct {
	Width   float64
	Height  float64
	Padding float64
}

// Floor is the y coordinate of the bottom edge of the plotting area.
func (f Frame) Floor() float64 { return f.Height - f.Padding }

// Theme is a palette for the trend colours and the page background.
type Theme struct {
	Up         string
	Down       string
	Background string
}

var (
	LightTheme = Theme{Up: "#16c784", Down: "#ea3943", Background: "#ffffff"}
	DarkTheme  = Theme{Up: "#22c55e", Down: "#ef4444", Background: "#0d1117"}
)

// ThemeByName resolves "light" or "dark"; ok is false for anything else.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "", "light":
		return LightTheme, true
	case "dark":
		return DarkTheme, true
	}
	return Theme{}, false
}
