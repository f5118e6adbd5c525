// Package sparkline renders compact price-history charts as standalone SVG
// documents.
//
// Render is a pure function of its inputs: it performs no I/O, keeps no
// state between calls and is safe to call from any number of goroutines.
// Identical inputs produce byte-identical documents.
package sparkline

// Render maps samples into the canvas, builds the line (and fill) path and
// composes the overlays. Non-finite values are skipped. With fewer than two
// usable samples the result is empty with IsUp set.
func Render(samples []Sample, cfg RenderConfig) RenderResult {
	samples = finiteSamples(samples)
	if len(samples) < 2 {
		return RenderResult{IsUp: true}
	}

	s := resolveSettings(cfg)
	frame := Frame{Width: s.width, Height: s.height, Padding: effectivePadding(s)}
	points := MapPoints(samples, frame)

	line := BuildLinePath(points, s.smooth, s.tension)
	var fill string
	if s.fill {
		fill = BuildFillPath(line, points, frame.Floor())
	}
	return compose(line, fill, points, samples, s)
}
