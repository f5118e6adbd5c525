package sparkline

import "math"

// EffectivePadding is the inset both axes use once the marker ring and the
// spline overshoot are accounted for. It never shrinks below cfg.Padding.
func EffectivePadding(cfg RenderConfig) float64 {
	return effectivePadding(resolveSettings(cfg))
}

func effectivePadding(s renderSettings) float64 {
	pad := s.padding
	if s.showKnob {
		pad = math.Max(pad, s.knobSize/2+s.strokeWidth/2)
	}
	if s.smooth {
		// Bezier control points can pull the first/last segment past the data range.
		plotHeight := s.height - 2*pad
		pad += math.Max(0, plotHeight*s.tension*smoothOvershootRatio)
	}
	return pad
}

// MapPoints places samples evenly along x and scales their values into the
// padded plotting area. A flat series sits on the vertical midpoint.
// Fewer than two samples map to nil.
func MapPoints(samples []Sample, f Frame) []Point {
	n := len(samples)
	if n < 2 {
		return nil
	}

	lo, hi := samples[0].Value, samples[0].Value
	for _, s := range samples[1:] {
		lo = math.Min(lo, s.Value)
		hi = math.Max(hi, s.Value)
	}
	span := hi - lo
	flat := span == 0
	if flat {
		span = 1
	}

	plotWidth := f.Width - 2*f.Padding
	plotHeight := f.Height - 2*f.Padding

	points := make([]Point, n)
	for i, s := range samples {
		norm := (s.Value - lo) / span
		if flat {
			norm = 0.5
		}
		points[i] = Point{
			X: f.Padding + float64(i)/float64(n-1)*plotWidth,
			Y: f.Padding + plotHeight - norm*plotHeight,
		}
	}
	return points
}

// finiteSamples drops NaN and infinite values, keeping order.
func finiteSamples(samples []Sample) []Sample {
	out := make([]Sample, 0, len(samples))
	for _, s := range samples {
		if math.IsNaN(s.Value) || math.IsInf(s.Value, 0) {
			continue
		}
		out = append(out, s)
	}
	return out
}
