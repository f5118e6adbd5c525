package sparkline

import (
	"bytes"
	"fmt"
	"math"
)

const fadeSteps = 5 // intervals per faded edge

// Compose turns the built paths into the final document. samples supplies
// the trend; points supplies the marker position.
func Compose(line, fill string, points []Point, samples []Sample, cfg RenderConfig) RenderResult {
	if len(points) < 2 || len(samples) < 2 || line == "" {
		return RenderResult{IsUp: true}
	}
	return compose(line, fill, points, samples, resolveSettings(cfg))
}

func compose(line, fill string, points []Point, samples []Sample, s renderSettings) RenderResult {
	isUp := samples[len(samples)-1].Value >= samples[0].Value
	stroke := strokeColor(s, isUp)
	background := parseColorOr(s.backgroundColor, white)

	useFade := s.fadeEdges
	ids := deriveIDs(s.idPrefix,
		line, fill, stroke.Hex(), background.Hex(),
		dim(s.width), dim(s.height), num(s.strokeWidth),
		fmt.Sprint(s.showKnob, s.knobSize, useFade, s.fadeAmount),
	)

	var svg bytes.Buffer
	fmt.Fprintf(&svg, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		dim(s.width), dim(s.height), dim(s.width), dim(s.height))

	svg.WriteString("  <defs>\n")
	drawFillGradient(&svg, ids.fill, stroke)
	if useFade {
		drawFadeMask(&svg, ids, s)
	}
	svg.WriteString("  </defs>\n")

	if useFade {
		fmt.Fprintf(&svg, `  <g mask="url(#%s)">`+"\n", ids.mask)
	} else {
		svg.WriteString("  <g>\n")
	}
	if s.fill && fill != "" {
		fmt.Fprintf(&svg, `    <path d="%s" fill="url(#%s)" stroke="none"/>`+"\n", fill, ids.fill)
	}
	fmt.Fprintf(&svg, `    <path d="%s" fill="none" %s stroke-width="%s" stroke-linecap="round" stroke-linejoin="round"/>`+"\n",
		line, paintAttrs("stroke", stroke), num(s.strokeWidth))
	svg.WriteString("  </g>\n")

	// The marker stays outside the masked group so no fade can touch it.
	if s.showKnob {
		drawKnob(&svg, points[len(points)-1], s, stroke, background)
	}

	svg.WriteString("</svg>")
	return RenderResult{SVG: svg.String(), IsUp: isUp}
}

// strokeColor resolves customColor, then the trend colour. Anything that
// does not parse degrades to black.
func strokeColor(s renderSettings, isUp bool) Color {
	if s.customColor != "" {
		return parseColorOr(s.customColor, black)
	}
	if isUp {
		return parseColorOr(s.upColor, black)
	}
	return parseColorOr(s.downColor, black)
}

// Vertical gradient from the stroke colour at 30% down to transparent.
func drawFillGradient(svg *bytes.Buffer, id string, c Color) {
	fmt.Fprintf(svg, `    <linearGradient id="%s" x1="0" y1="0" x2="0" y2="1">`+"\n", id)
	fmt.Fprintf(svg, `      <stop offset="0%%" stop-color="%s" stop-opacity="%s"/>`+"\n", c.Hex(), num(fillTopOpacity*c.Opacity()))
	fmt.Fprintf(svg, `      <stop offset="100%%" stop-color="%s" stop-opacity="0.00"/>`+"\n", c.Hex())
	svg.WriteString("    </linearGradient>\n")
}

type fadeStop struct {
	offset  float64 // percent of width
	opacity float64
}

// fadeStops eases the left edge in and, unless the marker anchors the
// right edge, eases the right edge out.
func fadeStops(amount float64, keepRight bool) []fadeStop {
	stops := make([]fadeStop, 0, 2*(fadeSteps+1))
	for i := 0; i <= fadeSteps; i++ {
		t := float64(i) / fadeSteps
		stops = append(stops, fadeStop{offset: amount * t, opacity: easeOutCubic(t)})
	}
	if keepRight {
		return append(stops, fadeStop{offset: 100, opacity: 1})
	}
	for i := fadeSteps; i >= 0; i-- {
		t := float64(i) / fadeSteps
		stops = append(stops, fadeStop{offset: 100 - amount*t, opacity: easeOutCubic(t)})
	}
	return stops
}

func easeOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

func drawFadeMask(svg *bytes.Buffer, ids elementIDs, s renderSettings) {
	fmt.Fprintf(svg, `    <linearGradient id="%s" x1="0" y1="0" x2="1" y2="0">`+"\n", ids.fade)
	for _, st := range fadeStops(s.fadeAmount, s.showKnob) {
		fmt.Fprintf(svg, `      <stop offset="%s%%" stop-color="#ffffff" stop-opacity="%s"/>`+"\n", num(st.offset), num(st.opacity))
	}
	svg.WriteString("    </linearGradient>\n")
	fmt.Fprintf(svg, `    <mask id="%s" maskUnits="userSpaceOnUse" x="0.00" y="0.00" width="%s" height="%s">`+"\n",
		ids.mask, num(s.width), num(s.height))
	fmt.Fprintf(svg, `      <rect x="0.00" y="0.00" width="%s" height="%s" fill="url(#%s)"/>`+"\n",
		num(s.width), num(s.height), ids.fade)
	svg.WriteString("    </mask>\n")
}

// The knob fill matches the page background, so it reads as a ring.
func drawKnob(svg *bytes.Buffer, at Point, s renderSettings, stroke, background Color) {
	fmt.Fprintf(svg, `  <circle cx="%s" cy="%s" r="%s" %s %s stroke-width="%s"/>`+"\n",
		num(at.X), num(at.Y), num(s.knobSize/2),
		paintAttrs("fill", background), paintAttrs("stroke", stroke), num(s.strokeWidth))
}
