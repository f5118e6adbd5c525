package sparkline

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is an 8-bit RGBA colour.
type Color struct {
	R, G, B, A uint8
}

var (
	black = Color{A: 255}
	white = Color{R: 255, G: 255, B: 255, A: 255}
)

// Hex returns the colour as #rrggbb, alpha excluded.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Opacity is the alpha channel as a fraction in [0,1].
func (c Color) Opacity() float64 {
	return float64(c.A) / 255
}

// ParseColor understands #rgb, #rgba, #rrggbb, #rrggbbaa, rgb(), rgba(),
// "transparent" and the SVG named colours. ok is false when s is none of these.
func ParseColor(s string) (c Color, ok bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return Color{}, false
	case s == "transparent":
		return Color{}, true
	case strings.HasPrefix(s, "#"):
		return parseHexColor(s[1:])
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseFuncColor(s[len("rgba("):len(s)-1], true)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseFuncColor(s[len("rgb("):len(s)-1], false)
	}
	if named, found := colornames.Map[s]; found {
		return Color{R: named.R, G: named.G, B: named.B, A: 255}, true
	}
	return Color{}, false
}

// parseColorOr falls back to def for anything ParseColor rejects.
func parseColorOr(s string, def Color) Color {
	if c, ok := ParseColor(s); ok {
		return c
	}
	return def
}

func parseHexColor(h string) (Color, bool) {
	switch len(h) {
	case 3, 4:
		// Expand the short form: "f80" -> "ff8800".
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		h = b.String()
	case 6, 8:
	default:
		return Color{}, false
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, false
	}
	if len(h) == 6 {
		return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, true
}

func parseFuncColor(args string, withAlpha bool) (Color, bool) {
	parts := strings.Split(args, ",")
	if (withAlpha && len(parts) != 4) || (!withAlpha && len(parts) != 3) {
		return Color{}, false
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return Color{}, false
		}
		ch[i] = uint8(n)
	}
	c := Color{R: ch[0], G: ch[1], B: ch[2], A: 255}
	if withAlpha {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return Color{}, false
		}
		c.A = uint8(a*255 + 0.5)
	}
	return c, true
}

// paintAttrs writes a colour as an SVG paint attribute, adding the matching
// opacity attribute only when the colour is not fully opaque.
func paintAttrs(attr string, c Color) string {
	if c.A == 255 {
		return fmt.Sprintf(`%s="%s"`, attr, c.Hex())
	}
	return fmt.Sprintf(`%s="%s" %s-opacity="%s"`, attr, c.Hex(), attr, num(c.Opacity()))
}
