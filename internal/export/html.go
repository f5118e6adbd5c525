// Package export turns a rendered sparkline into the formats the CLI can
// write: a preview page, a data URI, and PNG/JPEG screenshots.
package export

import (
	"encoding/base64"
	"fmt"
	"html"
	"strings"

	"github.com/buffos/go-sparkline/sparkline"
)

// PageOptions controls the HTML preview.
type PageOptions struct {
	Title      string
	Background string // page colour, normally the knob background
}

// HTML wraps an SVG document in a minimal standalone page.
func HTML(res sparkline.RenderResult, opts PageOptions) (string, error) {
	if res.Empty() {
		return "", ErrNothingToExport
	}

	title := opts.Title
	if title == "" {
		title = "Sparkline"
	}
	background := opts.Background
	if _, ok := sparkline.ParseColor(background); !ok {
		background = sparkline.LightTheme.Background
	}
	trend, arrow := "down", "&#9660;"
	if res.IsUp {
		trend, arrow = "up", "&#9650;"
	}

	var htmlBuilder strings.Builder
	htmlBuilder.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	htmlBuilder.WriteString(fmt.Sprintf("<title>%s</title>\n", html.EscapeString(title)))
	htmlBuilder.WriteString("<style>\n")
	htmlBuilder.WriteString(fmt.Sprintf("body { margin: 0; padding: 40px; background: %s; font-family: Arial, sans-serif; }\n", background))
	htmlBuilder.WriteString(`figure { display: inline-block; margin: 0; }
figcaption { font-size: 12px; margin-top: 6px; }
figcaption.up { color: #16c784; }
figcaption.down { color: #ea3943; }
`)
	htmlBuilder.WriteString("</style>\n</head>\n<body>\n<figure>\n")
	htmlBuilder.WriteString(res.SVG)
	htmlBuilder.WriteString("\n")
	htmlBuilder.WriteString(fmt.Sprintf("<figcaption class=\"%s\">%s %s</figcaption>\n", trend, arrow, trend))
	htmlBuilder.WriteString("</figure>\n</body>\n</html>\n")
	return htmlBuilder.String(), nil
}

// DataURI encodes an SVG document so it can be navigated to or pasted as an
// image source without touching the filesystem.
func DataURI(svg string) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}
