package sparkline

import "strings"

// BuildLinePath returns SVG path data through every point: a polyline, or
// with smooth set, Catmull-Rom segments converted to cubic Beziers.
func BuildLinePath(points []Point, smooth bool, tension float64) string {
	if len(points) == 0 {
		return ""
	}
	var d strings.Builder
	writeCmd(&d, "M", points[0])

	// Two points have no neighbours to bend around.
	if !smooth || len(points) == 2 {
		for _, p := range points[1:] {
			writeCmd(&d, "L", p)
		}
		return d.String()
	}

	last := len(points) - 1
	for i := 0; i < last; i++ {
		p0 := points[max(i-1, 0)]
		p1 := points[i]
		p2 := points[i+1]
		p3 := points[min(i+2, last)]

		cp1 := Point{
			X: p1.X + (p2.X-p0.X)*tension/3,
			Y: p1.Y + (p2.Y-p0.Y)*tension/3,
		}
		cp2 := Point{
			X: p2.X - (p3.X-p1.X)*tension/3,
			Y: p2.Y - (p3.Y-p1.Y)*tension/3,
		}
		writeCmd(&d, "C", cp1, cp2, p2)
	}
	return d.String()
}

// BuildFillPath closes a line path down to floor so the area under the
// line can take the gradient.
func BuildFillPath(line string, points []Point, floor float64) string {
	if line == "" || len(points) == 0 {
		return ""
	}
	var d strings.Builder
	d.WriteString(line)
	writeCmd(&d, "L", Point{X: points[len(points)-1].X, Y: floor})
	writeCmd(&d, "L", Point{X: points[0].X, Y: floor})
	d.WriteString(" Z")
	return d.String()
}

func writeCmd(d *strings.Builder, cmd string, pts ...Point) {
	if d.Len() > 0 {
		d.WriteByte(' ')
	}
	d.WriteString(cmd)
	for _, p := range pts {
		d.WriteByte(' ')
		d.WriteString(num(p.X))
		d.WriteByte(' ')
		d.WriteString(num(p.Y))
	}
}
