package svgpath

import (
	"fmt"
	"math"
)

// ArcTo adds a circular arc of the given radius that is tangent to the line
// from the current point to (x1, y1) and to the line from (x1, y1) to
// (x2, y2), connected to the current point by a straight line.
//
// If the current point coincides with (x1, y1), nothing is drawn. If the
// three points are collinear or the radius is zero, a line to (x1, y1) is
// drawn instead. On an empty path, ArcTo starts a subpath at (x1, y1).
//
// ArcTo returns a [*RangeError] if radius is negative.
func (p *Path) ArcTo(x1, y1, x2, y2, radius float64) error {
	if !allFinite(x1, y1, x2, y2, radius) {
		ignored("ArcTo", x1, y1, x2, y2, radius)
		return nil
	}
	if radius < 0 {
		return &RangeError{Msg: fmt.Sprintf("arcTo: radius cannot be negative (%g)", radius)}
	}
	if p.IsEmpty() {
		p.ensureSubpath(x1, y1)
		return nil
	}

	// The construction follows d3's path.arcTo.
	p0 := p.current
	p1 := Point{x1, y1}
	p2 := Point{x2, y2}
	v21 := p2.Sub(p1)
	v01 := p0.Sub(p1)
	l01Sq := v01.Hypot2()

	switch {
	case l01Sq <= 1e-6:
		// (x1, y1) coincides with the current point.
		return nil
	case almostEqual(v01.Y*v21.X, v21.Y*v01.X) || radius == 0:
		// Collinear, or (x1, y1) coincides with (x2, y2).
		p.LineTo(x1, y1)
		return nil
	}

	v20 := p2.Sub(p0)
	l21Sq := v21.Hypot2()
	l20Sq := v20.Hypot2()
	l21 := math.Sqrt(l21Sq)
	l01 := math.Sqrt(l01Sq)
	angle := math.Acos((l21Sq + l01Sq - l20Sq) / (2 * l21 * l01))
	l := radius * math.Tan((math.Pi-angle)/2)
	t01 := l / l01
	t21 := l / l21

	if !almostEqual(t01, 1) {
		start := p1.Translate(v01.Mul(t01))
		p.LineTo(start.X, start.Y)
	}

	var sweep float64
	if v01.Y*v20.X > v01.X*v20.Y {
		sweep = 1
	}
	end := p1.Translate(v21.Mul(t21))
	p.push(Seg(ArcTo, false, radius, radius, 0, 0, sweep, end.X, end.Y))
	p.current = end
	return nil
}
