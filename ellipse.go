package svgpath

import (
	"fmt"
	"math"
)

// Ellipse is the image of the unit circle under an affine transform.
type Ellipse struct {
	inner Affine
}

// NewEllipse returns the ellipse with the given center and radii whose x
// axis is rotated by xRotation radians.
func NewEllipse(center Point, radii Vec2, xRotation float64) Ellipse {
	// The circle is symmetric about both axes, so the sign of the radii
	// doesn't matter.
	return Ellipse{
		inner: Translate(Vec2(center)).
			Mul(Rotate(xRotation)).
			Mul(Scale(math.Abs(radii.X), math.Abs(radii.Y))),
	}
}

// Center returns the center of the ellipse.
func (e Ellipse) Center() Point {
	return Point(e.inner.Translation())
}

// RadiiRotation returns the radii of the ellipse and the rotation of its x
// axis, in radians.
func (e Ellipse) RadiiRotation() (Vec2, float64) {
	return e.inner.svd()
}

// Transform returns the ellipse mapped through aff.
func (e Ellipse) Transform(aff Affine) Ellipse {
	return Ellipse{inner: aff.Mul(e.inner)}
}

// transformArc maps the radii and rotation of an arc segment through the
// linear part of aff. A reflecting transform reverses the arc's direction,
// so the sweep flag is toggled.
func transformArc(s *Segment, aff Affine) {
	lin := aff
	lin.N4, lin.N5 = 0, 0
	e := NewEllipse(Point{}, Vec2{s.Args[0], s.Args[1]}, radians(s.Args[2])).Transform(lin)
	radii, rot := e.RadiiRotation()
	if !radii.IsFinite() {
		// Singular transform; the arc collapses onto a line.
		radii = Vec2{}
	}
	s.Args[0] = radii.X
	s.Args[1] = radii.Y
	s.Args[2] = degrees(rot)
	if aff.Determinant() < 0 {
		s.Args[4] = 1 - s.Args[4]
	}
}

// almostEqual compares with the tolerance d3 uses for arcTo.
func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// Ellipse adds an elliptical arc centered at (x, y) with radii rx and ry,
// whose x axis is rotated by rotation radians. The arc runs from startAngle
// to endAngle, clockwise (in a y-down space) unless ccw is set. A line
// connects the current point to the start of the arc; on an empty path the
// arc's start begins a new subpath instead.
//
// A span of a full turn or more draws the complete ellipse, as two half
// arcs. Otherwise the angles are wrapped so that the arc runs in the
// requested direction.
//
// Ellipse returns a [*RangeError] if a radius is negative.
func (p *Path) Ellipse(x, y, rx, ry, rotation, startAngle, endAngle float64, ccw bool) error {
	if !allFinite(x, y, rx, ry, rotation, startAngle, endAngle) {
		ignored("Ellipse", x, y, rx, ry, rotation, startAngle, endAngle)
		return nil
	}
	if rx < 0 || ry < 0 {
		return &RangeError{Msg: fmt.Sprintf("ellipse: radii cannot be negative (%g, %g)", rx, ry)}
	}

	const tau = 2 * math.Pi
	newStart := math.Mod(startAngle, tau)
	if newStart <= 0 {
		newStart += tau
	}
	endAngle += newStart - startAngle
	startAngle = newStart

	switch {
	case !ccw && endAngle-startAngle >= tau:
		endAngle = startAngle + tau
	case ccw && startAngle-endAngle >= tau:
		endAngle = startAngle - tau
	case !ccw && startAngle > endAngle:
		endAngle = startAngle + (tau - math.Mod(startAngle-endAngle, tau))
	case ccw && startAngle < endAngle:
		endAngle = startAngle - (tau - math.Mod(endAngle-startAngle, tau))
	}

	center := Point{x, y}
	radii := Vec2{rx, ry}
	sweep := degrees(endAngle - startAngle)
	start := degrees(startAngle)
	// A single arc can't describe a full turn, as its endpoints coincide.
	if almostEqual(math.Abs(sweep), 360) {
		half := sweep / 2
		p.arcToOval(center, radii, rotation, start, half, true)
		p.arcToOval(center, radii, rotation, start+half, half, false)
	} else {
		p.arcToOval(center, radii, rotation, start, sweep, true)
	}
	return nil
}

// Arc adds a circular arc. It is Ellipse with equal radii and no rotation.
func (p *Path) Arc(x, y, r, startAngle, endAngle float64, ccw bool) error {
	return p.Ellipse(x, y, r, r, 0, startAngle, endAngle, ccw)
}

// arcToOval appends an arc segment tracing the ellipse from startDeg over
// sweepDeg degrees, preceded by a line to its start if lineTo is set.
func (p *Path) arcToOval(center Point, radii Vec2, rotation, startDeg, sweepDeg float64, lineTo bool) {
	abs := Vec2{math.Abs(radii.X), math.Abs(radii.Y)}
	arc := Arc{
		Center:     center,
		Radii:      abs,
		StartAngle: radians(startDeg),
		SweepAngle: radians(sweepDeg),
		XRotation:  rotation,
	}
	p0 := arc.Point(arc.StartAngle)
	p1 := arc.Point(arc.StartAngle + arc.SweepAngle)
	var large, sweep float64
	// Both arcs of a half turn are the same; don't let rounding pick the
	// large one.
	if math.Abs(sweepDeg)-180 > 1e-9 {
		large = 1
	}
	if arc.SweepAngle > 0 {
		sweep = 1
	}

	if lineTo {
		p.LineTo(p0.X, p0.Y)
	}
	p.push(Seg(ArcTo, false, radii.X, radii.Y, degrees(rotation), large, sweep, p1.X, p1.Y))
	p.current = p1
}
