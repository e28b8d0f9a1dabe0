package svgpath

import (
	"iter"
	"math"
)

// Arc is an elliptical arc in center parameterization.
type Arc struct {
	Center Point
	Radii  Vec2
	// StartAngle and SweepAngle are in radians, measured before XRotation is
	// applied.
	StartAngle float64
	SweepAngle float64
	// XRotation is the rotation of the ellipse's x axis, in radians.
	XRotation float64
}

// EndpointArc converts an arc in the endpoint form used by SVG's A command to
// center form, following appendix F.6 of the SVG specification.
//
// Radii that are too small to span the two points are scaled up uniformly to
// the smallest ellipse that does. It reports false for arcs that are drawn as
// straight lines: coincident endpoints or a zero radius.
func EndpointArc(p0, p1 Point, radii Vec2, xRotation float64, largeArc, sweep bool) (Arc, bool) {
	sinPhi, cosPhi := math.Sincos(xRotation)
	hx := (p0.X - p1.X) / 2
	hy := (p0.Y - p1.Y) / 2
	x1p := cosPhi*hx + sinPhi*hy
	y1p := -sinPhi*hx + cosPhi*hy
	if x1p == 0 && y1p == 0 {
		return Arc{}, false
	}
	if radii.X == 0 || radii.Y == 0 {
		return Arc{}, false
	}

	rx := math.Abs(radii.X)
	ry := math.Abs(radii.Y)
	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		Logger().Debug("svgpath: arc radii scaled to fit endpoints", "lambda", lambda)
		rx *= math.Sqrt(lambda)
		ry *= math.Sqrt(lambda)
	}

	rx2 := rx * rx
	ry2 := ry * ry
	x1p2 := x1p * x1p
	y1p2 := y1p * y1p
	radicant := max(rx2*ry2-rx2*y1p2-ry2*x1p2, 0)
	radicant /= rx2*y1p2 + ry2*x1p2
	radicant = math.Sqrt(radicant)
	if largeArc == sweep {
		radicant = -radicant
	}
	cxp := radicant * rx / ry * y1p
	cyp := radicant * -ry / rx * x1p
	center := Point{
		X: cosPhi*cxp - sinPhi*cyp + (p0.X+p1.X)/2,
		Y: sinPhi*cxp + cosPhi*cyp + (p0.Y+p1.Y)/2,
	}

	v1 := Vec2{(x1p - cxp) / rx, (y1p - cyp) / ry}
	v2 := Vec2{(-x1p - cxp) / rx, (-y1p - cyp) / ry}
	theta1 := unitVectorAngle(Vec2{1, 0}, v1)
	dtheta := unitVectorAngle(v1, v2)
	if !sweep && dtheta > 0 {
		dtheta -= 2 * math.Pi
	}
	if sweep && dtheta < 0 {
		dtheta += 2 * math.Pi
	}
	return Arc{
		Center:     center,
		Radii:      Vec2{rx, ry},
		StartAngle: theta1,
		SweepAngle: dtheta,
		XRotation:  xRotation,
	}, true
}

// unitVectorAngle returns the signed angle from u to v, both unit vectors.
func unitVectorAngle(u, v Vec2) float64 {
	sign := 1.0
	if u.Cross(v) < 0 {
		sign = -1
	}
	dot := min(max(u.Dot(v), -1), 1)
	return sign * math.Acos(dot)
}

// Point returns the point on the arc's ellipse at angle th.
func (a Arc) Point(th float64) Point {
	return a.Center.Translate(sampleEllipse(a.Radii, a.XRotation, th))
}

// Cubics approximates the arc with cubic Béziers, none of which spans more
// than a quarter turn.
func (a Arc) Cubics() iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		// The tolerance keeps rounding in the sweep from adding a sliver.
		n := max(math.Ceil(math.Abs(a.SweepAngle)/(math.Pi/2)-1e-9), 1)
		angleStep := a.SweepAngle / n
		armLen := (4.0 / 3.0) * math.Tan(angleStep/4)
		angle0 := a.StartAngle
		p0 := sampleEllipse(a.Radii, a.XRotation, angle0)

		for range int(n) {
			angle1 := angle0 + angleStep
			p1 := p0.Add(sampleEllipse(a.Radii, a.XRotation, angle0+math.Pi/2).Mul(armLen))
			p3 := sampleEllipse(a.Radii, a.XRotation, angle1)
			p2 := p3.Sub(sampleEllipse(a.Radii, a.XRotation, angle1+math.Pi/2).Mul(armLen))

			if !yield(CubicBez{
				a.Center.Translate(p0),
				a.Center.Translate(p1),
				a.Center.Translate(p2),
				a.Center.Translate(p3),
			}) {
				return
			}
			angle0 = angle1
			p0 = p3
		}
	}
}

// sampleEllipse returns the point at angle on an origin-centered ellipse with
// the given radii, rotated by xRotation.
func sampleEllipse(radii Vec2, xRotation float64, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{radii.X * cos, radii.Y * sin}.Rotate(xRotation)
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
