package svgpath

import (
	"sort"
)

// CubicBez is a cubic Bézier segment.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Arclen returns the arclength of the cubic Bézier segment, using 24-point
// Legendre-Gauss quadrature of its speed.
//
// A cubic whose control polygon is a straight run from start to end is a line
// and is measured as one.
func (c CubicBez) Arclen() float64 {
	d03 := c.P3.Sub(c.P0)
	poly := c.P1.Sub(c.P0).Hypot() + c.P2.Sub(c.P1).Hypot() + c.P3.Sub(c.P2).Hypot()
	chord := d03.Hypot()
	if poly-chord <= 1e-12*poly {
		return chord
	}
	return integrateSpeed(c.Deriv)
}

// ArclenTo returns the length of the curve between parameters 0 and t.
func (c CubicBez) ArclenTo(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return c.Arclen()
	}
	return c.Subsegment(0, t).Arclen()
}

func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

func (c CubicBez) Deriv(t float64) Vec2 {
	return Vec2(c.Differentiate().Eval(t))
}

func (c CubicBez) Start() Point { return c.P0 }
func (c CubicBez) End() Point   { return c.P3 }

func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	d := c.Differentiate()
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(Vec2(d.Eval(t0)).Mul(scale))
	p2 := p3.Translate(Vec2(d.Eval(t1)).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

func (c CubicBez) Extrema() ([MaxExtrema]float64, int) {
	// Up to two roots of the derivative per axis.
	var out [MaxExtrema]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		if a == 0 && b == 0 {
			// Constant derivative, either zero everywhere or nowhere.
			return
		}
		roots, n := SolveQuadratic(c, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	sort.Float64s(out[:outN])
	return out, outN
}
