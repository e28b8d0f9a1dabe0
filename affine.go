package svgpath

import (
	"math"
)

// Affine is a 2D affine transform, laid out like the a–f members of a
// canvas DOMMatrix.
//
// The coefficients (a, b, c, d, e, f) describe the augmented matrix
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// so that (A * B) * v == A * (B * v).
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// NewAffine returns the transform with coefficients a through f, in the
// order used by setTransform and DOMMatrix.
func NewAffine(a, b, c, d, e, f float64) Affine {
	return Affine{a, b, c, d, e, f}
}

// Scale creates an affine transform representing non-uniform scaling.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate creates an affine transform representing a rotation of th radians.
//
// A positive angle rotates the positive X direction into positive Y, which is
// clockwise in the y-down coordinate space of SVG.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// RotateAbout creates an affine transform representing a rotation of th
// radians about center.
func RotateAbout(th float64, center Point) Affine {
	c := Vec2(center)
	return Translate(c.Negate()).ThenRotate(th).ThenTranslate(c)
}

// Skew creates an affine transform representing a skew with horizontal factor
// x and vertical factor y.
func Skew(x, y float64) Affine {
	return Affine{1, y, x, 1, 0, 0}
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenRotate creates aff followed by a rotation of th.
func (aff Affine) ThenRotate(th float64) Affine {
	return Rotate(th).Mul(aff)
}

// ThenScale creates aff followed by a scale of (x, y).
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// ThenTranslate creates aff followed by a translation of v.
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// Determinant computes the determinant of the linear part.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (aff Affine) Invert() Affine {
	invDet := 1 / aff.Determinant()
	return Affine{
		+invDet * aff.N3,
		-invDet * aff.N1,
		-invDet * aff.N2,
		+invDet * aff.N0,
		+invDet * (aff.N2*aff.N5 - aff.N3*aff.N4),
		+invDet * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

// IsFinite reports whether all six coefficients are finite.
func (aff Affine) IsFinite() bool {
	return allFinite(aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5)
}

// IsIdentity reports whether aff is exactly the identity transform.
func (aff Affine) IsIdentity() bool {
	return aff == Identity
}

// usable reports whether m should be applied at all. A nil or non-finite
// matrix means "no transform".
func usable(m *Affine) bool {
	return m != nil && m.IsFinite() && !m.IsIdentity()
}

// svd computes the scaling and first rotation of the singular value
// decomposition U Σ Vᵀ of the linear part of aff. Vᵀ is not computed since
// rotating a circle about its center yields the same circle, which is all we
// use this for.
//
// The rotation is only defined modulo π. Returns NaNs if the linear map is
// singular.
func (aff Affine) svd() (scale Vec2, th float64) {
	a := aff.N0
	a2 := a * a
	b := aff.N1
	b2 := b * b
	c := aff.N2
	c2 := c * c
	d := aff.N3
	d2 := d * d
	ab := a * b
	cd := c * d
	th = 0.5 * math.Atan2(2.0*(ab+cd), a2-b2+c2-d2)
	s1 := a2 + b2 + c2 + d2
	s2 := math.Sqrt(math.Pow(a2-b2+c2-d2, 2) + 4.0*math.Pow(ab+cd, 2))
	return Vec2{
		X: math.Sqrt(0.5 * (s1 + s2)),
		Y: math.Sqrt(math.Max(0.5*(s1-s2), 0)),
	}, th
}

// Translation returns the translation component of aff.
func (aff Affine) Translation() Vec2 {
	return Vec2{X: aff.N4, Y: aff.N5}
}
