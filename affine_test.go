package svgpath

import (
	"math"
	"testing"
)

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Rotate(0)), p, epsilon)
	assertNear(t, p.Transform(Rotate(math.Pi/2)), Pt(-4, 3), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(Skew(0, 0)), p, epsilon)
	assertNear(t, p.Transform(Skew(2, 4)), Pt(11, 16), epsilon)
	assertNear(t, p.Transform(NewAffine(1, 0, 0, 1, 10, 20)), Pt(13, 24), epsilon)
	assertNear(t, p.Transform(RotateAbout(math.Pi, Pt(3, 0))), Pt(3, -4), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(a2).Transform(a1), px.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, py.Transform(a2).Transform(a1), py.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, pxy.Transform(a2).Transform(a1), pxy.Transform(a1.Mul(a2)), epsilon)
}

func TestAffineThen(t *testing.T) {
	const epsilon = 1e-9
	a := Scale(2, 3).ThenTranslate(Vec(1, 1)).ThenRotate(math.Pi / 2)
	// (1, 1) -> (2, 3) -> (3, 4) -> (-4, 3)
	assertNear(t, Pt(1, 1).Transform(a), Pt(-4, 3), epsilon)
	assertNear(t, Pt(1, 1).Transform(Identity.ThenScale(-1, 1)), Pt(-1, 1), epsilon)
}

func TestAffineInvert(t *testing.T) {
	const epsilon = 1e-9
	a := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}
	aInv := a.Invert()

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(aInv).Transform(a), px, epsilon)
	assertNear(t, py.Transform(aInv).Transform(a), py, epsilon)
	assertNear(t, pxy.Transform(aInv).Transform(a), pxy, epsilon)
	assertNear(t, px.Transform(a).Transform(aInv), px, epsilon)
	assertNear(t, py.Transform(a).Transform(aInv), py, epsilon)
	assertNear(t, pxy.Transform(a).Transform(aInv), pxy, epsilon)
}

func TestAffineUsable(t *testing.T) {
	nan := Affine{math.NaN(), 0, 0, 1, 0, 0}
	inf := Affine{1, 0, 0, 1, math.Inf(1), 0}
	scale := Scale(2, 2)
	tests := []struct {
		m    *Affine
		want bool
	}{
		{nil, false},
		{&Identity, false},
		{&nan, false},
		{&inf, false},
		{&scale, true},
	}
	for _, tt := range tests {
		if got := usable(tt.m); got != tt.want {
			t.Errorf("usable(%v) = %t, want %t", tt.m, got, tt.want)
		}
	}
}

func TestAffineSVD(t *testing.T) {
	const epsilon = 1e-9
	scale, th := Scale(3, 2).svd()
	assertNear(t, Point(scale), Pt(3, 2), epsilon)
	if math.Abs(th) > epsilon {
		t.Errorf("got rotation %v, want 0", th)
	}

	scale, th = Scale(2, 3).ThenRotate(math.Pi / 4).svd()
	assertNear(t, Point(scale), Pt(3, 2), epsilon)
	// The major axis points along 3π/4, which is -π/4 modulo π.
	if want := -math.Pi / 4; math.Abs(th-want) > epsilon {
		t.Errorf("got rotation %v, want %v", th, want)
	}
}
