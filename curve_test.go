package svgpath

import (
	"math"
	"sort"
	"testing"
)

func checkRoots(t *testing.T, roots, expected []float64) {
	t.Helper()
	if len(roots) != len(expected) {
		t.Fatalf("got %d roots, expected %d", len(roots), len(expected))
	}
	const epsilon = 1e-12
	sort.Float64s(roots)
	sort.Float64s(expected)
	for i := range roots {
		if math.Abs(roots[i]-expected[i]) > epsilon {
			t.Errorf("root %d is %v but we expected %v", i, roots[i], expected[i])
		}
	}
}

func TestSolveQuadratic(t *testing.T) {
	slice := func(roots [2]float64, n int) []float64 {
		return roots[:n]
	}
	checkRoots(t, slice(SolveQuadratic(-5.0, 0.0, 1.0)), []float64{-math.Sqrt(5), math.Sqrt(5)})
	checkRoots(t, slice(SolveQuadratic(5.0, 0.0, 1.0)), []float64{})
	checkRoots(t, slice(SolveQuadratic(5.0, 1.0, 0.0)), []float64{-5.0})
	checkRoots(t, slice(SolveQuadratic(1.0, 2.0, 1.0)), []float64{-1.0})
	checkRoots(t, slice(SolveQuadratic(0.0, 0.0, 0.0)), []float64{0.0})
	checkRoots(t, slice(SolveQuadratic(1.0, 0.0, 0.0)), []float64{})
}

func TestSolveForArclenBounds(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(10, 30), Pt(20, -30), Pt(30, 0)}
	if got := SolveForArclen(c, -1); got != 0 {
		t.Errorf("got t=%v for negative length, want 0", got)
	}
	if got := SolveForArclen(c, c.Arclen()*2); got != 1 {
		t.Errorf("got t=%v for excess length, want 1", got)
	}
}

func TestSolveForArclenDegenerateSpeed(t *testing.T) {
	// The speed is zero at both ends.
	c := CubicBez{Pt(0, 0), Pt(0, 0), Pt(10, 0), Pt(10, 0)}
	total := c.Arclen()
	if math.Abs(total-10) > 1e-9 {
		t.Fatalf("got length %v, want 10", total)
	}
	for _, l := range []float64{0.001, 1, 5, 9, 9.999} {
		tt := SolveForArclen(c, l)
		if got := c.ArclenTo(tt); math.Abs(got-l) > 1e-6 {
			t.Errorf("length at solved t=%v is %v, want %v", tt, got, l)
		}
	}
}

func TestIntegrateSpeed(t *testing.T) {
	// A constant speed of 5.
	got := integrateSpeed(func(float64) Vec2 { return Vec(3, 4) })
	if math.Abs(got-5) > 1e-12 {
		t.Errorf("got %v, want 5", got)
	}
}
