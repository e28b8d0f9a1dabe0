package svgpath

import (
	"math"
	"testing"
)

func TestLineArclen(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}
	want := math.Sqrt(2.0)
	epsilon := 1e-9
	if d := math.Abs(l.Arclen() - want); d > epsilon {
		t.Errorf("%g > %g", d, epsilon)
	}
	if d := math.Abs(l.ArclenTo(0.25) - want/4); d > epsilon {
		t.Errorf("%g > %g", d, epsilon)
	}

	ts := SolveForArclen(l, want/3.0)
	if d := math.Abs(ts - 1.0/3.0); d > epsilon {
		t.Errorf("%g > %g", d, epsilon)
	}
}

func TestLineSubsegment(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 20)}
	diff(t, Line{Pt(2, 4), Pt(5, 10)}, l.Subsegment(0.2, 0.5))
}
