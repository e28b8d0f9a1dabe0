package svgpath

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestEllipseRadiiRotation(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)
	e := NewEllipse(Pt(5, 5), Vec(-10, 4), 0)
	radii, rot := e.RadiiRotation()
	diff(t, Vec(10, 4), radii, approx)
	diff(t, 0.0, rot, approx)
	diff(t, Pt(5, 5), e.Center())

	e = e.Transform(Translate(Vec(1, 1)))
	diff(t, Pt(6, 6), e.Center())

	e = NewEllipse(Point{}, Vec(10, 4), 0.3).Transform(Rotate(0.2))
	radii, rot = e.RadiiRotation()
	diff(t, Vec(10, 4), radii, approx)
	diff(t, 0.5, rot, approx)
}

func TestPathEllipseFullTurn(t *testing.T) {
	p := NewPath()
	if err := p.Ellipse(0, 0, 10, 5, 0, 0, 2*math.Pi, false); err != nil {
		t.Fatal(err)
	}
	segs := p.Segments()
	if len(segs) != 3 {
		t.Fatalf("got %v, want a moveto and two arcs", segs)
	}
	if got, want := segs.Round(6).String(), "M10 0A10 5 0 0 1-10 0 10 5 0 0 1 10 0"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	// Each half spans π, as does the arc they're expanded to.
	for _, s := range segs[1:] {
		if s.Args[3] != 0 || s.Args[4] != 1 {
			t.Errorf("got flags %v %v, want 0 1", s.Args[3], s.Args[4])
		}
	}

	// Any span of more than a full turn is a full turn.
	q := NewPath()
	if err := q.Ellipse(0, 0, 10, 5, 0, 1, -20, true); err != nil {
		t.Fatal(err)
	}
	if q.Len() != 3 {
		t.Errorf("got %q, want a full ellipse", q)
	}
}

func TestPathArc(t *testing.T) {
	tests := []struct {
		draw func(p *Path) error
		want string
	}{
		{
			func(p *Path) error {
				p.MoveTo(0, 0)
				return p.Arc(0, 0, 10, 0, math.Pi/2, false)
			},
			"M0 0L10 0A10 10 0 0 1 0 10",
		},
		// Counterclockwise from 0 to π/2 goes the long way round.
		{
			func(p *Path) error { return p.Arc(0, 0, 10, 0, math.Pi/2, true) },
			"M10 0A10 10 0 1 0 0 10",
		},
		// Clockwise from π/2 to 0 too.
		{
			func(p *Path) error { return p.Arc(0, 0, 10, math.Pi/2, 0, false) },
			"M0 10A10 10 0 1 1 10 0",
		},
		{
			func(p *Path) error { return p.Arc(0, 0, 10, -math.Pi/2, 0, false) },
			"M0-10A10 10 0 0 1 10 0",
		},
	}
	for _, tt := range tests {
		p := NewPath()
		if err := tt.draw(p); err != nil {
			t.Fatal(err)
		}
		if got := p.Segments().Round(6).String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestPathEllipseNegativeRadius(t *testing.T) {
	p := MustParsePath("M0 0")
	err := p.Ellipse(0, 0, -1, 5, 0, 0, 1, false)
	var rerr *RangeError
	if !errors.As(err, &rerr) {
		t.Fatalf("got error %v, want a *RangeError", err)
	}
	if p.Len() != 1 {
		t.Errorf("failed Ellipse modified the path: %q", p)
	}
	if err := p.Arc(0, 0, -1, 0, 1, false); !errors.As(err, &rerr) {
		t.Errorf("got error %v, want a *RangeError", err)
	}
}
