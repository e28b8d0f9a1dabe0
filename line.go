package svgpath

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

// Arclen returns the length of the line.
func (l Line) Arclen() float64 {
	return l.Length()
}

func (l Line) ArclenTo(t float64) float64 {
	return l.Length() * t
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Deriv(t float64) Vec2 {
	return l.P1.Sub(l.P0)
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

func (l Line) Subsegment(start, end float64) Line {
	return Line{l.Eval(start), l.Eval(end)}
}
