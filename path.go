package svgpath

import (
	"fmt"
	"strings"
)

// RangeError reports an argument outside of the range a construction method
// accepts, such as a negative radius. The path is left unchanged.
type RangeError struct {
	Msg string
}

func (err *RangeError) Error() string {
	return "svgpath: " + err.Msg
}

// Path is a mutable path built from canvas-style construction calls or from
// SVG path data.
//
// All construction methods silently ignore calls with non-finite arguments,
// the way canvas paths do. The zero value is an empty path ready for use. A
// Path must not be modified concurrently.
type Path struct {
	segs Segments
	// current is the current point; start is the start of the current
	// subpath. Both are only meaningful if open is set.
	current Point
	start   Point
	// open is set once a subpath has been started. Drawing methods other
	// than LineTo start one implicitly at their first point if it isn't.
	open bool
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

// ParsePath parses SVG path data into a path.
//
// The data is resolved to absolute coordinates, smooth curves are expanded to
// full curves and arcs to cubic Béziers, and the result is replayed through
// the construction methods. Horizontal and vertical lines become lines.
// Catmull-Rom (R) segments are not supported by paths and are dropped.
func ParsePath(d string) (*Path, error) {
	segs, err := ParseSegments(d)
	if err != nil {
		return nil, err
	}
	p := NewPath()
	for _, s := range segs.Absolute().ExpandShorthand().ExpandArcs() {
		a := s.Args
		switch s.Kind {
		case MoveTo:
			p.MoveTo(a[0], a[1])
		case LineTo:
			p.LineTo(a[0], a[1])
		case HorizontalLineTo:
			p.LineTo(a[0], p.current.Y)
		case VerticalLineTo:
			p.LineTo(p.current.X, a[0])
		case CubicTo:
			p.BezierCurveTo(a[0], a[1], a[2], a[3], a[4], a[5])
		case QuadTo:
			p.QuadraticCurveTo(a[0], a[1], a[2], a[3])
		case ClosePath:
			p.ClosePath()
		case CatmullRom:
		default:
			panic(fmt.Sprintf("unhandled case %v", s.Kind))
		}
	}
	return p, nil
}

// MustParsePath is like [ParsePath] but panics on malformed input.
func MustParsePath(d string) *Path {
	p, err := ParsePath(d)
	if err != nil {
		panic(err)
	}
	return p
}

// ignored logs a construction call dropped because of non-finite arguments.
func ignored(op string, args ...float64) {
	Logger().Debug("svgpath: non-finite arguments ignored", "op", op, "args", args)
}

func (p *Path) push(s Segment) {
	p.segs = append(p.segs, s)
}

// ensureSubpath starts a subpath at (x, y) unless one is already open.
func (p *Path) ensureSubpath(x, y float64) {
	if !p.open {
		p.MoveTo(x, y)
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	if !allFinite(x, y) {
		ignored("MoveTo", x, y)
		return
	}
	p.push(Seg(MoveTo, false, x, y))
	p.current = Point{x, y}
	p.start = p.current
	p.open = true
}

// LineTo adds a line from the current point to (x, y). On an empty path it
// is equivalent to MoveTo.
func (p *Path) LineTo(x, y float64) {
	if p.IsEmpty() {
		p.MoveTo(x, y)
		return
	}
	if !allFinite(x, y) {
		ignored("LineTo", x, y)
		return
	}
	p.push(Seg(LineTo, false, x, y))
	p.current = Point{x, y}
}

// ClosePath closes the current subpath, moving the current point back to
// its start. It does nothing on an empty path.
func (p *Path) ClosePath() {
	if p.IsEmpty() {
		return
	}
	p.push(Segment{Kind: ClosePath})
	p.current = p.start
}

// BezierCurveTo adds a cubic Bézier from the current point to (x, y) with
// control points (cp1x, cp1y) and (cp2x, cp2y).
func (p *Path) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	if !allFinite(cp1x, cp1y, cp2x, cp2y, x, y) {
		ignored("BezierCurveTo", cp1x, cp1y, cp2x, cp2y, x, y)
		return
	}
	p.ensureSubpath(cp1x, cp1y)
	p.push(Seg(CubicTo, false, cp1x, cp1y, cp2x, cp2y, x, y))
	p.current = Point{x, y}
}

// QuadraticCurveTo adds a quadratic Bézier from the current point to (x, y)
// with control point (cpx, cpy).
func (p *Path) QuadraticCurveTo(cpx, cpy, x, y float64) {
	if !allFinite(cpx, cpy, x, y) {
		ignored("QuadraticCurveTo", cpx, cpy, x, y)
		return
	}
	p.ensureSubpath(cpx, cpy)
	p.push(Seg(QuadTo, false, cpx, cpy, x, y))
	p.current = Point{x, y}
}

// Rect adds a closed subpath tracing the rectangle clockwise (in a y-down
// space) from (x, y). The current point is (x, y) afterwards.
func (p *Path) Rect(x, y, w, h float64) {
	if !allFinite(x, y, w, h) {
		ignored("Rect", x, y, w, h)
		return
	}
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.ClosePath()
	p.current = Point{x, y}
}

// Len returns the number of segments in the path.
func (p *Path) Len() int {
	return len(p.segs)
}

// IsEmpty reports whether the path has no segments.
func (p *Path) IsEmpty() bool {
	return len(p.segs) == 0
}

// CurrentPoint returns the current point, which is (NaN, NaN) until the first
// subpath is started.
func (p *Path) CurrentPoint() Point {
	if !p.open {
		return noPoint
	}
	return p.current
}

// Segments returns a copy of the path's segments.
func (p *Path) Segments() Segments {
	return p.segs.Clone()
}

// Clone returns a deep copy of p.
func (p *Path) Clone() *Path {
	np := *p
	np.segs = p.segs.Clone()
	return &np
}

// String returns the path as compact SVG path data.
func (p *Path) String() string {
	return p.segs.String()
}

// sync recomputes the pen state from the segments, after they were replaced
// or extended wholesale.
func (p *Path) sync() {
	var st penState
	for _, s := range p.segs {
		st = st.advance(s)
	}
	p.current = st.Current
	p.start = st.Start
	p.open = len(p.segs) > 0
}

// AddPath appends the segments of other, mapped through m. A nil or
// non-finite m appends them unchanged.
func (p *Path) AddPath(other *Path, m *Affine) {
	if other == nil || other.IsEmpty() {
		return
	}
	segs := other.segs
	if usable(m) {
		segs = segs.Transform(*m)
	}
	p.segs = append(p.segs, segs...)
	p.sync()
}

// Transform maps the path through m in place. A nil or non-finite m leaves
// the path unchanged.
func (p *Path) Transform(m *Affine) {
	if !usable(m) || p.IsEmpty() {
		return
	}
	p.segs = p.segs.Transform(*m)
	p.sync()
}

// PathDataSegment is the exchange form of a segment used by [Path.PathData]
// and [Path.SetPathData], as in the SVG path data API.
type PathDataSegment struct {
	Type   string
	Values []float64
}

// PathData returns the path's segments in exchange form.
func (p *Path) PathData() []PathDataSegment {
	out := make([]PathDataSegment, len(p.segs))
	for i, s := range p.segs {
		out[i] = PathDataSegment{
			Type:   string(s.Letter()),
			Values: append([]float64(nil), s.Params()...),
		}
	}
	return out
}

// SetPathData replaces the path's segments. It returns an error, and leaves
// the path unchanged, if a segment has an unknown type or the wrong number of
// values.
func (p *Path) SetPathData(data []PathDataSegment) error {
	segs := make(Segments, 0, len(data))
	for i, d := range data {
		if len(d.Type) != 1 {
			return fmt.Errorf("svgpath: segment %d: invalid type %q", i, d.Type)
		}
		kind, rel, ok := kindForLetter(d.Type[0])
		if !ok {
			return fmt.Errorf("svgpath: segment %d: invalid type %q", i, d.Type)
		}
		if len(d.Values) != kind.Arity() {
			return fmt.Errorf("svgpath: segment %d: %s takes %d values, got %d", i, d.Type, kind.Arity(), len(d.Values))
		}
		segs = append(segs, Seg(kind, rel, d.Values...))
	}
	p.segs = segs
	p.sync()
	return nil
}

func (d PathDataSegment) String() string {
	sb := &strings.Builder{}
	sb.WriteString(d.Type)
	for i, v := range d.Values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(SVGOptions{}.format(v))
	}
	return sb.String()
}
