package svgpath

import (
	"fmt"
	"math"
)

// BoundingBox accumulates the axis-aligned bounds of points and curves.
//
// A new box is empty, with all bounds NaN. The zero value is not empty but
// the degenerate box at the origin; use [NewBoundingBox].
type BoundingBox struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewBoundingBox returns an empty bounding box.
func NewBoundingBox() BoundingBox {
	nan := math.NaN()
	return BoundingBox{nan, nan, nan, nan}
}

// IsEmpty reports whether nothing has been added to the box on at least one
// axis.
func (b *BoundingBox) IsEmpty() bool {
	return math.IsNaN(b.MinX) || math.IsNaN(b.MinY)
}

// AddX extends the horizontal bounds to include x.
func (b *BoundingBox) AddX(x float64) {
	if math.IsNaN(b.MinX) || math.IsNaN(b.MaxX) {
		b.MinX, b.MaxX = x, x
	}
	b.MinX = min(b.MinX, x)
	b.MaxX = max(b.MaxX, x)
}

// AddY extends the vertical bounds to include y.
func (b *BoundingBox) AddY(y float64) {
	if math.IsNaN(b.MinY) || math.IsNaN(b.MaxY) {
		b.MinY, b.MaxY = y, y
	}
	b.MinY = min(b.MinY, y)
	b.MaxY = max(b.MaxY, y)
}

// AddPoint extends the box to include pt.
func (b *BoundingBox) AddPoint(pt Point) {
	b.AddX(pt.X)
	b.AddY(pt.Y)
}

// AddCubic extends the box to include the whole curve. Besides the end
// points, this includes the points where the curve's derivative is zero on
// either axis.
func (b *BoundingBox) AddCubic(c CubicBez) {
	b.AddPoint(c.P0)
	b.AddPoint(c.P3)
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		b.AddPoint(c.Eval(t))
	}
}

// AddQuad extends the box to include the whole curve.
func (b *BoundingBox) AddQuad(q QuadBez) {
	b.AddCubic(q.Raise())
}

// BBox returns the bounds in rectangle form.
func (b *BoundingBox) BBox() BBox {
	return BBox{
		Left:   math.Min(b.MinX, b.MaxX),
		Top:    math.Min(b.MinY, b.MaxY),
		Right:  math.Max(b.MinX, b.MaxX),
		Bottom: math.Max(b.MinY, b.MaxY),
		Width:  math.Abs(b.MaxX - b.MinX),
		Height: math.Abs(b.MaxY - b.MinY),
	}
}

// BBox is an axis-aligned rectangle.
type BBox struct {
	Left, Top     float64
	Right, Bottom float64
	Width, Height float64
}

func (r BBox) String() string {
	return fmt.Sprintf("BBox{left: %g, top: %g, right: %g, bottom: %g, width: %g, height: %g}",
		r.Left, r.Top, r.Right, r.Bottom, r.Width, r.Height)
}

// BoundingBox returns the tight bounds of the segments' geometry. Control
// points only count where the curves actually reach them.
func (segs Segments) BoundingBox() BoundingBox {
	bb := NewBoundingBox()
	var st penState
	for _, s := range segs.Normalize() {
		cur := st.Current
		switch s.Kind {
		case MoveTo, LineTo:
			bb.AddPoint(s.point(0))
		case CubicTo:
			bb.AddCubic(CubicBez{cur, s.point(0), s.point(2), s.point(4)})
		case QuadTo:
			bb.AddQuad(QuadBez{cur, s.point(0), s.point(2)})
		case CatmullRom:
			bb.AddPoint(s.point(0))
			bb.AddPoint(s.point(2))
		case ClosePath:
		default:
			panic(fmt.Sprintf("unhandled case %v", s.Kind))
		}
		st = st.advance(s)
	}
	return bb
}

// BBox returns the tight bounds of the segments' geometry. All fields are
// NaN for a list without segments.
func (segs Segments) BBox() BBox {
	bb := segs.BoundingBox()
	return bb.BBox()
}

// BBox returns the tight bounds of the path. All fields are NaN for an empty
// path.
func (p *Path) BBox() BBox {
	return p.segs.BBox()
}
