package svgpath

import (
	"fmt"
	"strings"
)

// Kind identifies the drawing command of a [Segment].
type Kind uint8

const (
	MoveTo Kind = iota
	LineTo
	HorizontalLineTo
	VerticalLineTo
	CubicTo
	QuadTo
	SmoothCubicTo
	SmoothQuadTo
	ArcTo
	ClosePath
	// CatmullRom is the non-standard R command. It is parsed and
	// serialized but never interpreted.
	CatmullRom

	numKinds
)

var kindLetters = [numKinds]byte{
	MoveTo:           'M',
	LineTo:           'L',
	HorizontalLineTo: 'H',
	VerticalLineTo:   'V',
	CubicTo:          'C',
	QuadTo:           'Q',
	SmoothCubicTo:    'S',
	SmoothQuadTo:     'T',
	ArcTo:            'A',
	ClosePath:        'Z',
	CatmullRom:       'R',
}

var kindArity = [numKinds]int{
	MoveTo:           2,
	LineTo:           2,
	HorizontalLineTo: 1,
	VerticalLineTo:   1,
	CubicTo:          6,
	QuadTo:           4,
	SmoothCubicTo:    4,
	SmoothQuadTo:     2,
	ArcTo:            7,
	ClosePath:        0,
	CatmullRom:       4,
}

// kindSlots lists, per kind, the Args offsets that hold an (x, y) pair.
// The radii of an arc are not a point and are handled separately.
var kindSlots = [numKinds][]int{
	MoveTo:        {0},
	LineTo:        {0},
	CubicTo:       {0, 2, 4},
	QuadTo:        {0, 2},
	SmoothCubicTo: {0, 2},
	SmoothQuadTo:  {0},
	ArcTo:         {5},
	CatmullRom:    {0, 2},
}

// Arity returns the number of parameters the command takes.
func (k Kind) Arity() int {
	return kindArity[k]
}

// Letter returns the upper case command letter.
func (k Kind) Letter() byte {
	return kindLetters[k]
}

// Slots returns the Args offsets of the command's coordinate pairs.
func (k Kind) Slots() []int {
	return kindSlots[k]
}

func (k Kind) String() string {
	if k >= numKinds {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return string(kindLetters[k])
}

// kindForLetter maps a command letter of either case to its kind.
func kindForLetter(c byte) (k Kind, relative bool, ok bool) {
	relative = c >= 'a' && c <= 'z'
	upper := c &^ 0x20
	for i := range numKinds {
		if kindLetters[i] == upper {
			return i, relative, true
		}
	}
	return 0, false, false
}

// Segment is a single path command together with its parameters.
//
// Only the first Kind.Arity() entries of Args are meaningful. For ArcTo, the
// parameters are rx, ry, x-axis-rotation (degrees), large-arc-flag,
// sweep-flag, x and y.
type Segment struct {
	Kind     Kind
	Relative bool
	Args     [7]float64
}

// Seg returns a segment of the given kind. It panics if the number of
// parameters doesn't match the kind's arity.
func Seg(kind Kind, relative bool, params ...float64) Segment {
	if len(params) != kind.Arity() {
		panic(fmt.Sprintf("svgpath: %v takes %d parameters, got %d", kind, kind.Arity(), len(params)))
	}
	s := Segment{Kind: kind, Relative: relative}
	copy(s.Args[:], params)
	return s
}

// Letter returns the command letter, lower case for relative segments.
func (s Segment) Letter() byte {
	l := s.Kind.Letter()
	if s.Relative {
		l |= 0x20
	}
	return l
}

// Params returns the meaningful parameters of the segment.
func (s Segment) Params() []float64 {
	return s.Args[:s.Kind.Arity()]
}

// point returns the coordinate pair at offset i of Args.
func (s Segment) point(i int) Point {
	return Point{s.Args[i], s.Args[i+1]}
}

func (s *Segment) setPoint(i int, pt Point) {
	s.Args[i] = pt.X
	s.Args[i+1] = pt.Y
}

func (s Segment) String() string {
	return Segments{s}.String()
}

// Segments is an ordered list of path segments.
type Segments []Segment

func (segs Segments) String() string {
	sb := &strings.Builder{}
	WriteSVG(sb, segs, SVGOptions{})
	return sb.String()
}

// Clone returns a copy of segs.
func (segs Segments) Clone() Segments {
	if segs == nil {
		return nil
	}
	out := make(Segments, len(segs))
	copy(out, segs)
	return out
}
