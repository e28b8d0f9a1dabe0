package svgpath

import (
	"sort"
)

// lengthPart is the contribution of one normalized segment to the length of
// a path.
type lengthPart struct {
	// curve is nil for segments that don't draw anything, such as movetos.
	curve Arclener
	// end is the cumulative length at the end of this part.
	end    float64
	length float64
	// at is the pen position after the segment.
	at Point
	// origin is the index of the input segment this part was derived from.
	origin int
}

// LengthTable answers arc length queries about a list of segments. It is a
// snapshot: changes to the segments it was built from are not reflected.
type LengthTable struct {
	segs  Segments
	parts []lengthPart
}

// NewLengthTable builds the length table of segs. The segments may use any
// commands; they are normalized first. The line that closes a subpath
// counts towards the length. Catmull-Rom segments have no length.
func NewLengthTable(segs Segments) *LengthTable {
	norm, origin := normalizeOrigins(segs)
	lt := &LengthTable{
		segs:  segs.Clone(),
		parts: make([]lengthPart, len(norm)),
	}
	var st penState
	var total float64
	for i, s := range norm {
		cur := st.Current
		st = st.advance(s)
		var c Arclener
		switch s.Kind {
		case MoveTo, CatmullRom:
		case LineTo:
			c = Line{cur, s.point(0)}
		case ClosePath:
			c = Line{cur, st.Current}
		case CubicTo:
			c = CubicBez{cur, s.point(0), s.point(2), s.point(4)}
		case QuadTo:
			c = QuadBez{cur, s.point(0), s.point(2)}
		default:
			panic("unreachable")
		}
		part := lengthPart{curve: c, at: st.Current, origin: origin[i]}
		if c != nil {
			part.length = c.Arclen()
		}
		total += part.length
		part.end = total
		lt.parts[i] = part
	}
	return lt
}

// TotalLength returns the summed length of all segments.
func (lt *LengthTable) TotalLength() float64 {
	if len(lt.parts) == 0 {
		return 0
	}
	return lt.parts[len(lt.parts)-1].end
}

// find returns the index of the part containing the given length, which
// must be in [0, TotalLength()]. Parts without length are skipped, unless
// the whole table has no length, in which case the first part is returned.
func (lt *LengthTable) find(length float64) int {
	i := sort.Search(len(lt.parts), func(i int) bool {
		return lt.parts[i].end >= length
	})
	for j := i; j < len(lt.parts); j++ {
		if lt.parts[j].length > 0 {
			return j
		}
	}
	for j := i - 1; j >= 0; j-- {
		if lt.parts[j].length > 0 {
			return j
		}
	}
	return 0
}

func (lt *LengthTable) clamp(length float64) float64 {
	return min(max(length, 0), lt.TotalLength())
}

// PointAtLength returns the point at the given distance along the segments.
// The distance is clamped to the valid range. It returns (NaN, NaN) if there
// are no segments.
func (lt *LengthTable) PointAtLength(length float64) Point {
	if len(lt.parts) == 0 {
		return noPoint
	}
	length = lt.clamp(length)
	part := lt.parts[lt.find(length)]
	if part.curve == nil || part.length == 0 {
		return part.at
	}
	t := SolveForArclen(part.curve, length-(part.end-part.length))
	return part.curve.Eval(t)
}

// SegmentAtLength returns the input segment, and its index, that contains
// the point at the given distance along the segments. Movetos never contain
// a positive length. A closepath owns the length of the line that closes its
// subpath, the same as in browsers, so it is returned for distances along
// that line. It reports false if there are no segments.
func (lt *LengthTable) SegmentAtLength(length float64) (Segment, int, bool) {
	if len(lt.parts) == 0 {
		return Segment{}, -1, false
	}
	part := lt.parts[lt.find(lt.clamp(length))]
	return lt.segs[part.origin], part.origin, true
}

// TotalLength returns the length of the path.
func (p *Path) TotalLength() float64 {
	return NewLengthTable(p.segs).TotalLength()
}

// PointAtLength returns the point at the given distance along the path,
// clamped to the path's length. It returns (NaN, NaN) for an empty path.
func (p *Path) PointAtLength(length float64) Point {
	return NewLengthTable(p.segs).PointAtLength(length)
}

// PathSegmentAtLength returns the path segment that contains the point at
// the given distance along the path, and its index. A closepath is returned
// for distances along its closing line. It reports false for an empty path.
func (p *Path) PathSegmentAtLength(length float64) (Segment, int, bool) {
	return NewLengthTable(p.segs).SegmentAtLength(length)
}
