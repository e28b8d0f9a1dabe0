package svgpath

// penState is the pen position threaded through a rewrite.
type penState struct {
	// Current is the absolute current point before the visited segment.
	Current Point
	// Start is the absolute start of the current subpath.
	Start Point
	// Prev is the previous output segment. It is valid only if HasPrev is
	// set.
	Prev    Segment
	HasPrev bool
}

// advance returns the pen state after drawing s.
func (st penState) advance(s Segment) penState {
	var base Point
	if s.Relative {
		base = st.Current
	}
	switch s.Kind {
	case MoveTo:
		st.Current = Point{s.Args[0] + base.X, s.Args[1] + base.Y}
		st.Start = st.Current
	case HorizontalLineTo:
		st.Current.X = s.Args[0] + base.X
	case VerticalLineTo:
		st.Current.Y = s.Args[0] + base.Y
	case ClosePath:
		st.Current = st.Start
	default:
		n := s.Kind.Arity()
		st.Current = Point{s.Args[n-2] + base.X, s.Args[n-1] + base.Y}
	}
	return st
}

// rewriteFunc visits one segment. It may modify the segment in place, or
// return a list of segments that replace it (possibly none) together with
// true.
type rewriteFunc func(st penState, s *Segment) (Segments, bool)

// rewrite folds fn over a copy of segs and returns the rewritten list. The
// pen state advances along the visited segments as modified in place by fn,
// so replacements must end where the segment they replace ends.
//
// If origin is not nil, it maps every input segment to an index in some
// earlier list, and rewrite returns the same mapping for its output.
func rewrite(segs Segments, origin []int, fn rewriteFunc) (Segments, []int) {
	work := segs.Clone()
	var replacements map[int]Segments
	var st penState
	for i := range work {
		repl, ok := fn(st, &work[i])
		next := st.advance(work[i])
		switch {
		case !ok:
			next.Prev, next.HasPrev = work[i], true
		case len(repl) > 0:
			next.Prev, next.HasPrev = repl[len(repl)-1], true
		default:
			next.Prev, next.HasPrev = st.Prev, st.HasPrev
		}
		if ok {
			if replacements == nil {
				replacements = make(map[int]Segments)
			}
			replacements[i] = repl
		}
		st = next
	}
	if replacements == nil {
		return work, origin
	}

	out := make(Segments, 0, len(work)+len(replacements))
	var outOrigin []int
	if origin != nil {
		outOrigin = make([]int, 0, cap(out))
	}
	for i, s := range work {
		n := 1
		if repl, ok := replacements[i]; ok {
			out = append(out, repl...)
			n = len(repl)
		} else {
			out = append(out, s)
		}
		if origin != nil {
			for range n {
				outOrigin = append(outOrigin, origin[i])
			}
		}
	}
	return out, outOrigin
}

func absolute(st penState, s *Segment) (Segments, bool) {
	if !s.Relative {
		return nil, false
	}
	s.Relative = false
	cur := st.Current
	switch s.Kind {
	case VerticalLineTo:
		s.Args[0] += cur.Y
	case ArcTo:
		s.Args[5] += cur.X
		s.Args[6] += cur.Y
	default:
		for i := range s.Kind.Arity() {
			if i%2 == 0 {
				s.Args[i] += cur.X
			} else {
				s.Args[i] += cur.Y
			}
		}
	}
	return nil, false
}

// Absolute returns segs with all relative segments converted to absolute
// ones. A relative segment after a closepath is relative to the start of the
// closed subpath.
func (segs Segments) Absolute() Segments {
	out, _ := rewrite(segs, nil, absolute)
	return out
}

func expandShorthand(st penState, s *Segment) (Segments, bool) {
	if !st.HasPrev || (s.Kind != SmoothCubicTo && s.Kind != SmoothQuadTo) {
		return nil, false
	}
	cur := st.Current
	prev := st.Prev

	// Relative segments are expanded in coordinates relative to the current
	// point.
	origin := cur
	if s.Relative {
		origin = Point{}
	}
	family := CubicTo
	if s.Kind == SmoothQuadTo {
		family = QuadTo
	}
	// Offset of the last control point and of the end point in prev.
	ci, ei := 2, 4
	if family == QuadTo {
		ci, ei = 0, 2
	}
	// ctrl is the previous segment's last control point. Without a matching
	// previous curve it coincides with the current point.
	ctrl := origin
	if prev.Kind == family {
		switch {
		case prev.Relative:
			ctrl = origin.Translate(prev.point(ci).Sub(prev.point(ei)))
		case s.Relative:
			ctrl = origin.Translate(prev.point(ci).Sub(cur))
		default:
			ctrl = prev.point(ci)
		}
	}
	reflected := origin.Reflect(ctrl)

	args := s.Args
	n := s.Kind.Arity()
	*s = Segment{Kind: family, Relative: s.Relative}
	s.setPoint(0, reflected)
	copy(s.Args[2:], args[:n])
	return nil, false
}

// ExpandShorthand returns segs with smooth curves (S and T) replaced by the
// full curves (C and Q) they stand for. The implied control point is the
// reflection of the previous curve's last control point about the current
// point, or the current point itself if the previous segment isn't a curve of
// the same family.
func (segs Segments) ExpandShorthand() Segments {
	out, _ := rewrite(segs, nil, expandShorthand)
	return out
}

func expandArcs(st penState, s *Segment) (Segments, bool) {
	if s.Kind != ArcTo {
		return nil, false
	}
	end := s.point(5)
	if s.Relative {
		end = st.Current.Translate(Vec2(end))
	}
	arc, ok := EndpointArc(st.Current, end, Vec2{s.Args[0], s.Args[1]}, radians(s.Args[2]), s.Args[3] != 0, s.Args[4] != 0)
	if !ok {
		Logger().Debug("svgpath: degenerate arc drawn as line", "from", st.Current, "to", end)
		return Segments{Seg(LineTo, s.Relative, s.Args[5], s.Args[6])}, true
	}
	var out Segments
	for c := range arc.Cubics() {
		out = append(out, Seg(CubicTo, false, c.P1.X, c.P1.Y, c.P2.X, c.P2.Y, c.P3.X, c.P3.Y))
	}
	return out, true
}

// ExpandArcs returns segs with every elliptical arc replaced by up to four
// absolute cubic Béziers per arc, each spanning at most a quarter turn.
// Arcs with coincident endpoints or a zero radius become lines.
func (segs Segments) ExpandArcs() Segments {
	out, _ := rewrite(segs, nil, expandArcs)
	return out
}

// lineize rewrites absolute horizontal and vertical lines as plain lines.
func lineize(st penState, s *Segment) (Segments, bool) {
	switch s.Kind {
	case HorizontalLineTo:
		*s = Seg(LineTo, false, s.Args[0], st.Current.Y)
	case VerticalLineTo:
		*s = Seg(LineTo, false, st.Current.X, s.Args[0])
	}
	return nil, false
}

// Normalize returns segs converted to absolute moveto, lineto, cubic and
// quadratic Bézier and closepath segments only. R segments are passed
// through as they are.
func (segs Segments) Normalize() Segments {
	out, _ := normalizeOrigins(segs)
	return out
}

// normalizeOrigins is Normalize that also returns, for each output segment,
// the index of the input segment it was derived from.
func normalizeOrigins(segs Segments) (Segments, []int) {
	origin := make([]int, len(segs))
	for i := range origin {
		origin[i] = i
	}
	out, origin := rewrite(segs, origin, absolute)
	out, origin = rewrite(out, origin, expandShorthand)
	out, origin = rewrite(out, origin, expandArcs)
	out, origin = rewrite(out, origin, lineize)
	return out, origin
}

// Transform returns segs mapped through aff. The result is absolute, and
// horizontal and vertical lines become plain lines since they generally
// don't stay axis-aligned.
func (segs Segments) Transform(aff Affine) Segments {
	out, _ := rewrite(segs.Absolute(), nil, lineize)
	for i := range out {
		transformSegment(&out[i], aff)
	}
	return out
}

func transformSegment(s *Segment, aff Affine) {
	for _, off := range s.Kind.Slots() {
		s.setPoint(off, s.point(off).Transform(aff))
	}
	if s.Kind == ArcTo {
		transformArc(s, aff)
	}
}
