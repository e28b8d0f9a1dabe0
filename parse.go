package svgpath

// ParseSegments parses SVG path data, such as the value of a path element's d
// attribute, into a list of segments.
//
// The segments are returned as written, without resolving relative
// coordinates or shorthands. A moveto followed by more than one coordinate
// pair is split into a moveto and implicit linetos of the same case, and the
// first segment is always an absolute moveto. An R command is split into
// one segment per group of four parameters.
//
// On malformed input, ParseSegments returns no segments and a [*ParseError].
// Empty input (or input consisting only of whitespace) yields no segments and
// no error.
func ParseSegments(d string) (Segments, error) {
	s := &scanner{src: d}
	var out Segments
	s.skipSpaces()
	for !s.done() && s.err == nil {
		out = s.scanSegment(out)
	}
	if s.err == nil && len(out) > 0 {
		if out[0].Kind != MoveTo {
			s.errorf(0, "string should start with `M` or `m`")
		} else {
			out[0].Relative = false
		}
	}
	if s.err != nil {
		Logger().Debug("svgpath: parse failed", "offset", s.err.Offset, "msg", s.err.Msg)
		return nil, s.err
	}
	return out, nil
}

// MustParseSegments is like [ParseSegments] but panics on malformed input.
func MustParseSegments(d string) Segments {
	segs, err := ParseSegments(d)
	if err != nil {
		panic(err)
	}
	return segs
}

// scanSegment scans one command letter and the run of parameter groups that
// follows it, appending the resulting segments to out.
func (s *scanner) scanSegment(out Segments) Segments {
	kind, rel, ok := s.scanCommand()
	if !ok {
		return out
	}
	s.skipSpaces()
	arity := kind.Arity()
	if arity == 0 {
		return append(out, Segment{Kind: kind, Relative: rel})
	}

	var params []float64
	for {
		var comma bool
		for i := range arity {
			var v float64
			if kind == ArcTo && (i == 3 || i == 4) {
				v = s.scanFlag()
			} else {
				v = s.scanParam()
			}
			if s.err != nil {
				return out
			}
			params = append(params, v)
			s.skipSpaces()
			comma = s.skipComma()
		}
		// A comma must be followed by another parameter.
		if comma {
			continue
		}
		if s.done() || !isDigitStart(s.peek()) {
			break
		}
	}

	if kind == MoveTo && len(params) > 2 {
		out = append(out, Seg(MoveTo, rel, params[:2]...))
		params = params[2:]
		kind = LineTo
	}
	for len(params) >= arity {
		out = append(out, Seg(kind, rel, params[:arity]...))
		params = params[arity:]
	}
	return out
}
