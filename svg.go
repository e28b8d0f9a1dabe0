package svgpath

import (
	"io"
	"math"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

func (opts SVGOptions) format(n float64) string {
	var s string
	if opts.MaxPrecision <= 0 {
		s = strconv.FormatFloat(n, 'f', -1, 64)
	} else {
		s = strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
		if strings.IndexByte(s, '.') >= 0 {
			s = strings.TrimRight(s, "0")
			s = strings.TrimSuffix(s, ".")
		}
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// WriteSVG writes segs as compact SVG path data to w.
//
// A command letter is omitted when it repeats the previous one, except for
// movetos, whose repetition would otherwise turn them into linetos. Numbers
// are separated by a space only where needed: never after a command letter
// and never before a negative number. A space is kept between z and a
// following m, which some importers require.
func WriteSVG(w io.Writer, segs Segments, opts SVGOptions) error {
	var buf []byte
	var prev byte
	for _, s := range segs {
		cmd := s.Letter()
		skipped := false
		if cmd != prev || cmd == 'M' || cmd == 'm' {
			if cmd == 'm' && prev == 'z' {
				buf = append(buf, ' ')
			}
			buf = append(buf, cmd)
		} else {
			skipped = true
		}
		for i, v := range s.Params() {
			num := opts.format(v)
			if (i > 0 || skipped) && num[0] != '-' {
				buf = append(buf, ' ')
			}
			buf = append(buf, num...)
		}
		prev = cmd
	}
	_, err := w.Write(buf)
	return err
}

// Round returns segs with every parameter rounded to the given number of
// decimal digits. Rounding errors of relative segments are carried into the
// next segment so that they don't accumulate along the path.
func (segs Segments) Round(digits int) Segments {
	p := math.Pow(10, float64(digits))
	round := func(v float64) float64 {
		return math.Round(v*p) / p
	}
	rotP := math.Pow(10, float64(digits+2))

	out := segs.Clone()
	var delta, startDelta Vec2
	for i := range out {
		s := &out[i]
		n := s.Kind.Arity()
		switch s.Kind {
		case ClosePath:
			delta = startDelta
			continue
		case HorizontalLineTo:
			if s.Relative {
				s.Args[0] += delta.X
			}
			delta.X = s.Args[0] - round(s.Args[0])
			s.Args[0] = round(s.Args[0])
			continue
		case VerticalLineTo:
			if s.Relative {
				s.Args[0] += delta.Y
			}
			delta.Y = s.Args[0] - round(s.Args[0])
			s.Args[0] = round(s.Args[0])
			continue
		}

		if s.Relative {
			s.Args[n-2] += delta.X
			s.Args[n-1] += delta.Y
		}
		delta = Vec2{s.Args[n-2] - round(s.Args[n-2]), s.Args[n-1] - round(s.Args[n-1])}
		if s.Kind == MoveTo {
			startDelta = delta
		}
		for j := range n {
			if s.Kind == ArcTo && j == 2 {
				// Rotation is kept with more precision.
				s.Args[j] = math.Round(s.Args[j]*rotP) / rotP
				continue
			}
			s.Args[j] = round(s.Args[j])
		}
	}
	return out
}
