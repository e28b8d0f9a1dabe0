package svgpath

import (
	"fmt"
	"math"
)

// CornerRadius is the horizontal and vertical radius of a rounded corner.
type CornerRadius struct {
	X, Y float64
}

// Radius returns a circular corner radius.
func Radius(r float64) CornerRadius {
	return CornerRadius{r, r}
}

func (r CornerRadius) String() string {
	return fmt.Sprintf("{x: %g, y: %g}", r.X, r.Y)
}

// RoundRect adds a closed subpath tracing a rectangle with rounded corners,
// then moves to (x, y).
//
// The radii are given like the CSS border-radius shorthand, in the order
// upper-left, upper-right, lower-right, lower-left:
//
//   - no radius: square corners
//   - one radius: all four corners
//   - two radii: upper-left and lower-right, upper-right and lower-left
//   - three radii: upper-left, upper-right and lower-left, lower-right
//   - four radii: each corner
//
// Radii that don't fit along an edge are all scaled down by the same factor.
// A negative width or height mirrors the rectangle about x or y while
// keeping the direction of the outline.
//
// RoundRect returns a [*RangeError] for more than four radii or a negative
// radius.
func (p *Path) RoundRect(x, y, w, h float64, radii ...CornerRadius) error {
	if !allFinite(x, y, w, h) {
		ignored("RoundRect", x, y, w, h)
		return nil
	}
	if len(radii) == 0 {
		radii = []CornerRadius{{}}
	}

	var ul, ur, lr, ll CornerRadius
	switch len(radii) {
	case 4:
		ul, ur, lr, ll = radii[0], radii[1], radii[2], radii[3]
	case 3:
		ul, ur, ll, lr = radii[0], radii[1], radii[1], radii[2]
	case 2:
		ul, lr, ur, ll = radii[0], radii[0], radii[1], radii[1]
	case 1:
		ul, ur, lr, ll = radii[0], radii[0], radii[0], radii[0]
	default:
		return &RangeError{Msg: fmt.Sprintf("roundRect: %d is not a valid size for radii sequence", len(radii))}
	}

	corners := [4]*CornerRadius{&ul, &ur, &lr, &ll}
	for _, c := range corners {
		if !allFinite(c.X, c.Y) {
			ignored("RoundRect", c.X, c.Y)
			return nil
		}
	}
	for _, c := range corners {
		if c.X < 0 || c.Y < 0 {
			return &RangeError{Msg: fmt.Sprintf("roundRect: radius value %v is negative", *c)}
		}
	}

	// Scale all radii by the same factor if the radii of two adjacent
	// corners don't fit along their edge. A NaN factor (zero-sized edge
	// without any radius) never scales.
	factor := math.Min(
		math.Min(math.Abs(w)/(ul.X+ur.X), math.Abs(h)/(ur.Y+lr.Y)),
		math.Min(math.Abs(w)/(lr.X+ll.X), math.Abs(h)/(ul.Y+ll.Y)),
	)
	if factor <= 1 {
		Logger().Debug("svgpath: roundRect radii scaled to fit", "factor", factor)
		for _, c := range corners {
			c.X *= factor
			c.Y *= factor
		}
	}

	corner := func(cx, cy float64, r CornerRadius, start, end float64, ccw bool) {
		// Radii are finite and non-negative, so this can't fail.
		_ = p.Ellipse(cx, cy, r.X, r.Y, 0, start, end, ccw)
	}
	const pi = math.Pi
	switch {
	case w < 0 && h < 0:
		p.MoveTo(x-ul.X, y)
		corner(x+w+ur.X, y-ur.Y, ur, -pi*1.5, -pi, false)
		corner(x+w+lr.X, y+h+lr.Y, lr, -pi, -pi/2, false)
		corner(x-ll.X, y+h+ll.Y, ll, -pi/2, 0, false)
		corner(x-ul.X, y-ul.Y, ul, 0, pi/2, false)
	case w < 0:
		p.MoveTo(x-ul.X, y)
		corner(x+w+ur.X, y+ur.Y, ur, -pi/2, -pi, true)
		corner(x+w+lr.X, y+h-lr.Y, lr, -pi, -pi*1.5, true)
		corner(x-ll.X, y+h-ll.Y, ll, pi/2, 0, true)
		corner(x-ul.X, y+ul.Y, ul, 0, -pi/2, true)
	case h < 0:
		p.MoveTo(x+ul.X, y)
		corner(x+w-ur.X, y-ur.Y, ur, pi/2, 0, true)
		corner(x+w-lr.X, y+h+lr.Y, lr, 0, -pi/2, true)
		corner(x+ll.X, y+h+ll.Y, ll, -pi/2, -pi, true)
		corner(x+ul.X, y-ul.Y, ul, -pi, -pi*1.5, true)
	default:
		p.MoveTo(x+ul.X, y)
		corner(x+w-ur.X, y+ur.Y, ur, -pi/2, 0, false)
		corner(x+w-lr.X, y+h-lr.Y, lr, 0, pi/2, false)
		corner(x+ll.X, y+h-ll.Y, ll, pi/2, pi, false)
		corner(x+ul.X, y+ul.Y, ul, pi, pi*1.5, false)
	}
	p.ClosePath()
	p.MoveTo(x, y)
	return nil
}
