package svgpath

import (
	"math"
)

// MaxExtrema is the maximum number of extrema that can be reported by
// [Extremer].
//
// This is 4 to support cubic Béziers.
const MaxExtrema = 4

// Extremer describes parametrized curves that report their extrema.
type Extremer interface {
	// Extrema computes the parameter values, in increasing order, at which
	// the x or y derivative of the curve is zero.
	//
	// Only extrema within the open interval (0, 1) are reported.
	Extrema() ([MaxExtrema]float64, int)
}

// ParametricCurve describes a curve parametrized by t ∈ [0, 1].
type ParametricCurve interface {
	Eval(t float64) Point
	// Deriv returns the first derivative of the curve at t.
	Deriv(t float64) Vec2
	Start() Point
	End() Point
}

// Arclener describes a parametrized curve that can have its arc length
// measured, both in full and up to a parameter value.
type Arclener interface {
	ParametricCurve
	// Arclen returns the length of the curve.
	Arclen() float64
	// ArclenTo returns the length of the curve between parameters 0 and t.
	ArclenTo(t float64) float64
}

var (
	_ Arclener = Line{}
	_ Arclener = QuadBez{}
	_ Arclener = CubicBez{}
	_ Extremer = QuadBez{}
	_ Extremer = CubicBez{}
)

// SolveQuadratic finds real roots of a quadratic equation.
//
// Returns values of x for which c0 + c1 x + c2 x² = 0.0
//
// If the equation is nearly linear, the root of the linear part is returned;
// the other root might be out of representable range. In the degenerate case
// where all coefficients are zero a single 0.0 is returned.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) || math.IsNaN(sc0) || math.IsNaN(sc1) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if isFinite(root) {
			return [2]float64{root}, 1
		} else if c0 == 0.0 && c1 == 0.0 {
			return [2]float64{0}, 1
		} else {
			return [2]float64{}, 0
		}
	}
	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// sc1 * sc1 overflowed. Find one root using sc1 x + x² = 0, the
		// other as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0.0 {
			return [2]float64{}, 0
		} else if arg == 0.0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if isFinite(root2) {
		if root2 > root1 {
			return [2]float64{root1, root2}, 2
		} else {
			return [2]float64{root2, root1}, 2
		}
	} else {
		return [2]float64{root1}, 1
	}
}

const (
	// maxNewtonIterations bounds the inverse arc length search.
	maxNewtonIterations = 32
	// lengthTolerance is the accepted error of the inverse arc length
	// search, relative to the curve's length.
	lengthTolerance = 1e-9
)

// SolveForArclen returns the parameter t at which the arc length of c,
// measured from its start, equals arclen.
//
// The search starts from a linear guess and uses Newton's method on the
// speed of the curve, bracketed to [0, 1]. Any step that leaves the bracket
// or fails to make progress is replaced by bisection.
func SolveForArclen(c Arclener, arclen float64) float64 {
	if arclen <= 0 {
		return 0
	}
	total := c.Arclen()
	if arclen >= total {
		return 1
	}
	if l, ok := c.(Line); ok {
		return arclen / l.Length()
	}

	tol := lengthTolerance * total
	lo, hi := 0.0, 1.0
	t := arclen / total
	for range maxNewtonIterations {
		f := c.ArclenTo(t) - arclen
		if math.Abs(f) <= tol {
			return t
		}
		if f > 0 {
			hi = t
		} else {
			lo = t
		}
		speed := c.Deriv(t).Hypot()
		next := t - f/speed
		if speed == 0 || !(next > lo && next < hi) {
			next = 0.5 * (lo + hi)
		}
		t = next
	}
	return t
}

// gaussLegendre24Half holds the positive half of the 24-point
// Gauss–Legendre quadrature rule as (weight, abscissa) pairs, from
// <https://pomax.github.io/bezierinfo/legendre-gauss.html>.
var gaussLegendre24Half = [...][2]float64{
	{0.1279381953467522, 0.0640568928626056},
	{0.1258374563468283, 0.1911188674736163},
	{0.1216704729278034, 0.3150426796961634},
	{0.1155056680537256, 0.4337935076260451},
	{0.1074442701159656, 0.5454214713888396},
	{0.0976186521041139, 0.6480936519369755},
	{0.0861901615319533, 0.7401241915785544},
	{0.0733464814110803, 0.8200019859739029},
	{0.0592985849154368, 0.8864155270044011},
	{0.0442774388174198, 0.9382745520027328},
	{0.0285313886289337, 0.9747285559713095},
	{0.0123412297999872, 0.9951872199970213},
}

// integrateSpeed integrates |deriv(t)| over [0, 1] with the 24-point
// Gauss–Legendre rule.
func integrateSpeed(deriv func(t float64) Vec2) float64 {
	var sum float64
	for _, coeff := range gaussLegendre24Half {
		wi, xi := coeff[0], coeff[1]
		sum += wi * (deriv(0.5+0.5*xi).Hypot() + deriv(0.5-0.5*xi).Hypot())
	}
	return 0.5 * sum
}
