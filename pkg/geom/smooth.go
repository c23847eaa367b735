package geom

import (
	"github.com/omnihola/ashby-plot/pkg/errors"
)

// Method selects the interpolation family used to smooth a hull boundary.
type Method string

// Interpolation methods. Linear is always valid; quadratic and cubic fall
// back to linear when the hull has too few distinct vertices.
const (
	MethodLinear    Method = "linear"
	MethodQuadratic Method = "quadratic"
	MethodCubic     Method = "cubic"
)

// ParseMethod parses an interpolation method name.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodLinear, MethodQuadratic, MethodCubic:
		return Method(s), nil
	default:
		return "", errors.New(errors.ErrCodeInvalidMethod, "unknown interpolation method %q (must be 'linear', 'quadratic', or 'cubic')", s)
	}
}

// minVertices returns the minimum distinct vertex count the method needs.
func (m Method) minVertices() int {
	switch m {
	case MethodCubic:
		return 4
	case MethodQuadratic:
		return 3
	default:
		return 2
	}
}

// Smooth treats the hull vertices as a closed parametric curve and resamples
// it into exactly n points. The loop is closed by appending the first vertex
// before interpolating, the output's first and last points are identical,
// and winding order is preserved.
//
// When the hull has fewer distinct vertices than the requested method needs,
// Smooth falls back to linear resampling instead of failing the plot. An
// empty hull is the one unrecoverable case and returns INSUFFICIENT_POINTS.
func Smooth(hull PointSet, n int, method Method) (PointSet, error) {
	if err := errors.ValidateInterpolationCount(n); err != nil {
		return nil, err
	}
	if len(hull) == 0 {
		return nil, errors.New(errors.ErrCodeInsufficientPoints, "cannot smooth an empty hull")
	}

	if len(distinct(hull)) < method.minVertices() {
		method = MethodLinear
	}

	// Close the loop. Vertices are parameterized by index: t ∈ [0, m].
	closed := make(PointSet, len(hull)+1)
	copy(closed, hull)
	closed[len(hull)] = hull[0]

	xs := closed.XValues()
	ys := closed.YValues()

	var ix, iy interpolator
	switch method {
	case MethodCubic:
		ix, iy = newCubicSpline(xs), newCubicSpline(ys)
	case MethodQuadratic:
		ix, iy = newQuadraticSpline(xs), newQuadraticSpline(ys)
	default:
		ix, iy = linearInterp(xs), linearInterp(ys)
	}

	out := make(PointSet, n)
	span := float64(len(closed) - 1)
	for k := 0; k < n; k++ {
		t := span * float64(k) / float64(n-1)
		out[k] = Point{X: ix.at(t), Y: iy.at(t)}
	}
	out[n-1] = out[0] // exact closure, no float drift
	return out, nil
}

// interpolator evaluates a 1-D curve sampled at integer parameters 0..len-1.
type interpolator interface {
	at(t float64) float64
}

// segment clamps t into [0, len(y)-1) and splits it into a segment index
// and a local offset s ∈ [0, 1].
func segment(t float64, n int) (int, float64) {
	if t <= 0 {
		return 0, 0
	}
	if t >= float64(n-1) {
		return n - 2, 1
	}
	i := int(t)
	return i, t - float64(i)
}

// linearInterp resamples piecewise-linearly between consecutive samples.
type linearInterp []float64

func (y linearInterp) at(t float64) float64 {
	i, s := segment(t, len(y))
	return y[i] + s*(y[i+1]-y[i])
}

// quadraticSpline is a C¹ piecewise-quadratic interpolant: each segment
// matches both endpoints and continues the previous segment's slope.
type quadraticSpline struct {
	y      []float64
	slopes []float64
}

func newQuadraticSpline(y []float64) *quadraticSpline {
	slopes := make([]float64, len(y))
	if len(y) > 1 {
		slopes[0] = y[1] - y[0]
	}
	for i := 1; i < len(y); i++ {
		slopes[i] = 2*(y[i]-y[i-1]) - slopes[i-1]
	}
	return &quadraticSpline{y: y, slopes: slopes}
}

func (q *quadraticSpline) at(t float64) float64 {
	i, s := segment(t, len(q.y))
	return q.y[i] + q.slopes[i]*s + (q.y[i+1]-q.y[i]-q.slopes[i])*s*s
}

// cubicSpline is a natural cubic spline: second derivatives vanish at the
// ends and the tridiagonal system is solved once up front.
type cubicSpline struct {
	y  []float64
	m2 []float64 // second derivatives at the knots
}

func newCubicSpline(y []float64) *cubicSpline {
	n := len(y)
	m2 := make([]float64, n)
	if n < 3 {
		return &cubicSpline{y: y, m2: m2}
	}

	// Thomas algorithm for m2[i-1] + 4·m2[i] + m2[i+1] = 6·Δ²y[i]
	// with natural boundary conditions m2[0] = m2[n-1] = 0.
	c := make([]float64, n)
	d := make([]float64, n)
	for i := 1; i < n-1; i++ {
		rhs := 6 * (y[i-1] - 2*y[i] + y[i+1])
		denom := 4 - c[i-1]
		c[i] = 1 / denom
		d[i] = (rhs - d[i-1]) / denom
	}
	for i := n - 2; i >= 1; i-- {
		m2[i] = d[i] - c[i]*m2[i+1]
	}
	return &cubicSpline{y: y, m2: m2}
}

func (cs *cubicSpline) at(t float64) float64 {
	i, s := segment(t, len(cs.y))
	u := 1 - s
	return cs.m2[i]*u*u*u/6 + cs.m2[i+1]*s*s*s/6 +
		(cs.y[i]-cs.m2[i]/6)*u + (cs.y[i+1]-cs.m2[i+1]/6)*s
}
