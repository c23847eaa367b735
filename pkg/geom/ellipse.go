package geom

import (
	"math"

	"github.com/omnihola/ashby-plot/pkg/errors"
)

// RangeSample is a per-axis (low, high) measurement range.
// Invariant: XLow ≤ XHigh and YLow ≤ YHigh.
type RangeSample struct {
	XLow  float64
	XHigh float64
	YLow  float64
	YHigh float64
}

// Validate checks the low ≤ high invariants.
func (r RangeSample) Validate() error {
	if r.XLow > r.XHigh {
		return errors.New(errors.ErrCodeInvalidInput, "x range inverted: low %v > high %v", r.XLow, r.XHigh)
	}
	if r.YLow > r.YHigh {
		return errors.New(errors.ErrCodeInvalidInput, "y range inverted: low %v > high %v", r.YLow, r.YHigh)
	}
	return nil
}

// Ellipse approximates a range sample as a parametric ellipse: the center is
// the range midpoint and the radii are the half-ranges.
type Ellipse struct {
	Center  Point
	RadiusX float64
	RadiusY float64
}

// FromRange builds the ellipse describing a range sample.
// A single-valued sample (low == high on both axes) yields zero radii,
// which Rasterize and the downstream hull code tolerate.
func FromRange(r RangeSample) Ellipse {
	return Ellipse{
		Center:  Point{X: (r.XLow + r.XHigh) / 2, Y: (r.YLow + r.YHigh) / 2},
		RadiusX: (r.XHigh - r.XLow) / 2,
		RadiusY: (r.YHigh - r.YLow) / 2,
	}
}

// Rasterize samples n points along the ellipse boundary, θ ∈ [0, 2π).
// The result winds counter-clockwise and wraps around (the first point
// closes the loop). Zero radii produce n coincident points. n < 1 returns
// nil.
func (e Ellipse) Rasterize(n int) PointSet {
	if n < 1 {
		return nil
	}
	out := make(PointSet, n)
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		theta := float64(i) * step
		out[i] = Point{
			X: e.Center.X + e.RadiusX*math.Cos(theta),
			Y: e.Center.Y + e.RadiusY*math.Sin(theta),
		}
	}
	return out
}
