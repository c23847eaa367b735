package geom

import (
	"math"

	"github.com/omnihola/ashby-plot/pkg/errors"
)

// Scale selects how an axis maps data values to display-equivalent values.
type Scale int

// Axis scales. Ashby charts conventionally use Logarithmic on both axes,
// which restricts values to strictly positive.
const (
	Linear Scale = iota
	Logarithmic
)

// String returns the scale name as used in CLI flags and config files.
func (s Scale) String() string {
	switch s {
	case Logarithmic:
		return "log"
	default:
		return "linear"
	}
}

// ParseScale parses an axis scale name ("linear" or "log").
func ParseScale(s string) (Scale, error) {
	switch s {
	case "linear":
		return Linear, nil
	case "log", "logarithmic":
		return Logarithmic, nil
	default:
		return Linear, errors.New(errors.ErrCodeInvalidAxis, "unknown axis scale %q (must be 'linear' or 'log')", s)
	}
}

// toDisplay maps a single coordinate into display space.
// Logarithmic axes apply the natural log and reject values ≤ 0: physical
// quantities such as density or modulus are strictly positive, so a
// non-positive input is a caller bug rather than a recoverable case.
func (s Scale) toDisplay(v float64) (float64, error) {
	if s != Logarithmic {
		return v, nil
	}
	if v <= 0 {
		return 0, errors.New(errors.ErrCodeNonPositiveValue, "value %v is not positive on a logarithmic axis", v)
	}
	return math.Log(v), nil
}

// toData maps a single display coordinate back to data space.
func (s Scale) toData(v float64) float64 {
	if s != Logarithmic {
		return v
	}
	return math.Exp(v)
}

// ScalePair bundles the independent x and y axis scales of a plot.
// It is selected once per plot and threaded through every geometry call,
// so linear/log branching lives in exactly one place.
type ScalePair struct {
	X Scale
	Y Scale
}

// Common scale pairs.
var (
	LinearAxes = ScalePair{X: Linear, Y: Linear}
	LogLogAxes = ScalePair{X: Logarithmic, Y: Logarithmic}
)

// IsLogLog reports whether both axes are logarithmic.
func (sp ScalePair) IsLogLog() bool {
	return sp.X == Logarithmic && sp.Y == Logarithmic
}

// ToDisplay maps a data-space point into display space.
func (sp ScalePair) ToDisplay(p Point) (Point, error) {
	x, err := sp.X.toDisplay(p.X)
	if err != nil {
		return Point{}, err
	}
	y, err := sp.Y.toDisplay(p.Y)
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

// ToData maps a display-space point back into data space.
func (sp ScalePair) ToData(p Point) Point {
	return Point{X: sp.X.toData(p.X), Y: sp.Y.toData(p.Y)}
}

// ToDisplaySet maps every point of ps into display space.
func (sp ScalePair) ToDisplaySet(ps PointSet) (PointSet, error) {
	out := make(PointSet, len(ps))
	for i, p := range ps {
		d, err := sp.ToDisplay(p)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

// ToDataSet maps every point of ps back into data space.
func (sp ScalePair) ToDataSet(ps PointSet) PointSet {
	out := make(PointSet, len(ps))
	for i, p := range ps {
		out[i] = sp.ToData(p)
	}
	return out
}
