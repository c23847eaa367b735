package chart

import (
	"math"

	"github.com/omnihola/ashby-plot/pkg/errors"
	"github.com/omnihola/ashby-plot/pkg/geom"
)

// guidelineSamples is how many points a guideline is evaluated at. The
// label angle is taken from the first and fourth sample so it follows the
// curve near its left end rather than averaging over the whole span.
const guidelineSamples = 5

// Guideline is a material selection line overlaid on the chart, e.g. the
// stiffness-to-weight line E^(1/2)/ρ. On log-log axes it is the power law
// y = Intercept·x^Power, which renders as a straight line; on linear axes
// it is the affine line y = Intercept + Power·x.
type Guideline struct {
	Power     float64
	Intercept float64
	XMin      float64
	XMax      float64
	Label     string

	// Anchor optionally pins the label to a data-space point, e.g. to lift
	// it clear of a crowded envelope. Nil anchors at the first sample.
	Anchor *geom.Point
}

// Validate checks the guideline against the chart's axis scales.
func (g Guideline) Validate(axes geom.ScalePair) error {
	if g.XMin >= g.XMax {
		return errors.New(errors.ErrCodeInvalidInput,
			"guideline span inverted: x min %g >= x max %g", g.XMin, g.XMax)
	}
	if axes.X == geom.Logarithmic && g.XMin <= 0 {
		return errors.New(errors.ErrCodeNonPositiveValue,
			"guideline x min %g must be positive on a log axis", g.XMin)
	}
	if axes.IsLogLog() && g.Intercept <= 0 {
		return errors.New(errors.ErrCodeNonPositiveValue,
			"guideline intercept %g must be positive on log-log axes", g.Intercept)
	}
	if g.Anchor != nil {
		if axes.X == geom.Logarithmic && g.Anchor.X <= 0 {
			return errors.New(errors.ErrCodeNonPositiveValue,
				"guideline label anchor x %g must be positive on a log axis", g.Anchor.X)
		}
		if axes.Y == geom.Logarithmic && g.Anchor.Y <= 0 {
			return errors.New(errors.ErrCodeNonPositiveValue,
				"guideline label anchor y %g must be positive on a log axis", g.Anchor.Y)
		}
	}
	return nil
}

// Sample evaluates the guideline at evenly spaced x positions. Spacing is
// even in display space, so log axes sample log-spaced x values.
func (g Guideline) Sample(axes geom.ScalePair) (geom.PointSet, error) {
	if err := g.Validate(axes); err != nil {
		return nil, err
	}

	xs := make([]float64, guidelineSamples)
	if axes.X == geom.Logarithmic {
		lo, hi := math.Log(g.XMin), math.Log(g.XMax)
		for i := range xs {
			xs[i] = math.Exp(lo + (hi-lo)*float64(i)/float64(guidelineSamples-1))
		}
	} else {
		for i := range xs {
			xs[i] = g.XMin + (g.XMax-g.XMin)*float64(i)/float64(guidelineSamples-1)
		}
	}

	out := make(geom.PointSet, guidelineSamples)
	for i, x := range xs {
		out[i] = geom.Point{X: x, Y: g.y(x, axes)}
	}
	return out, nil
}

func (g Guideline) y(x float64, axes geom.ScalePair) float64 {
	if axes.IsLogLog() {
		return g.Intercept * math.Pow(x, g.Power)
	}
	return g.Intercept + g.Power*x
}

// Annotation places the guideline's label at its Anchor (or the first
// sample when unset), rotated to follow the rendered line. aspect is the
// figure's display aspect ratio as computed by the chart builder.
func (g Guideline) Annotation(axes geom.ScalePair, aspect float64) (geom.Annotation, error) {
	pts, err := g.Sample(axes)
	if err != nil {
		return geom.Annotation{}, err
	}
	angle, err := geom.Angle(pts[0], pts[3], axes, aspect)
	if err != nil {
		return geom.Annotation{}, err
	}
	anchor := pts[0]
	if g.Anchor != nil {
		anchor = *g.Anchor
	}
	return geom.Place(g.Label, anchor, angle), nil
}
