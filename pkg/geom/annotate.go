package geom

import (
	"math"

	"github.com/omnihola/ashby-plot/pkg/errors"
)

// Annotation is a rotation-aligned label directive for the rendering layer:
// pure data, no drawing side effects.
type Annotation struct {
	Text         string
	Anchor       Point
	AngleDegrees float64
}

// Angle computes the rotation, in degrees, that makes a label visually
// follow the line from p1 to p2 as rendered.
//
// Both points are transformed into display space first, and dy is scaled by
// the figure's aspect ratio (rendered x-extent over y-extent per display
// unit) before the atan2 call: a figure is rarely square, and an
// uncorrected angle would not match what a viewer perceives as following
// the line.
//
// A zero-length reference segment (p1 == p2) returns 0° by policy rather
// than failing. aspectRatio must be > 0.
func Angle(p1, p2 Point, axes ScalePair, aspectRatio float64) (float64, error) {
	if aspectRatio <= 0 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "aspect ratio must be positive, got %v", aspectRatio)
	}

	d1, err := axes.ToDisplay(p1)
	if err != nil {
		return 0, err
	}
	d2, err := axes.ToDisplay(p2)
	if err != nil {
		return 0, err
	}

	dx := d2.X - d1.X
	dy := d2.Y - d1.Y
	if dx == 0 && dy == 0 {
		return 0, nil
	}
	return math.Atan2(dy*aspectRatio, dx) * 180 / math.Pi, nil
}

// Place assembles an annotation directive. The rendering layer is
// responsible for drawing the rotated text at the anchor.
func Place(text string, anchor Point, angleDegrees float64) Annotation {
	return Annotation{Text: text, Anchor: anchor, AngleDegrees: angleDegrees}
}
