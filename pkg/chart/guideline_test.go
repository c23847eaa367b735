package chart

import (
	"math"
	"testing"

	"github.com/omnihola/ashby-plot/pkg/errors"
	"github.com/omnihola/ashby-plot/pkg/geom"
)

func TestGuidelineSampleLogLog(t *testing.T) {
	g := Guideline{Power: 0.5, Intercept: 2, XMin: 1, XMax: 10000}

	pts, err := g.Sample(geom.LogLogAxes)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if len(pts) != guidelineSamples {
		t.Fatalf("got %d samples, want %d", len(pts), guidelineSamples)
	}

	// Power law evaluated exactly, x spaced evenly in log space.
	for i, p := range pts {
		want := 2 * math.Pow(p.X, 0.5)
		if math.Abs(p.Y-want) > 1e-9*want {
			t.Errorf("sample %d: y = %v, want %v", i, p.Y, want)
		}
	}
	r1 := pts[1].X / pts[0].X
	r2 := pts[2].X / pts[1].X
	if math.Abs(r1-r2) > 1e-9*r1 {
		t.Errorf("x samples not log-spaced: ratios %v, %v", r1, r2)
	}
}

func TestGuidelineSampleLinear(t *testing.T) {
	g := Guideline{Power: 3, Intercept: 1, XMin: 0, XMax: 4}

	pts, err := g.Sample(geom.LinearAxes)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if pts[0].Y != 1 || pts[4].Y != 13 {
		t.Errorf("endpoints = %v, %v; want y=1 and y=13", pts[0], pts[4])
	}
	if pts[2].X != 2 {
		t.Errorf("midpoint x = %v, want 2 (linear spacing)", pts[2].X)
	}
}

func TestGuidelineAnnotationAngle(t *testing.T) {
	// Slope-1 power law on log-log axes with a square aspect follows a
	// 45 degree line.
	g := Guideline{Power: 1, Intercept: 1, XMin: 1, XMax: 100, Label: "E/rho"}

	a, err := g.Annotation(geom.LogLogAxes, 1)
	if err != nil {
		t.Fatalf("Annotation: %v", err)
	}
	if math.Abs(a.AngleDegrees-45) > 1e-9 {
		t.Errorf("angle = %v, want 45", a.AngleDegrees)
	}
	if a.Text != "E/rho" {
		t.Errorf("text = %q", a.Text)
	}
	if a.Anchor.X != 1 {
		t.Errorf("anchor = %v, want first sample", a.Anchor)
	}
}

func TestGuidelineAnnotationAnchor(t *testing.T) {
	// An explicit anchor moves the label without changing its rotation.
	g := Guideline{Power: 1, Intercept: 1, XMin: 1, XMax: 100, Label: "E/rho",
		Anchor: &geom.Point{X: 50, Y: 200}}

	a, err := g.Annotation(geom.LogLogAxes, 1)
	if err != nil {
		t.Fatalf("Annotation: %v", err)
	}
	if a.Anchor.X != 50 || a.Anchor.Y != 200 {
		t.Errorf("anchor = %v, want (50, 200)", a.Anchor)
	}
	if math.Abs(a.AngleDegrees-45) > 1e-9 {
		t.Errorf("angle = %v, want 45", a.AngleDegrees)
	}
}

func TestGuidelineValidate(t *testing.T) {
	tests := []struct {
		name string
		g    Guideline
		axes geom.ScalePair
		code errors.Code
	}{
		{"inverted span", Guideline{XMin: 10, XMax: 1}, geom.LinearAxes, errors.ErrCodeInvalidInput},
		{"zero x on log axis", Guideline{XMin: 0, XMax: 1, Intercept: 1}, geom.LogLogAxes, errors.ErrCodeNonPositiveValue},
		{"negative intercept on log-log", Guideline{XMin: 1, XMax: 10, Intercept: -2}, geom.LogLogAxes, errors.ErrCodeNonPositiveValue},
		{"non-positive anchor on log axis",
			Guideline{XMin: 1, XMax: 10, Intercept: 1, Anchor: &geom.Point{X: 0, Y: 5}},
			geom.LogLogAxes, errors.ErrCodeNonPositiveValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.g.Validate(tt.axes); !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}
