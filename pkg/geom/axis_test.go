package geom

import (
	"math"
	"testing"

	"github.com/omnihola/ashby-plot/pkg/errors"
)

func TestParseScale(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Scale
		wantErr bool
	}{
		{"linear", "linear", Linear, false},
		{"log", "log", Logarithmic, false},
		{"logarithmic", "logarithmic", Logarithmic, false},
		{"unknown", "semilog", Linear, true},
		{"empty", "", Linear, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScale(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseScale(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseScale(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLinearTransformIsIdentity(t *testing.T) {
	p := Point{X: -3.5, Y: 42}
	got, err := LinearAxes.ToDisplay(p)
	if err != nil {
		t.Fatalf("ToDisplay: %v", err)
	}
	if got != p {
		t.Errorf("ToDisplay(%v) = %v, want identity", p, got)
	}
	if back := LinearAxes.ToData(got); back != p {
		t.Errorf("ToData(%v) = %v, want %v", got, back, p)
	}
}

func TestLogTransformRoundTrip(t *testing.T) {
	values := []Point{{1, 1}, {10, 0.001}, {2700, 210}, {1e-6, 1e9}}

	for _, p := range values {
		disp, err := LogLogAxes.ToDisplay(p)
		if err != nil {
			t.Fatalf("ToDisplay(%v): %v", p, err)
		}
		if !almostEqual(disp.X, math.Log(p.X), tol) || !almostEqual(disp.Y, math.Log(p.Y), tol) {
			t.Errorf("ToDisplay(%v) = %v, want natural logs", p, disp)
		}
		back := LogLogAxes.ToData(disp)
		if !almostEqual(back.X, p.X, p.X*1e-12) || !almostEqual(back.Y, p.Y, p.Y*1e-12) {
			t.Errorf("round trip of %v = %v", p, back)
		}
	}
}

func TestLogTransformRejectsNonPositive(t *testing.T) {
	tests := []struct {
		name string
		p    Point
	}{
		{"zero x", Point{0, 1}},
		{"zero y", Point{1, 0}},
		{"negative x", Point{-2, 1}},
		{"negative y", Point{1, -0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LogLogAxes.ToDisplay(tt.p)
			if !errors.Is(err, errors.ErrCodeNonPositiveValue) {
				t.Errorf("ToDisplay(%v) error = %v, want NON_POSITIVE_VALUE", tt.p, err)
			}
		})
	}
}

func TestMixedAxes(t *testing.T) {
	axes := ScalePair{X: Linear, Y: Logarithmic}

	disp, err := axes.ToDisplay(Point{X: -5, Y: math.E})
	if err != nil {
		t.Fatalf("ToDisplay: %v", err)
	}
	if !almostEqual(disp.X, -5, tol) || !almostEqual(disp.Y, 1, tol) {
		t.Errorf("ToDisplay = %v, want (-5, 1)", disp)
	}

	// Negative x is fine on the linear axis, zero y is not on the log axis.
	if _, err := axes.ToDisplay(Point{X: -5, Y: 0}); !errors.Is(err, errors.ErrCodeNonPositiveValue) {
		t.Errorf("error = %v, want NON_POSITIVE_VALUE", err)
	}
}

func TestToDisplaySetPropagatesError(t *testing.T) {
	ps := PointSet{{1, 1}, {2, 2}, {0, 3}}
	if _, err := LogLogAxes.ToDisplaySet(ps); !errors.Is(err, errors.ErrCodeNonPositiveValue) {
		t.Errorf("error = %v, want NON_POSITIVE_VALUE", err)
	}
}
