package geom

import (
	"testing"

	"github.com/omnihola/ashby-plot/pkg/errors"
)

func TestSmoothClosure(t *testing.T) {
	hull := ConvexHull(PointSet{{0, 0}, {4, 0}, {4, 3}, {0, 3}, {2, 5}})

	for _, method := range []Method{MethodLinear, MethodQuadratic, MethodCubic} {
		t.Run(string(method), func(t *testing.T) {
			out, err := Smooth(hull, 100, method)
			if err != nil {
				t.Fatalf("Smooth: %v", err)
			}
			if len(out) != 100 {
				t.Fatalf("got %d points, want 100", len(out))
			}
			if out[0] != out[len(out)-1] {
				t.Errorf("first point %v != last point %v", out[0], out[len(out)-1])
			}
		})
	}
}

func TestSmoothLinearPassesThroughVertices(t *testing.T) {
	hull := PointSet{{0, 0}, {2, 0}, {2, 2}, {0, 2}}

	// 4 segments in the closed loop, 9 samples: every other sample lands
	// exactly on a vertex.
	out, err := Smooth(hull, 9, MethodLinear)
	if err != nil {
		t.Fatalf("Smooth: %v", err)
	}

	wantVertices := []struct {
		idx int
		p   Point
	}{
		{0, Point{0, 0}},
		{2, Point{2, 0}},
		{4, Point{2, 2}},
		{6, Point{0, 2}},
		{8, Point{0, 0}},
	}
	for _, wv := range wantVertices {
		got := out[wv.idx]
		if !almostEqual(got.X, wv.p.X, tol) || !almostEqual(got.Y, wv.p.Y, tol) {
			t.Errorf("sample %d = %v, want %v", wv.idx, got, wv.p)
		}
	}

	// Midpoints of segments land on edge midpoints.
	if !almostEqual(out[1].X, 1, tol) || !almostEqual(out[1].Y, 0, tol) {
		t.Errorf("sample 1 = %v, want (1, 0)", out[1])
	}
}

func TestSmoothSplinesInterpolateVertices(t *testing.T) {
	hull := PointSet{{0, 0}, {4, 0}, {4, 4}, {2, 6}, {0, 4}}

	for _, method := range []Method{MethodQuadratic, MethodCubic} {
		t.Run(string(method), func(t *testing.T) {
			// 5 segments in the closed loop, 11 samples: even samples land
			// on the knots, which any interpolating spline must hit.
			out, err := Smooth(hull, 11, method)
			if err != nil {
				t.Fatalf("Smooth: %v", err)
			}
			closed := append(hull.Clone(), hull[0])
			for i, want := range closed {
				got := out[2*i]
				if !almostEqual(got.X, want.X, 1e-9) || !almostEqual(got.Y, want.Y, 1e-9) {
					t.Errorf("knot %d = %v, want %v", i, got, want)
				}
			}
		})
	}
}

func TestSmoothCubicFallbackOnTriangle(t *testing.T) {
	// A 3-vertex hull cannot support cubic interpolation; the call must
	// degrade to linear instead of failing the plot.
	hull := PointSet{{0, 0}, {4, 0}, {2, 3}}

	out, err := Smooth(hull, 50, MethodCubic)
	if err != nil {
		t.Fatalf("Smooth: %v", err)
	}
	if len(out) != 50 {
		t.Fatalf("got %d points, want 50", len(out))
	}
	if out[0] != out[len(out)-1] {
		t.Errorf("fallback output not closed")
	}

	// Linear output stays within the hull (splines may overshoot).
	for _, p := range out {
		if !Contains(hull, p, 1e-9) {
			t.Errorf("linear fallback sample %v escapes hull", p)
		}
	}
}

func TestSmoothQuadraticFallbackOnSegmentRectangle(t *testing.T) {
	hull := ConvexHull(PointSet{{1, 1}, {2, 2}}) // thin fallback rectangle
	if _, err := Smooth(hull, 20, MethodQuadratic); err != nil {
		t.Fatalf("Smooth on degenerate rectangle: %v", err)
	}
}

func TestSmoothErrors(t *testing.T) {
	hull := PointSet{{0, 0}, {1, 0}, {0, 1}}

	if _, err := Smooth(hull, 1, MethodLinear); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Smooth(n=1) error = %v, want INVALID_INPUT", err)
	}
	if _, err := Smooth(nil, 10, MethodLinear); !errors.Is(err, errors.ErrCodeInsufficientPoints) {
		t.Errorf("Smooth(empty) error = %v, want INSUFFICIENT_POINTS", err)
	}
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		input   string
		want    Method
		wantErr bool
	}{
		{"linear", MethodLinear, false},
		{"quadratic", MethodQuadratic, false},
		{"cubic", MethodCubic, false},
		{"spline", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseMethod(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMethod(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMethod(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
