package geom

import "testing"

func TestCentroid(t *testing.T) {
	tests := []struct {
		name string
		ps   PointSet
		want Point
	}{
		{"empty", nil, Point{}},
		{"single", PointSet{{2, 3}}, Point{2, 3}},
		{"square", PointSet{{0, 0}, {2, 0}, {2, 2}, {0, 2}}, Point{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.ps.Centroid()
			if !almostEqual(got.X, tt.want.X, tol) || !almostEqual(got.Y, tt.want.Y, tol) {
				t.Errorf("Centroid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	ps := PointSet{{3, -1}, {0, 4}, {-2, 2}}
	min, max := ps.Bounds()

	if min != (Point{-2, -1}) || max != (Point{3, 4}) {
		t.Errorf("Bounds() = %v, %v", min, max)
	}
}

func TestXYValues(t *testing.T) {
	ps := PointSet{{1, 4}, {2, 5}, {3, 6}}

	xs := ps.XValues()
	ys := ps.YValues()
	for i := range ps {
		if xs[i] != ps[i].X || ys[i] != ps[i].Y {
			t.Errorf("values mismatch at %d: (%v, %v)", i, xs[i], ys[i])
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	ps := PointSet{{1, 1}, {2, 2}}
	c := ps.Clone()
	c[0].X = 99

	if ps[0].X != 1 {
		t.Error("Clone shares backing storage with original")
	}
}
