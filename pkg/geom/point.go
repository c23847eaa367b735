package geom

import "math"

// Point is an (x, y) pair in data space.
type Point struct {
	X float64
	Y float64
}

// PointSet is an ordered sequence of points. Insertion order is irrelevant
// to hull computation but preserved so tie-breaking stays reproducible.
type PointSet []Point

// Centroid returns the arithmetic mean of the points.
// The zero Point is returned for an empty set.
func (ps PointSet) Centroid() Point {
	if len(ps) == 0 {
		return Point{}
	}
	var sx, sy float64
	for _, p := range ps {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(ps))
	return Point{X: sx / n, Y: sy / n}
}

// Bounds returns the axis-aligned bounding box of the points.
// For an empty set both corners are the zero Point.
func (ps PointSet) Bounds() (min, max Point) {
	if len(ps) == 0 {
		return Point{}, Point{}
	}
	min, max = ps[0], ps[0]
	for _, p := range ps[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

// Clone returns a copy of the point set.
func (ps PointSet) Clone() PointSet {
	out := make(PointSet, len(ps))
	copy(out, ps)
	return out
}

// XValues returns the x coordinates in order.
func (ps PointSet) XValues() []float64 {
	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i] = p.X
	}
	return out
}

// YValues returns the y coordinates in order.
func (ps PointSet) YValues() []float64 {
	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i] = p.Y
	}
	return out
}
