package geom

import (
	"math"
	"sort"

	"github.com/omnihola/ashby-plot/pkg/errors"
)

// thinWidthFraction sizes the fallback rectangle for degenerate point sets
// relative to the points' own magnitude, so the rectangle stays invisible at
// chart scale and never pushes strictly-positive data below zero.
const thinWidthFraction = 1e-6

// ConvexHull computes the convex hull of a point set using the monotone
// chain algorithm. The result winds counter-clockwise, starts at the
// lexicographically smallest vertex, and excludes collinear boundary points.
// The first vertex is not repeated at the end; closure is handled by Smooth.
//
// Degenerate inputs never fail, so sparse categories still render:
//
//   - an empty set returns nil
//   - one or two distinct points, or a fully collinear set, fall back to a
//     thin counter-clockwise rectangle of minimal width around the
//     point/segment, giving downstream scaling and padding a polygon with
//     well-defined outward directions
func ConvexHull(ps PointSet) PointSet {
	pts := distinct(ps)
	if len(pts) == 0 {
		return nil
	}
	if len(pts) <= 2 {
		return thinRectangle(pts[0], pts[len(pts)-1])
	}

	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})

	// Lower hull, then upper hull. Strict turns only, so collinear boundary
	// points drop out.
	var lower PointSet
	for _, p := range pts {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	var upper PointSet
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	if len(hull) < 3 {
		// All points collinear.
		return thinRectangle(pts[0], pts[len(pts)-1])
	}
	return hull
}

// ScaleHull enlarges (or shrinks) a hull about its centroid as seen on the
// rendered chart: vertices are transformed into display space, their offsets
// from the display-space centroid are multiplied by factor, and the result
// is mapped back to data space. On log axes this makes factor 1.1 look like
// a 10% enlargement instead of 10% in raw units.
//
// factor must be > 0 (INVALID_SCALE otherwise); 1 is a no-op. Values ≤ 0 on
// a logarithmic axis surface NON_POSITIVE_VALUE.
func ScaleHull(hull PointSet, factor float64, axes ScalePair) (PointSet, error) {
	if err := errors.ValidateScaleFactor(factor); err != nil {
		return nil, err
	}
	if len(hull) == 0 {
		return nil, nil
	}

	disp, err := axes.ToDisplaySet(hull)
	if err != nil {
		return nil, err
	}
	c := disp.Centroid()
	out := make(PointSet, len(disp))
	for i, p := range disp {
		out[i] = Point{
			X: c.X + factor*(p.X-c.X),
			Y: c.Y + factor*(p.Y-c.Y),
		}
	}
	return axes.ToDataSet(out), nil
}

// Padding is either an absolute display-space distance or a distance
// proportional to the hull's scale factor ("scale"-relative). It is resolved
// to an absolute distance before use.
type Padding struct {
	Absolute      float64
	ScaleRelative bool
}

// AbsolutePadding pads by a fixed display-space distance.
func AbsolutePadding(d float64) Padding {
	return Padding{Absolute: d}
}

// ScaleRelativePadding pads by (scaleFactor − 1) times the hull's maximum
// centroid-to-vertex display distance.
func ScaleRelativePadding() Padding {
	return Padding{ScaleRelative: true}
}

// PadHull pushes every vertex outward from the hull's display-space centroid
// by the resolved padding distance, then maps back to data space. It is
// applied after ScaleHull so the two effects compose predictably.
//
// Vertices coincident with the centroid have no outward direction and stay
// in place.
func PadHull(hull PointSet, pad Padding, scaleFactor float64, axes ScalePair) (PointSet, error) {
	if pad.ScaleRelative {
		if err := errors.ValidateScaleFactor(scaleFactor); err != nil {
			return nil, err
		}
	}
	if len(hull) == 0 {
		return nil, nil
	}

	disp, err := axes.ToDisplaySet(hull)
	if err != nil {
		return nil, err
	}
	c := disp.Centroid()

	d := pad.Absolute
	if pad.ScaleRelative {
		var ref float64
		for _, p := range disp {
			ref = math.Max(ref, math.Hypot(p.X-c.X, p.Y-c.Y))
		}
		d = (scaleFactor - 1) * ref
	}

	out := make(PointSet, len(disp))
	for i, p := range disp {
		dist := math.Hypot(p.X-c.X, p.Y-c.Y)
		if dist == 0 {
			out[i] = p
			continue
		}
		out[i] = Point{
			X: p.X + d*(p.X-c.X)/dist,
			Y: p.Y + d*(p.Y-c.Y)/dist,
		}
	}
	return axes.ToDataSet(out), nil
}

// Contains reports whether p lies inside or on the boundary of the
// counter-clockwise hull, within tol.
func Contains(hull PointSet, p Point, tol float64) bool {
	if len(hull) < 3 {
		return false
	}
	for i := range hull {
		a := hull[i]
		b := hull[(i+1)%len(hull)]
		if cross(a, b, p) < -tol {
			return false
		}
	}
	return true
}

// cross returns the z component of (a−o) × (b−o). Positive means the turn
// o→a→b is counter-clockwise.
func cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// distinct returns the unique points of ps, preserving first-seen order.
func distinct(ps PointSet) PointSet {
	seen := make(map[Point]struct{}, len(ps))
	out := make(PointSet, 0, len(ps))
	for _, p := range ps {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// thinRectangle builds a counter-clockwise rectangle of minimal width around
// the segment a→b (or around a single point when a == b), used as the
// fallback hull for degenerate point sets.
//
// Each axis of the rectangle is sized from that axis's own coordinates.
// Material properties routinely differ by many orders of magnitude between
// axes; a shared width would swamp the smaller coordinate and push it
// negative, which log axes downstream reject.
func thinRectangle(a, b Point) PointSet {
	length := math.Hypot(b.X-a.X, b.Y-a.Y)
	wx := thinWidthFraction * axisMagnitude(a.X, b.X, length)
	wy := thinWidthFraction * axisMagnitude(a.Y, b.Y, length)

	dx, dy := 1.0, 0.0
	if length > 0 {
		dx, dy = (b.X-a.X)/length, (b.Y-a.Y)/length
	} else {
		// Single point: grow a quad instead of a zero-area sliver.
		b = Point{X: a.X + wx, Y: a.Y}
		a = Point{X: a.X - wx, Y: a.Y}
	}
	// Left normal of the a→b direction, per-axis width.
	nx, ny := -dy*wx, dx*wy

	return PointSet{
		{X: a.X - nx, Y: a.Y - ny},
		{X: b.X - nx, Y: b.Y - ny},
		{X: b.X + nx, Y: b.Y + ny},
		{X: a.X + nx, Y: a.Y + ny},
	}
}

// axisMagnitude sizes one rectangle axis from that axis's coordinates, so a
// thinWidthFraction offset cannot flip the sign of a positive coordinate.
// Axes where both coordinates are zero fall back to the segment length (or
// 1 for a point at the origin); zero coordinates only occur on linear axes.
func axisMagnitude(u, v, length float64) float64 {
	m := math.Max(math.Abs(u), math.Abs(v))
	if m == 0 {
		m = math.Max(length, 1)
	}
	return m
}
