// Package geom implements the computational-geometry core behind Ashby-type
// material-property charts.
//
// # Overview
//
// An Ashby chart encloses each material category's samples in a smoothed
// convex boundary, optionally drawn over per-sample ellipses (when a sample
// is a property range rather than a point) and annotated with power-law
// guidelines whose labels rotate to follow the drawn line.
//
// The package provides four building blocks, applied leaf-first:
//
//   - ScalePair: maps data coordinates to display-equivalent coordinates
//     under linear or logarithmic axis scales, and back. All scaling and
//     rotation math runs in display space so that results look right on
//     log-log charts.
//   - Ellipse: converts a per-axis (low, high) range sample into a closed
//     polygon approximating an ellipse.
//   - ConvexHull / ScaleHull / PadHull / Smooth: compute the convex hull of
//     a point cloud, enlarge it about its centroid, push it outward by a
//     padding distance, and resample it into a smooth closed curve.
//   - Angle / Place: compute a label rotation angle from two reference
//     points, corrected for the rendered aspect ratio, and assemble an
//     annotation directive for the rendering layer.
//
// Every function is pure and deterministic over immutable inputs; hulls for
// independent categories can be computed concurrently without coordination.
//
// # Error Handling
//
// Geometry degeneracies with a sensible visual fallback (too few points for
// a hull or a spline) degrade gracefully and never fail a plot. Semantically
// invalid inputs (a value ≤ 0 on a logarithmic axis, a scale factor ≤ 0)
// surface as structured errors with the NON_POSITIVE_VALUE and INVALID_SCALE
// codes from pkg/errors.
package geom
