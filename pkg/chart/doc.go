// Package chart renders Ashby material-property charts.
//
// # Overview
//
// The package turns a material dataset plus geometry parameters into a
// go-chart figure: one shaded convex-hull envelope per material category,
// per-material range ellipses or scatter markers inside it, optional
// design guidelines with rotation-aligned labels, and highlighted
// individual materials.
//
// # Stages
//
// [Build] assembles a *chart.Chart from [Params]:
//
//  1. Pool every category's range corners into a point cloud
//  2. Hull the cloud, then scale, pad, and smooth the hull
//  3. Wrap the results in custom go-chart series (polygons, ellipses,
//     guidelines, rotated labels)
//
// Category hulls are independent, so stage 2 runs per category in
// parallel. [Render] encodes the finished figure as PNG or SVG.
//
// # Styling
//
// Visual parameters live in an immutable [Style] value. Two presets are
// built in, "publication" and "presentation"; either can be overridden
// from a TOML file with [LoadStyle]. Geometry parameters (hull scale,
// padding, smoothing) are not style: they travel in [Params] so the same
// style can serve any chart.
package chart
