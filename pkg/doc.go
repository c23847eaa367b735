// Package pkg provides the core libraries for Ashby chart generation.
//
// # Overview
//
// Ashby charts plot material categories as shaded convex-hull envelopes in
// a log-log property plane (density against stiffness, strength against
// cost), the standard visual language of material selection. The pkg
// directory is organized into focused areas:
//
//  1. [geom] - Geometry engine (hulls, ellipses, smoothing, annotations)
//  2. [materials] - Domain model (datasets, properties, units, palette)
//  3. [io] - Spreadsheet ingestion and figure output paths
//  4. [chart] - Rendering layer on go-chart (series, styles, guidelines)
//  5. [pipeline] - Orchestration (load → build → render)
//
// # Architecture
//
// The typical data flow:
//
//	CSV / XLSX data file
//	         ↓
//	io.Load → materials.Dataset
//	         ↓
//	chart.Build (geom hulls per category, series assembly)
//	         ↓
//	chart.Render → PNG / SVG under figures/
//
// Supporting packages: [errors] defines the coded error type shared by
// every layer, [observability] exposes pipeline instrumentation hooks,
// and [buildinfo] carries ldflags-injected version data.
//
// [geom]: https://pkg.go.dev/github.com/omnihola/ashby-plot/pkg/geom
// [materials]: https://pkg.go.dev/github.com/omnihola/ashby-plot/pkg/materials
// [io]: https://pkg.go.dev/github.com/omnihola/ashby-plot/pkg/io
// [chart]: https://pkg.go.dev/github.com/omnihola/ashby-plot/pkg/chart
// [pipeline]: https://pkg.go.dev/github.com/omnihola/ashby-plot/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/omnihola/ashby-plot/pkg/errors
// [observability]: https://pkg.go.dev/github.com/omnihola/ashby-plot/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/omnihola/ashby-plot/pkg/buildinfo
package pkg
