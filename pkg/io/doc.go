// Package io loads material datasets from spreadsheet files.
//
// # Overview
//
// Material data arrives as tabular files with one row per material and one
// column group per property. Two file formats are supported:
//
//   - CSV (comma-separated, UTF-8)
//   - XLSX (first worksheet of an Excel workbook)
//
// # Column Convention
//
// Every file must carry a "Name" and a "Category" column. The remaining
// columns depend on the dataset kind:
//
//   - ranges: each property contributes a "<Property> low" and a
//     "<Property> high" column pair, e.g. "Density low", "Density high".
//   - values: each property contributes a single "<Property>" column.
//
// Column headers are matched case-sensitively on the property name; the
// low/high suffix is case-insensitive. Empty cells mean the record has no
// data for that property, which is fine as long as the properties chosen
// for the plot axes are present.
//
// # Import
//
// Use [Load] to read a file by path (the format is inferred from the
// extension), or [ReadCSV] to read CSV data from any io.Reader:
//
//	ds, err := io.Load("material_data.xlsx", materials.KindRanges)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Malformed headers, unparsable numbers, and inverted ranges are reported
// as INVALID_DATA errors naming the offending row and column.
//
// # Output Paths
//
// [FigurePath] builds the conventional output location for a rendered
// chart, creating the figures directory on first use.
package io
