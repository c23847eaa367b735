package io

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/omnihola/ashby-plot/pkg/errors"
	"github.com/omnihola/ashby-plot/pkg/materials"
)

// Load reads a material dataset from path, inferring the file format from
// the extension (.csv or .xlsx).
func Load(path string, kind materials.Kind) (*materials.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		defer f.Close()
		ds, err := ReadCSV(f, kind)
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "%s", path)
		}
		return ds, nil
	case ".xlsx":
		return ReadXLSX(path, kind)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"unsupported data file %q (must be .csv or .xlsx)", path)
	}
}

// ReadCSV decodes a CSV dataset from r. The first row is the header; see
// the package documentation for the column convention.
func ReadCSV(r io.Reader, kind materials.Kind) (*materials.Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidData, err, "read csv")
	}
	return fromRows(rows, kind)
}

// ReadXLSX decodes a dataset from the first worksheet of an Excel workbook.
func ReadXLSX(path string, kind materials.Kind) (*materials.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New(errors.ErrCodeInvalidData, "%s: workbook has no sheets", path)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidData, err, "%s: read sheet %q", path, sheet)
	}
	ds, err := fromRows(rows, kind)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return ds, nil
}

// column describes one parsed header cell: which property it feeds and
// whether it is the low or high bound of a range pair.
type column struct {
	prop materials.Property
	high bool
}

// fromRows converts a header row plus data rows into a dataset.
func fromRows(rows [][]string, kind materials.Kind) (*materials.Dataset, error) {
	if len(rows) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidData, "file is empty")
	}

	nameCol, catCol := -1, -1
	cols := make(map[int]column)
	for i, h := range rows[0] {
		h = strings.TrimSpace(h)
		switch {
		case strings.EqualFold(h, "Name"):
			nameCol = i
		case strings.EqualFold(h, "Category"):
			catCol = i
		case h == "":
			// skip blank headers
		default:
			c, err := parseHeader(h, kind)
			if err != nil {
				return nil, err
			}
			cols[i] = c
		}
	}
	if nameCol < 0 {
		return nil, errors.New(errors.ErrCodeInvalidData, "missing required column %q", "Name")
	}
	if catCol < 0 {
		return nil, errors.New(errors.ErrCodeInvalidData, "missing required column %q", "Category")
	}

	ds := &materials.Dataset{Kind: kind}
	for n, row := range rows[1:] {
		rec, empty, err := parseRow(row, n+2, nameCol, catCol, cols)
		if err != nil {
			return nil, err
		}
		if empty {
			continue
		}
		ds.Records = append(ds.Records, rec)
	}
	return ds, nil
}

// parseHeader classifies a property header cell. Range datasets require a
// "low"/"high" suffix; value datasets take the header verbatim.
func parseHeader(h string, kind materials.Kind) (column, error) {
	switch kind {
	case materials.KindRanges:
		// The suffix is matched case-insensitively on h's own bytes;
		// lowercasing the whole header can change its byte length for
		// non-ASCII property names.
		if name, ok := cutSuffixFold(h, " low"); ok {
			return column{prop: materials.Property(strings.TrimSpace(name))}, nil
		}
		if name, ok := cutSuffixFold(h, " high"); ok {
			return column{prop: materials.Property(strings.TrimSpace(name)), high: true}, nil
		}
		return column{}, errors.New(errors.ErrCodeInvalidData,
			"column %q: range data needs a 'low' or 'high' suffix", h)
	default:
		return column{prop: materials.Property(h)}, nil
	}
}

// cutSuffixFold cuts an ASCII suffix off s, comparing case-insensitively.
func cutSuffixFold(s, suffix string) (string, bool) {
	n := len(s) - len(suffix)
	if n < 0 || !strings.EqualFold(s[n:], suffix) {
		return s, false
	}
	return s[:n], true
}

func parseRow(row []string, line, nameCol, catCol int, cols map[int]column) (materials.Record, bool, error) {
	cell := func(i int) string {
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	rec := materials.Record{
		Name:     cell(nameCol),
		Category: cell(catCol),
		Props:    make(map[materials.Property]materials.Range),
	}
	if rec.Name == "" && rec.Category == "" {
		return materials.Record{}, true, nil
	}
	if rec.Name == "" {
		return materials.Record{}, false, errors.New(errors.ErrCodeInvalidData, "row %d: missing material name", line)
	}
	if err := errors.ValidateCategoryName(rec.Category); err != nil {
		return materials.Record{}, false, errors.Wrap(errors.ErrCodeInvalidData, err, "row %d", line)
	}

	// Track which bound of each pair has been seen so lone halves fail.
	seen := make(map[materials.Property][2]bool)
	for i, c := range cols {
		raw := cell(i)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return materials.Record{}, false, errors.New(errors.ErrCodeInvalidData,
				"row %d (%s): %q is not a number for %q", line, rec.Name, raw, c.prop)
		}
		r := rec.Props[c.prop]
		s := seen[c.prop]
		if c.high {
			r.High, s[1] = v, true
		} else {
			r.Low, s[0] = v, true
		}
		rec.Props[c.prop], seen[c.prop] = r, s
	}

	for p, s := range seen {
		r := rec.Props[p]
		switch {
		case s[0] && !s[1]:
			// Single-bound columns (value datasets) collapse to Low == High.
			r.High = r.Low
			rec.Props[p] = r
		case s[1] && !s[0]:
			return materials.Record{}, false, errors.New(errors.ErrCodeInvalidData,
				"row %d (%s): %q has a high bound but no low bound", line, rec.Name, p)
		case r.Low > r.High:
			return materials.Record{}, false, errors.New(errors.ErrCodeInvalidData,
				"row %d (%s): %q range inverted (%g > %g)", line, rec.Name, p, r.Low, r.High)
		}
	}
	return rec, false, nil
}

// LoadHighlights reads individually highlighted materials from a CSV file
// with "Name", "Color" and per-property value columns.
func LoadHighlights(path string) ([]materials.HighlightMaterial, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidData, err, "read %s", path)
	}
	if len(rows) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidData, "%s is empty", path)
	}

	nameCol, colorCol := -1, -1
	props := make(map[int]materials.Property)
	for i, h := range rows[0] {
		h = strings.TrimSpace(h)
		switch {
		case strings.EqualFold(h, "Name"):
			nameCol = i
		case strings.EqualFold(h, "Color"):
			colorCol = i
		case h != "":
			props[i] = materials.Property(h)
		}
	}
	if nameCol < 0 || colorCol < 0 {
		return nil, errors.New(errors.ErrCodeInvalidData,
			"%s: highlight files need %q and %q columns", path, "Name", "Color")
	}

	var out []materials.HighlightMaterial
	for n, row := range rows[1:] {
		h := materials.HighlightMaterial{Values: make(map[materials.Property]float64)}
		if nameCol < len(row) {
			h.Name = strings.TrimSpace(row[nameCol])
		}
		if h.Name == "" {
			continue
		}
		if colorCol < len(row) {
			h.Color = strings.TrimSpace(row[colorCol])
		}
		for i, p := range props {
			if i >= len(row) || strings.TrimSpace(row[i]) == "" {
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
			if err != nil {
				return nil, errors.New(errors.ErrCodeInvalidData,
					"%s row %d (%s): %q is not a number for %q", path, n+2, h.Name, row[i], p)
			}
			h.Values[p] = v
		}
		out = append(out, h)
	}
	return out, nil
}
