package materials

import (
	"sort"

	"github.com/omnihola/ashby-plot/pkg/errors"
	"github.com/omnihola/ashby-plot/pkg/geom"
)

// Kind distinguishes datasets of per-property ranges from single values.
type Kind string

// Dataset kinds. Range data draws per-sample ellipses; value data draws
// scatter points. Both pool into the same hull input.
const (
	KindRanges Kind = "ranges"
	KindValues Kind = "values"
)

// ParseKind parses a dataset kind name.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindRanges, KindValues:
		return Kind(s), nil
	default:
		return "", errors.New(errors.ErrCodeInvalidInput, "unknown data kind %q (must be 'ranges' or 'values')", s)
	}
}

// Range is a (low, high) bound for one property. A single value is stored
// with Low == High.
type Range struct {
	Low  float64
	High float64
}

// Mid returns the midpoint of the range.
func (r Range) Mid() float64 {
	return (r.Low + r.High) / 2
}

// Record is one material sample: a named row with per-property ranges.
type Record struct {
	Name     string
	Category string
	Props    map[Property]Range
}

// Range returns the record's bounds for property p.
func (rec Record) Range(p Property) (Range, error) {
	r, ok := rec.Props[p]
	if !ok {
		return Range{}, errors.New(errors.ErrCodeUnknownProperty, "record %q has no property %q", rec.Name, p)
	}
	return r, nil
}

// Sample pairs an x and y property into a geometry range sample.
func (rec Record) Sample(xProp, yProp Property) (geom.RangeSample, error) {
	xr, err := rec.Range(xProp)
	if err != nil {
		return geom.RangeSample{}, err
	}
	yr, err := rec.Range(yProp)
	if err != nil {
		return geom.RangeSample{}, err
	}
	s := geom.RangeSample{XLow: xr.Low, XHigh: xr.High, YLow: yr.Low, YHigh: yr.High}
	return s, s.Validate()
}

// Dataset is a collection of material records of one kind.
type Dataset struct {
	Kind    Kind
	Records []Record
}

// Categories returns the distinct category names in sorted order, so plot
// generation iterates deterministically.
func (d *Dataset) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, rec := range d.Records {
		if _, ok := seen[rec.Category]; ok {
			continue
		}
		seen[rec.Category] = struct{}{}
		out = append(out, rec.Category)
	}
	sort.Strings(out)
	return out
}

// ByCategory groups records by category, preserving record order within
// each group.
func (d *Dataset) ByCategory() map[string][]Record {
	out := make(map[string][]Record)
	for _, rec := range d.Records {
		out[rec.Category] = append(out[rec.Category], rec)
	}
	return out
}

// CornerPoints pools the (low, low) and (high, high) corners of every
// record's x/y ranges, the point cloud the category hull is computed from.
// For value datasets low == high and each record contributes one distinct
// point twice.
func (d *Dataset) CornerPoints(recs []Record, xProp, yProp Property) (geom.PointSet, error) {
	out := make(geom.PointSet, 0, 2*len(recs))
	for _, rec := range recs {
		s, err := rec.Sample(xProp, yProp)
		if err != nil {
			return nil, err
		}
		out = append(out, geom.Point{X: s.XLow, Y: s.YLow}, geom.Point{X: s.XHigh, Y: s.YHigh})
	}
	return out, nil
}

// DerivePoissonDifference adds the hyperbolic Poisson ratio 1/(1+ν) to every
// record carrying a Poisson range. The transform is monotonically
// decreasing, so low and high bounds swap.
func (d *Dataset) DerivePoissonDifference() {
	for _, rec := range d.Records {
		pr, ok := rec.Props[PropPoisson]
		if !ok {
			continue
		}
		rec.Props[PropPoissonDifference] = Range{
			Low:  1 / (1 + pr.High),
			High: 1 / (1 + pr.Low),
		}
	}
}

// HighlightMaterial is an individually emphasized material drawn as a star
// marker with its own legend entry.
type HighlightMaterial struct {
	Name   string
	Color  string
	Values map[Property]float64
}

// Point resolves the highlight's position for the chosen axis properties.
// The Poisson difference is derived on the fly when only Poisson is known.
func (h HighlightMaterial) Point(xProp, yProp Property) (geom.Point, error) {
	x, err := h.value(xProp)
	if err != nil {
		return geom.Point{}, err
	}
	y, err := h.value(yProp)
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Point{X: x, Y: y}, nil
}

func (h HighlightMaterial) value(p Property) (float64, error) {
	if v, ok := h.Values[p]; ok {
		return v, nil
	}
	if p == PropPoissonDifference {
		if nu, ok := h.Values[PropPoisson]; ok {
			return 1 / (1 + nu), nil
		}
	}
	return 0, errors.New(errors.ErrCodeUnknownProperty, "material %q has no value for %q", h.Name, p)
}
