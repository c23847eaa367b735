package chart

import (
	"context"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/sync/errgroup"

	"github.com/omnihola/ashby-plot/pkg/errors"
	"github.com/omnihola/ashby-plot/pkg/geom"
	"github.com/omnihola/ashby-plot/pkg/materials"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Pipeline
// =============================================================================

const (
	// DefaultHullScale expands each hull around its display-space centroid
	// so the envelope clears the raw data points.
	DefaultHullScale = 1.1

	// DefaultInterpolate is the number of points each hull is smoothed to.
	DefaultInterpolate = 1000

	// ellipseVertices is the rasterization resolution of range ellipses.
	ellipseVertices = 100
)

// DefaultMethod is the default hull smoothing method.
const DefaultMethod = geom.MethodCubic

// Output format names accepted by [Render].
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// Limits pins one axis to an explicit data range instead of auto-fitting.
type Limits struct {
	Min float64
	Max float64
}

// Params collects everything [Build] needs to assemble a chart.
type Params struct {
	Data  *materials.Dataset
	XProp materials.Property
	YProp materials.Property

	Axes    geom.ScalePair
	Units   materials.Units
	Palette materials.Palette
	Style   Style
	Title   string

	// Hull geometry. Zero values pick the defaults above.
	HullScale   float64
	Padding     geom.Padding
	Interpolate int
	Method      geom.Method

	Guidelines []Guideline
	Highlights []materials.HighlightMaterial

	// UnitCells is an optional secondary dataset (e.g. lattice unit cell
	// simulations) overlaid as dashed envelopes.
	UnitCells *materials.Dataset

	XLimits *Limits
	YLimits *Limits
}

func (p *Params) setDefaults() {
	if p.HullScale == 0 {
		p.HullScale = DefaultHullScale
	}
	if p.Padding == (geom.Padding{}) {
		p.Padding = geom.ScaleRelativePadding()
	}
	if p.Interpolate == 0 {
		p.Interpolate = DefaultInterpolate
	}
	if p.Method == "" {
		p.Method = DefaultMethod
	}
	if p.Units == nil {
		p.Units = materials.DefaultUnits()
	}
	if p.Palette == nil {
		p.Palette = materials.DefaultPalette()
	}
	if p.Style == (Style{}) {
		p.Style = Publication()
	}
}

func (p *Params) validate() error {
	if p.Data == nil || len(p.Data.Records) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no material data to plot")
	}
	if err := errors.ValidatePropertyName(string(p.XProp)); err != nil {
		return err
	}
	if err := errors.ValidatePropertyName(string(p.YProp)); err != nil {
		return err
	}
	if err := errors.ValidateScaleFactor(p.HullScale); err != nil {
		return err
	}
	if err := errors.ValidateInterpolationCount(p.Interpolate); err != nil {
		return err
	}
	return p.Palette.Validate(p.Data.Categories())
}

// envelope is one category's finished hull outline plus its source records.
type envelope struct {
	category string
	outline  geom.PointSet
	records  []materials.Record
}

// Build assembles the chart: one smoothed hull envelope per category, the
// per-material ellipses or scatter inside it, then guidelines, highlights,
// and the optional unit-cell overlay.
func Build(ctx context.Context, p Params) (*chart.Chart, error) {
	p.setDefaults()
	if err := p.validate(); err != nil {
		return nil, err
	}
	logger := log.FromContext(ctx)

	envs, err := buildEnvelopes(ctx, p.Data, p)
	if err != nil {
		return nil, err
	}
	logger.Debug("computed hull envelopes", "categories", len(envs), "method", p.Method)

	var overlay []envelope
	if p.UnitCells != nil && len(p.UnitCells.Records) > 0 {
		overlay, err = buildEnvelopes(ctx, p.UnitCells, p)
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "unit cell overlay")
		}
	}

	xr, yr, err := axisRanges(p, envs, overlay)
	if err != nil {
		return nil, err
	}
	aspect, err := aspectRatio(p.Style, xr, yr, p.Axes)
	if err != nil {
		return nil, err
	}

	var series []chart.Series

	for _, env := range envs {
		color, err := p.Palette.Lookup(env.category)
		if err != nil {
			return nil, err
		}
		series = append(series, polygonSeries{
			name:   env.category,
			points: env.outline,
			style: chart.Style{
				StrokeColor: color,
				StrokeWidth: p.Style.StrokeWidth,
				FillColor:   color.WithAlpha(p.Style.FillAlpha),
			},
		})

		inner, err := memberSeries(env, p, color)
		if err != nil {
			return nil, err
		}
		series = append(series, inner...)
	}

	for _, env := range overlay {
		color, err := p.Palette.Lookup(env.category)
		if err != nil {
			return nil, err
		}
		series = append(series, polygonSeries{
			name:   env.category + " (unit cells)",
			points: env.outline,
			style: chart.Style{
				StrokeColor:     color,
				StrokeWidth:     p.Style.StrokeWidth,
				StrokeDashArray: []float64{5, 3},
			},
		})
	}

	gl, err := guidelineSeries(p, aspect)
	if err != nil {
		return nil, err
	}
	series = append(series, gl...)

	hl, err := highlightSeries(p)
	if err != nil {
		return nil, err
	}
	series = append(series, hl...)

	xLabel, err := p.Units.AxisLabel(p.XProp)
	if err != nil {
		return nil, err
	}
	yLabel, err := p.Units.AxisLabel(p.YProp)
	if err != nil {
		return nil, err
	}

	gridStyle := chart.Style{
		Hidden:      !p.Style.Grid,
		StrokeColor: drawing.Color{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff},
		StrokeWidth: 1,
	}
	fontStyle := chart.Style{FontSize: p.Style.AxisFontSize}

	ch := &chart.Chart{
		Title:      p.Title,
		TitleStyle: chart.Style{FontSize: p.Style.TitleFontSize, Hidden: p.Title == ""},
		Width:      p.Style.Width,
		Height:     p.Style.Height,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:           xLabel,
			NameStyle:      fontStyle,
			Style:          fontStyle,
			Range:          axisRange(p.Axes.X, xr),
			GridMajorStyle: gridStyle,
		},
		YAxis: chart.YAxis{
			Name:           yLabel,
			NameStyle:      fontStyle,
			Style:          fontStyle,
			Range:          axisRange(p.Axes.Y, yr),
			GridMajorStyle: gridStyle,
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{legend(ch, p.Style.LegendFontSize)}

	logger.Debug("chart assembled", "series", len(series), "x", p.XProp, "y", p.YProp)
	return ch, nil
}

// Render encodes a built chart as PNG or SVG.
func Render(ch *chart.Chart, format string, w io.Writer) error {
	switch format {
	case FormatPNG:
		return ch.Render(chart.PNG, w)
	case FormatSVG:
		return ch.Render(chart.SVG, w)
	default:
		return errors.New(errors.ErrCodeInvalidFormat,
			"unsupported output format %q (must be 'png' or 'svg')", format)
	}
}

// buildEnvelopes computes the smoothed hull outline of every category in
// parallel. Categories are independent, so each worker hulls its own point
// cloud.
func buildEnvelopes(ctx context.Context, ds *materials.Dataset, p Params) ([]envelope, error) {
	cats := ds.Categories()
	groups := ds.ByCategory()
	envs := make([]envelope, len(cats))

	g, _ := errgroup.WithContext(ctx)
	for i, cat := range cats {
		g.Go(func() error {
			recs := groups[cat]
			cloud, err := ds.CornerPoints(recs, p.XProp, p.YProp)
			if err != nil {
				return errors.Wrap(errors.GetCode(err), err, "category %q", cat)
			}

			hull := geom.ConvexHull(cloud)
			hull, err = geom.ScaleHull(hull, p.HullScale, p.Axes)
			if err != nil {
				return errors.Wrap(errors.GetCode(err), err, "category %q", cat)
			}
			hull, err = geom.PadHull(hull, p.Padding, p.HullScale, p.Axes)
			if err != nil {
				return errors.Wrap(errors.GetCode(err), err, "category %q", cat)
			}
			outline, err := geom.Smooth(hull, p.Interpolate, p.Method)
			if err != nil {
				return errors.Wrap(errors.GetCode(err), err, "category %q", cat)
			}

			envs[i] = envelope{category: cat, outline: outline, records: recs}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return envs, nil
}

// memberSeries builds the per-material series inside one envelope: range
// ellipses for range datasets, midpoint dots for value datasets.
func memberSeries(env envelope, p Params, color drawing.Color) ([]chart.Series, error) {
	if p.Data.Kind == materials.KindValues {
		pts := make(geom.PointSet, 0, len(env.records))
		for _, rec := range env.records {
			s, err := rec.Sample(p.XProp, p.YProp)
			if err != nil {
				return nil, err
			}
			pts = append(pts, geom.Point{X: (s.XLow + s.XHigh) / 2, Y: (s.YLow + s.YHigh) / 2})
		}
		return []chart.Series{dotSeries{
			points: pts,
			style:  chart.Style{StrokeColor: color, StrokeWidth: 1, FillColor: color},
		}}, nil
	}

	out := make([]chart.Series, 0, len(env.records))
	for _, rec := range env.records {
		s, err := rec.Sample(p.XProp, p.YProp)
		if err != nil {
			return nil, err
		}
		ring := geom.FromRange(s).Rasterize(ellipseVertices)
		out = append(out, polygonSeries{
			points: ring,
			style: chart.Style{
				StrokeColor: color,
				StrokeWidth: 1,
				FillColor:   color.WithAlpha(p.Style.FillAlpha / 2),
			},
		})
	}
	return out, nil
}

func guidelineSeries(p Params, aspect float64) ([]chart.Series, error) {
	if len(p.Guidelines) == 0 {
		return nil, nil
	}

	grey := drawing.Color{R: 0x60, G: 0x60, B: 0x60, A: 0xff}
	var out []chart.Series
	var labels []geom.Annotation
	for _, g := range p.Guidelines {
		pts, err := g.Sample(p.Axes)
		if err != nil {
			return nil, err
		}
		out = append(out, lineSeries{
			points: pts,
			style: chart.Style{
				StrokeColor:     grey,
				StrokeWidth:     p.Style.StrokeWidth,
				StrokeDashArray: []float64{6, 4},
			},
		})
		if g.Label != "" {
			a, err := g.Annotation(p.Axes, aspect)
			if err != nil {
				return nil, err
			}
			labels = append(labels, a)
		}
	}
	if len(labels) > 0 {
		out = append(out, labelSeries{
			annotations: labels,
			style:       chart.Style{FontSize: p.Style.AnnotationFontSize, FontColor: grey},
		})
	}
	return out, nil
}

func highlightSeries(p Params) ([]chart.Series, error) {
	out := make([]chart.Series, 0, len(p.Highlights))
	for _, h := range p.Highlights {
		pt, err := h.Point(p.XProp, p.YProp)
		if err != nil {
			return nil, err
		}
		color, err := parseColor(h.Color)
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "highlight %q", h.Name)
		}
		out = append(out, starSeries{
			name:   h.Name,
			at:     pt,
			radius: 8,
			style:  chart.Style{StrokeColor: color.WithAlpha(0xff), StrokeWidth: 1, FillColor: color},
		})
	}
	return out, nil
}

// axisRanges fits both axes around every envelope, overlay, and highlight,
// honoring explicit limits when set. Log axes grow multiplicatively, linear
// axes by a fraction of the span.
func axisRanges(p Params, envs, overlay []envelope) (Limits, Limits, error) {
	xmin, xmax := math.Inf(1), math.Inf(-1)
	ymin, ymax := math.Inf(1), math.Inf(-1)

	extend := func(ps geom.PointSet) {
		for _, pt := range ps {
			xmin = math.Min(xmin, pt.X)
			xmax = math.Max(xmax, pt.X)
			ymin = math.Min(ymin, pt.Y)
			ymax = math.Max(ymax, pt.Y)
		}
	}
	for _, env := range envs {
		extend(env.outline)
	}
	for _, env := range overlay {
		extend(env.outline)
	}
	for _, h := range p.Highlights {
		pt, err := h.Point(p.XProp, p.YProp)
		if err != nil {
			return Limits{}, Limits{}, err
		}
		extend(geom.PointSet{pt})
	}
	if xmin > xmax {
		return Limits{}, Limits{}, errors.New(errors.ErrCodeInsufficientPoints, "nothing to fit axes around")
	}

	xr := fitAxis(p.Axes.X, xmin, xmax)
	yr := fitAxis(p.Axes.Y, ymin, ymax)
	if p.XLimits != nil {
		xr = *p.XLimits
	}
	if p.YLimits != nil {
		yr = *p.YLimits
	}
	return xr, yr, nil
}

func fitAxis(s geom.Scale, min, max float64) Limits {
	if s == geom.Logarithmic {
		return Limits{Min: min / 1.2, Max: max * 1.2}
	}
	margin := (max - min) * 0.05
	if margin == 0 {
		margin = 1
	}
	return Limits{Min: min - margin, Max: max + margin}
}

func axisRange(s geom.Scale, l Limits) chart.Range {
	if s == geom.Logarithmic {
		return &chart.LogarithmicRange{Min: l.Min, Max: l.Max}
	}
	return &chart.ContinuousRange{Min: l.Min, Max: l.Max}
}

// aspectRatio estimates how many rendered x units a display unit spans
// relative to y, the correction [geom.Angle] needs to keep labels visually
// parallel to their lines. The plot box is approximated from the style
// dimensions less the axis margins.
func aspectRatio(style Style, xr, yr Limits, axes geom.ScalePair) (float64, error) {
	lo, err := axes.ToDisplay(geom.Point{X: xr.Min, Y: yr.Min})
	if err != nil {
		return 0, err
	}
	hi, err := axes.ToDisplay(geom.Point{X: xr.Max, Y: yr.Max})
	if err != nil {
		return 0, err
	}

	plotW := float64(style.Width) - 120
	plotH := float64(style.Height) - 80
	if plotW <= 0 || plotH <= 0 {
		return 0, errors.New(errors.ErrCodeInvalidStyle, "chart too small for a plot area")
	}

	xSpan := hi.X - lo.X
	ySpan := hi.Y - lo.Y
	if xSpan <= 0 || ySpan <= 0 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "empty axis span")
	}
	return (plotH * xSpan) / (plotW * ySpan), nil
}
