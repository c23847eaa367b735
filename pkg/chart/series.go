package chart

import (
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/omnihola/ashby-plot/pkg/errors"
	"github.com/omnihola/ashby-plot/pkg/geom"
)

// =============================================================================
// Polygon Series - Hull Envelopes and Range Ellipses
// =============================================================================

// polygonSeries draws a closed, filled polygon in data coordinates. It backs
// both category hull envelopes (named, so they get a legend entry) and
// per-material range ellipses (unnamed).
type polygonSeries struct {
	name   string
	points geom.PointSet
	style  chart.Style
}

func (ps polygonSeries) GetName() string           { return ps.name }
func (ps polygonSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (ps polygonSeries) GetStyle() chart.Style     { return ps.style }

func (ps polygonSeries) Validate() error {
	if len(ps.points) < 3 {
		return errors.New(errors.ErrCodeInsufficientPoints,
			"polygon series %q needs at least 3 points, got %d", ps.name, len(ps.points))
	}
	return nil
}

func (ps polygonSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	if len(ps.points) < 3 {
		return
	}
	st := ps.style.InheritFrom(defaults)
	st.WriteDrawingOptionsToRenderer(r)

	r.MoveTo(pixel(ps.points[0], canvasBox, xrange, yrange))
	for _, p := range ps.points[1:] {
		r.LineTo(pixel(p, canvasBox, xrange, yrange))
	}
	r.Close()
	if st.FillColor.IsZero() {
		r.Stroke()
	} else {
		r.FillStroke()
	}
}

// =============================================================================
// Line Series - Guidelines
// =============================================================================

// lineSeries draws an open polyline, used for guideline overlays. Dashing
// comes from the style's StrokeDashArray.
type lineSeries struct {
	name   string
	points geom.PointSet
	style  chart.Style
}

func (ls lineSeries) GetName() string           { return ls.name }
func (ls lineSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (ls lineSeries) GetStyle() chart.Style     { return ls.style }

func (ls lineSeries) Validate() error {
	if len(ls.points) < 2 {
		return errors.New(errors.ErrCodeInsufficientPoints,
			"line series %q needs at least 2 points, got %d", ls.name, len(ls.points))
	}
	return nil
}

func (ls lineSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	if len(ls.points) < 2 {
		return
	}
	st := ls.style.InheritFrom(defaults)
	st.WriteDrawingOptionsToRenderer(r)

	r.MoveTo(pixel(ls.points[0], canvasBox, xrange, yrange))
	for _, p := range ls.points[1:] {
		r.LineTo(pixel(p, canvasBox, xrange, yrange))
	}
	r.Stroke()
}

// =============================================================================
// Marker Series - Scatter Points and Highlight Stars
// =============================================================================

// dotSeries draws filled circles at each point, used for value datasets.
type dotSeries struct {
	name   string
	points geom.PointSet
	radius float64
	style  chart.Style
}

func (ds dotSeries) GetName() string           { return ds.name }
func (ds dotSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (ds dotSeries) GetStyle() chart.Style     { return ds.style }

func (ds dotSeries) Validate() error {
	if len(ds.points) == 0 {
		return errors.New(errors.ErrCodeInsufficientPoints, "dot series %q is empty", ds.name)
	}
	return nil
}

func (ds dotSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	st := ds.style.InheritFrom(defaults)
	st.WriteDrawingOptionsToRenderer(r)

	radius := ds.radius
	if radius <= 0 {
		radius = 3
	}
	for _, p := range ds.points {
		x, y := pixel(p, canvasBox, xrange, yrange)
		r.Circle(radius, x, y)
		r.FillStroke()
	}
}

// starSeries draws a five-pointed star marker, used for highlighted
// materials so they stand out against the dot scatter.
type starSeries struct {
	name   string
	at     geom.Point
	radius float64
	style  chart.Style
}

func (ss starSeries) GetName() string           { return ss.name }
func (ss starSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (ss starSeries) GetStyle() chart.Style     { return ss.style }

func (ss starSeries) Validate() error { return nil }

func (ss starSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	st := ss.style.InheritFrom(defaults)
	st.WriteDrawingOptionsToRenderer(r)

	cx, cy := pixel(ss.at, canvasBox, xrange, yrange)
	outer := ss.radius
	if outer <= 0 {
		outer = 8
	}
	inner := outer * 0.4

	// Ten alternating outer/inner vertices, tip pointing up.
	for i := 0; i < 10; i++ {
		radius := outer
		if i%2 == 1 {
			radius = inner
		}
		theta := -math.Pi/2 + float64(i)*math.Pi/5
		x := cx + int(math.Round(radius*math.Cos(theta)))
		y := cy + int(math.Round(radius*math.Sin(theta)))
		if i == 0 {
			r.MoveTo(x, y)
		} else {
			r.LineTo(x, y)
		}
	}
	r.Close()
	r.FillStroke()
}

// =============================================================================
// Label Series - Rotated Annotations
// =============================================================================

// labelSeries draws rotation-aligned text annotations. Annotation angles
// follow the mathematical convention (counter-clockwise positive); the
// renderer measures rotation clockwise because pixel y grows downward, so
// the sign flips here.
type labelSeries struct {
	annotations []geom.Annotation
	style       chart.Style
}

func (ls labelSeries) GetName() string           { return "" }
func (ls labelSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (ls labelSeries) GetStyle() chart.Style     { return ls.style }

func (ls labelSeries) Validate() error { return nil }

func (ls labelSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	st := ls.style.InheritFrom(defaults)
	st.WriteTextOptionsToRenderer(r)
	defer r.ClearTextRotation()

	for _, a := range ls.annotations {
		if a.Text == "" {
			continue
		}
		x, y := pixel(a.Anchor, canvasBox, xrange, yrange)
		r.SetTextRotation(-a.AngleDegrees * math.Pi / 180)
		r.Text(a.Text, x, y-4)
		r.ClearTextRotation()
	}
}

// pixel maps a data-space point onto the canvas.
func pixel(p geom.Point, canvasBox chart.Box, xrange, yrange chart.Range) (int, int) {
	return canvasBox.Left + xrange.Translate(p.X), canvasBox.Bottom - yrange.Translate(p.Y)
}

// parseColor resolves a highlight color given as a common color name or a
// hex string like "#1f77b4".
func parseColor(s string) (drawing.Color, error) {
	switch s {
	case "black":
		return drawing.ColorBlack, nil
	case "white":
		return drawing.ColorWhite, nil
	case "red":
		return drawing.ColorRed, nil
	case "green":
		return drawing.ColorGreen, nil
	case "blue":
		return drawing.ColorBlue, nil
	case "":
		return drawing.Color{}, errors.New(errors.ErrCodeInvalidInput, "empty color")
	}
	if s[0] == '#' {
		return drawing.ColorFromHex(s[1:]), nil
	}
	return drawing.Color{}, errors.New(errors.ErrCodeInvalidInput,
		"unknown color %q (use a basic color name or '#rrggbb')", s)
}
