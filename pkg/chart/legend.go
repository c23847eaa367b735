package chart

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// legend returns a renderable drawing a boxed list of every named series
// in the chart's top-right corner. Unnamed series (range ellipses,
// guidelines, labels) stay out of the legend.
func legend(ch *chart.Chart, fontSize float64) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		var names []string
		var styles []chart.Style
		for _, s := range ch.Series {
			if s.GetName() == "" || s.GetStyle().Hidden {
				continue
			}
			names = append(names, s.GetName())
			styles = append(styles, s.GetStyle())
		}
		if len(names) == 0 {
			return
		}

		r.SetFont(defaults.GetFont())
		r.SetFontColor(chart.DefaultTextColor)
		r.SetFontSize(fontSize)

		var maxWidth, lineHeight int
		for _, n := range names {
			b := r.MeasureText(n)
			if b.Width() > maxWidth {
				maxWidth = b.Width()
			}
			if b.Height() > lineHeight {
				lineHeight = b.Height()
			}
		}

		const swatch = 14
		const pad = 8
		boxWidth := maxWidth + swatch + 3*pad
		boxHeight := len(names)*(lineHeight+pad) + pad
		left := canvasBox.Right - boxWidth - pad
		top := canvasBox.Top + pad

		r.SetFillColor(drawing.ColorWhite.WithAlpha(0xdc))
		r.SetStrokeColor(chart.DefaultAxisColor)
		r.SetStrokeWidth(1)
		r.MoveTo(left, top)
		r.LineTo(left+boxWidth, top)
		r.LineTo(left+boxWidth, top+boxHeight)
		r.LineTo(left, top+boxHeight)
		r.Close()
		r.FillStroke()

		baseline := top + pad + lineHeight
		for i, n := range names {
			st := styles[i]
			fill := st.FillColor
			if fill.IsZero() {
				fill = st.GetStrokeColor()
			}
			r.SetFillColor(fill)
			r.SetStrokeColor(st.GetStrokeColor())
			r.SetStrokeWidth(st.GetStrokeWidth())

			sTop := baseline - swatch
			r.MoveTo(left+pad, sTop)
			r.LineTo(left+pad+swatch, sTop)
			r.LineTo(left+pad+swatch, sTop+swatch)
			r.LineTo(left+pad, sTop+swatch)
			r.Close()
			r.FillStroke()

			r.SetFontColor(chart.DefaultTextColor)
			r.Text(n, left+2*pad+swatch, baseline)
			baseline += lineHeight + pad
		}
	}
}
