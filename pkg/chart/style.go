package chart

import (
	"github.com/BurntSushi/toml"

	"github.com/omnihola/ashby-plot/pkg/errors"
)

// Style preset names accepted by [ParseStyle].
const (
	PresetPublication  = "publication"
	PresetPresentation = "presentation"
)

// Style holds the visual parameters of a chart. Values are plain data;
// treat a Style as immutable and derive variants by copying.
type Style struct {
	Width  int
	Height int

	TitleFontSize      float64
	AxisFontSize       float64
	LegendFontSize     float64
	AnnotationFontSize float64

	StrokeWidth float64
	// FillAlpha is the hull fill opacity (0 transparent, 255 opaque).
	FillAlpha uint8

	Grid bool
}

// Publication returns the compact preset used for print figures.
func Publication() Style {
	return Style{
		Width:              960,
		Height:             720,
		TitleFontSize:      14,
		AxisFontSize:       12,
		LegendFontSize:     11,
		AnnotationFontSize: 10,
		StrokeWidth:        1.5,
		FillAlpha:          0x59,
		Grid:               true,
	}
}

// Presentation returns the large-type preset for slides.
func Presentation() Style {
	return Style{
		Width:              1280,
		Height:             960,
		TitleFontSize:      20,
		AxisFontSize:       16,
		LegendFontSize:     15,
		AnnotationFontSize: 14,
		StrokeWidth:        2.5,
		FillAlpha:          0x66,
		Grid:               true,
	}
}

// ParseStyle resolves a preset name to its Style.
func ParseStyle(name string) (Style, error) {
	switch name {
	case PresetPublication:
		return Publication(), nil
	case PresetPresentation:
		return Presentation(), nil
	default:
		return Style{}, errors.New(errors.ErrCodeInvalidStyle,
			"unknown style preset %q (must be 'publication' or 'presentation')", name)
	}
}

// styleOverrides mirrors Style with optional fields for TOML decoding.
// Absent keys keep the base preset's value.
type styleOverrides struct {
	Width              *int     `toml:"width"`
	Height             *int     `toml:"height"`
	TitleFontSize      *float64 `toml:"title_font_size"`
	AxisFontSize       *float64 `toml:"axis_font_size"`
	LegendFontSize     *float64 `toml:"legend_font_size"`
	AnnotationFontSize *float64 `toml:"annotation_font_size"`
	StrokeWidth        *float64 `toml:"stroke_width"`
	FillAlpha          *uint8   `toml:"fill_alpha"`
	Grid               *bool    `toml:"grid"`
}

// LoadStyle reads TOML overrides from path and applies them on top of base.
func LoadStyle(path string, base Style) (Style, error) {
	var o styleOverrides
	if _, err := toml.DecodeFile(path, &o); err != nil {
		return Style{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "load style %s", path)
	}

	s := base
	if o.Width != nil {
		s.Width = *o.Width
	}
	if o.Height != nil {
		s.Height = *o.Height
	}
	if o.TitleFontSize != nil {
		s.TitleFontSize = *o.TitleFontSize
	}
	if o.AxisFontSize != nil {
		s.AxisFontSize = *o.AxisFontSize
	}
	if o.LegendFontSize != nil {
		s.LegendFontSize = *o.LegendFontSize
	}
	if o.AnnotationFontSize != nil {
		s.AnnotationFontSize = *o.AnnotationFontSize
	}
	if o.StrokeWidth != nil {
		s.StrokeWidth = *o.StrokeWidth
	}
	if o.FillAlpha != nil {
		s.FillAlpha = *o.FillAlpha
	}
	if o.Grid != nil {
		s.Grid = *o.Grid
	}
	return s.validate()
}

func (s Style) validate() (Style, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return Style{}, errors.New(errors.ErrCodeInvalidStyle,
			"chart dimensions must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.StrokeWidth <= 0 {
		return Style{}, errors.New(errors.ErrCodeInvalidStyle,
			"stroke width must be positive, got %v", s.StrokeWidth)
	}
	return s, nil
}
