package materials

import (
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/omnihola/ashby-plot/pkg/errors"
)

// Palette maps material categories to their chart colors.
type Palette map[string]drawing.Color

// DefaultPalette returns the conventional category colors for Ashby charts.
func DefaultPalette() Palette {
	return Palette{
		"Foams":                 drawing.Color{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}, // blue
		"Elastomers":            drawing.Color{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}, // orange
		"Natural materials":     drawing.Color{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}, // green
		"Polymers":              drawing.Color{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}, // red
		"Nontechnical ceramics": drawing.Color{R: 0x94, G: 0x67, B: 0xbd, A: 0xff}, // purple
		"Composites":            drawing.Color{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff}, // brown
		"Technical ceramics":    drawing.Color{R: 0xe3, G: 0x77, B: 0xc2, A: 0xff}, // pink
		"Metals":                drawing.Color{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff}, // grey
	}
}

// Lookup resolves a category's color. A category without an assigned color
// is an UNKNOWN_CATEGORY error; the original data file must be fixed or the
// palette extended, matching how missing colors are treated on ingestion.
func (p Palette) Lookup(category string) (drawing.Color, error) {
	c, ok := p[category]
	if !ok {
		return drawing.Color{}, errors.New(errors.ErrCodeUnknownCategory,
			"category %q has no assigned color; extend the palette", category)
	}
	return c, nil
}

// Validate checks that every category in cats has a color assigned.
func (p Palette) Validate(cats []string) error {
	for _, c := range cats {
		if _, err := p.Lookup(c); err != nil {
			return err
		}
	}
	return nil
}
