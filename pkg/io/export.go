package io

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/omnihola/ashby-plot/pkg/errors"
	"github.com/omnihola/ashby-plot/pkg/materials"
)

// DefaultFigureDir is where rendered charts land unless overridden.
const DefaultFigureDir = "figures"

// FigurePath builds the output path for a chart of y against x in the
// given format ("png" or "svg"), creating dir if needed. Property names
// are lowercased and spaces become underscores, e.g.
// figures/young_modulus_vs_density.png.
func FigurePath(dir string, xProp, yProp materials.Property, format string) (string, error) {
	switch format {
	case "png", "svg":
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat,
			"unsupported output format %q (must be 'png' or 'svg')", format)
	}
	if dir == "" {
		dir = DefaultFigureDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "create %s", dir)
	}
	stem := slug(yProp) + "_vs_" + slug(xProp)
	return filepath.Join(dir, stem+"."+format), nil
}

func slug(p materials.Property) string {
	s := strings.ToLower(string(p))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "/", "_")
	return s
}
