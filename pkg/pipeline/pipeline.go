// Package pipeline provides the core chart-generation pipeline.
//
// This package implements the complete load → build → render pipeline
// shared by the CLI and any embedding program. Centralizing this logic
// keeps behavior consistent across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read material data (and optional overlays) from spreadsheet files
//  2. Build: Compute hull envelopes and assemble the chart
//  3. Render: Encode the chart in the requested formats and write figures
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    DataFile:  "material_data.xlsx",
//	    XProperty: "Density",
//	    YProperty: "Young Modulus",
//	    Formats:   []string{"png"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/omnihola/ashby-plot/pkg/chart"
	"github.com/omnihola/ashby-plot/pkg/errors"
	"github.com/omnihola/ashby-plot/pkg/geom"
	"github.com/omnihola/ashby-plot/pkg/materials"
)

// =============================================================================
// Default Values - Single Source of Truth for the CLI
// =============================================================================

const (
	// DefaultKind is the dataset kind assumed when none is given.
	DefaultKind = string(materials.KindRanges)

	// DefaultScale is the axis scale Ashby charts conventionally use.
	DefaultScale = "log"

	// DefaultStylePreset is the visual preset applied when none is given.
	DefaultStylePreset = chart.PresetPublication
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	chart.FormatPNG: true,
	chart.FormatSVG: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the chart pipeline.
// This struct supports JSON serialization for embedding programs.
type Options struct {
	// Load options
	DataFile      string `json:"data_file"`
	Kind          string `json:"kind,omitempty"`
	UnitCellFile  string `json:"unit_cell_file,omitempty"`
	HighlightFile string `json:"highlight_file,omitempty"`

	// Build options
	XProperty   string            `json:"x_property"`
	YProperty   string            `json:"y_property"`
	XScale      string            `json:"x_scale,omitempty"`
	YScale      string            `json:"y_scale,omitempty"`
	Title       string            `json:"title,omitempty"`
	HullScale   float64           `json:"hull_scale,omitempty"`
	Pad         float64           `json:"pad,omitempty"` // absolute pad distance; 0 = scale-relative
	Interpolate int               `json:"interpolate,omitempty"`
	Method      string            `json:"method,omitempty"`
	Guidelines  []chart.Guideline `json:"guidelines,omitempty"`
	XLimits     *chart.Limits     `json:"x_limits,omitempty"`
	YLimits     *chart.Limits     `json:"y_limits,omitempty"`

	// Render options
	Formats     []string `json:"formats,omitempty"`
	StylePreset string   `json:"style_preset,omitempty"`
	StyleFile   string   `json:"style_file,omitempty"`
	OutputDir   string   `json:"output_dir,omitempty"`
	// NoWrite keeps artifacts in memory without touching the filesystem.
	NoWrite bool `json:"no_write,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Dataset is the loaded material data.
	Dataset *materials.Dataset

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Paths lists the figure files written, in format order.
	Paths []string

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RecordCount   int
	CategoryCount int
	LoadTime      time.Duration
	BuildTime     time.Duration
	RenderTime    time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that an output format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: png, svg)", format)
	}
	return nil
}

// ValidateFormats checks that all output formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForBuild(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for the load stage.
func (o *Options) ValidateForLoad() error {
	if o.DataFile == "" {
		return errors.New(errors.ErrCodeInvalidInput, "data file is required")
	}
	if o.Kind == "" {
		o.Kind = DefaultKind
	}
	if _, err := materials.ParseKind(o.Kind); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// ValidateForBuild checks required fields for the build stage.
func (o *Options) ValidateForBuild() error {
	if err := errors.ValidatePropertyName(o.XProperty); err != nil {
		return err
	}
	if err := errors.ValidatePropertyName(o.YProperty); err != nil {
		return err
	}
	if o.XScale == "" {
		o.XScale = DefaultScale
	}
	if o.YScale == "" {
		o.YScale = DefaultScale
	}
	if _, err := geom.ParseScale(o.XScale); err != nil {
		return err
	}
	if _, err := geom.ParseScale(o.YScale); err != nil {
		return err
	}
	if o.Method != "" {
		if _, err := geom.ParseMethod(o.Method); err != nil {
			return err
		}
	}
	if o.Pad < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "pad distance must be >= 0, got %v", o.Pad)
	}
	return nil
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{chart.FormatPNG}
	}
	if o.StylePreset == "" {
		o.StylePreset = DefaultStylePreset
	}
	if _, err := chart.ParseStyle(o.StylePreset); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

// Axes resolves the configured axis scales.
func (o *Options) Axes() (geom.ScalePair, error) {
	x, err := geom.ParseScale(o.XScale)
	if err != nil {
		return geom.ScalePair{}, err
	}
	y, err := geom.ParseScale(o.YScale)
	if err != nil {
		return geom.ScalePair{}, err
	}
	return geom.ScalePair{X: x, Y: y}, nil
}

// Padding resolves the hull padding mode: an explicit pad distance when
// set, scale-relative otherwise.
func (o *Options) Padding() geom.Padding {
	if o.Pad > 0 {
		return geom.AbsolutePadding(o.Pad)
	}
	return geom.ScaleRelativePadding()
}

// ResolveStyle loads the visual style: the preset, optionally overridden
// from a TOML file.
func (o *Options) ResolveStyle() (chart.Style, error) {
	base, err := chart.ParseStyle(o.StylePreset)
	if err != nil {
		return chart.Style{}, err
	}
	if o.StyleFile == "" {
		return base, nil
	}
	return chart.LoadStyle(o.StyleFile, base)
}
