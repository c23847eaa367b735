package pipeline

import (
	"bytes"
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"
	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/omnihola/ashby-plot/pkg/chart"
	"github.com/omnihola/ashby-plot/pkg/errors"
	"github.com/omnihola/ashby-plot/pkg/geom"
	"github.com/omnihola/ashby-plot/pkg/io"
	"github.com/omnihola/ashby-plot/pkg/materials"
	"github.com/omnihola/ashby-plot/pkg/observability"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, the default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → build → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "invalid options")
	}
	r.applyLogger(&opts)

	result := &Result{Artifacts: make(map[string][]byte)}

	// Stage 1: Load
	loadStart := time.Now()
	ds, highlights, unitCells, err := r.Load(ctx, opts)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "load")
	}
	result.Dataset = ds
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.RecordCount = len(ds.Records)
	result.Stats.CategoryCount = len(ds.Categories())

	r.Logger.Info("loaded material data",
		"records", result.Stats.RecordCount,
		"categories", result.Stats.CategoryCount,
		"duration", result.Stats.LoadTime)

	// Stage 2: Build
	buildStart := time.Now()
	ch, err := r.Build(ctx, ds, highlights, unitCells, opts)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "build")
	}
	result.Stats.BuildTime = time.Since(buildStart)

	r.Logger.Info("assembled chart",
		"x", opts.XProperty,
		"y", opts.YProperty,
		"duration", result.Stats.BuildTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, paths, err := r.Render(ctx, ch, opts)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "render")
	}
	result.Artifacts = artifacts
	result.Paths = paths
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered figures",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads the material dataset plus the optional highlight and unit-cell
// files.
func (r *Runner) Load(ctx context.Context, opts Options) (*materials.Dataset, []materials.HighlightMaterial, *materials.Dataset, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, nil, nil, err
	}
	r.applyLogger(&opts)

	start := time.Now()
	observability.Pipeline().OnLoadStart(ctx, opts.DataFile)

	kind, _ := materials.ParseKind(opts.Kind)
	ds, err := io.Load(opts.DataFile, kind)
	if err != nil {
		observability.Pipeline().OnLoadComplete(ctx, opts.DataFile, 0, time.Since(start), err)
		return nil, nil, nil, err
	}
	ds.DerivePoissonDifference()

	var highlights []materials.HighlightMaterial
	if opts.HighlightFile != "" {
		if highlights, err = io.LoadHighlights(opts.HighlightFile); err != nil {
			observability.Pipeline().OnLoadComplete(ctx, opts.DataFile, len(ds.Records), time.Since(start), err)
			return nil, nil, nil, err
		}
	}

	var unitCells *materials.Dataset
	if opts.UnitCellFile != "" {
		if unitCells, err = io.Load(opts.UnitCellFile, kind); err != nil {
			observability.Pipeline().OnLoadComplete(ctx, opts.DataFile, len(ds.Records), time.Since(start), err)
			return nil, nil, nil, err
		}
		unitCells.DerivePoissonDifference()
	}

	observability.Pipeline().OnLoadComplete(ctx, opts.DataFile, len(ds.Records), time.Since(start), nil)
	return ds, highlights, unitCells, nil
}

// Build assembles the chart from a loaded dataset.
func (r *Runner) Build(ctx context.Context, ds *materials.Dataset, highlights []materials.HighlightMaterial, unitCells *materials.Dataset, opts Options) (*gochart.Chart, error) {
	if err := opts.ValidateForBuild(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	axes, err := opts.Axes()
	if err != nil {
		return nil, err
	}
	style, err := opts.ResolveStyle()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	observability.Pipeline().OnBuildStart(ctx, opts.XProperty, opts.YProperty, len(ds.Categories()))

	ch, err := chart.Build(log.WithContext(ctx, opts.Logger), chart.Params{
		Data:        ds,
		XProp:       materials.Property(opts.XProperty),
		YProp:       materials.Property(opts.YProperty),
		Axes:        axes,
		Style:       style,
		Title:       opts.Title,
		HullScale:   opts.HullScale,
		Padding:     opts.Padding(),
		Interpolate: opts.Interpolate,
		Method:      geom.Method(opts.Method),
		Guidelines:  opts.Guidelines,
		Highlights:  highlights,
		UnitCells:   unitCells,
		XLimits:     opts.XLimits,
		YLimits:     opts.YLimits,
	})
	observability.Pipeline().OnBuildComplete(ctx, opts.XProperty, opts.YProperty, time.Since(start), err)
	return ch, err
}

// Render encodes the chart in every requested format and, unless NoWrite
// is set, writes each figure under the output directory.
func (r *Runner) Render(ctx context.Context, ch *gochart.Chart, opts Options) (map[string][]byte, []string, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, nil, err
	}
	r.applyLogger(&opts)

	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)

	artifacts := make(map[string][]byte, len(opts.Formats))
	var paths []string
	for _, format := range opts.Formats {
		var buf bytes.Buffer
		if err := chart.Render(ch, format, &buf); err != nil {
			observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, nil, err
		}
		artifacts[format] = buf.Bytes()

		if opts.NoWrite {
			continue
		}
		path, err := io.FigurePath(opts.OutputDir,
			materials.Property(opts.XProperty), materials.Property(opts.YProperty), format)
		if err != nil {
			observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, nil, err
		}
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			err = errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
			observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, nil, err
		}
		paths = append(paths, path)
	}

	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
	return artifacts, paths, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
