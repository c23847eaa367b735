package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/omnihola/ashby-plot/pkg/chart"
	"github.com/omnihola/ashby-plot/pkg/errors"
	"github.com/omnihola/ashby-plot/pkg/geom"
	"github.com/omnihola/ashby-plot/pkg/pipeline"
)

// plotOpts holds the command-line flags for the plot command.
// These options mirror pipeline.Options; parsing and validation happen in
// the pipeline so embedding programs get identical behavior.
type plotOpts struct {
	xProperty   string   // property for the x axis
	yProperty   string   // property for the y axis
	kind        string   // dataset kind: "ranges" or "values"
	formats     []string // output formats: "png", "svg"
	outputDir   string   // figure output directory
	stylePreset string   // visual preset: "publication" or "presentation"
	styleFile   string   // TOML style overrides
	xScale      string   // x axis scale: "log" or "linear"
	yScale      string   // y axis scale
	title       string   // chart title
	hullScale   float64  // hull expansion factor around the centroid
	pad         float64  // absolute pad distance; 0 = scale-relative
	interpolate int      // smoothed points per hull
	method      string   // interpolation: "linear", "quadratic", "cubic"
	guidelines  []string // guideline specs, "power=..,intercept=..,from=..,to=..[,label=..][,anchor=x:y]"
	highlights  string   // CSV of individually highlighted materials
	unitCells   string   // secondary dataset overlaid as dashed envelopes
	xLimits     string   // explicit x range "min:max"
	yLimits     string   // explicit y range "min:max"
	pick        bool     // pick axis properties interactively
}

// plotCommand creates the plot command for rendering Ashby charts.
//
// Default settings:
//   - axes: log-log (the Ashby chart convention)
//   - hull scale 1.1 with scale-relative padding, cubic smoothing
//   - style: publication preset, PNG output under figures/
func (c *CLI) plotCommand() *cobra.Command {
	var formatsStr string
	opts := plotOpts{}

	cmd := &cobra.Command{
		Use:   "plot [file]",
		Short: "Render an Ashby chart from a material data file",
		Long: `Plot loads a material data file (CSV or XLSX), computes one convex hull
envelope per material category in the chosen property plane, and renders
the chart to figures on disk.

Range data files carry "<Property> low"/"<Property> high" column pairs and
draw an ellipse per material; value files carry single "<Property>" columns
and draw scatter points.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			return c.runPlot(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.xProperty, "x", "", "property for the x axis (e.g. \"Density\")")
	cmd.Flags().StringVar(&opts.yProperty, "y", "", "property for the y axis (e.g. \"Young Modulus\")")
	cmd.Flags().StringVar(&opts.kind, "kind", "", "dataset kind: ranges (default), values")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), svg (comma-separated)")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "figure output directory (default \"figures\")")
	cmd.Flags().StringVar(&opts.stylePreset, "style", "", "style preset: publication (default), presentation")
	cmd.Flags().StringVar(&opts.styleFile, "style-file", "", "TOML file with style overrides")
	cmd.Flags().StringVar(&opts.xScale, "x-scale", "", "x axis scale: log (default), linear")
	cmd.Flags().StringVar(&opts.yScale, "y-scale", "", "y axis scale: log (default), linear")
	cmd.Flags().StringVar(&opts.title, "title", "", "chart title")
	cmd.Flags().Float64Var(&opts.hullScale, "hull-scale", 0, "hull expansion factor (default 1.1)")
	cmd.Flags().Float64Var(&opts.pad, "pad", 0, "absolute hull pad distance (default: scale-relative)")
	cmd.Flags().IntVar(&opts.interpolate, "interpolate", 0, "smoothed points per hull (default 1000)")
	cmd.Flags().StringVar(&opts.method, "method", "", "hull smoothing: cubic (default), quadratic, linear")
	cmd.Flags().StringArrayVar(&opts.guidelines, "guideline", nil, "guideline spec \"power=0.5,intercept=1,from=100,to=10000[,label=...][,anchor=x:y]\" (repeatable)")
	cmd.Flags().StringVar(&opts.highlights, "highlights", "", "CSV of highlighted materials (Name, Color, property columns)")
	cmd.Flags().StringVar(&opts.unitCells, "unit-cells", "", "secondary data file overlaid as dashed envelopes")
	cmd.Flags().StringVar(&opts.xLimits, "x-limits", "", "explicit x range \"min:max\"")
	cmd.Flags().StringVar(&opts.yLimits, "y-limits", "", "explicit y range \"min:max\"")
	cmd.Flags().BoolVar(&opts.pick, "pick", false, "pick axis properties interactively")

	return cmd
}

func (c *CLI) runPlot(cmd *cobra.Command, dataFile string, opts *plotOpts) error {
	ctx := withLogger(cmd.Context(), c.Logger)

	pipeOpts, err := buildPipelineOptions(dataFile, opts)
	if err != nil {
		return err
	}
	pipeOpts.Logger = c.Logger

	runner := c.newRunner()

	// Interactive property selection loads the dataset first so the picker
	// can offer the columns that are actually present.
	if opts.pick || opts.xProperty == "" || opts.yProperty == "" {
		ds, _, _, err := runner.Load(ctx, *pipeOpts)
		if err != nil {
			return err
		}
		x, y, err := pickProperties(ds, opts.xProperty, opts.yProperty)
		if err != nil {
			return err
		}
		pipeOpts.XProperty, pipeOpts.YProperty = x, y
	}

	prog := newProgress(c.Logger)
	spin := newSpinnerWithContext(ctx, "Plotting "+pipeOpts.YProperty+" against "+pipeOpts.XProperty+"...")
	spin.Start()
	result, err := runner.Execute(ctx, *pipeOpts)
	spin.Stop()
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}
	prog.done("Rendered " + strconv.Itoa(len(result.Artifacts)) + " figure(s)")

	printSuccess("Plotted %s vs %s", pipeOpts.YProperty, pipeOpts.XProperty)
	printStats(result.Stats.RecordCount, result.Stats.CategoryCount)
	for _, path := range result.Paths {
		printFile(path)
	}
	return nil
}

// buildPipelineOptions translates CLI flags into pipeline options.
func buildPipelineOptions(dataFile string, opts *plotOpts) (*pipeline.Options, error) {
	guidelines, err := parseGuidelines(opts.guidelines)
	if err != nil {
		return nil, err
	}
	xLimits, err := parseLimits(opts.xLimits)
	if err != nil {
		return nil, err
	}
	yLimits, err := parseLimits(opts.yLimits)
	if err != nil {
		return nil, err
	}

	return &pipeline.Options{
		DataFile:      dataFile,
		Kind:          opts.kind,
		UnitCellFile:  opts.unitCells,
		HighlightFile: opts.highlights,
		XProperty:     opts.xProperty,
		YProperty:     opts.yProperty,
		XScale:        opts.xScale,
		YScale:        opts.yScale,
		Title:         opts.title,
		HullScale:     opts.hullScale,
		Pad:           opts.pad,
		Interpolate:   opts.interpolate,
		Method:        opts.method,
		Guidelines:    guidelines,
		XLimits:       xLimits,
		YLimits:       yLimits,
		Formats:       opts.formats,
		StylePreset:   opts.stylePreset,
		StyleFile:     opts.styleFile,
		OutputDir:     opts.outputDir,
	}, nil
}

// parseFormats splits a comma-separated format list.
func parseFormats(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// parseGuidelines parses repeated --guideline specs.
func parseGuidelines(specs []string) ([]chart.Guideline, error) {
	var out []chart.Guideline
	for _, spec := range specs {
		g, err := parseGuideline(spec)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

// parseGuideline parses one "key=value,..." guideline spec. Required keys
// are power, intercept, from, and to; label and anchor are optional.
func parseGuideline(spec string) (chart.Guideline, error) {
	var g chart.Guideline
	seen := map[string]bool{}
	for _, kv := range strings.Split(spec, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(kv), "=")
		if !ok {
			return chart.Guideline{}, errors.New(errors.ErrCodeInvalidInput,
				"guideline %q: %q is not key=value", spec, kv)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "label":
			g.Label = value
			seen[key] = true
			continue
		case "anchor":
			anchor, err := parseAnchor(spec, value)
			if err != nil {
				return chart.Guideline{}, err
			}
			g.Anchor = anchor
			seen[key] = true
			continue
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return chart.Guideline{}, errors.New(errors.ErrCodeInvalidInput,
				"guideline %q: %q is not a number for %q", spec, value, key)
		}
		switch key {
		case "power":
			g.Power = f
		case "intercept":
			g.Intercept = f
		case "from":
			g.XMin = f
		case "to":
			g.XMax = f
		default:
			return chart.Guideline{}, errors.New(errors.ErrCodeInvalidInput,
				"guideline %q: unknown key %q", spec, key)
		}
		seen[key] = true
	}
	for _, required := range []string{"power", "intercept", "from", "to"} {
		if !seen[required] {
			return chart.Guideline{}, errors.New(errors.ErrCodeInvalidInput,
				"guideline %q: missing %q", spec, required)
		}
	}
	return g, nil
}

// parseAnchor parses an "x:y" label anchor point.
func parseAnchor(spec, value string) (*geom.Point, error) {
	xs, ys, ok := strings.Cut(value, ":")
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"guideline %q: anchor %q: want \"x:y\"", spec, value)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"guideline %q: anchor %q: bad x %q", spec, value, xs)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"guideline %q: anchor %q: bad y %q", spec, value, ys)
	}
	return &geom.Point{X: x, Y: y}, nil
}

// parseLimits parses an explicit "min:max" axis range. Empty input means
// auto-fit.
func parseLimits(s string) (*chart.Limits, error) {
	if s == "" {
		return nil, nil
	}
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "limits %q: want \"min:max\"", s)
	}
	min, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "limits %q: bad min %q", s, lo)
	}
	max, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "limits %q: bad max %q", s, hi)
	}
	if min >= max {
		return nil, errors.New(errors.ErrCodeInvalidInput, "limits %q: min >= max", s)
	}
	return &chart.Limits{Min: min, Max: max}, nil
}
