package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/geomys/inscribe"
)

// solveOpts holds the command-line flags for the solve command, mirroring
// the solver's Options.
type solveOpts struct {
	angles    []float64
	ratios    []float64
	origins   []string
	minRatio  float64
	maxRatio  float64
	minWidth  float64
	minHeight float64
	nTries    int
	tolerance float64
	seed      uint64
	trace     bool
	output    string
}

// result is the JSON shape printed for a solved rectangle.
type result struct {
	Center  [2]float64    `json:"center"`
	Width   float64       `json:"width"`
	Height  float64       `json:"height"`
	Angle   float64       `json:"angle"`
	Area    float64       `json:"area"`
	Corners [4][2]float64 `json:"corners"`
}

func newSolveCmd() *cobra.Command {
	opts := solveOpts{}

	cmd := &cobra.Command{
		Use:   "solve [polygon-file]",
		Short: "Find the largest rectangle inscribed in a polygon",
		Long: `Find the largest rectangle inscribed in a polygon.

The polygon is read from the given file, or from stdin when no file is
given. Accepted formats are a JSON coordinate array [[x,y],...] and a
GeoJSON Polygon or Feature.

Examples:
  inscribe solve region.json
  inscribe solve --angle 0 --aspect-ratio 1.5 region.geojson
  cat region.json | inscribe solve --seed 42`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runSolve(c, &opts, args)
		},
	}

	cmd.Flags().Float64SliceVar(&opts.angles, "angle", nil, "candidate rotation angles in degrees (default: sweep -90..90 by 5)")
	cmd.Flags().Float64SliceVar(&opts.ratios, "aspect-ratio", nil, "explicit width/height ratios to try")
	cmd.Flags().StringArrayVar(&opts.origins, "origin", nil, "candidate center point as x,y (repeatable; disables sampling)")
	cmd.Flags().Float64Var(&opts.minRatio, "min-aspect-ratio", 0, "lower bound for derived aspect ratios (default 1)")
	cmd.Flags().Float64Var(&opts.maxRatio, "max-aspect-ratio", 0, "upper bound for derived aspect ratios (default 15)")
	cmd.Flags().Float64Var(&opts.minWidth, "min-width", 0, "minimum rectangle width")
	cmd.Flags().Float64Var(&opts.minHeight, "min-height", 0, "minimum rectangle height")
	cmd.Flags().IntVar(&opts.nTries, "tries", 0, "number of center points to sample (default 20)")
	cmd.Flags().Float64Var(&opts.tolerance, "tolerance", 0, "simplification tolerance as a fraction of the bounding box (default 0.02, negative disables)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for center sampling (0 uses a random seed)")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "log intermediate search events at debug level")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

func runSolve(cmd *cobra.Command, opts *solveOpts, args []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	poly, err := readPolygon(in)
	if err != nil {
		return err
	}
	logger.Debugf("Read polygon with %d vertices", len(poly))

	sopts := inscribe.Options{
		Angles:         opts.angles,
		AspectRatios:   opts.ratios,
		MinAspectRatio: opts.minRatio,
		MaxAspectRatio: opts.maxRatio,
		MinWidth:       opts.minWidth,
		MinHeight:      opts.minHeight,
		NTries:         opts.nTries,
		Tolerance:      opts.tolerance,
	}
	for _, s := range opts.origins {
		pt, err := parsePoint(s)
		if err != nil {
			return err
		}
		sopts.Origins = append(sopts.Origins, pt)
	}
	if opts.seed != 0 {
		sopts.Rand = rand.New(rand.NewPCG(opts.seed, 0))
	}
	if opts.trace {
		sopts.Trace = &inscribe.Trace{
			Simplified: func(p inscribe.Polygon) {
				logger.Debugf("Simplified polygon to %d vertices", len(p))
			},
			Origins: func(pts []inscribe.Point) {
				logger.Debugf("Searching %d candidate centers", len(pts))
			},
			Probe: func(c inscribe.Candidate, contained bool) {
				logger.Debugf("Probed %gx%g at %v angle %g: contained=%t",
					c.Width, c.Height, c.Center, c.Angle, contained)
			},
		}
	}

	best, err := inscribe.LargestRect(poly, sopts)
	if err != nil {
		return err
	}
	logger.Infof("Best rectangle: %g × %g at %v, angle %g°, area %g",
		best.Width, best.Height, best.Center, best.Angle, best.Area)

	out := cmd.OutOrStdout()
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return writeResult(out, best)
}

func writeResult(w io.Writer, c inscribe.Candidate) error {
	res := result{
		Center: [2]float64{c.Center.X, c.Center.Y},
		Width:  c.Width,
		Height: c.Height,
		Angle:  c.Angle,
		Area:   c.Area,
	}
	for i, corner := range c.Corners {
		res.Corners[i] = [2]float64{corner.X, corner.Y}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}
