// Command billiards runs orbits and preimage computations from the command
// line. Results are printed as "x y" lines, with a blank line between
// segments or curves.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/osuushi/billiards"
	"github.com/osuushi/billiards/config"
	"github.com/osuushi/billiards/dbg"
	"github.com/osuushi/billiards/geom"
	"github.com/osuushi/billiards/sketch"
	"github.com/osuushi/billiards/table"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Infinite rays are printed out to this distance from their start.
const rayLength = 1000

var (
	app        = kingpin.New("billiards", "Outer and inner billiards on Euclidean, spherical and hyperbolic tables.")
	configPath = app.Flag("config", "YAML run configuration.").Short('c').ExistingFile()
	svgPath    = app.Flag("svg", "Use the first polygon of an SVG file as the table.").ExistingFile()
	pngPath    = app.Flag("png", "Also draw the result to this PNG file.").String()
	catImage   = app.Flag("cat", "Also draw the result inline (iTerm only).").Bool()
	scale      = app.Flag("scale", "Pixels per unit for drawings.").Default("100").Float64()
	debug      = app.Flag("debug", "Print debug output to stderr.").Bool()

	orbitCmd        = app.Command("orbit", "Run an orbit.")
	orbitGenerator  = orbitCmd.Flag("generator", "area or length.").String()
	orbitDuality    = orbitCmd.Flag("duality", "outer or inner.").String()
	orbitIterations = orbitCmd.Flag("iterations", "Number of steps.").Short('n').Default("-1").Int()
	orbitChart      = orbitCmd.Flag("chart", "Plot the distance of each orbit point from the origin.").Bool()

	preimagesCmd        = app.Command("preimages", "Compute preimages of the singular set.")
	preimagesGenerator  = preimagesCmd.Flag("generator", "area or length.").String()
	preimagesIterations = preimagesCmd.Flag("iterations", "Last generation to compute.").Short('n').Default("-1").Int()
	preimagesInterval   = preimagesCmd.Flag("interval", "Only print generations that are multiples of this.").Default("0").Int()
	preimagesTimeout    = preimagesCmd.Flag("timeout", "Stop early and print what was computed.").Duration()

	shapeCmd     = app.Command("shape", "Print the table outline.")
	shapeSamples = shapeCmd.Flag("samples", "Number of boundary samples.").Default("256").Int()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	if *debug {
		dbg.Enabled = true
	}

	cfg, err := loadConfig(command)
	app.FatalIfError(err, "config")
	t, err := billiards.New(cfg.Table)
	app.FatalIfError(err, "table")
	dbg.Dump("table", cfg.Table)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	outline, err := billiards.Shape(t, *shapeSamples)
	app.FatalIfError(err, "shape")
	drawing := &sketch.Sketch{Scale: *scale, Outline: outline}

	switch command {
	case orbitCmd.FullCommand():
		traj, err := runOrbit(cfg, t)
		app.FatalIfError(err, "orbit")
		writePoints(out, traj.Points)
		drawing.Points = traj.Points
		drawing.Circles = traj.Circles
		drawing.Curves = traj.Chords
		if *orbitChart && len(traj.Points) > 0 {
			fmt.Fprintln(os.Stderr, radiusChart(traj.Points))
		}

	case preimagesCmd.FullCommand():
		sing, err := runPreimages(cfg, t)
		if sing == nil {
			app.FatalIfError(err, "preimages")
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "stopped early at generation %d: %v\n", sing.Continuation.Generation(), err)
		}
		for _, seg := range sing.Segments {
			end := seg.End
			if seg.Infinite {
				end = seg.Start.Add(seg.Direction().Scale(rayLength))
			}
			writePoints(out, []geom.Point{seg.Start, end})
			fmt.Fprintln(out)
		}
		for _, curve := range append(sing.Curves, sing.Extras...) {
			writePoints(out, curve)
			fmt.Fprintln(out)
		}
		drawing.Segments = sing.Segments
		drawing.Curves = append(sing.Curves, sing.Extras...)

	case shapeCmd.FullCommand():
		writePoints(out, outline)
	}

	if *pngPath != "" {
		app.FatalIfError(drawing.SavePNG(*pngPath), "png")
	}
	if *catImage {
		out.Flush()
		app.FatalIfError(drawing.Cat(os.Stdout), "cat")
	}
}

// Load the configuration and apply the flags of command on top of it. Flags of
// other commands hold no defaults, so they are left alone.
func loadConfig(command string) (config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadFile(*configPath); err != nil {
			return cfg, err
		}
	}
	if *svgPath != "" {
		f, err := os.Open(*svgPath)
		if err != nil {
			return cfg, errors.Wrap(err, "failed to open svg")
		}
		defer f.Close()
		polygon, err := table.LoadPolygonSVG(f)
		if err != nil {
			return cfg, err
		}
		cfg.Table = billiards.Params{Geometry: billiards.Euclidean, Kind: billiards.PolygonKind, Vertices: polygon.Vertices()}
	}

	switch command {
	case orbitCmd.FullCommand():
		if *orbitGenerator != "" {
			cfg.Orbit.Generator = *orbitGenerator
		}
		if *orbitDuality != "" {
			cfg.Orbit.Duality = *orbitDuality
		}
		if *orbitIterations >= 0 {
			cfg.Orbit.Iterations = *orbitIterations
		}
	case preimagesCmd.FullCommand():
		if *preimagesGenerator != "" {
			cfg.Preimages.Generator = *preimagesGenerator
		}
		if *preimagesIterations >= 0 {
			cfg.Preimages.Iterations = *preimagesIterations
		}
		if *preimagesInterval > 0 {
			cfg.Preimages.Interval = *preimagesInterval
		}
	}
	return cfg, cfg.Validate()
}

func runOrbit(cfg config.Config, t *billiards.Table) (*billiards.Trajectory, error) {
	gen, duality, err := cfg.OrbitMaps()
	if err != nil {
		return nil, err
	}
	return billiards.Orbit(t, cfg.Orbit.Start, gen, duality, cfg.Orbit.Iterations)
}

func runPreimages(cfg config.Config, t *billiards.Table) (*billiards.Singularities, error) {
	req, err := cfg.PreimageRequest()
	if err != nil {
		return nil, err
	}
	ctx := context.Background()
	if *preimagesTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *preimagesTimeout)
		defer cancel()
	}
	start := time.Now()
	sing, err := billiards.Preimages(ctx, t, req)
	dbg.Printf("preimages", "finished in %v", time.Since(start))
	return sing, err
}

func writePoints(w io.Writer, points []geom.Point) {
	for _, p := range points {
		fmt.Fprintf(w, "%g %g\n", p.X, p.Y)
	}
}

func radiusChart(points []geom.Point) string {
	radii := make([]float64, len(points))
	for i, p := range points {
		radii[i] = p.Length()
	}
	return asciigraph.Plot(radii,
		asciigraph.Height(10),
		asciigraph.Width(min(len(radii), 100)),
		asciigraph.Caption("distance from origin by step"))
}
