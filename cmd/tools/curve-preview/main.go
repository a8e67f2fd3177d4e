// Command curve-preview runs the vector pipeline offline and renders
// the result as a PNG plot and optional HTML report, without any
// window or pointer interaction. Useful for tuning threshold and
// epsilon against a new image.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/inkline-data/sketch.trace/internal/imageio"
	"github.com/inkline-data/sketch.trace/internal/monitor"
	"github.com/inkline-data/sketch.trace/internal/security"
	"github.com/inkline-data/sketch.trace/internal/vision/pipeline"
)

var (
	out           = flag.String("out", "", "Output PNG path (default <image>_curves.png)")
	report        = flag.String("report", "", "Optional HTML report path")
	edgeDump      = flag.String("edge-dump", "", "Optional thinned edge grid PNG path")
	threshold     = flag.Float64("threshold", pipeline.DefaultParams().Threshold, "Binarization cutoff")
	autoThreshold = flag.Bool("auto-threshold", false, "Derive the cutoff from the magnitude histogram (Otsu)")
	epsilon       = flag.Float64("epsilon", pipeline.DefaultParams().Epsilon, "Simplification tolerance")
	minLength     = flag.Float64("min-length", 0, "Drop curves with a shorter arc length")
	noBlur        = flag.Bool("no-blur", false, "Skip the Gaussian pre-filter")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		log.Printf("usage: %s [flags] path/to/image", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	grid, err := imageio.DecodeGray(flag.Arg(0))
	if err != nil {
		log.Fatalf("failed to decode image: %v", err)
	}

	if *out == "" {
		base := strings.TrimSuffix(filepath.Base(flag.Arg(0)), filepath.Ext(flag.Arg(0)))
		*out = security.SanitizeFilename(base) + "_curves.png"
	}

	result, err := pipeline.Vectorize(grid, pipeline.Params{
		Threshold:     *threshold,
		AutoThreshold: *autoThreshold,
		Epsilon:       *epsilon,
		MinLength:     *minLength,
		DisableBlur:   *noBlur,
		Verbose:       true,
	})
	if err != nil {
		log.Fatalf("vectorize failed: %v", err)
	}

	runID := monitor.RunID()
	log.Printf("%s: %d curves at threshold %.4f", runID, len(result.Curves), result.Threshold)

	if err := monitor.PlotCurves(result.Curves, runID, *out); err != nil {
		log.Fatalf("failed to write plot: %v", err)
	}
	log.Printf("wrote %s", *out)

	if *edgeDump != "" {
		if err := imageio.WriteGrayPNG(result.Thinned, *edgeDump); err != nil {
			log.Fatalf("failed to write edge dump: %v", err)
		}
		log.Printf("wrote %s", *edgeDump)
	}
	if *report != "" {
		if err := monitor.WriteReport(result.Curves, runID, *report); err != nil {
			log.Fatalf("failed to write report: %v", err)
		}
		log.Printf("wrote %s", *report)
	}
}
