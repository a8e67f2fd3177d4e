// Command sketchtrace vectorizes a raster image into simplified
// polylines and replays them as pointer strokes on a target window.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/inkline-data/sketch.trace/internal/config"
	"github.com/inkline-data/sketch.trace/internal/drawer"
	"github.com/inkline-data/sketch.trace/internal/imageio"
	"github.com/inkline-data/sketch.trace/internal/inputwatch"
	"github.com/inkline-data/sketch.trace/internal/monitor"
	"github.com/inkline-data/sketch.trace/internal/security"
	"github.com/inkline-data/sketch.trace/internal/version"
	"github.com/inkline-data/sketch.trace/internal/vision/pipeline"
)

var (
	configPath    = flag.String("config", "", "Path to JSON tuning config (optional)")
	threshold     = flag.Float64("threshold", config.DefaultThreshold, "Binarization cutoff on the thinned edge magnitude")
	autoThreshold = flag.Bool("auto-threshold", false, "Derive the cutoff from the magnitude histogram (Otsu)")
	epsilon       = flag.Float64("epsilon", config.DefaultEpsilon, "Simplification tolerance in normalized units (>= 0)")
	minLength     = flag.Float64("min-length", config.DefaultMinLength, "Drop curves with a shorter arc length")
	noBlur        = flag.Bool("no-blur", false, "Skip the Gaussian pre-filter")
	window        = flag.String("window", "", "Target window class (overrides config)")
	delay         = flag.Duration("delay", 0, "Inter-step gesture delay (overrides config)")
	edgeDump      = flag.String("edge-dump", "", "Write the thinned edge grid to this path as grayscale PNG")
	previewPath   = flag.String("preview", "", "Render the traced curves to this path as PNG")
	reportPath    = flag.String("report", "", "Write an HTML trace report to this path")
	dryRun        = flag.Bool("dry-run", false, "Vectorize and write diagnostics without touching the pointer")
	yes           = flag.Bool("yes", false, "Skip the confirmation prompt")
	verbose       = flag.Bool("v", false, "Verbose logging")
	showVersion   = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("sketchtrace %s (%s, built %s)\n", version.Version, version.GitSHA, version.BuildTime)
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] path/to/image\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	imagePath := flag.Arg(0)

	cfg := config.EmptyTuningConfig()
	if *configPath != "" {
		loaded, err := config.LoadTuningConfig(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		cfg = loaded
	}
	params := resolveParams(cfg)

	grid, err := imageio.DecodeGray(imagePath)
	if err != nil {
		log.Fatalf("something wrong with the image at %s: %v", imagePath, err)
	}

	result, err := pipeline.Vectorize(grid, params)
	if err != nil {
		log.Fatalf("vectorize failed: %v", err)
	}

	runID := monitor.RunID()
	log.Printf("%s: traced %d curves from %s (%dx%d, threshold %.4f)",
		runID, len(result.Curves), imagePath, grid.W, grid.H, result.Threshold)

	for _, p := range []string{*edgeDump, *previewPath, *reportPath} {
		if p == "" {
			continue
		}
		if err := security.ValidateArtifactPath(p); err != nil {
			log.Fatalf("refusing artifact path: %v", err)
		}
	}

	if *edgeDump != "" {
		if err := imageio.WriteGrayPNG(result.Thinned, *edgeDump); err != nil {
			log.Fatalf("failed to write edge dump: %v", err)
		}
		log.Printf("wrote edge dump to %s", *edgeDump)
	}
	if *previewPath != "" {
		if err := monitor.PlotCurves(result.Curves, runID, *previewPath); err != nil {
			log.Fatalf("failed to write preview: %v", err)
		}
		log.Printf("wrote preview to %s", *previewPath)
	}
	if *reportPath != "" {
		if err := monitor.WriteReport(result.Curves, runID, *reportPath); err != nil {
			log.Fatalf("failed to write report: %v", err)
		}
		log.Printf("wrote report to %s", *reportPath)
	}

	if *dryRun {
		return
	}
	if len(result.Curves) == 0 {
		log.Printf("no curves to draw; try lowering -threshold")
		return
	}

	windowClass := cfg.GetWindowClass()
	if *window != "" {
		windowClass = *window
	}
	gestureDelay := cfg.GetGestureDelay()
	if isFlagSet("delay") {
		gestureDelay = *delay
	}

	d, err := drawer.New(drawer.NewRealCommandBuilder(), windowClass, cfg.GetCanvas(), gestureDelay, *verbose)
	if err != nil {
		log.Fatalf("window not found, is it open and visible? (%v)", err)
	}

	estimate := d.Estimate(len(result.Curves))
	fmt.Printf("with %d curves at %v per step it will take about %v to draw\n",
		len(result.Curves), d.Delay(), estimate.Round(time.Second))
	fmt.Println("you can pause with P and quit with Q at any time")

	if !*yes && !confirm() {
		return
	}

	if err := d.Foreground(); err != nil {
		log.Printf("failed to foreground window: %v", err)
	}

	watcher, err := inputwatch.Start()
	if err != nil {
		log.Printf("keyboard watcher unavailable (%v); drawing without pause/abort keys", err)
		watcher = nil
	} else {
		defer watcher.Stop()
	}

	drawn := 0
	started := time.Now()
	for _, c := range result.Curves {
		if watcher != nil && !checkSignals(watcher) {
			log.Printf("abort requested, stopping after %d of %d curves", drawn, len(result.Curves))
			return
		}
		if err := d.DrawCurve(c); err != nil {
			log.Fatalf("failed to draw curve: %v", err)
		}
		drawn++
	}
	log.Printf("done: drew %d curves in %v", drawn, time.Since(started).Round(time.Second))
}

// resolveParams merges the tuning config with any explicitly set
// flags; flags win.
func resolveParams(cfg *config.TuningConfig) pipeline.Params {
	params := pipeline.Params{
		Threshold:     cfg.GetThreshold(),
		AutoThreshold: cfg.GetAutoThreshold(),
		Epsilon:       cfg.GetEpsilon(),
		MinLength:     cfg.GetMinimumLength(),
		DisableBlur:   cfg.GetBlurDisable(),
		Verbose:       *verbose,
	}
	if isFlagSet("threshold") {
		params.Threshold = *threshold
	}
	if isFlagSet("auto-threshold") {
		params.AutoThreshold = *autoThreshold
	}
	if isFlagSet("epsilon") {
		params.Epsilon = *epsilon
	}
	if isFlagSet("min-length") {
		params.MinLength = *minLength
	}
	if isFlagSet("no-blur") {
		params.DisableBlur = *noBlur
	}
	return params
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// confirm asks for a y/N answer on stdin; default is no.
func confirm() bool {
	fmt.Print("proceed? [y/N] ")
	reader := bufio.NewReader(os.Stdin)
	reply, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	reply = strings.ToLower(strings.TrimSpace(reply))
	return reply == "y" || reply == "yes"
}

// checkSignals drains pending watcher signals before each curve.
// Returns false when the operator aborted; blocks while paused.
func checkSignals(w *inputwatch.Watcher) bool {
	for {
		select {
		case s := <-w.Signals():
			switch s {
			case inputwatch.SignalAbort:
				return false
			case inputwatch.SignalPause:
				log.Printf("paused; press P to resume, Q to abort")
				if !waitResume(w) {
					return false
				}
			}
		default:
			return true
		}
	}
}

// waitResume blocks until the operator resumes or aborts.
func waitResume(w *inputwatch.Watcher) bool {
	for s := range w.Signals() {
		switch s {
		case inputwatch.SignalResume:
			log.Printf("resumed")
			return true
		case inputwatch.SignalAbort:
			return false
		}
	}
	return true
}
