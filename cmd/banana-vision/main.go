package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/fruitworks/banana-vision/internal/camera"
	"github.com/fruitworks/banana-vision/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg := pipeline.DefaultConfig()

	var (
		showVersion = flag.BoolP("version", "v", false, "print version information and exit")
		inputDir    = flag.StringP("input", "i", "", "directory of frames to process (required)")
		outputDir   = flag.StringP("output", "o", "out", "directory for annotated frames")
		maxFrames   = flag.Int("max-frames", 0, "stop after this many frames (0 = all)")
	)
	flag.Float64Var(&cfg.HueMin, "hue-min", cfg.HueMin, "lower hue bound, normalized [0,1)")
	flag.Float64Var(&cfg.HueMax, "hue-max", cfg.HueMax, "upper hue bound, normalized [0,1)")
	flag.Float64Var(&cfg.SatMin, "sat-min", cfg.SatMin, "minimum saturation [0,1]")
	flag.Float64Var(&cfg.ValMin, "val-min", cfg.ValMin, "minimum value (brightness) [0,1]")
	flag.IntVar(&cfg.MinObjectSize, "min-object-size", cfg.MinObjectSize, "minimum component size kept before morphology")
	flag.IntVar(&cfg.CloseRadius, "close-radius", cfg.CloseRadius, "disk radius for morphological closing")
	flag.IntVar(&cfg.OpenRadius, "open-radius", cfg.OpenRadius, "disk radius for morphological opening")
	flag.IntVar(&cfg.AreaMin, "area-min", cfg.AreaMin, "minimum detection area in pixels")
	flag.Float64Var(&cfg.EccMin, "ecc-min", cfg.EccMin, "minimum eccentricity")
	flag.Float64Var(&cfg.SolMin, "sol-min", cfg.SolMin, "lower solidity bound")
	flag.Float64Var(&cfg.SolMax, "sol-max", cfg.SolMax, "upper solidity bound")
	flag.Float64Var(&cfg.CurveMin, "curve-min", cfg.CurveMin, "minimum convexity deficit")
	flag.IntVar(&cfg.LineWidth, "line-width", cfg.LineWidth, "bounding-box outline width")
	flag.Parse()

	if *showVersion {
		fmt.Printf("banana-vision %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if *inputDir == "" {
		log.Fatal("--input is required")
	}

	detector, err := pipeline.New(cfg)
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	source, err := camera.NewDirSource(*inputDir)
	if err != nil {
		log.Fatalf("Frame source error: %v", err)
	}

	// Ctrl-C stands in for the display window's quit key.
	var quit camera.QuitFlag
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		quit.Set()
	}()

	sink, err := camera.NewFileSink(*outputDir, &quit)
	if err != nil {
		log.Fatalf("Display sink error: %v", err)
	}

	if err := run(detector, source, sink, *maxFrames); err != nil {
		log.Fatalf("Pipeline error: %v", err)
	}
}

// run drives the per-frame loop: poll quit, pull a frame, process, present.
// The loop owns all timing and back-pressure; the detector is a pure
// per-frame function.
func run(detector *pipeline.Detector, source camera.FrameSource, sink camera.DisplaySink, maxFrames int) error {
	processed := 0
	for {
		if sink.Quit() {
			log.Printf("Quit requested after %d frames", processed)
			return nil
		}
		if maxFrames > 0 && processed >= maxFrames {
			return nil
		}

		frame, err := source.Next()
		if errors.Is(err, io.EOF) {
			log.Printf("Source exhausted after %d frames", processed)
			return nil
		}
		if err != nil {
			return fmt.Errorf("frame source: %w", err)
		}

		result, err := detector.Process(frame)
		if err != nil {
			return fmt.Errorf("frame %d: %w", processed, err)
		}
		if err := sink.Display(result.Annotated); err != nil {
			return fmt.Errorf("display sink: %w", err)
		}

		log.Printf("Frame %d: %d detection(s)", processed, len(result.Detections))
		processed++
	}
}
