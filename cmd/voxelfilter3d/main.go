package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"voxelfilter3d/pkg/config"
	"voxelfilter3d/pkg/engine"
	"voxelfilter3d/pkg/filter"
	"voxelfilter3d/pkg/metrics"
	"voxelfilter3d/pkg/visualization"
	"voxelfilter3d/pkg/voxel"
)

func main() {
	// Parse command line arguments
	inputFile := flag.String("input", "", "Raw little-endian volume file (empty: generate a synthetic test volume)")
	outputFile := flag.String("output", "filtered.raw", "Output volume filename")
	shapeArg := flag.String("shape", "64,64,8,1,1", "Volume shape as x,y,z,t,c")
	kindArg := flag.String("kind", "uint16", "Element kind (uint8, int8, uint16, int16, uint32, int32, float32, float64)")
	configPath := flag.String("config", "", "Optional YAML config file")
	radiusArg := flag.String("radius", "", "Per-axis filter radius as rx[,ry[,rz]] (overrides config)")
	filterName := flag.String("filter", "", fmt.Sprintf("Filter strategy %v (overrides config)", filter.Names()))
	workers := flag.Int("workers", 0, "Worker goroutines (0: one per CPU, overrides config)")
	exportSlices := flag.Bool("export-slices", false, "Export filtered slices as JPEG along all axes")
	slicesDir := flag.String("slices-dir", "", "Directory for exported slices (overrides config)")
	flag.Parse()

	// Load configuration; flags override the file where given
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *radiusArg != "" {
		radius, err := parseInts(*radiusArg)
		if err != nil {
			log.Fatalf("Invalid -radius: %v", err)
		}
		cfg.Processing.Radius = radius
	}
	if *filterName != "" {
		cfg.Processing.Filter = *filterName
	}
	if *workers > 0 {
		cfg.Processing.Workers = *workers
	}
	if *exportSlices {
		cfg.Output.ExportSlices = true
	}
	if *slicesDir != "" {
		cfg.Output.SlicesDir = *slicesDir
	}

	shape, err := parseShape(*shapeArg)
	if err != nil {
		log.Fatalf("Invalid -shape: %v", err)
	}
	kind, err := voxel.KindFromString(*kindArg)
	if err != nil {
		log.Fatalf("Invalid -kind: %v", err)
	}
	strategy, err := filter.ByName(cfg.Processing.Filter)
	if err != nil {
		log.Fatalf("Invalid filter: %v", err)
	}

	fmt.Println("================================")
	fmt.Println("PARALLEL NEIGHBORHOOD FILTERING FOR 5D VOLUMES")
	fmt.Println("================================")

	// Load or generate the input volume
	var input *voxel.Volume
	if *inputFile != "" {
		fmt.Printf("Loading volume from %s...\n", *inputFile)
		input, err = loadRawVolume(*inputFile, shape, kind)
		if err != nil {
			log.Fatalf("Failed to load volume: %v", err)
		}
	} else {
		fmt.Println("No input file given, generating synthetic test volume...")
		input, err = generateTestVolume(shape, kind)
		if err != nil {
			log.Fatalf("Failed to generate volume: %v", err)
		}
	}
	fmt.Printf("Volume: %v, kind %v\n", shape, kind)

	// Ctrl-C cancels the pass; the partial output is still written
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Run the filtering pass
	pass := engine.NewPass(&engine.Params{
		Radius:  cfg.Processing.Radius,
		Workers: cfg.Processing.Workers,
		Verbose: cfg.Output.Verbose,
	})

	fmt.Printf("Applying %q filter with radius %v on %d workers...\n",
		strategy.Name(), cfg.Processing.Radius, cfg.Processing.Workers)
	startTime := time.Now()
	output, err := pass.Run(ctx, input, strategy)
	processingTime := time.Since(startTime)

	interrupted := errors.Is(err, engine.ErrInterrupted)
	if err != nil && !interrupted {
		log.Fatalf("Filtering failed: %v", err)
	}
	if interrupted {
		fmt.Println("\nPass interrupted; writing partial output.")
	} else {
		fmt.Printf("\nFiltering completed in %.2f seconds!\n", processingTime.Seconds())
	}

	// Save the output volume
	if err := saveRawVolume(*outputFile, output); err != nil {
		log.Fatalf("Failed to save output volume: %v", err)
	}
	fmt.Printf("Output volume saved to: %s\n", *outputFile)

	// Report pass statistics for completed passes
	if !interrupted {
		stats, err := metrics.Compare(input, output)
		if err != nil {
			log.Fatalf("Failed to compute pass statistics: %v", err)
		}
		fmt.Printf("\nPass statistics:\n")
		fmt.Printf("================\n")
		fmt.Printf("RMSE vs input: %.6f\n", stats.RMSE)
		fmt.Printf("Correlation with input: %.3f\n", stats.Correlation)
		fmt.Printf("Entropy difference: %.3f\n", stats.EntropyDiff)
		fmt.Printf("Response mean: %.4f (min %.4f, max %.4f)\n",
			stats.ResponseMean, stats.ResponseMin, stats.ResponseMax)
	}

	// Export filtered slices if requested
	if cfg.Output.ExportSlices {
		fmt.Println("\nExporting filtered slices along all axes...")

		viewer, err := visualization.NewViewer(output, 0, 0)
		if err != nil {
			log.Fatalf("Failed to create viewer: %v", err)
		}

		for _, axis := range []string{"x", "y", "z"} {
			axisDir := filepath.Join(cfg.Output.SlicesDir, axis)
			fmt.Printf("Saving %s-axis slices to: %s\n", axis, axisDir)

			if err := viewer.SaveSliceSequence(axis, axisDir); err != nil {
				log.Printf("Warning: Failed to save %s-axis slices: %v", axis, err)
			}
		}

		fmt.Println("Slice export completed!")
	}
}

// parseInts parses a comma-separated integer list such as "1,1,2".
func parseInts(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("bad integer %q", part)
		}
		values = append(values, v)
	}
	return values, nil
}

// parseShape parses an x,y,z,t,c extent list into a Shape.
func parseShape(s string) (voxel.Shape, error) {
	values, err := parseInts(s)
	if err != nil {
		return voxel.Shape{}, err
	}
	if len(values) != 5 {
		return voxel.Shape{}, fmt.Errorf("shape needs 5 values (x,y,z,t,c), got %d", len(values))
	}
	shape := voxel.Shape{X: values[0], Y: values[1], Z: values[2], T: values[3], C: values[4]}
	if !shape.Valid() {
		return voxel.Shape{}, fmt.Errorf("every extent must be at least 1: %v", shape)
	}
	return shape, nil
}
