package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"seamcarve/internal/models"
	"seamcarve/internal/system"
	"seamcarve/pkg/config"
	"seamcarve/pkg/imageio"
	"seamcarve/pkg/seamcarving"
	"seamcarve/pkg/visualization"
)

// job describes one image to resize
type job struct {
	input    string
	output   string
	maskPath string
}

// options are the settings shared by every job of a run
type options struct {
	cfg       *config.Config
	width     int
	delta     int
	seamColor color.RGBA
	logger    *log.Logger
}

// stdoutMu keeps the metrics of concurrent jobs from interleaving
var stdoutMu sync.Mutex

func main() {
	inputPath := flag.String("input", "", "Image file or directory of images to resize")
	outputPath := flag.String("output", "", "Output file (or directory when -input is a directory)")
	width := flag.Int("width", 0, "Requested output width in pixels")
	delta := flag.Int("delta", 0, "Width change in pixels, used when -width is not set (negative reduces)")
	maskPath := flag.String("mask", "", "Mask image; pixels brighter than the configured threshold are protected")
	configPath := flag.String("config", "", "YAML configuration file")
	initConfig := flag.String("init-config", "", "Write a default configuration file to this path and exit")
	numCores := flag.Int("cores", 0, "Number of CPU cores to use (default: from config)")
	saveSeams := flag.Bool("seams", false, "Also save the input with the discovered seams painted")
	saveEnergy := flag.Bool("energy", false, "Also save the energy heat map")
	saveMask := flag.Bool("mask-out", false, "Also save the protection mask at output dimensions")
	seamColor := flag.String("seam-color", "", "Hex colour of painted seams (default: from config)")
	verbose := flag.Bool("verbose", false, "Log every step of the seam computation")
	flag.Parse()

	if *initConfig != "" {
		if err := config.CreateDefaultConfigFile(*initConfig); err != nil {
			log.Fatalf("Failed to create config file: %v", err)
		}
		fmt.Printf("Default configuration written to: %s\n", *initConfig)
		return
	}

	if *inputPath == "" || *outputPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	// explicitly set flags override the configuration
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "cores":
			cfg.Processing.NumCores = *numCores
		case "seams":
			cfg.Output.SaveSeams = *saveSeams
		case "energy":
			cfg.Output.SaveEnergy = *saveEnergy
		case "mask-out":
			cfg.Output.SaveMask = *saveMask
		case "seam-color":
			cfg.Output.SeamColor = *seamColor
		case "verbose":
			cfg.Output.Verbose = *verbose
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	col, err := visualization.ParseHexColor(cfg.Output.SeamColor)
	if err != nil {
		log.Fatalf("Invalid seam colour: %v", err)
	}

	opts := &options{
		cfg:       cfg,
		width:     *width,
		delta:     *delta,
		seamColor: col,
		logger:    log.New(io.Discard, "", 0),
	}
	if cfg.Output.Verbose {
		opts.logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	fmt.Println("================================")
	fmt.Println("CONTENT-AWARE IMAGE RESIZING BY SEAM CARVING")
	fmt.Println("================================")

	info, err := os.Stat(*inputPath)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	startTime := time.Now()
	if info.IsDir() {
		if *maskPath != "" {
			log.Fatalf("-mask cannot be combined with a directory input")
		}
		if err := runBatch(*inputPath, *outputPath, opts); err != nil {
			log.Fatalf("Batch processing failed: %v", err)
		}
	} else {
		j := job{input: *inputPath, output: *outputPath, maskPath: *maskPath}
		if err := process(j, opts); err != nil {
			log.Fatalf("Seam carving failed: %v", err)
		}
	}

	fmt.Printf("\nCompleted in %.2f seconds using %d cores\n",
		time.Since(startTime).Seconds(), cfg.Processing.NumCores)
}

// runBatch resizes every image of inputDir into outputDir. Each image gets its
// own Carver; the number of concurrent jobs is bounded by the configured cores.
func runBatch(inputDir, outputDir string, opts *options) error {
	paths, err := imageio.ListImages(inputDir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no images found in %s", inputDir)
	}

	fmt.Printf("Processing %d images from %s\n", len(paths), inputDir)

	// each job already parallelises its energy rows
	jobOpts := *opts
	jobOpts.cfg = cloneConfig(opts.cfg)
	jobOpts.cfg.Processing.NumCores = 1

	var g errgroup.Group
	g.SetLimit(opts.cfg.Processing.NumCores)
	for _, path := range paths {
		j := job{input: path, output: filepath.Join(outputDir, filepath.Base(path))}
		g.Go(func() error {
			if err := process(j, &jobOpts); err != nil {
				return fmt.Errorf("%s: %w", filepath.Base(j.input), err)
			}
			return nil
		})
	}

	return g.Wait()
}

func cloneConfig(cfg *config.Config) *config.Config {
	dup := *cfg
	return &dup
}

// process resizes a single image and writes the requested outputs
func process(j job, opts *options) error {
	img, err := imageio.LoadImage(j.input)
	if err != nil {
		return err
	}
	bounds := img.Bounds()

	outWidth := targetWidth(bounds.Dx(), opts.width, opts.delta)

	if opts.cfg.Processing.CheckMemory {
		report, err := system.CheckMemory(bounds.Dx(), bounds.Dy())
		switch {
		case errors.Is(err, system.ErrInsufficientMemory):
			return err
		case err != nil:
			opts.logger.Printf("Warning: %v", err)
		default:
			opts.logger.Printf("memory check for %s: %s", j.input, report)
		}
	}

	var mask models.Mask
	if j.maskPath != "" {
		mask, err = imageio.LoadMask(j.maskPath, opts.cfg.Mask.Threshold, bounds.Dx(), bounds.Dy())
		if err != nil {
			return fmt.Errorf("failed to load mask: %w", err)
		}
	}

	params := &seamcarving.Params{
		OutputWidth: outWidth,
		Weights:     opts.cfg.Grayscale,
		Mask:        mask,
		NumCores:    opts.cfg.Processing.NumCores,
		Logger:      opts.logger,
	}

	carver, err := seamcarving.NewCarver(img, params)
	if err != nil {
		return err
	}

	quality := opts.cfg.Output.JPEGQuality
	if err := imageio.SaveImage(j.output, carver.Resize(), quality); err != nil {
		return fmt.Errorf("failed to save output: %w", err)
	}

	var extras []string
	if opts.cfg.Output.SaveSeams {
		path := withSuffix(j.output, "_seams")
		if err := imageio.SaveImage(path, carver.ShowSeams(opts.seamColor), quality); err != nil {
			return fmt.Errorf("failed to save seams: %w", err)
		}
		extras = append(extras, path)
	}
	if opts.cfg.Output.SaveEnergy && carver.Operation() != seamcarving.Identity {
		path := withExt(withSuffix(j.output, "_energy"), ".png")
		if err := imageio.SaveImage(path, visualization.EnergyMap(carver.Energy()), quality); err != nil {
			return fmt.Errorf("failed to save energy map: %w", err)
		}
		extras = append(extras, path)
	}
	if opts.cfg.Output.SaveMask {
		path := withExt(withSuffix(j.output, "_mask"), ".png")
		if err := imageio.SaveMask(path, carver.MaskAfterCarving()); err != nil {
			return fmt.Errorf("failed to save mask: %w", err)
		}
		extras = append(extras, path)
	}

	printMetrics(j, bounds.Dx(), outWidth, carver.Metrics(), extras)
	return nil
}

// targetWidth resolves the requested output width; an unset width keeps the
// input width shifted by delta
func targetWidth(inWidth, width, delta int) int {
	if width > 0 {
		return width
	}
	return inWidth + delta
}

func withSuffix(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}

func withExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func printMetrics(j job, inWidth, outWidth int, m seamcarving.Metrics, extras []string) {
	stdoutMu.Lock()
	defer stdoutMu.Unlock()

	fmt.Printf("\n%s -> %s (%d -> %d px, %s)\n", j.input, j.output, inWidth, outWidth, m.Operation)
	fmt.Printf("Seams: %d\n", m.Seams)
	if m.Seams > 0 {
		fmt.Printf("Seam energy: mean %.2f, std-dev %.2f\n", m.MeanSeamEnergy, m.StdDevSeamEnergy)
		fmt.Printf("Seam cost: min %.0f, max %.0f\n", m.MinSeamCost, m.MaxSeamCost)
		fmt.Printf("Mean image energy: %.2f\n", m.MeanImageEnergy)
	}
	if m.ProtectedPixels > 0 {
		fmt.Printf("Protected pixels: %d (%d crossed by seams)\n", m.ProtectedPixels, m.ProtectedSeamPixels)
	}
	for _, path := range extras {
		fmt.Printf("- saved %s\n", path)
	}
}
