package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/mrodier/hintforge/cmd/hintforge/wizard"
	"github.com/mrodier/hintforge/internal/forge"
	"github.com/mrodier/hintforge/internal/harness"
	"github.com/mrodier/hintforge/internal/util"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	// Check for wizard subcommand (before flag.Parse)
	if len(os.Args) > 1 && os.Args[1] == "wizard" {
		var fromConfig string
		for i, arg := range os.Args[2:] {
			if arg == "--from" && i+3 < len(os.Args) {
				fromConfig = os.Args[i+3]
			}
		}
		if err := wizard.Run(fromConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Define command-line flags
	count := flag.Int("count", 0, "Number of hints to generate (required)")
	shapeStr := flag.String("shape", "1x3x256x256", "Hint tensor shape as BxCxHxW")
	outputDir := flag.String("output", "hints", "Output directory")
	seed := flag.Uint64("seed", 0, "Seed for reproducibility (optional, auto-generated from output dir if not specified)")
	workers := flag.Int("workers", 0, fmt.Sprintf("Number of parallel workers (default: %d = CPU cores)", runtime.NumCPU()))
	scale := flag.Int("scale", 0, "Integer upscale factor applied to each hint (e.g. the VAE scale factor)")
	annotate := flag.Bool("annotate", false, "Draw 'Hint X/Y' labels on generated images")
	samplerStr := flag.String("sampler", "DDIM", "Sampler name recorded for the consuming pipeline: DDIM, LMS, DPM")
	quiet := flag.Bool("quiet", false, "Suppress progress output")

	// Interactive wizard and config options
	interactive := flag.Bool("interactive", false, "Launch interactive wizard")
	flag.BoolVar(interactive, "i", false, "Launch interactive wizard (shortcut)")
	configFile := flag.String("config", "", "Load run configuration from YAML file")
	saveConfig := flag.String("save-config", "", "Save run configuration to YAML file (after generation)")

	help := flag.Bool("help", false, "Show help message")
	showVersion := flag.Bool("version", false, "Show version")

	flag.Parse()

	if *showVersion {
		fmt.Printf("hintforge %s\n", version)
		os.Exit(0)
	}

	if *help {
		printUsage()
		os.Exit(0)
	}

	// Handle interactive mode
	if *interactive {
		if err := wizard.Run(""); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Sampler is validated even though generation does not consume it:
	// run configs are handed to pipeline harnesses as-is.
	if _, err := harness.ParseSampler(*samplerStr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var opts forge.Options

	// Handle config file loading
	if *configFile != "" {
		cfg, err := forge.LoadConfig(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		opts, err = cfg.ToOptions()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error in config: %v\n", err)
			os.Exit(1)
		}
		if !*quiet {
			fmt.Println("hintforge")
			fmt.Println("=========")
			fmt.Printf("Loading config from %s\n\n", *configFile)
		}
	} else {
		if *count <= 0 {
			fmt.Fprintln(os.Stderr, "Error: --count is required and must be > 0")
			fmt.Fprintln(os.Stderr, "Run with --help for usage.")
			os.Exit(1)
		}

		shape, err := util.ParseShape(*shapeStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		opts = forge.Options{
			Count:     *count,
			Shape:     shape,
			OutputDir: *outputDir,
			Seed:      *seed,
			Workers:   *workers,
			Scale:     *scale,
			Annotate:  *annotate,
		}
	}
	opts.Quiet = *quiet

	files, err := forge.Generate(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating hints: %v\n", err)
		os.Exit(1)
	}

	if *saveConfig != "" {
		if err := forge.SaveConfig(*saveConfig, forge.FromOptions(opts)); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			os.Exit(1)
		}
		if !*quiet {
			fmt.Printf("Configuration saved to %s\n", *saveConfig)
		}
	}

	if !*quiet {
		fmt.Printf("Generated %d files\n", len(files))
	}
}

func printUsage() {
	fmt.Println("hintforge - deterministic conditioning hints for diffusion pipeline tests")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  hintforge --count N [options]")
	fmt.Println("  hintforge --config run.yaml")
	fmt.Println("  hintforge wizard")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  hintforge --count 8 --shape 1x3x256x256 --seed 42 --output hints")
	fmt.Println("  hintforge --count 4 --shape 2x3x64x64 --scale 8 --annotate")
}
