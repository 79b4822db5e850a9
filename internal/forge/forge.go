// Package forge renders batches of conditioning hint images to disk,
// one PNG per hint, with fully deterministic per-image seeds.
package forge

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/mrodier/hintforge/internal/hint"
	"github.com/mrodier/hintforge/internal/tensor"
	"github.com/mrodier/hintforge/internal/util"
)

// Options contains all parameters needed to generate a hint set.
type Options struct {
	Count     int          // number of hints to generate (required)
	Shape     tensor.Shape // per-hint tensor shape (batch may be > 1)
	OutputDir string
	Seed      uint64 // 0 = derive from output directory name
	Workers   int    // number of parallel workers (0 = CPU cores)
	Scale     int    // optional integer upscale factor (0 or 1 = none)
	Annotate  bool   // draw "Hint X/Y" labels on each image

	// Output control
	Quiet            bool                     // suppress progress output
	ProgressCallback func(current, total int) // optional progress updates
}

// GeneratedFile describes one written hint image.
type GeneratedFile struct {
	Path       string
	Index      int // 1-based hint index
	BatchIndex int // 0-based index within the hint's batch
	Seed       uint64
}

// hintTask contains all data needed to render a single hint.
type hintTask struct {
	index int
	seed  uint64
	paths []string // one per batch entry
}

// Generate renders opts.Count hints into opts.OutputDir.
//
// Phase 1 derives per-hint seeds and file paths sequentially so results
// are independent of worker count; phase 2 renders and encodes on a
// worker pool. Files are returned in task order.
func Generate(opts Options) ([]GeneratedFile, error) {
	if opts.Count <= 0 {
		return nil, fmt.Errorf("hint count must be > 0, got %d", opts.Count)
	}
	if err := opts.Shape.Validate(); err != nil {
		return nil, err
	}
	if opts.Scale < 0 {
		return nil, fmt.Errorf("scale must be >= 0, got %d", opts.Scale)
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	// Set seed for reproducibility
	seed := opts.Seed
	if seed == 0 {
		seed = util.SeedFromName(opts.OutputDir)
		if !opts.Quiet {
			fmt.Printf("Auto-generated seed from '%s': %d\n", opts.OutputDir, seed)
			fmt.Println("  (same directory = same hint set)")
		}
	} else if !opts.Quiet {
		fmt.Printf("Using seed: %d\n", seed)
	}

	if !opts.Quiet {
		fmt.Printf("Generating %d hints (%s) in %s\n", opts.Count, opts.Shape, opts.OutputDir)
	}

	// Phase 1: build all tasks sequentially (maintains determinism)
	tasks := make([]hintTask, 0, opts.Count)
	for i := 1; i <= opts.Count; i++ {
		paths := make([]string, opts.Shape.Batch)
		if opts.Shape.Batch == 1 {
			paths[0] = filepath.Join(opts.OutputDir, fmt.Sprintf("HNT%04d.png", i))
		} else {
			for b := 0; b < opts.Shape.Batch; b++ {
				paths[b] = filepath.Join(opts.OutputDir, fmt.Sprintf("HNT%04d_B%d.png", i, b))
			}
		}
		tasks = append(tasks, hintTask{
			index: i,
			seed:  util.DeriveSeed(seed, fmt.Sprintf("hint_%d", i)),
			paths: paths,
		})
	}

	// Phase 2: process tasks in parallel
	numWorkers := opts.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > len(tasks) {
		numWorkers = len(tasks)
	}

	taskChan := make(chan hintTask, len(tasks))
	resultChan := make(chan struct {
		index int
		err   error
	}, len(tasks))

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range taskChan {
				err := renderTask(task, opts)
				resultChan <- struct {
					index int
					err   error
				}{task.index, err}
			}
		}()
	}

	for _, task := range tasks {
		taskChan <- task
	}
	close(taskChan)

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	// Collect results and track progress
	completed := 0
	var firstErr error
	for result := range resultChan {
		if result.err != nil && firstErr == nil {
			firstErr = fmt.Errorf("generate hint %d: %w", result.index, result.err)
		}
		completed++
		if opts.ProgressCallback != nil {
			opts.ProgressCallback(completed, len(tasks))
		}
		if !opts.Quiet && (completed%10 == 0 || completed == len(tasks)) {
			progress := float64(completed) / float64(len(tasks)) * 100
			fmt.Printf("  Progress: %d/%d (%.0f%%)\n", completed, len(tasks), progress)
		}
	}

	if firstErr != nil {
		return nil, firstErr
	}

	// Build result slice (in order)
	files := make([]GeneratedFile, 0, opts.Count*opts.Shape.Batch)
	for _, task := range tasks {
		for b, path := range task.paths {
			files = append(files, GeneratedFile{
				Path:       path,
				Index:      task.index,
				BatchIndex: b,
				Seed:       task.seed,
			})
		}
	}

	if !opts.Quiet {
		fmt.Printf("\n✓ %d hint files created in: %s/\n", len(files), opts.OutputDir)
	}

	return files, nil
}

// renderTask builds one hint from its pre-computed task and writes every
// batch entry as a PNG.
func renderTask(task hintTask, opts Options) error {
	images, err := hint.BuildSeeded(task.seed, opts.Shape)
	if err != nil {
		return err
	}

	for b, img := range images {
		if opts.Scale > 1 {
			img, err = hint.Resize(img, opts.Scale)
			if err != nil {
				return fmt.Errorf("scale hint: %w", err)
			}
		}
		if opts.Annotate {
			if err := hint.AnnotateIndex(img, task.index, opts.Count); err != nil {
				return fmt.Errorf("annotate hint: %w", err)
			}
		}

		f, err := os.Create(task.paths[b])
		if err != nil {
			return err
		}
		if err := img.WritePNG(f); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	return nil
}
