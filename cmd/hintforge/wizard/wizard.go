// Package wizard provides an interactive configuration flow for
// hintforge runs, backed by the same YAML config the CLI accepts.
package wizard

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrodier/hintforge/internal/forge"
	"github.com/mrodier/hintforge/internal/util"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginBottom(1)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			MarginTop(1)
)

// Run launches the interactive wizard. When fromConfig is non-empty the
// named YAML file pre-fills the form.
func Run(fromConfig string) error {
	cfg := forge.Config{
		Count:     8,
		Shape:     "1x3x256x256",
		OutputDir: "hints",
	}
	if fromConfig != "" {
		loaded, err := forge.LoadConfig(fromConfig)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	fmt.Println(titleStyle.Render("hintforge wizard"))

	countStr := strconv.Itoa(cfg.Count)
	seedStr := strconv.FormatUint(cfg.Seed, 10)
	scaleStr := strconv.Itoa(cfg.Scale)
	annotate := cfg.Annotate
	confirmed := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Number of hints").
				Value(&countStr).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n <= 0 {
						return fmt.Errorf("must be a positive integer")
					}
					return nil
				}),
			huh.NewInput().
				Title("Hint shape (BxCxHxW)").
				Value(&cfg.Shape).
				Validate(func(s string) error {
					_, err := util.ParseShape(s)
					return err
				}),
			huh.NewInput().
				Title("Seed (0 = derive from output directory)").
				Value(&seedStr).
				Validate(func(s string) error {
					_, err := strconv.ParseUint(s, 10, 64)
					return err
				}),
			huh.NewInput().
				Title("Output directory").
				Value(&cfg.OutputDir).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("must not be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Upscale factor (0 = none)").
				Value(&scaleStr).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 0 {
						return fmt.Errorf("must be a non-negative integer")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Annotate hints with their index?").
				Value(&annotate),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Generate now?").
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("wizard: %w", err)
	}
	if !confirmed {
		fmt.Println("Cancelled.")
		return nil
	}

	// Validated above, errors are unreachable here.
	cfg.Count, _ = strconv.Atoi(countStr)
	cfg.Seed, _ = strconv.ParseUint(seedStr, 10, 64)
	cfg.Scale, _ = strconv.Atoi(scaleStr)
	cfg.Annotate = annotate

	opts, err := cfg.ToOptions()
	if err != nil {
		return err
	}

	files, err := forge.Generate(opts)
	if err != nil {
		return err
	}

	fmt.Println(summaryStyle.Render(
		fmt.Sprintf("Done: %d files in %s (shape %s, seed %d)",
			len(files), opts.OutputDir, opts.Shape, opts.Seed)))
	return nil
}
