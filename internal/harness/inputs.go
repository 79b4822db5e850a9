// Package harness synthesizes deterministic inputs for an external
// image-conditioned diffusion pipeline and provides golden-value
// comparison helpers for regression tests. It never runs a denoising
// loop itself.
package harness

import (
	"fmt"

	"github.com/mrodier/hintforge/internal/hint"
	"github.com/mrodier/hintforge/internal/tensor"
)

// Defaults match the input resolutions commonly used by latent diffusion
// regression suites: 4 latent channels at 64x64, upscaled 8x to pixels.
const (
	DefaultLatentChannels = 4
	DefaultLatentSize     = 64
	DefaultVAEScaleFactor = 8
	DefaultSteps          = 2
	DefaultGuidanceScale  = 6.0
)

// Options parameterize one synthesized input set.
type Options struct {
	Seed            uint64
	Prompts         int // number of prompts (default 1)
	ImagesPerPrompt int // images generated per prompt (default 1)
	LatentChannels  int
	LatentSize      int // spatial size of the square latent
	VAEScaleFactor  int // pixel resolution = LatentSize * VAEScaleFactor
	Steps           int
	GuidanceScale   float64
	Sampler         Sampler
}

func (o *Options) applyDefaults() {
	if o.Prompts == 0 {
		o.Prompts = 1
	}
	if o.ImagesPerPrompt == 0 {
		o.ImagesPerPrompt = 1
	}
	if o.LatentChannels == 0 {
		o.LatentChannels = DefaultLatentChannels
	}
	if o.LatentSize == 0 {
		o.LatentSize = DefaultLatentSize
	}
	if o.VAEScaleFactor == 0 {
		o.VAEScaleFactor = DefaultVAEScaleFactor
	}
	if o.Steps == 0 {
		o.Steps = DefaultSteps
	}
	if o.GuidanceScale == 0 {
		o.GuidanceScale = DefaultGuidanceScale
	}
}

func (o *Options) validate() error {
	if o.Prompts < 0 || o.ImagesPerPrompt < 0 {
		return fmt.Errorf("prompts and images per prompt must be >= 0, got %d and %d", o.Prompts, o.ImagesPerPrompt)
	}
	if o.LatentChannels < 0 || o.LatentSize < 0 || o.VAEScaleFactor < 0 {
		return fmt.Errorf("latent parameters must be >= 0")
	}
	if o.Steps < 0 {
		return fmt.Errorf("steps must be >= 0, got %d", o.Steps)
	}
	return nil
}

// Inputs is one complete, reproducible input set for a pipeline call.
type Inputs struct {
	Prompts       []string
	Latents       *tensor.Tensor4D
	Hint          []*hint.Image8 // batch order; one element per prompt-image
	Steps         int
	GuidanceScale float64
	Sampler       Sampler
}

// HintImage returns the conditioning image when the hint batch holds a
// single entry, mirroring consumers that accept one image rather than a
// sequence.
func (in *Inputs) HintImage() (*hint.Image8, bool) {
	if len(in.Hint) == 1 {
		return in.Hint[0], true
	}
	return nil, false
}

// NewInputs builds a deterministic input set from opts.
//
// All randomness flows through one generator seeded from opts.Seed: the
// latents are drawn first, then the conditioning hint, so the hint bytes
// depend on the latent draw preceding them. This matches the draw order
// regression suites pin their golden values against.
func NewInputs(opts Options) (*Inputs, error) {
	opts.applyDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	rng := tensor.NewRand(opts.Seed)

	latents, err := tensor.Randn(rng, tensor.Shape{
		Batch:    1,
		Channels: opts.LatentChannels,
		Height:   opts.LatentSize,
		Width:    opts.LatentSize,
	})
	if err != nil {
		return nil, fmt.Errorf("draw latents: %w", err)
	}

	pixelSize := opts.LatentSize * opts.VAEScaleFactor
	hints, err := hint.Build(rng, tensor.Shape{
		Batch:    opts.Prompts * opts.ImagesPerPrompt,
		Channels: 3,
		Height:   pixelSize,
		Width:    pixelSize,
	})
	if err != nil {
		return nil, fmt.Errorf("build conditioning hint: %w", err)
	}

	prompts := make([]string, opts.Prompts)
	if opts.Prompts == 1 {
		prompts[0] = "A painting of a squirrel eating a burger"
	} else {
		for i := range prompts {
			prompts[i] = fmt.Sprintf("a photo of %d cats", i)
		}
	}

	return &Inputs{
		Prompts:       prompts,
		Latents:       latents,
		Hint:          hints,
		Steps:         opts.Steps,
		GuidanceScale: opts.GuidanceScale,
		Sampler:       opts.Sampler,
	}, nil
}
