// Package hint builds deterministic synthetic conditioning images for
// image-conditioned diffusion pipeline tests. A hint is an opaque binary
// pattern: a seeded standard-normal draw thresholded to {0, 255}.
package hint

import (
	"fmt"
	"math/rand/v2"

	"github.com/mrodier/hintforge/internal/tensor"
)

// Threshold is the cut applied to the raw draw: values strictly above it
// map to 255, everything else to 0.
const Threshold = 0.5

// Build draws a (batch, channels, height, width) standard-normal tensor
// from rng, thresholds it to {0, 255} bytes, transposes the result to
// (batch, width, height, channels) and wraps each batch slab as an image.
//
// The transpose swaps the two spatial axes in addition to moving the
// channel axis last; the swapped layout is kept as-is rather than
// corrected, so hint bytes stay stable across implementations.
//
// Images are returned in batch order. The mapping from (generator state,
// shape) to output bytes is deterministic and the call performs no I/O.
func Build(rng *rand.Rand, shape tensor.Shape) ([]*Image8, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if err := checkChannels(shape.Channels); err != nil {
		return nil, fmt.Errorf("hint shape %s: %w", shape, err)
	}

	raw, err := tensor.Randn(rng, shape)
	if err != nil {
		return nil, err
	}

	images := make([]*Image8, shape.Batch)
	for b := 0; b < shape.Batch; b++ {
		img, err := NewImage8(shape.Width, shape.Height, shape.Channels)
		if err != nil {
			return nil, err
		}
		// b c h w -> b w h c
		for x := 0; x < shape.Width; x++ {
			for y := 0; y < shape.Height; y++ {
				off := img.PixOffset(x, y)
				for c := 0; c < shape.Channels; c++ {
					if raw.At(b, c, y, x) > Threshold {
						img.Pix[off+c] = 255
					}
				}
			}
		}
		images[b] = img
	}

	return images, nil
}

// BuildSeeded is Build with a fresh generator initialized from seed.
func BuildSeeded(seed uint64, shape tensor.Shape) ([]*Image8, error) {
	return Build(tensor.NewRand(seed), shape)
}

// Single builds a hint for a batch of exactly one and returns the image
// directly. It fails if the shape requests a larger batch.
func Single(rng *rand.Rand, shape tensor.Shape) (*Image8, error) {
	if shape.Batch != 1 {
		return nil, fmt.Errorf("single hint requires batch size 1, got %d", shape.Batch)
	}
	images, err := Build(rng, shape)
	if err != nil {
		return nil, err
	}
	return images[0], nil
}
