package harness

import (
	"fmt"
	"math"

	"github.com/mrodier/hintforge/internal/tensor"
)

// CornerSlice extracts the flattened bottom-right n by n patch of the
// last channel of batch 0, the patch regression suites compare against
// golden values. Values are returned row by row.
func CornerSlice(t *tensor.Tensor4D, n int) ([]float32, error) {
	s := t.Shape()
	if n <= 0 || n > s.Height || n > s.Width {
		return nil, fmt.Errorf("corner size %d out of range for %s", n, s)
	}

	out := make([]float32, 0, n*n)
	c := s.Channels - 1
	for y := s.Height - n; y < s.Height; y++ {
		for x := s.Width - n; x < s.Width; x++ {
			out = append(out, t.At(0, c, y, x))
		}
	}
	return out, nil
}

// MaxAbsDiff returns the largest elementwise absolute difference between
// two equally sized slices.
func MaxAbsDiff(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	var maxDiff float64
	for i := range a {
		if d := math.Abs(float64(a[i]) - float64(b[i])); d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// Close reports whether two slices agree elementwise within tol.
func Close(a, b []float32, tol float64) bool {
	d, err := MaxAbsDiff(a, b)
	if err != nil {
		return false
	}
	return d <= tol
}
