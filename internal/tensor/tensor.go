package tensor

import (
	"errors"
	"fmt"
)

// ErrInvalidShape indicates a shape with a non-positive dimension or one
// whose element count would overflow an int.
var ErrInvalidShape = errors.New("invalid shape")

// Shape describes a 4D tensor laid out as (batch, channels, height, width).
type Shape struct {
	Batch    int
	Channels int
	Height   int
	Width    int
}

// Validate checks that every dimension is positive and that the total
// element count fits in an int.
func (s Shape) Validate() error {
	if s.Batch <= 0 || s.Channels <= 0 || s.Height <= 0 || s.Width <= 0 {
		return fmt.Errorf("%w: %s (all dimensions must be > 0)", ErrInvalidShape, s)
	}

	// Overflow check, mirrors the width*height guard used for single frames.
	maxSize := int(^uint(0) >> 1)
	elems := s.Batch
	for _, d := range []int{s.Channels, s.Height, s.Width} {
		if elems > maxSize/d {
			return fmt.Errorf("%w: %s (element count overflows)", ErrInvalidShape, s)
		}
		elems *= d
	}

	return nil
}

// Elems returns the total number of elements. The shape must be valid.
func (s Shape) Elems() int {
	return s.Batch * s.Channels * s.Height * s.Width
}

// String formats the shape as "BxCxHxW".
func (s Shape) String() string {
	return fmt.Sprintf("%dx%dx%dx%d", s.Batch, s.Channels, s.Height, s.Width)
}

// Tensor4D is a float32 tensor stored row-major in (batch, channels,
// height, width) order.
type Tensor4D struct {
	shape Shape
	data  []float32
}

// New allocates a zero-filled tensor with the given shape.
func New(s Shape) (*Tensor4D, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &Tensor4D{shape: s, data: make([]float32, s.Elems())}, nil
}

// Shape returns the tensor's shape.
func (t *Tensor4D) Shape() Shape { return t.shape }

// Data returns the backing slice in row-major (b, c, y, x) order.
// The slice is shared with the tensor, not copied.
func (t *Tensor4D) Data() []float32 { return t.data }

// At returns the element at (b, c, y, x). Indices are not bounds-checked
// beyond the slice access itself.
func (t *Tensor4D) At(b, c, y, x int) float32 {
	return t.data[t.offset(b, c, y, x)]
}

// Set stores v at (b, c, y, x).
func (t *Tensor4D) Set(b, c, y, x int, v float32) {
	t.data[t.offset(b, c, y, x)] = v
}

// Batch returns the slab for batch index b as a shared sub-slice of
// length Channels*Height*Width.
func (t *Tensor4D) Batch(b int) []float32 {
	slab := t.shape.Channels * t.shape.Height * t.shape.Width
	return t.data[b*slab : (b+1)*slab]
}

func (t *Tensor4D) offset(b, c, y, x int) int {
	return ((b*t.shape.Channels+c)*t.shape.Height+y)*t.shape.Width + x
}
