package util

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/mrodier/hintforge/internal/tensor"
)

var shapePattern = regexp.MustCompile(`^(\d+)x(\d+)x(\d+)x(\d+)$`)

// ParseShape parses a "BxCxHxW" shape string (e.g. "1x3x256x256") into a
// tensor shape.
//
// The parsed shape is validated, so zero dimensions and unsupported
// sizes are rejected here rather than deeper in the pipeline.
func ParseShape(shapeStr string) (tensor.Shape, error) {
	matches := shapePattern.FindStringSubmatch(shapeStr)
	if matches == nil {
		return tensor.Shape{}, fmt.Errorf("invalid shape format: '%s'. Use format like '1x3x256x256'", shapeStr)
	}

	dims := make([]int, 4)
	for i := 0; i < 4; i++ {
		v, err := strconv.Atoi(matches[i+1])
		if err != nil {
			return tensor.Shape{}, fmt.Errorf("invalid shape dimension: %v", err)
		}
		dims[i] = v
	}

	s := tensor.Shape{Batch: dims[0], Channels: dims[1], Height: dims[2], Width: dims[3]}
	if err := s.Validate(); err != nil {
		return tensor.Shape{}, err
	}
	return s, nil
}
