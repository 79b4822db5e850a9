package harness

import (
	"fmt"
	"strings"
)

// Sampler identifies the scheduler the external pipeline should run with.
type Sampler int

const (
	SamplerDDIM Sampler = iota
	SamplerLMS
	SamplerDPM
)

// String returns the canonical name of the sampler.
func (s Sampler) String() string {
	switch s {
	case SamplerLMS:
		return "LMS"
	case SamplerDPM:
		return "DPM"
	default:
		return "DDIM"
	}
}

// ParseSampler parses a string into a Sampler.
func ParseSampler(s string) (Sampler, error) {
	switch strings.ToUpper(s) {
	case "DDIM":
		return SamplerDDIM, nil
	case "LMS":
		return SamplerLMS, nil
	case "DPM":
		return SamplerDPM, nil
	default:
		return SamplerDDIM, fmt.Errorf("invalid sampler: %s (valid: DDIM, LMS, DPM)", s)
	}
}
