package fastdtw

import "errors"

// ErrBadInput indicates an invalid Options combination.
var ErrBadInput = errors.New("fastdtw: invalid options combination")

// Options configures a FastDTW-BD run.
type Options struct {
	// Radius is the Chebyshev dilation radius used to build each level's
	// mask, and the base-case threshold: min(n,m) ≤ Radius+2 runs
	// unconstrained DTW-BD directly (§4.3).
	Radius int

	// SkipPenalty is forwarded to dtwbd.Options.SkipPenalty at every
	// level.
	SkipPenalty float64
}

// DefaultOptions returns the spec's default radius and skip penalty
// (§6 Core API defaults).
func DefaultOptions() Options {
	return Options{Radius: 100, SkipPenalty: 0.75}
}

// Validate checks that Options holds admissible values.
func (o Options) Validate() error {
	if o.Radius < 1 {
		return ErrBadInput
	}
	if o.SkipPenalty < 0 {
		return ErrBadInput
	}

	return nil
}
