package dtwbd

import "errors"

// Sentinel errors for DTW-BD input validation.
var (
	// ErrDimensionMismatch indicates the two sequences disagree on coefficient count.
	ErrDimensionMismatch = errors.New("dtwbd: coefficient counts differ between sequences")

	// ErrBadInput indicates an invalid Options combination (e.g. negative skip penalty).
	ErrBadInput = errors.New("dtwbd: invalid options combination")

	// ErrMaskOutOfRange indicates a Mask whose bounds fall outside the grid it is applied to.
	ErrMaskOutOfRange = errors.New("dtwbd: mask bounds out of range")
)

// Cell represents a single grid cell (t, a): t indexes the text/reference
// sequence, a indexes the audio sequence.
type Cell struct {
	T, A int
}

// Path is an ordered, monotone-non-decreasing sequence of grid cells with
// no duplicates (§3 Data Model). An empty Path signals "no alignment found"
// (§4.2 Output).
type Path []Cell

// Options configures a single constrained DTW-BD call.
type Options struct {
	// SkipPenalty is the flat per-frame cost of a skip transition (§4.2, §9
	// "Skip penalty units": per frame skipped, not per skip run).
	SkipPenalty float64

	// Mask restricts relaxation to a connected band of cells. Nil means
	// unconstrained (every cell permitted).
	Mask *Mask
}

// DefaultOptions returns Options pre-populated with the spec's default
// skip penalty (§6 Core API defaults). Mask is left nil (unconstrained).
func DefaultOptions() Options {
	return Options{SkipPenalty: 0.75}
}

// Validate checks that Options holds admissible values.
func (o Options) Validate() error {
	if o.SkipPenalty < 0 {
		return ErrBadInput
	}

	return nil
}
