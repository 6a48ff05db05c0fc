package dtwbd

// Mask restricts constrained DTW-BD to a connected band of permitted
// cells: one contiguous column range [Lo[i], Hi[i)) per text row i. The
// fastdtw driver builds masks this way by dilating a projected coarse
// path (§4.3 step 4), which always yields a range per row; a Mask built
// any other way must still satisfy that per-row-contiguous shape.
type Mask struct {
	Lo, Hi []int // both length n; row i permits audio columns [Lo[i], Hi[i))
}

// FullMask returns the unconstrained mask over an n×m grid: every cell
// permitted.
func FullMask(n, m int) *Mask {
	lo := make([]int, n)
	hi := make([]int, n)
	for i := range hi {
		hi[i] = m
	}

	return &Mask{Lo: lo, Hi: hi}
}

// Bounds returns the permitted column range [lo, hi) for row i.
func (mk *Mask) Bounds(i int) (lo, hi int) {
	return mk.Lo[i], mk.Hi[i]
}

// validate checks that mk has exactly n rows, each within [0, m] and
// non-inverted.
func (mk *Mask) validate(n, m int) error {
	if len(mk.Lo) != n || len(mk.Hi) != n {
		return ErrMaskOutOfRange
	}
	for i := 0; i < n; i++ {
		lo, hi := mk.Lo[i], mk.Hi[i]
		if lo < 0 || hi > m || lo > hi {
			return ErrMaskOutOfRange
		}
	}

	return nil
}
