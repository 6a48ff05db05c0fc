package mfcc

import "errors"

// Sentinel errors for mfcc input validation.
var (
	// ErrEmptyMatrix indicates a Matrix with zero frames.
	ErrEmptyMatrix = errors.New("mfcc: matrix must have at least one frame")

	// ErrCoefMismatch indicates two matrices disagree on coefficient count.
	ErrCoefMismatch = errors.New("mfcc: coefficient counts differ between sequences")

	// ErrBadShape indicates a matrix whose Data length does not match Frames*Coefs.
	ErrBadShape = errors.New("mfcc: data length does not match frames*coefficients")

	// ErrAnchorOutOfRange indicates an anchor frame index outside [0, frame count).
	ErrAnchorOutOfRange = errors.New("mfcc: anchor frame index out of range")

	// ErrAnchorsNotSorted indicates the anchor sequence is not non-decreasing.
	ErrAnchorsNotSorted = errors.New("mfcc: anchors must be monotonically non-decreasing")

	// ErrAnchorFragmentMismatch indicates len(anchors) != len(fragments),
	// or that both are empty.
	ErrAnchorFragmentMismatch = errors.New("mfcc: anchor and fragment counts differ")

	// ErrFirstAnchorNonZero indicates A[0] != 0.
	ErrFirstAnchorNonZero = errors.New("mfcc: first anchor must be zero")
)
