package project

import "errors"

// Sentinel errors for the path-to-timing projector.
var (
	// ErrEmptyPath indicates Fragments was called with a path with no cells.
	ErrEmptyPath = errors.New("project: path is empty")

	// ErrNoFragments indicates the anchor set has no entries.
	ErrNoFragments = errors.New("project: anchor set is empty")
)

// Fragment is one fragment's resolved timing, in fractional seconds
// relative to the start of its owning audio file (§3 Data Model, Sync map).
type Fragment struct {
	ID    string
	Begin float64
	End   float64
}
