package syncmap

// Interval is one fragment's resolved position: which audio file it
// falls in, and its begin/end time in fractional seconds within that
// file (§3 Data Model, "Sync map").
type Interval struct {
	AudioFile string
	Begin     float64
	End       float64
}

// Timing pairs a fragment id with its resolved Interval, in the order
// fragments were first written for a given text (insertion order,
// mirroring Python dict iteration in the original `print_sync_map`).
type Timing struct {
	FragmentID string
	Interval
}
