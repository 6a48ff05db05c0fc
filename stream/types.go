package stream

import "errors"

// Sentinel errors for the stream controller.
var (
	// ErrBadInput indicates an invalid Options combination.
	ErrBadInput = errors.New("stream: invalid options combination")

	// ErrNoTextSources indicates the text file list is empty.
	ErrNoTextSources = errors.New("stream: no text sources provided")

	// ErrNoAudioSources indicates the audio file list is empty.
	ErrNoAudioSources = errors.New("stream: no audio sources provided")

	// ErrScratchDir indicates the transcoder scratch directory could not
	// be created or cleaned up.
	ErrScratchDir = errors.New("stream: scratch directory error")
)

// Options configures a Controller run.
type Options struct {
	// SkipPenalty is forwarded to every fastdtw.Align call (§6 default 0.75).
	SkipPenalty float64

	// Radius is forwarded to every fastdtw.Align call (§6 default 100).
	Radius int
}

// DefaultOptions returns the spec's Core API defaults (§6).
func DefaultOptions() Options {
	return Options{SkipPenalty: 0.75, Radius: 100}
}

// Validate checks that Options holds admissible values.
func (o Options) Validate() error {
	if o.SkipPenalty < 0 || o.Radius < 1 {
		return ErrBadInput
	}

	return nil
}
