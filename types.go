package syncalign

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/syncalign/feature"
)

// ErrBadInput flags an invalid Options combination.
var ErrBadInput = errors.New("syncalign: invalid options combination")

// AudioFormat selects which feature.Transcoder (if any) an AudioSource
// needs before MFCC extraction.
type AudioFormat int

const (
	// FormatWAV sources are canonical WAV already; no transcoding step runs.
	FormatWAV AudioFormat = iota
	// FormatAAC sources are raw AAC/ADTS and run through feature.ADTSTranscoder first.
	FormatAAC
)

// TextSource names a synthesized narration WAV plus its anchor sidecar,
// consumed via feature.WAVTextLoader (§6's TextLoader collaborator).
type TextSource struct {
	Path string
}

// AudioSource names an audio file and the transcoding it needs, if any,
// before feature.WAVAudioLoader can extract MFCCs from it.
type AudioSource struct {
	Path   string
	Format AudioFormat
}

// Options configures a top-level Align run: the DTW-BD cost parameters
// forwarded to fastdtw.Align, and the MFCC extraction parameters the
// reference feature loaders use.
type Options struct {
	SkipPenalty float64
	Radius      int
	MFCC        feature.MFCCParams
}

// DefaultOptions returns the Core API defaults (§6).
func DefaultOptions() Options {
	return Options{
		SkipPenalty: 0.75,
		Radius:      100,
		MFCC:        feature.DefaultMFCCParams(),
	}
}

// Validate checks that Options holds admissible values.
func (o Options) Validate() error {
	if o.SkipPenalty < 0 {
		return fmt.Errorf("%w: skip penalty must be >= 0", ErrBadInput)
	}
	if o.Radius < 1 {
		return fmt.Errorf("%w: radius must be >= 1", ErrBadInput)
	}

	return nil
}
