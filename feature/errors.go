package feature

import "errors"

// Sentinel errors for feature extraction and transcoding.
var (
	// ErrInvalidWAV indicates a file could not be decoded as WAV.
	ErrInvalidWAV = errors.New("feature: invalid WAV file")

	// ErrNoSamples indicates a decoded audio source contained zero frames.
	ErrNoSamples = errors.New("feature: audio source contains no samples")

	// ErrAnchorSidecarMismatch indicates a text source's anchor sidecar
	// lists no fragments.
	ErrAnchorSidecarMismatch = errors.New("feature: anchor sidecar does not match text source")

	// ErrInvalidADTS indicates a malformed ADTS bitstream (bad sync word
	// or a frame length that runs past the end of the buffer).
	ErrInvalidADTS = errors.New("feature: invalid ADTS bitstream")
)
