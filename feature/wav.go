package feature

import (
	"fmt"
	"os"

	"github.com/go-audio/wav"
)

// readWAV decodes a WAV file to mono float32 samples in [-1, 1] plus its
// sample rate, downmixing by averaging channels when the source is not
// already mono (grounded on emer-auditory/sound/sound.go's
// SoundToTensor, which performs the same per-sample-type normalization).
func readWAV(path string) (samples []float32, sampleRate int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("feature: opening %s: %w", path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("feature: %s: %w", path, ErrInvalidWAV)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("feature: decoding %s: %w", path, err)
	}

	channels := buf.Format.NumChannels
	if channels < 1 {
		channels = 1
	}
	nFrames := buf.NumFrames()
	if nFrames == 0 {
		return nil, 0, fmt.Errorf("feature: %s: %w", path, ErrNoSamples)
	}

	norm := normalizer(buf.SourceBitDepth)
	out := make([]float32, nFrames)
	idx := 0
	for i := 0; i < nFrames; i++ {
		var sum float32
		for c := 0; c < channels; c++ {
			sum += norm(buf.Data[idx])
			idx++
		}
		out[i] = sum / float32(channels)
	}

	return out, buf.Format.SampleRate, nil
}

// normalizer returns the int-PCM-to-float32 scale for a given source bit
// depth, matching the convention go-audio/wav's IntBuffer uses.
func normalizer(bitDepth int) func(int) float32 {
	switch bitDepth {
	case 8:
		return func(v int) float32 { return float32(v) / float32(0x7F) }
	case 24:
		return func(v int) float32 { return float32(v) / float32(0x7FFFFF) }
	case 32:
		return func(v int) float32 { return float32(v) / float32(0x7FFFFFFF) }
	default: // 16-bit is by far the common case
		return func(v int) float32 { return float32(v) / float32(0x7FFF) }
	}
}
