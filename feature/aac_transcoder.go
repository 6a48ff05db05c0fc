package feature

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/llehouerou/go-aac"
)

// ADTSTranscoder is the reference Transcoder (§6): it decodes an
// AAC/ADTS bitstream with go-aac and writes the decoded PCM out as a
// canonical WAV file, fulfilling "a side channel that may invoke an
// external audio decoder to produce a canonical WAV" without shelling
// out to ffmpeg the way the original implementation does.
type ADTSTranscoder struct{}

// Transcode implements Transcoder.
func (ADTSTranscoder) Transcode(srcPath, scratchDir string) (string, error) {
	raw, err := os.ReadFile(srcPath)
	if err != nil {
		return "", fmt.Errorf("feature: reading %s: %w", srcPath, err)
	}

	frames, err := splitADTSFrames(raw)
	if err != nil {
		return "", fmt.Errorf("feature: demuxing %s: %w", srcPath, err)
	}
	if len(frames) == 0 {
		return "", fmt.Errorf("feature: %s: %w", srcPath, ErrInvalidADTS)
	}

	dec := aac.NewDecoder()
	defer dec.Close()

	sampleRate, channels, err := dec.SimpleInit(frames[0])
	if err != nil {
		return "", fmt.Errorf("feature: initializing AAC decoder for %s: %w", srcPath, err)
	}

	var pcm []int16
	for _, frame := range frames {
		samples, err := dec.DecodeInt16(frame)
		if err != nil {
			return "", fmt.Errorf("feature: decoding AAC frame in %s: %w", srcPath, err)
		}
		pcm = append(pcm, samples...)
	}

	name := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))
	wavPath := filepath.Join(scratchDir, name+"_transcoded.wav")
	if err := writeWAV(wavPath, pcm, sampleRate, channels); err != nil {
		return "", fmt.Errorf("feature: writing %s: %w", wavPath, err)
	}

	return wavPath, nil
}

// writeWAV encodes int16 PCM samples as a canonical 16-bit WAV file.
func writeWAV(path string, pcm []int16, sampleRate, channels int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)

	data := make([]int, len(pcm))
	for i, s := range pcm {
		data[i] = int(s)
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return err
	}

	return enc.Close()
}

// splitADTSFrames walks a raw ADTS bitstream and slices out each frame
// (7-byte header, no CRC, plus payload) by reading the 13-bit
// frame_length field spanning bytes 3-5 of the ADTS fixed+variable
// header. There is no container-parsing library in the dependency set
// this module draws from, so this demux is hand-rolled against the ADTS
// bit layout (ISO/IEC 13818-7 Annex B) rather than adapted from a pack
// example.
func splitADTSFrames(data []byte) ([][]byte, error) {
	const headerLen = 7

	var frames [][]byte
	for i := 0; i+headerLen <= len(data); {
		if data[i] != 0xFF || data[i+1]&0xF0 != 0xF0 {
			return nil, ErrInvalidADTS
		}

		frameLen := (int(data[i+3]&0x03) << 11) | (int(data[i+4]) << 3) | (int(data[i+5]&0xE0) >> 5)
		if frameLen < headerLen || i+frameLen > len(data) {
			return nil, ErrInvalidADTS
		}

		frames = append(frames, data[i:i+frameLen])
		i += frameLen
	}

	return frames, nil
}
