package syncalign_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	syncalign "github.com/katalvlaran/syncalign"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeToneWAV(t *testing.T, path string, sampleRate int, seconds float64, amplitude int) {
	t.Helper()
	n := int(float64(sampleRate) * seconds)

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	data := make([]int, n)
	for i := range data {
		data[i] = amplitude
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
}

func writeAnchorSidecar(t *testing.T, wavPath string, ids []string, starts []float64) {
	t.Helper()
	type fragment struct {
		ID           string  `json:"id"`
		StartSeconds float64 `json:"start_seconds"`
	}
	payload := struct {
		Fragments []fragment `json:"fragments"`
	}{}
	for i, id := range ids {
		payload.Fragments = append(payload.Fragments, fragment{ID: id, StartSeconds: starts[i]})
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	sidecarPath := wavPath[:len(wavPath)-len(filepath.Ext(wavPath))] + ".anchors.json"
	require.NoError(t, os.WriteFile(sidecarPath, data, 0o644))
}

// TestAlign_EndToEnd covers a single text/audio pair that matches
// closely enough for FastDTW-BD to produce a non-empty path, driving the
// whole Align entrypoint: loading, alignment, and fragment projection.
func TestAlign_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	const sampleRate = 8000

	textPath := filepath.Join(dir, "chapter1.wav")
	writeToneWAV(t, textPath, sampleRate, 1.0, 5000)
	writeAnchorSidecar(t, textPath, []string{"f1", "f2"}, []float64{0.0, 0.5})

	audioPath := filepath.Join(dir, "chapter1_audio.wav")
	writeToneWAV(t, audioPath, sampleRate, 1.0, 5000)

	opts := syncalign.DefaultOptions()
	opts.MFCC.WindowSeconds = 0.1

	sm, err := syncalign.Align(context.Background(),
		[]syncalign.TextSource{{Path: textPath}},
		[]syncalign.AudioSource{{Path: audioPath, Format: syncalign.FormatWAV}},
		opts)
	require.NoError(t, err)

	frags := sm.Fragments(textPath)
	assert.NotEmpty(t, frags)
}

func TestAlign_RejectsBadOptions(t *testing.T) {
	opts := syncalign.DefaultOptions()
	opts.Radius = 0

	_, err := syncalign.Align(context.Background(), nil, nil, opts)
	assert.ErrorIs(t, err, syncalign.ErrBadInput)
}

func TestAlign_UnknownAudioFormat(t *testing.T) {
	dir := t.TempDir()
	textPath := filepath.Join(dir, "t.wav")
	writeToneWAV(t, textPath, 8000, 1.0, 1000)
	writeAnchorSidecar(t, textPath, []string{"f1"}, []float64{0})

	_, err := syncalign.Align(context.Background(),
		[]syncalign.TextSource{{Path: textPath}},
		[]syncalign.AudioSource{{Path: "missing.wav", Format: syncalign.AudioFormat(99)}},
		syncalign.DefaultOptions())
	assert.ErrorIs(t, err, syncalign.ErrBadInput)
}
