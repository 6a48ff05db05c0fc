package feature

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/syncalign/mfcc"
)

// WAVTextLoader is the reference TextLoader. TTS synthesis is out of
// scope (a spec.md Non-goal), so unlike the Python original's
// Synthesizer-driven anchor discovery, this loader consumes a
// pre-synthesized narration WAV plus a JSON sidecar listing each
// fragment's synthesis-time offset, matching the sidecar's frame-index
// conversion to the Supplemented-features note (integer division against
// mfcc.FrameDuration, not rounding).
type WAVTextLoader struct {
	params MFCCParams
}

// NewWAVTextLoader constructs a WAVTextLoader with the given MFCC
// extraction parameters.
func NewWAVTextLoader(params MFCCParams) *WAVTextLoader {
	return &WAVTextLoader{params: params}
}

type anchorSidecar struct {
	Fragments []struct {
		ID           string  `json:"id"`
		StartSeconds float64 `json:"start_seconds"`
	} `json:"fragments"`
}

// sidecarPath derives the anchor sidecar's path from the synthesized
// text WAV's path: "chapter1_text.wav" -> "chapter1_text.anchors.json".
func sidecarPath(wavPath string) string {
	ext := filepath.Ext(wavPath)

	return strings.TrimSuffix(wavPath, ext) + ".anchors.json"
}

// LoadText implements TextLoader.
func (l *WAVTextLoader) LoadText(path string) (mfcc.Matrix, mfcc.AnchorSet, error) {
	samples, rate, err := readWAV(path)
	if err != nil {
		return mfcc.Matrix{}, mfcc.AnchorSet{}, err
	}

	m, err := extractMFCC(samples, rate, l.params)
	if err != nil {
		return mfcc.Matrix{}, mfcc.AnchorSet{}, err
	}

	sidecar, err := loadAnchorSidecar(sidecarPath(path))
	if err != nil {
		return mfcc.Matrix{}, mfcc.AnchorSet{}, err
	}

	anchors := make([]int, len(sidecar.Fragments))
	fragments := make([]string, len(sidecar.Fragments))
	for i, f := range sidecar.Fragments {
		anchors[i] = int(f.StartSeconds / mfcc.FrameDuration)
		fragments[i] = f.ID
	}

	anchorSet, err := mfcc.NewAnchorSet(anchors, fragments, m.Frames)
	if err != nil {
		return mfcc.Matrix{}, mfcc.AnchorSet{}, fmt.Errorf("feature: %s: %w", path, err)
	}

	return m, anchorSet, nil
}

func loadAnchorSidecar(path string) (anchorSidecar, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return anchorSidecar{}, fmt.Errorf("feature: reading anchor sidecar %s: %w", path, err)
	}

	var sidecar anchorSidecar
	if err := json.Unmarshal(raw, &sidecar); err != nil {
		return anchorSidecar{}, fmt.Errorf("feature: parsing anchor sidecar %s: %w", path, err)
	}
	if len(sidecar.Fragments) == 0 {
		return anchorSidecar{}, fmt.Errorf("feature: %s: %w", path, ErrAnchorSidecarMismatch)
	}

	return sidecar, nil
}
