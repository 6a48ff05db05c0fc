package feature

import "github.com/katalvlaran/syncalign/mfcc"

// TextLoader is the "text feature loader" collaborator contract (§6):
// given a text document path, it produces an MFCC matrix plus a parallel
// anchor/fragment list such that |A| = |F| and anchor values are frame
// indices (integer multiples of mfcc.FrameDuration).
type TextLoader interface {
	LoadText(path string) (mfcc.Matrix, mfcc.AnchorSet, error)
}

// AudioLoader is the "audio feature loader" collaborator contract (§6):
// given an audio file path, it produces an MFCC matrix at the same frame
// rate and coefficient count as the text loader.
type AudioLoader interface {
	LoadAudio(path string) (mfcc.Matrix, error)
}

// Transcoder is the collaborator contract for the side channel that may
// invoke an external audio decoder to produce a canonical WAV before
// feature extraction (§6). Transcode returns the path to the produced
// WAV file; callers are responsible for removing it once done.
type Transcoder interface {
	Transcode(srcPath, scratchDir string) (wavPath string, err error)
}
