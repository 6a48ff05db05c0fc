package feature

import "github.com/katalvlaran/syncalign/mfcc"

// WAVAudioLoader is the reference AudioLoader: it decodes a canonical
// WAV file and runs the mel-filterbank/DCT pipeline over it.
type WAVAudioLoader struct {
	params MFCCParams
}

// NewWAVAudioLoader constructs a WAVAudioLoader with the given MFCC
// extraction parameters.
func NewWAVAudioLoader(params MFCCParams) *WAVAudioLoader {
	return &WAVAudioLoader{params: params}
}

// LoadAudio implements AudioLoader.
func (l *WAVAudioLoader) LoadAudio(path string) (mfcc.Matrix, error) {
	samples, rate, err := readWAV(path)
	if err != nil {
		return mfcc.Matrix{}, err
	}

	return extractMFCC(samples, rate, l.params)
}
