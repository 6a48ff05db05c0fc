// Package feature implements the external collaborator contracts §6
// names abstractly — TextLoader, AudioLoader, Transcoder — plus working
// reference implementations, so the core ships with a usable default
// instead of leaving feature extraction entirely to the caller.
//
// 🚀 What is this for?
//
//	The alignment core only ever sees mfcc.Matrix values; turning text
//	and audio files into those matrices is this package's job. It
//	leans on gonum's FFT for the mel-filterbank/DCT pipeline and
//	go-audio/wav for canonical WAV decoding, the same stack
//	emer-auditory uses for its own auditory front end.
//
// ✨ Key features:
//   - WAVAudioLoader: WAV → MFCC, dropping the first (energy)
//     coefficient per the audio/text coefficient-count agreement (§6)
//   - WAVTextLoader: a pre-synthesized narration WAV plus a JSON anchor
//     sidecar (TTS synthesis itself is a Non-goal; this loader consumes
//     its output rather than producing it)
//   - ADTSTranscoder: AAC/ADTS → canonical WAV via go-aac, fulfilling
//     the Transcoder side channel without shelling out to ffmpeg
//
// ⚙️ Usage:
//
//	loader := feature.NewWAVAudioLoader(feature.DefaultMFCCParams())
//	m, err := loader.LoadAudio("narration.wav")
package feature
