// Package syncalign aligns a synthesized narration text against its
// recorded audio and produces a fragment-to-timing sync map, using
// FastDTW-BD (banded dynamic time warping with boundary and skip
// transitions) as its alignment core.
//
// 🚀 What is syncalign?
//
//	A forced-alignment engine: feed it parallel lists of text and audio
//	sources and it returns which audio interval narrates each text
//	fragment, streaming across file-pair boundaries when one side runs
//	out before the other.
//
// ✨ Key features
//
//   - FastDTW-BD core (dtwbd, fastdtw) — banded DP with boundary entry
//     and skip-text/skip-audio transitions, multi-resolution recursion
//     for long sequences.
//   - Reference feature pipeline (feature) — WAV and AAC/ADTS decoding,
//     mel-filterbank MFCC extraction.
//   - Streaming controller (stream) — cursors over file lists with
//     retained-tail carryover between FastDTW-BD calls.
//   - SMIL and JSON output (output).
//
// ⚙️ Usage:
//
//	sm, err := syncalign.Align(ctx, texts, audios, syncalign.DefaultOptions())
package syncalign
