// Package stream implements the stream controller (§4.5): it walks
// sorted text- and audio-file lists, calling fastdtw.Align on the
// current pair and folding each call's fragment timings into a
// syncmap.Map, retaining whichever side's tail didn't fully match so the
// next call picks up where the last one left off.
//
// 🚀 What is this for?
//
//	A single FastDTW-BD call covers one (text, audio) pair. Books are
//	usually split across many text and audio files whose boundaries
//	don't line up one-to-one; the controller is what stitches per-pair
//	alignments into one global sync map.
//
// ✨ Key features:
//   - cursors over independent text/audio file lists, advanced
//     independently per the "advance audio when undecided" policy
//   - retained-tail slicing of both the text anchor set and the audio
//     matrix across iterations
//   - the a₀ += aₑ audio-offset-update fix called out in Design Notes
//   - cooperative cancellation via context.Context between calls
//   - structured per-iteration logging via charmbracelet/log
//
// ⚙️ Usage:
//
//	ctrl, err := stream.NewController(textPaths, audioPaths, textLoader, audioLoader, stream.DefaultOptions())
//	sm, err := ctrl.Run(ctx)
package stream
