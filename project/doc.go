// Package project implements the path-to-timing projector (§4.4): it
// turns a warping path plus an anchor/fragment list into per-fragment
// audio timings.
//
// 🚀 What is this for?
//
//	dtwbd/fastdtw produce a grid path; the stream controller needs
//	wall-clock begin/end times per fragment. This package is the one
//	place that walks an AnchorSet against a Path and converts frame
//	indices to seconds.
//
// ✨ Key features:
//   - binary search over anchors to find the range a path covers
//   - one-step backward extension so the fragment containing the
//     path's first frame is always included
//   - binary search over the path itself to locate each anchor's
//     audio-frame position
//   - begin == end fragments are emitted verbatim; eliding them is a
//     serializer concern (§6 Output formats), not this package's
//
// ⚙️ Usage:
//
//	frags, err := project.Fragments(path, anchors, audioStartFrame)
package project
