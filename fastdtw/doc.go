// Package fastdtw implements the multi-resolution FastDTW-BD driver
// (§4.3): it runs dtwbd.Align at successively finer resolutions, using
// each coarse solution to build a narrow Mask for the next, rather than
// ever materializing the full n×m grid.
//
// 🚀 What is this for?
//
//	dtwbd.Align alone is O(n·m); a full book chapter against its
//	narration is easily 10⁴×10⁴ frames. FastDTW-BD downsamples both
//	sequences by half repeatedly until they're small enough to align
//	directly, then projects that coarse path back up one level at a
//	time, each time only re-examining a radius-wide band around the
//	projection.
//
// ✨ Key features:
//   - recursive halving with a direct base case at min(n,m) ≤ radius+2
//   - 2×2 block projection of a coarse path to the next finer level
//   - Chebyshev dilation of the projected path into a dtwbd.Mask
//   - falls back to the unconstrained grid if a lower level found no
//     alignment at all, rather than propagating an empty mask upward
//
// ⚙️ Usage:
//
//	opts := fastdtw.DefaultOptions()
//	cost, path, err := fastdtw.Align(textMFCC, audioMFCC, opts)
//
// Complexity: O((n+m)·radius) time and memory (§4.3).
package fastdtw
