// Package dtwbd implements DTW-BD: dynamic time warping with open
// boundary conditions and explicit per-frame skip transitions (§4.2).
//
// 🚀 What is DTW-BD?
//
//	Classic DTW forces alignment to start at (0,0) and end at (n-1,m-1).
//	DTW-BD instead lets the path start and end anywhere, charging a flat
//	per-frame penalty for any leading/trailing material it skips on
//	either axis — the shape forced-alignment needs when neither the
//	text nor the audio stream's boundaries line up with fragment
//	boundaries.
//
// ✨ Key features:
//   - boundary-open entry/exit, accounted via running row/column minima
//   - explicit skip transitions on both axes, penalty s per frame
//   - optional Mask restricting the DP to a connected band of cells
//     (fed by the fastdtw package's multi-resolution driver)
//   - deterministic tie-breaking: diagonal > axis-parallel > skip
//
// ⚙️ Usage:
//
//	opts := dtwbd.DefaultOptions()
//	opts.SkipPenalty = 0.75
//	cost, path, err := dtwbd.Align(textMFCC, audioMFCC, opts)
//
// Complexity: O(cells in Mask) time and memory; O(n·m) when unconstrained.
package dtwbd
