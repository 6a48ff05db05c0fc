// Package mfcc defines the dense frame matrix and anchor/fragment types
// shared by the alignment engine.
//
// 🚀 What lives here?
//
//	A Matrix is a row-major (frames × coefficients) buffer of MFCC
//	features, the common currency between the text and audio sides of
//	the aligner. An AnchorSet pairs fragment boundaries (frame indices)
//	with their fragment IDs so the two slices can never drift apart
//	under tail-slicing.
//
// ✨ Key features:
//   - contiguous row-major storage, offset-view slicing where safe
//   - FrameDuration is the fixed 0.040s cadence the whole engine assumes
//   - validation of shape/anchor invariants at construction time
//
// See dtwbd and fastdtw for the algorithms that consume a Matrix, and
// project for turning a warping path plus an AnchorSet into timings.
package mfcc
