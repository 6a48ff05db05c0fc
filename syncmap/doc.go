// Package syncmap holds the text→fragment→timing mapping the whole core
// accumulates into and returns (§3 Data Model, "Sync map").
//
// 🚀 What is this for?
//
//	Every stream.Controller iteration resolves a batch of fragments
//	against one audio file; syncmap.Map is where those batches merge
//	across iterations and across text files into the one structure the
//	output package serializes.
//
// ⚙️ Usage:
//
//	sm := syncmap.New()
//	sm.Put("chapter1.xhtml", "f1", syncmap.Interval{AudioFile: "ch1.mp3", Begin: 0, End: 1.2})
//	sm.WriteTo(os.Stdout)
package syncmap
