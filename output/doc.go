// Package output renders a syncmap.Map into the two serialization
// formats §6 names: SMIL (EPUB-3 media overlay) and JSON.
//
// 🚀 What is this for?
//
//	The sync map is the alignment core's internal result; audiobook
//	readers need it as files on disk. This package is the one place
//	that turns Map into either shape, applying the one elision rule
//	the spec is explicit about: a fragment with begin == end is valid
//	in JSON but must not appear in SMIL (EPUB3 requires clipBegin <
//	clipEnd).
//
// ⚙️ Usage:
//
//	err := output.WriteSMIL(w, sm, "chapter1.xhtml", output.TimeFormatClock)
//	err := output.WriteJSON(w, sm, "chapter1.xhtml", output.TimeFormatClock)
package output
