package syncmap

import (
	"fmt"
	"io"
)

// textBucket holds one text file's fragments in first-write order, plus
// an index for upserting a fragment already seen from an earlier
// stream-controller iteration (a retained text tail can re-map a
// fragment that an earlier, now-superseded call also touched).
type textBucket struct {
	timings []Timing
	index   map[string]int
}

// Map is the text-file-name → fragment-id → Interval mapping the core
// accumulates (§3 Data Model, "Sync map"). The zero value is not usable;
// construct with New.
type Map struct {
	order   []string
	buckets map[string]*textBucket
}

// New returns an empty Map.
func New() *Map {
	return &Map{buckets: make(map[string]*textBucket)}
}

// Put records (or overwrites) one fragment's interval under a text file
// name, preserving the order text files and fragments were first seen.
func (m *Map) Put(textName, fragmentID string, iv Interval) {
	b, ok := m.buckets[textName]
	if !ok {
		b = &textBucket{index: make(map[string]int)}
		m.buckets[textName] = b
		m.order = append(m.order, textName)
	}

	if i, ok := b.index[fragmentID]; ok {
		b.timings[i].Interval = iv

		return
	}

	b.index[fragmentID] = len(b.timings)
	b.timings = append(b.timings, Timing{FragmentID: fragmentID, Interval: iv})
}

// Texts returns the text file names in first-write order.
func (m *Map) Texts() []string {
	return m.order
}

// Fragments returns textName's fragment timings in first-write order.
func (m *Map) Fragments(textName string) []Timing {
	b, ok := m.buckets[textName]
	if !ok {
		return nil
	}

	return b.timings
}

// Empty reports whether the map holds no fragments at all — the signal
// the core treats as total alignment failure (§6 Exit conditions).
func (m *Map) Empty() bool {
	return len(m.order) == 0
}

// WriteTo dumps the map in a plain line-oriented debug format: one line
// per text name, followed by one line per fragment. Equivalent to the
// original's print_sync_map. The afalign CLI does not call it.
func (m *Map) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, text := range m.order {
		n, err := fmt.Fprintln(w, text)
		total += int64(n)
		if err != nil {
			return total, err
		}

		for _, t := range m.Fragments(text) {
			n, err = fmt.Fprintf(w, "%s %s %.3f %.3f\n", t.FragmentID, t.AudioFile, t.Begin, t.End)
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}

	return total, nil
}
