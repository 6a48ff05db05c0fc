package output

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/syncalign/syncmap"
)

type jsonFragment struct {
	AudioFile string `json:"audio_file"`
	Begin     string `json:"begin_time"`
	End       string `json:"end_time"`
}

// WriteJSON serializes textName's fragments keyed by fragment id. Unlike
// WriteSMIL, fragments with begin == end are kept verbatim: JSON has no
// clipBegin/clipEnd constraint to violate.
func WriteJSON(w io.Writer, sm *syncmap.Map, textName string, tf TimeFormat) error {
	timings := sm.Fragments(textName)

	out := make(map[string]jsonFragment, len(timings))
	for _, t := range timings {
		out[t.FragmentID] = jsonFragment{
			AudioFile: t.AudioFile,
			Begin:     formatTime(t.Begin, tf),
			End:       formatTime(t.End, tf),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
