package output

import (
	"fmt"
	"io"
	"math"
	"text/template"

	"github.com/katalvlaran/syncalign/syncmap"
)

// parIDWidth returns how many digits wide a zero-padded "parN" id needs
// to be for a sequence of count fragments (the original's
// get_number_of_digits_to_name).
func parIDWidth(count int) int {
	if count <= 0 {
		return 0
	}

	return int(math.Floor(math.Log10(float64(count)))) + 1
}

type smilPar struct {
	ID         string
	FragmentID string
	AudioPath  string
	Begin      string
	End        string
}

type smilDoc struct {
	TextPath  string
	Parallels []smilPar
}

var smilTemplate = template.Must(template.New("smil").Parse(`<?xml version="1.0" encoding="UTF-8"?>
<smil xmlns="http://www.w3.org/ns/SMIL" xmlns:epub="http://www.idpf.org/2007/ops" version="3.0">
  <body>
    <seq id="seq1" epub:textref="{{.TextPath}}">
{{- range .Parallels}}
      <par id="{{.ID}}">
        <text src="{{$.TextPath}}#{{.FragmentID}}"/>
        <audio src="{{.AudioPath}}" clipBegin="{{.Begin}}" clipEnd="{{.End}}"/>
      </par>
{{- end}}
    </seq>
  </body>
</smil>
`))

// WriteSMIL renders textName's fragments as an EPUB-3 media overlay.
// Fragments with begin == end are omitted (EPUB3 requires clipBegin <
// clipEnd, §6 Output formats); the par id counter still advances past
// them, matching the original's enumerate-then-filter order.
func WriteSMIL(w io.Writer, sm *syncmap.Map, textName string, tf TimeFormat) error {
	timings := sm.Fragments(textName)
	width := parIDWidth(len(timings))

	doc := smilDoc{TextPath: textName}
	for i, t := range timings {
		if t.Begin == t.End {
			continue
		}
		doc.Parallels = append(doc.Parallels, smilPar{
			ID:         fmt.Sprintf("par%0*d", width, i+1),
			FragmentID: t.FragmentID,
			AudioPath:  t.AudioFile,
			Begin:      formatTime(t.Begin, tf),
			End:        formatTime(t.End, tf),
		})
	}

	return smilTemplate.Execute(w, doc)
}
