package project

import (
	"sort"

	"github.com/katalvlaran/syncalign/dtwbd"
	"github.com/katalvlaran/syncalign/mfcc"
)

// Fragments projects a non-empty warping path onto anchors, returning a
// begin/end time pair per covered fragment (§4.4). audioStartFrame (a₀)
// is the path's audio axis origin within the owning audio file, in
// frames — nonzero when a previous iteration's tail carried it forward.
func Fragments(path dtwbd.Path, anchors mfcc.AnchorSet, audioStartFrame int) ([]Fragment, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	if anchors.Len() == 0 {
		return nil, ErrNoFragments
	}

	t0, te, ae := path[0].T, path[len(path)-1].T, path[len(path)-1].A

	lo := sort.Search(anchors.Len(), func(i int) bool { return anchors.Anchors[i] >= t0 })
	if lo > 0 {
		lo--
	}
	hi := sort.Search(anchors.Len(), func(i int) bool { return anchors.Anchors[i] > te })

	beginFrames := make([]int, 0, hi-lo+1)
	for k := lo; k < hi; k++ {
		idx := sort.Search(len(path), func(x int) bool { return path[x].T >= anchors.Anchors[k] })
		if idx == len(path) {
			idx = len(path) - 1
		}
		beginFrames = append(beginFrames, path[idx].A)
	}
	beginFrames = append(beginFrames, ae)

	frags := make([]Fragment, 0, len(beginFrames)-1)
	for i := 0; i < len(beginFrames)-1; i++ {
		frags = append(frags, Fragment{
			ID:    anchors.Fragments[lo+i],
			Begin: frameToTime(beginFrames[i], audioStartFrame),
			End:   frameToTime(beginFrames[i+1], audioStartFrame),
		})
	}

	return frags, nil
}

func frameToTime(frame, audioStartFrame int) float64 {
	return float64(frame+audioStartFrame) * mfcc.FrameDuration
}
