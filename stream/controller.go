package stream

import (
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/syncalign/fastdtw"
	"github.com/katalvlaran/syncalign/feature"
	"github.com/katalvlaran/syncalign/mfcc"
	"github.com/katalvlaran/syncalign/project"
	"github.com/katalvlaran/syncalign/syncmap"
)

// Controller holds the inputs of a stream-controller run: the text and
// audio file lists, their loaders, and the options. Run keeps the two
// cursors and whichever side's tail survived the last FastDTW-BD call
// (§4.5) as local state, so each Run starts from the beginning.
type Controller struct {
	texts  []string
	audios []string

	textLoader  feature.TextLoader
	audioLoader feature.AudioLoader
	opts        Options
}

// NewController constructs a Controller over sorted text and audio file
// lists.
func NewController(texts, audios []string, textLoader feature.TextLoader, audioLoader feature.AudioLoader, opts Options) (*Controller, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(texts) == 0 {
		return nil, ErrNoTextSources
	}
	if len(audios) == 0 {
		return nil, ErrNoAudioSources
	}

	return &Controller{texts: texts, audios: audios, textLoader: textLoader, audioLoader: audioLoader, opts: opts}, nil
}

// Run drives the main loop (§4.5) until either cursor is exhausted,
// returning the accumulated sync map, or an empty one the moment any
// FastDTW-BD call reports no alignment at all.
func (c *Controller) Run(ctx context.Context) (*syncmap.Map, error) {
	sm := syncmap.New()

	var (
		textIdx, audioIdx int
		textName          string
		audioName         string
		textMFCC          mfcc.Matrix
		anchors           mfcc.AnchorSet
		audioMFCC         mfcc.Matrix
		a0                int
	)

	processNextText, processNextAudio := true, true

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if processNextText {
			if textIdx >= len(c.texts) {
				break
			}
			textName = c.texts[textIdx]
			textIdx++

			var err error
			textMFCC, anchors, err = c.textLoader.LoadText(textName)
			if err != nil {
				return nil, fmt.Errorf("stream: loading text %s: %w", textName, err)
			}
		}

		if processNextAudio {
			if audioIdx >= len(c.audios) {
				break
			}
			audioName = c.audios[audioIdx]
			audioIdx++

			var err error
			audioMFCC, err = c.audioLoader.LoadAudio(audioName)
			if err != nil {
				return nil, fmt.Errorf("stream: loading audio %s: %w", audioName, err)
			}
			a0 = 0
		}

		m := audioMFCC.Frames

		_, path, err := fastdtw.Align(textMFCC, audioMFCC, fastdtw.Options{
			SkipPenalty: c.opts.SkipPenalty,
			Radius:      c.opts.Radius,
		})
		if err != nil {
			return nil, fmt.Errorf("stream: aligning %s against %s: %w", textName, audioName, err)
		}

		if len(path) == 0 {
			log.Warn("no alignment found, terminating", "text", textName, "audio", audioName)

			return syncmap.New(), nil
		}

		frags, err := project.Fragments(path, anchors, a0)
		if err != nil {
			return nil, fmt.Errorf("stream: projecting timings for %s: %w", textName, err)
		}
		for _, f := range frags {
			sm.Put(textName, f.ID, syncmap.Interval{AudioFile: audioName, Begin: f.Begin, End: f.End})
		}

		te := path[len(path)-1].T
		ae := path[len(path)-1].A

		hi := sort.Search(anchors.Len(), func(i int) bool { return anchors.Anchors[i] > te })
		if hi == anchors.Len() {
			processNextText = true
		} else {
			processNextText = false
			textMFCC = textMFCC.Slice(te)
			anchors = anchors.Tail(hi, te)
		}

		if ae == m-1 || !processNextText {
			processNextAudio = true
		} else {
			processNextAudio = false
			audioMFCC = audioMFCC.Slice(ae)
			a0 += ae
		}

		log.Info("iteration complete",
			"text", textName, "audio", audioName, "fragments", len(frags),
			"advanceText", processNextText, "advanceAudio", processNextAudio)
	}

	return sm, nil
}
