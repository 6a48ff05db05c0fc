package syncalign

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/syncalign/feature"
	"github.com/katalvlaran/syncalign/stream"
	"github.com/katalvlaran/syncalign/syncmap"
)

// Align runs the streaming alignment controller over texts and audios,
// transcoding FormatAAC sources into a scratch directory first; a source
// with any other format than FormatWAV or FormatAAC is rejected with
// ErrBadInput. The scratch directory is removed on every exit path
// (§5 Concurrency & resource model).
func Align(ctx context.Context, texts []TextSource, audios []AudioSource, opts Options) (syncmap.Map, error) {
	if err := opts.Validate(); err != nil {
		return syncmap.Map{}, err
	}

	scratchDir, err := os.MkdirTemp("", "syncalign-")
	if err != nil {
		return syncmap.Map{}, fmt.Errorf("%w: %v", stream.ErrScratchDir, err)
	}
	defer func() {
		if rmErr := os.RemoveAll(scratchDir); rmErr != nil {
			log.Error("failed to remove scratch directory", "path", scratchDir, "error", rmErr)
		}
	}()

	transcoder := feature.ADTSTranscoder{}

	audioPaths := make([]string, len(audios))
	for i, a := range audios {
		switch a.Format {
		case FormatWAV:
			audioPaths[i] = a.Path
		case FormatAAC:
			wavPath, terr := transcoder.Transcode(a.Path, scratchDir)
			if terr != nil {
				return syncmap.Map{}, fmt.Errorf("syncalign: transcoding %s: %w", a.Path, terr)
			}
			audioPaths[i] = wavPath
		default:
			return syncmap.Map{}, fmt.Errorf("%w: unknown audio format for %s", ErrBadInput, a.Path)
		}
	}

	textPaths := make([]string, len(texts))
	for i, t := range texts {
		textPaths[i] = t.Path
	}

	textLoader := feature.NewWAVTextLoader(opts.MFCC)
	audioLoader := feature.NewWAVAudioLoader(opts.MFCC)

	ctrl, err := stream.NewController(textPaths, audioPaths, textLoader, audioLoader, stream.Options{
		SkipPenalty: opts.SkipPenalty,
		Radius:      opts.Radius,
	})
	if err != nil {
		return syncmap.Map{}, err
	}

	sm, err := ctrl.Run(ctx)
	if err != nil {
		return syncmap.Map{}, err
	}

	return *sm, nil
}
