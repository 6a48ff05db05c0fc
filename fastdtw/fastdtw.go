package fastdtw

import (
	"github.com/katalvlaran/syncalign/dtwbd"
	"github.com/katalvlaran/syncalign/mfcc"
)

// Align runs the multi-resolution FastDTW-BD driver (§4.3) between x
// (text) and y (audio). It recurses to a coarse base case, then refines
// level by level, each level restricting dtwbd.Align to a band built
// from the previous level's path.
func Align(x, y mfcc.Matrix, opts Options) (cost float64, path dtwbd.Path, err error) {
	if err = opts.Validate(); err != nil {
		return 0, nil, err
	}

	return align(x, y, opts)
}

func align(x, y mfcc.Matrix, opts Options) (float64, dtwbd.Path, error) {
	n, m := x.Frames, y.Frames
	if min(n, m) <= opts.Radius+2 {
		return dtwbd.Align(x, y, dtwbd.Options{SkipPenalty: opts.SkipPenalty})
	}

	xc := downsample(x)
	yc := downsample(y)

	_, coarsePath, err := align(xc, yc, opts)
	if err != nil {
		return 0, nil, err
	}

	var mask *dtwbd.Mask
	if len(coarsePath) == 0 {
		// The coarser level found no viable alignment at all; refining
		// its (nonexistent) band would only propagate that failure, so
		// fall back to the full grid at this level instead.
		mask = dtwbd.FullMask(n, m)
	} else {
		mask = buildMask(projectPath(coarsePath), n, m, opts.Radius)
	}

	return dtwbd.Align(x, y, dtwbd.Options{SkipPenalty: opts.SkipPenalty, Mask: mask})
}
