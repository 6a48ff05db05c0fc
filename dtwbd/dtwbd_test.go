package dtwbd_test

import (
	"testing"

	"github.com/katalvlaran/syncalign/dtwbd"
	"github.com/katalvlaran/syncalign/mfcc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMatrix(t *testing.T, frames, coefs int, data []float32) mfcc.Matrix {
	t.Helper()
	m, err := mfcc.NewMatrix(frames, coefs, data)
	require.NoError(t, err)

	return m
}

// flat builds an n-frame, 1-coefficient Matrix from per-frame values.
func flat(t *testing.T, vals ...float32) mfcc.Matrix {
	return mustMatrix(t, len(vals), 1, vals)
}

// TestAlign_Identity covers S1: identical sequences align diagonally at
// zero cost.
func TestAlign_Identity(t *testing.T) {
	x := flat(t, 0, 0, 0, 0, 0)
	y := flat(t, 0, 0, 0, 0, 0)
	opts := dtwbd.DefaultOptions()

	cost, path, err := dtwbd.Align(x, y, opts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, cost)
	require.Len(t, path, 5)
	for i, c := range path {
		assert.Equal(t, dtwbd.Cell{T: i, A: i}, c)
	}
}

// TestAlign_EmptyText covers S2: an empty text sequence against 50 audio
// frames must skip everything with no backtrace.
func TestAlign_EmptyText(t *testing.T) {
	x := mfcc.Matrix{}
	y := mustMatrix(t, 50, 1, make([]float32, 50))
	opts := dtwbd.DefaultOptions()
	opts.SkipPenalty = 0.75

	cost, path, err := dtwbd.Align(x, y, opts)
	require.NoError(t, err)
	assert.Equal(t, 50*0.75, cost)
	assert.Nil(t, path)
}

// TestAlign_EmptyAudio mirrors TestAlign_EmptyText on the other axis.
func TestAlign_EmptyAudio(t *testing.T) {
	x := mustMatrix(t, 12, 1, make([]float32, 12))
	y := mfcc.Matrix{}
	opts := dtwbd.DefaultOptions()
	opts.SkipPenalty = 0.75

	cost, path, err := dtwbd.Align(x, y, opts)
	require.NoError(t, err)
	assert.Equal(t, 12*0.75, cost)
	assert.Nil(t, path)
}

// TestAlign_BothEmpty is the degenerate corner of S2: zero cost, no path.
func TestAlign_BothEmpty(t *testing.T) {
	opts := dtwbd.DefaultOptions()

	cost, path, err := dtwbd.Align(mfcc.Matrix{}, mfcc.Matrix{}, opts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, cost)
	assert.Nil(t, path)
}

// TestAlign_LeadingAudioSkipped checks that frames before the text's true
// start are paid for via the boundary "start" entry rather than forcing a
// diagonal match against noise.
func TestAlign_LeadingAudioSkipped(t *testing.T) {
	x := flat(t, 5, 5, 5)
	y := flat(t, 9, 9, 5, 5, 5)
	opts := dtwbd.DefaultOptions()
	opts.SkipPenalty = 0.1

	cost, path, err := dtwbd.Align(x, y, opts)
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.Equal(t, dtwbd.Cell{T: 0, A: 2}, path[0])
	assert.Equal(t, dtwbd.Cell{T: 2, A: 4}, path[len(path)-1])
	assert.InDelta(t, 2*0.1, cost, 1e-9)
}

// TestAlign_NoMatch covers S6: when the two sequences are maximally
// dissimilar and the skip penalty is tiny, skipping everything beats any
// real match, so Align reports the trivial cost and a nil path.
func TestAlign_NoMatch(t *testing.T) {
	x := flat(t, 0, 0, 0)
	y := flat(t, 1000, 1000, 1000)
	opts := dtwbd.DefaultOptions()
	opts.SkipPenalty = 0.01

	cost, path, err := dtwbd.Align(x, y, opts)
	require.NoError(t, err)
	assert.Equal(t, float64(3+3)*0.01, cost)
	assert.Nil(t, path)
}

// TestAlign_TieBreakPrefersDiagonal constructs a cell where diagonal and
// axis-parallel moves tie on cost; diagonal must win (§4.2 Tie-breaking).
func TestAlign_TieBreakPrefersDiagonal(t *testing.T) {
	x := flat(t, 0, 0)
	y := flat(t, 0, 0)
	opts := dtwbd.DefaultOptions()
	opts.SkipPenalty = 0.75

	_, path, err := dtwbd.Align(x, y, opts)
	require.NoError(t, err)
	require.Len(t, path, 2)
	assert.Equal(t, dtwbd.Cell{T: 0, A: 0}, path[0])
	assert.Equal(t, dtwbd.Cell{T: 1, A: 1}, path[1])
}

// TestAlign_DimensionMismatch ensures coefficient-count disagreement
// errors before the DP loop runs.
func TestAlign_DimensionMismatch(t *testing.T) {
	x := mustMatrix(t, 3, 2, make([]float32, 6))
	y := mustMatrix(t, 3, 3, make([]float32, 9))
	opts := dtwbd.DefaultOptions()

	_, _, err := dtwbd.Align(x, y, opts)
	assert.ErrorIs(t, err, dtwbd.ErrDimensionMismatch)
}

// TestAlign_BadOptions ensures a negative skip penalty is rejected.
func TestAlign_BadOptions(t *testing.T) {
	x := flat(t, 0)
	y := flat(t, 0)
	opts := dtwbd.Options{SkipPenalty: -1}

	_, _, err := dtwbd.Align(x, y, opts)
	assert.ErrorIs(t, err, dtwbd.ErrBadInput)
}

// TestAlign_MaskRestrictsPath confirms a Mask excluding the diagonal
// forces an off-diagonal (and costlier) path.
func TestAlign_MaskRestrictsPath(t *testing.T) {
	x := flat(t, 0, 0, 0)
	y := flat(t, 0, 0, 0)
	mask := &dtwbd.Mask{Lo: []int{1, 1, 1}, Hi: []int{2, 2, 2}}
	opts := dtwbd.DefaultOptions()
	opts.Mask = mask

	_, path, err := dtwbd.Align(x, y, opts)
	require.NoError(t, err)
	for _, c := range path {
		assert.Equal(t, 1, c.A)
	}
}

// TestAlign_MaskOutOfRange ensures an invalid mask is rejected rather
// than silently clipped.
func TestAlign_MaskOutOfRange(t *testing.T) {
	x := flat(t, 0, 0)
	y := flat(t, 0, 0)
	opts := dtwbd.DefaultOptions()
	opts.Mask = &dtwbd.Mask{Lo: []int{0, 0}, Hi: []int{3, 2}}

	_, _, err := dtwbd.Align(x, y, opts)
	assert.ErrorIs(t, err, dtwbd.ErrMaskOutOfRange)
}

// TestAlign_PathMonotone checks the §3 Data Model invariant that a
// returned path is non-decreasing on both axes with no cell repeated.
func TestAlign_PathMonotone(t *testing.T) {
	x := flat(t, 1, 2, 3, 2, 1)
	y := flat(t, 1, 1, 2, 3, 3, 2, 1, 1)
	opts := dtwbd.DefaultOptions()
	opts.SkipPenalty = 0.5

	_, path, err := dtwbd.Align(x, y, opts)
	require.NoError(t, err)
	require.NotEmpty(t, path)
	seen := make(map[dtwbd.Cell]bool, len(path))
	for i := 1; i < len(path); i++ {
		prev, cur := path[i-1], path[i]
		assert.GreaterOrEqual(t, cur.T, prev.T)
		assert.GreaterOrEqual(t, cur.A, prev.A)
		assert.False(t, seen[cur], "path must not repeat a cell")
		seen[cur] = true
	}
}
