package dtwbd_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/syncalign/dtwbd"
	"github.com/katalvlaran/syncalign/mfcc"
	"pgregory.net/rapid"
)

func randomMatrix(t *rapid.T, label string, frames, coefs int) mfcc.Matrix {
	data := rapid.SliceOfN(rapid.Float32Range(-10, 10), frames*coefs, frames*coefs).Draw(t, label)
	m, err := mfcc.NewMatrix(frames, coefs, data)
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}

	return m
}

// TestProperty_PathMonotoneAndTransitionsPermitted covers invariants 1
// and 2 of §8: a non-empty path is non-decreasing on both axes with no
// duplicate cells, and every adjacent pair differs by one of the six
// permitted §4.2 transitions.
func TestProperty_PathMonotoneAndTransitionsPermitted(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 12).Draw(t, "n")
		m := rapid.IntRange(1, 12).Draw(t, "m")
		coefs := rapid.IntRange(1, 3).Draw(t, "coefs")
		skip := rapid.Float64Range(0, 2).Draw(t, "skip")

		x := randomMatrix(t, "x", n, coefs)
		y := randomMatrix(t, "y", m, coefs)

		_, path, err := dtwbd.Align(x, y, dtwbd.Options{SkipPenalty: skip})
		if err != nil {
			t.Fatalf("Align: %v", err)
		}

		seen := make(map[dtwbd.Cell]bool, len(path))
		for i, c := range path {
			if seen[c] {
				t.Fatalf("duplicate cell %v at index %d", c, i)
			}
			seen[c] = true

			if i == 0 {
				continue
			}
			prev := path[i-1]
			if c.T < prev.T || c.A < prev.A {
				t.Fatalf("path not monotone: %v -> %v", prev, c)
			}

			dt, da := c.T-prev.T, c.A-prev.A
			permitted := (dt == 1 && da == 1) || // diagonal
				(dt == 1 && da == 0) || // vertical
				(dt == 0 && da == 1) || // horizontal
				(dt == 1 && da >= 0) || // skip text frame
				(da == 1 && dt >= 0) // skip audio frame
			if !permitted {
				t.Fatalf("transition %v -> %v is not permitted (dt=%d da=%d)", prev, c, dt, da)
			}
		}
	})
}

// TestProperty_IdenticalSequencesAlignDiagonally covers invariant 7: two
// identical sequences align along the main diagonal at zero cost.
func TestProperty_IdenticalSequencesAlignDiagonally(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 15).Draw(t, "n")
		coefs := rapid.IntRange(1, 3).Draw(t, "coefs")
		x := randomMatrix(t, "x", n, coefs)
		skip := rapid.Float64Range(0.01, 2).Draw(t, "skip")

		cost, path, err := dtwbd.Align(x, x, dtwbd.Options{SkipPenalty: skip})
		if err != nil {
			t.Fatalf("Align: %v", err)
		}

		if math.Abs(cost) > 1e-9 {
			t.Fatalf("expected cost 0 for identical sequences, got %v", cost)
		}
		if len(path) != n {
			t.Fatalf("expected diagonal path of length %d, got %d", n, len(path))
		}
		for i, c := range path {
			if c.T != i || c.A != i {
				t.Fatalf("expected diagonal cell (%d,%d), got %v", i, i, c)
			}
		}
	})
}

// TestProperty_CostNeverExceedsTrivial covers invariant 5's consequence:
// Align never reports a cost worse than skipping every frame.
func TestProperty_CostNeverExceedsTrivial(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 10).Draw(t, "n")
		m := rapid.IntRange(1, 10).Draw(t, "m")
		coefs := rapid.IntRange(1, 3).Draw(t, "coefs")
		skip := rapid.Float64Range(0, 2).Draw(t, "skip")

		x := randomMatrix(t, "x", n, coefs)
		y := randomMatrix(t, "y", m, coefs)

		cost, _, err := dtwbd.Align(x, y, dtwbd.Options{SkipPenalty: skip})
		if err != nil {
			t.Fatalf("Align: %v", err)
		}

		trivial := float64(n+m) * skip
		if cost > trivial+1e-9 {
			t.Fatalf("cost %v exceeds trivial all-skip cost %v", cost, trivial)
		}
	})
}

// TestProperty_SymmetricUnderTranspose covers invariant 8: swapping the
// two sequences and transposing the path yields the same cost.
func TestProperty_SymmetricUnderTranspose(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(t, "n")
		m := rapid.IntRange(1, 8).Draw(t, "m")
		coefs := rapid.IntRange(1, 3).Draw(t, "coefs")
		skip := rapid.Float64Range(0, 2).Draw(t, "skip")

		x := randomMatrix(t, "x", n, coefs)
		y := randomMatrix(t, "y", m, coefs)

		cost1, _, err := dtwbd.Align(x, y, dtwbd.Options{SkipPenalty: skip})
		if err != nil {
			t.Fatalf("Align: %v", err)
		}
		cost2, _, err := dtwbd.Align(y, x, dtwbd.Options{SkipPenalty: skip})
		if err != nil {
			t.Fatalf("Align: %v", err)
		}

		if math.Abs(cost1-cost2) > 1e-6 {
			t.Fatalf("transpose asymmetry: %v vs %v", cost1, cost2)
		}
	})
}
