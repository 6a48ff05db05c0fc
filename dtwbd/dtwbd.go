package dtwbd

import (
	"math"

	"github.com/katalvlaran/syncalign/mfcc"
)

// transition priority for deterministic tie-breaking: lower wins ties.
// Diagonal beats axis-parallel beats skip (§4.2 Tie-breaking); "start"
// only fires at grid boundaries and otherwise loses to every real move.
const (
	prioDiagonal = iota
	prioVertical
	prioHorizontal
	prioSkipText
	prioSkipAudio
	prioStart
)

// candidate is one relaxation option considered for a single DP cell.
type candidate struct {
	cost     float64
	priority int
	predT    int // -1 marks "no predecessor" (path starts here)
	predA    int
}

// bandRow is the DP storage for one text row, restricted to the mask's
// permitted column range [lo, hi). Cells outside that range are treated
// as cost +Inf and are never materialized, which keeps per-call memory
// proportional to the mask's size (§4.3 complexity, §5 memory discipline)
// rather than the full n×m grid.
type bandRow struct {
	lo, hi int
	cost   []float64
	predT  []int
	predA  []int
}

func newBandRow(lo, hi int) bandRow {
	width := hi - lo
	cost := make([]float64, width)
	predT := make([]int, width)
	predA := make([]int, width)
	for k := range cost {
		cost[k] = math.Inf(1)
		predT[k] = -1
		predA[k] = -1
	}

	return bandRow{lo: lo, hi: hi, cost: cost, predT: predT, predA: predA}
}

func (r bandRow) has(j int) bool { return j >= r.lo && j < r.hi }

func (r bandRow) get(j int) float64 {
	if !r.has(j) {
		return math.Inf(1)
	}

	return r.cost[j-r.lo]
}

func (r bandRow) pred(j int) (int, int) {
	k := j - r.lo

	return r.predT[k], r.predA[k]
}

func (r *bandRow) set(j int, cost float64, predT, predA int) {
	k := j - r.lo
	r.cost[k] = cost
	r.predT[k] = predT
	r.predA[k] = predA
}

// Align runs constrained DTW-BD between x (text) and y (audio) MFCC
// matrices and returns the best cost plus, unless the trivial
// skip-everything alignment wins, the reconstructed warping path (§4.2).
//
// Preconditions: opts.Validate() must not error; x and y must share a
// coefficient count unless one of them is empty (the empty-sequence case
// degenerates to "skip everything", §8 scenario S2).
func Align(x, y mfcc.Matrix, opts Options) (cost float64, path Path, err error) {
	if err = opts.Validate(); err != nil {
		return 0, nil, err
	}

	n, m := x.Frames, y.Frames
	s := opts.SkipPenalty
	trivial := float64(n+m) * s

	// Degenerate case: one side is empty, so every frame on the other
	// side must be skipped (§8 S2).
	if n == 0 || m == 0 {
		return trivial, nil, nil
	}

	if mfcc.SameShape(x, y) != nil {
		return 0, nil, ErrDimensionMismatch
	}

	mask := opts.Mask
	if mask == nil {
		mask = FullMask(n, m)
	}
	if err = mask.validate(n, m); err != nil {
		return 0, nil, err
	}

	rows := make([]bandRow, n)

	// colMin[j] / colArgMinT[j] track, as rows are swept top-to-bottom,
	// the cheapest cell seen so far in column j at row <= the one being
	// filled — the running minimum the "skip audio frame" transition
	// relaxes against (§4.2, "(*, j-1)"). Because column j-1 of row i is
	// always filled before column j of the same row, colArgMinT[j-1]
	// never exceeds the current row, keeping the text axis non-decreasing.
	colMin := make([]float64, m)
	colArgMinT := make([]int, m)
	for j := range colMin {
		colMin[j] = math.Inf(1)
		colArgMinT[j] = -1
	}

	for i := 0; i < n; i++ {
		lo, hi := mask.Bounds(i)
		row := newBandRow(lo, hi)

		// prefixMin/prefixArgA give, for each column j, the minimum cost
		// (and its column) among row i-1's cells at columns <= j — a
		// running minimum restricted to a PREFIX of the previous row, not
		// the whole row. This is what keeps the "skip text frame"
		// transition's audio coordinate non-decreasing: its predecessor
		// column can never exceed the current j (§3 path monotonicity).
		var prefixMin []float64
		var prefixArgA []int
		var prefixLo int
		if i > 0 {
			prev := rows[i-1]
			prefixLo = prev.lo
			prefixMin = make([]float64, len(prev.cost))
			prefixArgA = make([]int, len(prev.cost))
			runMin, runArg := math.Inf(1), -1
			for k, c := range prev.cost {
				if c < runMin {
					runMin, runArg = c, prefixLo+k
				}
				prefixMin[k] = runMin
				prefixArgA[k] = runArg
			}
		}
		lookupPrefix := func(j int) (float64, int) {
			if len(prefixMin) == 0 || j < prefixLo {
				return math.Inf(1), -1
			}
			k := j - prefixLo
			if k >= len(prefixMin) {
				k = len(prefixMin) - 1
			}

			return prefixMin[k], prefixArgA[k]
		}

		for j := lo; j < hi; j++ {
			dist := frameDistance(x.Frame(i), y.Frame(j))

			best := candidate{cost: math.Inf(1), priority: prioStart, predT: -1, predA: -1}
			consider := func(c candidate) {
				if c.cost < best.cost || (c.cost == best.cost && c.priority < best.priority) {
					best = c
				}
			}

			// start: only admissible on the first row or first column.
			if i == 0 || j == 0 {
				var entry float64
				switch {
				case i == 0 && j == 0:
					entry = dist
				case i == 0:
					entry = float64(j)*s + dist
				default: // j == 0
					entry = float64(i)*s + dist
				}
				consider(candidate{cost: entry, priority: prioStart, predT: -1, predA: -1})
			}

			if i > 0 && j > 0 {
				if v := rows[i-1].get(j - 1); !math.IsInf(v, 1) {
					consider(candidate{cost: v + dist, priority: prioDiagonal, predT: i - 1, predA: j - 1})
				}
			}
			if i > 0 {
				if v := rows[i-1].get(j); !math.IsInf(v, 1) {
					consider(candidate{cost: v + dist, priority: prioVertical, predT: i - 1, predA: j})
				}
			}
			if j > 0 {
				if v := row.get(j - 1); !math.IsInf(v, 1) {
					consider(candidate{cost: v + dist, priority: prioHorizontal, predT: i, predA: j - 1})
				}
			}
			if i > 0 {
				if v, argA := lookupPrefix(j); !math.IsInf(v, 1) {
					consider(candidate{cost: v + s, priority: prioSkipText, predT: i - 1, predA: argA})
				}
			}
			if j > 0 && !math.IsInf(colMin[j-1], 1) {
				consider(candidate{cost: colMin[j-1] + s, priority: prioSkipAudio, predT: colArgMinT[j-1], predA: j - 1})
			}

			row.set(j, best.cost, best.predT, best.predA)

			if best.cost < colMin[j] {
				colMin[j], colArgMinT[j] = best.cost, i
			}
		}

		rows[i] = row
	}

	// Boundary termination (§4.2): the best cost is the minimum, over
	// every cell in the last row or last column, of (cost to reach that
	// cell) + (skip penalty for the frames trailing it on the opposite
	// axis).
	best := math.Inf(1)
	var bestCell Cell
	lastRow := rows[n-1]
	for j := lastRow.lo; j < lastRow.hi; j++ {
		c := lastRow.get(j) + float64(m-1-j)*s
		if c < best {
			best, bestCell = c, Cell{T: n - 1, A: j}
		}
	}
	for i := 0; i < n; i++ {
		if !rows[i].has(m - 1) {
			continue
		}
		c := rows[i].get(m-1) + float64(n-1-i)*s
		if c < best {
			best, bestCell = c, Cell{T: i, A: m - 1}
		}
	}

	if best >= trivial {
		return trivial, nil, nil
	}

	return best, backtrackPath(rows, bestCell), nil
}

// backtrackPath walks predecessor links from the chosen terminal cell
// back to whichever cell's predecessor is the virtual start state, then
// reverses the result so the path runs start→terminal.
func backtrackPath(rows []bandRow, terminal Cell) Path {
	path := make(Path, 0, len(rows))
	i, j := terminal.T, terminal.A
	for {
		path = append(path, Cell{T: i, A: j})
		predT, predA := rows[i].pred(j)
		if predT == -1 {
			break
		}
		i, j = predT, predA
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}
