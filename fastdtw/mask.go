package fastdtw

import "github.com/katalvlaran/syncalign/dtwbd"

// projectPath expands a coarse-level path to fine-resolution cells: each
// coarse cell (i', j') becomes the 2×2 block {(2i'+a, 2j'+b)} (§4.3 step
// 3). Because the coarse path is non-decreasing on both axes, the
// returned slice is non-decreasing on T too, which the dilation sweep in
// buildMask relies on.
func projectPath(p dtwbd.Path) []dtwbd.Cell {
	cells := make([]dtwbd.Cell, 0, len(p)*4)
	for _, c := range p {
		for a := 0; a < 2; a++ {
			for b := 0; b < 2; b++ {
				cells = append(cells, dtwbd.Cell{T: 2*c.T + a, A: 2*c.A + b})
			}
		}
	}

	return cells
}

// buildMask dilates projected cells by Chebyshev distance radius and
// clips to the fine grid [0,n)×[0,m) (§4.3 step 4). A fine row with no
// projected cell within radius rows of it (a row more than radius rows
// before the coarse path's first cell or after its last, since a DTW-BD
// path need not span every row) gets the full column range [0, m).
func buildMask(cells []dtwbd.Cell, n, m, radius int) *dtwbd.Mask {
	lo := make([]int, n)
	hi := make([]int, n)

	left, right := 0, 0
	for i := 0; i < n; i++ {
		for left < len(cells) && cells[left].T < i-radius {
			left++
		}
		for right < len(cells) && cells[right].T <= i+radius {
			right++
		}

		if left >= right {
			lo[i], hi[i] = 0, m

			continue
		}

		minCol, maxCol := cells[left].A, cells[left].A
		for k := left; k < right; k++ {
			if cells[k].A < minCol {
				minCol = cells[k].A
			}
			if cells[k].A > maxCol {
				maxCol = cells[k].A
			}
		}

		lo[i] = max(0, minCol-radius)
		hi[i] = min(m, maxCol+radius+1)
	}

	return &dtwbd.Mask{Lo: lo, Hi: hi}
}
