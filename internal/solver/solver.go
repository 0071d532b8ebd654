// Package solver implements exhaustive backtracking search over a Grid.
package solver

import (
	"sudoku_engine_go/internal/types"
)

// Solve completes the grid in place and returns true if a completion
// exists. Candidates are tried in ascending order 1..9 at the first
// empty cell found in row-major order, so the result is deterministic
// for a given input. On failure every placement made during the search
// has been undone and the grid is exactly as passed in.
func Solve(g *types.Grid) bool {
	row, col, ok := g.FindFirstEmpty()
	if !ok {
		return true
	}
	for num := 1; num <= 9; num++ {
		if g.IsPlacementValid(row, col, num) {
			g[row][col] = num
			if Solve(g) {
				return true
			}
			g[row][col] = 0
		}
	}
	return false
}

// CountSolutions counts distinct completions of the grid, stopping once
// limit is reached. The search runs on a private copy; the caller's grid
// is never touched. A limit of 2 distinguishes "unique" (1) from
// "ambiguous" (2) and "unsolvable" (0) without full enumeration.
func CountSolutions(g *types.Grid, limit int) int {
	if limit < 1 {
		return 0
	}
	work := *g
	count := 0
	countCompletions(&work, limit, &count)
	return count
}

func countCompletions(g *types.Grid, limit int, count *int) {
	if *count >= limit {
		return
	}
	row, col, ok := g.FindFirstEmpty()
	if !ok {
		*count++
		return
	}
	for num := 1; num <= 9; num++ {
		if g.IsPlacementValid(row, col, num) {
			g[row][col] = num
			countCompletions(g, limit, count)
			g[row][col] = 0
		}
	}
}

// IsConsistent reports whether the current board state is free of
// row/column/box conflicts. Re-exported here because callers reach for
// it alongside the solving operations.
func IsConsistent(g *types.Grid) bool {
	return g.IsConsistent()
}
