// Package generator produces Sudoku puzzles with a provably unique solution.
package generator

import (
	"errors"
	"math/rand"
	"time"

	"sudoku_engine_go/internal/solver"
	"sudoku_engine_go/internal/types"
)

var ErrGenerationFailed = errors.New("failed to generate valid puzzle")

// Generator creates (puzzle, solution) pairs. Each Generator owns its
// RNG, so two Generators built with the same seed produce identical
// puzzles and nothing touches process-wide random state.
type Generator struct {
	seed int64
	rng  *rand.Rand
}

// New returns a Generator seeded with the given value. A zero seed picks
// a time-based one.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the Generator was built with.
func (g *Generator) Seed() int64 { return g.seed }

// Generate builds a full random solution, then removes cells one at a
// time while the remaining puzzle keeps exactly one completion. The
// nominal clue count comes from the difficulty table; when uniqueness
// cannot be preserved for enough cells the puzzle keeps extra clues
// rather than retrying from scratch.
func (g *Generator) Generate(diff types.Difficulty) (*types.Puzzle, error) {
	var grid types.Grid
	g.seedDiagonalBoxes(&grid)

	// Diagonal boxes share no row or column, so the seeding is always
	// completable and this never fails in practice.
	if !solver.Solve(&grid) {
		return nil, ErrGenerationFailed
	}
	solution := grid

	puzzle := solution
	targetRemoved := 81 - diff.Clues()
	removed := 0
	for _, pos := range g.rng.Perm(81) {
		if removed >= targetRemoved {
			break
		}
		row, col := pos/9, pos%9
		backup := puzzle[row][col]
		puzzle[row][col] = 0
		if solver.CountSolutions(&puzzle, 2) == 1 {
			removed++
		} else {
			puzzle[row][col] = backup
		}
	}

	return &types.Puzzle{
		Seed:       g.seed,
		Difficulty: diff,
		Grid:       puzzle,
		Solution:   solution,
		Clues:      puzzle.FilledCells(),
	}, nil
}

// seedDiagonalBoxes fills boxes 0, 4 and 8 with independent random
// permutations of 1..9. These boxes share no row or column, so the
// permutations cannot conflict.
func (g *Generator) seedDiagonalBoxes(grid *types.Grid) {
	for box := 0; box < 9; box += 3 {
		nums := g.rng.Perm(9)
		idx := 0
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				grid[box+i][box+j] = nums[idx] + 1
				idx++
			}
		}
	}
}
