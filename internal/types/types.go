package types

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Grid is a 9x9 Sudoku board. 0 marks an empty cell, 1..9 a placed digit.
// It is a plain value type so a copy is a full snapshot of the board.
type Grid [9][9]int

// Difficulty names a clue-count target for generated puzzles.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
	Expert Difficulty = "expert"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

// ParseDifficulty maps a user-supplied name to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case Easy, Medium, Hard, Expert:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// Clues returns the number of filled cells a puzzle of this difficulty
// aims for. Unknown values fall back to the medium target.
func (d Difficulty) Clues() int {
	switch d {
	case Easy:
		return 40
	case Hard:
		return 26
	case Expert:
		return 22
	default:
		return 32 // Medium
	}
}

// IsPlacementValid reports whether num may sit at (row, col) without
// conflicting with its row, column, or 3x3 box. The cell itself is
// excluded from the comparison, so a placed digit never conflicts with
// itself and the predicate can re-validate an already-filled cell.
func (g *Grid) IsPlacementValid(row, col, num int) bool {
	for j := 0; j < 9; j++ {
		if j != col && g[row][j] == num {
			return false
		}
	}
	for i := 0; i < 9; i++ {
		if i != row && g[i][col] == num {
			return false
		}
	}
	boxRow, boxCol := 3*(row/3), 3*(col/3)
	for i := boxRow; i < boxRow+3; i++ {
		for j := boxCol; j < boxCol+3; j++ {
			if (i != row || j != col) && g[i][j] == num {
				return false
			}
		}
	}
	return true
}

// FindFirstEmpty scans in row-major order and returns the first empty
// cell. The fixed scan order keeps search deterministic for a given
// grid and RNG seed.
func (g *Grid) FindFirstEmpty() (row, col int, ok bool) {
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			if g[i][j] == 0 {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// IsConsistent reports whether no placed digit conflicts with another in
// its row, column, or box. Empty cells are ignored, so it holds for
// in-progress boards as well as solved ones.
func (g *Grid) IsConsistent() bool {
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			if g[i][j] != 0 && !g.IsPlacementValid(i, j, g[i][j]) {
				return false
			}
		}
	}
	return true
}

// FilledCells counts the non-zero cells.
func (g *Grid) FilledCells() int {
	n := 0
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			if g[i][j] != 0 {
				n++
			}
		}
	}
	return n
}

// String renders the grid as 81 ASCII digits in row-major order,
// the flat interchange format used by callers for persistence.
func (g Grid) String() string {
	buf := make([]byte, 0, 81)
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			buf = append(buf, byte('0'+g[i][j]))
		}
	}
	return string(buf)
}

// ParseGrid decodes the 81-digit flat format back into a Grid.
func ParseGrid(s string) (Grid, error) {
	var g Grid
	if len(s) != 81 {
		return g, fmt.Errorf("grid string must be 81 digits, got %d characters", len(s))
	}
	for idx := 0; idx < 81; idx++ {
		c := s[idx]
		if c < '0' || c > '9' {
			return Grid{}, fmt.Errorf("invalid character %q at position %d", c, idx)
		}
		g[idx/9][idx%9] = int(c - '0')
	}
	return g, nil
}

// Puzzle pairs a dug-out grid with the solution it was derived from.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed"`
	Difficulty Difficulty `json:"difficulty"`
	Grid       Grid       `json:"grid"`
	Solution   Grid       `json:"solution"`
	Clues      int        `json:"clues"`
}

// ToJSON converts the puzzle to JSON bytes
func (p *Puzzle) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// FromJSON creates a Puzzle from JSON bytes
func FromJSON(data []byte) (*Puzzle, error) {
	var p Puzzle
	err := json.Unmarshal(data, &p)
	return &p, err
}
