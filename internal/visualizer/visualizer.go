// Package visualizer renders grids for the terminal.
package visualizer

import (
	"fmt"
	"io"
	"strings"

	"sudoku_engine_go/internal/types"
)

// Fprint writes the grid to w with box-drawing borders around each 3x3
// box. Empty cells are shown as "·".
func Fprint(w io.Writer, g *types.Grid) {
	border := strings.Repeat("─", 23)
	fmt.Fprintf(w, "┌%s┐\n", border)

	for i := 0; i < 9; i++ {
		fmt.Fprint(w, "│ ")
		for j := 0; j < 9; j++ {
			if g[i][j] == 0 {
				fmt.Fprint(w, "·")
			} else {
				fmt.Fprintf(w, "%d", g[i][j])
			}
			fmt.Fprint(w, " ")
			if j == 2 || j == 5 {
				fmt.Fprint(w, "│ ")
			}
		}
		fmt.Fprintln(w, "│")

		if i == 2 || i == 5 {
			fmt.Fprintf(w, "├%s┤\n", border)
		}
	}
	fmt.Fprintf(w, "└%s┘\n", border)
}

// Sprint returns the rendering of Fprint as a string.
func Sprint(g *types.Grid) string {
	var b strings.Builder
	Fprint(&b, g)
	return b.String()
}
