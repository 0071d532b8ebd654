package visualizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sudoku_engine_go/internal/types"
)

func TestSprint(t *testing.T) {
	g, err := types.ParseGrid("530070000600195000098000060800060003400803001700020006060000280000419005000080079")
	require.NoError(t, err)

	out := Sprint(&g)

	// 9 cell rows plus 4 border rows.
	assert.Equal(t, 13, strings.Count(out, "\n"))
	assert.Contains(t, out, "│ 5 3 · │ · 7 · │ · · · │")
	assert.Contains(t, out, "│ · · · │ · 8 · │ · 7 9 │")
}

func TestSprintEmptyGrid(t *testing.T) {
	var g types.Grid
	out := Sprint(&g)
	assert.NotContains(t, out, "1")
	assert.Contains(t, out, "·")
}
