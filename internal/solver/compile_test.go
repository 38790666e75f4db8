package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okhmat/minesweeper-solver/internal/grid"
)

func boards(t *testing.T, texts ...string) []*grid.Board {
	t.Helper()
	var out []*grid.Board
	for _, text := range texts {
		out = append(out, mustParse(t, text))
	}
	return out
}

func TestCompileGuaranteedCells(t *testing.T) {
	base := mustParse(t, "???")
	// First cell is a bomb in every completion, second is never one, third
	// is a revealed value everywhere so nothing was tallied for it.
	report := Compile(base, boards(t, "x?-", "x--"), nil)

	assert.Equal(t, "#O?", report.Grid)
	assert.True(t, report.Guaranteed)
	assert.Nil(t, report.Guess)
}

func TestCompileUncertainPicksBestGuess(t *testing.T) {
	base := mustParse(t, "?1?")
	report := Compile(base, boards(t, "x1?", "?1x"), nil)

	assert.False(t, report.Guaranteed)
	require.NotNil(t, report.Guess)
	// 50/50 either way; the tie goes to the first cell in row-major order.
	assert.Equal(t, grid.Point{X: 0, Y: 0}, report.Guess.Cell)
	assert.InDelta(t, 0.5, report.Guess.Safety, 1e-9)
	assert.Equal(t, "@1?", report.Grid)
}

func TestCompilePrefersSaferGuess(t *testing.T) {
	base := mustParse(t, "???")
	report := Compile(base, boards(t, "x??", "?x?", "?x?", "??x"), nil)

	require.NotNil(t, report.Guess)
	assert.Equal(t, grid.Point{X: 0, Y: 0}, report.Guess.Cell)
	assert.InDelta(t, 0.75, report.Guess.Safety, 1e-9)
	assert.Equal(t, "@??", report.Grid)
}

func TestCompileIgnoredCellsRenderOriginal(t *testing.T) {
	base := mustParse(t, "?1???")
	report := Compile(base, boards(t, "x1???", "?1x??"), map[grid.Point]struct{}{
		{X: 3, Y: 0}: {},
		{X: 4, Y: 0}: {},
	})

	// Without the ignore set the two inert cells would read as guaranteed
	// safe, which the search never actually established.
	assert.False(t, report.Guaranteed)
	assert.Equal(t, "@1???", report.Grid)
}

func TestCompileKnownBombStaysKnown(t *testing.T) {
	base := mustParse(t, "x1?")
	report := Compile(base, boards(t, "x1?"), nil)

	// The input already showed the bomb; rendering '#' there would claim
	// new information.
	assert.Equal(t, "x1O", report.Grid)
	assert.True(t, report.Guaranteed)
}

func TestCompileNothingLearned(t *testing.T) {
	base := mustParse(t, "?1?")
	report := Compile(base, nil, nil)

	assert.Equal(t, "?1?", report.Grid)
	assert.False(t, report.Guaranteed)
	assert.Nil(t, report.Guess)
}
