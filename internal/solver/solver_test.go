package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okhmat/minesweeper-solver/internal/grid"
)

func TestSolveUncertainBoard(t *testing.T) {
	res, err := Solve(mustParse(t, "?1?"), Options{})
	require.NoError(t, err)

	assert.False(t, res.Propagated)
	assert.False(t, res.AlreadySolved)
	assert.Len(t, res.Possibilities, 2)
	require.NotNil(t, res.Report.Guess)
	assert.InDelta(t, 0.5, res.Report.Guess.Safety, 1e-9)
	assert.Equal(t, "@1?", res.Report.Grid)
}

func TestSolvePropagationAlone(t *testing.T) {
	// Forced moves fully determine this board; no search runs.
	res, err := Solve(mustParse(t, "1?1"), Options{})
	require.NoError(t, err)

	assert.True(t, res.Propagated)
	assert.True(t, res.AlreadySolved)
	assert.Equal(t, "1x1", res.Working.String())
	assert.Empty(t, res.Possibilities)
}

func TestSolveInputNeverMutated(t *testing.T) {
	input := mustParse(t, "1?1")
	_, err := Solve(input, Options{})
	require.NoError(t, err)
	assert.Equal(t, "1?1", input.String())
}

func TestSolveAlreadySolvedInput(t *testing.T) {
	res, err := Solve(mustParse(t, "x1-"), Options{})
	require.NoError(t, err)
	assert.True(t, res.AlreadySolved)
}

func TestSolveInvalidInput(t *testing.T) {
	_, err := Solve(mustParse(t, "x1x"), Options{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, OverConstrained, verr.Kind)
}

func TestSolveStreamsPossibilities(t *testing.T) {
	var streamed []string
	res, err := Solve(mustParse(t, "?1?"), Options{
		OnPossibility: func(b *grid.Board) {
			streamed = append(streamed, b.String())
		},
	})
	require.NoError(t, err)
	assert.Len(t, streamed, len(res.Possibilities))
}

func TestSolveMixedGuaranteesAndSearch(t *testing.T) {
	// Propagation forces both bombs around the 2; the 1 stays ambiguous
	// and goes to the search.
	res, err := Solve(mustParse(t, "?2??1?"), Options{})
	require.NoError(t, err)

	assert.True(t, res.Propagated)
	assert.Equal(t, "x2x?1?", res.Working.String())
	assert.Len(t, res.Possibilities, 2)
	for _, p := range res.Possibilities {
		total, err := Validate(p)
		require.NoError(t, err)
		assert.Zero(t, total)
	}
}
