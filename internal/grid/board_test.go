package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRenderRoundtrip(t *testing.T) {
	for _, text := range []string{
		"?1?",
		"---",
		"x1-\n?2x\n123",
		"12345678\n????????\nxxxxxxxx",
	} {
		b, err := Parse(text)
		require.NoError(t, err)
		assert.Equal(t, text, b.String())
	}
}

func TestParseNormalizesBombCase(t *testing.T) {
	b, err := Parse("X1x")
	require.NoError(t, err)
	assert.Equal(t, "x1x", b.String())
	assert.Equal(t, Bomb, b.At(0, 0))
	assert.Equal(t, Bomb, b.At(2, 0))
}

func TestParseSkipsBlankLines(t *testing.T) {
	b, err := Parse("\n?1?\n\n-2-\n")
	require.NoError(t, err)
	assert.Equal(t, 3, b.Width)
	assert.Equal(t, 2, b.Height)
	assert.Equal(t, "?1?\n-2-", b.String())
}

func TestParseIrregularWidth(t *testing.T) {
	_, err := Parse("???\n????")
	require.Error(t, err)
	assert.ErrorContains(t, err, "expected 3 found 4")
}

func TestParseUnrecognizedCharacter(t *testing.T) {
	_, err := Parse("?9?")
	require.Error(t, err)
	assert.ErrorContains(t, err, "unrecognized character")
}

func TestParseEmptyInput(t *testing.T) {
	for _, text := range []string{"", "\n\n\n"} {
		_, err := Parse(text)
		assert.ErrorIs(t, err, ErrEmptyInput)
	}
}

func TestNeighborsClippedAtEdges(t *testing.T) {
	b, err := Parse("???\n???\n???")
	require.NoError(t, err)

	assert.ElementsMatch(t, []Point{
		{1, 0}, {0, 1}, {1, 1},
	}, b.Neighbors(0, 0))

	assert.ElementsMatch(t, []Point{
		{0, 0}, {1, 0}, {2, 0},
		{0, 1}, {2, 1},
		{0, 2}, {1, 2}, {2, 2},
	}, b.Neighbors(1, 1))

	assert.ElementsMatch(t, []Point{
		{1, 1}, {2, 1}, {1, 2},
	}, b.Neighbors(2, 2))
}

func TestCloneIsIndependent(t *testing.T) {
	b, err := Parse("??")
	require.NoError(t, err)

	c := b.Clone()
	c.Set(0, 0, Bomb)

	assert.Equal(t, Covered, b.At(0, 0))
	assert.Equal(t, Bomb, c.At(0, 0))
}

func TestHashIsStructural(t *testing.T) {
	a, err := Parse("?1?\nx2-")
	require.NoError(t, err)
	b, err := Parse("?1?\nx2-")
	require.NoError(t, err)

	assert.Equal(t, a.Hash(), b.Hash())

	b.Set(0, 0, Bomb)
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestHashOrderIndependentOfDerivation(t *testing.T) {
	// The same content reached through different assignment orders must
	// collide on purpose, or search dedup would be useless.
	a, err := Parse("??")
	require.NoError(t, err)
	b := a.Clone()

	a.Set(0, 0, Bomb)
	a.Set(1, 0, Bomb)
	b.Set(1, 0, Bomb)
	b.Set(0, 0, Bomb)

	assert.Equal(t, a.Hash(), b.Hash())
}
