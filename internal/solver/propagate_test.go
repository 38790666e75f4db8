package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropagateForcesClearNeighbors(t *testing.T) {
	b := mustParse(t, "?-?")
	assert.True(t, Propagate(b))
	assert.Equal(t, "---", b.String())
}

func TestPropagateForcesBombs(t *testing.T) {
	b := mustParse(t, "?1")
	assert.True(t, Propagate(b))
	assert.Equal(t, "x1", b.String())
}

func TestPropagateSatisfiedCellClearsRest(t *testing.T) {
	// The bomb satisfies the 1, so its other covered neighbor is safe.
	b := mustParse(t, "x1?")
	assert.True(t, Propagate(b))
	assert.Equal(t, "x1-", b.String())
}

func TestPropagateCascades(t *testing.T) {
	// Forcing the bomb next to the 1 satisfies the 1; a later pass then
	// clears nothing more here, but the 2 sees the forced bomb and forces
	// its own remaining neighbor.
	b := mustParse(t, "1?2?")
	assert.True(t, Propagate(b))
	assert.Equal(t, "1x2x", b.String())
}

func TestPropagateLeavesAmbiguityAlone(t *testing.T) {
	b := mustParse(t, "?1?")
	assert.False(t, Propagate(b))
	assert.Equal(t, "?1?", b.String())
}

func TestPropagateIdempotentAtFixedPoint(t *testing.T) {
	b := mustParse(t, "?-?\n???")
	Propagate(b)
	snapshot := b.String()

	assert.False(t, Propagate(b))
	assert.Equal(t, snapshot, b.String())
}
