// Package solver turns a partially revealed minesweeper board into per-cell
// guidance. It runs three phases over the parsed board: deterministic
// forced-move propagation to a fixed point, exhaustive breadth-first
// enumeration of consistent bomb placements, and compilation of the
// discovered completions into guaranteed / best-guess cells.
package solver

import (
	"github.com/okhmat/minesweeper-solver/internal/grid"
)

// Options tweak a single solve invocation.
type Options struct {
	// OnPossibility is invoked for every completion as the search finds
	// it. Used to stream intermediate results; may be nil.
	OnPossibility func(*grid.Board)
}

// Result carries everything one solve produced.
type Result struct {
	// Input is the board as parsed, untouched.
	Input *grid.Board
	// Working is the board after propagation; the search ran from here.
	Working *grid.Board
	// Propagated is true when propagation changed at least one cell.
	Propagated bool
	// AlreadySolved is true when no unsatisfied demand remained after
	// propagation; the search is skipped and Possibilities is empty.
	AlreadySolved bool
	Possibilities []*grid.Board
	Ignored       map[grid.Point]struct{}
	Report        Report
}

// Solve validates b, propagates forced moves, searches the residual board
// and compiles the findings. b itself is never mutated. A validation error
// on the input board is fatal and returned; validation failures on
// speculative branches are dead ends handled inside the search.
func Solve(b *grid.Board, opts Options) (*Result, error) {
	if _, err := Validate(b); err != nil {
		return nil, err
	}

	res := &Result{Input: b, Working: b.Clone()}
	res.Propagated = Propagate(res.Working)

	remaining, err := Validate(res.Working)
	if err != nil {
		// Propagation only applies forced moves, so this means the input
		// was inconsistent in a way only visible after forcing.
		return nil, err
	}
	if remaining == 0 {
		res.AlreadySolved = true
		return res, nil
	}

	search := NewSearch()
	search.OnPossibility = opts.OnPossibility
	res.Possibilities, err = search.Run(res.Working)
	if err != nil {
		return nil, err
	}
	res.Ignored = search.Ignored()
	res.Report = Compile(res.Working, res.Possibilities, res.Ignored)
	return res, nil
}
