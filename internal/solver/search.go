package solver

import (
	"github.com/gammazero/deque"

	"github.com/okhmat/minesweeper-solver/internal/grid"
)

type void = struct{}

type set[T comparable] map[T]void

func (s set[T]) has(v T) bool {
	_, ok := s[v]
	return ok
}

func (s set[T]) add(v T) {
	s[v] = void{}
}

// Search enumerates every bomb assignment consistent with a board's
// numbered cells. It owns the state the enumeration shares across
// branches: a content-hash memo of boards already derived and the set of
// coordinates proven inert (speculating a bomb there never changes any
// cell's demand), which suppresses those coordinates in all future
// branches.
type Search struct {
	visited set[uint64]
	ignored set[grid.Point]
	queue   deque.Deque[*grid.Board]

	// OnPossibility, when set, is called for each completion as it is
	// discovered, in discovery order.
	OnPossibility func(*grid.Board)

	possibilities []*grid.Board
}

func NewSearch() *Search {
	return &Search{
		visited: make(set[uint64]),
		ignored: make(set[grid.Point]),
	}
}

// Ignored returns the coordinates found inert during the search.
func (s *Search) Ignored() map[grid.Point]struct{} {
	return s.ignored
}

// Run drains a breadth-first work queue seeded with b and returns every
// fully consistent completion found. Boards on the queue are never mutated;
// each speculative move works on a clone. Every enqueued state strictly
// lowers the validator total of its parent, so the drain terminates.
func (s *Search) Run(b *grid.Board) ([]*grid.Board, error) {
	current, err := Validate(b)
	if err != nil {
		return nil, err
	}
	s.expand(b, current)
	for s.queue.Len() > 0 {
		open := s.queue.PopFront()
		// Enqueued states were validated on the way in.
		current, _ := Validate(open)
		s.expand(open, current)
	}
	return s.possibilities, nil
}

// expand speculates a bomb at every covered, non-ignored coordinate of b
// and classifies each candidate: dead end, completion, inert move, or a
// new open state.
func (s *Search) expand(b *grid.Board, current int) {
	for y := range b.Height {
		for x := range b.Width {
			if b.At(x, y) != grid.Covered || s.ignored.has(grid.Point{X: x, Y: y}) {
				continue
			}

			candidate := b.Clone()
			candidate.Set(x, y, grid.Bomb)

			hash := candidate.Hash()
			if s.visited.has(hash) {
				continue
			}
			s.visited.add(hash)

			remaining, err := Validate(candidate)
			if err != nil {
				// Dead branch, silently discarded.
				continue
			}
			switch {
			case remaining == 0:
				s.possibilities = append(s.possibilities, candidate)
				if s.OnPossibility != nil {
					s.OnPossibility(candidate)
				}
			case remaining == current:
				// The bomb satisfied nothing; no branch anywhere will
				// ever learn more by speculating here.
				s.ignored.add(grid.Point{X: x, Y: y})
			default:
				s.queue.PushBack(candidate)
			}
		}
	}
}
