package solver

import (
	"fmt"

	"github.com/okhmat/minesweeper-solver/internal/grid"
)

type ValidationKind int

const (
	// OverConstrained means a numbered cell already touches more bombs
	// than its value allows.
	OverConstrained ValidationKind = iota
	// Unsatisfiable means a numbered cell demands more bombs than it has
	// covered neighbors left to hold them.
	Unsatisfiable
)

// ValidationError reports the first cell that makes a board inconsistent.
type ValidationError struct {
	Kind            ValidationKind
	Cell            grid.Point
	Required, Slack int
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case OverConstrained:
		return fmt.Sprintf(
			"cell at position %s has %d bomb(s) more than it should have",
			e.Cell, -e.Required,
		)
	default:
		return fmt.Sprintf(
			"cell at position %s requires %d bomb(s) however only %d cell(s) can contain bombs",
			e.Cell, e.Required, e.Slack,
		)
	}
}

// Validate checks every numbered cell of b for local consistency and
// returns the sum of their still-unsatisfied bomb demands. A covered cell
// shared by two numbered cells contributes to both demands, so the total is
// a coarse progress signal, not a remaining-bomb count. The search relies
// only on it shrinking.
func Validate(b *grid.Board) (int, error) {
	total := 0
	for y := range b.Height {
		for x := range b.Width {
			cell := b.At(x, y)
			if !cell.IsValue() || cell == 0 {
				continue
			}
			required, slack := demandAt(b, x, y)
			if required < 0 {
				return 0, &ValidationError{
					Kind:     OverConstrained,
					Cell:     grid.Point{X: x, Y: y},
					Required: required,
				}
			}
			if required > slack {
				return 0, &ValidationError{
					Kind:     Unsatisfiable,
					Cell:     grid.Point{X: x, Y: y},
					Required: required,
					Slack:    slack,
				}
			}
			total += required
		}
	}
	return total, nil
}

// demandAt recomputes a numbered cell's remaining bomb demand and the
// number of covered neighbors available to satisfy it.
func demandAt(b *grid.Board, x, y int) (required, slack int) {
	required = int(b.At(x, y))
	for _, p := range b.Neighbors(x, y) {
		switch b.At(p.X, p.Y) {
		case grid.Bomb:
			required--
		case grid.Covered:
			slack++
		}
	}
	return required, slack
}
