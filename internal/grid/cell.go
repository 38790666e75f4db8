package grid

import "fmt"

// Cell is a single square of the board. Values 0-8 are revealed cells
// reporting that many mined neighbors; the two codes above that range mark
// squares that are still unknown or (assumed) mined.
type Cell uint8

const (
	Covered Cell = 9
	Bomb    Cell = 10
)

// IsValue reports whether the cell is a revealed numbered cell.
func (c Cell) IsValue() bool {
	return c <= 8
}

func CellFromRune(r rune) (Cell, error) {
	switch r {
	case '-':
		return Cell(0), nil
	case '?':
		return Covered, nil
	case 'X', 'x':
		return Bomb, nil
	case '1', '2', '3', '4', '5', '6', '7', '8':
		return Cell(r - '0'), nil
	default:
		return 0, fmt.Errorf("unrecognized character %q", r)
	}
}

func (c Cell) Rune() rune {
	switch c {
	case Covered:
		return '?'
	case Bomb:
		return 'x'
	case 0:
		return '-'
	default:
		return rune('0' + c)
	}
}

func (c Cell) String() string {
	return string(c.Rune())
}
