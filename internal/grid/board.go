package grid

import (
	"errors"
	"fmt"
	"hash/maphash"
	"strings"
)

var ErrEmptyInput = errors.New("empty input")

// Point addresses a cell by its zero-based column and row.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("[%d, %d]", p.X, p.Y)
}

// Board is a rectangular minesweeper grid stored row-major. Boards have
// value semantics for search purposes: identity is the content of every
// cell, and speculative branches always work on a Clone.
type Board struct {
	cells         []Cell
	Width, Height int
}

// Parse reads a board from text, one row per line. Blank lines are skipped;
// all remaining lines must share the width of the first one.
func Parse(input string) (*Board, error) {
	var (
		cells  []Cell
		width  = -1
		height = 0
	)
	for _, line := range strings.Split(input, "\n") {
		if len(line) == 0 {
			continue
		}
		runes := []rune(line)
		if width < 0 {
			width = len(runes)
		} else if len(runes) != width {
			return nil, fmt.Errorf(
				"irregular line width - expected %d found %d", width, len(runes),
			)
		}
		for _, r := range runes {
			cell, err := CellFromRune(r)
			if err != nil {
				return nil, err
			}
			cells = append(cells, cell)
		}
		height++
	}
	if height == 0 {
		return nil, ErrEmptyInput
	}
	return &Board{cells: cells, Width: width, Height: height}, nil
}

func (b *Board) At(x, y int) Cell {
	return b.cells[y*b.Width+x]
}

func (b *Board) Set(x, y int, c Cell) {
	b.cells[y*b.Width+x] = c
}

func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Neighbors returns the up-to-8 points adjacent to (x, y), clipped at the
// board edges.
func (b *Board) Neighbors(x, y int) []Point {
	points := make([]Point, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if b.InBounds(x+dx, y+dy) {
				points = append(points, Point{x + dx, y + dy})
			}
		}
	}
	return points
}

// Clone returns an independent copy sharing no cell storage with b.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{cells: cells, Width: b.Width, Height: b.Height}
}

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit content hash over the row-major cell codes. It is
// stable for the lifetime of the process and is used as a probabilistic
// memo: a collision could silently drop a branch, which is accepted at
// puzzle sizes.
func (b *Board) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	for _, c := range b.cells {
		h.WriteByte(byte(c))
	}
	return h.Sum64()
}

// String renders the board in the exact format Parse accepts: one line per
// row, no trailing newline.
func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.Height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range b.Width {
			sb.WriteRune(b.At(x, y).Rune())
		}
	}
	return sb.String()
}
