package solver

import "github.com/okhmat/minesweeper-solver/internal/grid"

// propagatePass scans every numbered cell once and applies the two forced
// moves, mutating b immediately so later cells in the same pass see earlier
// updates:
//
//   - a cell whose remaining demand equals its covered-neighbor count
//     forces every covered neighbor to Bomb;
//   - a cell with zero remaining demand forces every covered neighbor to
//     a revealed clear cell.
//
// Reports whether anything changed.
func propagatePass(b *grid.Board) bool {
	changed := false
	for y := range b.Height {
		for x := range b.Width {
			if !b.At(x, y).IsValue() {
				continue
			}
			required := int(b.At(x, y))
			var covered []grid.Point
			for _, p := range b.Neighbors(x, y) {
				switch b.At(p.X, p.Y) {
				case grid.Bomb:
					required--
				case grid.Covered:
					covered = append(covered, p)
				}
			}
			if len(covered) == 0 || required < 0 {
				// Nothing to force; a negative demand is left for
				// Validate to report.
				continue
			}
			switch {
			case required == len(covered):
				for _, p := range covered {
					b.Set(p.X, p.Y, grid.Bomb)
				}
				changed = true
			case required == 0:
				for _, p := range covered {
					b.Set(p.X, p.Y, grid.Cell(0))
				}
				changed = true
			}
		}
	}
	return changed
}

// Propagate runs forced-move passes over b in place until a pass changes
// nothing, and reports whether any pass changed the board. This is sound
// but not complete: it cannot do the subset reasoning that resolves cells
// constrained jointly by several numbers, which is what the search is for.
func Propagate(b *grid.Board) bool {
	changed := false
	for propagatePass(b) {
		changed = true
	}
	return changed
}
