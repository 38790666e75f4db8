package solver

import (
	"strings"

	"github.com/okhmat/minesweeper-solver/internal/grid"
)

// Guess is the best uncertain cell to open when no cell is guaranteed.
// Safety is the fraction of discovered completions in which the cell held
// no bomb. This is a naive per-completion frequency, not a combinatorially
// weighted probability, and is reported as an estimate only.
type Guess struct {
	Cell   grid.Point
	Safety float64
}

// Report is the compiled verdict over every discovered completion.
type Report struct {
	// Grid renders one character per cell: '#' guaranteed bomb, 'O'
	// guaranteed safe, '?' uncertain, '@' the best guess, and the original
	// character where nothing new was learned.
	Grid string
	// Guaranteed is true when at least one '#' or 'O' was found.
	Guaranteed bool
	// Guess is set only when Guaranteed is false and at least one cell was
	// uncertain.
	Guess *Guess
}

type tally struct {
	bomb, clear int
}

// Compile reduces the completions found for base into per-cell guidance.
// Cells in the ignored set, and cells where the completions all agree with
// what base already shows, render unchanged.
func Compile(base *grid.Board, possibilities []*grid.Board, ignored map[grid.Point]struct{}) Report {
	tallies := make([]tally, base.Width*base.Height)
	for _, p := range possibilities {
		for y := range base.Height {
			for x := range base.Width {
				switch p.At(x, y) {
				case grid.Bomb:
					tallies[y*base.Width+x].bomb++
				case grid.Covered:
					// Unresolved in this completion means no bomb was
					// ever needed there.
					tallies[y*base.Width+x].clear++
				}
			}
		}
	}

	var (
		report Report
		guess  *Guess
		sb     strings.Builder
	)
	for y := range base.Height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range base.Width {
			var (
				t        = tallies[y*base.Width+x]
				_, inert = ignored[grid.Point{X: x, Y: y}]
				original = base.At(x, y)
			)
			switch {
			case t.bomb == 0 && t.clear == 0, inert,
				t.bomb > 0 && t.clear == 0 && original == grid.Bomb:
				sb.WriteRune(original.Rune())
			case t.clear == 0:
				sb.WriteByte('#')
				report.Guaranteed = true
			case t.bomb == 0:
				sb.WriteByte('O')
				report.Guaranteed = true
			default:
				sb.WriteByte('?')
				safety := float64(t.clear) / float64(t.bomb+t.clear)
				if guess == nil || safety > guess.Safety {
					guess = &Guess{Cell: grid.Point{X: x, Y: y}, Safety: safety}
				}
			}
		}
	}

	report.Grid = sb.String()
	if !report.Guaranteed && guess != nil {
		report.Guess = guess
		rows := strings.Split(report.Grid, "\n")
		row := []rune(rows[guess.Cell.Y])
		row[guess.Cell.X] = '@'
		rows[guess.Cell.Y] = string(row)
		report.Grid = strings.Join(rows, "\n")
	}
	return report
}
