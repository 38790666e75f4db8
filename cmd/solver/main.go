package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/okhmat/minesweeper-solver/internal/grid"
	"github.com/okhmat/minesweeper-solver/internal/logging"
	"github.com/okhmat/minesweeper-solver/internal/solver"
)

var (
	log = logging.New()

	filePath string
	showAll  bool
)

func init() {
	const usage = "board file path (- uncovered, ? covered, X bomb, 1-8 numbers)"
	flag.StringVar(&filePath, "file", "", usage)
	flag.StringVar(&filePath, "f", "", usage+" (shorthand)")
	flag.BoolVar(&showAll, "all", false, "print every possible completion as it is found")
}

func main() {
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("failed to read input file: %s", err)
	}

	board, err := grid.Parse(string(data))
	if err != nil {
		log.Fatalf("invalid board: %s", err)
	}

	fmt.Printf("Input:\n%s\n\n", board)

	opts := solver.Options{}
	if showAll {
		opts.OnPossibility = func(b *grid.Board) {
			fmt.Printf("Possible board found:\n%s\n\n", b)
		}
	}

	res, err := solver.Solve(board, opts)
	if err != nil {
		log.Fatalf("invalid board: %s", err)
	}

	if res.Propagated {
		fmt.Printf("After propagation:\n%s\n\n", res.Working)
	}

	if res.AlreadySolved {
		fmt.Println("Board already solved")
		return
	}

	fmt.Printf("Finished finding solutions - %d possibilities\n\n", len(res.Possibilities))

	if res.Report.Guaranteed {
		fmt.Printf("Guaranteed cells:\n%s\n", res.Report.Grid)
		fmt.Println("Legend: # guaranteed bomb, O guaranteed safe, ? uncertain")
	} else if g := res.Report.Guess; g != nil {
		fmt.Printf("No guaranteed cells:\n%s\n", res.Report.Grid)
		fmt.Printf(
			"Best guess: cell %s is safe with %.2f%% probability\n",
			g.Cell, g.Safety*100,
		)
	} else {
		fmt.Println("Nothing new learned")
	}
}
