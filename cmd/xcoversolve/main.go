// Command xcoversolve is a small CLI front end for the xcover solver: read a
// Sudoku board and solve it, or run the N-Queens reduction for a given board
// size.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/sirupsen/logrus"

	"github.com/mthaak/exactcover/nqueens"
	"github.com/mthaak/exactcover/sudoku"
)

func main() {
	board := flag.String("board", "", "path to a sudoku board file")
	queens := flag.Bool("queens", false, "solve n-queens instead of sudoku")
	n := flag.Int("n", 8, "board size for -queens")
	count := flag.Bool("count", false, "count all solutions instead of printing the first")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	var err error
	switch {
	case *queens:
		err = runQueens(logger, *n, *count)
	case *board != "":
		err = runSudoku(logger, *board, *count)
	default:
		err = fmt.Errorf("specify -board <file> or -queens")
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runSudoku(logger *logrus.Logger, path string, countAll bool) error {
	b, err := sudoku.ReadBoard(path)
	if err != nil {
		return fmt.Errorf("reading board: %w", err)
	}
	logger.WithField("path", path).Info("board loaded")
	fmt.Println("Board:")
	fmt.Println(b)

	if countAll {
		n, err := b.CountAllWithLogger(logger)
		if err != nil {
			return err
		}
		fmt.Printf("%d solutions\n", n)
		return nil
	}

	sol, ok, err := b.SolveWithLogger(logger)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("No solution found")
		return nil
	}
	fmt.Println("Solution:")
	fmt.Println(sol)
	return nil
}

func runQueens(logger *logrus.Logger, n int, countAll bool) error {
	p := &nqueens.Problem{N: n}
	logger.WithField("n", n).Info("solving n-queens")

	if countAll {
		c, err := p.CountAllWithLogger(logger)
		if err != nil {
			return err
		}
		fmt.Printf("%d solutions\n", c)
		return nil
	}

	sol, ok, err := p.SolveWithLogger(logger)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("No solution found")
		return nil
	}
	fmt.Print(sol)
	return nil
}
