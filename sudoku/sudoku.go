// Package sudoku reduces a 9x9 Sudoku board to an exact-cover instance: one
// option per (row, column, value) placement, and four families of mandatory
// items: one cell must hold exactly one value, one row must hold each
// value exactly once, likewise for columns and 3x3 blocks.
package sudoku

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mthaak/exactcover/xcover"
)

const size = 9
const blockSize = 3

// Board is a 9x9 Sudoku grid; 0 marks an empty cell.
type Board [size][size]int

// Sentinel errors ReadBoard wraps. Callers classify a failure with
// errors.Is against one of these rather than matching on a message string.
var (
	ErrBoardRead        = errors.New("sudoku: could not read board")
	ErrInvalidCharacter = errors.New("sudoku: invalid character")
	ErrInvalidSize      = errors.New("sudoku: invalid board size")
)

func invalidCharacter(line int, r rune) error {
	return fmt.Errorf("%w: %q at line %d", ErrInvalidCharacter, r, line)
}

func invalidSize(line int) error {
	return fmt.Errorf("%w: row has wrong width at line %d", ErrInvalidSize, line)
}

// ReadBoard parses a Sudoku board from path. Each non-blank line holds one
// row; '.' marks an empty cell, a digit 1-9 a filled one, and spaces are
// ignored entirely (so "53. .7. ..." and "53..7...." both parse to the
// same row). Returns ErrInvalidSize if the board doesn't have exactly 9
// rows of 9 cells, or ErrInvalidCharacter on any other character.
func ReadBoard(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBoardRead, err)
	}
	defer f.Close()
	return parseBoard(f)
}

func parseBoard(r io.Reader) (*Board, error) {
	var board Board
	scanner := bufio.NewScanner(r)

	row := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if row >= size {
			return nil, invalidSize(lineNo)
		}

		col := 0
		for _, ch := range line {
			switch {
			case ch == ' ':
				continue
			case ch == '.':
				col++
			case ch >= '1' && ch <= '9':
				if col >= size {
					return nil, invalidSize(lineNo)
				}
				board[row][col] = int(ch - '0')
				col++
			default:
				return nil, invalidCharacter(lineNo, ch)
			}
		}
		if col != size {
			return nil, invalidSize(lineNo)
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBoardRead, err)
	}
	if row < size {
		return nil, invalidSize(lineNo)
	}

	return &board, nil
}

// String renders the board in 3x3-block form, '.' for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if b[r][c] == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(byte('0' + b[r][c]))
			}
			if c == 2 || c == 5 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
		if r == 2 || r == 5 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func block(row, col int) int {
	return (row/blockSize)*blockSize + col/blockSize
}

func cellItem(row, col int) string       { return fmt.Sprintf("cell r%dc%d", row, col) }
func rowItem(row, value int) string      { return fmt.Sprintf("row r%dv%d", row, value) }
func colItem(col, value int) string      { return fmt.Sprintf("col c%dv%d", col, value) }
func blockItem(blk, value int) string    { return fmt.Sprintf("blk b%dv%d", blk, value) }
func placement(row, col, value int) string {
	return fmt.Sprintf("r%dc%dv%d", row, col, value)
}

// toInstance builds the exact-cover instance for b: one option per (row,
// col, value) placement covering that cell's four constraint items. Cells
// already filled in on b are forced via required options.
func (b *Board) toInstance(logger *logrus.Logger) (*xcover.Instance, map[string][3]int, error) {
	mandatory := make([]string, 0, 4*size*size)
	coveredBy := make(map[string][]string, 4*size*size)
	placementOf := make(map[string][3]int, size*size*size)

	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			mandatory = append(mandatory, cellItem(r, c))
			coveredBy[cellItem(r, c)] = nil
		}
	}
	for r := 0; r < size; r++ {
		for v := 1; v <= size; v++ {
			mandatory = append(mandatory, rowItem(r, v))
			coveredBy[rowItem(r, v)] = nil
		}
	}
	for c := 0; c < size; c++ {
		for v := 1; v <= size; v++ {
			mandatory = append(mandatory, colItem(c, v))
			coveredBy[colItem(c, v)] = nil
		}
	}
	for blk := 0; blk < size; blk++ {
		for v := 1; v <= size; v++ {
			mandatory = append(mandatory, blockItem(blk, v))
			coveredBy[blockItem(blk, v)] = nil
		}
	}

	var required []string
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			blk := block(r, c)
			for v := 1; v <= size; v++ {
				opt := placement(r, c, v)
				placementOf[opt] = [3]int{r, c, v}
				coveredBy[cellItem(r, c)] = append(coveredBy[cellItem(r, c)], opt)
				coveredBy[rowItem(r, v)] = append(coveredBy[rowItem(r, v)], opt)
				coveredBy[colItem(c, v)] = append(coveredBy[colItem(c, v)], opt)
				coveredBy[blockItem(blk, v)] = append(coveredBy[blockItem(blk, v)], opt)

				if b[r][c] == v {
					required = append(required, opt)
				}
			}
		}
	}

	inst, err := xcover.Construct(mandatory, nil, required, coveredBy)
	if err != nil {
		return nil, nil, err
	}
	if logger != nil {
		inst = inst.WithLogger(logger)
	}
	return inst, placementOf, nil
}

// Solve finds a completion of b, or (nil, false) if b has no solution (is
// contradictory or was given more than one clue for the same constraint).
func (b *Board) Solve() (*Board, bool, error) {
	return b.SolveWithLogger(nil)
}

// SolveWithLogger is Solve, additionally logging the search's cover/uncover
// trace at Debug level through logger.
func (b *Board) SolveWithLogger(logger *logrus.Logger) (*Board, bool, error) {
	inst, placementOf, err := b.toInstance(logger)
	if err != nil {
		return nil, false, err
	}
	sel, ok := inst.SolveOne()
	if !ok {
		return nil, false, nil
	}
	var out Board
	for _, opt := range sel {
		p := placementOf[opt]
		out[p[0]][p[1]] = p[2]
	}
	return &out, true, nil
}

// CountAll returns the number of completions of b.
func (b *Board) CountAll() (int, error) {
	return b.CountAllWithLogger(nil)
}

// CountAllWithLogger is CountAll, additionally logging the search's
// cover/uncover trace at Debug level through logger.
func (b *Board) CountAllWithLogger(logger *logrus.Logger) (int, error) {
	inst, _, err := b.toInstance(logger)
	if err != nil {
		return 0, err
	}
	return inst.CountAll(), nil
}
