// Package nqueens reduces the N-Queens problem to an exact cover instance:
// one option per (column, row) square a queen could occupy, one mandatory
// item per row and per column (every row and column must hold exactly one
// queen), and one optional item per diagonal in each direction (at most one
// queen per diagonal).
package nqueens

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mthaak/exactcover/xcover"
)

// Problem is an N-Queens instance: place N queens on an NxN board so that
// no two share a row, column, or diagonal.
type Problem struct {
	N int
}

func colName(col int) string             { return string(rune('a' + col)) }
func rowName(row int) string             { return fmt.Sprintf("%d", row+1) }
func diag1(col, row int) int             { return col - row }
func diag1Name(d int) string             { return fmt.Sprintf("/%d", d) }
func diag2(col, row, n int) int          { return col + row - (n - 1) }
func diag2Name(d int) string             { return fmt.Sprintf("\\%d", d) }
func placementName(col, row int) string  { return colName(col) + rowName(row) }

func (p *Problem) toInstance(logger *logrus.Logger) (*xcover.Instance, error) {
	n := p.N

	var mandatory []string
	coveredBy := make(map[string][]string)
	for row := 0; row < n; row++ {
		mandatory = append(mandatory, rowName(row))
		coveredBy[rowName(row)] = nil
	}
	for col := 0; col < n; col++ {
		mandatory = append(mandatory, colName(col))
		coveredBy[colName(col)] = nil
	}
	for d := -(n - 1); d < n; d++ {
		coveredBy[diag1Name(d)] = nil
	}
	for d := -(n - 1); d < n; d++ {
		coveredBy[diag2Name(d)] = nil
	}

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			opt := placementName(col, row)
			coveredBy[rowName(row)] = append(coveredBy[rowName(row)], opt)
			coveredBy[colName(col)] = append(coveredBy[colName(col)], opt)
			coveredBy[diag1Name(diag1(col, row))] = append(coveredBy[diag1Name(diag1(col, row))], opt)
			coveredBy[diag2Name(diag2(col, row, n))] = append(coveredBy[diag2Name(diag2(col, row, n))], opt)
		}
	}

	var optional []string
	for d := -(n - 1); d < n; d++ {
		optional = append(optional, diag1Name(d), diag2Name(d))
	}

	inst, err := xcover.Construct(mandatory, optional, nil, coveredBy)
	if err != nil {
		return nil, err
	}
	if logger != nil {
		inst = inst.WithLogger(logger)
	}
	return inst, nil
}

// Board is an NxN queen placement; true marks a square occupied by a queen.
type Board [][]bool

func newBoard(n int) Board {
	b := make(Board, n)
	for i := range b {
		b[i] = make([]bool, n)
	}
	return b
}

// String renders the board with 'Q' for an occupied square and '.' otherwise.
func (b Board) String() string {
	var sb strings.Builder
	for _, row := range b {
		for _, occupied := range row {
			if occupied {
				sb.WriteByte('Q')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func solutionToBoard(n int, sel []string) Board {
	b := newBoard(n)
	for _, opt := range sel {
		col := int(opt[0] - 'a')
		row := 0
		fmt.Sscanf(opt[1:], "%d", &row)
		b[row-1][col] = true
	}
	return b
}

// Solve returns one placement of N non-attacking queens, or (nil, false) if
// N admits none (N = 2 or N = 3).
func (p *Problem) Solve() (Board, bool, error) {
	return p.SolveWithLogger(nil)
}

// SolveWithLogger is Solve, additionally logging the search's cover/uncover
// trace at Debug level through logger.
func (p *Problem) SolveWithLogger(logger *logrus.Logger) (Board, bool, error) {
	inst, err := p.toInstance(logger)
	if err != nil {
		return nil, false, err
	}
	sel, ok := inst.SolveOne()
	if !ok {
		return nil, false, nil
	}
	return solutionToBoard(p.N, sel), true, nil
}

// CountAll returns the number of distinct placements of N non-attacking
// queens.
func (p *Problem) CountAll() (int, error) {
	return p.CountAllWithLogger(nil)
}

// CountAllWithLogger is CountAll, additionally logging the search's
// cover/uncover trace at Debug level through logger.
func (p *Problem) CountAllWithLogger(logger *logrus.Logger) (int, error) {
	inst, err := p.toInstance(logger)
	if err != nil {
		return 0, err
	}
	return inst.CountAll(), nil
}

// ValidateSolution reports whether b places exactly one queen per row and
// column and at most one per diagonal.
func ValidateSolution(b Board) bool {
	n := len(b)
	rowCounts := make([]int, n)
	colCounts := make([]int, n)
	diag1Counts := make([]int, 2*n-1)
	diag2Counts := make([]int, 2*n-1)

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if !b[row][col] {
				continue
			}
			rowCounts[row]++
			colCounts[col]++
			diag1Counts[diag1(col, row)+n-1]++
			diag2Counts[diag2(col, row, n)+n-1]++
		}
	}
	for i := 0; i < n; i++ {
		if rowCounts[i] != 1 || colCounts[i] != 1 {
			return false
		}
	}
	for i := 0; i < 2*n-1; i++ {
		if diag1Counts[i] > 1 || diag2Counts[i] > 1 {
			return false
		}
	}
	return true
}
