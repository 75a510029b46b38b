package sudoku

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func board1() *Board {
	return &Board{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 7, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	}
}

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

const board1Standard = `53. .7. ...
6.. 195 ...
.98 ... .6.

8.. .6. ..3
4.. 8.3 ..1
7.. .2. ..6

.6. ..7 28.
... 419 ..5
... .8. .79
`

func TestReadBoard(t *testing.T) {
	path := writeFixture(t, "sudoku.txt", board1Standard)
	got, err := ReadBoard(path)
	if err != nil {
		t.Fatalf("ReadBoard: %v", err)
	}
	if !reflect.DeepEqual(*got, *board1()) {
		t.Fatalf("ReadBoard: got %v, want %v", got, board1())
	}
}

func TestReadBoardNoSpaces(t *testing.T) {
	noSpaces := `53..7....
6..195...
.98....6.

8...6...3
4..8.3..1
7...2...6

.6....28.
...419..5
....8..79
`
	path := writeFixture(t, "sudoku_no_spaces.txt", noSpaces)
	got, err := ReadBoard(path)
	if err != nil {
		t.Fatalf("ReadBoard: %v", err)
	}
	if !reflect.DeepEqual(*got, *board1()) {
		t.Fatalf("ReadBoard: got %v, want %v", got, board1())
	}
}

func TestReadBoardNoNewlines(t *testing.T) {
	noBlankLines := `53. .7. ...
6.. 195 ...
.98 ... .6.
8.. .6. ..3
4.. 8.3 ..1
7.. .2. ..6
.6. ..7 28.
... 419 ..5
... .8. .79
`
	path := writeFixture(t, "sudoku_no_newlines.txt", noBlankLines)
	got, err := ReadBoard(path)
	if err != nil {
		t.Fatalf("ReadBoard: %v", err)
	}
	if !reflect.DeepEqual(*got, *board1()) {
		t.Fatalf("ReadBoard: got %v, want %v", got, board1())
	}
}

func TestReadBoardExtraSpaces(t *testing.T) {
	extraSpaces := `5 3 .   .7.  ...
6..  1 9 5 ...
.98 ...   .6.

8.. .6. ..3
4..  8.3  ..1
7.. .2. ..6

.6. ..7 28.
...  419 ..5
... .8.  .79
`
	path := writeFixture(t, "sudoku_extra_spaces.txt", extraSpaces)
	got, err := ReadBoard(path)
	if err != nil {
		t.Fatalf("ReadBoard: %v", err)
	}
	if !reflect.DeepEqual(*got, *board1()) {
		t.Fatalf("ReadBoard: got %v, want %v", got, board1())
	}
}

func TestReadBoardExtraNewlines(t *testing.T) {
	extraNewlines := "\n\n" + board1Standard + "\n\n"
	path := writeFixture(t, "sudoku_extra_newlines.txt", extraNewlines)
	got, err := ReadBoard(path)
	if err != nil {
		t.Fatalf("ReadBoard: %v", err)
	}
	if !reflect.DeepEqual(*got, *board1()) {
		t.Fatalf("ReadBoard: got %v, want %v", got, board1())
	}
}

func TestReadBoardInvalidPath(t *testing.T) {
	_, err := ReadBoard(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	if !errors.Is(err, ErrBoardRead) {
		t.Fatalf("ReadBoard: got %v, want ErrBoardRead", err)
	}
}

func TestReadBoardTooWide(t *testing.T) {
	tooWide := `53. .7. ....
6.. 195 ...
.98 ... .6.
8.. .6. ..3
4.. 8.3 ..1
7.. .2. ..6
.6. ..7 28.
... 419 ..5
... .8. .79
`
	path := writeFixture(t, "sudoku_too_wide.txt", tooWide)
	_, err := ReadBoard(path)
	if !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("ReadBoard: got %v, want ErrInvalidSize", err)
	}
}

func TestReadBoardTooLong(t *testing.T) {
	tooLong := board1Standard + "53. .7. ...\n"
	path := writeFixture(t, "sudoku_too_long.txt", tooLong)
	_, err := ReadBoard(path)
	if !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("ReadBoard: got %v, want ErrInvalidSize", err)
	}
}

func TestReadBoardMissingCharacter(t *testing.T) {
	missing := `53. .7. ..
6.. 195 ...
.98 ... .6.
8.. .6. ..3
4.. 8.3 ..1
7.. .2. ..6
.6. ..7 28.
... 419 ..5
... .8. .79
`
	path := writeFixture(t, "sudoku_missing_character.txt", missing)
	_, err := ReadBoard(path)
	if !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("ReadBoard: got %v, want ErrInvalidSize", err)
	}
}

func TestReadBoardInvalidCharacter(t *testing.T) {
	invalid := `53. .7. ..x
6.. 195 ...
.98 ... .6.
8.. .6. ..3
4.. 8.3 ..1
7.. .2. ..6
.6. ..7 28.
... 419 ..5
... .8. .79
`
	path := writeFixture(t, "sudoku_invalid_character.txt", invalid)
	_, err := ReadBoard(path)
	if err == nil {
		t.Fatalf("ReadBoard: expected error")
	}
	if !errors.Is(err, ErrInvalidCharacter) {
		t.Fatalf("ReadBoard: got %v, want ErrInvalidCharacter", err)
	}
}

func TestString(t *testing.T) {
	got := board1().String()
	want := "53. .7. ...\n" +
		"6.. 195 ...\n" +
		".98 ... .6.\n\n" +
		"8.. .6. ..3\n" +
		"4.. 8.3 ..1\n" +
		"7.. .2. ..6\n\n" +
		".6. ..7 28.\n" +
		"... 419 ..5\n" +
		"... .8. .79\n"
	if got != want {
		t.Fatalf("String: got %q, want %q", got, want)
	}
}

func isValidCompleteBoard(b *Board) bool {
	for r := 0; r < size; r++ {
		seen := [size + 1]bool{}
		for c := 0; c < size; c++ {
			v := b[r][c]
			if v < 1 || v > size || seen[v] {
				return false
			}
			seen[v] = true
		}
	}
	for c := 0; c < size; c++ {
		seen := [size + 1]bool{}
		for r := 0; r < size; r++ {
			v := b[r][c]
			if seen[v] {
				return false
			}
			seen[v] = true
		}
	}
	for blk := 0; blk < size; blk++ {
		seen := [size + 1]bool{}
		baseRow, baseCol := (blk/3)*3, (blk%3)*3
		for i := 0; i < blockSize; i++ {
			for j := 0; j < blockSize; j++ {
				v := b[baseRow+i][baseCol+j]
				if seen[v] {
					return false
				}
				seen[v] = true
			}
		}
	}
	return true
}

func TestSolve(t *testing.T) {
	sol, ok, err := board1().Solve()
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !ok {
		t.Fatalf("Solve: expected a solution")
	}
	// Every clue in the input must survive into the solution.
	orig := board1()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if orig[r][c] != 0 && orig[r][c] != sol[r][c] {
				t.Fatalf("Solve: clue at (%d,%d) not preserved: got %d, want %d", r, c, sol[r][c], orig[r][c])
			}
		}
	}
	if !isValidCompleteBoard(sol) {
		t.Fatalf("Solve: result is not a valid completed Sudoku board:\n%s", sol)
	}
}
