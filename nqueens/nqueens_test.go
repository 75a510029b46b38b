package nqueens

import "testing"

func TestNQueensSolve(t *testing.T) {
	p := &Problem{N: 8}
	board, ok, err := p.Solve()
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !ok {
		t.Fatalf("Solve: expected a solution")
	}
	if !ValidateSolution(board) {
		t.Fatalf("Solve: invalid solution:\n%s", board)
	}
}

func TestNQueensCountAll(t *testing.T) {
	cases := []struct {
		n     int
		count int
	}{
		{1, 1},
		{2, 0},
		{3, 0},
		{4, 2},
		{5, 10},
		{6, 4},
		{7, 40},
		{8, 92},
		{9, 352},
		{10, 724},
	}
	for _, tc := range cases {
		p := &Problem{N: tc.n}
		got, err := p.CountAll()
		if err != nil {
			t.Fatalf("CountAll(%d): %v", tc.n, err)
		}
		if got != tc.count {
			t.Fatalf("CountAll(%d): got %d, want %d", tc.n, got, tc.count)
		}
	}
}

func TestNQueensNoSolution(t *testing.T) {
	for _, n := range []int{2, 3} {
		p := &Problem{N: n}
		if _, ok, err := p.Solve(); err != nil {
			t.Fatalf("Solve(%d): %v", n, err)
		} else if ok {
			t.Fatalf("Solve(%d): expected no solution", n)
		}
	}
}

func TestBoardString(t *testing.T) {
	b := Board{
		{true, false, false, false},
		{false, false, false, true},
		{false, true, false, false},
		{false, false, true, false},
	}
	want := "Q...\n...Q\n.Q..\n..Q.\n"
	if got := b.String(); got != want {
		t.Fatalf("String: got %q, want %q", got, want)
	}
}
