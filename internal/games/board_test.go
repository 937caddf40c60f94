package games

import (
	"math/rand/v2"
	"testing"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func TestPickDistinctNoDuplicates(t *testing.T) {
	rng := testRand()

	for n := 1; n <= 16; n++ {
		picked, err := pickDistinct(rng, n, 16)
		if err != nil {
			t.Fatalf("pickDistinct(%d, 16): %v", n, err)
		}
		if len(picked) != n {
			t.Fatalf("pickDistinct(%d, 16) returned %d values", n, len(picked))
		}
		seen := make(map[int]bool)
		for _, v := range picked {
			if v < 0 || v >= 16 {
				t.Errorf("value %d out of domain", v)
			}
			if seen[v] {
				t.Errorf("duplicate value %d in %v", v, picked)
			}
			seen[v] = true
		}
	}
}

func TestPickDistinctUnsatisfiable(t *testing.T) {
	if _, err := pickDistinct(testRand(), 17, 16); err == nil {
		t.Error("picking more values than the domain holds must fail, not loop")
	}
}

func TestSymbolBoardLayout(t *testing.T) {
	rng := testRand()

	board, err := newSymbolBoard(rng, 64, 8, 15)
	if err != nil {
		t.Fatal(err)
	}

	targets := 0
	for _, c := range board.cells {
		if c.Target {
			targets++
			if c.Label != board.target {
				t.Errorf("target cell labeled %q, want %q", c.Label, board.target)
			}
		} else if c.Label == board.target {
			t.Errorf("distractor cell shares the target symbol %q", board.target)
		}
	}
	if targets != 15 {
		t.Errorf("target count = %d, want 15", targets)
	}
	if board.remaining != 15 {
		t.Errorf("remaining = %d, want 15", board.remaining)
	}
}

func TestSymbolBoardMark(t *testing.T) {
	board, err := newSymbolBoard(testRand(), 16, 4, 3)
	if err != nil {
		t.Fatal(err)
	}

	var targetCells []int
	for i, c := range board.cells {
		if c.Target {
			targetCells = append(targetCells, i)
		}
	}

	board.mark(targetCells[0])
	if board.remaining != 2 || board.found != 1 {
		t.Errorf("after one find: remaining=%d found=%d", board.remaining, board.found)
	}

	// Marking the same cell again changes nothing.
	board.mark(targetCells[0])
	if board.remaining != 2 {
		t.Errorf("re-marking a found cell changed remaining to %d", board.remaining)
	}

	board.mark(targetCells[1])
	if more := board.mark(targetCells[2]); more {
		t.Error("mark reported targets remaining after the last find")
	}
}

func TestSymbolBoardTooManyTargets(t *testing.T) {
	if _, err := newSymbolBoard(testRand(), 4, 2, 5); err == nil {
		t.Error("board with more targets than cells accepted")
	}
}
