package games

import (
	"fmt"
	"math/rand/v2"

	"github.com/devika/neuroquest/internal/quest"
)

// boardSymbols is the glyph pool for symbol-hunt boards.
var boardSymbols = []string{"◆", "●", "▲", "■", "★", "✦", "♥", "⬟"}

// symbolBoard is a grid of symbols with a fixed number of hidden targets.
// Shared by the symbol-hunt quests; the generator snapshots it each round
// and Observe marks found targets.
type symbolBoard struct {
	cells     []quest.Cell
	columns   int
	target    string
	remaining int
	found     int
}

// newSymbolBoard lays out size cells with targetCount targets of one
// symbol and distractors drawn from the rest of the pool.
func newSymbolBoard(rng *rand.Rand, size, columns, targetCount int) (*symbolBoard, error) {
	if targetCount > size {
		return nil, fmt.Errorf("symbol board: %d targets cannot fit %d cells", targetCount, size)
	}
	if len(boardSymbols) < 2 {
		return nil, fmt.Errorf("symbol board: need at least 2 symbols")
	}

	target := boardSymbols[rng.IntN(len(boardSymbols))]

	b := &symbolBoard{
		cells:     make([]quest.Cell, size),
		columns:   columns,
		target:    target,
		remaining: targetCount,
	}

	for _, pos := range rng.Perm(size)[:targetCount] {
		b.cells[pos] = quest.Cell{Label: target, Target: true}
	}
	for i := range b.cells {
		if b.cells[i].Target {
			continue
		}
		// Distractors must differ from the target symbol.
		label := target
		for label == target {
			label = boardSymbols[rng.IntN(len(boardSymbols))]
		}
		b.cells[i] = quest.Cell{Label: label}
	}
	return b, nil
}

// stimulus snapshots the board as a grid stimulus.
func (b *symbolBoard) stimulus() quest.Stimulus {
	cells := make([]quest.Cell, len(b.cells))
	copy(cells, b.cells)
	return quest.Stimulus{
		Kind:    quest.KindGrid,
		Prompt:  fmt.Sprintf("Find every %s", b.target),
		Cells:   cells,
		Columns: b.columns,
	}
}

// mark records a correct find and reports whether targets remain.
func (b *symbolBoard) mark(cell int) bool {
	if cell < 0 || cell >= len(b.cells) || !b.cells[cell].Target || b.cells[cell].Matched {
		return b.remaining > 0
	}
	b.cells[cell].Matched = true
	b.remaining--
	b.found++
	return b.remaining > 0
}

// pickDistinct draws n distinct values in [0, domain) by rejection
// sampling. The loop is bounded: each attempt either grows the result or
// retries, and n <= domain guarantees progress.
func pickDistinct(rng *rand.Rand, n, domain int) ([]int, error) {
	if n > domain {
		return nil, fmt.Errorf("cannot pick %d distinct values from domain %d", n, domain)
	}
	picked := make([]int, 0, n)
	seen := make(map[int]bool, n)
	for len(picked) < n {
		v := rng.IntN(domain)
		if seen[v] {
			continue
		}
		seen[v] = true
		picked = append(picked, v)
	}
	return picked, nil
}
