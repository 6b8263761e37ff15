package automation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/NKID00/minesweep-automated/logic"
)

// fakeView is a minimal, hand-built BoardView used only by these
// tests — it lets a test fix a clue layout directly instead of
// driving a full board/game simulation.
type fakeView struct {
	width, height int
	kind          [][]CellKind
	count         [][]int
	playing       bool
}

func newFakeView(w, h int) *fakeView {
	kind := make([][]CellKind, h)
	count := make([][]int, h)
	for y := range kind {
		kind[y] = make([]CellKind, w)
		count[y] = make([]int, w)
	}
	return &fakeView{width: w, height: h, kind: kind, count: count, playing: true}
}

func (b *fakeView) Width() int  { return b.width }
func (b *fakeView) Height() int { return b.height }

func (b *fakeView) Cell(x, y int) CellView {
	return CellView{Kind: b.kind[y][x], Count: b.count[y][x]}
}

func (b *fakeView) NearbyCells(x, y int) []Coord {
	var out []Coord
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= b.height {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= b.width {
				continue
			}
			out = append(out, Coord{X: nx, Y: ny})
		}
	}
	return out
}

func (b *fakeView) NearbyFlags(x, y int) int {
	n := 0
	for _, c := range b.NearbyCells(x, y) {
		if b.kind[c.Y][c.X] == Flagged {
			n++
		}
	}
	return n
}

func (b *fakeView) IsPlaying() bool { return b.playing }

func (b *fakeView) open(x, y, count int) { b.kind[y][x] = Opened; b.count[y][x] = count }
func (b *fakeView) flag(x, y int)        { b.kind[y][x] = Flagged }

func TestSolveTerminalStateGating(t *testing.T) {
	view := newFakeView(3, 3)
	view.open(1, 1, 3)
	view.playing = false

	result := Solve(view, logic.DPLLBackend{})
	assert.Empty(t, result.MustBeMine)
	assert.Empty(t, result.MustNotMine)
}

func TestSolveNoActiveSet(t *testing.T) {
	view := newFakeView(3, 3)
	result := Solve(view, logic.DPLLBackend{})
	assert.Empty(t, result.MustBeMine)
	assert.Empty(t, result.MustNotMine)
}

// TestSolveOpenedZeroForcesSafe mirrors scenario S6: a clue of 0
// forces every intact neighbour safe; here there is exactly one.
func TestSolveOpenedZeroForcesSafe(t *testing.T) {
	view := newFakeView(2, 1)
	view.open(0, 0, 0)

	result := Solve(view, logic.DPLLBackend{})
	assert.Equal(t, []Coord{{X: 1, Y: 0}}, result.MustNotMine)
	assert.Empty(t, result.MustBeMine)
}

// TestSolveExactlyAllForcesMine covers the k == len(N) edge: every
// intact neighbour is forced to be a mine.
func TestSolveExactlyAllForcesMine(t *testing.T) {
	view := newFakeView(1, 3)
	view.open(0, 1, 2)

	result := Solve(view, logic.DPLLBackend{})
	assert.ElementsMatch(t, []Coord{{X: 0, Y: 0}, {X: 0, Y: 2}}, result.MustBeMine)
	assert.Empty(t, result.MustNotMine)
}

// TestSolveFlaggedCellConstrainsNeighbour checks that a flagged cell
// counts against a neighbouring clue: the flag is subtracted from the
// clue's number before the remaining intact neighbours are encoded.
func TestSolveFlaggedCellConstrainsNeighbour(t *testing.T) {
	view := newFakeView(1, 3)
	view.flag(0, 0)
	view.open(0, 1, 1)

	result := Solve(view, logic.DPLLBackend{})
	// The "1" clue is already explained by the flag, so the only
	// remaining intact neighbour must be safe.
	assert.Equal(t, []Coord{{X: 0, Y: 2}}, result.MustNotMine)
	assert.Empty(t, result.MustBeMine)
}

func TestSolveDisjointAndIdempotent(t *testing.T) {
	view := newFakeView(3, 3)
	view.open(1, 1, 3)

	first := Solve(view, logic.DPLLBackend{})
	for _, mine := range first.MustBeMine {
		assert.NotContains(t, first.MustNotMine, mine)
	}

	second := Solve(view, logic.DPLLBackend{})
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Solve is not idempotent (-first +second):\n%s", diff)
	}
}

func TestSolveUsesSaturdayBackendConsistently(t *testing.T) {
	view := newFakeView(1, 3)
	view.open(0, 1, 2)

	dpll := Solve(view, logic.DPLLBackend{})
	saturday := Solve(view, logic.SaturdayBackend{})
	assert.ElementsMatch(t, dpll.MustBeMine, saturday.MustBeMine)
	assert.ElementsMatch(t, dpll.MustNotMine, saturday.MustNotMine)
}
