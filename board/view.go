package board

import "github.com/NKID00/minesweep-automated/automation"

// CellView is the player-facing rendering of a single cell, derived
// from the Board's raw state and the current GameResult — e.g. mines
// are only revealed once the game is Lost or Won.
type CellView int

const (
	ViewUnopened CellView = iota
	ViewFlagged
	ViewQuestioned
	ViewOpened
	ViewMine
	ViewWrongMine
	ViewExploded
)

// View layers result-aware rendering on top of a Board and implements
// automation.BoardView, so the deduction engine can observe it
// directly without knowing anything about Board itself.
type View struct {
	board  *Board
	result GameResult
}

// NewView wraps b, computing the initial GameResult.
func NewView(b *Board) *View {
	v := &View{board: b}
	v.refresh()
	return v
}

func (v *View) refresh() {
	v.result = v.board.Result()
}

func (v *View) Board() *Board      { return v.board }
func (v *View) Result() GameResult { return v.result }

func (v *View) cellView(x, y int) CellView {
	mine := v.board.IsMine(x, y)
	state := v.board.State(x, y)
	switch v.result {
	case Win:
		if mine {
			return ViewFlagged
		}
		return ViewOpened
	case Lose:
		switch {
		case mine && state == Opened:
			return ViewExploded
		case mine && state == Flagged:
			return ViewFlagged
		case mine:
			return ViewMine
		case state == Flagged:
			return ViewWrongMine
		case state == Opened:
			return ViewOpened
		default:
			return ViewUnopened
		}
	default: // Playing
		switch state {
		case Flagged:
			return ViewFlagged
		case Questioned:
			return ViewQuestioned
		case Opened:
			return ViewOpened
		default:
			return ViewUnopened
		}
	}
}

// LeftClick opens (x, y). Opening a cell with zero nearby mines
// flood-fills outward through every such cell's neighbours, using an
// explicit stack rather than recursion.
func (v *View) LeftClick(x, y int) {
	if v.result != Playing || v.board.State(x, y) != Unopened {
		return
	}
	if v.board.IsMine(x, y) {
		v.board.setState(x, y, Opened)
		v.refresh()
		return
	}

	stack := []Coord{{X: x, Y: y}}
	for len(stack) > 0 {
		n := len(stack) - 1
		c := stack[n]
		stack = stack[:n]
		if v.board.State(c.X, c.Y) != Unopened {
			continue
		}
		v.board.setState(c.X, c.Y, Opened)
		if v.board.NearbyMines(c.X, c.Y) == 0 {
			stack = append(stack, v.board.neighbours(c.X, c.Y)...)
		}
	}
	v.refresh()
}

// Flag forces (x, y) into the Flagged state directly, the way the
// automation driver marks a cell it has proven is a mine — unlike
// RightClick this never cycles through Questioned.
func (v *View) Flag(x, y int) {
	if v.result != Playing || v.board.State(x, y) != Unopened {
		return
	}
	v.board.setState(x, y, Flagged)
}

// Open is LeftClick under the name the worker.StepView contract uses.
func (v *View) Open(x, y int) { v.LeftClick(x, y) }

// RightClick cycles (x, y) through Unopened -> Flagged -> Questioned
// -> Unopened.
func (v *View) RightClick(x, y int) {
	if v.result != Playing {
		return
	}
	switch v.board.State(x, y) {
	case Unopened:
		v.board.setState(x, y, Flagged)
	case Flagged:
		v.board.setState(x, y, Questioned)
	case Questioned:
		v.board.setState(x, y, Unopened)
	case Opened:
		return
	}
}

// MiddleClick chords: if (x, y) is opened and its flagged-neighbour
// count already matches its clue, every remaining unopened neighbour
// is opened.
func (v *View) MiddleClick(x, y int) {
	if v.result != Playing || v.board.State(x, y) != Opened {
		return
	}
	if v.board.NearbyMines(x, y) != v.board.NearbyFlags(x, y) {
		return
	}
	for _, c := range v.board.neighbours(x, y) {
		if v.board.State(c.X, c.Y) == Unopened {
			v.LeftClick(c.X, c.Y)
		}
	}
}

// Cell implements automation.BoardView.
func (v *View) Cell(x, y int) automation.CellView {
	switch v.cellView(x, y) {
	case ViewUnopened:
		return automation.CellView{Kind: automation.Intact}
	case ViewQuestioned:
		return automation.CellView{Kind: automation.Questioned}
	case ViewFlagged:
		return automation.CellView{Kind: automation.Flagged}
	case ViewOpened:
		return automation.CellView{Kind: automation.Opened, Count: v.board.NearbyMines(x, y)}
	default:
		return automation.CellView{Kind: automation.Exposed}
	}
}

func (v *View) Width() int  { return v.board.Width() }
func (v *View) Height() int { return v.board.Height() }

func (v *View) NearbyCells(x, y int) []automation.Coord {
	raw := v.board.neighbours(x, y)
	out := make([]automation.Coord, len(raw))
	for i, c := range raw {
		out[i] = automation.Coord{X: c.X, Y: c.Y}
	}
	return out
}

func (v *View) NearbyFlags(x, y int) int { return v.board.NearbyFlags(x, y) }

func (v *View) IsPlaying() bool { return v.result == Playing }

var _ automation.BoardView = (*View)(nil)
