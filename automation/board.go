// Package automation implements the deduction engine: it observes a
// board through the opaque BoardView contract, compiles the visible
// clues into propositional constraints, and asks a SAT backend which
// of the boundary cells are forced.
package automation

// CellKind classifies what the core currently knows about a cell.
type CellKind int

const (
	// Intact cells are unopened, unmarked, or in a display-only
	// pre-hover/pre-push state — none of that constrains the logic.
	Intact CellKind = iota
	Flagged
	Questioned
	Opened
	// Exposed covers terminal-state reveals (a mine shown after a loss,
	// a wrong flag, the cell that exploded) — also non-constraining.
	Exposed
)

// CellView is what the core can observe about a single cell.
type CellView struct {
	Kind CellKind
	// Count is the true number of mines among the cell's neighbours.
	// Only meaningful when Kind == Opened.
	Count int
}

// IsIntact reports whether the cell is in a state that does not
// constrain the deduction — unopened, hovered, or pushed.
func (c CellView) IsIntact() bool {
	return c.Kind == Intact
}

// Coord is a zero-based (column, row) board position.
type Coord struct {
	X, Y int
}

// BoardView is the external, opaque interface the core observes a
// game board through. Implementations must be read-only from the
// core's perspective: Solve never mutates anything it is given.
type BoardView interface {
	Width() int
	Height() int
	Cell(x, y int) CellView
	// NearbyCells returns the up-to-8 in-bounds, 8-connected
	// neighbours of (x, y).
	NearbyCells(x, y int) []Coord
	// NearbyFlags counts how many of (x, y)'s neighbours are Flagged.
	NearbyFlags(x, y int) int
	IsPlaying() bool
}
