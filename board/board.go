// Package board is a concrete, playable minesweeper board and the
// oracle that lets the automation engine observe it. Board holds the
// ground truth (mine layout, per-cell state); View derives the
// player-visible rendering and implements automation.BoardView.
package board

import "math/rand"

// CellState is the player-facing state of a single cell, independent
// of what lies beneath it.
type CellState int

const (
	Unopened CellState = iota
	Flagged
	Questioned
	Opened
)

// Coord is a zero-based (column, row) board position.
type Coord struct{ X, Y int }

// Board is the ground-truth minesweeper grid.
type Board struct {
	width, height int
	mines         [][]bool
	cells         [][]CellState
}

// Options configures a new Board.
type Options struct {
	Width, Height, Mines int
	// Safe, if set, is guaranteed not to hold a mine.
	Safe *Coord
	// Seed seeds mine placement. Seed == 0 draws a process-random seed.
	Seed int64
}

// Easy, Medium and Hard mirror the classic minesweeper presets.
func Easy() Options   { return Options{Width: 9, Height: 9, Mines: 10} }
func Medium() Options { return Options{Width: 16, Height: 16, Mines: 40} }
func Hard() Options   { return Options{Width: 30, Height: 16, Mines: 99} }

// New builds a Board from opts, placing mines with a seeded
// math/rand source. It panics if the board cannot hold the requested
// mine count while leaving at least one safe cell.
func New(opts Options) *Board {
	w, h, mines := opts.Width, opts.Height, opts.Mines
	if w < 1 || h < 1 || mines < 1 || w*h <= mines {
		panic("board: width, height and mines must be positive and leave at least one safe cell")
	}

	var rng *rand.Rand
	if opts.Seed != 0 {
		rng = rand.New(rand.NewSource(opts.Seed))
	} else {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	positions := make([]Coord, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			positions = append(positions, Coord{X: x, Y: y})
		}
	}
	rng.Shuffle(len(positions), func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})

	b := &Board{
		width:  w,
		height: h,
		mines:  make([][]bool, h),
		cells:  make([][]CellState, h),
	}
	for y := range b.mines {
		b.mines[y] = make([]bool, w)
		b.cells[y] = make([]CellState, w)
	}

	placed := 0
	for _, p := range positions {
		if placed >= mines {
			break
		}
		if opts.Safe != nil && p == *opts.Safe {
			continue
		}
		b.mines[p.Y][p.X] = true
		placed++
	}
	return b
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) IsMine(x, y int) bool     { return b.mines[y][x] }
func (b *Board) State(x, y int) CellState { return b.cells[y][x] }

func (b *Board) setState(x, y int, s CellState) { b.cells[y][x] = s }

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Board) neighbours(x, y int) []Coord {
	var out []Coord
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if b.inBounds(nx, ny) {
				out = append(out, Coord{X: nx, Y: ny})
			}
		}
	}
	return out
}

// NearbyMines is the true count of mines among (x, y)'s neighbours —
// the number an Opened cell displays to the player.
func (b *Board) NearbyMines(x, y int) int {
	n := 0
	for _, c := range b.neighbours(x, y) {
		if b.mines[c.Y][c.X] {
			n++
		}
	}
	return n
}

// NearbyFlags counts (x, y)'s Flagged neighbours.
func (b *Board) NearbyFlags(x, y int) int {
	n := 0
	for _, c := range b.neighbours(x, y) {
		if b.cells[c.Y][c.X] == Flagged {
			n++
		}
	}
	return n
}

func (b *Board) MineCount() int {
	n := 0
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.mines[y][x] {
				n++
			}
		}
	}
	return n
}

func (b *Board) FlagCount() int {
	n := 0
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.cells[y][x] == Flagged {
				n++
			}
		}
	}
	return n
}

// GameResult is the outcome of a Board at a point in time.
type GameResult int

const (
	Playing GameResult = iota
	Win
	Lose
)

// Result scans the board: any opened mine loses; otherwise the game
// is won once every non-mine cell is opened.
func (b *Board) Result() GameResult {
	anyUnresolved := false
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			opened := b.cells[y][x] == Opened
			mine := b.mines[y][x]
			switch {
			case opened && mine:
				return Lose
			case !opened && !mine:
				anyUnresolved = true
			}
		}
	}
	if anyUnresolved {
		return Playing
	}
	return Win
}
