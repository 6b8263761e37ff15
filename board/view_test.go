package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NKID00/minesweep-automated/automation"
)

func TestLeftClickFloodFillOpensMoreThanOneCell(t *testing.T) {
	safe := Coord{X: 3, Y: 3}
	b := New(Options{Width: 4, Height: 4, Mines: 1, Seed: 9, Safe: &safe})
	v := NewView(b)
	v.LeftClick(3, 3)

	assert.Equal(t, Opened, b.State(3, 3))
	// With only 1 mine on a 4x4 board, opening a far corner must
	// flood-fill through at least one more zero-count cell.
	opened := 0
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if b.State(x, y) == Opened {
				opened++
			}
		}
	}
	assert.Greater(t, opened, 1)
}

func TestLeftClickOnMineLoses(t *testing.T) {
	safe := Coord{X: 0, Y: 0}
	b := New(Options{Width: 2, Height: 2, Mines: 3, Seed: 5, Safe: &safe})
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if b.IsMine(x, y) {
				v := NewView(b)
				v.LeftClick(x, y)
				assert.Equal(t, Lose, v.Result())
				return
			}
		}
	}
	t.Fatal("expected at least one mine")
}

func TestRightClickCyclesMarks(t *testing.T) {
	safe := Coord{X: 0, Y: 0}
	b := New(Options{Width: 2, Height: 2, Mines: 1, Seed: 1, Safe: &safe})
	v := NewView(b)

	v.RightClick(0, 0)
	assert.Equal(t, Flagged, b.State(0, 0))
	v.RightClick(0, 0)
	assert.Equal(t, Questioned, b.State(0, 0))
	v.RightClick(0, 0)
	assert.Equal(t, Unopened, b.State(0, 0))
}

func TestMiddleClickChordsWhenFlagsMatch(t *testing.T) {
	safe := Coord{X: 1, Y: 1}
	b := New(Options{Width: 3, Height: 3, Mines: 1, Seed: 2, Safe: &safe})
	v := NewView(b)
	v.LeftClick(1, 1)

	var mineX, mineY int
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if b.IsMine(x, y) {
				mineX, mineY = x, y
			}
		}
	}
	v.RightClick(mineX, mineY)
	v.MiddleClick(1, 1)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == mineX && y == mineY {
				continue
			}
			assert.Equal(t, Opened, b.State(x, y), "cell (%d,%d) should have chorded open", x, y)
		}
	}
}

func TestViewImplementsBoardView(t *testing.T) {
	safe := Coord{X: 0, Y: 0}
	b := New(Options{Width: 3, Height: 3, Mines: 1, Seed: 1, Safe: &safe})
	v := NewView(b)
	v.LeftClick(0, 0)

	var view automation.BoardView = v
	assert.Equal(t, 3, view.Width())
	assert.Equal(t, 3, view.Height())
	assert.True(t, view.IsPlaying())
	assert.LessOrEqual(t, len(view.NearbyCells(0, 0)), 8)
}
