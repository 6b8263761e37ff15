// Package worker is the one concurrency boundary in this repository:
// a goroutine that runs automation steps off a channel and reports
// back elapsed time plus which cells to redraw. Grounded on the
// gloo_worker reactor loop the original engine ran its automation on
// (receive a view, run one step, send back (elapsed, view, redraw)),
// translated into a plain Go goroutine-and-channel pair. The
// automation and logic packages themselves stay synchronous; nothing
// in this package changes that contract, it only calls into it from
// a background goroutine.
package worker

import (
	"time"

	"github.com/NKID00/minesweep-automated/automation"
	"github.com/NKID00/minesweep-automated/logic"
)

// StepView is the mutable counterpart to automation.BoardView: it can
// answer the same observation queries the solver needs, and also
// apply a solver's verdict by flagging or opening cells.
type StepView interface {
	automation.BoardView
	Flag(x, y int)
	Open(x, y int)
}

// Redraw names the cells one automation step changed, so a host can
// repaint only what moved instead of the whole board.
type Redraw struct {
	Cells []automation.Coord
}

// Snapshot is one unit of work sent to a Worker.
type Snapshot struct {
	View    StepView
	Backend logic.SatBackend
}

// Result is what a Worker reports back for one Snapshot.
type Result struct {
	Elapsed time.Duration
	View    StepView
	Redraw  *Redraw
}

// Worker runs automation steps on a background goroutine.
type Worker struct {
	In   chan Snapshot
	Out  chan Result
	done chan struct{}
}

// New starts a Worker goroutine with the given channel buffering.
func New(buffer int) *Worker {
	w := &Worker{
		In:   make(chan Snapshot, buffer),
		Out:  make(chan Result, buffer),
		done: make(chan struct{}),
	}
	go w.run()
	return w
}

func (w *Worker) run() {
	defer close(w.Out)
	for {
		select {
		case snap, ok := <-w.In:
			if !ok {
				return
			}
			begin := time.Now()
			redraw := Step(snap.View, snap.Backend)
			w.Out <- Result{
				Elapsed: time.Since(begin),
				View:    snap.View,
				Redraw:  redraw,
			}
		case <-w.done:
			return
		}
	}
}

// Close stops the Worker once any in-flight Snapshot finishes.
func (w *Worker) Close() {
	close(w.done)
}

// Step runs one automation pass over view: solve, then apply every
// forced cell (flag the mines, open the safe cells), and report which
// coordinates changed. Returns nil if nothing was forced.
func Step(view StepView, backend logic.SatBackend) *Redraw {
	result := automation.Solve(view, backend)
	if len(result.MustBeMine) == 0 && len(result.MustNotMine) == 0 {
		return nil
	}
	cells := make([]automation.Coord, 0, len(result.MustBeMine)+len(result.MustNotMine))
	for _, c := range result.MustBeMine {
		view.Flag(c.X, c.Y)
		cells = append(cells, c)
	}
	for _, c := range result.MustNotMine {
		view.Open(c.X, c.Y)
		cells = append(cells, c)
	}
	return &Redraw{Cells: cells}
}
