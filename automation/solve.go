package automation

import "github.com/NKID00/minesweep-automated/logic"

// SolveResult is the driver's verdict: two disjoint sets of board
// coordinates, the cells provably a mine and the cells provably safe.
// Both may be empty; the structure itself is never absent.
type SolveResult struct {
	MustBeMine  []Coord
	MustNotMine []Coord
}

// tseitinBase reserves the board's own cell variables (which occupy
// [0, W*H)) and starts auxiliary Tseitin variables comfortably above
// any board size the engine supports.
const tseitinBase = 0x10000

// Constraints rebuilds the same Tseitin-encoded CNF Solve would check
// cells against, returning ok=false exactly when Solve would
// short-circuit to an empty SolveResult. Exposed so a host can dump
// the constraint set (e.g. in DIMACS form) without duplicating the
// driver's own pipeline.
func Constraints(view BoardView) (cnf logic.CNF, active []Coord, ok bool) {
	if !view.IsPlaying() {
		return nil, nil, false
	}
	active = activeSet(view)
	if len(active) == 0 {
		return nil, nil, false
	}
	formula, ok := buildConstraints(view, active)
	if !ok {
		return nil, nil, false
	}

	base := logic.Variable(tseitinBase)
	if next := logic.MaximumVariable(formula) + 1; next > base {
		base = next
	}
	return logic.TseitinEncode(formula, base), active, true
}

// Solve is the core's one synchronous entry point: given a read-only
// view of the board and a SAT backend, it returns every boundary cell
// whose status the visible clues force. It performs no I/O and shares
// no state across invocations — every call rebuilds its Formula and
// CNF from scratch.
func Solve(view BoardView, backend logic.SatBackend) SolveResult {
	constraints, active, ok := Constraints(view)
	if !ok {
		return SolveResult{}
	}

	var result SolveResult
	for _, c := range active {
		v := mineVar(view, c.X, c.Y)
		if backend.IsUnsat(constraints, logic.Clause{logic.Lit(v)}) {
			result.MustNotMine = append(result.MustNotMine, c)
			continue
		}
		if backend.IsUnsat(constraints, logic.Clause{logic.NegLit(v)}) {
			result.MustBeMine = append(result.MustBeMine, c)
		}
		// Both satisfiable: indeterminate, not reported.
	}
	return result
}
