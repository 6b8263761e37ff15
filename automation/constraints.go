package automation

import (
	"sort"

	"github.com/NKID00/minesweep-automated/logic"
)

// mineVar maps a board coordinate to the variable that is true iff
// the cell at (x, y) holds a mine. The board is folded row-major into
// the low range of variables, below any Tseitin auxiliary.
func mineVar(view BoardView, x, y int) logic.Variable {
	return logic.Variable(y*view.Width() + x)
}

// activeSet returns every intact cell 8-adjacent to at least one
// Flagged or Opened cell — the only cells whose status the visible
// information can constrain — sorted into a deterministic order.
func activeSet(view BoardView) []Coord {
	seen := make(map[Coord]struct{})
	for y := 0; y < view.Height(); y++ {
		for x := 0; x < view.Width(); x++ {
			cell := view.Cell(x, y)
			if cell.Kind != Flagged && cell.Kind != Opened {
				continue
			}
			for _, n := range view.NearbyCells(x, y) {
				if view.Cell(n.X, n.Y).IsIntact() {
					seen[n] = struct{}{}
				}
			}
		}
	}
	return sortedCoords(seen)
}

// cellsToExamine is every cell neighbouring the active set: the only
// cells that could contribute a clue formula constraining it.
func cellsToExamine(view BoardView, active []Coord) []Coord {
	seen := make(map[Coord]struct{})
	for _, c := range active {
		seen[c] = struct{}{}
		for _, n := range view.NearbyCells(c.X, c.Y) {
			seen[n] = struct{}{}
		}
	}
	return sortedCoords(seen)
}

func sortedCoords(set map[Coord]struct{}) []Coord {
	out := make([]Coord, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// constraintCell builds the clue sub-formula for a single cell. has
// reports whether a sub-formula was produced at all; ok is false only
// for the defensive bailout when a clue's flag count makes it
// inconsistent with its neighbourhood (k<0 or k exceeds the number of
// intact neighbours) — a state the board is not supposed to reach.
func constraintCell(view BoardView, x, y int) (f logic.Formula, has bool, ok bool) {
	cell := view.Cell(x, y)
	switch cell.Kind {
	case Flagged:
		return logic.Var(mineVar(view, x, y)), true, true
	case Opened:
		var intact []Coord
		for _, c := range view.NearbyCells(x, y) {
			if view.Cell(c.X, c.Y).IsIntact() {
				intact = append(intact, c)
			}
		}
		k := cell.Count - view.NearbyFlags(x, y)
		exactly, ok := exactlyK(view, intact, k)
		if !ok {
			return nil, false, false
		}
		notMine := logic.Not(logic.Var(mineVar(view, x, y)))
		if exactly == nil {
			return notMine, true, true
		}
		return logic.And(exactly, notMine), true, true
	default:
		return nil, false, true
	}
}

// exactlyK builds the formula "exactly k of n are mines": a
// disjunction, over every k-subset M of n, of the conjunction
// asserting every cell in M is a mine and every cell in n\M is not.
// Returns ok=false if k is out of range for n, which should never
// happen on a well-formed board (see the driver's defensive bailout).
func exactlyK(view BoardView, n []Coord, k int) (logic.Formula, bool) {
	if k < 0 || k > len(n) {
		return nil, false
	}
	if len(n) == 0 {
		return nil, true
	}
	if k == 0 {
		negations := make([]logic.Formula, len(n))
		for i, c := range n {
			negations[i] = logic.Not(logic.Var(mineVar(view, c.X, c.Y)))
		}
		return logic.AndAll(negations), true
	}

	var disjuncts []logic.Formula
	forEachKSubset(len(n), k, func(chosen []int) {
		mine := make(map[int]struct{}, len(chosen))
		for _, i := range chosen {
			mine[i] = struct{}{}
		}
		conjuncts := make([]logic.Formula, len(n))
		for i, c := range n {
			v := logic.Var(mineVar(view, c.X, c.Y))
			if _, isMine := mine[i]; isMine {
				conjuncts[i] = v
			} else {
				conjuncts[i] = logic.Not(v)
			}
		}
		disjuncts = append(disjuncts, logic.AndAll(conjuncts))
	})
	return logic.OrAll(disjuncts), true
}

// forEachKSubset calls visit once for every k-subset of {0,...,n-1},
// each given in ascending index order, subsets visited in
// lexicographic order. k==0 visits the empty subset exactly once.
func forEachKSubset(n, k int, visit func(chosen []int)) {
	if k == 0 {
		visit(nil)
		return
	}
	if k > n {
		return
	}
	combo := make([]int, k)
	for i := range combo {
		combo[i] = i
	}
	for {
		chosen := make([]int, k)
		copy(chosen, combo)
		visit(chosen)

		i := k - 1
		for i >= 0 && combo[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		combo[i]++
		for j := i + 1; j < k; j++ {
			combo[j] = combo[j-1] + 1
		}
	}
}

// buildConstraints folds every clue sub-formula over the active set's
// neighbourhood into one conjunction. ok is false if there is no
// revealed structure to build from, or a clue was inconsistent.
func buildConstraints(view BoardView, active []Coord) (logic.Formula, bool) {
	examine := cellsToExamine(view, active)
	var subformulas []logic.Formula
	for _, c := range examine {
		f, has, ok := constraintCell(view, c.X, c.Y)
		if !ok {
			return nil, false
		}
		if has {
			subformulas = append(subformulas, f)
		}
	}
	if len(subformulas) == 0 {
		return nil, false
	}
	return logic.AndAll(subformulas), true
}
