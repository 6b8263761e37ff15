package logic

// Solve answers an UNSAT/SAT query on a CNF instance by recursive
// variable splitting with unit propagation — no clause learning, no
// non-chronological backtracking, no restarts. It always terminates:
// every recursive call removes at least one variable from the
// candidate set, so recursion depth is bounded by the variable count.
func Solve(cnf CNF) Model {
	if len(cnf) == 0 {
		return Satisfied(Assignment{})
	}
	return solveRec(cnf, cnf.Variables())
}

// solveRec picks the head of remaining (an ascending, deduplicated
// slice, so the pick is "any" but deterministic across runs) and
// tries both polarities in order, folding in whatever unit
// propagation derives for free before recursing.
func solveRec(cnf CNF, remaining []Variable) Model {
	if len(cnf) == 0 {
		return Satisfied(Assignment{})
	}
	if len(remaining) == 0 {
		// Clauses remain but no variable is left to split on, so every
		// remaining clause is empty (e.g. an input made only of empty
		// clauses): the CNF is unsatisfiable.
		return Unsatisfiable
	}

	v := remaining[0]
	rest := remaining[1:]

	for _, p := range [...]Polarity{Positive, Negative} {
		reduced := reduce(cnf, Assignment{v: p})
		propagated, implied, ok := unitPropagate(reduced)
		if !ok {
			continue
		}
		nextRemaining := withoutAssigned(rest, implied)
		sub := solveRec(propagated, nextRemaining)
		if sub.IsUnsat() {
			continue
		}
		full := Assignment{v: p}
		for variable, polarity := range implied {
			full[variable] = polarity
		}
		for variable, polarity := range sub.Assignment() {
			full[variable] = polarity
		}
		return Satisfied(full)
	}
	return Unsatisfiable
}

// reduce applies a (possibly partial) assignment to cnf: clauses
// containing a now-true literal are dropped entirely; literals that
// are now false are deleted from the clauses that remain.
func reduce(cnf CNF, a Assignment) CNF {
	out := make(CNF, 0, len(cnf))
	for _, clause := range cnf {
		satisfied := false
		newClause := make(Clause, 0, len(clause))
		for _, l := range clause {
			p, assigned := a[l.Var]
			if !assigned {
				newClause = append(newClause, l)
				continue
			}
			if p == l.Polarity {
				satisfied = true
				break
			}
			// Literal is false under a: drop it from the clause.
		}
		if satisfied {
			continue
		}
		out = append(out, newClause)
	}
	return out
}

// unitPropagate repeats: scan for empty clauses (conflict) and unit
// clauses (forced literals), then reduce by everything forced so far,
// until a scan finds nothing new to force.
func unitPropagate(cnf CNF) (CNF, Assignment, bool) {
	forced := Assignment{}
	for {
		conflict := false
		sawNewUnit := false
		for _, clause := range cnf {
			switch len(clause) {
			case 0:
				conflict = true
			case 1:
				l := clause[0]
				if p, ok := forced[l.Var]; ok {
					if p != l.Polarity {
						conflict = true
					}
				} else {
					forced[l.Var] = l.Polarity
					sawNewUnit = true
				}
			}
		}
		if conflict {
			return nil, nil, false
		}
		if !sawNewUnit {
			return cnf, forced, true
		}
		cnf = reduce(cnf, forced)
	}
}

// withoutAssigned returns the variables in vars that are not keys of a,
// preserving order.
func withoutAssigned(vars []Variable, a Assignment) []Variable {
	if len(a) == 0 {
		return vars
	}
	out := make([]Variable, 0, len(vars))
	for _, v := range vars {
		if _, ok := a[v]; !ok {
			out = append(out, v)
		}
	}
	return out
}
