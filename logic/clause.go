package logic

import "sort"

// Clause is an ordered disjunction of literals. The empty clause is
// unsatisfiable.
type Clause []Literal

// Tautology reports whether the clause contains a literal and its
// complement, making it trivially satisfied.
func (c Clause) Tautology() bool {
	for i, l := range c {
		for _, m := range c[i+1:] {
			if l.ComplementOf(m) {
				return true
			}
		}
	}
	return false
}

// CNF is an ordered conjunction of clauses. The empty CNF is
// satisfiable (the empty conjunction is true).
type CNF []Clause

// UnitCNF builds a single-clause CNF out of one literal.
func UnitCNF(l Literal) CNF {
	return CNF{Clause{l}}
}

// Merge concatenates two CNFs, representing the conjunction of both.
// It allocates a new slice; callers that build many assumption
// variants from one base CNF should call Merge on a shared base
// rather than mutate either argument, since Merge never aliases its
// inputs' backing arrays together.
func (c CNF) Merge(other CNF) CNF {
	out := make(CNF, 0, len(c)+len(other))
	out = append(out, c...)
	out = append(out, other...)
	return out
}

// Normalize produces a dense, 1-based DIMACS-style encoding of the
// CNF: the variables seen, in first-occurrence order, and the clauses
// rewritten as signed integer vectors indexing into that table (+i for
// a positive occurrence of vars[i-1], -i for a negative one). Empty
// clauses are dropped — see spec open question on whether an empty
// clause should instead short-circuit to UNSAT immediately; both are
// consistent with the DPLL kernel's own behavior.
func (c CNF) Normalize() (vars []Variable, clauses [][]int) {
	index := make(map[Variable]int)
	clauses = make([][]int, 0, len(c))
	for _, clause := range c {
		if len(clause) == 0 {
			continue
		}
		row := make([]int, 0, len(clause))
		for _, l := range clause {
			idx, ok := index[l.Var]
			if !ok {
				idx = len(vars) + 1
				index[l.Var] = idx
				vars = append(vars, l.Var)
			}
			if l.Polarity == Negative {
				row = append(row, -idx)
			} else {
				row = append(row, idx)
			}
		}
		clauses = append(clauses, row)
	}
	return vars, clauses
}

// Variables returns the set of variables appearing anywhere in the
// CNF, in ascending order. Used by the DPLL kernel to seed the initial
// set of candidate split variables with a stable iteration order.
func (c CNF) Variables() []Variable {
	seen := make(map[Variable]struct{})
	for _, clause := range c {
		for _, l := range clause {
			seen[l.Var] = struct{}{}
		}
	}
	vars := make([]Variable, 0, len(seen))
	for v := range seen {
		vars = append(vars, v)
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i] < vars[j] })
	return vars
}
