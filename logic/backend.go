package logic

import "github.com/cespare/saturday"

// SatBackend decides satisfiability of constraints conjoined with a
// single extra assumption clause, without ever reporting the
// satisfying assignment back — the solver driver only ever needs the
// UNSAT/SAT bit. Keeping the interface this narrow lets wildly
// different solver implementations stand in for each other.
type SatBackend interface {
	// IsUnsat reports whether constraints, with assumption additionally
	// conjoined in, has no satisfying assignment.
	IsUnsat(constraints CNF, assumption Clause) bool
}

// DPLLBackend answers SatBackend queries with the package's own DPLL
// kernel.
type DPLLBackend struct{}

// IsUnsat runs Solve on constraints merged with the assumption clause.
func (DPLLBackend) IsUnsat(constraints CNF, assumption Clause) bool {
	full := constraints.Merge(CNF{assumption})
	return Solve(full).IsUnsat()
}

// SaturdayBackend answers SatBackend queries with
// github.com/cespare/saturday, an independent Davis-Putnam solver with
// watched literals and a VSIDS-style decision heap. Wiring a second,
// unrelated solver implementation behind the same interface lets the
// driver be run against either one interchangeably, the way the
// original automation engine could be built against any of several
// underlying SAT backends.
type SaturdayBackend struct{}

// IsUnsat hands the DIMACS-normalized clause set to saturday.Solve.
func (SaturdayBackend) IsUnsat(constraints CNF, assumption Clause) bool {
	_, clauses := constraints.Merge(CNF{assumption}).Normalize()
	if len(clauses) == 0 {
		return false
	}
	_, _, sat := saturday.Solve(clauses)
	return !sat
}
