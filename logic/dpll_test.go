package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolveEmptyCNF(t *testing.T) {
	m := Solve(CNF{})
	assert.False(t, m.IsUnsat())
}

func TestSolveEmptyClauseIsUnsat(t *testing.T) {
	m := Solve(CNF{Clause{}})
	assert.True(t, m.IsUnsat())
}

func TestSolveUnitConflict(t *testing.T) {
	m := Solve(CNF{Clause{Lit(1)}, Clause{NegLit(1)}})
	assert.True(t, m.IsUnsat())
}

func TestSolveSimpleSat(t *testing.T) {
	// (x1 v x2) & (!x1 v x3) & (!x2 v !x3)
	cnf := CNF{
		Clause{Lit(1), Lit(2)},
		Clause{NegLit(1), Lit(3)},
		Clause{NegLit(2), NegLit(3)},
	}
	m := Solve(cnf)
	assert.False(t, m.IsUnsat())
	assertSatisfies(t, cnf, m.Assignment())
}

func TestSolvePigeonholeUnsat(t *testing.T) {
	// 2 pigeons, 1 hole (var 1: pigeon 1 in the hole; var 2: pigeon 2
	// in the hole): each pigeon must be in the hole, but not both.
	cnf := CNF{
		Clause{Lit(1)},             // pigeon 1 is in the hole
		Clause{Lit(2)},             // pigeon 2 is in the hole
		Clause{NegLit(1), NegLit(2)}, // not both
	}
	m := Solve(cnf)
	assert.True(t, m.IsUnsat())
}

func TestSolveUnitPropagationChain(t *testing.T) {
	cnf := CNF{
		Clause{Lit(1)},
		Clause{NegLit(1), Lit(2)},
		Clause{NegLit(2), Lit(3)},
		Clause{NegLit(3)},
	}
	m := Solve(cnf)
	assert.True(t, m.IsUnsat())
}

// assertSatisfies fails the test if assignment does not satisfy every
// clause in cnf.
func assertSatisfies(t *testing.T, cnf CNF, a Assignment) {
	t.Helper()
	for _, clause := range cnf {
		satisfied := false
		for _, l := range clause {
			if a[l.Var] == l.Polarity {
				satisfied = true
				break
			}
		}
		assert.True(t, satisfied, "clause %v not satisfied by %v", clause, a)
	}
}
