package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClauseTautology(t *testing.T) {
	assert.True(t, Clause{Lit(1), NegLit(1)}.Tautology())
	assert.True(t, Clause{Lit(1), Lit(2), NegLit(1)}.Tautology())
	assert.False(t, Clause{Lit(1), Lit(2)}.Tautology())
	assert.False(t, Clause(nil).Tautology())
}

func TestUnitCNF(t *testing.T) {
	c := UnitCNF(Lit(3))
	assert.Equal(t, CNF{Clause{Lit(3)}}, c)
}

func TestCNFMerge(t *testing.T) {
	a := CNF{Clause{Lit(1)}}
	b := CNF{Clause{Lit(2)}}
	merged := a.Merge(b)
	assert.Equal(t, CNF{Clause{Lit(1)}, Clause{Lit(2)}}, merged)

	// Merge must not alias either input's backing array.
	merged[0] = Clause{Lit(99)}
	assert.Equal(t, CNF{Clause{Lit(1)}}, a)
}

func TestCNFNormalize(t *testing.T) {
	c := CNF{
		Clause{Lit(5), NegLit(2)},
		Clause{Lit(2)},
		Clause(nil),
	}
	vars, clauses := c.Normalize()
	assert.Equal(t, []Variable{5, 2}, vars)
	assert.Equal(t, [][]int{{1, -2}, {2}}, clauses)
}

func TestCNFVariables(t *testing.T) {
	c := CNF{
		Clause{Lit(5), NegLit(2)},
		Clause{Lit(2), Lit(9)},
	}
	assert.Equal(t, []Variable{2, 5, 9}, c.Variables())
}
