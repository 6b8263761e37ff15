package logic

// Assignment is a (possibly partial) mapping from variable to
// polarity.
type Assignment map[Variable]Polarity

// Model is the verdict of a DPLL run: either a satisfying assignment
// or UNSAT.
type Model struct {
	assignment Assignment
	unsat      bool
}

// Satisfied builds a Model carrying a satisfying assignment.
func Satisfied(a Assignment) Model {
	return Model{assignment: a}
}

// Unsatisfiable is the Model reported when no assignment satisfies
// the CNF.
var Unsatisfiable = Model{unsat: true}

// IsUnsat reports whether the model is UNSAT. It is the only query
// the solver driver makes of a Model.
func (m Model) IsUnsat() bool {
	return m.unsat
}

// Assignment returns the satisfying assignment, or nil if the model
// is UNSAT.
func (m Model) Assignment() Assignment {
	return m.assignment
}
