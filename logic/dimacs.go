package logic

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteDIMACS writes cnf in the conventional DIMACS CNF text format: a
// "p cnf <vars> <clauses>" header followed by one line per clause,
// each a space-separated list of signed integers terminated by 0.
func WriteDIMACS(w io.Writer, cnf CNF) error {
	vars, clauses := cnf.Normalize()
	header := fmt.Sprintf("p cnf %d %d\n", len(vars), len(clauses))
	if _, err := io.WriteString(w, header); err != nil {
		return fmt.Errorf("logic: writing DIMACS header: %w", err)
	}
	for _, clause := range clauses {
		terms := make([]string, len(clause)+1)
		for i, lit := range clause {
			terms[i] = strconv.Itoa(lit)
		}
		terms[len(clause)] = "0"
		line := strings.Join(terms, " ") + "\n"
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("logic: writing DIMACS clause: %w", err)
		}
	}
	return nil
}
