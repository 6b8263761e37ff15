package logic

// subformula is a pending (auxiliary-variable, operator-node) pair
// still needing its defining clauses emitted.
type subformula struct {
	lit Literal
	f   Formula
}

// TseitinEncode compiles an arbitrary Formula into an equisatisfiable
// CNF, introducing fresh auxiliary variables starting at base (base
// must exceed every variable referenced in f). If f is itself a
// (possibly negated) variable, the result is the single unit clause
// containing that literal — no auxiliaries are introduced.
//
// The compiler never recurses on the Formula tree: wrap pushes an
// operator node onto an explicit worklist and returns a literal
// standing in for it; the main loop drains that worklist, so the
// whole compilation runs in a single pass with an explicit stack
// instead of native recursion.
func TseitinEncode(f Formula, base Variable) CNF {
	if l, ok := EncodeLiteral(f); ok {
		return UnitCNF(l)
	}

	fresh := base
	var worklist []subformula
	var clauses []Clause

	wrap := func(g Formula) Literal {
		if l, ok := EncodeLiteral(g); ok {
			return l
		}
		polarity, inner := CombineNegation(g)
		v := fresh
		fresh++
		worklist = append(worklist, subformula{lit: Lit(v), f: inner})
		return Literal{Var: v, Polarity: polarity}
	}

	top := wrap(f)
	clauses = append(clauses, Clause{top})

	for len(worklist) > 0 {
		n := len(worklist) - 1
		item := worklist[n]
		worklist = worklist[:n]
		v := item.lit

		switch node := item.f.(type) {
		case AndNode:
			l0 := wrap(node.F0)
			l1 := wrap(node.F1)
			clauses = append(clauses,
				Clause{v, l0.Negate(), l1.Negate()},
				Clause{v.Negate(), l0},
				Clause{v.Negate(), l1},
			)
		case OrNode:
			l0 := wrap(node.F0)
			l1 := wrap(node.F1)
			clauses = append(clauses,
				Clause{v.Negate(), l0, l1},
				Clause{v, l0.Negate()},
				Clause{v, l1.Negate()},
			)
		case IffNode:
			l0 := wrap(node.F0)
			l1 := wrap(node.F1)
			clauses = append(clauses,
				Clause{v, l0.Negate(), l1.Negate()},
				Clause{v, l0, l1},
				Clause{v.Negate(), l0.Negate(), l1},
				Clause{v.Negate(), l0, l1.Negate()},
			)
		case ImpNode:
			l0 := wrap(node.F0)
			l1 := wrap(node.F1)
			clauses = append(clauses,
				Clause{v, l0, l1},
				Clause{v.Negate(), l0.Negate(), l1},
				Clause{v, l1.Negate()},
			)
		default:
			panic("logic: tseitin worklist held a literal-shaped node")
		}
	}

	return CNF(clauses)
}
