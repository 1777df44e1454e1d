package preprocess

import (
	"strconv"

	"github.com/gosat/satlogic/sat"
)

// threeCNFAuxPrefix is prepended to every fresh auxiliary variable
// introduced by EnsureThreeCNF, kept distinct from tseytinAuxPrefix so the
// two passes can be composed without collision.
const threeCNFAuxPrefix = "t_"

// IsThreeCNF reports whether every clause of f has at most three literals.
func IsThreeCNF(f sat.CNFFormula) bool {
	for _, c := range f.Clauses {
		if len(c.Literals) > 3 {
			return false
		}
	}
	return true
}

// EnsureThreeCNF rewrites every clause with more than three literals
// (ℓ1 ∨ ℓ2 ∨ … ∨ ℓk) into the equisatisfiable chain
//
//	(ℓ1 ∨ ℓ2 ∨ a1), (¬a1 ∨ ℓ3 ∨ a2), …, (¬a(k-3) ∨ ℓ(k-1) ∨ ℓk)
//
// using fresh auxiliary variables per oversized clause. Clauses of size
// three or fewer are kept unchanged. The result is equisatisfiable with f
// and preserves solutions on f's original variables.
func EnsureThreeCNF(f sat.CNFFormula) sat.CNFFormula {
	counter := 0
	fresh := func() string {
		counter++
		return threeCNFAuxPrefix + strconv.Itoa(counter)
	}

	var out []sat.Clause
	for _, c := range f.Clauses {
		if len(c.Literals) <= 3 {
			out = append(out, c)
			continue
		}
		out = append(out, splitClause(c, fresh)...)
	}
	return sat.NewCNFFormula(out...)
}

func splitClause(c sat.Clause, fresh func() string) []sat.Clause {
	lits := c.Literals
	k := len(lits)

	clauses := make([]sat.Clause, 0, k-2)
	prevAux := fresh()
	clauses = append(clauses, sat.NewClause(lits[0], lits[1], sat.Literal{Variable: prevAux}))

	for i := 2; i < k-2; i++ {
		nextAux := fresh()
		clauses = append(clauses, sat.NewClause(
			sat.Literal{Variable: prevAux, Negated: true},
			lits[i],
			sat.Literal{Variable: nextAux},
		))
		prevAux = nextAux
	}

	clauses = append(clauses, sat.NewClause(
		sat.Literal{Variable: prevAux, Negated: true},
		lits[k-2],
		lits[k-1],
	))
	return clauses
}
