package compare

import (
	"math/rand"
	"testing"

	"github.com/gosat/satlogic/sat"
)

func lit(v string, neg bool) sat.Literal { return sat.Literal{Variable: v, Negated: neg} }

func TestRunAgreesOnFixedScenarios(t *testing.T) {
	tests := []struct {
		name string
		cnf  sat.CNFFormula
	}{
		{
			name: "satisfiable chain",
			cnf: sat.NewCNFFormula(
				sat.NewClause(lit("p", false)),
				sat.NewClause(lit("p", true), lit("q", false)),
				sat.NewClause(lit("q", true), lit("r", false)),
			),
		},
		{
			name: "unsatisfiable with backjump",
			cnf: sat.NewCNFFormula(
				sat.NewClause(lit("p", false), lit("q", false)),
				sat.NewClause(lit("p", false), lit("q", true)),
				sat.NewClause(lit("p", true), lit("r", false)),
				sat.NewClause(lit("p", true), lit("r", true)),
			),
		},
		{
			name: "empty formula",
			cnf:  sat.NewCNFFormula(),
		},
		{
			name: "empty clause",
			cnf:  sat.NewCNFFormula(sat.NewClause()),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Run(tt.cnf)
			if err != nil {
				t.Fatalf("Run(%v) error: %v", tt.cnf, err)
			}
			if !report.Agree() {
				t.Fatalf("report disagrees: %+v", report)
			}
		})
	}
}

// randomCNF builds a random small CNF formula over numVars variables
// named v0..v(n-1), with numClauses clauses of 1-3 literals each.
func randomCNF(rng *rand.Rand, numVars, numClauses int) sat.CNFFormula {
	clauses := make([]sat.Clause, numClauses)
	for i := range clauses {
		size := 1 + rng.Intn(3)
		literals := make([]sat.Literal, size)
		for j := range literals {
			v := "v" + string(rune('0'+rng.Intn(numVars)))
			literals[j] = sat.Literal{Variable: v, Negated: rng.Intn(2) == 0}
		}
		clauses[i] = sat.NewClause(literals...)
	}
	return sat.NewCNFFormula(clauses...)
}

func TestRunNeverDisagreesOnGeneratedCNF(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		cnf := randomCNF(rng, 4, 6)
		report, err := Run(cnf)
		if err != nil {
			t.Fatalf("iteration %d: Run(%v) error: %v", i, cnf, err)
		}
		if !report.Agree() {
			t.Fatalf("iteration %d: report disagrees on %v: %+v", i, cnf, report)
		}
	}
}
