package cdcl

import (
	"testing"

	"github.com/gosat/satlogic/sat"
)

func lit(v string, neg bool) sat.Literal { return sat.Literal{Variable: v, Negated: neg} }

func TestSolveScenarios(t *testing.T) {
	tests := []struct {
		name string
		cnf  sat.CNFFormula
		want Outcome
	}{
		{
			name: "single positive unit",
			cnf:  sat.NewCNFFormula(sat.NewClause(lit("p", false))),
			want: SAT,
		},
		{
			name: "p and not p resolved at level 0",
			cnf: sat.NewCNFFormula(
				sat.NewClause(lit("p", false)),
				sat.NewClause(lit("p", true)),
			),
			want: UNSAT,
		},
		{
			name: "chained implication",
			cnf: sat.NewCNFFormula(
				sat.NewClause(lit("p", true), lit("q", false)),
				sat.NewClause(lit("q", true), lit("r", false)),
				sat.NewClause(lit("p", false)),
			),
			want: SAT,
		},
		{
			name: "unsat requiring backjump",
			cnf: sat.NewCNFFormula(
				sat.NewClause(lit("p", false), lit("q", false)),
				sat.NewClause(lit("p", false), lit("q", true)),
				sat.NewClause(lit("p", true), lit("r", false)),
				sat.NewClause(lit("p", true), lit("r", true)),
			),
			want: UNSAT,
		},
		{
			name: "three variable sat",
			cnf: sat.NewCNFFormula(
				sat.NewClause(lit("x1", false), lit("x2", false), lit("x3", false)),
				sat.NewClause(lit("x1", true), lit("x2", true), lit("x3", false)),
				sat.NewClause(lit("x1", false), lit("x2", true), lit("x3", true)),
			),
			want: SAT,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			solver := NewSolver(tt.cnf)
			got := solver.Solve()
			if got != tt.want {
				t.Fatalf("Solve() = %v, want %v", got, tt.want)
			}
			if got == SAT {
				assignment := solver.Assignment()
				if !assignment.SatisfiesFormula(tt.cnf) {
					t.Fatalf("reported assignment %v does not satisfy %v", assignment, tt.cnf)
				}
			}
		})
	}
}

func TestLearnsAtLeastOneClausePerBackjump(t *testing.T) {
	// Forces at least one conflict above level 0 before UNSAT: with p
	// decided true, r is forced both ways by the two implications.
	cnf := sat.NewCNFFormula(
		sat.NewClause(lit("p", false), lit("q", false)),
		sat.NewClause(lit("p", false), lit("q", true)),
		sat.NewClause(lit("p", true), lit("r", false)),
		sat.NewClause(lit("p", true), lit("r", true)),
	)
	solver := NewSolver(cnf)
	if solver.Solve() != UNSAT {
		t.Fatalf("expected UNSAT")
	}
	if len(solver.learned) == 0 {
		t.Fatalf("expected at least one learned clause before reaching UNSAT at level 0")
	}
}

func TestResolveDropsPivotAndDeduplicates(t *testing.T) {
	a := []sat.Literal{lit("x", false), lit("y", false)}
	b := []sat.Literal{lit("x", true), lit("y", false), lit("z", false)}
	got := resolve(a, b, "x")
	want := map[sat.Literal]bool{lit("y", false): true, lit("z", false): true}
	if len(got) != len(want) {
		t.Fatalf("resolve() = %v, want exactly %v", got, want)
	}
	for _, l := range got {
		if !want[l] {
			t.Fatalf("resolve() produced unexpected literal %v", l)
		}
	}
}

func TestEmptyClauseIsUnsat(t *testing.T) {
	cnf := sat.NewCNFFormula(sat.NewClause())
	solver := NewSolver(cnf)
	if solver.Solve() != UNSAT {
		t.Fatalf("empty clause must be unsatisfiable")
	}
}

func TestEmptyFormulaIsSat(t *testing.T) {
	cnf := sat.NewCNFFormula()
	solver := NewSolver(cnf)
	if solver.Solve() != SAT {
		t.Fatalf("empty conjunction must be satisfiable")
	}
}
