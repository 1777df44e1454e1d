package preprocess

import (
	"reflect"
	"testing"

	"github.com/gosat/satlogic/ast"
	"github.com/gosat/satlogic/dpll"
	"github.com/gosat/satlogic/sat"
)

func v(name string) ast.Formula { return ast.Var{Name: name} }

// allTotalAssignments enumerates every total boolean assignment over vars.
func allTotalAssignments(vars []string) []ast.Assignment {
	n := len(vars)
	out := make([]ast.Assignment, 0, 1<<uint(n))
	for mask := 0; mask < (1 << uint(n)); mask++ {
		a := make(ast.Assignment, n)
		for i, name := range vars {
			a[name] = mask&(1<<uint(i)) != 0
		}
		out = append(out, a)
	}
	return out
}

func evalCNF(f sat.CNFFormula, a ast.Assignment) bool {
	sa := sat.Assignment(a)
	return sa.SatisfiesFormula(f)
}

func TestClassicalCNFEquivalence(t *testing.T) {
	formulas := []ast.Formula{
		ast.And{Left: v("p"), Right: v("q")},
		ast.Or{Left: v("p"), Right: ast.And{Left: v("q"), Right: v("r")}},
		ast.Implies{Left: v("p"), Right: v("q")},
		ast.Biconditional{Left: v("p"), Right: v("q")},
		ast.Not{Child: ast.And{Left: v("p"), Right: ast.Not{Child: v("q")}}},
		ast.Or{
			Left:  ast.And{Left: v("p"), Right: v("q")},
			Right: ast.And{Left: v("r"), Right: ast.Not{Child: v("p")}},
		},
	}

	for _, f := range formulas {
		cnf, err := ToCNFClassical(f)
		if err != nil {
			t.Fatalf("ToCNFClassical(%v) error: %v", f, err)
		}
		vars := ast.Vars(f)
		for _, a := range allTotalAssignments(vars) {
			want, err := ast.Eval(f, a)
			if err != nil {
				t.Fatalf("Eval error: %v", err)
			}
			got := evalCNF(cnf, a)
			if got != want {
				t.Fatalf("formula %v, assignment %v: eval=%v, cnf-eval=%v", f, a, want, got)
			}
		}
	}
}

func TestNNFIdempotent(t *testing.T) {
	formulas := []ast.Formula{
		ast.Not{Child: ast.Not{Child: v("p")}},
		ast.Not{Child: ast.And{Left: v("p"), Right: v("q")}},
		ast.Not{Child: ast.Or{Left: v("p"), Right: ast.Not{Child: v("q")}}},
	}
	for _, f := range formulas {
		once, err := PushNegationsInward(f)
		if err != nil {
			t.Fatalf("PushNegationsInward error: %v", err)
		}
		twice, err := PushNegationsInward(once)
		if err != nil {
			t.Fatalf("PushNegationsInward error: %v", err)
		}
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("NNF not idempotent: once=%v twice=%v", once, twice)
		}
	}
}

func TestDoubleNegationElimination(t *testing.T) {
	f := ast.Not{Child: ast.Not{Child: v("p")}}
	got, err := PushNegationsInward(f)
	if err != nil {
		t.Fatalf("PushNegationsInward error: %v", err)
	}
	if !reflect.DeepEqual(got, v("p")) {
		t.Fatalf("push_negations_inward(¬¬A) = %v, want A", got)
	}
}

func TestTseytinEquisatisfiable(t *testing.T) {
	formulas := []ast.Formula{
		ast.And{Left: v("p"), Right: v("q")},
		ast.Or{
			Left:  ast.And{Left: v("p"), Right: v("q")},
			Right: v("r"),
		},
		ast.Implies{Left: v("p"), Right: ast.And{Left: v("q"), Right: v("r")}},
	}

	for _, f := range formulas {
		tseytin, err := ToCNFTseytin(f)
		if err != nil {
			t.Fatalf("ToCNFTseytin(%v) error: %v", f, err)
		}
		classical, err := ToCNFClassical(f)
		if err != nil {
			t.Fatalf("ToCNFClassical(%v) error: %v", f, err)
		}

		classicalSolver := dpll.NewSolver(classical)
		classicalSAT := classicalSolver.Solve() == dpll.SAT

		tseytinSolver := dpll.NewSolver(tseytin)
		tseytinSAT := tseytinSolver.Solve() == dpll.SAT

		if classicalSAT != tseytinSAT {
			t.Fatalf("formula %v: classical SAT=%v, tseytin SAT=%v", f, classicalSAT, tseytinSAT)
		}

		if tseytinSAT {
			full := tseytinSolver.Assignment()
			projected := make(ast.Assignment)
			for _, name := range ast.Vars(f) {
				projected[name] = full[name]
			}
			ok, err := ast.Eval(f, projected)
			if err != nil {
				t.Fatalf("Eval error: %v", err)
			}
			if !ok {
				t.Fatalf("projected assignment %v does not satisfy %v", projected, f)
			}
		}
	}
}

func TestTseytinRootExample(t *testing.T) {
	// to_cnf_tseytin(And(Or(P, Q), R)) per spec.md §8 scenario 6.
	f := ast.And{Left: ast.Or{Left: v("p"), Right: v("q")}, Right: v("r")}
	cnf, err := ToCNFTseytin(f)
	if err != nil {
		t.Fatalf("ToCNFTseytin error: %v", err)
	}

	foundUnitRoot := false
	for _, c := range cnf.Clauses {
		if c.IsUnit() && c.Literals[0].Variable == "z_2" {
			foundUnitRoot = true
		}
	}
	if !foundUnitRoot {
		t.Fatalf("expected a unit clause asserting the root auxiliary z_2, got %v", cnf)
	}

	solver := dpll.NewSolver(cnf)
	if solver.Solve() != dpll.SAT {
		t.Fatalf("tseytin encoding of %v should be SAT", f)
	}
}

func TestEnsureThreeCNF(t *testing.T) {
	big := sat.NewClause(
		sat.Literal{Variable: "a"}, sat.Literal{Variable: "b"}, sat.Literal{Variable: "c"},
		sat.Literal{Variable: "d"}, sat.Literal{Variable: "e"},
	)
	cnf := sat.NewCNFFormula(big)
	if IsThreeCNF(cnf) {
		t.Fatalf("5-literal clause should not already be 3-CNF")
	}

	reduced := EnsureThreeCNF(cnf)
	if !IsThreeCNF(reduced) {
		t.Fatalf("EnsureThreeCNF did not produce 3-CNF: %v", reduced)
	}

	for i, c := range reduced.Clauses {
		if len(c.Literals) > 3 {
			t.Fatalf("clause %d still oversized: %v", i, c)
		}
	}
}

func TestEnsureThreeCNFPreservesShortClauses(t *testing.T) {
	cnf := sat.NewCNFFormula(
		sat.NewClause(sat.Literal{Variable: "a"}),
		sat.NewClause(sat.Literal{Variable: "a"}, sat.Literal{Variable: "b"}),
		sat.NewClause(sat.Literal{Variable: "a"}, sat.Literal{Variable: "b"}, sat.Literal{Variable: "c"}),
	)
	reduced := EnsureThreeCNF(cnf)
	if !reflect.DeepEqual(cnf, reduced) {
		t.Fatalf("EnsureThreeCNF modified clauses of size <= 3: got %v", reduced)
	}
}
