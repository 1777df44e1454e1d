package preprocess

import (
	"github.com/gosat/satlogic/ast"
	"github.com/gosat/satlogic/errs"
	"github.com/gosat/satlogic/sat"
)

// ToCNFClassical converts f to an equivalent sat.CNFFormula by eliminating
// implications, pushing negations to the leaves, distributing OR over AND
// until every OR's operands are AND-free, and flattening the result's
// maximal OR-chains into clauses.
//
// This transformation is worst-case exponential in the size of f and is
// intended for small inputs; see ToCNFTseytin for a linear-size
// equisatisfiable alternative.
func ToCNFClassical(f ast.Formula) (sat.CNFFormula, error) {
	elim, err := EliminateImplications(f)
	if err != nil {
		return sat.CNFFormula{}, err
	}
	nnf, err := PushNegationsInward(elim)
	if err != nil {
		return sat.CNFFormula{}, err
	}
	distributed, err := distribute(nnf)
	if err != nil {
		return sat.CNFFormula{}, err
	}
	var clauses []sat.Clause
	flattenConjuncts(distributed, &clauses)
	return sat.NewCNFFormula(clauses...), nil
}

// distribute pushes Or inward over And until no Or has an And operand.
// Precondition: f is in negation normal form (only Var/Not(Var)/And/Or).
func distribute(f ast.Formula) (ast.Formula, error) {
	switch n := f.(type) {
	case ast.Var:
		return n, nil
	case ast.Not:
		if _, ok := n.Child.(ast.Var); !ok {
			return nil, errs.Newf("preprocess", "distribute", "Not must wrap a Var in NNF, got %T", n.Child)
		}
		return n, nil
	case ast.And:
		l, err := distribute(n.Left)
		if err != nil {
			return nil, err
		}
		r, err := distribute(n.Right)
		if err != nil {
			return nil, err
		}
		return ast.And{Left: l, Right: r}, nil
	case ast.Or:
		l, err := distribute(n.Left)
		if err != nil {
			return nil, err
		}
		r, err := distribute(n.Right)
		if err != nil {
			return nil, err
		}
		return distributeOr(l, r), nil
	default:
		return nil, errs.Newf("preprocess", "distribute", "unsupported node type %T", f)
	}
}

// distributeOr distributes Or(l, r) over any And operand, recursively,
// until neither l nor r is an And.
//
//	A ∨ (B ∧ C) ⟶ (A ∨ B) ∧ (A ∨ C)
//	(A ∧ B) ∨ C ⟶ (A ∨ C) ∧ (B ∨ C)
func distributeOr(l, r ast.Formula) ast.Formula {
	if land, ok := l.(ast.And); ok {
		return ast.And{
			Left:  distributeOr(land.Left, r),
			Right: distributeOr(land.Right, r),
		}
	}
	if rand, ok := r.(ast.And); ok {
		return ast.And{
			Left:  distributeOr(l, rand.Left),
			Right: distributeOr(l, rand.Right),
		}
	}
	return ast.Or{Left: l, Right: r}
}

// flattenConjuncts walks the top-level And-chain of f, appending one
// clause per maximal OR-chain conjunct.
func flattenConjuncts(f ast.Formula, out *[]sat.Clause) {
	if a, ok := f.(ast.And); ok {
		flattenConjuncts(a.Left, out)
		flattenConjuncts(a.Right, out)
		return
	}
	*out = append(*out, flattenDisjuncts(f))
}

// flattenDisjuncts walks a maximal OR-chain (or a single literal) into one
// clause.
func flattenDisjuncts(f ast.Formula) sat.Clause {
	var lits []sat.Literal
	var walk func(ast.Formula)
	walk = func(n ast.Formula) {
		switch t := n.(type) {
		case ast.Or:
			walk(t.Left)
			walk(t.Right)
		case ast.Var:
			lits = append(lits, sat.Literal{Variable: t.Name, Negated: false})
		case ast.Not:
			v := t.Child.(ast.Var)
			lits = append(lits, sat.Literal{Variable: v.Name, Negated: true})
		}
	}
	walk(f)
	return sat.NewClause(lits...)
}
