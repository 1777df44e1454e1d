package preprocess

import (
	"github.com/gosat/satlogic/ast"
	"github.com/gosat/satlogic/errs"
)

// PushNegationsInward drives Not to the leaves via De Morgan's laws,
// producing negation normal form. Its input must already be free of
// Implies/Biconditional (see EliminateImplications); applying it to such
// a node reports an error rather than silently eliminating it.
//
// PushNegationsInward is idempotent: applying it to its own output
// returns a structurally identical formula, since the output already has
// Not only directly above a Var.
func PushNegationsInward(f ast.Formula) (ast.Formula, error) {
	switch n := f.(type) {
	case ast.Var:
		return n, nil
	case ast.Not:
		return pushNegation(n.Child)
	case ast.And:
		l, err := PushNegationsInward(n.Left)
		if err != nil {
			return nil, err
		}
		r, err := PushNegationsInward(n.Right)
		if err != nil {
			return nil, err
		}
		return ast.And{Left: l, Right: r}, nil
	case ast.Or:
		l, err := PushNegationsInward(n.Left)
		if err != nil {
			return nil, err
		}
		r, err := PushNegationsInward(n.Right)
		if err != nil {
			return nil, err
		}
		return ast.Or{Left: l, Right: r}, nil
	case ast.Implies, ast.Biconditional:
		return nil, errs.Newf("preprocess", "PushNegationsInward",
			"node %T must be eliminated before NNF", f)
	default:
		return nil, errs.Newf("preprocess", "PushNegationsInward", "unsupported node type %T", f)
	}
}

// pushNegation pushes a Not that wraps child inward, applying De Morgan's
// laws and double-negation elimination.
func pushNegation(child ast.Formula) (ast.Formula, error) {
	switch c := child.(type) {
	case ast.Var:
		return ast.Not{Child: c}, nil
	case ast.Not:
		// ¬¬A ⟶ A
		return PushNegationsInward(c.Child)
	case ast.And:
		// ¬(A ∧ B) ⟶ ¬A ∨ ¬B
		l, err := pushNegation(c.Left)
		if err != nil {
			return nil, err
		}
		r, err := pushNegation(c.Right)
		if err != nil {
			return nil, err
		}
		return ast.Or{Left: l, Right: r}, nil
	case ast.Or:
		// ¬(A ∨ B) ⟶ ¬A ∧ ¬B
		l, err := pushNegation(c.Left)
		if err != nil {
			return nil, err
		}
		r, err := pushNegation(c.Right)
		if err != nil {
			return nil, err
		}
		return ast.And{Left: l, Right: r}, nil
	case ast.Implies, ast.Biconditional:
		return nil, errs.Newf("preprocess", "PushNegationsInward",
			"node %T must be eliminated before NNF", child)
	default:
		return nil, errs.Newf("preprocess", "PushNegationsInward", "unsupported node type %T", child)
	}
}
