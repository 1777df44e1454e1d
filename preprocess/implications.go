// Package preprocess transforms an ast.Formula into an equivalent or
// equisatisfiable sat.CNFFormula. Every exported function is a pure,
// total function over well-formed formulas; an unsupported node kind
// reports an *errs.Error naming the node's type. That error does not wrap
// ast.ErrInvalidFormula.
package preprocess

import (
	"github.com/gosat/satlogic/ast"
	"github.com/gosat/satlogic/errs"
)

// EliminateImplications rewrites Implies and Biconditional nodes into
// their And/Or/Not equivalents:
//
//	A -> B        ⟶ ¬A ∨ B
//	A <-> B       ⟶ (¬A ∨ B) ∧ (¬B ∨ A)
//
// The result contains no Implies or Biconditional node.
func EliminateImplications(f ast.Formula) (ast.Formula, error) {
	switch n := f.(type) {
	case ast.Var:
		return n, nil
	case ast.Not:
		child, err := EliminateImplications(n.Child)
		if err != nil {
			return nil, err
		}
		return ast.Not{Child: child}, nil
	case ast.And:
		l, err := EliminateImplications(n.Left)
		if err != nil {
			return nil, err
		}
		r, err := EliminateImplications(n.Right)
		if err != nil {
			return nil, err
		}
		return ast.And{Left: l, Right: r}, nil
	case ast.Or:
		l, err := EliminateImplications(n.Left)
		if err != nil {
			return nil, err
		}
		r, err := EliminateImplications(n.Right)
		if err != nil {
			return nil, err
		}
		return ast.Or{Left: l, Right: r}, nil
	case ast.Implies:
		l, err := EliminateImplications(n.Left)
		if err != nil {
			return nil, err
		}
		r, err := EliminateImplications(n.Right)
		if err != nil {
			return nil, err
		}
		return ast.Or{Left: ast.Not{Child: l}, Right: r}, nil
	case ast.Biconditional:
		l, err := EliminateImplications(n.Left)
		if err != nil {
			return nil, err
		}
		r, err := EliminateImplications(n.Right)
		if err != nil {
			return nil, err
		}
		return ast.And{
			Left:  ast.Or{Left: ast.Not{Child: l}, Right: r},
			Right: ast.Or{Left: ast.Not{Child: r}, Right: l},
		}, nil
	default:
		return nil, errs.Newf("preprocess", "EliminateImplications", "unsupported node type %T", f)
	}
}
