package preprocess

import (
	"strconv"

	"github.com/gosat/satlogic/ast"
	"github.com/gosat/satlogic/errs"
	"github.com/gosat/satlogic/sat"
)

// tseytinAuxPrefix is prepended to every fresh auxiliary variable, and
// must never collide with an input variable name.
const tseytinAuxPrefix = "z_"

// ToCNFTseytin converts f to an equisatisfiable sat.CNFFormula, linear in
// the size of f, by naming every non-leaf subformula of its negation
// normal form with a fresh auxiliary variable z_1, z_2, … (assigned
// child-first, so a subformula's children are always named before it
// is), emitting a biconditional clause set per name, and finally
// asserting the root's name as a unit clause.
//
// A satisfying assignment of the result projects onto Vars(f) to satisfy
// f; f is satisfiable iff the result is.
func ToCNFTseytin(f ast.Formula) (sat.CNFFormula, error) {
	elim, err := EliminateImplications(f)
	if err != nil {
		return sat.CNFFormula{}, err
	}
	nnf, err := PushNegationsInward(elim)
	if err != nil {
		return sat.CNFFormula{}, err
	}

	enc := &tseytinEncoder{}
	root, clauses, err := enc.encode(nnf)
	if err != nil {
		return sat.CNFFormula{}, err
	}

	rootLit, err := asLiteral(root)
	if err != nil {
		return sat.CNFFormula{}, err
	}
	clauses = append(clauses, sat.NewClause(rootLit))
	return sat.NewCNFFormula(clauses...), nil
}

type tseytinEncoder struct {
	counter int
}

func (e *tseytinEncoder) fresh() ast.Var {
	e.counter++
	return ast.Var{Name: tseytinAuxPrefix + strconv.Itoa(e.counter)}
}

// encode returns an operand standing in for f — either f itself, if f is
// a leaf (Var or Not(Var)), or a fresh auxiliary Var naming f — together
// with every clause emitted while encoding f and its children.
func (e *tseytinEncoder) encode(f ast.Formula) (ast.Formula, []sat.Clause, error) {
	switch n := f.(type) {
	case ast.Var:
		return n, nil, nil
	case ast.Not:
		if _, ok := n.Child.(ast.Var); !ok {
			return nil, nil, errs.Newf("preprocess", "ToCNFTseytin", "Not must wrap a Var in NNF, got %T", n.Child)
		}
		return n, nil, nil
	case ast.And:
		return e.encodeBinary(n.Left, n.Right, func(l, r ast.Formula) ast.Formula {
			return ast.And{Left: l, Right: r}
		})
	case ast.Or:
		return e.encodeBinary(n.Left, n.Right, func(l, r ast.Formula) ast.Formula {
			return ast.Or{Left: l, Right: r}
		})
	default:
		return nil, nil, errs.Newf("preprocess", "ToCNFTseytin", "unsupported node type %T", f)
	}
}

func (e *tseytinEncoder) encodeBinary(left, right ast.Formula, op func(l, r ast.Formula) ast.Formula) (ast.Formula, []sat.Clause, error) {
	lOperand, lClauses, err := e.encode(left)
	if err != nil {
		return nil, nil, err
	}
	rOperand, rClauses, err := e.encode(right)
	if err != nil {
		return nil, nil, err
	}

	name := e.fresh()
	bicond := ast.Biconditional{Left: name, Right: op(lOperand, rOperand)}
	cnf, err := ToCNFClassical(bicond)
	if err != nil {
		return nil, nil, err
	}

	all := make([]sat.Clause, 0, len(lClauses)+len(rClauses)+len(cnf.Clauses))
	all = append(all, lClauses...)
	all = append(all, rClauses...)
	all = append(all, cnf.Clauses...)
	return name, all, nil
}

// asLiteral converts a leaf Formula (Var or Not(Var)) into its sat.Literal.
func asLiteral(f ast.Formula) (sat.Literal, error) {
	switch n := f.(type) {
	case ast.Var:
		return sat.Literal{Variable: n.Name, Negated: false}, nil
	case ast.Not:
		v, ok := n.Child.(ast.Var)
		if !ok {
			return sat.Literal{}, errs.Newf("preprocess", "ToCNFTseytin", "Not must wrap a Var, got %T", n.Child)
		}
		return sat.Literal{Variable: v.Name, Negated: true}, nil
	default:
		return sat.Literal{}, errs.Newf("preprocess", "ToCNFTseytin", "expected a leaf, got %T", f)
	}
}
