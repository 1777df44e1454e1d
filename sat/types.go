// Package sat defines the CNF data model shared by the preprocess, dpll,
// and cdcl packages: literals, clauses, CNF formulas, and partial
// assignments.
package sat

import "strings"

// Literal is a variable or its negation.
type Literal struct {
	Variable string
	Negated  bool
}

// String renders the literal using the Display format of spec.md §6.
func (l Literal) String() string {
	if l.Negated {
		return "¬" + l.Variable
	}
	return l.Variable
}

// Negate returns the complementary literal.
func (l Literal) Negate() Literal {
	return Literal{Variable: l.Variable, Negated: !l.Negated}
}

// Complements reports whether l and other share a variable and differ in
// polarity.
func (l Literal) Complements(other Literal) bool {
	return l.Variable == other.Variable && l.Negated != other.Negated
}

// Clause is an ordered disjunction of literals. The empty clause is ⊥.
// Clauses do not deduplicate literals on construction; callers that need
// deduplication (e.g. conflict analysis) do it explicitly.
type Clause struct {
	Literals []Literal
}

// NewClause builds a clause from the given literals.
func NewClause(literals ...Literal) Clause {
	return Clause{Literals: literals}
}

// IsUnit reports whether the clause has exactly one literal.
func (c Clause) IsUnit() bool { return len(c.Literals) == 1 }

// IsEmpty reports whether the clause has no literals (⊥).
func (c Clause) IsEmpty() bool { return len(c.Literals) == 0 }

// Contains reports whether the clause mentions the given literal exactly
// (same variable, same polarity).
func (c Clause) Contains(lit Literal) bool {
	for _, l := range c.Literals {
		if l == lit {
			return true
		}
	}
	return false
}

func (c Clause) String() string {
	if c.IsEmpty() {
		return "⊥"
	}
	parts := make([]string, len(c.Literals))
	for i, l := range c.Literals {
		parts[i] = l.String()
	}
	return "(" + strings.Join(parts, " ∨ ") + ")"
}

// CNFFormula is an ordered conjunction of clauses. The empty conjunction
// is ⊤.
type CNFFormula struct {
	Clauses []Clause
}

// NewCNFFormula builds a CNF formula from the given clauses.
func NewCNFFormula(clauses ...Clause) CNFFormula {
	return CNFFormula{Clauses: clauses}
}

// Variables returns the distinct variable names appearing in the formula,
// in first-seen clause/literal order.
func (f CNFFormula) Variables() []string {
	seen := make(map[string]bool)
	var order []string
	for _, c := range f.Clauses {
		for _, l := range c.Literals {
			if !seen[l.Variable] {
				seen[l.Variable] = true
				order = append(order, l.Variable)
			}
		}
	}
	return order
}

func (f CNFFormula) String() string {
	if len(f.Clauses) == 0 {
		return "⊤"
	}
	parts := make([]string, len(f.Clauses))
	for i, c := range f.Clauses {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ∧ ")
}

// Assignment is a partial mapping from variable name to truth value.
// Absence of a key means "unassigned".
type Assignment map[string]bool

// Clone returns a deep copy of the assignment.
func (a Assignment) Clone() Assignment {
	clone := make(Assignment, len(a))
	for k, v := range a {
		clone[k] = v
	}
	return clone
}

// IsAssigned reports whether variable has a value.
func (a Assignment) IsAssigned(variable string) bool {
	_, ok := a[variable]
	return ok
}

// SatisfiesLiteral reports whether the assignment satisfies lit. An
// unassigned literal is not satisfied.
func (a Assignment) SatisfiesLiteral(lit Literal) bool {
	val, ok := a[lit.Variable]
	return ok && val == !lit.Negated
}

// FalsifiesLiteral reports whether the assignment falsifies lit. An
// unassigned literal is not falsified.
func (a Assignment) FalsifiesLiteral(lit Literal) bool {
	val, ok := a[lit.Variable]
	return ok && val != !lit.Negated
}

// Satisfies reports whether the assignment satisfies clause: at least one
// literal is satisfied. An empty clause is never satisfied.
func (a Assignment) Satisfies(clause Clause) bool {
	if clause.IsEmpty() {
		return false
	}
	for _, lit := range clause.Literals {
		if a.SatisfiesLiteral(lit) {
			return true
		}
	}
	return false
}

// Conflicts reports whether clause is falsified by the assignment: every
// literal is assigned and every one is falsified.
func (a Assignment) Conflicts(clause Clause) bool {
	for _, lit := range clause.Literals {
		if !a.IsAssigned(lit.Variable) {
			return false
		}
		if a.SatisfiesLiteral(lit) {
			return false
		}
	}
	return true
}

// SatisfiesFormula reports whether the assignment satisfies every clause
// of f.
func (a Assignment) SatisfiesFormula(f CNFFormula) bool {
	for _, c := range f.Clauses {
		if !a.Satisfies(c) {
			return false
		}
	}
	return true
}

// UnassignedLiterals returns the literals of clause whose variable is not
// yet assigned.
func (a Assignment) UnassignedLiterals(clause Clause) []Literal {
	var out []Literal
	for _, lit := range clause.Literals {
		if !a.IsAssigned(lit.Variable) {
			out = append(out, lit)
		}
	}
	return out
}
