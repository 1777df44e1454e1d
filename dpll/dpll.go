// Package dpll implements the classical Davis-Putnam-Logemann-Loveland
// decision procedure: recursive backtracking search with unit propagation
// and pure-literal elimination over an immutable sat.CNFFormula.
package dpll

import (
	"fmt"

	"github.com/gosat/satlogic/sat"
)

// Outcome is the result of a decision procedure run.
type Outcome int

const (
	// UNSAT means no assignment satisfies the formula.
	UNSAT Outcome = iota
	// SAT means Solver.Assignment returns a satisfying assignment.
	SAT
)

func (o Outcome) String() string {
	if o == SAT {
		return "SAT"
	}
	return "UNSAT"
}

// Solver decides the satisfiability of one sat.CNFFormula. It is
// single-use: construct a new Solver per formula.
type Solver struct {
	cnf        sat.CNFFormula
	assignment sat.Assignment
}

// NewSolver returns a Solver for cnf. cnf is read-only for the lifetime of
// the solver.
func NewSolver(cnf sat.CNFFormula) *Solver {
	return &Solver{cnf: cnf}
}

// Solve runs the DPLL search to completion and returns SAT or UNSAT. It
// never blocks, panics, or returns an error: every reachable state is one
// of the two outcomes.
func (s *Solver) Solve() Outcome {
	assignment, ok := s.dpll(sat.Assignment{})
	if ok {
		s.assignment = assignment
		return SAT
	}
	s.assignment = nil
	return UNSAT
}

// Assignment returns the satisfying assignment found by the most recent
// Solve call, or nil if that call returned UNSAT or Solve has not been
// called.
func (s *Solver) Assignment() sat.Assignment {
	return s.assignment
}

// dpll is the recursive search. It never mutates the caller's assignment:
// every branch operates on its own clone, so a failed branch leaves the
// parent's assignment untouched.
func (s *Solver) dpll(assignment sat.Assignment) (sat.Assignment, bool) {
	current, conflict := propagateUnits(s.cnf, assignment)
	if conflict {
		return nil, false
	}

	current = eliminatePureLiterals(s.cnf, current)

	if current.SatisfiesFormula(s.cnf) {
		return current, true
	}

	decisionVar, ok := firstUnassigned(s.cnf, current)
	if !ok {
		// Every variable is assigned but some clause remains unsatisfied:
		// propagation/pure-literal elimination is sound, so this state is
		// unreachable. Returning UNSAT here would be a silent wrong
		// answer, so treat it as the internal bug it would be.
		panic(fmt.Sprintf("dpll: no unassigned variable found with unsatisfied clauses remaining, assignment=%v", current))
	}

	for _, value := range [2]bool{true, false} {
		branch := current.Clone()
		branch[decisionVar] = value
		if result, ok := s.dpll(branch); ok {
			return result, true
		}
	}
	return nil, false
}

// propagateUnits repeatedly scans cnf's clauses under assignment, forcing
// any clause with exactly one unassigned literal, until a full scan makes
// no progress or a clause is falsified. It returns a new assignment (the
// input is not mutated).
func propagateUnits(cnf sat.CNFFormula, assignment sat.Assignment) (sat.Assignment, bool) {
	current := assignment.Clone()
	for {
		changed := false
		for _, clause := range cnf.Clauses {
			if current.Satisfies(clause) {
				continue
			}
			if current.Conflicts(clause) {
				return nil, true
			}
			unassigned := current.UnassignedLiterals(clause)
			if len(unassigned) == 1 {
				lit := unassigned[0]
				current[lit.Variable] = !lit.Negated
				changed = true
			}
		}
		if !changed {
			return current, false
		}
	}
}

// eliminatePureLiterals assigns every unassigned variable that appears in
// only one polarity among clauses not yet satisfied. It is a heuristic;
// omitting it would not affect soundness.
func eliminatePureLiterals(cnf sat.CNFFormula, assignment sat.Assignment) sat.Assignment {
	current := assignment.Clone()

	positive := make(map[string]bool) // seen as a positive literal
	negative := make(map[string]bool) // seen as a negative literal
	seen := make(map[string]bool)

	for _, clause := range cnf.Clauses {
		if current.Satisfies(clause) {
			continue
		}
		for _, lit := range clause.Literals {
			if current.IsAssigned(lit.Variable) {
				continue
			}
			seen[lit.Variable] = true
			if lit.Negated {
				negative[lit.Variable] = true
			} else {
				positive[lit.Variable] = true
			}
		}
	}

	for variable := range seen {
		if current.IsAssigned(variable) {
			continue
		}
		switch {
		case positive[variable] && !negative[variable]:
			current[variable] = true
		case negative[variable] && !positive[variable]:
			current[variable] = false
		}
	}
	return current
}

// firstUnassigned returns the first variable in cnf's variable order that
// is not yet assigned.
func firstUnassigned(cnf sat.CNFFormula, assignment sat.Assignment) (string, bool) {
	for _, v := range cnf.Variables() {
		if !assignment.IsAssigned(v) {
			return v, true
		}
	}
	return "", false
}
