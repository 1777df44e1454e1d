// Package cdcl implements Conflict-Driven Clause Learning: an iterative
// SAT decision procedure with a trail, an implication graph, 1-UIP
// conflict analysis, clause learning, and non-chronological backjumping.
//
// This is deliberately the textbook algorithm, not a competitive one:
// there are no watched literals, no VSIDS, no restarts, and no clause
// deletion. Decision variable selection uses the same deterministic
// "first unassigned in formula order" policy as package dpll, so the two
// engines are directly comparable on identical input.
package cdcl

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
// single-use: construct a new Solver per formula. The input formula is
// never mutated; learned clauses live in a private slice.
type Solver struct {
	cnf     sat.CNFFormula
	learned []sat.Clause

	assignment sat.Assignment
	trail      []TrailEntry
	trailIndex map[string]int
	graph      map[string]graphNode
	level      int

	variables []string
}

// NewSolver returns a Solver for cnf.
func NewSolver(cnf sat.CNFFormula) *Solver {
	return &Solver{
		cnf:        cnf,
		assignment: make(sat.Assignment),
		trailIndex: make(map[string]int),
		graph:      make(map[string]graphNode),
		variables:  cnf.Variables(),
	}
}

// Solve runs the CDCL search to completion and returns SAT or UNSAT. It
// never blocks and never returns early: each loop iteration either
// propagates, learns a clause and backjumps, reports SAT, or makes one
// new decision.
func (s *Solver) Solve() Outcome {
	for {
		conflictRef, hasConflict := s.propagate()
		if hasConflict {
			if s.level == 0 {
				return UNSAT
			}
			learnedClause, backjumpLevel := s.analyzeConflict(conflictRef)
			s.learned = append(s.learned, learnedClause)
			s.backtrackTo(backjumpLevel)
			continue
		}

		if s.allClausesSatisfied() {
			return SAT
		}

		v, ok := s.pickUnassignedVariable()
		if !ok {
			// Every variable assigned, propagation found no conflict, yet
			// allClausesSatisfied reported false: propagation and the
			// conflict check disagree, which can only mean an internal
			// bug, not a real UNSAT formula.
			panic(fmt.Sprintf("cdcl: no unassigned variable but formula not satisfied, assignment=%v", s.assignment))
		}
		s.decide(v, true)
	}
}

// Assignment returns the (possibly partial) assignment built by the most
// recent Solve call. It is a satisfying assignment of the input formula
// iff Solve returned SAT.
func (s *Solver) Assignment() sat.Assignment {
	return s.assignment.Clone()
}

// clauseAt resolves a ClauseRef to its clause.
func (s *Solver) clauseAt(ref ClauseRef) sat.Clause {
	if ref.Kind == Original {
		return s.cnf.Clauses[ref.Index]
	}
	return s.learned[ref.Index]
}

// clauseRefs enumerates every clause reference, originals before learned,
// matching the deterministic scan order required of propagation.
func (s *Solver) clauseRefs() []ClauseRef {
	refs := make([]ClauseRef, 0, len(s.cnf.Clauses)+len(s.learned))
	for i := range s.cnf.Clauses {
		refs = append(refs, ClauseRef{Kind: Original, Index: i})
	}
	for i := range s.learned {
		refs = append(refs, ClauseRef{Kind: Learned, Index: i})
	}
	return refs
}

// propagate scans every clause under the current assignment until a full
// pass makes no further progress, forcing each clause that has exactly
// one unassigned literal and the rest falsified. It returns the first
// falsified clause it encounters, if any.
func (s *Solver) propagate() (ClauseRef, bool) {
	for {
		changed := false
		for _, ref := range s.clauseRefs() {
			clause := s.clauseAt(ref)
			if s.assignment.Satisfies(clause) {
				continue
			}
			if s.assignment.Conflicts(clause) {
				return ref, true
			}
			unassigned := s.assignment.UnassignedLiterals(clause)
			if len(unassigned) == 1 {
				lit := unassigned[0]
				s.assign(lit.Variable, !lit.Negated, ref)
				changed = true
			}
		}
		if !changed {
			return ClauseRef{}, false
		}
	}
}

// assign records a propagated literal on the trail, in the assignment,
// and in the implication graph, at the current decision level.
func (s *Solver) assign(variable string, value bool, reason ClauseRef) {
	s.trail = append(s.trail, TrailEntry{
		Variable: variable, Value: value, Level: s.level,
		HasReason: true, Reason: reason,
	})
	s.trailIndex[variable] = len(s.trail) - 1
	s.assignment[variable] = value
	s.graph[variable] = graphNode{Value: value, Level: s.level, HasReason: true, Reason: reason}
}

// decide increments the decision level and records variable = value as a
// decision (no reason clause).
func (s *Solver) decide(variable string, value bool) {
	s.level++
	s.trail = append(s.trail, TrailEntry{Variable: variable, Value: value, Level: s.level, HasReason: false})
	s.trailIndex[variable] = len(s.trail) - 1
	s.assignment[variable] = value
	s.graph[variable] = graphNode{Value: value, Level: s.level}
}

// backtrackTo pops trail entries whose level exceeds k, undoing their
// assignment and implication-graph entry. Learned clauses and level-0
// assignments survive.
func (s *Solver) backtrackTo(k int) {
	i := len(s.trail)
	for i > 0 && s.trail[i-1].Level > k {
		i--
		variable := s.trail[i].Variable
		delete(s.assignment, variable)
		delete(s.graph, variable)
		delete(s.trailIndex, variable)
	}
	s.trail = s.trail[:i]
	s.level = k
}

func (s *Solver) allClausesSatisfied() bool {
	for _, c := range s.cnf.Clauses {
		if !s.assignment.Satisfies(c) {
			return false
		}
	}
	for _, c := range s.learned {
		if !s.assignment.Satisfies(c) {
			return false
		}
	}
	return true
}

// pickUnassignedVariable returns the first variable in the input
// formula's order that is not yet assigned, matching package dpll's
// policy so the two engines' decisions are comparable.
func (s *Solver) pickUnassignedVariable() (string, bool) {
	for _, v := range s.variables {
		if !s.assignment.IsAssigned(v) {
			return v, true
		}
	}
	return "", false
}
