package cdcl

import (
	"sort"

	"github.com/gosat/satlogic/sat"
)

// analyzeConflict performs 1-UIP resolution starting from the falsified
// clause at conflictRef, returning the learned clause and the level to
// backjump to.
//
// At decision level 0 the conflict clause is returned unchanged with
// backjump level 0 — Solve never calls this at level 0, since an UNSAT
// verdict is reported directly, but the behavior is defined here to match
// spec.md's description of the analysis itself.
func (s *Solver) analyzeConflict(conflictRef ClauseRef) (sat.Clause, int) {
	current := dedupeLiterals(s.clauseAt(conflictRef).Literals)

	if s.level == 0 {
		return sat.NewClause(current...), 0
	}

	for s.countAtLevel(current, s.level) > 1 {
		pivot, ok := s.mostRecentAtLevel(current, s.level)
		if !ok {
			// Safety fallback: no literal of the current clause sits at
			// the current level. Defensive termination, per spec.md §4.3.
			break
		}
		node := s.graph[pivot]
		if !node.HasReason {
			// Pivot is a decision variable: already at 1-UIP (the
			// decision is the unique implication point), stop resolving.
			break
		}
		reason := s.clauseAt(node.Reason)
		current = resolve(current, reason.Literals, pivot)
	}

	learned := dedupeLiterals(current)
	return sat.NewClause(learned...), s.backjumpLevel(learned)
}

// countAtLevel counts the literals of lits whose variable is assigned at
// level.
func (s *Solver) countAtLevel(lits []sat.Literal, level int) int {
	n := 0
	for _, l := range lits {
		if node, ok := s.graph[l.Variable]; ok && node.Level == level {
			n++
		}
	}
	return n
}

// mostRecentAtLevel returns the variable, among lits assigned at level,
// that was most recently pushed onto the trail.
func (s *Solver) mostRecentAtLevel(lits []sat.Literal, level int) (string, bool) {
	best := ""
	bestIdx := -1
	found := false
	for _, l := range lits {
		node, ok := s.graph[l.Variable]
		if !ok || node.Level != level {
			continue
		}
		idx, ok := s.trailIndex[l.Variable]
		if !ok {
			continue
		}
		if idx > bestIdx {
			bestIdx = idx
			best = l.Variable
			found = true
		}
	}
	return best, found
}

// resolve resolves clauses a and b on pivotVar: the union of their
// literals, with every literal mentioning pivotVar dropped and the result
// deduplicated by (variable, negated).
func resolve(a, b []sat.Literal, pivotVar string) []sat.Literal {
	out := make([]sat.Literal, 0, len(a)+len(b))
	seen := make(map[sat.Literal]bool, len(a)+len(b))
	add := func(lits []sat.Literal) {
		for _, l := range lits {
			if l.Variable == pivotVar {
				continue
			}
			if seen[l] {
				continue
			}
			seen[l] = true
			out = append(out, l)
		}
	}
	add(a)
	add(b)
	return out
}

// backjumpLevel computes the non-chronological backtrack target for a
// learned clause: the second-highest distinct decision level among its
// literals' variables, or 0 if fewer than two distinct levels exist.
func (s *Solver) backjumpLevel(learned []sat.Literal) int {
	if len(learned) <= 1 {
		return 0
	}

	levelSet := make(map[int]bool)
	for _, l := range learned {
		if node, ok := s.graph[l.Variable]; ok {
			levelSet[node.Level] = true
		}
	}

	levels := make([]int, 0, len(levelSet))
	for lvl := range levelSet {
		levels = append(levels, lvl)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(levels)))

	if len(levels) < 2 {
		return 0
	}
	return levels[1]
}
