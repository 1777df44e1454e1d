package cdcl

import "github.com/gosat/satlogic/sat"

// ClauseKind distinguishes an original input clause from one learned
// during search.
type ClauseKind int

const (
	// Original indexes into the solver's input CNF.
	Original ClauseKind = iota
	// Learned indexes into the solver's learned-clause slice.
	Learned
)

// ClauseRef is a stable handle to a clause: an index into one of two
// clause collections, rather than a pointer, so that appending to the
// learned-clause slice never invalidates a reference held by a trail
// entry or implication graph node.
type ClauseRef struct {
	Kind  ClauseKind
	Index int
}

// TrailEntry records one assignment made during search, in the order it
// was made.
type TrailEntry struct {
	Variable string
	Value    bool
	Level    int
	// HasReason is false for a decision, true for a propagation; Reason
	// is only meaningful when HasReason is true.
	HasReason bool
	Reason    ClauseRef
}

// graphNode is the implication graph's per-variable record. Antecedents
// are not stored: the only property conflict analysis needs — which
// other variables appear in the reason clause — is recoverable from the
// reason clause's literals on demand.
type graphNode struct {
	Value     bool
	Level     int
	HasReason bool
	Reason    ClauseRef
}

func dedupeLiterals(lits []sat.Literal) []sat.Literal {
	seen := make(map[sat.Literal]bool, len(lits))
	out := make([]sat.Literal, 0, len(lits))
	for _, l := range lits {
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}
