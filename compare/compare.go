// Package compare runs dpll and cdcl against the same sat.CNFFormula and
// cross-validates that they agree: both decision procedures implement
// the same semantics, so any disagreement on outcome, or any reported
// SAT assignment that does not actually satisfy the input, is a bug in
// one of the two solvers.
package compare

import (
	"time"

	"github.com/gosat/satlogic/cdcl"
	"github.com/gosat/satlogic/dpll"
	"github.com/gosat/satlogic/errs"
	"github.com/gosat/satlogic/sat"
)

// ErrDisagreement is returned when dpll and cdcl reach different
// outcomes (SAT vs. UNSAT) or either reports a SAT assignment that does
// not satisfy the formula. Both are internal-consistency bugs, not
// properties of the input formula.
var ErrDisagreement = errs.New("compare", "Run", "solvers disagree")

// Report is the outcome of running both decision procedures on one
// formula.
type Report struct {
	DPLLOutcome dpll.Outcome
	CDCLOutcome cdcl.Outcome
	DPLLElapsed time.Duration
	CDCLElapsed time.Duration
}

// Agree reports whether the two solvers reached the same SAT/UNSAT
// verdict.
func (r Report) Agree() bool {
	return (r.DPLLOutcome == dpll.SAT) == (r.CDCLOutcome == cdcl.SAT)
}

// Run solves cnf with both dpll and cdcl, timing each, and returns a
// Report. It returns ErrDisagreement if the two outcomes differ or if
// either solver's reported satisfying assignment does not actually
// satisfy cnf.
func Run(cnf sat.CNFFormula) (Report, error) {
	dpllSolver := dpll.NewSolver(cnf)
	dpllStart := time.Now()
	dpllOutcome := dpllSolver.Solve()
	dpllElapsed := time.Since(dpllStart)

	cdclSolver := cdcl.NewSolver(cnf)
	cdclStart := time.Now()
	cdclOutcome := cdclSolver.Solve()
	cdclElapsed := time.Since(cdclStart)

	report := Report{
		DPLLOutcome: dpllOutcome,
		CDCLOutcome: cdclOutcome,
		DPLLElapsed: dpllElapsed,
		CDCLElapsed: cdclElapsed,
	}

	if !report.Agree() {
		return report, errs.Wrap("compare", "Run", ErrDisagreement,
			"dpll reported %v, cdcl reported %v", dpllOutcome, cdclOutcome)
	}

	if dpllOutcome == dpll.SAT {
		assignment := dpllSolver.Assignment()
		if !assignment.SatisfiesFormula(cnf) {
			return report, errs.Wrap("compare", "Run", ErrDisagreement,
				"dpll reported SAT but its assignment %v does not satisfy the formula", assignment)
		}
	}
	if cdclOutcome == cdcl.SAT {
		assignment := cdclSolver.Assignment()
		if !assignment.SatisfiesFormula(cnf) {
			return report, errs.Wrap("compare", "Run", ErrDisagreement,
				"cdcl reported SAT but its assignment %v does not satisfy the formula", assignment)
		}
	}

	return report, nil
}
