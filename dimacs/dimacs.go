// Package dimacs reads and writes the DIMACS CNF text format: a `p cnf
// V C` header declaring the variable and clause counts, followed by
// zero-terminated lists of signed integers, one clause per terminator.
// Variable k is named "x<k>" when projected into sat.CNFFormula, since
// the sat package's literals are string-keyed.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gosat/satlogic/errs"
	"github.com/gosat/satlogic/sat"
)

// ErrInvalidHeader is returned when the `p cnf V C` problem line is
// missing, malformed, or duplicated.
var ErrInvalidHeader = errs.New("dimacs", "Read", "invalid header")

// ErrClauseMissingZero is returned when input ends mid-clause, with a
// pending literal list never terminated by a 0.
var ErrClauseMissingZero = errs.New("dimacs", "Read", "clause missing terminating 0")

// ErrVariableOutOfRange is returned when a literal's variable magnitude
// exceeds the header's declared variable count.
var ErrVariableOutOfRange = errs.New("dimacs", "Read", "variable out of range")

// ErrClauseCountMismatch is returned when the number of zero-terminated
// clauses read does not match the header's declared clause count.
var ErrClauseCountMismatch = errs.New("dimacs", "Read", "clause count mismatch")

// Read parses DIMACS CNF text from r into a sat.CNFFormula. Lines
// beginning with 'c' are comments and may appear anywhere; a line
// containing only '%' ends the formula and everything after it is
// ignored, per the common trailer convention.
func Read(r io.Reader) (sat.CNFFormula, error) {
	var numVars, numClauses int
	headerSeen := false
	var clauses []sat.Clause
	var current []sat.Literal

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		if line == "%" {
			break
		}
		if strings.HasPrefix(line, "p") {
			if headerSeen {
				return sat.CNFFormula{}, errs.Wrap("dimacs", "Read", ErrInvalidHeader, "duplicate problem line %q", line)
			}
			if len(clauses) > 0 || len(current) > 0 {
				return sat.CNFFormula{}, errs.Wrap("dimacs", "Read", ErrInvalidHeader, "problem line %q appears after clause data", line)
			}
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return sat.CNFFormula{}, errs.Wrap("dimacs", "Read", ErrInvalidHeader, "malformed problem line %q", line)
			}
			var err error
			numVars, err = strconv.Atoi(fields[2])
			if err != nil || numVars < 0 {
				return sat.CNFFormula{}, errs.Wrap("dimacs", "Read", ErrInvalidHeader, "invalid variable count in %q", line)
			}
			numClauses, err = strconv.Atoi(fields[3])
			if err != nil || numClauses < 0 {
				return sat.CNFFormula{}, errs.Wrap("dimacs", "Read", ErrInvalidHeader, "invalid clause count in %q", line)
			}
			headerSeen = true
			continue
		}
		if !headerSeen {
			return sat.CNFFormula{}, errs.Wrap("dimacs", "Read", ErrInvalidHeader, "clause data %q appears before problem line", line)
		}
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return sat.CNFFormula{}, errs.Newf("dimacs", "Read", "invalid literal %q", field)
			}
			if n == 0 {
				clauses = append(clauses, sat.NewClause(current...))
				current = nil
				continue
			}
			magnitude := n
			if magnitude < 0 {
				magnitude = -magnitude
			}
			if magnitude > numVars {
				return sat.CNFFormula{}, errs.Wrap("dimacs", "Read", ErrVariableOutOfRange,
					"literal %d exceeds declared variable count %d", n, numVars)
			}
			current = append(current, sat.Literal{Variable: variableName(magnitude), Negated: n < 0})
		}
	}
	if err := scanner.Err(); err != nil {
		return sat.CNFFormula{}, err
	}
	if len(current) > 0 {
		return sat.CNFFormula{}, errs.Wrap("dimacs", "Read", ErrClauseMissingZero, "trailing literals %v never terminated by 0", current)
	}
	if !headerSeen {
		return sat.CNFFormula{}, errs.Wrap("dimacs", "Read", ErrInvalidHeader, "missing problem line")
	}
	if len(clauses) != numClauses {
		return sat.CNFFormula{}, errs.Wrap("dimacs", "Read", ErrClauseCountMismatch,
			"problem line declares %d clauses, found %d", numClauses, len(clauses))
	}
	return sat.NewCNFFormula(clauses...), nil
}

// Write renders f as DIMACS CNF text, deriving the variable count from
// the distinct variable names appearing in f and numbering them in
// first-seen order starting at 1. It is the inverse of Read up to
// variable renaming: round-tripping through Write then Read preserves
// satisfiability and clause structure, not original variable names.
func Write(w io.Writer, f sat.CNFFormula) error {
	vars := f.Variables()
	index := make(map[string]int, len(vars))
	for i, name := range vars {
		index[name] = i + 1
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", len(vars), len(f.Clauses)); err != nil {
		return err
	}
	for _, c := range f.Clauses {
		parts := make([]string, 0, len(c.Literals)+1)
		for _, lit := range c.Literals {
			n := index[lit.Variable]
			if lit.Negated {
				n = -n
			}
			parts = append(parts, strconv.Itoa(n))
		}
		parts = append(parts, "0")
		if _, err := fmt.Fprintln(bw, strings.Join(parts, " ")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func variableName(magnitude int) string {
	return "x" + strconv.Itoa(magnitude)
}
