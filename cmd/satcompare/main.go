// Command satcompare parses a propositional formula or a DIMACS CNF
// file, runs it through the preprocessing pipeline, and solves it with
// both dpll and cdcl, reporting whether they agree.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gosat/satlogic/ast"
	"github.com/gosat/satlogic/compare"
	"github.com/gosat/satlogic/dimacs"
	"github.com/gosat/satlogic/parser"
	"github.com/gosat/satlogic/preprocess"
	"github.com/gosat/satlogic/sat"
)

func main() {
	formulaFlag := flag.String("formula", "", "a propositional formula, e.g. \"p -> (q and r)\"")
	dimacsFlag := flag.String("dimacs", "", "path to a DIMACS CNF file; mutually exclusive with -formula")
	tseytin := flag.Bool("tseytin", false, "use Tseytin encoding instead of classical OR-distribution when given -formula")
	threeCNF := flag.Bool("three-cnf", false, "flatten the result into 3-CNF before solving")
	flag.Parse()

	cnf, err := resolveCNF(*formulaFlag, *dimacsFlag, *tseytin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "satcompare:", err)
		os.Exit(1)
	}
	if *threeCNF {
		cnf = preprocess.EnsureThreeCNF(cnf)
	}

	report, err := compare.Run(cnf)
	if err != nil {
		fmt.Fprintln(os.Stderr, "satcompare: solvers disagree:", err)
		os.Exit(1)
	}

	fmt.Printf("dpll: %v (%s)\n", report.DPLLOutcome, report.DPLLElapsed)
	fmt.Printf("cdcl: %v (%s)\n", report.CDCLOutcome, report.CDCLElapsed)
}

func resolveCNF(formula, dimacsPath string, tseytin bool) (sat.CNFFormula, error) {
	switch {
	case formula != "" && dimacsPath != "":
		return sat.CNFFormula{}, fmt.Errorf("-formula and -dimacs are mutually exclusive")
	case formula != "":
		f, err := parser.Parse(formula)
		if err != nil {
			return sat.CNFFormula{}, fmt.Errorf("parsing formula: %w", err)
		}
		return formulaToCNF(f, tseytin)
	case dimacsPath != "":
		file, err := os.Open(dimacsPath)
		if err != nil {
			return sat.CNFFormula{}, fmt.Errorf("opening %s: %w", dimacsPath, err)
		}
		defer file.Close()
		cnf, err := dimacs.Read(file)
		if err != nil {
			return sat.CNFFormula{}, fmt.Errorf("reading %s: %w", dimacsPath, err)
		}
		return cnf, nil
	default:
		return sat.CNFFormula{}, fmt.Errorf("one of -formula or -dimacs is required")
	}
}

func formulaToCNF(f ast.Formula, tseytin bool) (sat.CNFFormula, error) {
	if tseytin {
		return preprocess.ToCNFTseytin(f)
	}
	noImplications, err := preprocess.EliminateImplications(f)
	if err != nil {
		return sat.CNFFormula{}, err
	}
	nnf, err := preprocess.PushNegationsInward(noImplications)
	if err != nil {
		return sat.CNFFormula{}, err
	}
	return preprocess.ToCNFClassical(nnf)
}
