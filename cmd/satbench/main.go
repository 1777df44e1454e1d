// Command satbench generates synthetic CNF instances — random k-CNF or
// pigeonhole — and times dpll against cdcl on each, optionally writing
// the generated instances out as DIMACS files.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/gosat/satlogic/compare"
	"github.com/gosat/satlogic/dimacs"
	"github.com/gosat/satlogic/sat"
)

func main() {
	kind := flag.String("kind", "random", "instance kind: \"random\" or \"pigeonhole\"")
	vars := flag.Int("vars", 10, "variable count for -kind=random")
	clauses := flag.Int("clauses", 40, "clause count for -kind=random")
	clauseSize := flag.Int("clause-size", 3, "literals per clause for -kind=random")
	pigeons := flag.Int("pigeons", 4, "pigeon count for -kind=pigeonhole")
	holes := flag.Int("holes", 3, "hole count for -kind=pigeonhole")
	seed := flag.Int64("seed", 1, "random seed")
	dimacsOut := flag.String("dimacs-out", "", "if set, write the generated instance to this path as DIMACS CNF")
	flag.Parse()

	var cnf sat.CNFFormula
	switch *kind {
	case "random":
		cnf = randomCNF(rand.New(rand.NewSource(*seed)), *vars, *clauses, *clauseSize)
	case "pigeonhole":
		cnf = pigeonhole(*pigeons, *holes)
	default:
		fmt.Fprintf(os.Stderr, "satbench: unknown -kind %q\n", *kind)
		os.Exit(1)
	}

	if *dimacsOut != "" {
		if err := writeDIMACS(*dimacsOut, cnf); err != nil {
			fmt.Fprintln(os.Stderr, "satbench:", err)
			os.Exit(1)
		}
	}

	report, err := compare.Run(cnf)
	if err != nil {
		fmt.Fprintln(os.Stderr, "satbench: solvers disagree:", err)
		os.Exit(1)
	}

	fmt.Printf("variables=%d clauses=%d\n", len(cnf.Variables()), len(cnf.Clauses))
	fmt.Printf("dpll: %v (%s)\n", report.DPLLOutcome, report.DPLLElapsed)
	fmt.Printf("cdcl: %v (%s)\n", report.CDCLOutcome, report.CDCLElapsed)
}

// randomCNF builds numClauses clauses of clauseSize literals each, drawn
// uniformly over numVars variables named v0..v(numVars-1).
func randomCNF(rng *rand.Rand, numVars, numClauses, clauseSize int) sat.CNFFormula {
	out := make([]sat.Clause, numClauses)
	for i := range out {
		literals := make([]sat.Literal, clauseSize)
		for j := range literals {
			literals[j] = sat.Literal{
				Variable: fmt.Sprintf("v%d", rng.Intn(numVars)),
				Negated:  rng.Intn(2) == 0,
			}
		}
		out[i] = sat.NewClause(literals...)
	}
	return sat.NewCNFFormula(out...)
}

// pigeonhole builds the classical unsatisfiable-when-pigeons>holes
// instance: p(i,j) means pigeon i sits in hole j. Every pigeon needs a
// hole, and no hole may hold two pigeons.
func pigeonhole(pigeons, holes int) sat.CNFFormula {
	name := func(pigeon, hole int) string { return fmt.Sprintf("p_%d_%d", pigeon, hole) }

	var clauses []sat.Clause
	for i := 0; i < pigeons; i++ {
		literals := make([]sat.Literal, holes)
		for j := 0; j < holes; j++ {
			literals[j] = sat.Literal{Variable: name(i, j)}
		}
		clauses = append(clauses, sat.NewClause(literals...))
	}
	for j := 0; j < holes; j++ {
		for i1 := 0; i1 < pigeons; i1++ {
			for i2 := i1 + 1; i2 < pigeons; i2++ {
				clauses = append(clauses, sat.NewClause(
					sat.Literal{Variable: name(i1, j), Negated: true},
					sat.Literal{Variable: name(i2, j), Negated: true},
				))
			}
		}
	}
	return sat.NewCNFFormula(clauses...)
}

func writeDIMACS(path string, cnf sat.CNFFormula) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()
	if err := dimacs.Write(file, cnf); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
