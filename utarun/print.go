package main

// Formatted printing of analysis results, in the spirit of a solution
// listing: one section per compatible value function, then the relation
// tables.

import (
	"fmt"
	"sort"

	utaum "github.com/jakubwasikowski/uta-um"
)

//==============================================================================

// printResult presents the full analysis in a formatted manner.
func printResult(prb *utaum.Problem, result *utaum.Result) {

	fmt.Printf("\nCOMPATIBLE VALUE FUNCTIONS FOUND = %d\n", result.SolutionsCount)

	for s, cf := range result.Solutions {
		fmt.Printf("\nSolution %d\n", s+1)

		fmt.Printf("  %-10s %-16s %s\n", "CRITERION", "RESOLVED TYPE", "MARGINAL VALUES")
		for j := 0; j < prb.CritNo; j++ {
			fmt.Printf("  %-10d %-16s", j+1, string(cf.Types[j]))
			mf := cf.Marginals[j]
			for k := range mf.Breakpoints {
				fmt.Printf(" (%g: %.4f)", mf.Breakpoints[k], mf.Values[k])
			}
			fmt.Printf("\n")
		}

		fmt.Printf("  %-12s %s\n", "ALTERNATIVE", "ADDITIVE VALUE")
		for a := 0; a < prb.AltNo; a++ {
			fmt.Printf("  %-12d %.6f\n", a+1, cf.Values[a])
		}
	}

	fmt.Printf("\nNECESSARY RELATIONS:\n")
	printRelations(result.NecessaryRelations)

	fmt.Printf("\nPOSSIBLE RELATIONS:\n")
	printRelations(result.PossibleRelations)
}

//==============================================================================

// printRelations lists a relation set in a stable order.
func printRelations(rels map[utaum.Pair]bool) {

	pairs := make([]utaum.Pair, 0, len(rels))
	for pr := range rels {
		pairs = append(pairs, pr)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})

	if len(pairs) == 0 {
		fmt.Printf("  (none)\n")
		return
	}
	for _, pr := range pairs {
		fmt.Printf("  %d outranks %d\n", pr.A, pr.B)
	}
}
