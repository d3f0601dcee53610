package utaum

// errs: Error types surfaced by the package
//
// Construction-time problems (bad table shape, bad parameters, contradictory
// judgments) never reach the solver. Infeasibility is different: it is an
// expected analytical outcome meaning that no additive value function is
// compatible with the stated judgments.

import "fmt"

// ShapeError reports a malformed alternatives table or shape vector.
type ShapeError struct {
	Reason string
}

func (e *ShapeError) Error() string {
	return "shape error: " + e.Reason
}

// ParameterError reports an out-of-range model parameter.
type ParameterError struct {
	Name  string
	Value float64
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("parameter error: %s = %g out of range", e.Name, e.Value)
}

// PreferenceError reports a contradictory, self-referential, or out-of-range
// preference judgment. Pair is zero-valued when the error concerns a table as
// a whole rather than a single entry.
type PreferenceError struct {
	Pair   Pair
	Reason string
}

func (e *PreferenceError) Error() string {
	if e.Pair == (Pair{}) {
		return "preference error: " + e.Reason
	}
	return fmt.Sprintf("preference error: pair (%d,%d): %s", e.Pair.A, e.Pair.B, e.Reason)
}

// InfeasibleError reports that the oracle found no feasible solution. On the
// first enumeration round it means the judgments admit no compatible additive
// value function at all; the Round field tells the caller which solve failed.
type InfeasibleError struct {
	Round int
}

func (e *InfeasibleError) Error() string {
	if e.Round == 0 {
		return "infeasible model: no compatible value function exists"
	}
	return fmt.Sprintf("infeasible model on enumeration round %d", e.Round)
}
