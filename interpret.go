package utaum

// interpret: Reading a flat solution vector back into decision terms
//
// The interpreter resolves one oracle solution through the shared layout:
// per-criterion marginal value functions, the final direction of every
// undetermined criterion, and each alternative's total additive value.

import "github.com/pkg/errors"

// binTol is the threshold above which a binary solution entry counts as one.
const binTol = 0.5

// MarginalFunc is a piecewise-linear marginal value function recovered from
// a solution: a partial utility for each characteristic point of one
// criterion.
type MarginalFunc struct {
	Breakpoints []float64 // the criterion's characteristic points, ascending
	Values      []float64 // marginal value at each breakpoint
}

// ValueAt evaluates the function at a raw criterion value by linear
// interpolation between breakpoints. Values outside the observed range take
// the nearest endpoint's value.
// In case of failure, it returns an error.
func (f MarginalFunc) ValueAt(v float64) (float64, error) {
	n := len(f.Breakpoints)
	if n == 0 || n != len(f.Values) {
		return 0, errors.Errorf("marginal function has %d breakpoints and %d values",
			n, len(f.Values))
	}

	if v <= f.Breakpoints[0] {
		return f.Values[0], nil
	}
	if v >= f.Breakpoints[n-1] {
		return f.Values[n-1], nil
	}

	for k := 1; k < n; k++ {
		if v <= f.Breakpoints[k] {
			span := f.Breakpoints[k] - f.Breakpoints[k-1]
			t := (v - f.Breakpoints[k-1]) / span
			return f.Values[k-1] + t*(f.Values[k]-f.Values[k-1]), nil
		}
	}

	return f.Values[n-1], nil
}

// Compatible is one value function compatible with the stated judgments, as
// recovered from a single oracle solution.
type Compatible struct {
	X         []float64      // raw solution vector
	Types     []Shape        // resolved shape per criterion
	Marginals []MarginalFunc // marginal value function per criterion
	Values    []float64      // additive value per alternative
}

//==============================================================================

// interpret recovers a Compatible from one solution vector. Predefined
// criteria keep their declared shape; undetermined criteria resolve through
// the is-cost indicator.
func interpret(prb *Problem, ly *layout, x []float64) *Compatible {

	cf := &Compatible{
		X:         x,
		Types:     make([]Shape, prb.CritNo),
		Marginals: make([]MarginalFunc, prb.CritNo),
		Values:    make([]float64, prb.AltNo),
	}

	for j := 1; j <= prb.CritNo; j++ {
		shape := prb.Shapes[j-1]
		if shape == NotPredefined {
			if x[ly.crit(blkIsCost, j)] > binTol {
				shape = Cost
			} else {
				shape = Gain
			}
		}
		cf.Types[j-1] = shape

		vals := make([]float64, prb.LevelNo[j-1])
		for k := range vals {
			vals[k] = x[ly.point(blkPoints, j, k+1)]
		}
		cf.Marginals[j-1] = MarginalFunc{
			Breakpoints: prb.Levels[j-1],
			Values:      vals,
		}
	}

	for a := 1; a <= prb.AltNo; a++ {
		cf.Values[a-1] = prb.value(func(crit, point int) float64 {
			return x[ly.point(blkPoints, crit, point)]
		}, a)
	}

	return cf
}
