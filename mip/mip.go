// Package mip is a small pure-Go LP/MIP solver used as the bundled oracle
// backend. Linear relaxations are solved with gonum's simplex implementation
// after presolve reductions and conversion to standard form; binary variables
// are handled by branch-and-bound over node-local fixings.
//
// The solver works on problems of the form
//
//	max (or min)  Obj . x
//	subject to    Rows[i] . x  (<=|>=|==)  Rhs[i]
//	              x >= 0
//	              x[i] in {0, 1}  where Integer[i]
//
// which is exactly the shape of the compiled preference-disaggregation
// programs, where every continuous variable is naturally non-negative.
package mip

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// Sense is the direction of one constraint row.
type Sense int

// Row senses.
const (
	LE Sense = iota
	GE
	EQ
)

// Status is the outcome of a solve. Optimal is zero so the value doubles as
// the oracle status code.
type Status int

// Solve outcomes.
const (
	Optimal    Status = 0
	Infeasible Status = 1
	Unbounded  Status = 2
)

// Problem is a dense LP/MIP in row form.
type Problem struct {
	Obj      []float64
	Rows     [][]float64
	Senses   []Sense
	Rhs      []float64
	Integer  []bool // true marks a binary variable
	Maximize bool
}

const (
	// intTol is the distance from 0/1 beyond which a binary relaxation
	// value triggers branching.
	intTol = 1e-6
	// pruneTol guards the bound comparison against round-off.
	pruneTol = 1e-9
	// fixTol guards the feasibility checks on substituted values.
	fixTol = 1e-9
)

// fix pins one binary variable to a value inside a branch-and-bound node.
type fix struct {
	col int
	val float64
}

// redRow is one constraint row during presolve, mutated in place as fixed
// columns are substituted into the right-hand side.
type redRow struct {
	coef  []float64
	sense Sense
	rhs   float64
}

//==============================================================================

// validate checks that the problem components agree on their dimensions.
func validate(prb Problem) error {
	n := len(prb.Obj)
	if n == 0 {
		return errors.New("mip: empty objective")
	}
	if len(prb.Rows) != len(prb.Senses) || len(prb.Rows) != len(prb.Rhs) {
		return errors.Errorf("mip: %d rows, %d senses, %d rhs entries",
			len(prb.Rows), len(prb.Senses), len(prb.Rhs))
	}
	for i, row := range prb.Rows {
		if len(row) != n {
			return errors.Errorf("mip: row %d has width %d, expected %d", i, len(row), n)
		}
	}
	if prb.Integer != nil && len(prb.Integer) != n {
		return errors.Errorf("mip: integrality vector has length %d, expected %d",
			len(prb.Integer), n)
	}
	return nil
}

//==============================================================================

// equalCoefs reports whether two equal-length coefficient rows match exactly.
func equalCoefs(a, b []float64) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

//==============================================================================

// relax solves the LP relaxation of the problem under the node's fixing
// constraints. The system is reduced before the simplex call: node fixings
// and singleton rows substitute their variable into the right-hand sides,
// columns appearing in no remaining row are pinned, and empty, redundant,
// and duplicate rows are dropped. The reductions keep the matrix free of the
// all-zero columns and linearly dependent rows the simplex cannot handle.
// The objective is always minimized here; Solve negates a maximization up
// front. In case of failure, it returns an error.
func relax(obj []float64, prb Problem, fixes []fix) (float64, []float64, error) {

	n := len(obj)

	rows := make([]*redRow, 0, len(prb.Rows))
	for i := range prb.Rows {
		rows = append(rows, &redRow{
			coef:  append([]float64(nil), prb.Rows[i]...),
			sense: prb.Senses[i],
			rhs:   prb.Rhs[i],
		})
	}

	fixedVal := make([]float64, n)
	isFixed := make([]bool, n)

	// applyFix pins a column and substitutes it out of every row. Conflicting
	// pins and pins violating non-negativity or a binary range mean the node
	// is infeasible.
	applyFix := func(col int, val float64) error {
		if val < -fixTol {
			return lp.ErrInfeasible
		}
		if val < 0 {
			val = 0
		}
		if prb.Integer != nil && prb.Integer[col] {
			if val > 1+fixTol {
				return lp.ErrInfeasible
			}
			if r := math.Round(val); math.Abs(val-r) <= fixTol {
				val = r
			}
		}
		if isFixed[col] {
			if math.Abs(fixedVal[col]-val) > fixTol {
				return lp.ErrInfeasible
			}
			return nil
		}
		isFixed[col] = true
		fixedVal[col] = val
		for _, r := range rows {
			if r.coef[col] != 0 {
				r.rhs -= r.coef[col] * val
				r.coef[col] = 0
			}
		}
		return nil
	}

	for _, fx := range fixes {
		if err := applyFix(fx.col, fx.val); err != nil {
			return 0, nil, err
		}
	}

	// Reduction loop: substituting one singleton can empty or shrink other
	// rows, so passes repeat until a fixpoint.
	for changed := true; changed; {
		changed = false
		kept := make([]*redRow, 0, len(rows))

		for _, r := range rows {
			nz, col := 0, -1
			for j, v := range r.coef {
				if v != 0 {
					nz++
					col = j
				}
			}

			if nz == 0 {
				sat := false
				switch r.sense {
				case LE:
					sat = r.rhs >= -fixTol
				case GE:
					sat = r.rhs <= fixTol
				case EQ:
					sat = math.Abs(r.rhs) <= fixTol
				}
				if !sat {
					return 0, nil, lp.ErrInfeasible
				}
				changed = true
				continue
			}

			if nz == 1 {
				bnd := r.rhs / r.coef[col]
				if r.sense == EQ {
					if err := applyFix(col, bnd); err != nil {
						return 0, nil, err
					}
					changed = true
					continue
				}

				// An inequality singleton is a bound on one column. Upper
				// bounds at or below zero pin the column; lower bounds at or
				// below zero are implied by non-negativity.
				upper := (r.sense == LE) == (r.coef[col] > 0)
				switch {
				case upper && bnd < -fixTol:
					return 0, nil, lp.ErrInfeasible
				case upper && bnd <= fixTol:
					if err := applyFix(col, 0); err != nil {
						return 0, nil, err
					}
					changed = true
					continue
				case !upper && bnd <= fixTol:
					changed = true
					continue
				}
			}

			kept = append(kept, r)
		}
		rows = kept
	}

	// Columns in no remaining row: a binary settles on whichever end helps
	// the objective, a continuous column pins to zero unless the objective
	// pushes it without bound.
	used := make([]bool, n)
	for _, r := range rows {
		for j, v := range r.coef {
			if v != 0 {
				used[j] = true
			}
		}
	}
	for j := 0; j < n; j++ {
		if isFixed[j] || used[j] {
			continue
		}
		switch {
		case prb.Integer != nil && prb.Integer[j]:
			v := 0.0
			if obj[j] < 0 {
				v = 1
			}
			if err := applyFix(j, v); err != nil {
				return 0, nil, err
			}
		case obj[j] < -fixTol:
			return 0, nil, lp.ErrUnbounded
		default:
			if err := applyFix(j, 0); err != nil {
				return 0, nil, err
			}
		}
	}

	// Binary upper bounds are part of the relaxation for every surviving
	// binary column.
	for j := 0; j < n; j++ {
		if isFixed[j] || prb.Integer == nil || !prb.Integer[j] {
			continue
		}
		coef := make([]float64, n)
		coef[j] = 1
		rows = append(rows, &redRow{coef: coef, sense: LE, rhs: 1})
	}

	// A row surviving as an exact copy of an earlier one adds nothing and
	// can leave phase one of the simplex with a singular basis.
	uniq := rows[:0]
	for _, r := range rows {
		dup := false
		for _, u := range uniq {
			if u.sense == r.sense && u.rhs == r.rhs && equalCoefs(u.coef, r.coef) {
				dup = true
				break
			}
		}
		if !dup {
			uniq = append(uniq, r)
		}
	}
	rows = uniq

	fixedF := 0.0
	for j := 0; j < n; j++ {
		if isFixed[j] {
			fixedF += obj[j] * fixedVal[j]
		}
	}

	x := make([]float64, n)
	copy(x, fixedVal)

	keep := make([]int, 0, n)
	for j := 0; j < n; j++ {
		if !isFixed[j] {
			keep = append(keep, j)
		}
	}
	if len(keep) == 0 {
		return fixedF, x, nil
	}

	// Standard form over the surviving columns: one slack column per
	// inequality, then flip any row with a negative right-hand side so the
	// simplex sees b >= 0.
	nSlack := 0
	for _, r := range rows {
		if r.sense != EQ {
			nSlack++
		}
	}

	width := len(keep) + nSlack
	a := mat.NewDense(len(rows), width, nil)
	b := make([]float64, len(rows))
	c := make([]float64, width)
	for i, j := range keep {
		c[i] = obj[j]
	}

	slack := 0
	for i, r := range rows {
		for k, j := range keep {
			a.Set(i, k, r.coef[j])
		}
		switch r.sense {
		case LE:
			a.Set(i, len(keep)+slack, 1)
			slack++
		case GE:
			a.Set(i, len(keep)+slack, -1)
			slack++
		}
		b[i] = r.rhs

		if b[i] < 0 {
			for k := 0; k < width; k++ {
				a.Set(i, k, -a.At(i, k))
			}
			b[i] = -b[i]
		}
	}

	optF, optX, err := lp.Simplex(c, a, b, 0, nil)
	if err != nil {
		return 0, nil, err
	}

	for i, j := range keep {
		x[j] = optX[i]
	}

	return fixedF + optF, x, nil
}

//==============================================================================

// mostFractional returns the index of the binary variable farthest from an
// integral value, or -1 when the solution is integral within tolerance.
func mostFractional(x []float64, integer []bool) int {
	best := -1
	bestDist := intTol
	for i, isInt := range integer {
		if !isInt {
			continue
		}
		dist := math.Abs(x[i] - math.Round(x[i]))
		if dist > bestDist {
			best = i
			bestDist = dist
		}
	}
	return best
}

//==============================================================================

// Solve runs branch-and-bound over the binary variables, solving one LP
// relaxation per node. It returns the status, and for Optimal also the
// solution vector with binaries rounded exactly.
// In case of an internal solver failure, it returns an error.
func Solve(prb Problem) (Status, []float64, error) {

	if err := validate(prb); err != nil {
		return Infeasible, nil, err
	}

	obj := append([]float64(nil), prb.Obj...)
	if prb.Maximize {
		for i := range obj {
			obj[i] = -obj[i]
		}
	}

	var (
		bestX []float64
		bestF = math.Inf(1)
	)

	stack := [][]fix{nil}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		f, x, err := relax(obj, prb, node)
		if err != nil {
			if errors.Is(err, lp.ErrInfeasible) {
				continue
			}
			if errors.Is(err, lp.ErrUnbounded) {
				return Unbounded, nil, nil
			}
			return Infeasible, nil, errors.Wrap(err, "mip: relaxation failed")
		}

		// The relaxation value bounds every descendant from below.
		if f >= bestF-pruneTol {
			continue
		}

		branch := mostFractional(x, prb.Integer)
		if branch < 0 {
			bestF = f
			bestX = x
			continue
		}

		down := append(append([]fix(nil), node...), fix{col: branch, val: 0})
		up := append(append([]fix(nil), node...), fix{col: branch, val: 1})
		stack = append(stack, down, up)
	}

	if bestX == nil {
		return Infeasible, nil, nil
	}

	for i, isInt := range prb.Integer {
		if isInt {
			bestX[i] = math.Round(bestX[i])
		}
	}

	return Optimal, bestX, nil
}
