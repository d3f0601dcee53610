package utaum

// ifmip: Interface functions for the bundled mip backend
//
// Any code which makes use of the mip package lives in this file. The rest
// of the package depends only on the Oracle interface, so swapping in a
// different LP/MIP backend touches nothing but the Ctrl passed to SolveProb.

import (
	"github.com/pkg/errors"

	"github.com/jakubwasikowski/uta-um/mip"
)

// mipOracle adapts the bundled mip solver to the Oracle interface.
type mipOracle struct{}

// DefaultOracle returns the bundled pure-Go LP/MIP backend.
func DefaultOracle() Oracle {
	return mipOracle{}
}

//==============================================================================

// Solve translates the adapter's row form into a mip.Problem and runs the
// bundled solver. Strict senses are rejected: normalizing them is the
// adapter's job, and one reaching the backend means the pipeline is broken.
// In case of failure, it returns an error.
func (mipOracle) Solve(obj []float64, rows [][]float64, senses []Sense, rhs []float64,
	kinds []VarKind, maximize bool) (int, []float64, error) {

	mipSenses := make([]mip.Sense, len(senses))
	for i, s := range senses {
		switch s {
		case SenseLe:
			mipSenses[i] = mip.LE
		case SenseGe:
			mipSenses[i] = mip.GE
		case SenseEq:
			mipSenses[i] = mip.EQ
		default:
			return 0, nil, errors.Errorf("strict sense %q reached the backend in row %d", string(s), i)
		}
	}

	integer := make([]bool, len(kinds))
	for i, k := range kinds {
		integer[i] = k == Binary
	}

	status, x, err := mip.Solve(mip.Problem{
		Obj:      obj,
		Rows:     rows,
		Senses:   mipSenses,
		Rhs:      rhs,
		Integer:  integer,
		Maximize: maximize,
	})
	if err != nil {
		return 0, nil, errors.Wrap(err, "bundled solver failed")
	}

	return int(status), x, nil
}
