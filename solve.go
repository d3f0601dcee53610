package utaum

// solve: Solver adapter and enumeration of compatible value functions
//
// The adapter packages a compiled model for the external LP/MIP oracle,
// normalizing strict senses against the epsilon margin on the way out. The
// enumerator repeatedly re-solves, each round cloning the previous model and
// appending a row that forbids the exact binary assignment just found, until
// the oracle reports infeasibility or the caller's cap is reached.

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// defaultMaxSolutions bounds the enumeration when the caller does not.
const defaultMaxSolutions = 20

// Oracle is the external LP/MIP solver consumed by the adapter. Status 0
// means an optimal feasible solution was found; any other status means the
// model is infeasible. Senses passed to an Oracle are always non-strict.
// Every variable is non-negative: the compiled rows pin values through
// upper bounds and rely on x >= 0 for the lower side, so a backend must
// enforce non-negativity on all continuous and binary variables.
type Oracle interface {
	Solve(obj []float64, rows [][]float64, senses []Sense, rhs []float64,
		kinds []VarKind, maximize bool) (status int, solution []float64, err error)
}

// Ctrl carries the caller's configuration into SolveProb, in particular
// which oracle backend to use. A nil Solver selects the bundled one.
type Ctrl struct {
	Solver       Oracle // LP/MIP backend, nil for the bundled solver
	MaxSolutions int    // enumeration cap, <= 0 for the default
}

// Result collects the outcome of a full analysis.
type Result struct {
	SolutionsCount         int
	FinalCriteriaTypes     [][]Shape     // solutions x criteria
	AdditiveValueFunctions [][]float64   // solutions x alternatives
	PossibleRelations      map[Pair]bool // ordered pairs holding for some compatible function
	NecessaryRelations     map[Pair]bool // ordered pairs holding for every compatible function
	Solutions              []*Compatible // full per-solution detail
}

//==============================================================================

// Enumerator produces compatible value functions one at a time. It is
// created with a freshly compiled model and terminates on the first
// infeasible solve or when the round cap is reached.
type Enumerator struct {
	prb    *Problem
	oracle Oracle
	max    int
	cur    *model
	round  int
	done   bool
}

// NewEnumerator compiles the problem once and prepares enumeration.
// In case of failure, it returns an error.
func NewEnumerator(prb *Problem, ctl Ctrl) (*Enumerator, error) {
	if prb == nil {
		return nil, errors.New("NewEnumerator received a nil problem")
	}

	oracle := ctl.Solver
	if oracle == nil {
		oracle = DefaultOracle()
	}

	max := ctl.MaxSolutions
	if max <= 0 {
		max = defaultMaxSolutions
	}

	mdl := compile(prb)
	logger.Debug("model compiled",
		zap.Int("variables", mdl.ly.total),
		zap.Int("rows", mdl.rowCount()))

	return &Enumerator{
		prb:    prb,
		oracle: oracle,
		max:    max,
		cur:    mdl,
	}, nil
}

//==============================================================================

// Next solves the current model and returns the next compatible value
// function. The second return value is false when enumeration is exhausted.
// An infeasible first round is reported as an InfeasibleError, since it
// means no compatible value function exists at all; later infeasible rounds
// are the normal end of enumeration. In case of an oracle failure, it
// returns an error.
func (e *Enumerator) Next() (*Compatible, bool, error) {

	if e.done || e.round >= e.max {
		return nil, false, nil
	}

	senses, rhs := e.cur.oracleForm(e.prb.Eps)
	status, x, err := e.oracle.Solve(e.cur.obj, e.cur.rows, senses, rhs,
		e.cur.ly.kinds(), e.cur.maximize)
	if err != nil {
		e.done = true
		return nil, false, errors.Wrapf(err, "oracle failed on round %d", e.round)
	}

	if status != 0 {
		e.done = true
		if e.round == 0 {
			return nil, false, &InfeasibleError{Round: 0}
		}
		logger.Debug("enumeration exhausted", zap.Int("rounds", e.round))
		return nil, false, nil
	}

	cf := interpret(e.prb, e.cur.ly, x)
	e.round++

	ones := trueBinaries(e.cur.ly, x)
	if len(ones) == 0 {
		// No true indicator to exclude: the next cut would be trivially
		// infeasible, so enumeration ends here.
		e.done = true
	} else {
		next := e.cur.clone()
		excludeAssignment(next, ones)
		e.cur = next
		logger.Debug("appended exclusion row",
			zap.Int("round", e.round),
			zap.Int("trueBinaries", len(ones)))
	}

	return cf, true, nil
}

//==============================================================================

// trueBinaries returns the addresses of all binary variables set in the
// solution.
func trueBinaries(ly *layout, x []float64) []int {
	var ones []int
	for b := block(0); b < blkCount; b++ {
		if ly.kind[b] != Binary {
			continue
		}
		for i := 0; i < ly.size[b]; i++ {
			addr := ly.start[b] + i
			if x[addr] > binTol {
				ones = append(ones, addr)
			}
		}
	}
	return ones
}

// excludeAssignment appends the row forbidding the exact combination of
// currently-true binaries: their sum must drop by at least one.
func excludeAssignment(mdl *model, ones []int) {
	row := mdl.newRow()
	for _, addr := range ones {
		row[addr] = 1
	}
	mdl.pushRow(row, SenseLe, float64(len(ones)-1))
}

//==============================================================================

// SolveProb runs the complete analysis: it enumerates compatible value
// functions and classifies the possible and necessary relations over them,
// filling in the result structure referenced by rslt.
// In case of failure, it returns an error.
func SolveProb(prb *Problem, ctl Ctrl, rslt *Result) error {

	rslt.SolutionsCount = 0
	rslt.FinalCriteriaTypes = nil
	rslt.AdditiveValueFunctions = nil
	rslt.PossibleRelations = nil
	rslt.NecessaryRelations = nil
	rslt.Solutions = nil

	enum, err := NewEnumerator(prb, ctl)
	if err != nil {
		return errors.Wrap(err, "SolveProb failed")
	}

	for {
		cf, ok, err := enum.Next()
		if err != nil {
			return errors.Wrap(err, "SolveProb failed")
		}
		if !ok {
			break
		}
		rslt.Solutions = append(rslt.Solutions, cf)
		rslt.FinalCriteriaTypes = append(rslt.FinalCriteriaTypes, cf.Types)
		rslt.AdditiveValueFunctions = append(rslt.AdditiveValueFunctions, cf.Values)
	}

	rslt.SolutionsCount = len(rslt.Solutions)
	rslt.PossibleRelations, rslt.NecessaryRelations =
		analyzeRelations(rslt.AdditiveValueFunctions)

	logger.Info("analysis finished",
		zap.Int("solutions", rslt.SolutionsCount),
		zap.Int("possible", len(rslt.PossibleRelations)),
		zap.Int("necessary", len(rslt.NecessaryRelations)))

	return nil
}

//==============================================================================

// Statistics describes the size of the compiled program for one problem.
type Statistics struct {
	Variables       int // total variable count
	BinaryVariables int // binary variable count
	Rows            int // constraint rows, preference rows included
	PreferenceRows  int // rows produced by the judgment tables
}

// GetStatistics compiles the problem and reports the model dimensions
// without invoking any solver.
// In case of failure, it returns an error.
func GetStatistics(prb *Problem, stats *Statistics) error {
	if prb == nil {
		return errors.New("GetStatistics received a nil problem")
	}

	mdl := compile(prb)

	stats.Variables = mdl.ly.total
	stats.BinaryVariables = 0
	for _, k := range mdl.ly.kinds() {
		if k == Binary {
			stats.BinaryVariables++
		}
	}
	stats.Rows = mdl.rowCount()
	stats.PreferenceRows = len(prb.Strict) + len(prb.Weak) + len(prb.Indiff)

	return nil
}
