package utaum

// model: Mutable constraint-matrix accumulator
//
// A model collects the objective vector and the constraint rows produced by
// the generator and the preference translator. Rows carry symbolic senses,
// including the strict "<" and ">", which are normalized away only by the
// solver adapter. The matrix is append-only; an enumeration round clones the
// model before adding its exclusion row, it never mutates a model that has
// already been handed to the oracle.

// Sense is the symbolic direction of a constraint row. Strict senses never
// reach the oracle; the adapter rewrites them against the epsilon margin.
type Sense string

// Row senses.
const (
	SenseLt Sense = "<"
	SenseLe Sense = "<="
	SenseEq Sense = "=="
	SenseGe Sense = ">="
	SenseGt Sense = ">"
)

// model accumulates one compiled program. Row width always equals the
// layout's total variable count.
type model struct {
	ly       *layout
	obj      []float64
	rows     [][]float64
	senses   []Sense
	rhs      []float64
	maximize bool
}

//==============================================================================

// newModel creates an empty model sized for the layout. The objective starts
// at zero; generators add their tie-breaking terms into it.
func newModel(ly *layout) *model {
	return &model{
		ly:       ly,
		obj:      make([]float64, ly.total),
		maximize: true,
	}
}

// newRow returns a zeroed coefficient row of the full variable width.
func (mdl *model) newRow() []float64 {
	return make([]float64, mdl.ly.total)
}

// pushRow appends a finished row with its sense and right-hand side.
func (mdl *model) pushRow(row []float64, s Sense, rhs float64) {
	mdl.rows = append(mdl.rows, row)
	mdl.senses = append(mdl.senses, s)
	mdl.rhs = append(mdl.rhs, rhs)
}

// rowCount returns the number of constraint rows appended so far.
func (mdl *model) rowCount() int {
	return len(mdl.rows)
}

//==============================================================================

// clone returns a model sharing the already-appended rows (which are never
// modified after pushRow) but with independent slices, so that appending to
// the clone leaves the original untouched.
func (mdl *model) clone() *model {
	cp := &model{
		ly:       mdl.ly,
		obj:      append([]float64(nil), mdl.obj...),
		rows:     append([][]float64(nil), mdl.rows...),
		senses:   append([]Sense(nil), mdl.senses...),
		rhs:      append([]float64(nil), mdl.rhs...),
		maximize: mdl.maximize,
	}
	return cp
}

//==============================================================================

// oracleForm returns the oracle-ready senses and right-hand sides: every
// strict row is rewritten to its non-strict counterpart shifted by eps, so
// "strictly greater" becomes "greater by at least eps". Rows and objective
// are shared, not copied, since the oracle only reads them.
func (mdl *model) oracleForm(eps float64) (senses []Sense, rhs []float64) {

	senses = append([]Sense(nil), mdl.senses...)
	rhs = append([]float64(nil), mdl.rhs...)

	for i, s := range senses {
		switch s {
		case SenseGt:
			senses[i] = SenseGe
			rhs[i] += eps
		case SenseLt:
			senses[i] = SenseLe
			rhs[i] -= eps
		}
	}

	return senses, rhs
}
