package utaum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpretResolvesTypesAndValues(t *testing.T) {
	table := [][]float64{
		{1, 10},
		{2, 20},
		{3, 30},
	}
	prb, err := BuildProblem(table, []Shape{NotPredefined, Gain}, 100, 0.05,
		[]Pair{{A: 3, B: 1}}, nil, nil)
	require.NoError(t, err)

	ly := newLayout(prb)
	x := make([]float64, ly.total)

	// Hand-build a solution: criterion 1 resolved to COST with marginal
	// values 0.6/0.3/0, criterion 2 a GAIN ramp 0/0.1/0.4.
	x[ly.crit(blkIsCost, 1)] = 1
	x[ly.point(blkPoints, 1, 1)] = 0.6
	x[ly.point(blkPoints, 1, 2)] = 0.3
	x[ly.point(blkPoints, 2, 2)] = 0.1
	x[ly.point(blkPoints, 2, 3)] = 0.4

	cf := interpret(prb, ly, x)

	assert.Equal(t, []Shape{Cost, Gain}, cf.Types)
	assert.InDelta(t, 0.6, cf.Values[0], 1e-12) // 0.6 + 0
	assert.InDelta(t, 0.4, cf.Values[1], 1e-12) // 0.3 + 0.1
	assert.InDelta(t, 0.4, cf.Values[2], 1e-12) // 0 + 0.4

	require.Len(t, cf.Marginals, 2)
	assert.Equal(t, []float64{1, 2, 3}, cf.Marginals[0].Breakpoints)
	assert.Equal(t, []float64{0.6, 0.3, 0}, cf.Marginals[0].Values)
}

func TestMarginalFuncValueAt(t *testing.T) {
	f := MarginalFunc{
		Breakpoints: []float64{1, 3, 5},
		Values:      []float64{0, 0.4, 0.2},
	}

	cases := []struct {
		in   float64
		want float64
	}{
		{1, 0},
		{3, 0.4},
		{5, 0.2},
		{2, 0.2},  // midpoint of the first segment
		{4, 0.3},  // midpoint of the second segment
		{0, 0},    // clamped below
		{9, 0.2},  // clamped above
	}

	for _, tc := range cases {
		got, err := f.ValueAt(tc.in)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 1e-12, "at %g", tc.in)
	}

	_, err := MarginalFunc{}.ValueAt(1)
	assert.Error(t, err)
}

// TestRoundTripValues reconstructs each alternative's additive value from
// the raw table and the recovered marginal functions and checks it against
// the value read straight from the solution vector.
func TestRoundTripValues(t *testing.T) {
	prb, err := BuildProblem(testTable, testShapes(), 100, 0.05,
		[]Pair{{A: 1, B: 2}}, []Pair{{A: 2, B: 3}}, nil)
	require.NoError(t, err)

	var result Result
	require.NoError(t, SolveProb(prb, Ctrl{}, &result))
	require.GreaterOrEqual(t, result.SolutionsCount, 1)

	for _, cf := range result.Solutions {
		for a := 0; a < prb.AltNo; a++ {
			total := 0.0
			for j := 0; j < prb.CritNo; j++ {
				v, err := cf.Marginals[j].ValueAt(prb.Alternatives[a][j])
				require.NoError(t, err)
				total += v
			}
			assert.InDelta(t, cf.Values[a], total, solveTol)
		}
	}
}
