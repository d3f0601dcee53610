package utaum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestProblem(t *testing.T) *Problem {
	t.Helper()
	prb, err := BuildProblem(testTable, testShapes(), 100, 0.05,
		[]Pair{{A: 1, B: 2}}, []Pair{{A: 2, B: 3}}, nil)
	require.NoError(t, err)
	return prb
}

func TestLayoutSizesAndOffsets(t *testing.T) {
	prb := buildTestProblem(t)
	ly := newLayout(prb)

	// 2 criteria with 3 levels each: 8 per-point blocks of 6, 4 per-criterion
	// blocks of 2, and the epsilon variable.
	assert.Equal(t, 8*6+4*2+1, ly.total)

	assert.Equal(t, 0, ly.start[blkPoints])
	assert.Equal(t, 6, ly.start[blkGainShadow])
	assert.Equal(t, 12, ly.start[blkCostShadow])
	assert.Equal(t, 18, ly.start[blkIsCost])
	assert.Equal(t, 20, ly.start[blkPeakPick])
	assert.Equal(t, ly.total-1, ly.epsVar())

	// Prefix-sum addressing inside a per-point block.
	assert.Equal(t, 0, ly.point(blkPoints, 1, 1))
	assert.Equal(t, 2, ly.point(blkPoints, 1, 3))
	assert.Equal(t, 3, ly.point(blkPoints, 2, 1))
	assert.Equal(t, 5, ly.point(blkPoints, 2, 3))

	// Per-criterion addressing.
	assert.Equal(t, 18, ly.crit(blkIsCost, 1))
	assert.Equal(t, 19, ly.crit(blkIsCost, 2))
}

func TestLayoutKinds(t *testing.T) {
	prb := buildTestProblem(t)
	ly := newLayout(prb)

	kinds := ly.kinds()
	require.Len(t, kinds, ly.total)

	// Marginal-value points, shadows, best evaluations, and epsilon are
	// continuous; every indicator block is binary.
	assert.Equal(t, Continuous, kinds[ly.point(blkPoints, 1, 1)])
	assert.Equal(t, Continuous, kinds[ly.point(blkGainShadow, 2, 2)])
	assert.Equal(t, Continuous, kinds[ly.crit(blkBestEval, 1)])
	assert.Equal(t, Continuous, kinds[ly.epsVar()])
	assert.Equal(t, Binary, kinds[ly.crit(blkIsCost, 1)])
	assert.Equal(t, Binary, kinds[ly.point(blkPeakPick, 1, 1)])
	assert.Equal(t, Binary, kinds[ly.point(blkStepDir, 2, 3)])
	assert.Equal(t, Binary, kinds[ly.crit(blkZeroEnd, 2)])

	binaries := 0
	for _, k := range kinds {
		if k == Binary {
			binaries++
		}
	}
	// Binary blocks: peak pick, step dir, step flip, zero pick, one pick
	// (5 x 6 = 30) plus is-cost, zero end, one end (3 x 2 = 6).
	assert.Equal(t, 36, binaries)
}

func TestLayoutUnevenLevels(t *testing.T) {
	table := [][]float64{
		{1, 7, 7},
		{2, 7, 8},
		{3, 7, 9},
	}
	prb, err := BuildProblem(table, []Shape{Gain, Gain, Cost}, 100, 0.1,
		[]Pair{{A: 1, B: 2}}, nil, nil)
	require.NoError(t, err)

	ly := newLayout(prb)
	assert.Equal(t, []int{0, 3, 4}, ly.prefix)
	assert.Equal(t, 8*7+4*3+1, ly.total)
	assert.Equal(t, ly.start[blkPoints]+3, ly.point(blkPoints, 2, 1))
	assert.Equal(t, ly.start[blkPoints]+4, ly.point(blkPoints, 3, 1))
	assert.Equal(t, ly.start[blkPoints]+6, ly.point(blkPoints, 3, 3))
}
