package utaum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solveTol absorbs simplex round-off in end-to-end assertions.
const solveTol = 1e-6

func TestSolveProbGainScenario(t *testing.T) {
	prb, err := BuildProblem(testTable, testShapes(), 100, 0.05,
		[]Pair{{A: 1, B: 2}}, []Pair{{A: 2, B: 3}}, nil)
	require.NoError(t, err)

	var result Result
	require.NoError(t, SolveProb(prb, Ctrl{}, &result))

	// Both directions are predefined, so there is a single structural
	// solution and the reported types are untouched.
	require.Equal(t, 1, result.SolutionsCount)
	assert.Equal(t, []Shape{Gain, Gain}, result.FinalCriteriaTypes[0])

	values := result.AdditiveValueFunctions[0]
	require.Len(t, values, 4)

	// Strict preference holds with the full eps margin, weak with none.
	assert.GreaterOrEqual(t, values[0]-values[1], prb.Eps-solveTol)
	assert.GreaterOrEqual(t, values[1]-values[2], -solveTol)

	assert.True(t, result.NecessaryRelations[Pair{A: 1, B: 2}])
	assert.True(t, result.PossibleRelations[Pair{A: 1, B: 2}])
}

func TestSolveProbContradictionCaughtBeforeSolve(t *testing.T) {
	_, err := BuildProblem(testTable, testShapes(), 100, 0.05,
		[]Pair{{A: 1, B: 2}}, nil, []Pair{{A: 1, B: 2}})

	var prefErr *PreferenceError
	require.ErrorAs(t, err, &prefErr)
}

func TestSolveProbInfeasibleCycle(t *testing.T) {
	prb, err := BuildProblem(testTable, testShapes(), 100, 0.05,
		[]Pair{{A: 1, B: 2}, {A: 2, B: 3}, {A: 3, B: 1}}, nil, nil)
	require.NoError(t, err)

	var result Result
	err = SolveProb(prb, Ctrl{}, &result)

	var infErr *InfeasibleError
	require.ErrorAs(t, err, &infErr)
	assert.Equal(t, 0, infErr.Round)
	assert.Equal(t, 0, result.SolutionsCount)
}

func TestSolveProbIndifferenceExact(t *testing.T) {
	prb, err := BuildProblem(testTable, testShapes(), 100, 0.05,
		[]Pair{{A: 1, B: 2}}, nil, []Pair{{A: 2, B: 3}})
	require.NoError(t, err)

	var result Result
	require.NoError(t, SolveProb(prb, Ctrl{}, &result))
	require.GreaterOrEqual(t, result.SolutionsCount, 1)

	for _, values := range result.AdditiveValueFunctions {
		assert.InDelta(t, values[1], values[2], solveTol)
	}
}

func TestSolveProbResolvesUnknownDirectionToGain(t *testing.T) {
	table := [][]float64{
		{1, 5},
		{2, 5},
		{3, 5},
	}
	prb, err := BuildProblem(table, []Shape{NotPredefined, Gain}, 100, 0.05,
		[]Pair{{A: 3, B: 2}, {A: 2, B: 1}}, nil, nil)
	require.NoError(t, err)

	var result Result
	require.NoError(t, SolveProb(prb, Ctrl{}, &result))
	require.GreaterOrEqual(t, result.SolutionsCount, 1)

	// Judged value rises with the criterion value, so the undetermined
	// criterion must resolve to GAIN in every compatible function.
	for _, types := range result.FinalCriteriaTypes {
		assert.Equal(t, Gain, types[0])
	}
}

func TestSolveProbResolvesUnknownDirectionToCost(t *testing.T) {
	table := [][]float64{
		{1, 5},
		{2, 5},
		{3, 5},
	}
	prb, err := BuildProblem(table, []Shape{NotPredefined, Gain}, 100, 0.05,
		[]Pair{{A: 1, B: 2}, {A: 2, B: 3}}, nil, nil)
	require.NoError(t, err)

	var result Result
	require.NoError(t, SolveProb(prb, Ctrl{}, &result))
	require.GreaterOrEqual(t, result.SolutionsCount, 1)

	// Judged value falls as the criterion value rises, so the undetermined
	// criterion must resolve to COST in every compatible function.
	for _, types := range result.FinalCriteriaTypes {
		assert.Equal(t, Cost, types[0])
	}
}

func TestSolveProbPeakShape(t *testing.T) {
	table := [][]float64{{1}, {2}, {3}}
	prb, err := BuildProblem(table, []Shape{AType}, 100, 0.05,
		[]Pair{{A: 2, B: 1}}, []Pair{{A: 2, B: 3}}, nil)
	require.NoError(t, err)

	var result Result
	require.NoError(t, SolveProb(prb, Ctrl{MaxSolutions: 8}, &result))
	require.GreaterOrEqual(t, result.SolutionsCount, 1)

	for _, values := range result.AdditiveValueFunctions {
		assert.GreaterOrEqual(t, values[1]-values[0], prb.Eps-solveTol)
		assert.GreaterOrEqual(t, values[1]-values[2], -solveTol)
	}

	// The middle alternative outranks both neighbors in every compatible
	// function.
	assert.True(t, result.NecessaryRelations[Pair{A: 2, B: 1}])
	assert.True(t, result.NecessaryRelations[Pair{A: 2, B: 3}])
}

func TestSolveProbValleyShape(t *testing.T) {
	table := [][]float64{{1}, {2}, {3}}
	prb, err := BuildProblem(table, []Shape{VType}, 100, 0.05,
		[]Pair{{A: 1, B: 2}}, []Pair{{A: 3, B: 2}}, nil)
	require.NoError(t, err)

	var result Result
	require.NoError(t, SolveProb(prb, Ctrl{MaxSolutions: 8}, &result))
	require.GreaterOrEqual(t, result.SolutionsCount, 1)

	// The single worst point sits between the endpoints: value falls into
	// the valley and recovers past it in every compatible function.
	for _, values := range result.AdditiveValueFunctions {
		assert.GreaterOrEqual(t, values[0]-values[1], prb.Eps-solveTol)
		assert.GreaterOrEqual(t, values[2]-values[1], -solveTol)
	}

	assert.True(t, result.NecessaryRelations[Pair{A: 1, B: 2}])
	assert.True(t, result.NecessaryRelations[Pair{A: 3, B: 2}])
}

func TestSolveProbNonMonotoneShape(t *testing.T) {
	table := [][]float64{{1}, {2}, {3}}
	prb, err := BuildProblem(table, []Shape{NonMonotone}, 100, 0.05,
		[]Pair{{A: 1, B: 2}}, []Pair{{A: 3, B: 2}}, nil)
	require.NoError(t, err)

	var result Result
	require.NoError(t, SolveProb(prb, Ctrl{MaxSolutions: 8}, &result))
	require.GreaterOrEqual(t, result.SolutionsCount, 1)

	// A valley shape: down from the first point, up to the last. No
	// monotone assumption could satisfy both judgments at once.
	for _, values := range result.AdditiveValueFunctions {
		assert.GreaterOrEqual(t, values[0]-values[1], prb.Eps-solveTol)
		assert.GreaterOrEqual(t, values[2]-values[1], -solveTol)
	}
}

func TestNecessaryImpliesPossible(t *testing.T) {
	prb, err := BuildProblem(testTable, testShapes(), 100, 0.05,
		[]Pair{{A: 1, B: 2}}, []Pair{{A: 2, B: 3}}, nil)
	require.NoError(t, err)

	var result Result
	require.NoError(t, SolveProb(prb, Ctrl{}, &result))

	for pr := range result.NecessaryRelations {
		assert.True(t, result.PossibleRelations[pr], "necessary pair %v not possible", pr)
	}
}

func TestEnumeratorStopsAtCap(t *testing.T) {
	table := [][]float64{{1}, {2}, {3}}
	prb, err := BuildProblem(table, []Shape{AType}, 100, 0.05,
		[]Pair{{A: 2, B: 1}}, []Pair{{A: 2, B: 3}}, nil)
	require.NoError(t, err)

	enum, err := NewEnumerator(prb, Ctrl{MaxSolutions: 1})
	require.NoError(t, err)

	_, ok, err := enum.Next()
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = enum.Next()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetStatistics(t *testing.T) {
	prb := buildTestProblem(t)

	var stats Statistics
	require.NoError(t, GetStatistics(prb, &stats))

	assert.Equal(t, 8*6+4*2+1, stats.Variables)
	assert.Equal(t, 36, stats.BinaryVariables)
	assert.Equal(t, 12, stats.Rows)
	assert.Equal(t, 2, stats.PreferenceRows)
}
