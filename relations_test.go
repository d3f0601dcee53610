package utaum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeRelations(t *testing.T) {
	// Two compatible functions over three alternatives. Alternative 1 beats
	// 3 in both, beats 2 only in the first, and 2 beats 1 only in the
	// second.
	values := [][]float64{
		{0.6, 0.4, 0.5},
		{0.5, 0.55, 0.5},
	}

	possible, necessary := analyzeRelations(values)

	assert.True(t, necessary[Pair{A: 1, B: 3}])
	assert.True(t, possible[Pair{A: 1, B: 2}])
	assert.False(t, necessary[Pair{A: 1, B: 2}])
	assert.True(t, possible[Pair{A: 2, B: 1}])
	assert.False(t, necessary[Pair{A: 2, B: 1}])

	// Ties count as holding in both directions.
	assert.True(t, possible[Pair{A: 3, B: 1}])
	assert.True(t, possible[Pair{A: 1, B: 3}])

	// Necessary is a subset of possible for every pair.
	for pr := range necessary {
		assert.True(t, possible[pr], "necessary pair %v not possible", pr)
	}

	// Self pairs never appear.
	for i := 1; i <= 3; i++ {
		assert.False(t, possible[Pair{A: i, B: i}])
	}
}

func TestAnalyzeRelationsSingleFunction(t *testing.T) {
	values := [][]float64{{0.3, 0.2, 0.2}}

	possible, necessary := analyzeRelations(values)

	// With a single compatible function the two relations coincide.
	assert.Equal(t, possible, necessary)
	assert.True(t, necessary[Pair{A: 1, B: 2}])
	assert.True(t, necessary[Pair{A: 2, B: 3}])
	assert.True(t, necessary[Pair{A: 3, B: 2}])
	assert.False(t, necessary[Pair{A: 2, B: 1}])
}

func TestAnalyzeRelationsEmptyTable(t *testing.T) {
	possible, necessary := analyzeRelations(nil)
	assert.Empty(t, possible)
	assert.Empty(t, necessary)
}
