package utaum

// problem: Problem construction and validation
//
// Functions in this file build the immutable Problem structure from the raw
// alternatives table and the decision-maker's pairwise judgments. All input
// checking happens here, before any model is compiled, so that the constraint
// generator and the solver adapter can assume a well-formed problem.

import (
	"fmt"
	"sort"
)

// Shape identifies the monotonicity assumption declared for a criterion.
type Shape string

// Supported criterion shapes.
const (
	Gain          Shape = "GAIN"           // higher value is better
	Cost          Shape = "COST"           // lower value is better
	NotPredefined Shape = "NOT_PREDEFINED" // monotone, direction resolved by the solver
	AType         Shape = "A_TYPE"         // single best point, possibly interior
	VType         Shape = "V_TYPE"         // single worst point, possibly interior
	NonMonotone   Shape = "NON_MON"        // no monotonicity assumption
)

// Pair holds an ordered pair of 1-based alternative indices used in the
// preference tables and in the relation sets.
type Pair struct {
	A int
	B int
}

// Problem is the immutable input to the compilation pipeline. It is built
// once by BuildProblem and shared by reference afterwards.
type Problem struct {
	Alternatives [][]float64 // alternative x criterion evaluation table
	Shapes       []Shape     // declared shape per criterion
	M            float64     // big-M constant used by indicator links
	Eps          float64     // margin separating strict from weak preference
	Strict       []Pair      // strict preference judgments (a preferred to b)
	Weak         []Pair      // weak preference judgments
	Indiff       []Pair      // indifference judgments

	AltNo   int         // number of alternatives
	CritNo  int         // number of criteria
	LevelNo []int       // number of distinct values per criterion
	Levels  [][]float64 // sorted distinct values (characteristic points) per criterion
	AltRank [][]int     // 1-based rank of each alternative's value per criterion
}

// minAlternatives is the smallest table for which the analysis is defined.
const minAlternatives = 3

//==============================================================================

// validShape reports whether the tag is one of the supported criterion shapes.
func validShape(s Shape) bool {
	switch s {
	case Gain, Cost, NotPredefined, AType, VType, NonMonotone:
		return true
	}
	return false
}

//==============================================================================

// dedupePairs returns the list with repeated identical pairs removed. The
// first occurrence keeps its position so that row emission order stays stable.
func dedupePairs(pairs []Pair) []Pair {
	var out []Pair
	seen := make(map[Pair]bool)

	for _, pr := range pairs {
		if seen[pr] {
			continue
		}
		seen[pr] = true
		out = append(out, pr)
	}

	return out
}

//==============================================================================

// checkPairs validates one preference table against the problem size. The
// table name is used only for error context.
func checkPairs(pairs []Pair, altNo int, table string) error {

	for _, pr := range pairs {
		if pr.A < 1 || pr.A > altNo || pr.B < 1 || pr.B > altNo {
			return &PreferenceError{Pair: pr, Reason: table + " pair index out of range"}
		}
		if pr.A == pr.B {
			return &PreferenceError{Pair: pr, Reason: table + " pair relates an alternative to itself"}
		}
	}

	return nil
}

//==============================================================================

// BuildProblem validates the raw input and constructs the Problem, including
// the per-criterion level index used for variable addressing.
// In case of failure, it returns an error.
func BuildProblem(alternatives [][]float64, shapes []Shape, m float64, eps float64,
	strict []Pair, weak []Pair, indiff []Pair) (*Problem, error) {

	altNo := len(alternatives)
	if altNo < minAlternatives {
		return nil, &ShapeError{Reason: fmt.Sprintf("at least %d alternatives required, got %d",
			minAlternatives, altNo)}
	}

	critNo := len(alternatives[0])
	if critNo == 0 {
		return nil, &ShapeError{Reason: "alternatives table has no criteria"}
	}
	for i := 0; i < altNo; i++ {
		if len(alternatives[i]) != critNo {
			return nil, &ShapeError{Reason: fmt.Sprintf("alternative %d has %d values, expected %d",
				i+1, len(alternatives[i]), critNo)}
		}
	}

	if len(shapes) != critNo {
		return nil, &ShapeError{Reason: fmt.Sprintf("%d shape tags for %d criteria",
			len(shapes), critNo)}
	}
	for j, s := range shapes {
		if !validShape(s) {
			return nil, &ShapeError{Reason: fmt.Sprintf("unknown shape %q for criterion %d",
				string(s), j+1)}
		}
	}

	if m <= 0 {
		return nil, &ParameterError{Name: "M", Value: m}
	}
	if eps <= 0 || eps >= 1 {
		return nil, &ParameterError{Name: "eps", Value: eps}
	}

	// Deduplicate repeated identical pairs silently, then check ranges and
	// cross-set contradictions.

	strict = dedupePairs(strict)
	weak = dedupePairs(weak)
	indiff = dedupePairs(indiff)

	if err := checkPairs(strict, altNo, "strict"); err != nil {
		return nil, err
	}
	if err := checkPairs(weak, altNo, "weak"); err != nil {
		return nil, err
	}
	if err := checkPairs(indiff, altNo, "indifference"); err != nil {
		return nil, err
	}

	if len(strict) == 0 && len(weak) == 0 && len(indiff) == 0 {
		return nil, &PreferenceError{Reason: "all preference tables are empty"}
	}

	strictSet := make(map[Pair]bool)
	for _, pr := range strict {
		if strictSet[Pair{A: pr.B, B: pr.A}] {
			return nil, &PreferenceError{Pair: pr, Reason: "strict preference declared in both directions"}
		}
		strictSet[pr] = true
	}

	weakSet := make(map[Pair]bool)
	for _, pr := range weak {
		weakSet[pr] = true
	}

	// Indifference is symmetric, so both orientations conflict with a strict
	// or weak judgment on the same pair.
	for _, pr := range indiff {
		rev := Pair{A: pr.B, B: pr.A}
		if strictSet[pr] || strictSet[rev] {
			return nil, &PreferenceError{Pair: pr, Reason: "pair declared both indifferent and strictly preferred"}
		}
		if weakSet[pr] || weakSet[rev] {
			return nil, &PreferenceError{Pair: pr, Reason: "pair declared both indifferent and weakly preferred"}
		}
	}

	prb := &Problem{
		Alternatives: alternatives,
		Shapes:       shapes,
		M:            m,
		Eps:          eps,
		Strict:       strict,
		Weak:         weak,
		Indiff:       indiff,
		AltNo:        altNo,
		CritNo:       critNo,
	}

	buildLevelIndex(prb)

	return prb, nil
}

//==============================================================================

// buildLevelIndex derives, for each criterion, the sorted set of distinct
// values observed across alternatives and each alternative's 1-based rank
// among them. Every constraint-emitting routine addresses marginal-value
// variables through these ranks.
func buildLevelIndex(prb *Problem) {

	prb.Levels = make([][]float64, prb.CritNo)
	prb.LevelNo = make([]int, prb.CritNo)
	prb.AltRank = make([][]int, prb.AltNo)
	for i := range prb.AltRank {
		prb.AltRank[i] = make([]int, prb.CritNo)
	}

	for j := 0; j < prb.CritNo; j++ {
		distinct := make(map[float64]bool)
		for i := 0; i < prb.AltNo; i++ {
			distinct[prb.Alternatives[i][j]] = true
		}

		levels := make([]float64, 0, len(distinct))
		for v := range distinct {
			levels = append(levels, v)
		}
		sort.Float64s(levels)

		rank := make(map[float64]int, len(levels))
		for k, v := range levels {
			rank[v] = k + 1
		}

		prb.Levels[j] = levels
		prb.LevelNo[j] = len(levels)
		for i := 0; i < prb.AltNo; i++ {
			prb.AltRank[i][j] = rank[prb.Alternatives[i][j]]
		}
	}
}

//==============================================================================

// Value returns the additive value of the 1-based alternative under the given
// per-criterion marginal values indexed by rank. It is the single definition
// of "value(x)" shared by the preference translator and the interpreter.
func (prb *Problem) value(marginalAt func(crit, point int) float64, alt int) float64 {
	total := 0.0
	for j := 1; j <= prb.CritNo; j++ {
		total += marginalAt(j, prb.AltRank[alt-1][j-1])
	}
	return total
}
