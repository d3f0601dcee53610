package utaum

// relations: Possible and necessary outranking relations
//
// Given the additive-value table collected over all enumerated compatible
// functions (rows = functions, columns = alternatives), a relation (i, j) is
// possible when value(i) >= value(j) holds in at least one row and necessary
// when it holds in every row. Necessary relations are a subset of possible
// ones by construction.

// relTol absorbs solver round-off when comparing two additive values.
const relTol = 1e-7

//==============================================================================

// analyzeRelations classifies every ordered pair of alternatives against the
// additive-value table. The table must have at least one row.
func analyzeRelations(values [][]float64) (possible, necessary map[Pair]bool) {

	possible = make(map[Pair]bool)
	necessary = make(map[Pair]bool)
	if len(values) == 0 {
		return possible, necessary
	}

	altNo := len(values[0])

	for i := 1; i <= altNo; i++ {
		for j := 1; j <= altNo; j++ {
			if i == j {
				continue
			}

			inAny := false
			inAll := true
			for _, row := range values {
				if row[i-1] >= row[j-1]-relTol {
					inAny = true
				} else {
					inAll = false
				}
			}

			pr := Pair{A: i, B: j}
			if inAny {
				possible[pr] = true
			}
			if inAll {
				necessary[pr] = true
			}
		}
	}

	return possible, necessary
}
