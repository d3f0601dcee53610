package utaum

// preferences: Translation of pairwise judgments into value rows
//
// Each declared judgment (a, b) becomes one row over the additive-value
// variables of the two alternatives: strict ">" rows, weak ">=" rows, and
// indifference "==" rows, emitted in that order. Coefficients accumulate,
// so criteria on which both alternatives share a rank cancel out.

//==============================================================================

// genPreferenceRows emits one row per judgment: strict first, then weak,
// then indifferent. Order affects only row numbering, never feasibility.
func genPreferenceRows(prb *Problem, mdl *model) {
	for _, pr := range prb.Strict {
		pushValueRow(prb, mdl, pr, SenseGt)
	}
	for _, pr := range prb.Weak {
		pushValueRow(prb, mdl, pr, SenseGe)
	}
	for _, pr := range prb.Indiff {
		pushValueRow(prb, mdl, pr, SenseEq)
	}
}

//==============================================================================

// pushValueRow appends the row value(a) - value(b) <sense> 0, where value(x)
// is the sum over criteria of the marginal-value variable at x's rank.
func pushValueRow(prb *Problem, mdl *model, pr Pair, s Sense) {
	ly := mdl.ly
	row := mdl.newRow()

	for j := 1; j <= prb.CritNo; j++ {
		row[ly.point(blkPoints, j, prb.AltRank[pr.A-1][j-1])] += 1
		row[ly.point(blkPoints, j, prb.AltRank[pr.B-1][j-1])] -= 1
	}

	mdl.pushRow(row, s, 0)
}
