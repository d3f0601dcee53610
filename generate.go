package utaum

// generate: Constraint generation for every criterion shape
//
// compile translates a Problem into a model: per-criterion constraint
// families for the six monotonicity assumptions, one shared normalization
// row, one epsilon-defining row, and the preference rows. Indicator links
// follow the usual big-M pattern, a pair of inequalities slackened by
// M*(1-b) or M*b so that the binary decides which side binds. Strictness
// stays symbolic here; only the solver adapter knows about eps shifting.

// tieWeight is the magnitude of the objective terms that steer the solver
// away from degenerate ties: direction resolution for undetermined criteria,
// peak/valley placement for A/V shapes, and direction flips for NON_MON.
// It never affects feasibility, only which optimum is reported first.
const tieWeight = 0.001

//==============================================================================

// compile builds the full model for the problem: layout, per-criterion
// constraint families, shared normalization, epsilon definition, and the
// preference rows. Compilation is deterministic: the same problem always
// yields the same rows in the same order.
func compile(prb *Problem) *model {

	ly := newLayout(prb)
	mdl := newModel(ly)

	genEpsRow(prb, mdl)

	for j := 1; j <= prb.CritNo; j++ {
		switch prb.Shapes[j-1] {
		case Gain:
			genMonotone(prb, mdl, j, true)
		case Cost:
			genMonotone(prb, mdl, j, false)
		case NotPredefined:
			genUnknownDir(prb, mdl, j)
		case AType:
			genPeak(prb, mdl, j, true)
		case VType:
			genPeak(prb, mdl, j, false)
		case NonMonotone:
			genFree(prb, mdl, j)
		}
	}

	genNormalizationRow(prb, mdl)
	genPreferenceRows(prb, mdl)

	return mdl
}

//==============================================================================

// genEpsRow pins the epsilon variable to the problem's strictness margin.
func genEpsRow(prb *Problem, mdl *model) {
	row := mdl.newRow()
	row[mdl.ly.epsVar()] = 1
	mdl.pushRow(row, SenseEq, prb.Eps)
}

//==============================================================================

// genNormalizationRow emits the single shared row normalizing the sum of the
// per-criterion best evaluations to one.
func genNormalizationRow(prb *Problem, mdl *model) {
	row := mdl.newRow()
	for j := 1; j <= prb.CritNo; j++ {
		row[mdl.ly.crit(blkBestEval, j)] = 1
	}
	mdl.pushRow(row, SenseEq, 1)
}

//==============================================================================

// genMonotone emits the constraint family for a criterion with a known
// direction: the monotone chain over adjacent characteristic points, the
// worst endpoint pinned to zero, and the best endpoint tied to the
// criterion's best-evaluation variable.
func genMonotone(prb *Problem, mdl *model, crit int, gain bool) {
	ly := mdl.ly
	m := prb.LevelNo[crit-1]

	for k := 1; k < m; k++ {
		row := mdl.newRow()
		row[ly.point(blkPoints, crit, k+1)] = 1
		row[ly.point(blkPoints, crit, k)] = -1
		if gain {
			mdl.pushRow(row, SenseGe, 0)
		} else {
			mdl.pushRow(row, SenseLe, 0)
		}
	}

	worst, best := 1, m
	if !gain {
		worst, best = m, 1
	}

	row := mdl.newRow()
	row[ly.point(blkPoints, crit, worst)] = 1
	mdl.pushRow(row, SenseEq, 0)

	row = mdl.newRow()
	row[ly.crit(blkBestEval, crit)] = 1
	row[ly.point(blkPoints, crit, best)] = -1
	mdl.pushRow(row, SenseEq, 0)
}

//==============================================================================

// genUnknownDir emits the family for a monotone criterion whose direction is
// unknown. Both a gain-case and a cost-case chain are generated over separate
// shadow blocks, each already normalized at its own worst endpoint; big-M
// links tie the canonical points to whichever shadow the is-cost binary
// selects. A small objective penalty on the binary resolves ties toward
// gain, so the reported direction is never arbitrary.
func genUnknownDir(prb *Problem, mdl *model, crit int) {
	ly := mdl.ly
	m := prb.LevelNo[crit-1]
	bigM := prb.M
	isCost := ly.crit(blkIsCost, crit)

	// Gain-case chain, worst point first.
	for k := 1; k < m; k++ {
		row := mdl.newRow()
		row[ly.point(blkGainShadow, crit, k+1)] = 1
		row[ly.point(blkGainShadow, crit, k)] = -1
		mdl.pushRow(row, SenseGe, 0)
	}
	row := mdl.newRow()
	row[ly.point(blkGainShadow, crit, 1)] = 1
	mdl.pushRow(row, SenseEq, 0)

	// Cost-case chain, worst point last.
	for k := 1; k < m; k++ {
		row = mdl.newRow()
		row[ly.point(blkCostShadow, crit, k+1)] = 1
		row[ly.point(blkCostShadow, crit, k)] = -1
		mdl.pushRow(row, SenseLe, 0)
	}
	row = mdl.newRow()
	row[ly.point(blkCostShadow, crit, m)] = 1
	mdl.pushRow(row, SenseEq, 0)

	// isCost == 0 forces points == gain shadow, isCost == 1 forces
	// points == cost shadow. Each equality is a big-M pair.
	for k := 1; k <= m; k++ {
		pt := ly.point(blkPoints, crit, k)

		row = mdl.newRow()
		row[pt] = 1
		row[ly.point(blkGainShadow, crit, k)] = -1
		row[isCost] = -bigM
		mdl.pushRow(row, SenseLe, 0)

		row = mdl.newRow()
		row[pt] = 1
		row[ly.point(blkGainShadow, crit, k)] = -1
		row[isCost] = bigM
		mdl.pushRow(row, SenseGe, 0)

		row = mdl.newRow()
		row[pt] = 1
		row[ly.point(blkCostShadow, crit, k)] = -1
		row[isCost] = bigM
		mdl.pushRow(row, SenseLe, bigM)

		row = mdl.newRow()
		row[pt] = 1
		row[ly.point(blkCostShadow, crit, k)] = -1
		row[isCost] = -bigM
		mdl.pushRow(row, SenseGe, -bigM)
	}

	// Best evaluation dominates every point and collapses onto the endpoint
	// matching the resolved direction.
	best := ly.crit(blkBestEval, crit)
	for k := 1; k <= m; k++ {
		row = mdl.newRow()
		row[best] = 1
		row[ly.point(blkPoints, crit, k)] = -1
		mdl.pushRow(row, SenseGe, 0)
	}

	row = mdl.newRow()
	row[best] = 1
	row[ly.point(blkPoints, crit, m)] = -1
	row[isCost] = -bigM
	mdl.pushRow(row, SenseLe, 0)

	row = mdl.newRow()
	row[best] = 1
	row[ly.point(blkPoints, crit, 1)] = -1
	row[isCost] = bigM
	mdl.pushRow(row, SenseLe, bigM)

	mdl.obj[isCost] -= tieWeight
}

//==============================================================================

// genPeak emits the family for the A_TYPE (peak == true) and V_TYPE shapes.
// Exactly one characteristic point is selected; the step-direction binaries
// are chained to the selector so the marginal function is non-decreasing up
// to the selected point and non-increasing after it (reversed for V_TYPE).
// The selected point is pinned to the best evaluation (A) or to zero (V),
// while the opposite normalization picks one of the two endpoints through
// the per-criterion endpoint indicator. A positional objective term prefers
// the earliest admissible placement so ties resolve deterministically.
func genPeak(prb *Problem, mdl *model, crit int, peak bool) {
	ly := mdl.ly
	m := prb.LevelNo[crit-1]
	bigM := prb.M

	// Exactly one selected point.
	row := mdl.newRow()
	for k := 1; k <= m; k++ {
		row[ly.point(blkPeakPick, crit, k)] = 1
	}
	mdl.pushRow(row, SenseEq, 1)

	// Chain the step directions to the selector: for a peak the direction
	// flips to "down" at the selected point, for a valley it flips to "up".
	for k := 1; k <= m; k++ {
		row = mdl.newRow()
		row[ly.point(blkStepDir, crit, k)] = 1
		if k > 1 {
			row[ly.point(blkStepDir, crit, k-1)] = -1
		}
		if peak {
			row[ly.point(blkPeakPick, crit, k)] = -1
			mdl.pushRow(row, SenseEq, 0)
		} else {
			row[ly.point(blkPeakPick, crit, k)] = 1
			if k > 1 {
				mdl.pushRow(row, SenseEq, 0)
			} else {
				mdl.pushRow(row, SenseEq, 1)
			}
		}
	}

	genStepRows(prb, mdl, crit)

	best := ly.crit(blkBestEval, crit)

	if peak {
		// Selected point equals the best evaluation; everything else stays
		// below it. The zero normalization picks an endpoint.
		for k := 1; k <= m; k++ {
			row = mdl.newRow()
			row[best] = 1
			row[ly.point(blkPoints, crit, k)] = -1
			mdl.pushRow(row, SenseGe, 0)

			row = mdl.newRow()
			row[best] = 1
			row[ly.point(blkPoints, crit, k)] = -1
			row[ly.point(blkPeakPick, crit, k)] = bigM
			mdl.pushRow(row, SenseLe, bigM)
		}

		zeroEnd := ly.crit(blkZeroEnd, crit)

		row = mdl.newRow()
		row[ly.point(blkPoints, crit, 1)] = 1
		row[zeroEnd] = -bigM
		mdl.pushRow(row, SenseLe, 0)

		row = mdl.newRow()
		row[ly.point(blkPoints, crit, m)] = 1
		row[zeroEnd] = bigM
		mdl.pushRow(row, SenseLe, bigM)
	} else {
		// Selected point is pinned to zero; the one normalization picks the
		// endpoint carrying the best evaluation.
		for k := 1; k <= m; k++ {
			row = mdl.newRow()
			row[ly.point(blkPoints, crit, k)] = 1
			row[ly.point(blkPeakPick, crit, k)] = bigM
			mdl.pushRow(row, SenseLe, bigM)

			row = mdl.newRow()
			row[best] = 1
			row[ly.point(blkPoints, crit, k)] = -1
			mdl.pushRow(row, SenseGe, 0)
		}

		oneEnd := ly.crit(blkOneEnd, crit)

		row = mdl.newRow()
		row[best] = 1
		row[ly.point(blkPoints, crit, m)] = -1
		row[oneEnd] = -bigM
		mdl.pushRow(row, SenseLe, 0)

		row = mdl.newRow()
		row[best] = 1
		row[ly.point(blkPoints, crit, 1)] = -1
		row[oneEnd] = bigM
		mdl.pushRow(row, SenseLe, bigM)
	}

	for k := 1; k <= m; k++ {
		mdl.obj[ly.point(blkPeakPick, crit, k)] -= tieWeight * float64(k-1)
	}
}

//==============================================================================

// genStepRows emits the big-M pair tying each adjacent point pair to its
// step-direction binary: 0 forces a non-decreasing step, 1 a non-increasing
// one. Shared by the A/V and NON_MON families.
func genStepRows(prb *Problem, mdl *model, crit int) {
	ly := mdl.ly
	m := prb.LevelNo[crit-1]
	bigM := prb.M

	for k := 1; k < m; k++ {
		dir := ly.point(blkStepDir, crit, k)

		row := mdl.newRow()
		row[ly.point(blkPoints, crit, k+1)] = 1
		row[ly.point(blkPoints, crit, k)] = -1
		row[dir] = bigM
		mdl.pushRow(row, SenseGe, 0)

		row = mdl.newRow()
		row[ly.point(blkPoints, crit, k+1)] = 1
		row[ly.point(blkPoints, crit, k)] = -1
		row[dir] = bigM
		mdl.pushRow(row, SenseLe, bigM)
	}
}

//==============================================================================

// genFree emits the family for a criterion with no monotonicity assumption.
// Step directions are unconstrained binaries; every flip between adjacent
// steps raises a change-of-monotonicity indicator that is penalized in the
// objective, so the solver reports the least wavy compatible shape. One
// point is pinned to zero and one to the best evaluation through the
// exactly-one pick indicators.
func genFree(prb *Problem, mdl *model, crit int) {
	ly := mdl.ly
	m := prb.LevelNo[crit-1]
	bigM := prb.M

	genStepRows(prb, mdl, crit)

	// Flip indicators bound below by |direction change|.
	for k := 2; k < m; k++ {
		flip := ly.point(blkStepFlip, crit, k)

		row := mdl.newRow()
		row[flip] = 1
		row[ly.point(blkStepDir, crit, k)] = -1
		row[ly.point(blkStepDir, crit, k-1)] = 1
		mdl.pushRow(row, SenseGe, 0)

		row = mdl.newRow()
		row[flip] = 1
		row[ly.point(blkStepDir, crit, k)] = 1
		row[ly.point(blkStepDir, crit, k-1)] = -1
		mdl.pushRow(row, SenseGe, 0)

		mdl.obj[flip] -= tieWeight
	}

	// Zero normalization: exactly one point pinned to zero.
	row := mdl.newRow()
	for k := 1; k <= m; k++ {
		row[ly.point(blkZeroPick, crit, k)] = 1
	}
	mdl.pushRow(row, SenseEq, 1)

	for k := 1; k <= m; k++ {
		row = mdl.newRow()
		row[ly.point(blkPoints, crit, k)] = 1
		row[ly.point(blkZeroPick, crit, k)] = bigM
		mdl.pushRow(row, SenseLe, bigM)
	}

	// One normalization: every point below the best evaluation, exactly one
	// point carrying it.
	best := ly.crit(blkBestEval, crit)

	row = mdl.newRow()
	for k := 1; k <= m; k++ {
		row[ly.point(blkOnePick, crit, k)] = 1
	}
	mdl.pushRow(row, SenseEq, 1)

	for k := 1; k <= m; k++ {
		row = mdl.newRow()
		row[best] = 1
		row[ly.point(blkPoints, crit, k)] = -1
		mdl.pushRow(row, SenseGe, 0)

		row = mdl.newRow()
		row[best] = 1
		row[ly.point(blkPoints, crit, k)] = -1
		row[ly.point(blkOnePick, crit, k)] = bigM
		mdl.pushRow(row, SenseLe, bigM)
	}
}
