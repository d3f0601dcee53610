package utaum

// layout: Variable block layout shared across the whole pipeline
//
// The program variables live in fixed-order named blocks. Offsets are prefix
// sums over that fixed order, computed once per Problem. The same layout
// value is passed to the constraint generator, the solution interpreter, and
// the relation analyzer; nothing recomputes addresses ad hoc, so the three
// cannot drift apart.

// VarKind distinguishes continuous from binary program variables in the
// oracle's variable-kind vector.
type VarKind int

// Variable kinds accepted by the oracle.
const (
	Continuous VarKind = iota
	Binary
)

// block enumerates the variable blocks in their fixed order. Blocks sized
// "per point" hold one variable for every characteristic point of every
// criterion; blocks sized "per criterion" hold one variable per criterion.
type block int

const (
	blkPoints     block = iota // marginal value at each characteristic point (continuous)
	blkGainShadow              // shadow points assuming gain direction (continuous)
	blkCostShadow              // shadow points assuming cost direction (continuous)
	blkIsCost                  // 1 if an undetermined criterion resolved to cost (binary, per criterion)
	blkPeakPick                // selects the best/worst interior point for A/V shapes (binary)
	blkStepDir                 // local direction flag per adjacent point pair (binary)
	blkStepFlip                // marks where the direction flips for NON_MON (binary)
	blkZeroEnd                 // which endpoint an A-shape pins to zero (binary, per criterion)
	blkZeroPick                // which point a NON_MON criterion pins to zero (binary)
	blkBestEval                // best evaluation per criterion, used in normalization (continuous, per criterion)
	blkOneEnd                  // which endpoint a V-shape pins to the best evaluation (binary, per criterion)
	blkOnePick                 // which point a NON_MON criterion pins to the best evaluation (binary)
	blkEpsilon                 // strictness slack shared by all strict constraints (continuous, size 1)
	blkCount
)

// layout is the immutable address book for one Problem.
type layout struct {
	start  [blkCount]int
	size   [blkCount]int
	kind   [blkCount]VarKind
	prefix []int // sum of level counts of earlier criteria
	levels []int // level count per criterion
	critNo int
	total  int
}

//==============================================================================

// newLayout computes block sizes and offsets from the problem shape. All
// sizes are fixed here, before any constraint row exists, so every row is
// sized against the final variable count.
func newLayout(prb *Problem) *layout {

	ly := &layout{
		levels: prb.LevelNo,
		critNo: prb.CritNo,
		prefix: make([]int, prb.CritNo),
	}

	sumLevels := 0
	for j, n := range prb.LevelNo {
		ly.prefix[j] = sumLevels
		sumLevels += n
	}

	for b := block(0); b < blkCount; b++ {
		switch b {
		case blkPoints, blkGainShadow, blkCostShadow, blkPeakPick,
			blkStepDir, blkStepFlip, blkZeroPick, blkOnePick:
			ly.size[b] = sumLevels
		case blkIsCost, blkZeroEnd, blkBestEval, blkOneEnd:
			ly.size[b] = prb.CritNo
		case blkEpsilon:
			ly.size[b] = 1
		}

		switch b {
		case blkIsCost, blkPeakPick, blkStepDir, blkStepFlip,
			blkZeroEnd, blkZeroPick, blkOneEnd, blkOnePick:
			ly.kind[b] = Binary
		default:
			ly.kind[b] = Continuous
		}

		ly.start[b] = ly.total
		ly.total += ly.size[b]
	}

	return ly
}

//==============================================================================

// point returns the address of the variable for the given 1-based criterion
// and 1-based characteristic-point index inside a per-point block.
func (ly *layout) point(b block, crit, pt int) int {
	return ly.start[b] + ly.prefix[crit-1] + pt - 1
}

// crit returns the address of the variable for the given 1-based criterion
// inside a per-criterion block.
func (ly *layout) crit(b block, crit int) int {
	return ly.start[b] + crit - 1
}

// epsVar returns the address of the epsilon variable.
func (ly *layout) epsVar() int {
	return ly.start[blkEpsilon]
}

//==============================================================================

// kinds expands the per-block kinds into the per-variable vector the oracle
// expects.
func (ly *layout) kinds() []VarKind {
	out := make([]VarKind, ly.total)
	for b := block(0); b < blkCount; b++ {
		for i := 0; i < ly.size[b]; i++ {
			out[ly.start[b]+i] = ly.kind[b]
		}
	}
	return out
}
