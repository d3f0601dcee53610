/*
Package utaum implements UTA-GMS style preference disaggregation: given a set
of alternatives evaluated on multiple criteria and a decision-maker's pairwise
judgments (strict preference, weak preference, indifference), it compiles a
mixed linear/integer program whose feasible region is exactly the set of
additive piecewise-linear value functions compatible with those judgments,
enumerates structurally different compatible functions, and classifies the
possible and necessary outranking relations between alternatives.

Some of the main capabilities include:
  - building and validating a decision problem from the raw evaluation table
    and judgment lists
  - compiling per-criterion constraint families for six monotonicity
    assumptions (GAIN, COST, NOT_PREDEFINED, A_TYPE, V_TYPE, NON_MON)
  - solving the program through a pluggable LP/MIP oracle, with a pure-Go
    backend bundled in the mip package
  - recovering marginal value functions, resolved criterion directions, and
    additive values from each solution
  - deriving possible and necessary relations over all enumerated solutions

Building a Problem

A problem is constructed once from the alternatives table, the shape tag of
every criterion, the big-M and epsilon parameters, and the three judgment
lists. All validation happens at construction: malformed tables, out-of-range
parameters, and contradictory judgments are rejected before any model exists.

	prb, err := utaum.BuildProblem(alternatives, shapes, 100, 0.05,
		strict, weak, indiff)
	if err != nil {
		return err
	}

Solving and Analysis

The SolveProb function compiles the problem, enumerates compatible value
functions, and fills in the result structure. For example:

	var ctrl   utaum.Ctrl
	var result utaum.Result

	ctrl.MaxSolutions = 10

	if err := utaum.SolveProb(prb, ctrl, &result); err != nil {
		fmt.Printf("utaum returned the following error: %s\n", err)
		return
	}

The result holds one row per compatible function (resolved criterion types
and additive values), plus the possible and necessary relation sets over all
ordered alternative pairs. Callers wanting one function at a time can use
NewEnumerator and Next directly.

Interacting with Other Solvers

The Ctrl structure accepts any implementation of the Oracle interface, so the
compiled program can be handed to an external solver instead of the bundled
one. The adapter normalizes all strict inequalities against the epsilon
margin before the oracle sees them, so a backend only ever deals with
non-strict rows.

Tutorial and Function Exerciser

The utarun executable provided with the package reads a problem from a YAML
file, runs the full analysis, and prints the relations and the recovered
marginal value functions.
*/
package utaum
