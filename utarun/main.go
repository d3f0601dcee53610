//==============================================================================
// utarun: Executable for running utaum preference-disaggregation analyses
//
// The program reads a decision problem from a YAML file, runs the full
// analysis with the bundled solver, and prints the enumerated compatible
// value functions and the possible/necessary relations.

package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	utaum "github.com/jakubwasikowski/uta-um"
)

var (
	verbose      bool
	maxSolutions int

	logger *zap.Logger
)

// problemFile mirrors the YAML layout of a problem definition.
type problemFile struct {
	Alternatives [][]float64 `yaml:"alternatives"`
	Shapes       []string    `yaml:"shapes"`
	M            float64     `yaml:"m"`
	Eps          float64     `yaml:"eps"`
	Strict       [][2]int    `yaml:"strict"`
	Weak         [][2]int    `yaml:"weak"`
	Indifferent  [][2]int    `yaml:"indifferent"`
}

var rootCmd = &cobra.Command{
	Use:   "utarun",
	Short: "UTA-GMS preference disaggregation runner",
	Long: `utarun runs a UTA-GMS preference disaggregation analysis: it loads a
decision problem from a YAML file, enumerates the additive value functions
compatible with the stated judgments, and reports the possible and necessary
outranking relations between alternatives.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg = zap.NewDevelopmentConfig()
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		utaum.SetLogger(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var solveCmd = &cobra.Command{
	Use:   "solve [problem file]",
	Short: "Solve a problem file and print relations",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

//==============================================================================

// loadProblem reads and validates the YAML problem file.
// In case of failure, it returns an error.
func loadProblem(path string) (*utaum.Problem, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	var pf problemFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}

	shapes := make([]utaum.Shape, len(pf.Shapes))
	for i, s := range pf.Shapes {
		shapes[i] = utaum.Shape(s)
	}

	toPairs := func(raw [][2]int) []utaum.Pair {
		out := make([]utaum.Pair, len(raw))
		for i, pr := range raw {
			out[i] = utaum.Pair{A: pr[0], B: pr[1]}
		}
		return out
	}

	return utaum.BuildProblem(pf.Alternatives, shapes, pf.M, pf.Eps,
		toPairs(pf.Strict), toPairs(pf.Weak), toPairs(pf.Indifferent))
}

//==============================================================================

// runSolve executes the solve subcommand.
// In case of failure, it returns an error.
func runSolve(cmd *cobra.Command, args []string) error {

	prb, err := loadProblem(args[0])
	if err != nil {
		return err
	}

	var ctrl utaum.Ctrl
	var result utaum.Result

	ctrl.MaxSolutions = maxSolutions

	if err := utaum.SolveProb(prb, ctrl, &result); err != nil {
		return err
	}

	printResult(prb, &result)
	return nil
}

//==============================================================================

func main() {
	solveCmd.Flags().IntVar(&maxSolutions, "max-solutions", 0,
		"cap on enumerated compatible value functions (0 = default)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
	rootCmd.AddCommand(solveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "utarun: %s\n", err)
		os.Exit(1)
	}
}
