// Package cli implements the munkres command: it builds or loads a cost
// matrix, solves it and prints the cost matrix, the assignment pairs and the
// total cost.
package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/assign/hungarian"
	"github.com/katalvlaran/assign/matrix"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	defaultRows = 4
	defaultCols = 3
)

// options carries the parsed flag values of one command instance.
type options struct {
	seed      int64
	low       int
	high      int
	file      string
	epsilon   float64
	infPolicy string
	verbose   bool
}

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	if err := NewRootCommand(ctx, version).Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// NewRootCommand builds the munkres command. Output goes to cmd.OutOrStdout.
func NewRootCommand(ctx context.Context, version string) *cobra.Command {
	o := &options{}
	rootCmd := &cobra.Command{
		Use:           "munkres [rows cols]",
		Short:         "Solve a random (or loaded) rectangular assignment problem with the Hungarian method.",
		Args:          shapeArgs,
		RunE:          newRunSolve(ctx, o),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.Flags().Int64VarP(&o.seed, "seed", "s", 0, "random seed (0 uses a fixed default)")
	rootCmd.Flags().IntVar(&o.low, "low", 1, "smallest generated cost")
	rootCmd.Flags().IntVar(&o.high, "high", 50, "largest generated cost")
	rootCmd.Flags().StringVarP(&o.file, "file", "f", "", "path to a YAML file with a `cost:` matrix (overrides rows/cols)")
	rootCmd.Flags().Float64Var(&o.epsilon, "epsilon", hungarian.DefaultEpsilon, "zero tolerance for float costs")
	rootCmd.Flags().StringVar(&o.infPolicy, "inf-policy", hungarian.InfPenalty.String(), "replacement for non-finite costs: penalty|max")
	rootCmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "verbose output")

	return rootCmd
}

// shapeArgs accepts either no arguments or two positive integers.
func shapeArgs(_ *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 2 {
		return fmt.Errorf("expected 0 or 2 arguments (rows cols), got %d", len(args))
	}
	_, _, err := parseShape(args)

	return err
}

// parseShape returns the requested matrix shape, defaulting to 4×3.
func parseShape(args []string) (rows, cols int, err error) {
	if len(args) == 0 {
		return defaultRows, defaultCols, nil
	}
	if rows, err = strconv.Atoi(args[0]); err != nil || rows <= 0 {
		return 0, 0, fmt.Errorf("rows must be a positive integer, got %q", args[0])
	}
	if cols, err = strconv.Atoi(args[1]); err != nil || cols <= 0 {
		return 0, 0, fmt.Errorf("cols must be a positive integer, got %q", args[1])
	}

	return rows, cols, nil
}

// parseInfPolicy maps the --inf-policy flag onto a hungarian.InfPolicy.
func parseInfPolicy(name string) (hungarian.InfPolicy, error) {
	switch name {
	case hungarian.InfPenalty.String():
		return hungarian.InfPenalty, nil
	case hungarian.InfAsMax.String():
		return hungarian.InfAsMax, nil
	default:
		return 0, fmt.Errorf("unknown --inf-policy %q (want penalty or max)", name)
	}
}

func newRunSolve(ctx context.Context, o *options) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if o.verbose {
			log.SetLevel(log.DebugLevel)
		}

		policy, err := parseInfPolicy(o.infPolicy)
		if err != nil {
			return err
		}

		var cost *matrix.Dense[float64]
		if o.file != "" {
			log.Debugf("Reading cost matrix from %s", o.file)
			if cost, err = loadCostFile(o.file); err != nil {
				return err
			}
		} else {
			rows, cols, err := parseShape(args)
			if err != nil {
				return err
			}
			log.Debugf("Generating %dx%d costs in [%d, %d]", rows, cols, o.low, o.high)
			if cost, err = generateCost(rows, cols, o.seed, o.low, o.high); err != nil {
				return err
			}
		}

		if err = ctx.Err(); err != nil {
			return err
		}

		opts := []hungarian.Option{
			hungarian.WithEpsilon(o.epsilon),
			hungarian.WithInfPolicy(policy),
		}
		if o.verbose {
			opts = append(opts, hungarian.WithOnStep(func(step hungarian.Step, covered int) {
				log.WithFields(log.Fields{"step": step.String(), "covered": covered}).Debug("solver step")
			}))
		}

		pairs, err := hungarian.Solve[float64](cost, opts...)
		if err != nil {
			return err
		}
		total, err := hungarian.TotalCost[float64](cost, pairs)
		if err != nil {
			return err
		}
		log.Debugf("Solved %dx%d with %d pairs", cost.Rows(), cost.Cols(), len(pairs))

		return render(cmd.OutOrStdout(), cost, pairs, total)
	}
}
