// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algebra/config"
	"github.com/katalvlaran/algebra/logging"
	"github.com/katalvlaran/algebra/matrix"
)

// defaultConfigFile is read when --config is not given; a missing default
// file means "no matrices, default settings".
const defaultConfigFile = "algebra.yaml"

// app holds the state shared by every subcommand of one invocation.
type app struct {
	// Global flags
	cfgFile     string
	verbose     bool
	showMetrics bool

	cfg      *config.Config
	engine   *matrix.Engine
	registry *prometheus.Registry
}

// newRootCmd builds the full command tree with fresh state.
func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "algebra",
		Short: "Dense matrix algebra over matrices defined in YAML",
		Long: `Algebra evaluates dense matrix operations (sum, difference, product,
scaling, transpose, determinant, inverse, rank and trace) over named
matrices loaded from a YAML configuration file.

Failed preconditions are reported as structured log records on stderr;
results are printed in a fixed-width report on stdout.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !a.showMetrics {
				return nil
			}
			return writeMetrics(cmd.OutOrStdout(), a.registry)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", defaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every operation at debug level")
	rootCmd.PersistentFlags().BoolVar(&a.showMetrics, "metrics", false, "print operation metrics after the command")

	rootCmd.AddCommand(
		newBinaryCmd(a, "add", "Element-wise sum A + B", (*matrix.Engine).Add),
		newBinaryCmd(a, "sub", "Element-wise difference A - B", (*matrix.Engine).Sub),
		newBinaryCmd(a, "mul", "Matrix product A × B", (*matrix.Engine).Mul),
		newUnaryCmd(a, "transpose", "Transpose of A", (*matrix.Engine).Transpose),
		newUnaryCmd(a, "inv", "Inverse of A by the adjugate method", (*matrix.Engine).Inverse),
		newScaleCmd(a),
		newScalarCmd(a, "det", "Determinant of A by cofactor expansion", (*matrix.Engine).Det),
		newScalarCmd(a, "trace", "Sum of the main diagonal of A", (*matrix.Engine).Trace),
		newRankCmd(a),
		newShowCmd(a),
		newCheckCmd(a),
		newListCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the configuration and wires logger, metrics and engine.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(a.cfgFile)
	if err != nil {
		if cmd.Flags().Changed("config") || !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		cfg = config.NewDefault()
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err := logging.New(cfg.LoggerConfig(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	a.registry = prometheus.NewRegistry()
	metrics, err := matrix.NewMetrics(a.registry)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	opts := append(cfg.EngineOptions(),
		matrix.WithLogger(logger),
		matrix.WithOutput(cmd.OutOrStdout()),
		matrix.WithMetrics(metrics),
	)
	a.cfg = cfg
	a.engine = matrix.NewEngine(opts...)

	return nil
}

// matrices resolves every name to a configured matrix.
func (a *app) matrices(names ...string) ([]*matrix.Dense, error) {
	out := make([]*matrix.Dense, 0, len(names))
	for _, name := range names {
		m, err := a.cfg.Matrix(name)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, nil
}

// writeMetrics prints every gathered counter and histogram sample count.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := formatLabels(m.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				fmt.Fprintf(w, "%s%s %g\n", mf.GetName(), labels, m.GetCounter().GetValue())
			case dto.MetricType_HISTOGRAM:
				fmt.Fprintf(w, "%s_count%s %d\n", mf.GetName(), labels, m.GetHistogram().GetSampleCount())
			}
		}
	}

	return nil
}

// formatLabels renders label pairs as {k="v",...}, sorted by name.
func formatLabels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", p.GetName(), p.GetValue()))
	}
	sort.Strings(parts)

	return "{" + strings.Join(parts, ",") + "}"
}
