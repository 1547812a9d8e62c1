// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/powerpca/internal/config"
	"github.com/katalvlaran/powerpca/internal/telemetry"
	"github.com/katalvlaran/powerpca/matrix"
	"github.com/katalvlaran/powerpca/pca"
	"github.com/katalvlaran/powerpca/tableio"
)

// app holds flag values and the logger shared by every subcommand.
type app struct {
	stderr io.Writer
	log    zerolog.Logger

	configPath string
	logLevel   string
	metricsOut string

	basisOut     string
	projectedOut string
	components   int
	tolerance    float64
	maxIter      int
	threshold    float64

	projectOut        string
	projectComponents int
}

func newApp(stderr io.Writer) *app {
	log, _ := telemetry.NewLogger("info", stderr)

	return &app{stderr: stderr, log: log}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "powerpca <input.csv>",
		Short: "Build a PCA basis with power iteration and project the input onto it",
		Long: `powerpca reads a numeric CSV table (header optional), builds its principal
component basis with power iteration and deflation, and writes two files:
the basis (one row per variable) and the projected table.

Files ending in .zst, .gz or .lz4 are compressed transparently.`,
		Args:              cobra.ExactArgs(1),
		SilenceErrors:     true,
		PersistentPreRunE: a.setupLogger,
		RunE:              a.runFit,
	}
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	pf.StringVar(&a.metricsOut, "metrics-out", "", "write Prometheus text metrics to this file")

	def := config.Default()
	f := root.Flags()
	f.StringVar(&a.basisOut, "basis-out", def.Output.Basis, "basis output file")
	f.StringVar(&a.projectedOut, "projected-out", def.Output.Projected, "projected table output file")
	f.IntVarP(&a.components, "components", "k", def.Output.Components, "keep only the first K components in the projection (0 = all)")
	f.Float64Var(&a.tolerance, "tolerance", def.Solver.ConvergenceTolerance, "power-iteration convergence tolerance")
	f.IntVar(&a.maxIter, "max-iterations", def.Solver.MaxIterations, "power-iteration cap per component")
	f.Float64Var(&a.threshold, "deflation-threshold", def.Solver.DeflationThreshold, "stop extracting once max |covariance| drops below this")

	root.AddCommand(a.projectCmd())

	return root
}

func (a *app) projectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project <basis.csv> <input.csv>",
		Short: "Project a table onto a previously saved basis",
		Args:  cobra.ExactArgs(2),
		RunE:  a.runProject,
	}
	cmd.Flags().StringVarP(&a.projectOut, "out", "o", "projected.csv", "projected table output file")
	cmd.Flags().IntVarP(&a.projectComponents, "components", "k", 0, "keep only the first K components (0 = all)")

	return cmd
}

func (a *app) setupLogger(*cobra.Command, []string) error {
	log, err := telemetry.NewLogger(a.logLevel, a.stderr)
	if err != nil {
		return err
	}
	a.log = log

	return nil
}

// resolveConfig layers explicitly set flags over the config file over the defaults.
func (a *app) resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return config.Config{}, err
		}
	}
	a.applyFlags(cmd.Flags(), &cfg)

	return cfg, cfg.Validate()
}

func (a *app) applyFlags(f *pflag.FlagSet, cfg *config.Config) {
	if f.Changed("basis-out") {
		cfg.Output.Basis = a.basisOut
	}
	if f.Changed("projected-out") {
		cfg.Output.Projected = a.projectedOut
	}
	if f.Changed("components") {
		cfg.Output.Components = a.components
	}
	if f.Changed("tolerance") {
		cfg.Solver.ConvergenceTolerance = a.tolerance
	}
	if f.Changed("max-iterations") {
		cfg.Solver.MaxIterations = a.maxIter
	}
	if f.Changed("deflation-threshold") {
		cfg.Solver.DeflationThreshold = a.threshold
	}
}

func (a *app) runFit(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := a.resolveConfig(cmd)
	if err != nil {
		return err
	}
	table, err := a.readTable(args[0])
	if err != nil {
		return err
	}

	observers := pca.MultiObserver{telemetry.LogObserver{Log: a.log}}
	var metrics *telemetry.MetricsObserver
	if a.metricsOut != "" {
		metrics = telemetry.NewMetricsObserver()
		observers = append(observers, metrics)
	}

	model := pca.NewModel(append(cfg.Options(), pca.WithObserver(observers))...)
	if err = model.Fit(table.Data); err != nil {
		return err
	}
	basis, err := model.Basis()
	if err != nil {
		return err
	}
	a.log.Info().
		Int("found", basis.Found()).
		Int("columns", basis.Len()).
		Floats64("explained_variance_ratio", basis.ExplainedVarianceRatio()).
		Msg("basis built")

	if err = a.writeMatrix("basis", cfg.Output.Basis, basis.Matrix()); err != nil {
		return err
	}
	if err = a.project(model, table.Data, cfg.Output.Components, cfg.Output.Projected); err != nil {
		return err
	}
	if metrics != nil {
		if err = metrics.WriteTextfile(a.metricsOut); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		a.log.Debug().Str("path", a.metricsOut).Msg("metrics written")
	}

	return nil
}

func (a *app) runProject(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	data, err := tableio.ReadMatrixFile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", pca.ErrInvalidInput, err)
	}
	model := pca.NewModel()
	if err = model.LoadBasis(data); err != nil {
		return err
	}
	a.log.Info().
		Str("basis", args[0]).
		Int("columns", data.Cols()).
		Str("fingerprint", fingerprint(data)).
		Msg("basis loaded")

	table, err := a.readTable(args[1])
	if err != nil {
		return err
	}

	return a.project(model, table.Data, a.projectComponents, a.projectOut)
}

func (a *app) readTable(path string) (*tableio.Table, error) {
	table, err := tableio.ReadTableFile(path)
	if err != nil {
		return nil, err
	}
	a.log.Info().
		Str("input", path).
		Int("rows", table.Data.Rows()).
		Int("columns", table.Data.Cols()).
		Bool("header", table.Header != nil).
		Msg("table loaded")

	return table, nil
}

// project writes X projected onto the first k components (all when k == 0).
func (a *app) project(model *pca.Model, X matrix.Matrix, k int, path string) error {
	var (
		projected *matrix.Dense
		err       error
	)
	if k > 0 {
		projected, err = model.ProjectComponents(X, k)
	} else {
		projected, err = model.Project(X)
	}
	if err != nil {
		return err
	}

	return a.writeMatrix("projected", path, projected)
}

func (a *app) writeMatrix(kind, path string, m matrix.Matrix) error {
	if err := tableio.WriteMatrixFile(path, m); err != nil {
		return err
	}
	a.log.Info().
		Str("path", path).
		Str("codec", tableio.CodecFor(path).Name()).
		Int("rows", m.Rows()).
		Int("cols", m.Cols()).
		Str("fingerprint", fingerprint(m)).
		Msgf("%s written", kind)

	return nil
}

func fingerprint(m matrix.Matrix) string {
	return fmt.Sprintf("%016x", tableio.Fingerprint(m))
}
