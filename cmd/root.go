package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/cascade-sim/cascade-sim/sim"
	"github.com/cascade-sim/cascade-sim/sim/report"
	"github.com/cascade-sim/cascade-sim/sim/sweep"
	"github.com/cascade-sim/cascade-sim/sim/trace"
)

// envPrefix lets every run flag be set from the environment, e.g. CASCADE_SEED.
const envPrefix = "CASCADE"

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "cascade-sim",
	Short: "Monte-Carlo simulator of the neonatal sepsis care cascade",
}

// runOptions carries everything a run needs once flags and env are resolved.
type runOptions struct {
	Scenario   string // "A", "B" or "both"
	Seed       int64
	ParamsPath string // empty = built-in defaults
	Population int    // 0 = keep the parameter file's population
	OutputDir  string
	TraceLevel string
	TraceDir   string
	Replicates int
	Workers    int
}

// optionsFromViper reads run options after flags and CASCADE_* env vars are merged.
func optionsFromViper(v *viper.Viper) runOptions {
	return runOptions{
		Scenario:   v.GetString("scenario"),
		Seed:       v.GetInt64("seed"),
		ParamsPath: v.GetString("params"),
		Population: v.GetInt("population"),
		OutputDir:  v.GetString("output-dir"),
		TraceLevel: v.GetString("trace-level"),
		TraceDir:   v.GetString("trace-dir"),
		Replicates: v.GetInt("replicates"),
		Workers:    v.GetInt("workers"),
	}
}

// scenarios resolves the --scenario flag. "both" runs A then B; any other
// value goes through sim.ParseScenario, so unknown names run scenario A.
func (o runOptions) scenarios() []sim.Scenario {
	if strings.EqualFold(o.Scenario, "both") {
		return []sim.Scenario{sim.ScenarioA, sim.ScenarioB}
	}
	return []sim.Scenario{sim.ParseScenario(o.Scenario)}
}

// loadParameters returns the built-in defaults or the parameter file at path,
// with an optional population override.
func loadParameters(path string, population int) (sim.Parameters, error) {
	params := sim.DefaultParameters()
	if path != "" {
		p, err := sim.LoadParameters(path)
		if err != nil {
			return sim.Parameters{}, err
		}
		params = p
	}
	if population > 0 {
		return params.WithPopulation(population)
	}
	return params, nil
}

// runCascade executes the configured scenarios and writes the summary to out.
func runCascade(ctx context.Context, opts runOptions, out io.Writer) error {
	if !trace.IsValidTraceLevel(opts.TraceLevel) {
		return fmt.Errorf("unknown trace level %q; valid: none, septic, individuals", opts.TraceLevel)
	}
	if opts.Replicates < 0 {
		return fmt.Errorf("replicates must be non-negative, got %d", opts.Replicates)
	}

	params, err := loadParameters(opts.ParamsPath, opts.Population)
	if err != nil {
		return fmt.Errorf("loading parameters: %w", err)
	}
	logrus.Infof("Simulating %d births, seed=%d, scenarios=%v", params.Population(), opts.Seed, opts.scenarios())

	traceCfg := trace.TraceConfig{Level: trace.TraceLevel(opts.TraceLevel)}
	var results []*sim.Result
	for _, scenario := range opts.scenarios() {
		result, cohort := sim.SimulateScenario(scenario, opts.Seed, params)
		results = append(results, result)

		if ct := sim.RecordCohort(cohort, scenario, opts.Seed, traceCfg); ct != nil {
			if err := writeTrace(opts.TraceDir, ct); err != nil {
				return err
			}
		}
	}

	if err := report.NewSummary(opts.Seed, params, results...).Write(out); err != nil {
		return err
	}

	if opts.OutputDir != "" {
		if err := report.WriteTables(opts.OutputDir, results[0], results...); err != nil {
			return fmt.Errorf("writing tables: %w", err)
		}
		logrus.Infof("Tables written to %s", opts.OutputDir)
	}

	if opts.Replicates > 0 {
		return runReplicates(ctx, opts, params, out)
	}
	return nil
}

// runReplicates sweeps seeds [Seed, Seed+Replicates) for every scenario.
func runReplicates(ctx context.Context, opts runOptions, params sim.Parameters, out io.Writer) error {
	seeds := sweep.SeedRange(opts.Seed, opts.Replicates)
	summaries := make([]sweep.Summary, 0, len(opts.scenarios()))
	for _, scenario := range opts.scenarios() {
		results, err := sweep.Run(ctx, sweep.Config{
			Scenario: scenario,
			Seeds:    seeds,
			Params:   params,
			Workers:  opts.Workers,
		})
		if err != nil {
			return err
		}
		summaries = append(summaries, sweep.Summarize(scenario, results))
	}
	data, err := yaml.Marshal(summaries)
	if err != nil {
		return fmt.Errorf("marshalling replicate summary: %w", err)
	}
	_, err = fmt.Fprintf(out, "=== Replicate Summary ===\n%s", data)
	return err
}

func writeTrace(dir string, ct *trace.CohortTrace) (err error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating trace directory: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("trace_%s.csv", ct.Scenario))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating trace file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	if err := trace.WriteCSV(f, ct); err != nil {
		return fmt.Errorf("writing trace %s: %w", path, err)
	}
	logrus.Infof("Trace (%d records) written to %s", len(ct.Records), path)
	return nil
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the cascade simulation",
	Run: func(cmd *cobra.Command, args []string) {
		logLevel := runViper.GetString("log")
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if err := runCascade(cmd.Context(), optionsFromViper(runViper), os.Stdout); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// runViper merges run flags with CASCADE_* environment variables.
var runViper = viper.New()

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().String("scenario", "both", "Scenario to run: A (no screen), B (birth screen) or both")
	runCmd.Flags().Int64("seed", 42, "Seed for the random number streams")
	runCmd.Flags().String("params", "", "Path to a parameter YAML file (default: built-in parameters)")
	runCmd.Flags().Int("population", 0, "Override the number of simulated births (0 = use parameters)")
	runCmd.Flags().String("log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().String("output-dir", "", "Directory for CSV tables (empty = no tables)")
	runCmd.Flags().String("trace-level", "none", "Per-individual trace: none, septic, individuals")
	runCmd.Flags().String("trace-dir", "", "Directory for trace CSV files (default: current directory)")
	runCmd.Flags().Int("replicates", 0, "Also run this many consecutive seeds and summarize their spread")
	runCmd.Flags().Int("workers", 0, "Parallel workers for replicates (0 = GOMAXPROCS)")

	runViper.SetEnvPrefix(envPrefix)
	runViper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	runViper.AutomaticEnv()
	if err := runViper.BindPFlags(runCmd.Flags()); err != nil {
		logrus.Fatalf("binding flags: %v", err)
	}

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
