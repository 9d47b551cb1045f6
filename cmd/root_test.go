package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cascade-sim/cascade-sim/sim"
	"github.com/cascade-sim/cascade-sim/sim/report"
)

func testOptions() runOptions {
	return runOptions{
		Scenario:   "both",
		Seed:       42,
		Population: 2_000,
		TraceLevel: "none",
	}
}

func TestRunOptions_Scenarios(t *testing.T) {
	tests := []struct {
		flag string
		want []sim.Scenario
	}{
		{"both", []sim.Scenario{sim.ScenarioA, sim.ScenarioB}},
		{"BOTH", []sim.Scenario{sim.ScenarioA, sim.ScenarioB}},
		{"A", []sim.Scenario{sim.ScenarioA}},
		{"b", []sim.Scenario{sim.ScenarioB}},
		{"unknown", []sim.Scenario{sim.ScenarioA}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, runOptions{Scenario: tt.flag}.scenarios(), "flag %q", tt.flag)
	}
}

func TestLoadParameters_DefaultsAndOverride(t *testing.T) {
	p, err := loadParameters("", 0)
	require.NoError(t, err)
	assert.Equal(t, sim.DefaultParameters().Population(), p.Population())

	p, err = loadParameters("", 123)
	require.NoError(t, err)
	assert.Equal(t, 123, p.Population())
}

func TestLoadParameters_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("population: 10\nnot_a_field: 1\n"), 0644))

	_, err := loadParameters(path, 0)
	assert.Error(t, err)
}

func TestRunCascade_WritesSummaryForBothScenarios(t *testing.T) {
	// GIVEN a small run of both scenarios
	var out bytes.Buffer

	// WHEN the run completes
	require.NoError(t, runCascade(context.Background(), testOptions(), &out))

	// THEN the summary lists both scenarios
	got := out.String()
	assert.True(t, strings.HasPrefix(got, "=== Cascade Summary ===\n"))
	assert.Contains(t, got, "population: 2000")
	assert.Contains(t, got, "scenario: A")
	assert.Contains(t, got, "scenario: B")
	assert.NotContains(t, got, "Replicate Summary")
}

func TestRunCascade_SameSeedSameOutput(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, runCascade(context.Background(), testOptions(), &a))
	require.NoError(t, runCascade(context.Background(), testOptions(), &b))

	// run_id is random per run; everything else must match
	stripRunID := func(s string) string {
		var kept []string
		for _, line := range strings.Split(s, "\n") {
			if !strings.HasPrefix(line, "run_id:") {
				kept = append(kept, line)
			}
		}
		return strings.Join(kept, "\n")
	}
	assert.Equal(t, stripRunID(a.String()), stripRunID(b.String()))
}

func TestRunCascade_OutputDirAndTraces(t *testing.T) {
	dir := t.TempDir()
	opts := testOptions()
	opts.OutputDir = filepath.Join(dir, "tables")
	opts.TraceLevel = "septic"
	opts.TraceDir = filepath.Join(dir, "traces")

	require.NoError(t, runCascade(context.Background(), opts, &bytes.Buffer{}))

	for _, name := range []string{report.FirstAssessmentFile, report.CoverageFile} {
		assert.FileExists(t, filepath.Join(opts.OutputDir, name))
	}
	for _, scenario := range []string{"A", "B"} {
		data, err := os.ReadFile(filepath.Join(opts.TraceDir, "trace_"+scenario+".csv"))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "index,birth_setting,has_sepsis"))
	}
}

func TestRunCascade_Replicates(t *testing.T) {
	opts := testOptions()
	opts.Scenario = "B"
	opts.Replicates = 3
	opts.Workers = 2
	var out bytes.Buffer

	require.NoError(t, runCascade(context.Background(), opts, &out))
	assert.Contains(t, out.String(), "=== Replicate Summary ===")
	assert.Contains(t, out.String(), "replicates: 3")
}

func TestRunCascade_InvalidOptions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*runOptions)
	}{
		{"trace level", func(o *runOptions) { o.TraceLevel = "verbose" }},
		{"negative replicates", func(o *runOptions) { o.Replicates = -1 }},
		{"missing params file", func(o *runOptions) { o.ParamsPath = "/does/not/exist.yaml" }},
		{"negative workers", func(o *runOptions) { o.Replicates = 2; o.Workers = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions()
			tt.mutate(&opts)
			assert.Error(t, runCascade(context.Background(), opts, &bytes.Buffer{}))
		})
	}
}

func TestOptionsFromViper_EnvOverridesFlagDefault(t *testing.T) {
	// GIVEN run flags bound into a fresh viper with the CASCADE prefix
	t.Setenv("CASCADE_SEED", "7")
	t.Setenv("CASCADE_OUTPUT_DIR", "out")
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	require.NoError(t, v.BindPFlags(runCmd.Flags()))

	// WHEN options are resolved
	opts := optionsFromViper(v)

	// THEN env wins over the flag default and untouched flags keep theirs
	assert.Equal(t, int64(7), opts.Seed)
	assert.Equal(t, "out", opts.OutputDir)
	assert.Equal(t, "both", opts.Scenario)
	assert.Equal(t, "none", opts.TraceLevel)
}

func TestWriteParameters_LoadableByRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeParameters(&buf, sim.DefaultParameterSpec()))

	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	p, err := loadParameters(path, 0)
	require.NoError(t, err)
	assert.Equal(t, sim.DefaultParameterSpec(), p.Spec())
}
