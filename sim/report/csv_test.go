package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cascade-sim/cascade-sim/sim"
)

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, Table{
		Header: []string{"a", "b"},
		Rows:   [][]string{{"1", "x,y"}},
	}))
	assert.Equal(t, "a,b\n1,\"x,y\"\n", buf.String())
}

func TestWriteTables_CreatesBothFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "outputs")
	a, b := fixture(sim.ScenarioA), fixture(sim.ScenarioB)

	require.NoError(t, WriteTables(dir, a, a, b))

	first, err := os.ReadFile(filepath.Join(dir, FirstAssessmentFile))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(first), "Site,Cases_per_1000\nHospital ward,25\n"))

	coverage, err := os.ReadFile(filepath.Join(dir, CoverageFile))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(coverage)), "\n")
	assert.Len(t, lines, 9)
	assert.Equal(t, "Scenario,Tier,Babies_tested_per_1000,Sepsis_detected_per_1000", lines[0])
}
