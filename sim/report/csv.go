package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/cascade-sim/cascade-sim/sim"
)

// Output file names written by WriteTables.
const (
	FirstAssessmentFile = "table_first_assessment.csv"
	CoverageFile        = "table_diagnostic_coverage.csv"
)

// WriteCSV writes t with its header row.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("writing rows: %w", err)
	}
	return nil
}

// WriteTables writes the first-assessment table for noScreen and the
// coverage table for every result into dir, creating it if needed.
func WriteTables(dir string, noScreen *sim.Result, results ...*sim.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := writeFile(filepath.Join(dir, FirstAssessmentFile), FirstAssessmentTable(noScreen)); err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, CoverageFile), CoverageTable(results...))
}

func writeFile(path string, t Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, closeErr)
		}
	}()
	if err := WriteCSV(f, t); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	logrus.Debugf("wrote %s", path)
	return nil
}
