package trace

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

var csvHeader = []string{
	"index", "birth_setting", "has_sepsis", "screened", "risk_factor_positive",
	"discharge_hours", "onset_hours", "assessment_site",
}

// WriteCSV writes one row per record. Undefined hours are written as empty cells.
func WriteCSV(w io.Writer, ct *CohortTrace) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing trace header: %w", err)
	}
	if ct != nil {
		for _, r := range ct.Records {
			row := []string{
				strconv.Itoa(r.Index),
				r.BirthSetting,
				strconv.FormatBool(r.HasSepsis),
				strconv.FormatBool(r.Screened),
				strconv.FormatBool(r.RiskFactorPositive),
				formatHours(r.DischargeHours),
				formatHours(r.OnsetHours),
				r.Site,
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing trace record %d: %w", r.Index, err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatHours(h *float64) string {
	if h == nil {
		return ""
	}
	return strconv.FormatFloat(*h, 'f', 4, 64)
}
