package orrery

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ExportTraceCSV samples an orbit from fromJD over the given number of days
// at the given step and writes one CSV record per sample: jd, date, x, y, z,
// r. Intended for plotting tools, never for the per-tick hot path.
func ExportTraceCSV(w io.Writer, el Elements, fromJD, days, step float64) error {
	if step <= 0 {
		return fmt.Errorf("step must be positive, got %f", step)
	}
	if days < 0 {
		return fmt.Errorf("days must be non-negative, got %f", days)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"jd", "date", "x", "y", "z", "r"}); err != nil {
		return err
	}
	for jd := fromJD; jd <= fromJD+days; jd += step {
		p := el.ResolveAt(jd)
		date, err := JulianToDate(jd)
		if err != nil {
			return err
		}
		rec := []string{
			fmt.Sprintf("%.6f", jd),
			date,
			fmt.Sprintf("%.8f", p.X),
			fmt.Sprintf("%.8f", p.Y),
			fmt.Sprintf("%.8f", p.Z),
			fmt.Sprintf("%.8f", p.R),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
