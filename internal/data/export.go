package data

import (
	"encoding/csv"
	"math"
	"os"
	"strconv"
	"time"

	"energy-history/internal/model"
)

// WriteHistoryCSV writes records back out in the canonical log format. Cells
// that were unparseable on load (NaN) are written empty so a round trip keeps
// them absent rather than inventing values.
func WriteHistoryCSV(path string, records []model.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(model.RequiredColumns); err != nil {
		return err
	}

	for _, rec := range records {
		row := []string{
			fmtTime(rec.Time),
			fmtFloat(rec.CurrentMA),
			fmtFloat(rec.VoltageV),
			fmtFloat(rec.PowerW),
			fmtFloat(rec.EnergyKWh),
			fmtFloat(rec.CostBDT),
			fmtFloat(rec.DurationMin),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

func fmtFloat(x float64) string {
	if math.IsNaN(x) {
		return ""
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
