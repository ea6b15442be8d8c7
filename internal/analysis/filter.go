package analysis

import (
	"energy-history/internal/model"
)

// FilterRange returns the records whose timestamp falls inside the closed
// window [start 00:00:00, end 23:59:59], preserving dataset order.
//
// An inverted range (start day after end day) is a valid-but-vacuous query and
// yields an empty result; the caller presents that as "no data", not an error.
func FilterRange(records []model.Record, r model.DateRange) []model.Record {
	if r.Inverted() {
		return nil
	}
	out := make([]model.Record, 0, len(records))
	for _, rec := range records {
		if r.Contains(rec.Time) {
			out = append(out, rec)
		}
	}
	return out
}
