package analysis

import (
	"math"
	"sort"

	"energy-history/internal/model"
)

// ColumnSummary is the per-column descriptive block of the summary table.
// Fields other than Count are NaN when too few values parsed to define them.
type ColumnSummary struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	P25    float64
	P50    float64
	P75    float64
	Max    float64
}

// Describe computes summary statistics for every numeric column over its
// parseable values.
func Describe(records []model.Record) []ColumnSummary {
	out := make([]ColumnSummary, 0, len(model.NumericColumns))
	for _, col := range model.NumericColumns {
		out = append(out, describeColumn(records, col))
	}
	return out
}

func describeColumn(records []model.Record, col string) ColumnSummary {
	s := ColumnSummary{
		Column: col,
		Mean:   math.NaN(),
		Std:    math.NaN(),
		Min:    math.NaN(),
		P25:    math.NaN(),
		P50:    math.NaN(),
		P75:    math.NaN(),
		Max:    math.NaN(),
	}

	var vals []float64
	var sum float64
	for _, rec := range records {
		if v := rec.Value(col); !math.IsNaN(v) {
			vals = append(vals, v)
			sum += v
		}
	}
	s.Count = len(vals)
	if s.Count == 0 {
		return s
	}

	sort.Float64s(vals)
	s.Mean = sum / float64(s.Count)
	s.Min = vals[0]
	s.Max = vals[len(vals)-1]
	s.P25 = percentileSorted(vals, 0.25)
	s.P50 = percentileSorted(vals, 0.50)
	s.P75 = percentileSorted(vals, 0.75)

	if s.Count > 1 {
		var sq float64
		for _, v := range vals {
			d := v - s.Mean
			sq += d * d
		}
		// sample standard deviation
		s.Std = math.Sqrt(sq / float64(s.Count-1))
	}
	return s
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
