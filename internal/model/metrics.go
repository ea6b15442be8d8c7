package model

import "math"

// CorrelationMatrix holds pairwise Pearson coefficients over the numeric
// columns. Matrix[i][j] corresponds to Columns[i] vs Columns[j]; entries are
// NaN where the coefficient is undefined (zero variance or fewer than two
// pairwise-complete rows).
type CorrelationMatrix struct {
	Columns []string
	Matrix  [][]float64
}

// At returns the coefficient for a named column pair, NaN for unknown names.
func (m CorrelationMatrix) At(a, b string) float64 {
	ia, ib := -1, -1
	for i, c := range m.Columns {
		if c == a {
			ia = i
		}
		if c == b {
			ib = i
		}
	}
	if ia < 0 || ib < 0 {
		return math.NaN()
	}
	return m.Matrix[ia][ib]
}

// DerivedMetrics is the insight summary computed over a filtered dataset.
//
// TotalEnergyDelta and TotalCostDelta subtract the first parseable value of the
// cumulative counter from the last; with fewer than two parseable values they
// are 0. MaxPower is NaN when no row has a parseable power reading.
//
// EnergyResets and CostResets count negative successive differences in the
// respective counters. A healthy meter never decreases, so a nonzero count
// flags a reset or rollover in the window; the deltas themselves are reported
// as computed, without clamping.
type DerivedMetrics struct {
	Rows int

	MaxPower         float64
	TotalEnergyDelta float64
	TotalCostDelta   float64

	EnergyResets int
	CostResets   int

	Correlation CorrelationMatrix
}
