package analysis

import (
	"math"

	"energy-history/internal/model"
)

// ComputeMetrics derives the insight summary from an already-filtered set of
// records. Pure function: empty input yields NaN max power, zero deltas and an
// empty correlation matrix rather than an error.
func ComputeMetrics(records []model.Record) model.DerivedMetrics {
	m := model.DerivedMetrics{
		Rows:     len(records),
		MaxPower: math.NaN(),
	}

	for _, rec := range records {
		if v := rec.PowerW; !math.IsNaN(v) {
			if math.IsNaN(m.MaxPower) || v > m.MaxPower {
				m.MaxPower = v
			}
		}
	}

	m.TotalEnergyDelta, m.EnergyResets = counterDelta(records, model.ColEnergy)
	m.TotalCostDelta, m.CostResets = counterDelta(records, model.ColCost)
	m.Correlation = Correlate(records)
	return m
}

// counterDelta subtracts the first parseable value of a cumulative counter
// from the last. With fewer than two parseable values the delta is 0. resets
// counts negative successive differences: a meter reset or rollover inside the
// window, which can legitimately drive the delta negative.
func counterDelta(records []model.Record, col string) (delta float64, resets int) {
	var vals []float64
	for _, rec := range records {
		if v := rec.Value(col); !math.IsNaN(v) {
			vals = append(vals, v)
		}
	}
	if len(vals) < 2 {
		return 0, 0
	}
	for i := 1; i < len(vals); i++ {
		if vals[i] < vals[i-1] {
			resets++
		}
	}
	return vals[len(vals)-1] - vals[0], resets
}

// Correlate builds the pairwise Pearson matrix over the numeric columns,
// restricted per pair to rows where both cells parsed. The matrix is symmetric
// by construction; diagonal entries are 1 where the column has nonzero
// variance and NaN otherwise.
func Correlate(records []model.Record) model.CorrelationMatrix {
	cols := model.NumericColumns
	n := len(cols)
	mat := make([][]float64, n)
	for i := range mat {
		mat[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		mat[i][i] = math.NaN()
		if columnVariance(records, cols[i]) > 0 {
			mat[i][i] = 1.0
		}
		for j := i + 1; j < n; j++ {
			c := pearson(records, cols[i], cols[j])
			mat[i][j] = c
			mat[j][i] = c
		}
	}

	return model.CorrelationMatrix{
		Columns: append([]string(nil), cols...),
		Matrix:  mat,
	}
}

func columnVariance(records []model.Record, col string) float64 {
	var sum, sumSq float64
	var n int
	for _, rec := range records {
		v := rec.Value(col)
		if math.IsNaN(v) {
			continue
		}
		sum += v
		sumSq += v * v
		n++
	}
	if n < 2 {
		return 0
	}
	mean := sum / float64(n)
	return sumSq/float64(n) - mean*mean
}

func pearson(records []model.Record, colA, colB string) float64 {
	var xs, ys []float64
	for _, rec := range records {
		x, y := rec.Value(colA), rec.Value(colB)
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	n := float64(len(xs))
	if n < 2 {
		return math.NaN()
	}

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range xs {
		dx, dy := xs[i]-meanX, ys[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return math.NaN()
	}
	return cov / math.Sqrt(varX*varY)
}
