package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"energy-history/internal/model"
)

func TestCounterDeltas(t *testing.T) {
	t.Run("Last Minus First", func(t *testing.T) {
		records := []model.Record{
			rec("2024-05-01 10:00:00", 1.0),
			rec("2024-05-01 11:00:00", 1.5),
			rec("2024-05-01 12:00:00", 2.25),
		}
		m := ComputeMetrics(records)
		assert.InDelta(t, 1.25, m.TotalEnergyDelta, 1e-9)
		assert.InDelta(t, 1.25*8.5, m.TotalCostDelta, 1e-9)
		assert.Equal(t, 0, m.EnergyResets)
	})

	t.Run("Fewer Than Two Parseable Values", func(t *testing.T) {
		one := []model.Record{rec("2024-05-01 10:00:00", 1.0)}
		m := ComputeMetrics(one)
		assert.Equal(t, 0.0, m.TotalEnergyDelta)
		assert.Equal(t, 0.0, m.TotalCostDelta)

		r1 := rec("2024-05-01 10:00:00", 1.0)
		r2 := rec("2024-05-01 11:00:00", 0)
		r2.EnergyKWh = math.NaN()
		m = ComputeMetrics([]model.Record{r1, r2})
		assert.Equal(t, 0.0, m.TotalEnergyDelta, "one parseable value is not enough")
	})

	t.Run("NaN Values Skipped", func(t *testing.T) {
		r1 := rec("2024-05-01 10:00:00", 1.0)
		r2 := rec("2024-05-01 11:00:00", 0)
		r2.EnergyKWh = math.NaN()
		r3 := rec("2024-05-01 12:00:00", 3.0)
		m := ComputeMetrics([]model.Record{r1, r2, r3})
		assert.InDelta(t, 2.0, m.TotalEnergyDelta, 1e-9)
	})

	t.Run("Meter Reset Flagged Not Clamped", func(t *testing.T) {
		records := []model.Record{
			rec("2024-05-01 10:00:00", 5.0),
			rec("2024-05-01 11:00:00", 0.5), // reset
			rec("2024-05-01 12:00:00", 1.0),
		}
		m := ComputeMetrics(records)
		assert.InDelta(t, -4.0, m.TotalEnergyDelta, 1e-9)
		assert.Equal(t, 1, m.EnergyResets)
	})
}

func TestMaxPower(t *testing.T) {
	records := []model.Record{
		rec("2024-05-01 10:00:00", 1.0),
		rec("2024-05-01 11:00:00", 1.1),
	}
	records[0].PowerW = 12.5
	records[1].PowerW = 48.25
	m := ComputeMetrics(records)
	assert.Equal(t, 48.25, m.MaxPower)

	t.Run("Absent When Nothing Parseable", func(t *testing.T) {
		r := rec("2024-05-01 10:00:00", 1.0)
		r.PowerW = math.NaN()
		m := ComputeMetrics([]model.Record{r})
		assert.True(t, math.IsNaN(m.MaxPower))
	})
}

func TestComputeMetricsEmptyInput(t *testing.T) {
	m := ComputeMetrics(nil)
	assert.Equal(t, 0, m.Rows)
	assert.True(t, math.IsNaN(m.MaxPower))
	assert.Equal(t, 0.0, m.TotalEnergyDelta)
	assert.Equal(t, 0.0, m.TotalCostDelta)
	assert.Len(t, m.Correlation.Columns, len(model.NumericColumns))
}

func TestCorrelationMatrix(t *testing.T) {
	// power rises linearly with current; voltage held constant
	var records []model.Record
	stamps := []string{
		"2024-05-01 10:00:00", "2024-05-01 10:01:00",
		"2024-05-01 10:02:00", "2024-05-01 10:03:00",
	}
	for i, ts := range stamps {
		r := rec(ts, float64(i))
		r.CurrentMA = float64(100 + 10*i)
		r.PowerW = float64(22 + 2*i)
		r.VoltageV = 220
		records = append(records, r)
	}
	m := Correlate(records)

	t.Run("Symmetric", func(t *testing.T) {
		for i := range m.Matrix {
			for j := range m.Matrix[i] {
				a, b := m.Matrix[i][j], m.Matrix[j][i]
				if math.IsNaN(a) {
					assert.True(t, math.IsNaN(b))
					continue
				}
				assert.Equal(t, a, b)
			}
		}
	})

	t.Run("Diagonal One With Nonzero Variance", func(t *testing.T) {
		assert.Equal(t, 1.0, m.At(model.ColCurrent, model.ColCurrent))
		assert.Equal(t, 1.0, m.At(model.ColPower, model.ColPower))
	})

	t.Run("Diagonal NaN With Zero Variance", func(t *testing.T) {
		assert.True(t, math.IsNaN(m.At(model.ColVoltage, model.ColVoltage)))
	})

	t.Run("Perfect Linear Pair", func(t *testing.T) {
		assert.InDelta(t, 1.0, m.At(model.ColCurrent, model.ColPower), 1e-9)
	})

	t.Run("Pairwise Complete Rows Only", func(t *testing.T) {
		broken := append([]model.Record(nil), records...)
		bad := rec("2024-05-01 10:04:00", 99)
		bad.CurrentMA = math.NaN()
		bad.PowerW = 1e6 // would wreck the fit if included
		broken = append(broken, bad)
		m2 := Correlate(broken)
		assert.InDelta(t, 1.0, m2.At(model.ColCurrent, model.ColPower), 1e-9)
	})
}
