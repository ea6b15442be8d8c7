package model

import (
	"math"
	"time"
)

// Required CSV header names, exactly as the meter logger writes them.
const (
	ColTime     = "Time"
	ColCurrent  = "Current (mA)"
	ColVoltage  = "Voltage (V)"
	ColPower    = "Power (W)"
	ColEnergy   = "Energy (kWh)"
	ColCost     = "Cost (BDT)"
	ColDuration = "Duration (min)"
)

// RequiredColumns is the exact header set the loader enforces, in canonical order.
var RequiredColumns = []string{
	ColTime, ColCurrent, ColVoltage, ColPower, ColEnergy, ColCost, ColDuration,
}

// NumericColumns are all columns except Time, in canonical order. This is the
// column set the correlation matrix, summary stats and projections operate on.
var NumericColumns = []string{
	ColCurrent, ColVoltage, ColPower, ColEnergy, ColCost, ColDuration,
}

// Record is one metering sample.
// Units:
// - CurrentMA: milliamps
// - VoltageV: volts
// - PowerW: watts
// - EnergyKWh, CostBDT: cumulative counters since meter start (running totals, not deltas)
// - DurationMin: elapsed minutes, informational only
//
// Numeric fields hold NaN when the source cell was not parseable; statistics
// skip NaN values rather than failing the row.
type Record struct {
	Time        time.Time
	CurrentMA   float64
	VoltageV    float64
	PowerW      float64
	EnergyKWh   float64
	CostBDT     float64
	DurationMin float64
}

// Value returns the named numeric column of the record, NaN for unknown names.
func (r Record) Value(col string) float64 {
	switch col {
	case ColCurrent:
		return r.CurrentMA
	case ColVoltage:
		return r.VoltageV
	case ColPower:
		return r.PowerW
	case ColEnergy:
		return r.EnergyKWh
	case ColCost:
		return r.CostBDT
	case ColDuration:
		return r.DurationMin
	}
	return math.NaN()
}

// Dataset is the validated, timestamp-ascending view of one load pass.
// It is immutable once built and safe to share across concurrent readers.
type Dataset struct {
	Records []Record

	// SourceRows counts data rows in the file before validation, so callers
	// can tell how many rows were dropped for unparseable timestamps.
	SourceRows int
}

// DroppedRows is the number of source rows removed during timestamp coercion.
func (d *Dataset) DroppedRows() int {
	return d.SourceRows - len(d.Records)
}

// Tail returns the last n records (all of them when n <= 0 or n >= len).
func (d *Dataset) Tail(n int) []Record {
	if n <= 0 || n >= len(d.Records) {
		return d.Records
	}
	return d.Records[len(d.Records)-n:]
}

// TimeBounds reports the first and last timestamps. ok is false for an empty dataset.
func (d *Dataset) TimeBounds() (min, max time.Time, ok bool) {
	if len(d.Records) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return d.Records[0].Time, d.Records[len(d.Records)-1].Time, true
}
