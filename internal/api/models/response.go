package models

import (
	"math"
	"time"

	"energy-history/internal/analysis"
	"energy-history/internal/charts"
	"energy-history/internal/model"
)

// ErrorResponse is the error envelope every failing endpoint returns.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine code plus a human message.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// RecordRow is the JSON shape of one validated record. Unparseable numeric
// cells are null, never NaN (encoding/json cannot represent NaN).
type RecordRow struct {
	Time        time.Time `json:"time"`
	CurrentMA   *float64  `json:"current_ma"`
	VoltageV    *float64  `json:"voltage_v"`
	PowerW      *float64  `json:"power_w"`
	EnergyKWh   *float64  `json:"energy_kwh"`
	CostBDT     *float64  `json:"cost_bdt"`
	DurationMin *float64  `json:"duration_min"`
}

// HistoryResponse is the raw-data (tail) view.
type HistoryResponse struct {
	Rows        []RecordRow `json:"rows"`
	TotalRows   int         `json:"total_rows"`
	SourceRows  int         `json:"source_rows"`
	DroppedRows int         `json:"dropped_rows"`
	LoadedAt    time.Time   `json:"loaded_at"`
}

// RangeResponse reports the dataset's own time bounds for a date picker.
type RangeResponse struct {
	MinTime  time.Time `json:"min_time"`
	MaxTime  time.Time `json:"max_time"`
	MinDate  string    `json:"min_date"` // YYYY-MM-DD
	MaxDate  string    `json:"max_date"`
	RowCount int       `json:"row_count"`
}

// MetricsResponse wraps the derived metrics for a filtered window.
type MetricsResponse struct {
	Window       WindowInfo         `json:"window"`
	MaxPowerW    *float64           `json:"max_power_w"`
	EnergyDelta  float64            `json:"total_energy_kwh"`
	CostDelta    float64            `json:"total_cost_bdt"`
	EnergyResets int                `json:"energy_resets"`
	CostResets   int                `json:"cost_resets"`
	Correlation  CorrelationPayload `json:"correlation"`
}

// WindowInfo echoes the effective filter window and its row count so an empty
// result is an explicit state rather than a silent empty chart.
type WindowInfo struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Rows  int       `json:"rows"`
}

// CorrelationPayload mirrors model.CorrelationMatrix with NaN mapped to null.
type CorrelationPayload struct {
	Columns []string     `json:"columns"`
	Matrix  [][]*float64 `json:"matrix"`
}

// SummaryResponse is the describe() table for a filtered window.
type SummaryResponse struct {
	Window  WindowInfo      `json:"window"`
	Columns []ColumnSummary `json:"columns"`
}

type ColumnSummary struct {
	Column string   `json:"column"`
	Count  int      `json:"count"`
	Mean   *float64 `json:"mean"`
	Std    *float64 `json:"std"`
	Min    *float64 `json:"min"`
	P25    *float64 `json:"p25"`
	P50    *float64 `json:"p50"`
	P75    *float64 `json:"p75"`
	Max    *float64 `json:"max"`
}

// ProjectionInfo describes one catalog entry.
type ProjectionInfo struct {
	Name    string `json:"name"`
	XColumn string `json:"x_column"`
	YColumn string `json:"y_column"`
}

// ProjectionResponse carries the (x, y) pairs for one named projection.
type ProjectionResponse struct {
	Projection ProjectionInfo    `json:"projection"`
	Window     WindowInfo        `json:"window"`
	Points     []ProjectionPoint `json:"points"`
}

// ProjectionPoint is one pair; time is set for time-series projections, x
// otherwise.
type ProjectionPoint struct {
	Time *time.Time `json:"time,omitempty"`
	X    *float64   `json:"x,omitempty"`
	Y    *float64   `json:"y"`
}

// Float returns nil for NaN so the value serializes as null.
func Float(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

// NewRecordRow converts an internal record to its JSON shape.
func NewRecordRow(r model.Record) RecordRow {
	return RecordRow{
		Time:        r.Time,
		CurrentMA:   Float(r.CurrentMA),
		VoltageV:    Float(r.VoltageV),
		PowerW:      Float(r.PowerW),
		EnergyKWh:   Float(r.EnergyKWh),
		CostBDT:     Float(r.CostBDT),
		DurationMin: Float(r.DurationMin),
	}
}

// NewCorrelationPayload converts the matrix, mapping NaN entries to null.
func NewCorrelationPayload(m model.CorrelationMatrix) CorrelationPayload {
	out := CorrelationPayload{Columns: m.Columns, Matrix: make([][]*float64, len(m.Matrix))}
	for i, row := range m.Matrix {
		out.Matrix[i] = make([]*float64, len(row))
		for j, v := range row {
			out.Matrix[i][j] = Float(v)
		}
	}
	return out
}

// NewColumnSummary converts one analysis column block.
func NewColumnSummary(s analysis.ColumnSummary) ColumnSummary {
	return ColumnSummary{
		Column: s.Column,
		Count:  s.Count,
		Mean:   Float(s.Mean),
		Std:    Float(s.Std),
		Min:    Float(s.Min),
		P25:    Float(s.P25),
		P50:    Float(s.P50),
		P75:    Float(s.P75),
		Max:    Float(s.Max),
	}
}

// NewProjectionPoints converts chart points, mapping NaN to null.
func NewProjectionPoints(p charts.Projection, pts []charts.Point) []ProjectionPoint {
	out := make([]ProjectionPoint, 0, len(pts))
	for _, pt := range pts {
		row := ProjectionPoint{Y: Float(pt.Y)}
		if p.TimeSeries() {
			t := pt.Time
			row.Time = &t
		} else {
			row.X = Float(pt.X)
		}
		out = append(out, row)
	}
	return out
}
