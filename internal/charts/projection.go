// Package charts projects dataset columns into (x, y) series for an external
// rendering layer. It performs no drawing.
package charts

import (
	"fmt"
	"time"

	"energy-history/internal/model"
)

// Projection names one supported metric relationship and the columns backing it.
type Projection struct {
	Name    string
	XColumn string
	YColumn string
}

// TimeSeries reports whether the x-axis is the timestamp column.
func (p Projection) TimeSeries() bool { return p.XColumn == model.ColTime }

// catalog is the fixed set of supported relationships.
var catalog = []Projection{
	{Name: "Voltage vs Time", XColumn: model.ColTime, YColumn: model.ColVoltage},
	{Name: "Current vs Time", XColumn: model.ColTime, YColumn: model.ColCurrent},
	{Name: "Power vs Time", XColumn: model.ColTime, YColumn: model.ColPower},
	{Name: "Energy vs Time", XColumn: model.ColTime, YColumn: model.ColEnergy},
	{Name: "Cost vs Time", XColumn: model.ColTime, YColumn: model.ColCost},
	{Name: "Voltage vs Current", XColumn: model.ColVoltage, YColumn: model.ColCurrent},
	{Name: "Voltage vs Power", XColumn: model.ColVoltage, YColumn: model.ColPower},
	{Name: "Current vs Power", XColumn: model.ColCurrent, YColumn: model.ColPower},
	{Name: "Energy vs Cost", XColumn: model.ColEnergy, YColumn: model.ColCost},
}

// Catalog returns the supported projections in display order.
func Catalog() []Projection {
	return append([]Projection(nil), catalog...)
}

// UnknownProjectionError is returned for names outside the catalog. It fails
// only the one projection request, never the rest of the pipeline.
type UnknownProjectionError struct {
	Name string
}

func (e *UnknownProjectionError) Error() string {
	return fmt.Sprintf("unknown projection: %q", e.Name)
}

// Point is one (x, y) pair. Time is set instead of X when the projection's
// x-axis is the timestamp column. Y (and X) may be NaN where the source cell
// did not parse; the consumer decides how to render gaps.
type Point struct {
	Time time.Time
	X    float64
	Y    float64
}

// Lookup resolves a catalog name.
func Lookup(name string) (Projection, error) {
	for _, p := range catalog {
		if p.Name == name {
			return p, nil
		}
	}
	return Projection{}, &UnknownProjectionError{Name: name}
}

// Project pairs the named columns over records, one point per record in
// dataset order.
func Project(name string, records []model.Record) ([]Point, error) {
	p, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	pts := make([]Point, 0, len(records))
	for _, rec := range records {
		pt := Point{Y: rec.Value(p.YColumn)}
		if p.TimeSeries() {
			pt.Time = rec.Time
		} else {
			pt.X = rec.Value(p.XColumn)
		}
		pts = append(pts, pt)
	}
	return pts, nil
}
