package charts

import (
	"errors"
	"math"
	"testing"
	"time"

	"energy-history/internal/model"
)

func sample(n int) []model.Record {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local)
	out := make([]model.Record, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.Record{
			Time:      base.Add(time.Duration(i) * time.Minute),
			CurrentMA: float64(100 + i),
			VoltageV:  220,
			PowerW:    float64(20 + i),
			EnergyKWh: float64(i) * 0.01,
			CostBDT:   float64(i) * 0.085,
		})
	}
	return out
}

func TestCatalogIsFixed(t *testing.T) {
	cat := Catalog()
	if len(cat) != 9 {
		t.Fatalf("catalog size = %d, want 9", len(cat))
	}
	names := map[string]bool{}
	for _, p := range cat {
		names[p.Name] = true
	}
	for _, want := range []string{"Power vs Time", "Voltage vs Current", "Energy vs Cost"} {
		if !names[want] {
			t.Fatalf("catalog missing %q", want)
		}
	}
}

func TestProjectTimeSeries(t *testing.T) {
	records := sample(5)
	pts, err := Project("Power vs Time", records)
	if err != nil {
		t.Fatalf("project: %v", err)
	}
	if len(pts) != len(records) {
		t.Fatalf("points = %d, want %d", len(pts), len(records))
	}
	for i, pt := range pts {
		if !pt.Time.Equal(records[i].Time) {
			t.Fatalf("point %d out of dataset order", i)
		}
		if pt.Y != records[i].PowerW {
			t.Fatalf("point %d y = %v, want %v", i, pt.Y, records[i].PowerW)
		}
	}
}

func TestProjectScatter(t *testing.T) {
	records := sample(3)
	pts, err := Project("Voltage vs Current", records)
	if err != nil {
		t.Fatalf("project: %v", err)
	}
	for i, pt := range pts {
		if pt.X != records[i].VoltageV || pt.Y != records[i].CurrentMA {
			t.Fatalf("point %d = %+v", i, pt)
		}
		if !pt.Time.IsZero() {
			t.Fatalf("scatter point %d carries a timestamp", i)
		}
	}
}

func TestProjectPassesNaNThrough(t *testing.T) {
	records := sample(2)
	records[1].PowerW = math.NaN()
	pts, err := Project("Power vs Time", records)
	if err != nil {
		t.Fatalf("project: %v", err)
	}
	if len(pts) != 2 {
		t.Fatalf("NaN row was dropped from projection")
	}
	if !math.IsNaN(pts[1].Y) {
		t.Fatalf("pts[1].Y = %v, want NaN", pts[1].Y)
	}
}

func TestProjectUnknownName(t *testing.T) {
	_, err := Project("Unknown vs Metric", sample(1))
	var unknown *UnknownProjectionError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownProjectionError, got %v", err)
	}
	if unknown.Name != "Unknown vs Metric" {
		t.Fatalf("error names %q", unknown.Name)
	}
}

func TestProjectEmptyDataset(t *testing.T) {
	pts, err := Project("Energy vs Cost", nil)
	if err != nil {
		t.Fatalf("project on empty input: %v", err)
	}
	if len(pts) != 0 {
		t.Fatalf("points = %d, want 0", len(pts))
	}
}
