package data

import (
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"energy-history/internal/model"
)

// timeLayouts are tried in order when coercing the Time column. The meter
// logger writes "2006-01-02 15:04:05"; the rest cover hand-edited or
// exported variants seen in the wild.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006/01/02 15:04:05",
	"02-01-2006 15:04:05",
	"2006-01-02",
}

// LoadHistoryCSV reads and validates the metering log.
//
// Structural failures (missing file, missing columns, zero data rows) return
// the typed errors in errors.go. Row-level failures never abort the load:
// rows without a parseable timestamp are dropped, and numeric cells that do
// not parse are carried as NaN so downstream statistics can skip them.
// The returned dataset is sorted stably by timestamp ascending.
func LoadHistoryCSV(path string) (*model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &SourceNotFoundError{Path: path, Err: err}
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows handled per-cell
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, &SchemaError{Missing: append([]string(nil), model.RequiredColumns...)}
	}
	if err != nil {
		return nil, err
	}

	idx := map[string]int{}
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	var missing []string
	for _, col := range model.RequiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	ds := &model.Dataset{}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		ds.SourceRows++

		ts, ok := parseTime(cell(row, idx[model.ColTime]))
		if !ok {
			continue
		}
		ds.Records = append(ds.Records, model.Record{
			Time:        ts,
			CurrentMA:   parseFloat(cell(row, idx[model.ColCurrent])),
			VoltageV:    parseFloat(cell(row, idx[model.ColVoltage])),
			PowerW:      parseFloat(cell(row, idx[model.ColPower])),
			EnergyKWh:   parseFloat(cell(row, idx[model.ColEnergy])),
			CostBDT:     parseFloat(cell(row, idx[model.ColCost])),
			DurationMin: parseFloat(cell(row, idx[model.ColDuration])),
		})
	}

	if ds.SourceRows == 0 {
		return nil, &EmptyDatasetError{Path: path}
	}

	// Delta computation is last-minus-first over cumulative counters, which is
	// only meaningful in ascending time order; the logger is expected to append
	// in order but that is not enforced at the source.
	sort.SliceStable(ds.Records, func(i, j int) bool {
		return ds.Records[i].Time.Before(ds.Records[j].Time)
	})
	return ds, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseFloat(s string) float64 {
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
