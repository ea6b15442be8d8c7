package handlers

import (
	"errors"
	"net/http"
	"time"

	"energy-history/internal/analysis"
	"energy-history/internal/api/models"
	"energy-history/internal/data"
	"energy-history/internal/model"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// HistoryHandler serves the validated dataset and its derived views.
type HistoryHandler struct {
	snap     *data.Snapshot
	tailRows int
}

func NewHistoryHandler(snap *data.Snapshot, tailRows int) *HistoryHandler {
	return &HistoryHandler{snap: snap, tailRows: tailRows}
}

// dataset returns the latest snapshot, or writes the appropriate error
// response and returns ok=false. Structural load failures map to:
//   - no pass yet / file absent: 503 (the next refresh retries naturally)
//   - schema mismatch: 500 with the missing column names
//   - headered-but-empty file: 404 NO_DATA_YET, an explicit empty state
//     distinct from a fault
func (h *HistoryHandler) dataset(c *gin.Context) (*model.Dataset, time.Time, bool) {
	ds, loadedAt, err := h.snap.Latest()
	if err == nil && ds == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NOT_READY",
				Message: "no load pass has completed yet",
			},
		})
		return nil, time.Time{}, false
	}
	if err != nil {
		writeLoadError(c, err)
		return nil, time.Time{}, false
	}
	return ds, loadedAt, true
}

func writeLoadError(c *gin.Context, err error) {
	var nf *data.SourceNotFoundError
	var se *data.SchemaError
	var ee *data.EmptyDatasetError
	switch {
	case errors.As(err, &nf):
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SOURCE_NOT_FOUND",
				Message: nf.Error(),
			},
		})
	case errors.As(err, &se):
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SCHEMA_ERROR",
				Message: se.Error(),
				Details: map[string]interface{}{"missing_columns": se.Missing},
			},
		})
	case errors.As(err, &ee):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NO_DATA_YET",
				Message: ee.Error(),
			},
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "LOAD_ERROR",
				Message: err.Error(),
			},
		})
	}
}

// rangeQuery resolves the start/end query params (YYYY-MM-DD) against the
// dataset's own bounds; omitted bounds default to the full dataset.
func rangeQuery(c *gin.Context, ds *model.Dataset) (model.DateRange, bool) {
	minT, maxT, _ := ds.TimeBounds()
	r := model.DateRange{Start: minT, End: maxT}

	if s := c.Query("start"); s != "" {
		t, err := time.ParseInLocation(dateLayout, s, time.Local)
		if err != nil {
			writeBadDate(c, "start", s)
			return model.DateRange{}, false
		}
		r.Start = t
	}
	if s := c.Query("end"); s != "" {
		t, err := time.ParseInLocation(dateLayout, s, time.Local)
		if err != nil {
			writeBadDate(c, "end", s)
			return model.DateRange{}, false
		}
		r.End = t
	}
	return r, true
}

func writeBadDate(c *gin.Context, param, value string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INVALID_DATE",
			Message: "expected " + param + " as YYYY-MM-DD, got " + value,
		},
	})
}

// GetHistory handles GET /api/v1/history
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	ds, loadedAt, ok := h.dataset(c)
	if !ok {
		return
	}

	limit := h.tailRows
	if s := c.Query("limit"); s != "" {
		if n, err := parsePositiveInt(s); err == nil {
			limit = n
		}
	}

	tail := ds.Tail(limit)
	rows := make([]models.RecordRow, 0, len(tail))
	for _, rec := range tail {
		rows = append(rows, models.NewRecordRow(rec))
	}
	c.JSON(http.StatusOK, models.HistoryResponse{
		Rows:        rows,
		TotalRows:   len(ds.Records),
		SourceRows:  ds.SourceRows,
		DroppedRows: ds.DroppedRows(),
		LoadedAt:    loadedAt,
	})
}

// GetRange handles GET /api/v1/history/range
func (h *HistoryHandler) GetRange(c *gin.Context) {
	ds, _, ok := h.dataset(c)
	if !ok {
		return
	}
	minT, maxT, hasRows := ds.TimeBounds()
	if !hasRows {
		// every source row was dropped during timestamp coercion
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NO_VALID_ROWS",
				Message: "no rows with a parseable timestamp",
				Details: map[string]interface{}{"source_rows": ds.SourceRows},
			},
		})
		return
	}
	c.JSON(http.StatusOK, models.RangeResponse{
		MinTime:  minT,
		MaxTime:  maxT,
		MinDate:  minT.Format(dateLayout),
		MaxDate:  maxT.Format(dateLayout),
		RowCount: len(ds.Records),
	})
}

// GetMetrics handles GET /api/v1/history/metrics
func (h *HistoryHandler) GetMetrics(c *gin.Context) {
	ds, _, ok := h.dataset(c)
	if !ok {
		return
	}
	r, ok := rangeQuery(c, ds)
	if !ok {
		return
	}

	filtered := analysis.FilterRange(ds.Records, r)
	m := analysis.ComputeMetrics(filtered)
	from, to := r.Window()
	c.JSON(http.StatusOK, models.MetricsResponse{
		Window:       models.WindowInfo{Start: from, End: to, Rows: len(filtered)},
		MaxPowerW:    models.Float(m.MaxPower),
		EnergyDelta:  m.TotalEnergyDelta,
		CostDelta:    m.TotalCostDelta,
		EnergyResets: m.EnergyResets,
		CostResets:   m.CostResets,
		Correlation:  models.NewCorrelationPayload(m.Correlation),
	})
}

// GetSummary handles GET /api/v1/history/summary
func (h *HistoryHandler) GetSummary(c *gin.Context) {
	ds, _, ok := h.dataset(c)
	if !ok {
		return
	}
	r, ok := rangeQuery(c, ds)
	if !ok {
		return
	}

	filtered := analysis.FilterRange(ds.Records, r)
	cols := analysis.Describe(filtered)
	out := make([]models.ColumnSummary, 0, len(cols))
	for _, s := range cols {
		out = append(out, models.NewColumnSummary(s))
	}
	from, to := r.Window()
	c.JSON(http.StatusOK, models.SummaryResponse{
		Window:  models.WindowInfo{Start: from, End: to, Rows: len(filtered)},
		Columns: out,
	})
}
