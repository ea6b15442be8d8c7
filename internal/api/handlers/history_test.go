package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energy-history/internal/data"
)

const fixtureCSV = `Time,Current (mA),Voltage (V),Power (W),Energy (kWh),Cost (BDT),Duration (min)
2024-05-01 10:00:00,120,220,26.5,1.0,8.5,1
2024-05-01 11:00:00,130,220,28.6,1.5,12.75,61
2024-05-02 10:00:00,150,220,33.3,2.25,19.12,1501
garbage-row,150,220,33.3,9.9,99,9
`

func newTestRouter(t *testing.T, csvContent string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "energy_history.csv")
	if csvContent != "" {
		require.NoError(t, os.WriteFile(path, []byte(csvContent), 0o644))
	}

	snap := data.NewSnapshot(path)
	_ = snap.Refresh()

	router := gin.New()
	historyHandler := NewHistoryHandler(snap, 100)
	projectionHandler := NewProjectionHandler(snap)
	api := router.Group("/api/v1")
	api.GET("/history", historyHandler.GetHistory)
	api.GET("/history/range", historyHandler.GetRange)
	api.GET("/history/summary", historyHandler.GetSummary)
	api.GET("/history/metrics", historyHandler.GetMetrics)
	api.GET("/history/projections", projectionHandler.ListProjections)
	api.GET("/history/projections/:name", projectionHandler.GetProjection)
	return router
}

func get(router *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	var body map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestGetHistory(t *testing.T) {
	router := newTestRouter(t, fixtureCSV)
	w, body := get(router, "/api/v1/history")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 3, body["total_rows"])
	assert.EqualValues(t, 4, body["source_rows"])
	assert.EqualValues(t, 1, body["dropped_rows"])
	assert.Len(t, body["rows"], 3)
}

func TestGetRange(t *testing.T) {
	router := newTestRouter(t, fixtureCSV)
	w, body := get(router, "/api/v1/history/range")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2024-05-01", body["min_date"])
	assert.Equal(t, "2024-05-02", body["max_date"])
}

func TestGetMetricsFiltered(t *testing.T) {
	router := newTestRouter(t, fixtureCSV)
	w, body := get(router, "/api/v1/history/metrics?start=2024-05-01&end=2024-05-01")
	require.Equal(t, http.StatusOK, w.Code)
	assert.InDelta(t, 0.5, body["total_energy_kwh"].(float64), 1e-9)
	assert.InDelta(t, 28.6, body["max_power_w"].(float64), 1e-9)
	window := body["window"].(map[string]interface{})
	assert.EqualValues(t, 2, window["rows"])

	corr := body["correlation"].(map[string]interface{})
	assert.Len(t, corr["columns"], 6)
}

func TestGetMetricsInvertedRangeIsEmptyState(t *testing.T) {
	router := newTestRouter(t, fixtureCSV)
	w, body := get(router, "/api/v1/history/metrics?start=2024-05-02&end=2024-05-01")
	require.Equal(t, http.StatusOK, w.Code)
	window := body["window"].(map[string]interface{})
	assert.EqualValues(t, 0, window["rows"])
	assert.Equal(t, 0.0, body["total_energy_kwh"])
	assert.Nil(t, body["max_power_w"])
}

func TestGetMetricsBadDate(t *testing.T) {
	router := newTestRouter(t, fixtureCSV)
	w, body := get(router, "/api/v1/history/metrics?start=05-01-2024")
	require.Equal(t, http.StatusBadRequest, w.Code)
	detail := body["error"].(map[string]interface{})
	assert.Equal(t, "INVALID_DATE", detail["code"])
}

func TestGetSummary(t *testing.T) {
	router := newTestRouter(t, fixtureCSV)
	w, body := get(router, "/api/v1/history/summary")
	require.Equal(t, http.StatusOK, w.Code)
	cols := body["columns"].([]interface{})
	assert.Len(t, cols, 6)
	first := cols[0].(map[string]interface{})
	assert.EqualValues(t, 3, first["count"])
}

func TestProjectionEndpoints(t *testing.T) {
	router := newTestRouter(t, fixtureCSV)

	w, body := get(router, "/api/v1/history/projections")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["projections"], 9)

	w, body = get(router, "/api/v1/history/projections/Power%20vs%20Time")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["points"], 3)

	w, body = get(router, "/api/v1/history/projections/Unknown%20vs%20Metric")
	require.Equal(t, http.StatusNotFound, w.Code)
	detail := body["error"].(map[string]interface{})
	assert.Equal(t, "UNKNOWN_PROJECTION", detail["code"])
}

func TestMissingSourceFile(t *testing.T) {
	router := newTestRouter(t, "")
	w, body := get(router, "/api/v1/history")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	detail := body["error"].(map[string]interface{})
	assert.Equal(t, "SOURCE_NOT_FOUND", detail["code"])
}

func TestEmptyDatasetIsDistinctState(t *testing.T) {
	router := newTestRouter(t, "Time,Current (mA),Voltage (V),Power (W),Energy (kWh),Cost (BDT),Duration (min)\n")
	w, body := get(router, "/api/v1/history/metrics")
	require.Equal(t, http.StatusNotFound, w.Code)
	detail := body["error"].(map[string]interface{})
	assert.Equal(t, "NO_DATA_YET", detail["code"])
}

func TestSchemaErrorNamesColumns(t *testing.T) {
	router := newTestRouter(t, "Time,Current (mA),Power (W),Energy (kWh),Cost (BDT),Duration (min)\n2024-05-01 10:00:00,1,2,3,4,5\n")
	w, body := get(router, "/api/v1/history")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	detail := body["error"].(map[string]interface{})
	assert.Equal(t, "SCHEMA_ERROR", detail["code"])
	missing := detail["details"].(map[string]interface{})["missing_columns"].([]interface{})
	assert.Equal(t, []interface{}{"Voltage (V)"}, missing)
}
