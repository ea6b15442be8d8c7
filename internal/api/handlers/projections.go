package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"energy-history/internal/analysis"
	"energy-history/internal/api/models"
	"energy-history/internal/charts"
	"energy-history/internal/data"

	"github.com/gin-gonic/gin"
)

// ProjectionHandler exposes the chart projection catalog. It only pairs
// columns; rendering belongs to the consumer.
type ProjectionHandler struct {
	history *HistoryHandler
}

func NewProjectionHandler(snap *data.Snapshot) *ProjectionHandler {
	return &ProjectionHandler{history: &HistoryHandler{snap: snap}}
}

// ListProjections handles GET /api/v1/history/projections
func (h *ProjectionHandler) ListProjections(c *gin.Context) {
	cat := charts.Catalog()
	out := make([]models.ProjectionInfo, 0, len(cat))
	for _, p := range cat {
		out = append(out, models.ProjectionInfo{
			Name:    p.Name,
			XColumn: p.XColumn,
			YColumn: p.YColumn,
		})
	}
	c.JSON(http.StatusOK, gin.H{"projections": out})
}

// GetProjection handles GET /api/v1/history/projections/:name
func (h *ProjectionHandler) GetProjection(c *gin.Context) {
	name := c.Param("name")
	proj, err := charts.Lookup(name)
	if err != nil {
		var unknown *charts.UnknownProjectionError
		if errors.As(err, &unknown) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "UNKNOWN_PROJECTION",
					Message: unknown.Error(),
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INTERNAL_ERROR", Message: err.Error()},
		})
		return
	}

	ds, _, ok := h.history.dataset(c)
	if !ok {
		return
	}
	r, ok := rangeQuery(c, ds)
	if !ok {
		return
	}

	filtered := analysis.FilterRange(ds.Records, r)
	pts, err := charts.Project(name, filtered)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INTERNAL_ERROR", Message: err.Error()},
		})
		return
	}

	from, to := r.Window()
	c.JSON(http.StatusOK, models.ProjectionResponse{
		Projection: models.ProjectionInfo{Name: proj.Name, XColumn: proj.XColumn, YColumn: proj.YColumn},
		Window:     models.WindowInfo{Start: from, End: to, Rows: len(filtered)},
		Points:     models.NewProjectionPoints(proj, pts),
	})
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
