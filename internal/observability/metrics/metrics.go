package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricPrefix = "energy_history_"

var (
	registerOnce sync.Once

	loadsTotal  *prometheus.CounterVec
	loadErrors  *prometheus.CounterVec
	rowsDropped prometheus.Counter

	datasetRows prometheus.Gauge
	lastRefresh prometheus.Gauge
)

// Init registers the pipeline metrics. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		loadsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "loads_total",
				Help: "Load passes by result",
			},
			[]string{"result"},
		)
		loadErrors = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "load_errors_total",
				Help: "Failed load passes by error kind",
			},
			[]string{"kind"},
		)
		rowsDropped = prometheus.NewCounter(prometheus.CounterOpts{
			Name: metricPrefix + "rows_dropped_total",
			Help: "Rows removed for unparseable timestamps",
		})
		datasetRows = prometheus.NewGauge(prometheus.GaugeOpts{
			Name: metricPrefix + "dataset_rows",
			Help: "Validated rows in the latest snapshot",
		})
		lastRefresh = prometheus.NewGauge(prometheus.GaugeOpts{
			Name: metricPrefix + "last_refresh_timestamp_seconds",
			Help: "Unix time of the latest load pass",
		})

		prometheus.MustRegister(loadsTotal, loadErrors, rowsDropped, datasetRows, lastRefresh)
	})
}

// ObserveLoadSuccess records one completed load pass.
func ObserveLoadSuccess(rows, dropped int, at time.Time) {
	if loadsTotal == nil {
		return
	}
	loadsTotal.WithLabelValues("success").Inc()
	rowsDropped.Add(float64(dropped))
	datasetRows.Set(float64(rows))
	lastRefresh.Set(float64(at.Unix()))
}

// ObserveLoadFailure records one failed load pass by error kind.
func ObserveLoadFailure(kind string, at time.Time) {
	if loadsTotal == nil {
		return
	}
	loadsTotal.WithLabelValues("error").Inc()
	loadErrors.WithLabelValues(kind).Inc()
	lastRefresh.Set(float64(at.Unix()))
}
