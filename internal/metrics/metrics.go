// Package metrics provides Prometheus metrics for vaultdvc.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	commandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vaultdvc_commands_total",
			Help: "Total number of tool subprocesses run",
		},
		[]string{"tool", "operation", "status"},
	)

	commandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vaultdvc_command_duration_seconds",
			Help:    "Tool subprocess duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"tool", "operation"},
	)

	commandsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vaultdvc_commands_in_flight",
			Help: "Number of tool subprocesses currently running",
		},
	)

	trackedFiles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vaultdvc_tracked_files",
			Help: "Number of marker files in the tracked file index",
		},
	)

	autoPullsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vaultdvc_autosync_events_total",
			Help: "File-activation events handled by the auto-sync trigger",
		},
		[]string{"outcome"},
	)
)

// CommandStarted marks one subprocess as running.
func CommandStarted() { commandsInFlight.Inc() }

// CommandFinished records the outcome of one subprocess.
func CommandFinished(tool, operation, status string, d time.Duration) {
	commandsInFlight.Dec()
	commandsTotal.WithLabelValues(tool, operation, status).Inc()
	commandDuration.WithLabelValues(tool, operation).Observe(d.Seconds())
}

// SetTrackedFiles records the current size of the tracked file index.
func SetTrackedFiles(n int) { trackedFiles.Set(float64(n)) }

// AutoSyncEvent records how one file-activation event was handled
// ("pulled", "skipped", "no_match", "failed").
func AutoSyncEvent(outcome string) { autoPullsTotal.WithLabelValues(outcome).Inc() }

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
