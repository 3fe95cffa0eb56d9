package handler

import (
	"net/http"

	"github.com/VictoriaMetrics/metrics"
)

// HandleMetrics exposes the process and receipt counters in Prometheus text format.
func HandleMetrics(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	metrics.WritePrometheus(w, true)
}
