// utils/metrics.go
package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	verificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mailscout_verifications_total",
		Help: "Email verifications by final status.",
	}, []string{"status"})

	predictionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mailscout_predictions_total",
		Help: "Email pattern prediction requests served.",
	})
)

// ObserveVerification records a finished verification verdict.
func ObserveVerification(status string) {
	verificationsTotal.WithLabelValues(status).Inc()
}

// ObservePrediction records a served prediction request.
func ObservePrediction() {
	predictionsTotal.Inc()
}
