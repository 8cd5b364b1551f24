package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "trainflow_training_requests_created_total",
			Help: "Total number of training requests created",
		},
	)

	requestsRespondedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trainflow_training_requests_responded_total",
			Help: "Total number of training request decisions by outcome",
		},
		[]string{"status"},
	)
)

// RecordRequestCreated counts a newly created training request.
func RecordRequestCreated() {
	requestsCreatedTotal.Inc()
}

// RecordRequestResponded counts a manager decision by its outcome.
func RecordRequestResponded(status string) {
	requestsRespondedTotal.WithLabelValues(status).Inc()
}

// Handler exposes the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
