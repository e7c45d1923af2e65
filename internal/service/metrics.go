package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	modelRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "truck_assist_model_requests_total",
			Help: "Total number of model generation requests",
		},
		[]string{"language", "status"},
	)

	modelRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "truck_assist_model_request_duration_seconds",
			Help:    "Duration of model generation requests in seconds",
			Buckets: []float64{0.1, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0, 60.0},
		},
		[]string{"language"},
	)

	modelResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "truck_assist_model_response_size_bytes",
			Help:    "Size of accumulated model responses in bytes",
			Buckets: []float64{100, 500, 1000, 5000, 10000, 50000},
		},
		[]string{"language"},
	)
)

func recordModelRequest(language, status string, seconds float64) {
	modelRequestsTotal.WithLabelValues(language, status).Inc()
	modelRequestDuration.WithLabelValues(language).Observe(seconds)
}

func recordModelResponseSize(language string, bytes int) {
	modelResponseSize.WithLabelValues(language).Observe(float64(bytes))
}
