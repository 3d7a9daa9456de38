// Package metrics registers the Prometheus instruments for the web
// server and the invoice backend client.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "faturas_"

	resultSuccess = "success"
	resultError   = "error"
)

var (
	registerOnce sync.Once

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec

	backendRequests *prometheus.CounterVec
	backendLatency  *prometheus.HistogramVec

	uploadFiles prometheus.Histogram
)

// Init registers all metrics with the default registry. Safe to call
// more than once; registration happens a single time.
func Init() {
	registerOnce.Do(func() {
		httpRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Total HTTP requests by path, method and status",
			},
			[]string{"path", "method", "status"},
		)
		httpLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path"},
		)

		backendRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "backend_requests_total",
				Help: "Total invoice backend calls by operation and result",
			},
			[]string{"operation", "result"},
		)
		backendLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "backend_request_duration_seconds",
				Help:    "Invoice backend call latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		)

		uploadFiles = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "upload_batch_files",
				Help:    "Files per accepted upload batch",
				Buckets: []float64{1, 2, 3, 5, 8, 10},
			},
		)

		prometheus.MustRegister(
			httpRequests,
			httpLatency,
			backendRequests,
			backendLatency,
			uploadFiles,
		)
	})
}

// ObserveHTTPRequest records one served HTTP request.
func ObserveHTTPRequest(path, method string, status int, elapsed time.Duration) {
	if httpRequests == nil {
		return
	}
	httpRequests.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	httpLatency.WithLabelValues(path).Observe(elapsed.Seconds())
}

// ObserveBackendRequest records one call to the invoice backend.
func ObserveBackendRequest(operation string, err error, elapsed time.Duration) {
	if backendRequests == nil {
		return
	}
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	backendRequests.WithLabelValues(operation, result).Inc()
	backendLatency.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveUploadBatch records the size of an accepted upload batch.
func ObserveUploadBatch(files int) {
	if uploadFiles == nil {
		return
	}
	uploadFiles.Observe(float64(files))
}
