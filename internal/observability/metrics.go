// Package observability provides logging, metrics, and tracing.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreOperationLatency records document store call latency by operation and collection.
	StoreOperationLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bookclub_store_operation_latency_seconds",
		Help:    "Document store operation latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "collection"})

	// StoreOperationErrors counts document store failures by operation and collection.
	StoreOperationErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookclub_store_operation_errors_total",
		Help: "Total number of document store errors",
	}, []string{"operation", "collection"})

	// BookSearchLatency records external book catalog call latency.
	BookSearchLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "bookclub_book_search_latency_seconds",
		Help:    "External book search call latency in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// BookSearchErrors counts external book catalog failures by reason.
	BookSearchErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookclub_book_search_errors_total",
		Help: "Total number of external book search errors",
	}, []string{"reason"})

	// IdentityCallErrors counts identity provider failures by operation.
	IdentityCallErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookclub_identity_call_errors_total",
		Help: "Total number of identity provider errors",
	}, []string{"operation"})
)

// ObserveStoreCall records the latency and outcome of a document store call.
func ObserveStoreCall(operation, collection string, start time.Time, err error) {
	StoreOperationLatency.WithLabelValues(operation, collection).Observe(time.Since(start).Seconds())
	if err != nil {
		StoreOperationErrors.WithLabelValues(operation, collection).Inc()
	}
}
