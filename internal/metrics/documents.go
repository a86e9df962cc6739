package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Document read metrics.
var (
	DocumentsFetched = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "vizdata",
			Name:      "documents_fetched",
			Help:      "Number of documents returned per full collection read",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		},
	)

	StorageErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vizdata",
			Name:      "storage_errors_total",
			Help:      "Failed document reads by error kind",
		},
		[]string{"kind"},
	)
)

var registerDocumentsOnce sync.Once

// RegisterDocumentMetrics registers document metrics with the default registry. Safe to call more than once.
func RegisterDocumentMetrics() {
	registerDocumentsOnce.Do(func() {
		prometheus.MustRegister(DocumentsFetched, StorageErrorsTotal)
	})
}

// Recorder feeds document metrics. The zero value is ready to use.
type Recorder struct{}

// ObserveFetched records the size of one successful read.
func (Recorder) ObserveFetched(count int) {
	DocumentsFetched.Observe(float64(count))
}

// ObserveError counts a failed read under kind.
func (Recorder) ObserveError(kind string) {
	StorageErrorsTotal.WithLabelValues(kind).Inc()
}
