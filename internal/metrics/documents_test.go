package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegisterDocumentMetrics_Idempotent(t *testing.T) {
	RegisterDocumentMetrics()
	RegisterDocumentMetrics()
}

func TestRecorder_ObserveFetched(t *testing.T) {
	Recorder{}.ObserveFetched(2)

	if n := testutil.CollectAndCount(DocumentsFetched); n != 1 {
		t.Errorf("expected a single histogram series, got %d", n)
	}
}

func TestRecorder_ObserveError(t *testing.T) {
	before := testutil.ToFloat64(StorageErrorsTotal.WithLabelValues("storage_unavailable"))
	Recorder{}.ObserveError("storage_unavailable")

	after := testutil.ToFloat64(StorageErrorsTotal.WithLabelValues("storage_unavailable"))
	if after-before != 1 {
		t.Errorf("expected counter to grow by 1, got %f", after-before)
	}
}
