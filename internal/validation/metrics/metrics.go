package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels.
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
	ResultError   = "error"
	ResultOK      = "ok"
)

// Metrics provides observability for the validation module.
type Metrics struct {
	// Operation outcomes by operation and result
	Operations *prometheus.CounterVec

	// Items per batch request
	BatchSize prometheus.Histogram

	// Batch items by result
	BatchItems *prometheus.CounterVec

	// Organizational heuristic verdicts
	Classifications *prometheus.CounterVec
}

// New creates a Metrics instance with all validation metrics registered on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rutcheck_operations_total",
			Help: "Identifier operations by operation and result",
		}, []string{"operation", "result"}), // operation: "validate", "parse", "format", ...

		BatchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "rutcheck_batch_size",
			Help:    "Number of identifiers per batch validation request",
			Buckets: []float64{1, 5, 10, 50, 100, 250, 500, 1000},
		}),

		BatchItems: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rutcheck_batch_items_total",
			Help: "Batch items by validation result",
		}, []string{"result"}),

		Classifications: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rutcheck_classifications_total",
			Help: "Organizational heuristic verdicts",
		}, []string{"kind"}), // kind: "organization", "person", "unparseable"
	}
}

// IncrementOperation records one operation outcome.
func (m *Metrics) IncrementOperation(operation, result string) {
	if m != nil {
		m.Operations.WithLabelValues(operation, result).Inc()
	}
}

// ObserveBatch records the size of a batch and how many items were valid.
func (m *Metrics) ObserveBatch(size, valid int) {
	if m != nil {
		m.BatchSize.Observe(float64(size))
		m.BatchItems.WithLabelValues(ResultValid).Add(float64(valid))
		m.BatchItems.WithLabelValues(ResultInvalid).Add(float64(size - valid))
	}
}

// IncrementClassification records one heuristic verdict.
func (m *Metrics) IncrementClassification(kind string) {
	if m != nil {
		m.Classifications.WithLabelValues(kind).Inc()
	}
}
