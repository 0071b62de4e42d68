package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// Operation outcomes used as the "outcome" label.
const (
	OutcomeOK          = "ok"
	OutcomeInvalid     = "invalid"
	OutcomeNotFound    = "not_found"
	OutcomeConflict    = "conflict"
	OutcomeUnavailable = "unavailable"
	OutcomeError       = "error"
)

type serviceMetrics struct {
	operations *prometheus.CounterVec
	likes      prometheus.Counter
	storeSize  prometheus.Gauge
}

// newServiceMetrics registers the collectors with reg. promauto skips
// registration when reg is nil, so a service built without a registerer
// still counts but exports nothing.
func newServiceMetrics(reg prometheus.Registerer) *serviceMetrics {
	f := promauto.With(reg)

	return &serviceMetrics{
		operations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quotes",
			Name:      "operations_total",
			Help:      "Quote use case invocations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		likes: f.NewCounter(prometheus.CounterOpts{
			Namespace: "quotes",
			Name:      "likes_total",
			Help:      "Likes recorded since start.",
		}),
		storeSize: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "quotes",
			Name:      "store_size",
			Help:      "Records seen by the last unfiltered list.",
		}),
	}
}

func (m *serviceMetrics) observe(op string, err error) {
	m.operations.WithLabelValues(op, Outcome(err)).Inc()
}

// Outcome classifies err for metrics.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case domain.IsValidation(err):
		return OutcomeInvalid
	case domain.IsNotFound(err):
		return OutcomeNotFound
	case domain.IsConflict(err):
		return OutcomeConflict
	case domain.IsUnavailable(err):
		return OutcomeUnavailable
	default:
		return OutcomeError
	}
}
