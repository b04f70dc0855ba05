package jwtgate

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeAdmitted = "admitted"
	outcomeRejected = "rejected"

	reasonNone = "none"
)

// decisionMetrics counts gate decisions. A nil *decisionMetrics records nothing.
type decisionMetrics struct {
	decisions *prometheus.CounterVec
}

func newDecisionMetrics(reg prometheus.Registerer) (*decisionMetrics, error) {
	decisions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jwtgate",
		Name:      "decisions_total",
		Help:      "Authentication decisions by outcome and rejection reason.",
	}, []string{"outcome", "reason"})

	if err := reg.Register(decisions); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return &decisionMetrics{decisions: existing}, nil
			}
		}
		return nil, err
	}

	return &decisionMetrics{decisions: decisions}, nil
}

func (m *decisionMetrics) observe(outcome, reason string) {
	if m == nil {
		return
	}
	m.decisions.WithLabelValues(outcome, reason).Inc()
}
