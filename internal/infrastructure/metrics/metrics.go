package metrics

import (
	"estimate_engine/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "estimate_engine"

// Metrics counts ledger and lifecycle events on its own registry.
type Metrics struct {
	registry    *prometheus.Registry
	payments    *prometheus.CounterVec
	collected   *prometheus.CounterVec
	transitions *prometheus.CounterVec
}

var _ interfaces.IMetrics = (*Metrics)(nil)

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		payments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_appended_total",
			Help:      "Payments recorded against estimates.",
		}, []string{"payment_method"}),
		collected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_amount_total",
			Help:      "Sum of recorded payment amounts.",
		}, []string{"payment_method"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "estimate_status_transitions_total",
			Help:      "Estimate status changes.",
		}, []string{"from", "to"}),
	}
	m.registry.MustRegister(m.payments, m.collected, m.transitions)
	return m
}

func (m *Metrics) ObservePayment(method string, amount float64) {
	m.payments.WithLabelValues(method).Inc()
	m.collected.WithLabelValues(method).Add(amount)
}

func (m *Metrics) ObserveTransition(from, to string) {
	m.transitions.WithLabelValues(from, to).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
