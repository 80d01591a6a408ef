package internal

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
)

// Metrics counts payment URL and callback outcomes on a private registry.
type Metrics struct {
	registry    *prometheus.Registry
	paymentUrls *prometheus.CounterVec
	callbacks   *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		// result: ok|invalid|error
		paymentUrls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "paysera_payment_urls_total",
				Help: "Count of payment URL requests by result.",
			},
			[]string{"result"},
		),
		// result: valid|invalid_signature|malformed
		callbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "paysera_callbacks_total",
				Help: "Count of gateway callbacks by validation result.",
			},
			[]string{"result"},
		),
	}
	m.registry.MustRegister(m.paymentUrls, m.callbacks)
	return m
}

func (m *Metrics) PaymentUrl(result string) {
	m.paymentUrls.WithLabelValues(result).Inc()
}

func (m *Metrics) Callback(result string) {
	m.callbacks.WithLabelValues(result).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
