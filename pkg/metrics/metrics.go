// Package metrics содержит prometheus-метрики сервиса: HTTP-запросы
// и жизненный цикл платежных сессий с их поллингом.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор коллекторов сервиса.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	paymentPollsTotal    *prometheus.CounterVec
	paymentSessionsTotal *prometheus.CounterVec
	activePaymentPolls   prometheus.Gauge
}

// New создает и регистрирует метрики в default-регистре.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"handler", "method", "code"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"handler", "method"}),

		paymentPollsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "payment_status_polls_total",
			Help:        "Total number of payment status polls by method and outcome",
			ConstLabels: constLabels,
		}, []string{"method", "outcome"}),

		paymentSessionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "payment_sessions_total",
			Help:        "Total number of payment sessions reaching a state",
			ConstLabels: constLabels,
		}, []string{"state"}),

		activePaymentPolls: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "payment_active_polls",
			Help:        "Number of payment sessions currently being polled",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTPRequest фиксирует завершенный HTTP-запрос.
func (m *Metrics) ObserveHTTPRequest(handler, method string, code int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(handler, method, strconv.Itoa(code)).Inc()
	m.httpRequestDuration.WithLabelValues(handler, method).Observe(duration.Seconds())
}

// IncPaymentPoll фиксирует один опрос статуса платежа.
// outcome: "success" | "failed" | "pending" | "error".
func (m *Metrics) IncPaymentPoll(method, outcome string) {
	m.paymentPollsTotal.WithLabelValues(method, outcome).Inc()
}

// IncPaymentSession фиксирует переход сессии в состояние state.
func (m *Metrics) IncPaymentSession(state string) {
	m.paymentSessionsTotal.WithLabelValues(state).Inc()
}

// IncActivePolls увеличивает счетчик активных поллеров.
func (m *Metrics) IncActivePolls() {
	m.activePaymentPolls.Inc()
}

// DecActivePolls уменьшает счетчик активных поллеров.
func (m *Metrics) DecActivePolls() {
	m.activePaymentPolls.Dec()
}
