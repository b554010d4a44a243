package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор метрик сервиса на собственном реестре
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	NotificationsTotal  *prometheus.CounterVec
	NotificationLatency *prometheus.HistogramVec
	SubmissionsTotal    *prometheus.CounterVec
}

// New создает и регистрирует метрики. serviceName попадает в const label "service"
func New(serviceName string) *Metrics {
	registry := prometheus.NewRegistry()
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		NotificationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "notifications_total",
			Help:        "Notifications sent by template kind and outcome",
			ConstLabels: constLabels,
		}, []string{"kind", "transport", "outcome"}),
		NotificationLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "notification_duration_seconds",
			Help:        "Notification delivery duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"kind", "transport"}),
		SubmissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "submissions_total",
			Help:        "Processed submissions by flow and final status",
			ConstLabels: constLabels,
		}, []string{"flow", "status"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.NotificationsTotal,
		m.NotificationLatency,
		m.SubmissionsTotal,
	)

	return m
}

// Registry возвращает реестр (используется в тестах)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler HTTP-обработчик для /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveNotification учитывает результат отправки уведомления. Для nil ничего не делает
func (m *Metrics) ObserveNotification(kind, transport, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.NotificationsTotal.WithLabelValues(kind, transport, outcome).Inc()
	m.NotificationLatency.WithLabelValues(kind, transport).Observe(seconds)
}

// ObserveSubmission учитывает итог обработки заявки. Для nil ничего не делает
func (m *Metrics) ObserveSubmission(flow, status string) {
	if m == nil {
		return
	}
	m.SubmissionsTotal.WithLabelValues(flow, status).Inc()
}
