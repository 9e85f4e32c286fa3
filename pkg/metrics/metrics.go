package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Sync metrics
	SyncRunsTotal      *prometheus.CounterVec
	SyncRecordsFetched *prometheus.CounterVec
	SyncDuration       *prometheus.HistogramVec

	// Webhook metrics
	WebhookDeliveriesTotal *prometheus.CounterVec
	InboundWebhooksTotal   *prometheus.CounterVec

	// Messaging metrics
	MessagesSent *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		SyncRunsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crm_sync_runs_total",
				Help: "Total number of provider sync runs",
			},
			[]string{"provider", "status"}, // success, failed
		),
		SyncRecordsFetched: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "crm_sync_records_fetched_total",
				Help: "Total number of records fetched from providers",
			},
			[]string{"provider"},
		),
		SyncDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "crm_sync_duration_seconds",
				Help:    "Provider sync run duration in seconds",
				Buckets: []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300},
			},
			[]string{"provider"},
		),

		WebhookDeliveriesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webhook_deliveries_total",
				Help: "Total number of webhook delivery attempts",
			},
			[]string{"status"}, // delivered, failed
		),
		InboundWebhooksTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inbound_webhooks_total",
				Help: "Total number of inbound provider webhooks received",
			},
			[]string{"provider"},
		),

		MessagesSent: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "whatsapp_messages_sent_total",
				Help: "Total number of WhatsApp messages sent",
			},
			[]string{"status"},
		),
	}
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // route pattern, not the raw path

			err := next(c)

			status := c.Response().Status
			duration := time.Since(start).Seconds()

			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, strconv.Itoa(status)).Observe(duration)

			return err
		}
	}
}

// RecordSyncRun records the outcome of one provider sync run
func (m *Metrics) RecordSyncRun(provider string, success bool, records int, duration time.Duration) {
	status := "success"
	if !success {
		status = "failed"
	}
	m.SyncRunsTotal.WithLabelValues(provider, status).Inc()
	if records > 0 {
		m.SyncRecordsFetched.WithLabelValues(provider).Add(float64(records))
	}
	m.SyncDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordWebhookDelivery records one outbound delivery attempt
func (m *Metrics) RecordWebhookDelivery(delivered bool) {
	status := "delivered"
	if !delivered {
		status = "failed"
	}
	m.WebhookDeliveriesTotal.WithLabelValues(status).Inc()
}

// RecordInboundWebhook records one inbound provider webhook
func (m *Metrics) RecordInboundWebhook(provider string) {
	m.InboundWebhooksTotal.WithLabelValues(provider).Inc()
}

// RecordMessageSent records one outbound WhatsApp message
func (m *Metrics) RecordMessageSent(success bool) {
	status := "sent"
	if !success {
		status = "failed"
	}
	m.MessagesSent.WithLabelValues(status).Inc()
}
