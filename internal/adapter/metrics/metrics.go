package metrics

import (
	"net/http"
	"time"

	"github.com/MikeRez0/ypshop/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	gatherer prometheus.Gatherer

	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	notifications *prometheus.CounterVec
	relayed       *prometheus.CounterVec
}

const (
	RelayPublished = "published"
	RelayFailed    = "failed"
)

// New registers the service collectors in reg.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		gatherer: reg,
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_ms",
				Help:    "Duration of HTTP requests in ms",
				Buckets: []float64{5, 10, 25, 50, 100, 200, 400, 800, 1600},
			},
			[]string{"method", "path"},
		),
		notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_notifications_total",
				Help: "Gateway notifications by kind and acknowledgement outcome",
			},
			[]string{"kind", "outcome"},
		),
		relayed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "outbox_relay_messages_total",
				Help: "Outbox messages handed to the broker by result",
			},
			[]string{"topic", "result"},
		),
	}

	reg.MustRegister(m.httpRequests, m.httpDuration, m.notifications, m.relayed)
	return m
}

func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := float64(time.Since(start).Milliseconds())
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		m.httpRequests.WithLabelValues(c.Request.Method, path,
			http.StatusText(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(c.Request.Method, path).Observe(duration)
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// ObserveNotification counts one answered gateway notification.
func (m *Metrics) ObserveNotification(kind string, outcome domain.AckOutcome) {
	m.notifications.WithLabelValues(kind, outcome.String()).Inc()
}

func (m *Metrics) ObserveRelay(topic, result string) {
	m.relayed.WithLabelValues(topic, result).Inc()
}
