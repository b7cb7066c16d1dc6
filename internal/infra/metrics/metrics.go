// File: internal/infra/metrics/metrics.go
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	paymentsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_created_total",
			Help: "Payment creation attempts by outcome.",
		},
		[]string{"status"},
	)

	webhookEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_events_total",
			Help: "Received gateway webhook notifications by event kind.",
		},
		[]string{"event"},
	)

	notificationsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_sent_total",
			Help: "Telegram notification sends by outcome.",
		},
		[]string{"status"},
	)
)

// Register registers all collectors exactly once on the default registry.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			paymentsCreated,
			webhookEvents,
			notificationsSent,
		)
	})
}

func ObservePaymentCreated(ok bool) {
	paymentsCreated.WithLabelValues(statusLabel(ok)).Inc()
}

func ObserveWebhookEvent(event string) {
	if event == "" {
		event = "unknown"
	}
	webhookEvents.WithLabelValues(event).Inc()
}

func ObserveNotificationSent(ok bool) {
	notificationsSent.WithLabelValues(statusLabel(ok)).Inc()
}

func statusLabel(ok bool) string {
	if ok {
		return "success"
	}
	return "error"
}
