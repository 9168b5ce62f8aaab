package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Webhook 投递结果
const (
	OutcomeMissingHeaders   = "missing_headers"
	OutcomeInvalidSignature = "invalid_signature"
	OutcomeMalformed        = "malformed"
	OutcomeSkipped          = "skipped"
	OutcomeSynced           = "synced"
	OutcomeStoreError       = "store_error"
)

var (
	WebhookDeliveries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "usersync_webhook_deliveries_total",
			Help: "Clerk webhook deliveries by outcome",
		},
		[]string{"outcome"},
	)

	UserUpserts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "usersync_user_upserts_total",
			Help: "User upserts by event type",
		},
		[]string{"event_type"}, // user.created | user.updated
	)
)

func MustRegister(r prometheus.Registerer) {
	r.MustRegister(
		WebhookDeliveries,
		UserUpserts,
	)
}
