package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casino_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "casino_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	DepositsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casino_deposits_created_total",
			Help: "Total number of deposit orders created",
		},
		[]string{"channel"},
	)

	DepositsSettledTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casino_deposits_settled_total",
			Help: "Total number of deposits reaching a terminal status",
		},
		[]string{"status", "source"},
	)

	WebhooksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casino_payment_webhooks_total",
			Help: "Total number of payment webhooks by outcome",
		},
		[]string{"outcome"},
	)

	BonusesAppliedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casino_bonuses_applied_total",
			Help: "Total number of promotion bonuses credited",
		},
		[]string{"promotion_type"},
	)

	BonusAmountTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "casino_bonus_amount_vnd_total",
			Help: "Sum of bonus amounts credited in VND",
		},
	)

	GameLoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casino_game_logins_total",
			Help: "Total number of game login attempts",
		},
		[]string{"status"},
	)

	DepositsExpiredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "casino_deposits_expired_total",
			Help: "Total number of unpaid deposits expired by the worker",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordDepositCreated(channel string) {
	DepositsCreatedTotal.WithLabelValues(channel).Inc()
}

func RecordDepositSettled(status, source string) {
	DepositsSettledTotal.WithLabelValues(status, source).Inc()
}

func RecordWebhook(outcome string) {
	WebhooksTotal.WithLabelValues(outcome).Inc()
}

func RecordBonus(promotionType string, amount float64) {
	BonusesAppliedTotal.WithLabelValues(promotionType).Inc()
	BonusAmountTotal.Add(amount)
}

func RecordGameLogin(status string) {
	GameLoginsTotal.WithLabelValues(status).Inc()
}

func RecordDepositsExpired(n int) {
	DepositsExpiredTotal.Add(float64(n))
}
