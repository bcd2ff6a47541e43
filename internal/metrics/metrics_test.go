package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("POST", "/api/v1/deposits", "201", 0.1)
	RecordHTTPRequest("POST", "/api/v1/deposits", "201", 0.2)
	RecordHTTPRequest("POST", "/api/v1/deposits", "400", 0.01)

	assert.Equal(t, float64(2), testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/deposits", "201")))
	assert.Equal(t, float64(1), testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/deposits", "400")))
}

func TestRecordWebhook(t *testing.T) {
	WebhooksTotal.Reset()

	RecordWebhook("approved")
	RecordWebhook("already_processed")
	RecordWebhook("approved")

	assert.Equal(t, float64(2), testutil.ToFloat64(WebhooksTotal.WithLabelValues("approved")))
	assert.Equal(t, float64(1), testutil.ToFloat64(WebhooksTotal.WithLabelValues("already_processed")))
}

func TestRecordBonus(t *testing.T) {
	BonusesAppliedTotal.Reset()
	before := testutil.ToFloat64(BonusAmountTotal)

	RecordBonus("time_based", 10000)

	assert.Equal(t, float64(1), testutil.ToFloat64(BonusesAppliedTotal.WithLabelValues("time_based")))
	assert.Equal(t, before+10000, testutil.ToFloat64(BonusAmountTotal))
}

func TestRecordDepositSettled(t *testing.T) {
	DepositsSettledTotal.Reset()

	RecordDepositSettled("approved", "webhook")
	RecordDepositSettled("rejected", "admin")

	assert.Equal(t, float64(1), testutil.ToFloat64(DepositsSettledTotal.WithLabelValues("approved", "webhook")))
	assert.Equal(t, float64(1), testutil.ToFloat64(DepositsSettledTotal.WithLabelValues("rejected", "admin")))
}

func TestRecordDepositsExpired(t *testing.T) {
	before := testutil.ToFloat64(DepositsExpiredTotal)
	RecordDepositsExpired(3)
	assert.Equal(t, before+3, testutil.ToFloat64(DepositsExpiredTotal))
}
