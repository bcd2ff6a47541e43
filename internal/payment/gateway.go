package payment

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Checkout is what the player gets back to complete a deposit. Both fields may be empty.
type Checkout struct {
	PaymentURL string
	QRCode     string
}

// Gateway tries PayOS first and falls back to a VietQR image.
type Gateway struct {
	payos  *PayOSClient
	vietqr *VietQR
	logger zerolog.Logger
}

func NewGateway(payos *PayOSClient, vietqr *VietQR, logger zerolog.Logger) *Gateway {
	return &Gateway{payos: payos, vietqr: vietqr, logger: logger}
}

func (g *Gateway) CreateCheckout(ctx context.Context, orderCode, amount int64, description string, expiresAt time.Time) (*Checkout, error) {
	if g.payos != nil && g.payos.Configured() {
		link, err := g.payos.CreatePaymentLink(ctx, PaymentLinkRequest{
			OrderCode:   orderCode,
			Amount:      amount,
			Description: description,
			ExpiresAt:   expiresAt,
		})
		if err == nil {
			return &Checkout{PaymentURL: link.CheckoutURL, QRCode: link.QRCode}, nil
		}
		g.logger.Warn().Err(err).Int64("order_code", orderCode).Msg("payos payment link failed, falling back to vietqr")
	}

	if g.vietqr != nil && g.vietqr.Configured() {
		return &Checkout{QRCode: g.vietqr.ImageURL(amount, description)}, nil
	}

	return &Checkout{}, nil
}

// VerifyWebhook reports whether the delivery may be processed.
// A missing signature passes unless required; a present one must match when a key is configured.
func (g *Gateway) VerifyWebhook(body []byte, signature string, required bool) bool {
	if signature == "" {
		return !required
	}
	if g.payos == nil || !g.payos.HasChecksumKey() {
		return !required
	}
	return g.payos.VerifyWebhookSignature(body, signature)
}
