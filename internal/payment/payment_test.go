package payment

import (
	"casino-backend/internal/config"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayOSConfig(baseURL string) config.PayOSConfig {
	return config.PayOSConfig{
		BaseURL:     baseURL,
		ClientID:    "client",
		APIKey:      "api-key",
		ChecksumKey: "checksum",
		ReturnURL:   "https://casino.example/return",
		CancelURL:   "https://casino.example/cancel",
		Timeout:     time.Second,
	}
}

func TestSignPaymentRequest(t *testing.T) {
	got := SignPaymentRequest("checksum", 100000, "https://c", "NAP123", 123, "https://r")
	want := Sign("checksum", []byte("amount=100000&cancelUrl=https://c&description=NAP123&orderCode=123&returnUrl=https://r"))
	assert.Equal(t, want, got)
	assert.Len(t, got, 64)
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"code":"00"}`)
	sig := Sign("checksum", body)

	assert.True(t, VerifySignature("checksum", body, sig))
	assert.False(t, VerifySignature("checksum", body, Sign("other", body)))
	assert.False(t, VerifySignature("checksum", body, "not-hex"))
	assert.False(t, VerifySignature("", body, sig))
	assert.False(t, VerifySignature("checksum", body, ""))
}

func TestPayOSClient_CreatePaymentLink(t *testing.T) {
	var received createLinkBody
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, paymentRequestsPath, r.URL.Path)
		assert.Equal(t, "client", r.Header.Get("x-client-id"))
		assert.Equal(t, "api-key", r.Header.Get("x-api-key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":"00","desc":"success","data":{"checkoutUrl":"https://pay.payos.vn/web/abc","qrCode":"000201","paymentLinkId":"abc"}}`))
	}))
	defer server.Close()

	client := NewPayOSClient(testPayOSConfig(server.URL))
	link, err := client.CreatePaymentLink(context.Background(), PaymentLinkRequest{
		OrderCode:   123,
		Amount:      100000,
		Description: "NAP123",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://pay.payos.vn/web/abc", link.CheckoutURL)
	assert.Equal(t, "000201", link.QRCode)
	assert.Equal(t, int64(123), received.OrderCode)
	assert.Equal(t, "https://casino.example/return", received.ReturnURL)
	assert.Equal(t, SignPaymentRequest("checksum", 100000, "https://casino.example/cancel", "NAP123", 123, "https://casino.example/return"), received.Signature)
	assert.Zero(t, received.ExpiredAt)
}

func TestPayOSClient_CreatePaymentLink_GatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":"231","desc":"Đơn thanh toán đã tồn tại"}`))
	}))
	defer server.Close()

	client := NewPayOSClient(testPayOSConfig(server.URL))
	_, err := client.CreatePaymentLink(context.Background(), PaymentLinkRequest{OrderCode: 1, Amount: 1000, Description: "NAP1"})
	assert.Error(t, err)
}

func TestPayOSClient_CreatePaymentLink_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewPayOSClient(testPayOSConfig(server.URL))
	_, err := client.CreatePaymentLink(context.Background(), PaymentLinkRequest{OrderCode: 1, Amount: 1000, Description: "NAP1"})
	assert.Error(t, err)
}

func TestVietQR_ImageURL(t *testing.T) {
	qr := NewVietQR(config.VietQRConfig{BankID: "970422", AccountNo: "0123456789", AccountName: "NGUYEN VAN A"})
	require.True(t, qr.Configured())

	raw := qr.ImageURL(100000, "NAP123")
	u, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "img.vietqr.io", u.Host)
	assert.Equal(t, "/image/970422-0123456789-compact2.png", u.Path)
	assert.Equal(t, "100000", u.Query().Get("amount"))
	assert.Equal(t, "NAP123", u.Query().Get("addInfo"))
	assert.Equal(t, "NGUYEN VAN A", u.Query().Get("accountName"))
}

func TestGateway_CreateCheckout_FallsBackToVietQR(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	gw := NewGateway(
		NewPayOSClient(testPayOSConfig(server.URL)),
		NewVietQR(config.VietQRConfig{BankID: "970422", AccountNo: "0123456789"}),
		zerolog.Nop(),
	)

	checkout, err := gw.CreateCheckout(context.Background(), 123, 100000, "NAP123", time.Time{})
	require.NoError(t, err)
	assert.Empty(t, checkout.PaymentURL)
	assert.Contains(t, checkout.QRCode, "https://img.vietqr.io/image/970422-0123456789-compact2.png")
}

func TestGateway_CreateCheckout_NothingConfigured(t *testing.T) {
	gw := NewGateway(NewPayOSClient(config.PayOSConfig{}), NewVietQR(config.VietQRConfig{}), zerolog.Nop())

	checkout, err := gw.CreateCheckout(context.Background(), 123, 100000, "NAP123", time.Time{})
	require.NoError(t, err)
	assert.Empty(t, checkout.PaymentURL)
	assert.Empty(t, checkout.QRCode)
}

func TestGateway_VerifyWebhook(t *testing.T) {
	body := []byte(`{"code":"00"}`)
	gw := NewGateway(NewPayOSClient(testPayOSConfig("http://unused")), nil, zerolog.Nop())

	assert.True(t, gw.VerifyWebhook(body, "", false))
	assert.False(t, gw.VerifyWebhook(body, "", true))
	assert.True(t, gw.VerifyWebhook(body, Sign("checksum", body), true))
	assert.False(t, gw.VerifyWebhook(body, Sign("wrong", body), false))

	noKey := NewGateway(NewPayOSClient(config.PayOSConfig{}), nil, zerolog.Nop())
	assert.True(t, noKey.VerifyWebhook(body, "deadbeef", false))
	assert.False(t, noKey.VerifyWebhook(body, "deadbeef", true))
}
