package payment

import (
	"bytes"
	"casino-backend/internal/config"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const paymentRequestsPath = "/v2/payment-requests"

// PaymentLinkRequest describes one checkout to open at the gateway.
type PaymentLinkRequest struct {
	OrderCode   int64
	Amount      int64
	Description string
	ExpiresAt   time.Time
}

type PaymentLink struct {
	CheckoutURL   string `json:"checkoutUrl"`
	QRCode        string `json:"qrCode"`
	PaymentLinkID string `json:"paymentLinkId"`
}

type createLinkBody struct {
	OrderCode   int64  `json:"orderCode"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	ReturnURL   string `json:"returnUrl"`
	CancelURL   string `json:"cancelUrl"`
	ExpiredAt   int64  `json:"expiredAt,omitempty"`
	Signature   string `json:"signature"`
}

type createLinkResponse struct {
	Code string       `json:"code"`
	Desc string       `json:"desc"`
	Data *PaymentLink `json:"data"`
}

// PayOSClient talks to the PayOS merchant API.
type PayOSClient struct {
	baseURL     string
	clientID    string
	apiKey      string
	checksumKey string
	returnURL   string
	cancelURL   string
	httpClient  *http.Client
}

func NewPayOSClient(cfg config.PayOSConfig) *PayOSClient {
	return &PayOSClient{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		clientID:    cfg.ClientID,
		apiKey:      cfg.APIKey,
		checksumKey: cfg.ChecksumKey,
		returnURL:   cfg.ReturnURL,
		cancelURL:   cfg.CancelURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Configured is false when credentials are missing; callers then fall back to VietQR.
func (c *PayOSClient) Configured() bool {
	return c.clientID != "" && c.apiKey != "" && c.checksumKey != ""
}

func (c *PayOSClient) CreatePaymentLink(ctx context.Context, req PaymentLinkRequest) (*PaymentLink, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("payos: client not configured")
	}

	body := createLinkBody{
		OrderCode:   req.OrderCode,
		Amount:      req.Amount,
		Description: req.Description,
		ReturnURL:   c.returnURL,
		CancelURL:   c.cancelURL,
		Signature:   SignPaymentRequest(c.checksumKey, req.Amount, c.cancelURL, req.Description, req.OrderCode, c.returnURL),
	}
	if !req.ExpiresAt.IsZero() {
		body.ExpiredAt = req.ExpiresAt.Unix()
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+paymentRequestsPath, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-client-id", c.clientID)
	httpReq.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("payos request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("payos status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var out createLinkResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode payos response: %w", err)
	}
	if out.Code != "00" || out.Data == nil {
		return nil, fmt.Errorf("payos error %s: %s", out.Code, out.Desc)
	}
	return out.Data, nil
}

// VerifyWebhookSignature checks a hex HMAC-SHA256 of the raw body in constant time.
func (c *PayOSClient) VerifyWebhookSignature(body []byte, signature string) bool {
	return VerifySignature(c.checksumKey, body, signature)
}

func (c *PayOSClient) HasChecksumKey() bool {
	return c.checksumKey != ""
}

// SignPaymentRequest signs the alphabetically ordered create-link fields.
func SignPaymentRequest(key string, amount int64, cancelURL, description string, orderCode int64, returnURL string) string {
	data := fmt.Sprintf("amount=%d&cancelUrl=%s&description=%s&orderCode=%d&returnUrl=%s",
		amount, cancelURL, description, orderCode, returnURL)
	return Sign(key, []byte(data))
}

func Sign(key string, data []byte) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write(data)
	return hex.EncodeToString(mac.Sum(nil))
}

func VerifySignature(key string, data []byte, signature string) bool {
	if key == "" || signature == "" {
		return false
	}
	expected, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write(data)
	return hmac.Equal(mac.Sum(nil), expected)
}
