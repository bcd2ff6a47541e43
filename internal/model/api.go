package model

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateDepositRequest struct {
	Amount        decimal.Decimal `json:"amount" swaggertype:"number" example:"100000"`
	PromotionCode string          `json:"promotionCode,omitempty" example:"WELCOME10"`
}

type PromotionPreview struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title" example:"Thưởng nạp lần đầu 10%"`
	Type        PromotionType `json:"type" example:"first_deposit"`
	BonusAmount string        `json:"bonusAmount" example:"10000"`
}

type DepositResponse struct {
	TransactionID uuid.UUID         `json:"transactionId"`
	OrderCode     int64             `json:"orderCode" example:"1760860800123456"`
	Amount        string            `json:"amount" example:"100000"`
	Status        TransactionStatus `json:"status" example:"awaiting_payment"`
	PaymentURL    string            `json:"paymentUrl,omitempty" example:"https://pay.payos.vn/web/abc"`
	QRCode        string            `json:"qrCode,omitempty"`
	Promotion     *PromotionPreview `json:"promotion,omitempty"`
}

type PaymentWebhookData struct {
	OrderCode           int64           `json:"orderCode"`
	Amount              decimal.Decimal `json:"amount" swaggertype:"number"`
	Description         string          `json:"description"`
	Status              string          `json:"status,omitempty"`
	Reference           string          `json:"reference,omitempty"`
	TransactionDateTime string          `json:"transactionDateTime,omitempty"`
}

type PaymentWebhookRequest struct {
	Code    string             `json:"code" example:"00"`
	Desc    string             `json:"desc" example:"success"`
	Success *bool              `json:"success,omitempty"`
	Data    PaymentWebhookData `json:"data"`
}

// IsPaid reports a successful payment: gateway code "00" and, when present, data.status PAID.
func (r *PaymentWebhookRequest) IsPaid() bool {
	if r.Code != "00" {
		return false
	}
	status := strings.ToUpper(strings.TrimSpace(r.Data.Status))
	return status == "" || status == "PAID"
}

const (
	WebhookApproved         = "approved"
	WebhookRejected         = "rejected"
	WebhookAlreadyProcessed = "already_processed"
	WebhookIgnored          = "ignored"
)

type WebhookResponse struct {
	Success       bool       `json:"success" example:"true"`
	Status        string     `json:"status" example:"approved"`
	TransactionID *uuid.UUID `json:"transactionId,omitempty"`
}

type GameLoginRequest struct {
	GPID     int    `json:"gpid" binding:"required,min=1" example:"1020"`
	Username string `json:"username" binding:"required" example:"player_01"`
	IsSports bool   `json:"isSports"`
}

type GameLoginResponse struct {
	Success bool   `json:"success" example:"true"`
	GameURL string `json:"gameUrl" example:"https://game.example.com/login?token=x&gpid=1020&gameid=0&device=d&lang=vi-vn"`
}

type CheckUsernameRequest struct {
	Username string `json:"username" binding:"required" example:"player_01"`
}

type CheckUsernameResponse struct {
	Exists      bool `json:"exists"`
	IsAvailable bool `json:"isAvailable"`
}

type RejectDepositRequest struct {
	Note string `json:"note" example:"Không nhận được tiền"`
}

type SettlementResponse struct {
	Transaction *Transaction `json:"transaction"`
	Balance     string       `json:"balance,omitempty" example:"110000.00"`
	Bonus       *Transaction `json:"bonus,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"Số tiền không hợp lệ"`
	Code    string `json:"code,omitempty" example:"INVALID_AMOUNT"`
	Details string `json:"details,omitempty"`
}

type TransactionListResponse struct {
	Transactions []*Transaction `json:"transactions"`
	Total        int            `json:"total"`
	Limit        int            `json:"limit"`
	Offset       int            `json:"offset"`
}

type GameListResponse struct {
	Games  []*Game `json:"games"`
	Total  int     `json:"total"`
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
}

type GenerateCodesRequest struct {
	Count  int    `json:"count" binding:"required,min=1,max=10000" example:"100"`
	Prefix string `json:"prefix" binding:"max=12" example:"TET"`
}

type GenerateCodesResponse struct {
	PromotionID uuid.UUID `json:"promotionId"`
	Codes       []string  `json:"codes"`
}

type PromotionListResponse struct {
	Promotions []*Promotion `json:"promotions"`
}
