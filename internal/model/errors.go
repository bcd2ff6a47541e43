package model

import "errors"

var (
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrInvalidUsername        = errors.New("invalid username")
	ErrInvalidPayload         = errors.New("invalid payload")
	ErrInvalidSignature       = errors.New("invalid signature")
	ErrInvalidStatus          = errors.New("invalid status")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrAmountMismatch         = errors.New("amount mismatch")
	ErrProfileNotFound        = errors.New("profile not found")
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrPromotionNotFound      = errors.New("promotion not found")
	ErrPromotionCodeNotFound  = errors.New("promotion code not found")
	ErrTransactionFinalized   = errors.New("transaction already finalized")
	ErrDuplicateOrderCode     = errors.New("duplicate order code")
	ErrDuplicateBonus         = errors.New("bonus already applied")
	ErrWebhookInProgress      = errors.New("webhook for this order is being processed")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrForbidden              = errors.New("forbidden")
	ErrRateLimited            = errors.New("rate limit exceeded")
	ErrGatewayUnavailable     = errors.New("payment gateway unavailable")
	ErrUpstreamUnavailable    = errors.New("game provider unavailable")
)
