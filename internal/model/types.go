package model

import "strings"

type TransactionType string

const (
	TypeDeposit    TransactionType = "deposit"
	TypeWithdrawal TransactionType = "withdrawal"
	TypeBonus      TransactionType = "bonus"
)

func (t TransactionType) String() string {
	return string(t)
}

type TransactionStatus string

const (
	StatusAwaitingPayment TransactionStatus = "awaiting_payment"
	StatusPending         TransactionStatus = "pending"
	StatusApproved        TransactionStatus = "approved"
	StatusRejected        TransactionStatus = "rejected"
)

func ParseTransactionStatus(s string) (TransactionStatus, error) {
	switch s {
	case string(StatusAwaitingPayment):
		return StatusAwaitingPayment, nil
	case string(StatusPending):
		return StatusPending, nil
	case string(StatusApproved):
		return StatusApproved, nil
	case string(StatusRejected):
		return StatusRejected, nil
	default:
		return "", ErrInvalidStatus
	}
}

// IsTerminal reports whether no further status transition is allowed.
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

func (s TransactionStatus) String() string {
	return string(s)
}

type PromotionType string

const (
	PromotionFirstDeposit PromotionType = "first_deposit"
	PromotionTimeBased    PromotionType = "time_based"
	PromotionCodeBased    PromotionType = "code_based"
)

func ParsePromotionType(s string) (PromotionType, error) {
	switch s {
	case string(PromotionFirstDeposit):
		return PromotionFirstDeposit, nil
	case string(PromotionTimeBased):
		return PromotionTimeBased, nil
	case string(PromotionCodeBased):
		return PromotionCodeBased, nil
	default:
		return "", ErrInvalidPayload
	}
}

func (p PromotionType) String() string {
	return string(p)
}

type NotificationType string

const (
	NotificationDeposit NotificationType = "deposit"
	NotificationBonus   NotificationType = "bonus"
)

// NormalizePromotionCode trims and upper-cases a user supplied code.
func NormalizePromotionCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
