package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type Profile struct {
	UserID      uuid.UUID       `json:"user_id"`
	Username    string          `json:"username"`
	Balance     decimal.Decimal `json:"balance"`
	FullName    *string         `json:"full_name,omitempty"`
	PhoneNumber *string         `json:"phone_number,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type Transaction struct {
	ID            uuid.UUID         `json:"id"`
	UserID        uuid.UUID         `json:"user_id"`
	Type          TransactionType   `json:"type"`
	Amount        decimal.Decimal   `json:"amount"`
	Status        TransactionStatus `json:"status"`
	OrderCode     *int64            `json:"order_code,omitempty"`
	PromotionID   *uuid.UUID        `json:"promotion_id,omitempty"`
	PromotionCode *string           `json:"promotion_code,omitempty"`
	ParentID      *uuid.UUID        `json:"parent_id,omitempty"`
	AdminNote     string            `json:"admin_note"`
	ApprovedAt    *time.Time        `json:"approved_at,omitempty"`
	ApprovedBy    *uuid.UUID        `json:"approved_by,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// StoredPromotionCode returns the code recorded at deposit creation, or "".
func (t *Transaction) StoredPromotionCode() string {
	if t.PromotionCode == nil {
		return ""
	}
	return *t.PromotionCode
}

type Promotion struct {
	ID                 uuid.UUID           `json:"id"`
	Title              string              `json:"title"`
	Description        string              `json:"description"`
	Type               PromotionType       `json:"promotion_type"`
	BonusPercentage    decimal.NullDecimal `json:"bonus_percentage"`
	BonusAmount        decimal.NullDecimal `json:"bonus_amount"`
	MaxBonus           decimal.NullDecimal `json:"max_bonus"`
	MinDeposit         decimal.Decimal     `json:"min_deposit"`
	MaxUses            *int                `json:"max_uses,omitempty"`
	CurrentUses        int                 `json:"current_uses"`
	StartDate          *time.Time          `json:"start_date,omitempty"`
	EndDate            *time.Time          `json:"end_date,omitempty"`
	IsActive           bool                `json:"is_active"`
	PromotionCode      *string             `json:"promotion_code,omitempty"`
	IsFirstDepositOnly bool                `json:"is_first_deposit_only"`
	CreatedAt          time.Time           `json:"created_at"`
}

// HasRemainingUses is false once current_uses reached max_uses. A nil max_uses means unlimited.
func (p *Promotion) HasRemainingUses() bool {
	return p.MaxUses == nil || p.CurrentUses < *p.MaxUses
}

func (p *Promotion) RequiresFirstDeposit() bool {
	return p.Type == PromotionFirstDeposit || p.IsFirstDepositOnly
}

// ActiveAt checks the is_active flag and the optional [start_date, end_date] window.
func (p *Promotion) ActiveAt(now time.Time) bool {
	if !p.IsActive {
		return false
	}
	if p.StartDate != nil && now.Before(*p.StartDate) {
		return false
	}
	if p.EndDate != nil && now.After(*p.EndDate) {
		return false
	}
	return true
}

// Eligible runs the usage, minimum deposit and first-deposit checks shared by every match path.
func (p *Promotion) Eligible(amount decimal.Decimal, isFirstDeposit bool) bool {
	if !p.HasRemainingUses() {
		return false
	}
	if amount.LessThan(p.MinDeposit) {
		return false
	}
	if p.RequiresFirstDeposit() && !isFirstDeposit {
		return false
	}
	return true
}

// CalculateBonus returns the whole-VND bonus for a deposit amount.
// A positive percentage wins over a flat amount; max_bonus caps the result.
func (p *Promotion) CalculateBonus(amount decimal.Decimal) decimal.Decimal {
	var bonus decimal.Decimal
	switch {
	case p.BonusPercentage.Valid && p.BonusPercentage.Decimal.IsPositive():
		bonus = amount.Mul(p.BonusPercentage.Decimal).Div(hundred)
	case p.BonusAmount.Valid:
		bonus = p.BonusAmount.Decimal
	}

	if p.MaxBonus.Valid && p.MaxBonus.Decimal.IsPositive() && bonus.GreaterThan(p.MaxBonus.Decimal) {
		bonus = p.MaxBonus.Decimal
	}

	bonus = bonus.Floor()
	if bonus.IsNegative() {
		return decimal.Zero
	}
	return bonus
}

// BonusReason is the human readable note stored on the bonus transaction.
func (p *Promotion) BonusReason(deposit decimal.Decimal, bonus decimal.Decimal) string {
	if p.BonusPercentage.Valid && p.BonusPercentage.Decimal.IsPositive() {
		return fmt.Sprintf("Thưởng khuyến mãi \"%s\": %s%% của %s VND = %s VND",
			p.Title, p.BonusPercentage.Decimal.String(), deposit.StringFixed(0), bonus.StringFixed(0))
	}
	return fmt.Sprintf("Thưởng khuyến mãi \"%s\": %s VND", p.Title, bonus.StringFixed(0))
}

type PromotionCode struct {
	ID          uuid.UUID  `json:"id"`
	Code        string     `json:"code"`
	PromotionID uuid.UUID  `json:"promotion_id"`
	IsUsed      bool       `json:"is_used"`
	UsedBy      *uuid.UUID `json:"used_by,omitempty"`
	UsedAt      *time.Time `json:"used_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type Game struct {
	GameID   string  `json:"game_id"`
	GPID     int     `json:"gpid"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Provider string  `json:"provider"`
	ImageURL *string `json:"image_url,omitempty"`
	IsActive bool    `json:"is_active"`
	Rank     int     `json:"rank"`
}

type GameFilter struct {
	Category string
	Provider string
	Limit    int
	Offset   int
}

// CacheKey identifies a filtered game list page in the cache.
func (f GameFilter) CacheKey() string {
	return fmt.Sprintf("games:%s:%s:%d:%d", f.Category, f.Provider, f.Limit, f.Offset)
}

type Notification struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"user_id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}

// MatchInput is everything the promotion matcher needs to pick a promotion.
type MatchInput struct {
	UserID         uuid.UUID
	Amount         decimal.Decimal
	Code           string
	IsFirstDeposit bool
}

// PromotionMatch is the single promotion selected for a deposit.
// Code is set only when a one-time promotion_codes row must be consumed.
type PromotionMatch struct {
	Promotion *Promotion
	Code      string
}

type SettlementResult struct {
	Transaction *Transaction
	Balance     decimal.Decimal
	Bonus       *Transaction
}
