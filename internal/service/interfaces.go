package service

import (
	"casino-backend/internal/model"
	"casino-backend/internal/payment"
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// DepositService defines deposit order creation and manual settlement
type DepositService interface {
	CreateDeposit(ctx context.Context, userID uuid.UUID, req *model.CreateDepositRequest) (*model.DepositResponse, error)
	GetDeposit(ctx context.Context, userID, id uuid.UUID) (*model.Transaction, error)
	ApproveDeposit(ctx context.Context, id, adminID uuid.UUID) (*model.SettlementResult, error)
	RejectDeposit(ctx context.Context, id, adminID uuid.UUID, note string) (*model.SettlementResult, error)
	ListDeposits(ctx context.Context, status *model.TransactionStatus, limit, offset int) (*model.TransactionListResponse, error)
}

// PaymentService reconciles gateway webhooks with stored deposits
type PaymentService interface {
	HandleWebhook(ctx context.Context, rawBody []byte, signature string) (*model.WebhookResponse, error)
}

// PromotionService selects and applies deposit promotions
type PromotionService interface {
	// Match picks at most one promotion for a deposit; nil means none applies
	Match(ctx context.Context, in model.MatchInput, tx ...pgx.Tx) (*model.PromotionMatch, error)

	// ApplyBonus credits the bonus for an approved deposit and returns the bonus transaction
	// and new balance; a nil transaction means no bonus was granted
	ApplyBonus(ctx context.Context, deposit *model.Transaction, match *model.PromotionMatch, tx pgx.Tx) (*model.Transaction, decimal.Decimal, error)

	ListPromotions(ctx context.Context, activeOnly bool) ([]*model.Promotion, error)
	GenerateCodes(ctx context.Context, promotionID uuid.UUID, count int, prefix string) ([]string, error)
}

// GameService defines the game catalog and provider login
type GameService interface {
	Login(ctx context.Context, userID uuid.UUID, req *model.GameLoginRequest, userAgent string) (*model.GameLoginResponse, error)
	ListGames(ctx context.Context, filter model.GameFilter) (*model.GameListResponse, error)
}

// AccountService defines account lookups available before sign up
type AccountService interface {
	CheckUsername(ctx context.Context, username string) (*model.CheckUsernameResponse, error)
}

// ExpiryService rejects deposits whose payment window has passed
type ExpiryService interface {
	ExpireStaleDeposits(ctx context.Context) (int, error)
}

// PaymentGateway opens checkouts and authenticates webhooks
type PaymentGateway interface {
	CreateCheckout(ctx context.Context, orderCode, amount int64, description string, expiresAt time.Time) (*payment.Checkout, error)
	VerifyWebhook(body []byte, signature string, required bool) bool
}

// GameLauncher obtains a launch URL from the game provider
type GameLauncher interface {
	Login(ctx context.Context, username string, gpid int, isSports bool, userAgent string) (string, error)
}

type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Locker is a best-effort distributed lock; the database row lock stays authoritative
type Locker interface {
	Acquire(ctx context.Context, orderCode int64) (func(), bool, error)
}

type GameCache interface {
	Get(ctx context.Context, filter model.GameFilter) (*model.GameListResponse, error)
	Set(ctx context.Context, filter model.GameFilter, list *model.GameListResponse) error
}
