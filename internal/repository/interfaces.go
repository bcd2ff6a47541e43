package repository

import (
	"casino-backend/internal/model"
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// DBManager provides database transaction management
type DBManager interface {
	// WithTransaction executes a function within a database transaction
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error
}

// ProfileRepository defines operations for player profiles and balances
type ProfileRepository interface {
	// GetProfile retrieves a profile by user ID
	GetProfile(ctx context.Context, userID uuid.UUID, tx ...pgx.Tx) (*model.Profile, error)

	// GetProfileForUpdate retrieves a profile with row-level lock (must be in transaction)
	GetProfileForUpdate(ctx context.Context, userID uuid.UUID, tx pgx.Tx) (*model.Profile, error)

	// UsernameExists checks a username case-insensitively
	UsernameExists(ctx context.Context, username string) (bool, error)

	// CreditBalance adds amount to the balance in one statement and returns the new balance
	CreditBalance(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, tx pgx.Tx) (decimal.Decimal, error)
}

// TransactionRepository defines operations for deposit and bonus records
type TransactionRepository interface {
	// InsertTransaction creates a new transaction record
	InsertTransaction(ctx context.Context, trans *model.Transaction, tx ...pgx.Tx) error

	// GetTransaction retrieves a transaction by ID
	GetTransaction(ctx context.Context, id uuid.UUID, tx ...pgx.Tx) (*model.Transaction, error)

	// GetTransactionForUpdate retrieves a transaction by ID with row-level lock
	GetTransactionForUpdate(ctx context.Context, id uuid.UUID, tx pgx.Tx) (*model.Transaction, error)

	// GetByOrderCodeForUpdate retrieves a transaction by gateway order code with row-level lock
	GetByOrderCodeForUpdate(ctx context.Context, orderCode int64, tx pgx.Tx) (*model.Transaction, error)

	// HasApprovedDeposit reports whether the user already has an approved deposit
	HasApprovedDeposit(ctx context.Context, userID uuid.UUID, tx ...pgx.Tx) (bool, error)

	// MarkPending hands an awaiting deposit over to manual review
	MarkPending(ctx context.Context, id uuid.UUID, tx ...pgx.Tx) (bool, error)

	// MarkApproved moves a non-terminal transaction to approved
	MarkApproved(ctx context.Context, id uuid.UUID, approvedBy *uuid.UUID, tx pgx.Tx) (bool, error)

	// MarkRejected moves a non-terminal transaction to rejected and records the note
	MarkRejected(ctx context.Context, id uuid.UUID, note string, rejectedBy *uuid.UUID, tx pgx.Tx) (bool, error)

	// ListDeposits retrieves paginated deposits, optionally filtered by status, and the total count
	ListDeposits(ctx context.Context, status *model.TransactionStatus, limit, offset int) ([]*model.Transaction, int, error)

	// GetStaleAwaitingPayment retrieves deposits still awaiting payment created before olderThan
	GetStaleAwaitingPayment(ctx context.Context, olderThan time.Time, limit int) ([]*model.Transaction, error)

	// LockForExpiry locks a deposit row if it is still awaiting payment, skipping rows locked elsewhere
	LockForExpiry(ctx context.Context, id uuid.UUID, tx pgx.Tx) (bool, error)
}

// PromotionRepository defines operations for promotions and one-time codes
type PromotionRepository interface {
	// GetActivePromotions retrieves promotions active at now, newest first
	GetActivePromotions(ctx context.Context, now time.Time, tx ...pgx.Tx) ([]*model.Promotion, error)

	// GetPromotion retrieves a promotion by ID
	GetPromotion(ctx context.Context, id uuid.UUID, tx ...pgx.Tx) (*model.Promotion, error)

	// ListPromotions retrieves all promotions, newest first
	ListPromotions(ctx context.Context, activeOnly bool) ([]*model.Promotion, error)

	// ClaimUse increments current_uses if the promotion still has uses left
	ClaimUse(ctx context.Context, promotionID uuid.UUID, tx pgx.Tx) (bool, error)

	// ReleaseUse gives back a use claimed earlier in the same transaction
	ReleaseUse(ctx context.Context, promotionID uuid.UUID, tx pgx.Tx) error

	// GetUnusedCode retrieves an unused one-time code
	GetUnusedCode(ctx context.Context, code string, tx ...pgx.Tx) (*model.PromotionCode, error)

	// ConsumeCode marks a one-time code used by the user if it is still unused
	ConsumeCode(ctx context.Context, code string, userID uuid.UUID, tx pgx.Tx) (bool, error)

	// InsertCodes bulk inserts one-time codes for a promotion
	InsertCodes(ctx context.Context, promotionID uuid.UUID, codes []string) (int64, error)
}

// GameRepository defines read operations for the game catalog
type GameRepository interface {
	// ListActiveGames retrieves active games ordered by rank, and the total count
	ListActiveGames(ctx context.Context, filter model.GameFilter) ([]*model.Game, int, error)
}

// NotificationRepository defines operations for player notifications
type NotificationRepository interface {
	// InsertNotification creates a notification record
	InsertNotification(ctx context.Context, n *model.Notification, tx ...pgx.Tx) error
}
