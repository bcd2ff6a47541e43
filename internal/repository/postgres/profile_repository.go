package postgres

import (
	"casino-backend/internal/model"
	"casino-backend/internal/repository"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Ensure implementation satisfies interface at compile time
var _ repository.ProfileRepository = (*ProfileRepositoryImpl)(nil)

// ProfileRepositoryImpl is the PostgreSQL implementation of ProfileRepository
type ProfileRepositoryImpl struct {
	*TransactionManager
}

func NewProfileRepository(pool *pgxpool.Pool) repository.ProfileRepository {
	return &ProfileRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const profileColumns = `user_id, username, balance, full_name, phone_number, created_at, updated_at`

func scanProfile(row pgx.Row) (*model.Profile, error) {
	p := &model.Profile{}
	if err := row.Scan(&p.UserID, &p.Username, &p.Balance, &p.FullName, &p.PhoneNumber, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return p, nil
}

// GetProfile retrieves a profile by user ID
func (r *ProfileRepositoryImpl) GetProfile(ctx context.Context, userID uuid.UUID, tx ...pgx.Tx) (*model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`

	p, err := scanProfile(r.getExecutor(tx...).QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

// GetProfileForUpdate retrieves a profile with row-level lock
func (r *ProfileRepositoryImpl) GetProfileForUpdate(ctx context.Context, userID uuid.UUID, tx pgx.Tx) (*model.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1 FOR UPDATE`

	p, err := scanProfile(tx.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile for update: %w", err)
	}
	return p, nil
}

// UsernameExists checks a username case-insensitively
func (r *ProfileRepositoryImpl) UsernameExists(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM profiles WHERE LOWER(username) = LOWER($1))`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return exists, nil
}

// CreditBalance adds amount to the balance and returns the new balance
func (r *ProfileRepositoryImpl) CreditBalance(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, tx pgx.Tx) (decimal.Decimal, error) {
	query := `
        UPDATE profiles
        SET balance = balance + $1, updated_at = NOW()
        WHERE user_id = $2
        RETURNING balance`

	var balance decimal.Decimal
	err := tx.QueryRow(ctx, query, amount, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, model.ErrProfileNotFound
		}
		return decimal.Zero, fmt.Errorf("failed to credit balance: %w", err)
	}
	return balance, nil
}
