package postgres

import (
	"casino-backend/internal/model"
	"casino-backend/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.PromotionRepository = (*PromotionRepositoryImpl)(nil)

// PromotionRepositoryImpl is the PostgreSQL implementation of PromotionRepository
type PromotionRepositoryImpl struct {
	*TransactionManager
}

func NewPromotionRepository(pool *pgxpool.Pool) repository.PromotionRepository {
	return &PromotionRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const promotionColumns = `id, title, description, promotion_type, bonus_percentage, bonus_amount, max_bonus,
        min_deposit, max_uses, current_uses, start_date, end_date, is_active, promotion_code,
        is_first_deposit_only, created_at`

func scanPromotion(row pgx.Row) (*model.Promotion, error) {
	p := &model.Promotion{}
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Type, &p.BonusPercentage, &p.BonusAmount, &p.MaxBonus,
		&p.MinDeposit, &p.MaxUses, &p.CurrentUses, &p.StartDate, &p.EndDate, &p.IsActive, &p.PromotionCode,
		&p.IsFirstDepositOnly, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func collectPromotions(rows pgx.Rows) ([]*model.Promotion, error) {
	defer rows.Close()

	promotions := make([]*model.Promotion, 0)
	for rows.Next() {
		p, err := scanPromotion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan promotion: %w", err)
		}
		promotions = append(promotions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate promotions: %w", err)
	}
	return promotions, nil
}

// GetActivePromotions retrieves promotions active at now.
// created_at DESC, id DESC keeps the matcher deterministic when timestamps tie.
func (r *PromotionRepositoryImpl) GetActivePromotions(ctx context.Context, now time.Time, tx ...pgx.Tx) ([]*model.Promotion, error) {
	query := `
        SELECT ` + promotionColumns + `
        FROM promotions
        WHERE is_active = TRUE
          AND (start_date IS NULL OR start_date <= $1)
          AND (end_date IS NULL OR end_date >= $1)
        ORDER BY created_at DESC, id DESC`

	rows, err := r.getExecutor(tx...).Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to query active promotions: %w", err)
	}
	return collectPromotions(rows)
}

// GetPromotion retrieves a promotion by ID
func (r *PromotionRepositoryImpl) GetPromotion(ctx context.Context, id uuid.UUID, tx ...pgx.Tx) (*model.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotions WHERE id = $1`

	p, err := scanPromotion(r.getExecutor(tx...).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPromotionNotFound
		}
		return nil, fmt.Errorf("failed to get promotion: %w", err)
	}
	return p, nil
}

// ListPromotions retrieves all promotions, newest first
func (r *PromotionRepositoryImpl) ListPromotions(ctx context.Context, activeOnly bool) ([]*model.Promotion, error) {
	query := `
        SELECT ` + promotionColumns + `
        FROM promotions
        WHERE ($1 = FALSE OR is_active = TRUE)
        ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to query promotions: %w", err)
	}
	return collectPromotions(rows)
}

// ClaimUse increments current_uses if the promotion still has uses left
func (r *PromotionRepositoryImpl) ClaimUse(ctx context.Context, promotionID uuid.UUID, tx pgx.Tx) (bool, error) {
	query := `
		UPDATE promotions
		SET current_uses = current_uses + 1,
		    updated_at = NOW()
		WHERE id = $1
		  AND (max_uses IS NULL OR current_uses < max_uses)`

	result, err := tx.Exec(ctx, query, promotionID)
	if err != nil {
		return false, fmt.Errorf("failed to claim promotion use: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

// ReleaseUse gives back a use claimed earlier in the same transaction
func (r *PromotionRepositoryImpl) ReleaseUse(ctx context.Context, promotionID uuid.UUID, tx pgx.Tx) error {
	query := `
		UPDATE promotions
		SET current_uses = current_uses - 1,
		    updated_at = NOW()
		WHERE id = $1
		  AND current_uses > 0`

	if _, err := tx.Exec(ctx, query, promotionID); err != nil {
		return fmt.Errorf("failed to release promotion use: %w", err)
	}
	return nil
}

// GetUnusedCode retrieves an unused one-time code
func (r *PromotionRepositoryImpl) GetUnusedCode(ctx context.Context, code string, tx ...pgx.Tx) (*model.PromotionCode, error) {
	query := `
        SELECT id, code, promotion_id, is_used, used_by, used_at, created_at
        FROM promotion_codes
        WHERE code = $1 AND is_used = FALSE`

	c := &model.PromotionCode{}
	err := r.getExecutor(tx...).QueryRow(ctx, query, model.NormalizePromotionCode(code)).
		Scan(&c.ID, &c.Code, &c.PromotionID, &c.IsUsed, &c.UsedBy, &c.UsedAt, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPromotionCodeNotFound
		}
		return nil, fmt.Errorf("failed to get promotion code: %w", err)
	}
	return c, nil
}

// ConsumeCode marks a one-time code used by the user if it is still unused
func (r *PromotionRepositoryImpl) ConsumeCode(ctx context.Context, code string, userID uuid.UUID, tx pgx.Tx) (bool, error) {
	query := `
		UPDATE promotion_codes
		SET is_used = TRUE,
		    used_by = $1,
		    used_at = NOW()
		WHERE code = $2
		  AND is_used = FALSE`

	result, err := tx.Exec(ctx, query, userID, model.NormalizePromotionCode(code))
	if err != nil {
		return false, fmt.Errorf("failed to consume promotion code: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

// InsertCodes bulk inserts one-time codes for a promotion
func (r *PromotionRepositoryImpl) InsertCodes(ctx context.Context, promotionID uuid.UUID, codes []string) (int64, error) {
	rows := make([][]any, 0, len(codes))
	for _, code := range codes {
		rows = append(rows, []any{model.NormalizePromotionCode(code), promotionID})
	}

	n, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"promotion_codes"},
		[]string{"code", "promotion_id"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return 0, fmt.Errorf("%w: promotion code already exists", model.ErrInvalidPayload)
		}
		return 0, fmt.Errorf("failed to insert promotion codes: %w", err)
	}
	return n, nil
}
