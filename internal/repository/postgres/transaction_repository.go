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
var _ repository.TransactionRepository = (*TransactionRepositoryImpl)(nil)

const transactionColumns = `id, user_id, type, amount, status, order_code, promotion_id, promotion_code,
        parent_id, admin_note, approved_at, approved_by, created_at, updated_at`

// TransactionRepositoryImpl is the PostgreSQL implementation of TransactionRepository
type TransactionRepositoryImpl struct {
	*TransactionManager
}

func NewTransactionRepository(pool *pgxpool.Pool) repository.TransactionRepository {
	return &TransactionRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func scanTransaction(row pgx.Row) (*model.Transaction, error) {
	t := &model.Transaction{}
	err := row.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Status, &t.OrderCode, &t.PromotionID, &t.PromotionCode,
		&t.ParentID, &t.AdminNote, &t.ApprovedAt, &t.ApprovedBy, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func collectTransactions(rows pgx.Rows) ([]*model.Transaction, error) {
	defer rows.Close()

	transactions := make([]*model.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return transactions, nil
}

// InsertTransaction creates a new transaction record
func (r *TransactionRepositoryImpl) InsertTransaction(ctx context.Context, trans *model.Transaction, tx ...pgx.Tx) error {
	query := `
        INSERT INTO transactions (user_id, type, amount, status, order_code, promotion_id, promotion_code,
                                  parent_id, admin_note, approved_at, approved_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id, created_at, updated_at`

	executor := r.getExecutor(tx...)
	err := executor.QueryRow(ctx, query, trans.UserID, trans.Type, trans.Amount, trans.Status, trans.OrderCode,
		trans.PromotionID, trans.PromotionCode, trans.ParentID, trans.AdminNote, trans.ApprovedAt, trans.ApprovedBy).
		Scan(&trans.ID, &trans.CreatedAt, &trans.UpdatedAt)

	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			if constraint == "idx_transactions_bonus_parent" {
				return model.ErrDuplicateBonus
			}
			return model.ErrDuplicateOrderCode
		}
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// GetTransaction retrieves a transaction by ID
func (r *TransactionRepositoryImpl) GetTransaction(ctx context.Context, id uuid.UUID, tx ...pgx.Tx) (*model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	t, err := scanTransaction(r.getExecutor(tx...).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return t, nil
}

// GetTransactionForUpdate retrieves a transaction by ID with row-level lock
func (r *TransactionRepositoryImpl) GetTransactionForUpdate(ctx context.Context, id uuid.UUID, tx pgx.Tx) (*model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1 FOR UPDATE`

	t, err := scanTransaction(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction for update: %w", err)
	}
	return t, nil
}

// GetByOrderCodeForUpdate retrieves a transaction by order code with row-level lock
func (r *TransactionRepositoryImpl) GetByOrderCodeForUpdate(ctx context.Context, orderCode int64, tx pgx.Tx) (*model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE order_code = $1 FOR UPDATE`

	t, err := scanTransaction(tx.QueryRow(ctx, query, orderCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction by order code: %w", err)
	}
	return t, nil
}

// HasApprovedDeposit reports whether the user already has an approved deposit
func (r *TransactionRepositoryImpl) HasApprovedDeposit(ctx context.Context, userID uuid.UUID, tx ...pgx.Tx) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM transactions WHERE user_id = $1 AND type = $2 AND status = $3)`

	var exists bool
	err := r.getExecutor(tx...).QueryRow(ctx, query, userID, model.TypeDeposit, model.StatusApproved).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check approved deposits: %w", err)
	}
	return exists, nil
}

// MarkPending moves a deposit from awaiting_payment to pending. Pending rows are
// never picked up by the expiry worker.
func (r *TransactionRepositoryImpl) MarkPending(ctx context.Context, id uuid.UUID, tx ...pgx.Tx) (bool, error) {
	query := `
		UPDATE transactions
		SET status = $1,
		    updated_at = NOW()
		WHERE id = $2
		  AND status = $3`

	result, err := r.getExecutor(tx...).Exec(ctx, query, model.StatusPending, id, model.StatusAwaitingPayment)
	if err != nil {
		return false, fmt.Errorf("failed to mark transaction pending: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

// MarkApproved moves a non-terminal transaction to approved
func (r *TransactionRepositoryImpl) MarkApproved(ctx context.Context, id uuid.UUID, approvedBy *uuid.UUID, tx pgx.Tx) (bool, error) {
	query := `
		UPDATE transactions
		SET status = $1,
		    approved_at = NOW(),
		    approved_by = $2,
		    updated_at = NOW()
		WHERE id = $3
		  AND status IN ($4, $5)`

	result, err := tx.Exec(ctx, query, model.StatusApproved, approvedBy, id, model.StatusAwaitingPayment, model.StatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to approve transaction: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

// MarkRejected moves a non-terminal transaction to rejected and records the note
func (r *TransactionRepositoryImpl) MarkRejected(ctx context.Context, id uuid.UUID, note string, rejectedBy *uuid.UUID, tx pgx.Tx) (bool, error) {
	query := `
		UPDATE transactions
		SET status = $1,
		    admin_note = $2,
		    approved_by = $3,
		    updated_at = NOW()
		WHERE id = $4
		  AND status IN ($5, $6)`

	result, err := tx.Exec(ctx, query, model.StatusRejected, note, rejectedBy, id, model.StatusAwaitingPayment, model.StatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to reject transaction: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

// ListDeposits retrieves paginated deposits, optionally filtered by status
func (r *TransactionRepositoryImpl) ListDeposits(ctx context.Context, status *model.TransactionStatus, limit, offset int) ([]*model.Transaction, int, error) {
	var filter *string
	if status != nil {
		s := string(*status)
		filter = &s
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM transactions WHERE type = $1 AND ($2::text IS NULL OR status = $2)`
	if err := r.pool.QueryRow(ctx, countQuery, model.TypeDeposit, filter).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count deposits: %w", err)
	}

	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE type = $1 AND ($2::text IS NULL OR status = $2)
        ORDER BY created_at DESC, id DESC
        LIMIT $3 OFFSET $4`

	rows, err := r.pool.Query(ctx, query, model.TypeDeposit, filter, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query deposits: %w", err)
	}
	transactions, err := collectTransactions(rows)
	if err != nil {
		return nil, 0, err
	}
	return transactions, total, nil
}

// GetStaleAwaitingPayment retrieves deposits still awaiting payment created before olderThan
func (r *TransactionRepositoryImpl) GetStaleAwaitingPayment(ctx context.Context, olderThan time.Time, limit int) ([]*model.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE type = $1 AND status = $2 AND created_at < $3
        ORDER BY created_at ASC
        LIMIT $4`

	rows, err := r.pool.Query(ctx, query, model.TypeDeposit, model.StatusAwaitingPayment, olderThan, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale deposits: %w", err)
	}
	return collectTransactions(rows)
}

// LockForExpiry locks a deposit row if it is still awaiting payment
func (r *TransactionRepositoryImpl) LockForExpiry(ctx context.Context, id uuid.UUID, tx pgx.Tx) (bool, error) {
	query := `SELECT id FROM transactions WHERE id = $1 AND status = $2 FOR UPDATE SKIP LOCKED`

	var lockedID uuid.UUID
	err := tx.QueryRow(ctx, query, id, model.StatusAwaitingPayment).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to lock transaction for expiry: %w", err)
	}
	return true, nil
}
