package postgres

import (
	"casino-backend/internal/model"
	"casino-backend/internal/repository"
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ repository.NotificationRepository = (*NotificationRepositoryImpl)(nil)

type NotificationRepositoryImpl struct {
	*TransactionManager
}

func NewNotificationRepository(pool *pgxpool.Pool) repository.NotificationRepository {
	return &NotificationRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func (r *NotificationRepositoryImpl) InsertNotification(ctx context.Context, n *model.Notification, tx ...pgx.Tx) error {
	query := `
        INSERT INTO notifications (user_id, title, message, type)
        VALUES ($1, $2, $3, $4)
        RETURNING id, is_read, created_at`

	err := r.getExecutor(tx...).QueryRow(ctx, query, n.UserID, n.Title, n.Message, n.Type).
		Scan(&n.ID, &n.IsRead, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}
