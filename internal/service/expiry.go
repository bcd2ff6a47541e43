package service

import (
	"casino-backend/internal/metrics"
	"casino-backend/internal/repository"
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const expiredNote = "Hết hạn thanh toán"

type ExpiryServiceImpl struct {
	transactionRepo repository.TransactionRepository
	dbManager       repository.DBManager
	settler         *settler
	ttl             time.Duration
	batchSize       int
	logger          zerolog.Logger
	now             func() time.Time
}

func NewExpiryService(
	profileRepo repository.ProfileRepository,
	transactionRepo repository.TransactionRepository,
	notificationRepo repository.NotificationRepository,
	dbManager repository.DBManager,
	ttl time.Duration,
	batchSize int,
	logger zerolog.Logger,
) ExpiryService {
	return &ExpiryServiceImpl{
		transactionRepo: transactionRepo,
		dbManager:       dbManager,
		settler:         newSettler(profileRepo, transactionRepo, notificationRepo, nil, logger),
		ttl:             ttl,
		batchSize:       batchSize,
		logger:          logger,
		now:             time.Now,
	}
}

// ExpireStaleDeposits rejects deposits still awaiting payment after the payment link TTL
func (s *ExpiryServiceImpl) ExpireStaleDeposits(ctx context.Context) (int, error) {
	var expiredCount int

	deposits, err := s.transactionRepo.GetStaleAwaitingPayment(ctx, s.now().Add(-s.ttl), s.batchSize)
	if err != nil {
		return 0, fmt.Errorf("get stale deposits: %w", err)
	}

	if len(deposits) == 0 {
		s.logger.Debug().Msg("no stale deposits to expire")
		return 0, nil
	}

	// Each deposit in its own transaction
	for _, deposit := range deposits {
		// Stop quickly on shutdown
		select {
		case <-ctx.Done():
			return expiredCount, ctx.Err()
		default:
		}

		var expired bool
		err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
			// a webhook holding the row wins; skip it this round
			locked, err := s.transactionRepo.LockForExpiry(ctx, deposit.ID, tx)
			if err != nil {
				return fmt.Errorf("lock deposit for expiry: %w", err)
			}
			if !locked {
				s.logger.Debug().Str("transaction_id", deposit.ID.String()).Msg("deposit already settled or locked")
				return nil
			}

			if _, err := s.settler.reject(ctx, deposit, expiredNote, nil, sourceExpiry, tx); err != nil {
				return err
			}
			expired = true
			return nil
		})

		if err != nil {
			s.logger.Error().
				Err(err).
				Str("transaction_id", deposit.ID.String()).
				Str("user_id", deposit.UserID.String()).
				Msg("failed to expire deposit")
		}
		if expired {
			expiredCount++
		}
	}

	metrics.RecordDepositsExpired(expiredCount)
	s.logger.Info().
		Int("requested", len(deposits)).
		Int("expired", expiredCount).
		Msg("stale deposit expiry completed")

	return expiredCount, nil
}
