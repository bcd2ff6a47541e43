package service

import (
	"casino-backend/internal/metrics"
	"casino-backend/internal/model"
	"casino-backend/internal/repository"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type PaymentServiceImpl struct {
	transactionRepo  repository.TransactionRepository
	dbManager        repository.DBManager
	gateway          PaymentGateway
	locker           Locker
	settler          *settler
	requireSignature bool
	logger           zerolog.Logger
}

func NewPaymentService(
	profileRepo repository.ProfileRepository,
	transactionRepo repository.TransactionRepository,
	notificationRepo repository.NotificationRepository,
	dbManager repository.DBManager,
	promotions PromotionService,
	gateway PaymentGateway,
	locker Locker,
	requireSignature bool,
	logger zerolog.Logger,
) PaymentService {
	return &PaymentServiceImpl{
		transactionRepo:  transactionRepo,
		dbManager:        dbManager,
		gateway:          gateway,
		locker:           locker,
		settler:          newSettler(profileRepo, transactionRepo, notificationRepo, promotions, logger),
		requireSignature: requireSignature,
		logger:           logger,
	}
}

// HandleWebhook settles the deposit named by a gateway callback. Redeliveries of an
// already settled order are acknowledged without side effects.
func (s *PaymentServiceImpl) HandleWebhook(ctx context.Context, rawBody []byte, signature string) (*model.WebhookResponse, error) {
	if !s.gateway.VerifyWebhook(rawBody, signature, s.requireSignature) {
		metrics.RecordWebhook("invalid_signature")
		return nil, model.ErrInvalidSignature
	}

	var req model.PaymentWebhookRequest
	if err := json.Unmarshal(rawBody, &req); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidPayload, err)
	}
	if req.Data.OrderCode <= 0 {
		return nil, fmt.Errorf("%w: missing order code", model.ErrInvalidPayload)
	}

	orderCode := req.Data.OrderCode
	if s.locker != nil {
		release, acquired, err := s.locker.Acquire(ctx, orderCode)
		switch {
		case err != nil:
			s.logger.Warn().Err(err).Int64("order_code", orderCode).Msg("webhook lock unavailable, relying on row lock")
		case !acquired:
			metrics.RecordWebhook("in_progress")
			return nil, model.ErrWebhookInProgress
		default:
			defer release()
		}
	}

	var resp *model.WebhookResponse
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		deposit, err := s.transactionRepo.GetByOrderCodeForUpdate(ctx, orderCode, tx)
		if err != nil {
			if errors.Is(err, model.ErrTransactionNotFound) {
				resp = &model.WebhookResponse{Success: true, Status: model.WebhookIgnored}
				return nil
			}
			return fmt.Errorf("get deposit by order code: %w", err)
		}

		id := deposit.ID
		// pending deposits may still be paid through a link whose creation response was lost
		if deposit.Status.IsTerminal() {
			resp = &model.WebhookResponse{Success: true, Status: model.WebhookAlreadyProcessed, TransactionID: &id}
			return nil
		}

		if !req.IsPaid() {
			if _, err := s.settler.reject(ctx, deposit, rejectNote(req.Desc), nil, sourceWebhook, tx); err != nil {
				return err
			}
			resp = &model.WebhookResponse{Success: true, Status: model.WebhookRejected, TransactionID: &id}
			return nil
		}

		if !req.Data.Amount.Equal(deposit.Amount) {
			s.logger.Warn().
				Int64("order_code", orderCode).
				Str("expected", deposit.Amount.StringFixed(0)).
				Str("received", req.Data.Amount.String()).
				Msg("webhook amount mismatch")
			return model.ErrAmountMismatch
		}

		if _, err := s.settler.approve(ctx, deposit, nil, sourceWebhook, tx); err != nil {
			return err
		}
		resp = &model.WebhookResponse{Success: true, Status: model.WebhookApproved, TransactionID: &id}
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrAmountMismatch) {
			metrics.RecordWebhook("amount_mismatch")
		} else {
			metrics.RecordWebhook("error")
		}
		return nil, err
	}

	metrics.RecordWebhook(resp.Status)
	s.logger.Info().Int64("order_code", orderCode).Str("code", req.Code).Str("status", resp.Status).Msg("payment webhook handled")
	return resp, nil
}

func rejectNote(desc string) string {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return "Thanh toán không thành công"
	}
	return "Thanh toán không thành công: " + desc
}
