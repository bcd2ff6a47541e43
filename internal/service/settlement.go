package service

import (
	"casino-backend/internal/metrics"
	"casino-backend/internal/model"
	"casino-backend/internal/repository"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const (
	sourceWebhook = "webhook"
	sourceAdmin   = "admin"
	sourceExpiry  = "expiry"
)

// settler performs the single terminal transition of a deposit. Every method expects
// the deposit row to be locked by the caller inside tx.
type settler struct {
	profileRepo      repository.ProfileRepository
	transactionRepo  repository.TransactionRepository
	notificationRepo repository.NotificationRepository
	promotions       PromotionService
	logger           zerolog.Logger
}

func newSettler(
	profileRepo repository.ProfileRepository,
	transactionRepo repository.TransactionRepository,
	notificationRepo repository.NotificationRepository,
	promotions PromotionService,
	logger zerolog.Logger,
) *settler {
	return &settler{
		profileRepo:      profileRepo,
		transactionRepo:  transactionRepo,
		notificationRepo: notificationRepo,
		promotions:       promotions,
		logger:           logger,
	}
}

func (s *settler) approve(ctx context.Context, deposit *model.Transaction, approvedBy *uuid.UUID, source string, tx pgx.Tx) (*model.SettlementResult, error) {
	// the profile lock serializes settlements per user, so the first-deposit
	// check below sees every deposit of this user approved before us
	if _, err := s.profileRepo.GetProfileForUpdate(ctx, deposit.UserID, tx); err != nil {
		return nil, fmt.Errorf("get profile for update: %w", err)
	}

	// read before this deposit turns approved
	hasApproved, err := s.transactionRepo.HasApprovedDeposit(ctx, deposit.UserID, tx)
	if err != nil {
		return nil, fmt.Errorf("check first deposit: %w", err)
	}
	isFirstDeposit := !hasApproved

	updated, err := s.transactionRepo.MarkApproved(ctx, deposit.ID, approvedBy, tx)
	if err != nil {
		return nil, fmt.Errorf("mark approved: %w", err)
	}
	if !updated {
		return nil, model.ErrTransactionFinalized
	}
	deposit.Status = model.StatusApproved
	deposit.ApprovedBy = approvedBy

	balance, err := s.profileRepo.CreditBalance(ctx, deposit.UserID, deposit.Amount, tx)
	if err != nil {
		return nil, fmt.Errorf("credit deposit: %w", err)
	}

	err = s.notificationRepo.InsertNotification(ctx, &model.Notification{
		UserID:  deposit.UserID,
		Title:   "Nạp tiền thành công",
		Message: fmt.Sprintf("Bạn đã nạp thành công %s VND%s", deposit.Amount.StringFixed(0), orderSuffix(deposit)),
		Type:    model.NotificationDeposit,
	}, tx)
	if err != nil {
		return nil, fmt.Errorf("insert deposit notification: %w", err)
	}

	result := &model.SettlementResult{Transaction: deposit, Balance: balance}

	if s.promotions != nil {
		match, err := s.promotions.Match(ctx, model.MatchInput{
			UserID:         deposit.UserID,
			Amount:         deposit.Amount,
			Code:           deposit.StoredPromotionCode(),
			IsFirstDeposit: isFirstDeposit,
		}, tx)
		if err != nil {
			return nil, fmt.Errorf("match promotion: %w", err)
		}
		if match != nil {
			bonus, bonusBalance, err := s.promotions.ApplyBonus(ctx, deposit, match, tx)
			if err != nil {
				return nil, fmt.Errorf("apply bonus: %w", err)
			}
			if bonus != nil {
				result.Bonus = bonus
				result.Balance = bonusBalance
			}
		}
	}

	metrics.RecordDepositSettled(string(model.StatusApproved), source)
	s.logger.Info().
		Str("transaction_id", deposit.ID.String()).
		Str("user_id", deposit.UserID.String()).
		Str("amount", deposit.Amount.StringFixed(0)).
		Bool("first_deposit", isFirstDeposit).
		Bool("bonus", result.Bonus != nil).
		Str("new_balance", result.Balance.StringFixed(2)).
		Str("source", source).
		Msg("deposit approved")

	return result, nil
}

func (s *settler) reject(ctx context.Context, deposit *model.Transaction, note string, rejectedBy *uuid.UUID, source string, tx pgx.Tx) (*model.SettlementResult, error) {
	updated, err := s.transactionRepo.MarkRejected(ctx, deposit.ID, note, rejectedBy, tx)
	if err != nil {
		return nil, fmt.Errorf("mark rejected: %w", err)
	}
	if !updated {
		return nil, model.ErrTransactionFinalized
	}
	deposit.Status = model.StatusRejected
	deposit.AdminNote = note
	deposit.ApprovedBy = rejectedBy

	err = s.notificationRepo.InsertNotification(ctx, &model.Notification{
		UserID:  deposit.UserID,
		Title:   "Nạp tiền thất bại",
		Message: fmt.Sprintf("Giao dịch nạp %s VND%s không thành công: %s", deposit.Amount.StringFixed(0), orderSuffix(deposit), note),
		Type:    model.NotificationDeposit,
	}, tx)
	if err != nil {
		return nil, fmt.Errorf("insert deposit notification: %w", err)
	}

	metrics.RecordDepositSettled(string(model.StatusRejected), source)
	s.logger.Info().
		Str("transaction_id", deposit.ID.String()).
		Str("user_id", deposit.UserID.String()).
		Str("note", note).
		Str("source", source).
		Msg("deposit rejected")

	return &model.SettlementResult{Transaction: deposit}, nil
}

func orderSuffix(t *model.Transaction) string {
	if t.OrderCode == nil {
		return ""
	}
	return fmt.Sprintf(" (mã đơn %d)", *t.OrderCode)
}
