package service

import (
	"casino-backend/internal/config"
	"casino-backend/internal/metrics"
	"casino-backend/internal/model"
	"casino-backend/internal/payment"
	"casino-backend/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	maxOrderCodeAttempts = 3
	defaultRejectNote    = "Từ chối bởi quản trị viên"
)

type DepositServiceImpl struct {
	profileRepo     repository.ProfileRepository
	transactionRepo repository.TransactionRepository
	dbManager       repository.DBManager
	promotions      PromotionService
	gateway         PaymentGateway
	rateLimiter     RateLimiter
	settler         *settler
	cfg             config.DepositConfig
	logger          zerolog.Logger
	now             func() time.Time
	newOrderCode    func(time.Time) int64
}

func NewDepositService(
	profileRepo repository.ProfileRepository,
	transactionRepo repository.TransactionRepository,
	notificationRepo repository.NotificationRepository,
	dbManager repository.DBManager,
	promotions PromotionService,
	gateway PaymentGateway,
	rateLimiter RateLimiter,
	cfg config.DepositConfig,
	logger zerolog.Logger,
) DepositService {
	return &DepositServiceImpl{
		profileRepo:     profileRepo,
		transactionRepo: transactionRepo,
		dbManager:       dbManager,
		promotions:      promotions,
		gateway:         gateway,
		rateLimiter:     rateLimiter,
		settler:         newSettler(profileRepo, transactionRepo, notificationRepo, promotions, logger),
		cfg:             cfg,
		logger:          logger,
		now:             time.Now,
		newOrderCode:    generateOrderCode,
	}
}

// generateOrderCode packs the unix time and 6 random digits into a positive
// number that stays below 2^53, the largest order code the gateway accepts.
func generateOrderCode(now time.Time) int64 {
	return (now.Unix()%1_000_000_000)*1_000_000 + int64(uuid.New().ID()%1_000_000)
}

func (s *DepositServiceImpl) validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", model.ErrInvalidAmount)
	}
	if !amount.Equal(amount.Truncate(0)) {
		return fmt.Errorf("%w: amount must be a whole number of VND", model.ErrInvalidAmount)
	}
	if s.cfg.MinAmount > 0 && amount.LessThan(decimal.NewFromInt(s.cfg.MinAmount)) {
		return fmt.Errorf("%w: amount below minimum %d", model.ErrInvalidAmount, s.cfg.MinAmount)
	}
	if s.cfg.MaxAmount > 0 && amount.GreaterThan(decimal.NewFromInt(s.cfg.MaxAmount)) {
		return fmt.Errorf("%w: amount above maximum %d", model.ErrInvalidAmount, s.cfg.MaxAmount)
	}
	return nil
}

func (s *DepositServiceImpl) CreateDeposit(ctx context.Context, userID uuid.UUID, req *model.CreateDepositRequest) (*model.DepositResponse, error) {
	// Validate inputs early, before touching the store
	if err := s.validateAmount(req.Amount); err != nil {
		return nil, err
	}

	if s.rateLimiter != nil {
		allowed, err := s.rateLimiter.Allow(ctx, userID.String())
		if err != nil {
			s.logger.Warn().Err(err).Str("user_id", userID.String()).Msg("deposit rate limit check failed, allowing request")
		} else if !allowed {
			return nil, model.ErrRateLimited
		}
	}

	if _, err := s.profileRepo.GetProfile(ctx, userID); err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	hasApproved, err := s.transactionRepo.HasApprovedDeposit(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check first deposit: %w", err)
	}

	match, err := s.promotions.Match(ctx, model.MatchInput{
		UserID:         userID,
		Amount:         req.Amount,
		Code:           req.PromotionCode,
		IsFirstDeposit: !hasApproved,
	})
	if err != nil {
		return nil, fmt.Errorf("match promotion: %w", err)
	}

	var storedCode *string
	if code := model.NormalizePromotionCode(req.PromotionCode); code != "" {
		storedCode = &code
	}

	now := s.now()
	var trans *model.Transaction
	for attempt := 1; ; attempt++ {
		orderCode := s.newOrderCode(now)
		trans = &model.Transaction{
			UserID:        userID,
			Type:          model.TypeDeposit,
			Amount:        req.Amount,
			Status:        model.StatusAwaitingPayment,
			OrderCode:     &orderCode,
			PromotionCode: storedCode,
			AdminNote:     fmt.Sprintf("Nạp tiền - Mã đơn: %d", orderCode),
		}

		err = s.transactionRepo.InsertTransaction(ctx, trans)
		if err == nil {
			break
		}
		if errors.Is(err, model.ErrDuplicateOrderCode) && attempt < maxOrderCodeAttempts {
			s.logger.Warn().Int64("order_code", orderCode).Int("attempt", attempt).Msg("order code collision, retrying")
			continue
		}
		return nil, fmt.Errorf("insert deposit: %w", err)
	}

	orderCode := *trans.OrderCode
	description := fmt.Sprintf("NAP%d", orderCode)
	checkout, err := s.gateway.CreateCheckout(ctx, orderCode, req.Amount.IntPart(), description, now.Add(s.cfg.PaymentLinkTTL))
	if err != nil {
		s.logger.Error().Err(err).Int64("order_code", orderCode).Msg("create checkout failed")
		checkout = &payment.Checkout{}
	}

	// no gateway link means no webhook will ever settle it; an admin has to
	if checkout.PaymentURL == "" {
		if _, err := s.transactionRepo.MarkPending(ctx, trans.ID); err != nil {
			return nil, fmt.Errorf("mark deposit pending: %w", err)
		}
		trans.Status = model.StatusPending
	}

	resp := &model.DepositResponse{
		TransactionID: trans.ID,
		OrderCode:     orderCode,
		Amount:        req.Amount.StringFixed(0),
		Status:        trans.Status,
		PaymentURL:    checkout.PaymentURL,
		QRCode:        checkout.QRCode,
	}
	if match != nil {
		resp.Promotion = &model.PromotionPreview{
			ID:          match.Promotion.ID,
			Title:       match.Promotion.Title,
			Type:        match.Promotion.Type,
			BonusAmount: match.Promotion.CalculateBonus(req.Amount).StringFixed(0),
		}
	}

	metrics.RecordDepositCreated(checkoutChannel(checkout))
	s.logger.Info().
		Str("transaction_id", trans.ID.String()).
		Str("user_id", userID.String()).
		Int64("order_code", orderCode).
		Str("amount", req.Amount.StringFixed(0)).
		Bool("promotion_preview", match != nil).
		Msg("deposit order created")

	return resp, nil
}

func checkoutChannel(c *payment.Checkout) string {
	switch {
	case c.PaymentURL != "":
		return "payos"
	case c.QRCode != "":
		return "vietqr"
	default:
		return "manual"
	}
}

// GetDeposit hides other users' deposits behind ErrTransactionNotFound.
func (s *DepositServiceImpl) GetDeposit(ctx context.Context, userID, id uuid.UUID) (*model.Transaction, error) {
	trans, err := s.transactionRepo.GetTransaction(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get deposit: %w", err)
	}
	if trans.UserID != userID || trans.Type != model.TypeDeposit {
		return nil, model.ErrTransactionNotFound
	}
	return trans, nil
}

func (s *DepositServiceImpl) lockDeposit(ctx context.Context, id uuid.UUID, tx pgx.Tx) (*model.Transaction, error) {
	deposit, err := s.transactionRepo.GetTransactionForUpdate(ctx, id, tx)
	if err != nil {
		return nil, fmt.Errorf("get deposit for update: %w", err)
	}
	if deposit.Type != model.TypeDeposit {
		return nil, model.ErrInvalidTransactionType
	}
	if deposit.Status.IsTerminal() {
		return nil, model.ErrTransactionFinalized
	}
	return deposit, nil
}

func (s *DepositServiceImpl) ApproveDeposit(ctx context.Context, id, adminID uuid.UUID) (*model.SettlementResult, error) {
	var result *model.SettlementResult
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		deposit, err := s.lockDeposit(ctx, id, tx)
		if err != nil {
			return err
		}
		result, err = s.settler.approve(ctx, deposit, &adminID, sourceAdmin, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *DepositServiceImpl) RejectDeposit(ctx context.Context, id, adminID uuid.UUID, note string) (*model.SettlementResult, error) {
	if note == "" {
		note = defaultRejectNote
	}

	var result *model.SettlementResult
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		deposit, err := s.lockDeposit(ctx, id, tx)
		if err != nil {
			return err
		}
		result, err = s.settler.reject(ctx, deposit, note, &adminID, sourceAdmin, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *DepositServiceImpl) ListDeposits(ctx context.Context, status *model.TransactionStatus, limit, offset int) (*model.TransactionListResponse, error) {
	transactions, total, err := s.transactionRepo.ListDeposits(ctx, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list deposits: %w", err)
	}
	return &model.TransactionListResponse{
		Transactions: transactions,
		Total:        total,
		Limit:        limit,
		Offset:       offset,
	}, nil
}
