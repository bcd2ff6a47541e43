package service

import (
	"casino-backend/internal/metrics"
	"casino-backend/internal/model"
	"casino-backend/internal/repository"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	codeAlphabet   = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeRandomLen  = 8
	maxCodesPerRun = 10000
)

type PromotionServiceImpl struct {
	promotionRepo    repository.PromotionRepository
	transactionRepo  repository.TransactionRepository
	profileRepo      repository.ProfileRepository
	notificationRepo repository.NotificationRepository
	logger           zerolog.Logger
	now              func() time.Time
}

func NewPromotionService(
	promotionRepo repository.PromotionRepository,
	transactionRepo repository.TransactionRepository,
	profileRepo repository.ProfileRepository,
	notificationRepo repository.NotificationRepository,
	logger zerolog.Logger,
) PromotionService {
	return &PromotionServiceImpl{
		promotionRepo:    promotionRepo,
		transactionRepo:  transactionRepo,
		profileRepo:      profileRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
		now:              time.Now,
	}
}

// Match applies the precedence rules: an explicit code first, then the first eligible
// automatic promotion in created_at DESC, id DESC order. Code-based promotions never match automatically.
func (s *PromotionServiceImpl) Match(ctx context.Context, in model.MatchInput, tx ...pgx.Tx) (*model.PromotionMatch, error) {
	promotions, err := s.promotionRepo.GetActivePromotions(ctx, s.now(), tx...)
	if err != nil {
		return nil, fmt.Errorf("get active promotions: %w", err)
	}

	code := model.NormalizePromotionCode(in.Code)
	if code != "" {
		match, err := s.matchCode(ctx, promotions, code, in, tx...)
		if err != nil {
			return nil, err
		}
		if match != nil {
			return match, nil
		}
		s.logger.Debug().Str("user_id", in.UserID.String()).Str("code", code).Msg("promotion code not applicable, falling back to automatic matching")
	}

	for _, p := range promotions {
		if p.Type == model.PromotionCodeBased {
			continue
		}
		if p.Eligible(in.Amount, in.IsFirstDeposit) {
			return &model.PromotionMatch{Promotion: p}, nil
		}
	}

	return nil, nil
}

func (s *PromotionServiceImpl) matchCode(ctx context.Context, promotions []*model.Promotion, code string, in model.MatchInput, tx ...pgx.Tx) (*model.PromotionMatch, error) {
	for _, p := range promotions {
		if p.Type != model.PromotionCodeBased || p.PromotionCode == nil {
			continue
		}
		if model.NormalizePromotionCode(*p.PromotionCode) == code {
			if p.Eligible(in.Amount, in.IsFirstDeposit) {
				return &model.PromotionMatch{Promotion: p}, nil
			}
			return nil, nil
		}
	}

	oneTime, err := s.promotionRepo.GetUnusedCode(ctx, code, tx...)
	if err != nil {
		if errors.Is(err, model.ErrPromotionCodeNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get promotion code: %w", err)
	}

	for _, p := range promotions {
		if p.ID == oneTime.PromotionID {
			if p.Eligible(in.Amount, in.IsFirstDeposit) {
				return &model.PromotionMatch{Promotion: p, Code: oneTime.Code}, nil
			}
			return nil, nil
		}
	}

	// code belongs to an inactive or expired promotion
	return nil, nil
}

// ApplyBonus must run in the same transaction that approved the deposit.
func (s *PromotionServiceImpl) ApplyBonus(ctx context.Context, deposit *model.Transaction, match *model.PromotionMatch, tx pgx.Tx) (*model.Transaction, decimal.Decimal, error) {
	if match == nil || match.Promotion == nil {
		return nil, decimal.Zero, nil
	}
	p := match.Promotion

	bonus := p.CalculateBonus(deposit.Amount)
	if !bonus.IsPositive() {
		return nil, decimal.Zero, nil
	}

	claimed, err := s.promotionRepo.ClaimUse(ctx, p.ID, tx)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("claim promotion use: %w", err)
	}
	if !claimed {
		s.logger.Warn().Str("promotion_id", p.ID.String()).Str("deposit_id", deposit.ID.String()).Msg("promotion has no uses left, bonus skipped")
		return nil, decimal.Zero, nil
	}

	if match.Code != "" {
		consumed, err := s.promotionRepo.ConsumeCode(ctx, match.Code, deposit.UserID, tx)
		if err != nil {
			return nil, decimal.Zero, fmt.Errorf("consume promotion code: %w", err)
		}
		if !consumed {
			if err := s.promotionRepo.ReleaseUse(ctx, p.ID, tx); err != nil {
				return nil, decimal.Zero, fmt.Errorf("release promotion use: %w", err)
			}
			s.logger.Warn().Str("code", match.Code).Str("deposit_id", deposit.ID.String()).Msg("promotion code already used, bonus skipped")
			return nil, decimal.Zero, nil
		}
	}

	now := s.now()
	promotionID := p.ID
	depositID := deposit.ID
	bonusTx := &model.Transaction{
		UserID:      deposit.UserID,
		Type:        model.TypeBonus,
		Amount:      bonus,
		Status:      model.StatusApproved,
		PromotionID: &promotionID,
		ParentID:    &depositID,
		AdminNote:   p.BonusReason(deposit.Amount, bonus),
		ApprovedAt:  &now,
	}
	if match.Code != "" {
		code := match.Code
		bonusTx.PromotionCode = &code
	}

	if err := s.transactionRepo.InsertTransaction(ctx, bonusTx, tx); err != nil {
		return nil, decimal.Zero, fmt.Errorf("insert bonus transaction: %w", err)
	}

	balance, err := s.profileRepo.CreditBalance(ctx, deposit.UserID, bonus, tx)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("credit bonus: %w", err)
	}

	err = s.notificationRepo.InsertNotification(ctx, &model.Notification{
		UserID:  deposit.UserID,
		Title:   "Nhận thưởng khuyến mãi",
		Message: fmt.Sprintf("Bạn nhận được %s VND từ khuyến mãi \"%s\"", bonus.StringFixed(0), p.Title),
		Type:    model.NotificationBonus,
	}, tx)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("insert bonus notification: %w", err)
	}

	metrics.RecordBonus(p.Type.String(), bonus.InexactFloat64())
	s.logger.Info().
		Str("deposit_id", deposit.ID.String()).
		Str("user_id", deposit.UserID.String()).
		Str("promotion_id", p.ID.String()).
		Str("bonus", bonus.StringFixed(0)).
		Msg("promotion bonus applied")

	return bonusTx, balance, nil
}

func (s *PromotionServiceImpl) ListPromotions(ctx context.Context, activeOnly bool) ([]*model.Promotion, error) {
	promotions, err := s.promotionRepo.ListPromotions(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list promotions: %w", err)
	}
	return promotions, nil
}

// GenerateCodes creates count one-time codes of the form PREFIX + 8 random characters.
func (s *PromotionServiceImpl) GenerateCodes(ctx context.Context, promotionID uuid.UUID, count int, prefix string) ([]string, error) {
	if count <= 0 || count > maxCodesPerRun {
		return nil, fmt.Errorf("%w: count must be between 1 and %d", model.ErrInvalidPayload, maxCodesPerRun)
	}

	if _, err := s.promotionRepo.GetPromotion(ctx, promotionID); err != nil {
		return nil, fmt.Errorf("get promotion: %w", err)
	}

	prefix = model.NormalizePromotionCode(prefix)
	seen := make(map[string]struct{}, count)
	codes := make([]string, 0, count)
	for len(codes) < count {
		suffix, err := randomCode(codeRandomLen)
		if err != nil {
			return nil, fmt.Errorf("generate code: %w", err)
		}
		code := prefix + suffix
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}

	inserted, err := s.promotionRepo.InsertCodes(ctx, promotionID, codes)
	if err != nil {
		return nil, fmt.Errorf("insert codes: %w", err)
	}

	s.logger.Info().Str("promotion_id", promotionID.String()).Int64("inserted", inserted).Msg("promotion codes generated")
	return codes, nil
}

func randomCode(n int) (string, error) {
	limit := big.NewInt(int64(len(codeAlphabet)))
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		buf[i] = codeAlphabet[idx.Int64()]
	}
	return string(buf), nil
}
