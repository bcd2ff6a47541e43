package service

import (
	"casino-backend/internal/config"
	"casino-backend/internal/model"
	"casino-backend/internal/payment"
	repomocks "casino-backend/mocks/repository"
	svcmocks "casino-backend/mocks/service"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type depositMocks struct {
	profileRepo      *repomocks.ProfileRepository
	transRepo        *repomocks.TransactionRepository
	notificationRepo *repomocks.NotificationRepository
	dbManager        *repomocks.DBManager
	promotions       *svcmocks.PromotionService
	gateway          *svcmocks.PaymentGateway
	rateLimiter      *svcmocks.RateLimiter
}

var testDepositConfig = config.DepositConfig{
	MinAmount:      10000,
	MaxAmount:      50000000,
	PaymentLinkTTL: 30 * time.Minute,
}

func newDepositService(t *testing.T, orderCodes ...int64) (*DepositServiceImpl, *depositMocks) {
	m := &depositMocks{
		profileRepo:      repomocks.NewProfileRepository(t),
		transRepo:        repomocks.NewTransactionRepository(t),
		notificationRepo: repomocks.NewNotificationRepository(t),
		dbManager:        repomocks.NewDBManager(t),
		promotions:       svcmocks.NewPromotionService(t),
		gateway:          svcmocks.NewPaymentGateway(t),
		rateLimiter:      svcmocks.NewRateLimiter(t),
	}

	svc := NewDepositService(m.profileRepo, m.transRepo, m.notificationRepo, m.dbManager, m.promotions,
		m.gateway, m.rateLimiter, testDepositConfig, zerolog.Nop()).(*DepositServiceImpl)
	svc.now = func() time.Time { return fixedNow }

	next := 0
	svc.newOrderCode = func(time.Time) int64 {
		code := orderCodes[next%len(orderCodes)]
		next++
		return code
	}
	return svc, m
}

func assignID(args mock.Arguments) {
	args.Get(1).(*model.Transaction).ID = uuid.New()
}

func TestCreateDeposit_HappyPathWithPromotionPreview(t *testing.T) {
	ctx := context.Background()
	svc, m := newDepositService(t, 1760875200123456)
	userID := uuid.New()
	promo := percentPromotion("Khuyến mãi 10%", 10, model.PromotionTimeBased)

	m.rateLimiter.On("Allow", ctx, userID.String()).Return(true, nil)
	m.profileRepo.On("GetProfile", ctx, userID).Return(&model.Profile{UserID: userID, Username: "player_1"}, nil)
	m.transRepo.On("HasApprovedDeposit", ctx, userID).Return(false, nil)
	m.promotions.On("Match", ctx, mock.MatchedBy(func(in model.MatchInput) bool {
		return in.UserID == userID && in.IsFirstDeposit && in.Amount.Equal(decimal.NewFromInt(100000))
	})).Return(&model.PromotionMatch{Promotion: promo}, nil)
	m.transRepo.On("InsertTransaction", ctx, mock.MatchedBy(func(tr *model.Transaction) bool {
		return tr.Type == model.TypeDeposit &&
			tr.Status == model.StatusAwaitingPayment &&
			tr.OrderCode != nil && *tr.OrderCode == 1760875200123456 &&
			tr.PromotionCode == nil &&
			tr.AdminNote == "Nạp tiền - Mã đơn: 1760875200123456"
	})).Run(assignID).Return(nil)
	m.gateway.On("CreateCheckout", ctx, int64(1760875200123456), int64(100000), "NAP1760875200123456", fixedNow.Add(30*time.Minute)).
		Return(&payment.Checkout{PaymentURL: "https://pay.payos.vn/web/abc", QRCode: "000201..."}, nil)

	resp, err := svc.CreateDeposit(ctx, userID, &model.CreateDepositRequest{Amount: decimal.NewFromInt(100000)})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.TransactionID)
	assert.Equal(t, int64(1760875200123456), resp.OrderCode)
	assert.Equal(t, "100000", resp.Amount)
	assert.Equal(t, model.StatusAwaitingPayment, resp.Status)
	assert.Equal(t, "https://pay.payos.vn/web/abc", resp.PaymentURL)
	require.NotNil(t, resp.Promotion)
	assert.Equal(t, promo.ID, resp.Promotion.ID)
	assert.Equal(t, "10000", resp.Promotion.BonusAmount)
	m.transRepo.AssertNotCalled(t, "MarkPending", mock.Anything, mock.Anything)
}

func TestCreateDeposit_InvalidAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
	}{
		{name: "zero", amount: decimal.Zero},
		{name: "negative", amount: decimal.NewFromInt(-5000)},
		{name: "fractional", amount: decimal.RequireFromString("10000.5")},
		{name: "below minimum", amount: decimal.NewFromInt(9999)},
		{name: "above maximum", amount: decimal.NewFromInt(50000001)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newDepositService(t, 1)

			resp, err := svc.CreateDeposit(context.Background(), uuid.New(), &model.CreateDepositRequest{Amount: tt.amount})

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, model.ErrInvalidAmount)
		})
	}
}

func TestCreateDeposit_RateLimited(t *testing.T) {
	ctx := context.Background()
	svc, m := newDepositService(t, 1)
	userID := uuid.New()

	m.rateLimiter.On("Allow", ctx, userID.String()).Return(false, nil)

	_, err := svc.CreateDeposit(ctx, userID, &model.CreateDepositRequest{Amount: decimal.NewFromInt(100000)})

	assert.ErrorIs(t, err, model.ErrRateLimited)
	m.transRepo.AssertNotCalled(t, "InsertTransaction", mock.Anything, mock.Anything)
}

func TestCreateDeposit_UnknownProfile(t *testing.T) {
	ctx := context.Background()
	svc, m := newDepositService(t, 1)
	userID := uuid.New()

	m.rateLimiter.On("Allow", ctx, userID.String()).Return(true, nil)
	m.profileRepo.On("GetProfile", ctx, userID).Return(nil, model.ErrProfileNotFound)

	_, err := svc.CreateDeposit(ctx, userID, &model.CreateDepositRequest{Amount: decimal.NewFromInt(100000)})

	assert.ErrorIs(t, err, model.ErrProfileNotFound)
}

func TestCreateDeposit_RetriesOrderCodeCollision(t *testing.T) {
	ctx := context.Background()
	svc, m := newDepositService(t, 111, 222)
	userID := uuid.New()

	m.rateLimiter.On("Allow", ctx, userID.String()).Return(false, assert.AnError)
	m.profileRepo.On("GetProfile", ctx, userID).Return(&model.Profile{UserID: userID}, nil)
	m.transRepo.On("HasApprovedDeposit", ctx, userID).Return(true, nil)
	m.promotions.On("Match", ctx, mock.Anything).Return(nil, nil)
	m.transRepo.On("InsertTransaction", ctx, mock.MatchedBy(func(tr *model.Transaction) bool {
		return *tr.OrderCode == 111
	})).Return(model.ErrDuplicateOrderCode).Once()
	m.transRepo.On("InsertTransaction", ctx, mock.MatchedBy(func(tr *model.Transaction) bool {
		return *tr.OrderCode == 222
	})).Run(assignID).Return(nil).Once()
	m.gateway.On("CreateCheckout", ctx, int64(222), int64(50000), "NAP222", mock.Anything).Return(&payment.Checkout{}, nil)
	m.transRepo.On("MarkPending", ctx, mock.Anything).Return(true, nil)

	resp, err := svc.CreateDeposit(ctx, userID, &model.CreateDepositRequest{Amount: decimal.NewFromInt(50000)})

	require.NoError(t, err)
	assert.Equal(t, int64(222), resp.OrderCode)
	assert.Nil(t, resp.Promotion)
}

func TestCreateDeposit_GivesUpAfterRepeatedCollisions(t *testing.T) {
	ctx := context.Background()
	svc, m := newDepositService(t, 7)
	userID := uuid.New()

	m.rateLimiter.On("Allow", ctx, userID.String()).Return(true, nil)
	m.profileRepo.On("GetProfile", ctx, userID).Return(&model.Profile{UserID: userID}, nil)
	m.transRepo.On("HasApprovedDeposit", ctx, userID).Return(true, nil)
	m.promotions.On("Match", ctx, mock.Anything).Return(nil, nil)
	m.transRepo.On("InsertTransaction", ctx, mock.Anything).Return(model.ErrDuplicateOrderCode).Times(maxOrderCodeAttempts)

	_, err := svc.CreateDeposit(ctx, userID, &model.CreateDepositRequest{Amount: decimal.NewFromInt(50000)})

	assert.ErrorIs(t, err, model.ErrDuplicateOrderCode)
}

func TestCreateDeposit_UnknownCodeStoredAndCheckoutFailureTolerated(t *testing.T) {
	ctx := context.Background()
	svc, m := newDepositService(t, 333)
	userID := uuid.New()

	m.rateLimiter.On("Allow", ctx, userID.String()).Return(true, nil)
	m.profileRepo.On("GetProfile", ctx, userID).Return(&model.Profile{UserID: userID}, nil)
	m.transRepo.On("HasApprovedDeposit", ctx, userID).Return(false, nil)
	m.promotions.On("Match", ctx, mock.MatchedBy(func(in model.MatchInput) bool {
		return in.Code == " bogus "
	})).Return(nil, nil)
	m.transRepo.On("InsertTransaction", ctx, mock.MatchedBy(func(tr *model.Transaction) bool {
		return tr.PromotionCode != nil && *tr.PromotionCode == "BOGUS"
	})).Run(assignID).Return(nil)
	m.gateway.On("CreateCheckout", ctx, int64(333), int64(100000), "NAP333", mock.Anything).Return(nil, model.ErrGatewayUnavailable)
	m.transRepo.On("MarkPending", ctx, mock.Anything).Return(true, nil)

	resp, err := svc.CreateDeposit(ctx, userID, &model.CreateDepositRequest{Amount: decimal.NewFromInt(100000), PromotionCode: " bogus "})

	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, resp.Status)
	assert.Empty(t, resp.PaymentURL)
	assert.Empty(t, resp.QRCode)
	assert.Nil(t, resp.Promotion)
}

func TestCreateDeposit_WithoutGatewayLinkGoesToManualReview(t *testing.T) {
	tests := []struct {
		name     string
		checkout *payment.Checkout
		err      error
		wantQR   string
	}{
		{name: "vietqr only", checkout: &payment.Checkout{QRCode: "https://img.vietqr.io/image/970422-0123-compact2.png?amount=100000&addInfo=NAP444"}, wantQR: "https://img.vietqr.io/image/970422-0123-compact2.png?amount=100000&addInfo=NAP444"},
		{name: "no payment means", checkout: &payment.Checkout{}},
		{name: "gateway down", err: model.ErrGatewayUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, m := newDepositService(t, 444)
			userID := uuid.New()
			var insertedID uuid.UUID

			m.rateLimiter.On("Allow", ctx, userID.String()).Return(true, nil)
			m.profileRepo.On("GetProfile", ctx, userID).Return(&model.Profile{UserID: userID}, nil)
			m.transRepo.On("HasApprovedDeposit", ctx, userID).Return(true, nil)
			m.promotions.On("Match", ctx, mock.Anything).Return(nil, nil)
			m.transRepo.On("InsertTransaction", ctx, mock.Anything).Run(func(args mock.Arguments) {
				insertedID = uuid.New()
				args.Get(1).(*model.Transaction).ID = insertedID
			}).Return(nil)
			m.gateway.On("CreateCheckout", ctx, int64(444), int64(100000), "NAP444", mock.Anything).Return(tt.checkout, tt.err)
			m.transRepo.On("MarkPending", ctx, mock.MatchedBy(func(id uuid.UUID) bool { return id == insertedID })).Return(true, nil).Once()

			resp, err := svc.CreateDeposit(ctx, userID, &model.CreateDepositRequest{Amount: decimal.NewFromInt(100000)})

			require.NoError(t, err)
			assert.Equal(t, model.StatusPending, resp.Status)
			assert.Empty(t, resp.PaymentURL)
			assert.Equal(t, tt.wantQR, resp.QRCode)
		})
	}
}

func TestCreateDeposit_MarkPendingFailure(t *testing.T) {
	ctx := context.Background()
	svc, m := newDepositService(t, 445)
	userID := uuid.New()

	m.rateLimiter.On("Allow", ctx, userID.String()).Return(true, nil)
	m.profileRepo.On("GetProfile", ctx, userID).Return(&model.Profile{UserID: userID}, nil)
	m.transRepo.On("HasApprovedDeposit", ctx, userID).Return(true, nil)
	m.promotions.On("Match", ctx, mock.Anything).Return(nil, nil)
	m.transRepo.On("InsertTransaction", ctx, mock.Anything).Run(assignID).Return(nil)
	m.gateway.On("CreateCheckout", ctx, int64(445), int64(100000), "NAP445", mock.Anything).Return(&payment.Checkout{}, nil)
	m.transRepo.On("MarkPending", ctx, mock.Anything).Return(false, assert.AnError)

	resp, err := svc.CreateDeposit(ctx, userID, &model.CreateDepositRequest{Amount: decimal.NewFromInt(100000)})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestGetDeposit_HidesOtherUsersDeposits(t *testing.T) {
	ctx := context.Background()
	svc, m := newDepositService(t, 1)
	owner := uuid.New()
	id := uuid.New()

	m.transRepo.On("GetTransaction", ctx, id).Return(&model.Transaction{ID: id, UserID: owner, Type: model.TypeDeposit}, nil)

	got, err := svc.GetDeposit(ctx, owner, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)

	_, err = svc.GetDeposit(ctx, uuid.New(), id)
	assert.ErrorIs(t, err, model.ErrTransactionNotFound)
}

func TestApproveDeposit_ByAdmin(t *testing.T) {
	ctx := context.Background()
	svc, m := newDepositService(t, 1)
	adminID := uuid.New()
	deposit := awaitingDeposit(444, 100000)
	deposit.Status = model.StatusPending

	runInTx(m.dbManager, ctx)
	m.transRepo.On("GetTransactionForUpdate", ctx, deposit.ID, mock.Anything).Return(deposit, nil)
	m.transRepo.On("HasApprovedDeposit", ctx, deposit.UserID, mock.Anything).Return(false, nil)
	m.profileRepo.On("GetProfileForUpdate", ctx, deposit.UserID, mock.Anything).Return(&model.Profile{UserID: deposit.UserID}, nil)
	m.transRepo.On("MarkApproved", ctx, deposit.ID, &adminID, mock.Anything).Return(true, nil)
	m.profileRepo.On("CreditBalance", ctx, deposit.UserID, decEq(100000), mock.Anything).Return(decimal.NewFromInt(100000), nil)
	m.notificationRepo.On("InsertNotification", ctx, mock.Anything, mock.Anything).Return(nil)
	m.promotions.On("Match", ctx, mock.MatchedBy(func(in model.MatchInput) bool {
		return in.IsFirstDeposit
	}), mock.Anything).Return(nil, nil)

	result, err := svc.ApproveDeposit(ctx, deposit.ID, adminID)

	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, result.Transaction.Status)
	assert.Equal(t, "100000", result.Balance.String())
	assert.Nil(t, result.Bonus)
}

func TestApproveDeposit_AlreadyFinalized(t *testing.T) {
	ctx := context.Background()
	svc, m := newDepositService(t, 1)
	deposit := awaitingDeposit(555, 100000)
	deposit.Status = model.StatusRejected

	runInTx(m.dbManager, ctx)
	m.transRepo.On("GetTransactionForUpdate", ctx, deposit.ID, mock.Anything).Return(deposit, nil)

	_, err := svc.ApproveDeposit(ctx, deposit.ID, uuid.New())

	assert.ErrorIs(t, err, model.ErrTransactionFinalized)
}

func TestApproveDeposit_NotADeposit(t *testing.T) {
	ctx := context.Background()
	svc, m := newDepositService(t, 1)
	bonus := &model.Transaction{ID: uuid.New(), Type: model.TypeBonus, Status: model.StatusPending}

	runInTx(m.dbManager, ctx)
	m.transRepo.On("GetTransactionForUpdate", ctx, bonus.ID, mock.Anything).Return(bonus, nil)

	_, err := svc.ApproveDeposit(ctx, bonus.ID, uuid.New())

	assert.ErrorIs(t, err, model.ErrInvalidTransactionType)
}

func TestRejectDeposit_DefaultNote(t *testing.T) {
	ctx := context.Background()
	svc, m := newDepositService(t, 1)
	adminID := uuid.New()
	deposit := awaitingDeposit(666, 100000)

	runInTx(m.dbManager, ctx)
	m.transRepo.On("GetTransactionForUpdate", ctx, deposit.ID, mock.Anything).Return(deposit, nil)
	m.transRepo.On("MarkRejected", ctx, deposit.ID, defaultRejectNote, &adminID, mock.Anything).Return(true, nil)
	m.notificationRepo.On("InsertNotification", ctx, mock.Anything, mock.Anything).Return(nil)

	result, err := svc.RejectDeposit(ctx, deposit.ID, adminID, "")

	require.NoError(t, err)
	assert.Equal(t, model.StatusRejected, result.Transaction.Status)
	assert.Equal(t, defaultRejectNote, result.Transaction.AdminNote)
	m.profileRepo.AssertNotCalled(t, "CreditBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListDeposits(t *testing.T) {
	ctx := context.Background()
	svc, m := newDepositService(t, 1)
	status := model.StatusAwaitingPayment
	rows := []*model.Transaction{awaitingDeposit(1, 10000), awaitingDeposit(2, 20000)}

	m.transRepo.On("ListDeposits", ctx, &status, 20, 0).Return(rows, 7, nil)

	resp, err := svc.ListDeposits(ctx, &status, 20, 0)

	require.NoError(t, err)
	assert.Len(t, resp.Transactions, 2)
	assert.Equal(t, 7, resp.Total)
	assert.Equal(t, 20, resp.Limit)
}
