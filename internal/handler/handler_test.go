package handler

import (
	"bytes"
	"casino-backend/internal/auth"
	"casino-backend/internal/model"
	authmocks "casino-backend/mocks/auth"
	svcmocks "casino-backend/mocks/service"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerMocks struct {
	deposit   *svcmocks.DepositService
	payment   *svcmocks.PaymentService
	promotion *svcmocks.PromotionService
	game      *svcmocks.GameService
	account   *svcmocks.AccountService
	verifier  *authmocks.TokenVerifier
}

func newTestRouter(t *testing.T, opts Options) (*gin.Engine, *handlerMocks) {
	gin.SetMode(gin.TestMode)
	m := &handlerMocks{
		deposit:   svcmocks.NewDepositService(t),
		payment:   svcmocks.NewPaymentService(t),
		promotion: svcmocks.NewPromotionService(t),
		game:      svcmocks.NewGameService(t),
		account:   svcmocks.NewAccountService(t),
		verifier:  authmocks.NewTokenVerifier(t),
	}
	h := NewHandler(Services{
		Deposit:   m.deposit,
		Payment:   m.payment,
		Promotion: m.promotion,
		Game:      m.game,
		Account:   m.account,
	}, m.verifier, opts, zerolog.Nop())
	return h.SetupRoutes(), m
}

func doJSON(router *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	switch b := body.(type) {
	case nil:
		buf = &bytes.Buffer{}
	case []byte:
		buf = bytes.NewBuffer(b)
	default:
		raw, _ := json.Marshal(b)
		buf = bytes.NewBuffer(raw)
	}

	req, _ := http.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) model.ErrorResponse {
	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandler_Health(t *testing.T) {
	router, _ := newTestRouter(t, Options{})

	w := doJSON(router, http.MethodGet, "/health", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestHandler_CreateDeposit_Success(t *testing.T) {
	router, m := newTestRouter(t, Options{})
	userID := uuid.New()
	txID := uuid.New()

	m.verifier.On("Verify", mock.Anything, "good-token").Return(&auth.Identity{UserID: userID, Role: "authenticated"}, nil)
	m.deposit.On("CreateDeposit", mock.Anything, userID, mock.MatchedBy(func(req *model.CreateDepositRequest) bool {
		return req.Amount.Equal(decimal.NewFromInt(100000)) && req.PromotionCode == "WELCOME10"
	})).Return(&model.DepositResponse{
		TransactionID: txID,
		OrderCode:     1760875200123456,
		Amount:        "100000",
		Status:        model.StatusAwaitingPayment,
		PaymentURL:    "https://pay.payos.vn/web/abc",
	}, nil)

	w := doJSON(router, http.MethodPost, "/api/v1/deposits",
		[]byte(`{"amount":100000,"promotionCode":"WELCOME10"}`), bearer("good-token"))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp model.DepositResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, txID, resp.TransactionID)
	assert.Equal(t, int64(1760875200123456), resp.OrderCode)
	assert.Equal(t, "https://pay.payos.vn/web/abc", resp.PaymentURL)
}

func TestHandler_CreateDeposit_RequiresAuth(t *testing.T) {
	router, _ := newTestRouter(t, Options{})

	w := doJSON(router, http.MethodPost, "/api/v1/deposits", []byte(`{"amount":100000}`), nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UNAUTHORIZED", decodeError(t, w).Code)
}

func TestHandler_CreateDeposit_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantCode   string
	}{
		{name: "unparseable amount", body: `{"amount":"abc"}`, wantStatus: http.StatusBadRequest, wantCode: "INVALID_AMOUNT"},
		{name: "service rejects amount", body: `{"amount":-1}`, svcErr: model.ErrInvalidAmount, wantStatus: http.StatusBadRequest, wantCode: "INVALID_AMOUNT"},
		{name: "rate limited", body: `{"amount":100000}`, svcErr: model.ErrRateLimited, wantStatus: http.StatusTooManyRequests, wantCode: "RATE_LIMITED"},
		{name: "internal", body: `{"amount":100000}`, svcErr: errors.New("pq: connection refused"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t, Options{})
			userID := uuid.New()
			m.verifier.On("Verify", mock.Anything, "tok").Return(&auth.Identity{UserID: userID}, nil)
			if tt.svcErr != nil {
				m.deposit.On("CreateDeposit", mock.Anything, userID, mock.Anything).Return(nil, tt.svcErr)
			}

			w := doJSON(router, http.MethodPost, "/api/v1/deposits", []byte(tt.body), bearer("tok"))

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.NotContains(t, resp.Error, "pq:")
		})
	}
}

func TestHandler_GetDeposit_InvalidID(t *testing.T) {
	router, m := newTestRouter(t, Options{})
	m.verifier.On("Verify", mock.Anything, "tok").Return(&auth.Identity{UserID: uuid.New()}, nil)

	w := doJSON(router, http.MethodGet, "/api/v1/deposits/not-a-uuid", nil, bearer("tok"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "TRANSACTION_NOT_FOUND", decodeError(t, w).Code)
}

func TestHandler_PaymentWebhook(t *testing.T) {
	raw := []byte(`{"code":"00","desc":"success","data":{"orderCode":123,"amount":100000}}`)
	txID := uuid.New()

	tests := []struct {
		name       string
		resp       *model.WebhookResponse
		svcErr     error
		wantStatus int
		wantCode   string
	}{
		{name: "approved", resp: &model.WebhookResponse{Success: true, Status: model.WebhookApproved, TransactionID: &txID}, wantStatus: http.StatusOK},
		{name: "redelivery", resp: &model.WebhookResponse{Success: true, Status: model.WebhookAlreadyProcessed, TransactionID: &txID}, wantStatus: http.StatusOK},
		{name: "bad signature", svcErr: model.ErrInvalidSignature, wantStatus: http.StatusUnauthorized, wantCode: "INVALID_SIGNATURE"},
		{name: "amount mismatch", svcErr: model.ErrAmountMismatch, wantStatus: http.StatusBadRequest, wantCode: "AMOUNT_MISMATCH"},
		{name: "in progress", svcErr: model.ErrWebhookInProgress, wantStatus: http.StatusConflict, wantCode: "WEBHOOK_IN_PROGRESS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t, Options{})
			m.payment.On("HandleWebhook", mock.Anything, raw, "abc123").Return(tt.resp, tt.svcErr)

			w := doJSON(router, http.MethodPost, "/api/v1/payments/webhook", raw, map[string]string{"x-payos-signature": "abc123"})

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.svcErr != nil {
				assert.Equal(t, tt.wantCode, decodeError(t, w).Code)
				return
			}
			var resp model.WebhookResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.resp.Status, resp.Status)
			assert.Equal(t, txID, *resp.TransactionID)
		})
	}
}

func TestHandler_PaymentWebhook_EmptyBody(t *testing.T) {
	router, _ := newTestRouter(t, Options{})

	w := doJSON(router, http.MethodPost, "/api/v1/payments/webhook", nil, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GameLogin_UpstreamFailureIsGeneric(t *testing.T) {
	router, m := newTestRouter(t, Options{})
	userID := uuid.New()

	m.verifier.On("Verify", mock.Anything, "tok").Return(&auth.Identity{UserID: userID}, nil)
	m.game.On("Login", mock.Anything, userID, mock.MatchedBy(func(req *model.GameLoginRequest) bool {
		return req.GPID == 1001 && req.Username == "player_1"
	}), mock.Anything).Return(nil, errors.Join(model.ErrUpstreamUnavailable, errors.New("dial tcp 10.0.0.1:443: timeout")))

	w := doJSON(router, http.MethodPost, "/api/v1/games/login", []byte(`{"gpid":1001,"username":"player_1"}`), bearer("tok"))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "GAME_PROVIDER_ERROR", resp.Code)
	assert.NotContains(t, resp.Error, "10.0.0.1")
}

func TestHandler_GameLogin_MissingFields(t *testing.T) {
	router, m := newTestRouter(t, Options{})
	m.verifier.On("Verify", mock.Anything, "tok").Return(&auth.Identity{UserID: uuid.New()}, nil)

	w := doJSON(router, http.MethodPost, "/api/v1/games/login", []byte(`{"username":"player_1"}`), bearer("tok"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decodeError(t, w).Code)
}

func TestHandler_ListGames_PassesFilter(t *testing.T) {
	router, m := newTestRouter(t, Options{})

	m.game.On("ListGames", mock.Anything, model.GameFilter{Category: "slot", Limit: 10, Offset: 20}).
		Return(&model.GameListResponse{Games: []*model.Game{}, Limit: 10, Offset: 20}, nil)

	w := doJSON(router, http.MethodGet, "/api/v1/games?category=slot&limit=10&offset=20", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListGames_MalformedPagingFallsBackToDefaults(t *testing.T) {
	router, m := newTestRouter(t, Options{})

	m.game.On("ListGames", mock.Anything, model.GameFilter{Limit: 0, Offset: 0}).
		Return(&model.GameListResponse{Games: []*model.Game{}, Limit: 50}, nil).Twice()

	w := doJSON(router, http.MethodGet, "/api/v1/games?limit=abc&offset=-3", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/games?limit=&offset=1e3", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CheckUsername(t *testing.T) {
	router, m := newTestRouter(t, Options{})
	m.account.On("CheckUsername", mock.Anything, "player_01").Return(&model.CheckUsernameResponse{Exists: false, IsAvailable: true}, nil)

	w := doJSON(router, http.MethodPost, "/api/v1/auth/check-username", model.CheckUsernameRequest{Username: "player_01"}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.CheckUsernameResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsAvailable)
}

func TestHandler_CheckUsername_IPRateLimited(t *testing.T) {
	router, m := newTestRouter(t, Options{IPRequestsPerSec: 0.001, IPBurst: 1})
	m.account.On("CheckUsername", mock.Anything, "player_01").Return(&model.CheckUsernameResponse{IsAvailable: true}, nil).Once()

	first := doJSON(router, http.MethodPost, "/api/v1/auth/check-username", model.CheckUsernameRequest{Username: "player_01"}, nil)
	second := doJSON(router, http.MethodPost, "/api/v1/auth/check-username", model.CheckUsernameRequest{Username: "player_01"}, nil)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestHandler_Admin_RequiresAdminRole(t *testing.T) {
	router, m := newTestRouter(t, Options{AdminRole: "admin"})
	m.verifier.On("Verify", mock.Anything, "player").Return(&auth.Identity{UserID: uuid.New(), Role: "authenticated"}, nil)

	w := doJSON(router, http.MethodPost, "/api/v1/admin/deposits/"+uuid.NewString()+"/approve", nil, bearer("player"))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", decodeError(t, w).Code)
}

func TestHandler_Admin_ApproveDeposit(t *testing.T) {
	router, m := newTestRouter(t, Options{AdminRole: "admin"})
	adminID := uuid.New()
	depositID := uuid.New()

	m.verifier.On("Verify", mock.Anything, "admin").Return(&auth.Identity{UserID: adminID, Role: "admin"}, nil)
	m.deposit.On("ApproveDeposit", mock.Anything, depositID, adminID).Return(&model.SettlementResult{
		Transaction: &model.Transaction{ID: depositID, Status: model.StatusApproved, Amount: decimal.NewFromInt(100000)},
		Balance:     decimal.NewFromInt(110000),
		Bonus:       &model.Transaction{Type: model.TypeBonus, Amount: decimal.NewFromInt(10000)},
	}, nil)

	w := doJSON(router, http.MethodPost, "/api/v1/admin/deposits/"+depositID.String()+"/approve", nil, bearer("admin"))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.SettlementResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "110000.00", resp.Balance)
	require.NotNil(t, resp.Bonus)
}

func TestHandler_Admin_RejectDeposit_OptionalBody(t *testing.T) {
	router, m := newTestRouter(t, Options{AdminRole: "admin"})
	adminID := uuid.New()
	depositID := uuid.New()

	m.verifier.On("Verify", mock.Anything, "admin").Return(&auth.Identity{UserID: adminID, Role: "admin"}, nil)
	m.deposit.On("RejectDeposit", mock.Anything, depositID, adminID, "").Return(&model.SettlementResult{
		Transaction: &model.Transaction{ID: depositID, Status: model.StatusRejected},
	}, nil)

	w := doJSON(router, http.MethodPost, "/api/v1/admin/deposits/"+depositID.String()+"/reject", nil, bearer("admin"))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.SettlementResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Balance)
}

func TestHandler_Admin_ApproveFinalized(t *testing.T) {
	router, m := newTestRouter(t, Options{AdminRole: "admin"})
	adminID := uuid.New()
	depositID := uuid.New()

	m.verifier.On("Verify", mock.Anything, "admin").Return(&auth.Identity{UserID: adminID, Role: "admin"}, nil)
	m.deposit.On("ApproveDeposit", mock.Anything, depositID, adminID).Return(nil, model.ErrTransactionFinalized)

	w := doJSON(router, http.MethodPost, "/api/v1/admin/deposits/"+depositID.String()+"/approve", nil, bearer("admin"))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "TRANSACTION_FINALIZED", decodeError(t, w).Code)
}

func TestHandler_Admin_ListDeposits(t *testing.T) {
	router, m := newTestRouter(t, Options{AdminRole: "admin"})
	m.verifier.On("Verify", mock.Anything, "admin").Return(&auth.Identity{UserID: uuid.New(), Role: "admin"}, nil)

	status := model.StatusAwaitingPayment
	m.deposit.On("ListDeposits", mock.Anything, &status, 100, 0).Return(&model.TransactionListResponse{Limit: 100}, nil)

	w := doJSON(router, http.MethodGet, "/api/v1/admin/deposits?status=awaiting_payment&limit=500", nil, bearer("admin"))
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/admin/deposits?status=paid", nil, bearer("admin"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_STATUS", decodeError(t, w).Code)
}

func TestHandler_Admin_ListDeposits_MalformedPaging(t *testing.T) {
	router, m := newTestRouter(t, Options{AdminRole: "admin"})
	m.verifier.On("Verify", mock.Anything, "admin").Return(&auth.Identity{UserID: uuid.New(), Role: "admin"}, nil)

	m.deposit.On("ListDeposits", mock.Anything, (*model.TransactionStatus)(nil), defaultAdminPageSize, 0).
		Return(&model.TransactionListResponse{Limit: defaultAdminPageSize}, nil)

	w := doJSON(router, http.MethodGet, "/api/v1/admin/deposits?limit=ten&offset=-1", nil, bearer("admin"))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Admin_GenerateCodes(t *testing.T) {
	router, m := newTestRouter(t, Options{AdminRole: "admin"})
	promoID := uuid.New()

	m.verifier.On("Verify", mock.Anything, "admin").Return(&auth.Identity{UserID: uuid.New(), Role: "admin"}, nil)
	m.promotion.On("GenerateCodes", mock.Anything, promoID, 2, "TET").Return([]string{"TETABCDEFGH", "TETJKLMNPQR"}, nil)

	w := doJSON(router, http.MethodPost, "/api/v1/admin/promotions/"+promoID.String()+"/codes", model.GenerateCodesRequest{Count: 2, Prefix: "TET"}, bearer("admin"))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp model.GenerateCodesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Codes, 2)
}

func TestHandler_ListActivePromotions(t *testing.T) {
	router, m := newTestRouter(t, Options{})
	m.promotion.On("ListPromotions", mock.Anything, true).Return(nil, nil)

	w := doJSON(router, http.MethodGet, "/api/v1/promotions", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"promotions":[]}`, w.Body.String())
}
