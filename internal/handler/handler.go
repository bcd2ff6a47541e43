package handler

import (
	"casino-backend/internal/auth"
	"casino-backend/internal/model"
	"casino-backend/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Services struct {
	Deposit   service.DepositService
	Payment   service.PaymentService
	Promotion service.PromotionService
	Game      service.GameService
	Account   service.AccountService
}

type Options struct {
	AdminRole        string
	AllowedOrigins   []string
	IPRequestsPerSec float64
	IPBurst          int
}

type Handler struct {
	depositService   service.DepositService
	paymentService   service.PaymentService
	promotionService service.PromotionService
	gameService      service.GameService
	accountService   service.AccountService
	verifier         auth.TokenVerifier
	opts             Options
	logger           zerolog.Logger
}

func NewHandler(services Services, verifier auth.TokenVerifier, opts Options, logger zerolog.Logger) *Handler {
	if opts.AdminRole == "" {
		opts.AdminRole = "admin"
	}
	return &Handler{
		depositService:   services.Deposit,
		paymentService:   services.Payment,
		promotionService: services.Promotion,
		gameService:      services.Game,
		accountService:   services.Account,
		verifier:         verifier,
		opts:             opts,
		logger:           logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(h.logger),
		MetricsMiddleware(),
		CORSMiddleware(h.opts.AllowedOrigins),
		gin.Recovery(),
	)

	// Swagger, metrics and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	limited := IPRateLimitMiddleware(h.opts.IPRequestsPerSec, h.opts.IPBurst)

	// Gateway callbacks carry no user session
	v1.POST("/payments/webhook", h.PaymentWebhook)
	v1.POST("/auth/check-username", limited, h.CheckUsername)
	v1.GET("/games", limited, h.ListGames)
	v1.GET("/promotions", limited, h.ListActivePromotions)

	authed := v1.Group("", auth.Middleware(h.verifier))
	authed.POST("/deposits", h.CreateDeposit)
	authed.GET("/deposits/:id", h.GetDeposit)
	authed.POST("/games/login", h.GameLogin)

	admin := v1.Group("/admin", auth.Middleware(h.verifier), auth.RequireRole(h.opts.AdminRole))
	admin.GET("/deposits", h.ListDeposits)
	admin.POST("/deposits/:id/approve", h.ApproveDeposit)
	admin.POST("/deposits/:id/reject", h.RejectDeposit)
	admin.GET("/promotions", h.ListAllPromotions)
	admin.POST("/promotions/:id/codes", h.GenerateCodes)

	return router
}

// handleError maps domain errors to a status, a Vietnamese message and a stable code.
// The raw error never reaches the client.
func (h *Handler) handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_SERVER_ERROR"
	msg := "Đã xảy ra lỗi, vui lòng thử lại sau"

	switch {
	case errors.Is(err, model.ErrInvalidAmount):
		status, code, msg = http.StatusBadRequest, "INVALID_AMOUNT", "Số tiền không hợp lệ"
	case errors.Is(err, model.ErrInvalidUsername):
		status, code, msg = http.StatusBadRequest, "INVALID_USERNAME", "Tên đăng nhập phải từ 3-20 ký tự, chỉ gồm chữ, số và dấu gạch dưới"
	case errors.Is(err, model.ErrInvalidPayload):
		status, code, msg = http.StatusBadRequest, "INVALID_REQUEST", "Dữ liệu không hợp lệ"
	case errors.Is(err, model.ErrInvalidStatus):
		status, code, msg = http.StatusBadRequest, "INVALID_STATUS", "Trạng thái không hợp lệ"
	case errors.Is(err, model.ErrInvalidTransactionType):
		status, code, msg = http.StatusBadRequest, "INVALID_TRANSACTION_TYPE", "Giao dịch không phải là lệnh nạp tiền"
	case errors.Is(err, model.ErrAmountMismatch):
		status, code, msg = http.StatusBadRequest, "AMOUNT_MISMATCH", "Số tiền thanh toán không khớp với đơn nạp"
	case errors.Is(err, model.ErrInvalidSignature):
		status, code, msg = http.StatusUnauthorized, "INVALID_SIGNATURE", "Chữ ký không hợp lệ"
	case errors.Is(err, model.ErrUnauthorized):
		status, code, msg = http.StatusUnauthorized, "UNAUTHORIZED", "Vui lòng đăng nhập"
	case errors.Is(err, model.ErrForbidden):
		status, code, msg = http.StatusForbidden, "FORBIDDEN", "Bạn không có quyền thực hiện thao tác này"
	case errors.Is(err, model.ErrProfileNotFound):
		status, code, msg = http.StatusNotFound, "PROFILE_NOT_FOUND", "Không tìm thấy tài khoản"
	case errors.Is(err, model.ErrTransactionNotFound):
		status, code, msg = http.StatusNotFound, "TRANSACTION_NOT_FOUND", "Không tìm thấy giao dịch"
	case errors.Is(err, model.ErrPromotionNotFound):
		status, code, msg = http.StatusNotFound, "PROMOTION_NOT_FOUND", "Không tìm thấy khuyến mãi"
	case errors.Is(err, model.ErrTransactionFinalized):
		status, code, msg = http.StatusConflict, "TRANSACTION_FINALIZED", "Giao dịch đã được xử lý"
	case errors.Is(err, model.ErrDuplicateOrderCode):
		status, code, msg = http.StatusConflict, "DUPLICATE_ORDER_CODE", "Không thể tạo mã đơn, vui lòng thử lại"
	case errors.Is(err, model.ErrDuplicateBonus):
		status, code, msg = http.StatusConflict, "DUPLICATE_BONUS", "Khuyến mãi đã được áp dụng cho giao dịch này"
	case errors.Is(err, model.ErrWebhookInProgress):
		status, code, msg = http.StatusConflict, "WEBHOOK_IN_PROGRESS", "Giao dịch đang được xử lý"
	case errors.Is(err, model.ErrRateLimited):
		status, code, msg = http.StatusTooManyRequests, "RATE_LIMITED", "Bạn thao tác quá nhanh, vui lòng thử lại sau"
	case errors.Is(err, model.ErrGatewayUnavailable):
		status, code, msg = http.StatusBadGateway, "PAYMENT_GATEWAY_ERROR", "Cổng thanh toán tạm thời không khả dụng"
	case errors.Is(err, model.ErrUpstreamUnavailable):
		status, code, msg = http.StatusBadGateway, "GAME_PROVIDER_ERROR", "Không thể kết nối nhà cung cấp trò chơi, vui lòng thử lại sau"
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	} else {
		h.logger.Debug().Err(err).Str("code", code).Msg("request rejected")
	}

	c.JSON(status, model.ErrorResponse{Error: msg, Code: code})
}

func (h *Handler) badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: msg, Code: "INVALID_REQUEST"})
}
