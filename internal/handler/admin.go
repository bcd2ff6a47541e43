package handler

import (
	"casino-backend/internal/model"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultAdminPageSize = 20
	maxAdminPageSize     = 100
)

func toSettlementResponse(result *model.SettlementResult) model.SettlementResponse {
	resp := model.SettlementResponse{Transaction: result.Transaction, Bonus: result.Bonus}
	if result.Transaction != nil && result.Transaction.Status == model.StatusApproved {
		resp.Balance = result.Balance.StringFixed(2)
	}
	return resp
}

func pagination(c *gin.Context) (int, int) {
	limit := intQuery(c, "limit", defaultAdminPageSize)
	if limit == 0 {
		limit = defaultAdminPageSize
	}
	if limit > maxAdminPageSize {
		limit = maxAdminPageSize
	}
	return limit, intQuery(c, "offset", 0)
}

// intQuery reads a non-negative integer query parameter. Malformed or negative
// values fall back to the default instead of failing the listing.
func intQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

// ListDeposits
// @Summary List deposits
// @Description Admin view of deposits, newest first, optionally filtered by status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status" Enums(awaiting_payment, pending, approved, rejected)
// @Param limit query int false "Limit" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.TransactionListResponse
// @Failure 400 {object} model.ErrorResponse "Invalid status"
// @Failure 403 {object} model.ErrorResponse "Forbidden"
// @Router /admin/deposits [get]
func (h *Handler) ListDeposits(c *gin.Context) {
	var status *model.TransactionStatus
	if raw := c.Query("status"); raw != "" {
		parsed, err := model.ParseTransactionStatus(raw)
		if err != nil {
			h.handleError(c, err)
			return
		}
		status = &parsed
	}

	limit, offset := pagination(c)
	resp, err := h.depositService.ListDeposits(c.Request.Context(), status, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ApproveDeposit
// @Summary Approve a deposit
// @Description Credits the deposit and any matching promotion bonus, exactly as a paid webhook would
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} model.SettlementResponse
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Failure 409 {object} model.ErrorResponse "Already settled"
// @Router /admin/deposits/{id}/approve [post]
func (h *Handler) ApproveDeposit(c *gin.Context) {
	adminID, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.handleError(c, model.ErrTransactionNotFound)
		return
	}

	result, err := h.depositService.ApproveDeposit(c.Request.Context(), id, adminID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.logger.Info().Str("admin_id", adminID.String()).Str("transaction_id", id.String()).Msg("deposit approved by admin")
	c.JSON(http.StatusOK, toSettlementResponse(result))
}

// RejectDeposit
// @Summary Reject a deposit
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param request body model.RejectDepositRequest false "Reason"
// @Success 200 {object} model.SettlementResponse
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Failure 409 {object} model.ErrorResponse "Already settled"
// @Router /admin/deposits/{id}/reject [post]
func (h *Handler) RejectDeposit(c *gin.Context) {
	adminID, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.handleError(c, model.ErrTransactionNotFound)
		return
	}

	// body is optional
	var req model.RejectDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.badRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	result, err := h.depositService.RejectDeposit(c.Request.Context(), id, adminID, req.Note)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.logger.Info().Str("admin_id", adminID.String()).Str("transaction_id", id.String()).Msg("deposit rejected by admin")
	c.JSON(http.StatusOK, toSettlementResponse(result))
}

// ListAllPromotions
// @Summary List all promotions
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.PromotionListResponse
// @Router /admin/promotions [get]
func (h *Handler) ListAllPromotions(c *gin.Context) {
	h.listPromotions(c, false)
}

// GenerateCodes
// @Summary Generate one-time promotion codes
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Param request body model.GenerateCodesRequest true "How many codes and an optional prefix"
// @Success 201 {object} model.GenerateCodesResponse
// @Failure 404 {object} model.ErrorResponse "Promotion not found"
// @Router /admin/promotions/{id}/codes [post]
func (h *Handler) GenerateCodes(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.handleError(c, model.ErrPromotionNotFound)
		return
	}

	var req model.GenerateCodesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Số lượng mã phải từ 1 đến 10000")
		return
	}

	codes, err := h.promotionService.GenerateCodes(c.Request.Context(), id, req.Count, req.Prefix)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.GenerateCodesResponse{PromotionID: id, Codes: codes})
}
