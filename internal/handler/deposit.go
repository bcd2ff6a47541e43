package handler

import (
	"casino-backend/internal/auth"
	"casino-backend/internal/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: "Vui lòng đăng nhập", Code: "UNAUTHORIZED"})
		return uuid.Nil, false
	}
	return userID, true
}

// CreateDeposit
// @Summary Create a deposit order
// @Description Creates an awaiting_payment deposit and returns the payment link or QR code
// @Tags deposits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param deposit body model.CreateDepositRequest true "Deposit amount and optional promotion code"
// @Success 201 {object} model.DepositResponse
// @Failure 400 {object} model.ErrorResponse "Invalid amount"
// @Failure 401 {object} model.ErrorResponse "Unauthorized"
// @Failure 429 {object} model.ErrorResponse "Rate limited"
// @Router /deposits [post]
func (h *Handler) CreateDeposit(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req model.CreateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, model.ErrInvalidAmount)
		return
	}

	resp, err := h.depositService.CreateDeposit(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetDeposit
// @Summary Get deposit status
// @Description Returns one of the caller's deposits, used by the payment page to poll for settlement
// @Tags deposits
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} model.Transaction
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Router /deposits/{id} [get]
func (h *Handler) GetDeposit(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.handleError(c, model.ErrTransactionNotFound)
		return
	}

	trans, err := h.depositService.GetDeposit(c.Request.Context(), userID, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, trans)
}
