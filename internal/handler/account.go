package handler

import (
	"casino-backend/internal/model"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CheckUsername
// @Summary Check username availability
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.CheckUsernameRequest true "Username"
// @Success 200 {object} model.CheckUsernameResponse
// @Failure 400 {object} model.ErrorResponse "Invalid username"
// @Router /auth/check-username [post]
func (h *Handler) CheckUsername(c *gin.Context) {
	var req model.CheckUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, model.ErrInvalidUsername)
		return
	}

	resp, err := h.accountService.CheckUsername(c.Request.Context(), req.Username)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
