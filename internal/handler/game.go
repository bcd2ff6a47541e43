package handler

import (
	"casino-backend/internal/model"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GameLogin
// @Summary Launch a game
// @Description Logs the caller into the game provider and returns a launch URL
// @Tags games
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param login body model.GameLoginRequest true "Game and username"
// @Success 200 {object} model.GameLoginResponse
// @Failure 403 {object} model.ErrorResponse "Username does not belong to caller"
// @Failure 502 {object} model.ErrorResponse "Provider unavailable"
// @Router /games/login [post]
func (h *Handler) GameLogin(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req model.GameLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Thiếu thông tin trò chơi hoặc tên đăng nhập")
		return
	}

	resp, err := h.gameService.Login(c.Request.Context(), userID, &req, c.Request.UserAgent())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListGames
// @Summary List games
// @Description Returns active games ordered by rank then name
// @Tags games
// @Produce json
// @Param category query string false "Category"
// @Param provider query string false "Provider"
// @Param limit query int false "Limit" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.GameListResponse
// @Router /games [get]
func (h *Handler) ListGames(c *gin.Context) {
	// zero lets the service apply its default page size
	limit := intQuery(c, "limit", 0)
	offset := intQuery(c, "offset", 0)

	resp, err := h.gameService.ListGames(c.Request.Context(), model.GameFilter{
		Category: c.Query("category"),
		Provider: c.Query("provider"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
