package handler

import (
	"casino-backend/internal/model"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListActivePromotions
// @Summary List running promotions
// @Description Promotions a deposit can currently match, newest first
// @Tags promotions
// @Produce json
// @Success 200 {object} model.PromotionListResponse
// @Router /promotions [get]
func (h *Handler) ListActivePromotions(c *gin.Context) {
	h.listPromotions(c, true)
}

func (h *Handler) listPromotions(c *gin.Context, activeOnly bool) {
	promotions, err := h.promotionService.ListPromotions(c.Request.Context(), activeOnly)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if promotions == nil {
		promotions = []*model.Promotion{}
	}
	c.JSON(http.StatusOK, model.PromotionListResponse{Promotions: promotions})
}
