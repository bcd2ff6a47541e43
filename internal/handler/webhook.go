package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const signatureHeader = "x-payos-signature"

// PaymentWebhook
// @Summary Payment gateway callback
// @Description Settles the deposit named by data.orderCode. Redeliveries are acknowledged without side effects.
// @Tags payments
// @Accept json
// @Produce json
// @Param x-payos-signature header string false "hex HMAC-SHA256 of the raw body"
// @Param webhook body model.PaymentWebhookRequest true "Gateway payload"
// @Success 200 {object} model.WebhookResponse
// @Failure 400 {object} model.ErrorResponse "Invalid payload or amount mismatch"
// @Failure 401 {object} model.ErrorResponse "Invalid signature"
// @Failure 409 {object} model.ErrorResponse "Delivery already in progress"
// @Router /payments/webhook [post]
func (h *Handler) PaymentWebhook(c *gin.Context) {
	// signature covers the exact bytes, so the body is not re-encoded
	body, err := c.GetRawData()
	if err != nil || len(body) == 0 {
		h.badRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	resp, err := h.paymentService.HandleWebhook(c.Request.Context(), body, c.GetHeader(signatureHeader))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
