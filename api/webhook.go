package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/Domenick1991/carbooking/internal/domain"
	"github.com/Domenick1991/carbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

const maxWebhookBody = 1 << 20

type WebhookHandler struct {
	service booking.BookingUseCase
}

func NewWebhookHandler(service booking.BookingUseCase) *WebhookHandler {
	return &WebhookHandler{service: service}
}

func (h *WebhookHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.handle)
}

// handle reads the body raw before any JSON parsing: signature verification
// needs the exact bytes the provider sent. 200 acknowledges the delivery,
// including ignored and duplicate cases; non-200 asks the provider to retry
// (signature failure, storage failure).
func (h *WebhookHandler) handle(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.String(http.StatusBadRequest, "failed to read body")
		return
	}
	signature := c.GetHeader("Stripe-Signature")

	if err := h.service.HandleWebhook(c.Request.Context(), payload, signature); err != nil {
		if errors.Is(err, domain.ErrInvalidSignature) {
			c.String(http.StatusBadRequest, "webhook signature verification failed")
			return
		}
		c.String(http.StatusInternalServerError, "failed to process webhook")
		return
	}

	c.String(http.StatusOK, "webhook handled")
}
