package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/carbooking/internal/domain"
	"github.com/Domenick1991/carbooking/internal/service/checkout"
	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	service checkout.CheckoutUseCase
}

type checkoutResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

type sessionStatusResponse struct {
	SessionID     string `json:"session_id"`
	PaymentStatus string `json:"payment_status"`
	AmountCents   int64  `json:"amount_cents"`
	Currency      string `json:"currency"`
}

func NewCheckoutHandler(service checkout.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

func (h *CheckoutHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/sessions/:id", h.session)
}

func (h *CheckoutHandler) create(c *gin.Context) {
	var req checkout.CheckoutInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := h.service.InitiateCheckout(c.Request.Context(), req, principalFrom(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidBooking):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrCarNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrProviderUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, checkoutResponse{SessionID: sess.ID, URL: sess.URL})
}

// session is the read-only status view behind the success redirect. It must
// not create bookings: the redirect is untrustworthy, only the webhook is.
func (h *CheckoutHandler) session(c *gin.Context) {
	sess, err := h.service.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProviderUnavailable) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sessionStatusResponse{
		SessionID:     sess.ID,
		PaymentStatus: sess.PaymentStatus,
		AmountCents:   sess.AmountCents,
		Currency:      sess.Currency,
	})
}
