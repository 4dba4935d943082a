package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/carbooking/internal/domain"
	"github.com/Domenick1991/carbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type bookingResponse struct {
	SessionID   string `json:"session_id"`
	CarID       int64  `json:"car_id"`
	PickupDate  string `json:"pickup_date"`
	DropoffDate string `json:"dropoff_date"`
	PickupTime  string `json:"pickup_time"`
	DropoffTime string `json:"dropoff_time"`
	Location    string `json:"location"`
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
}

// list returns the authenticated principal's booking history.
func (h *BookingHandler) list(c *gin.Context) {
	p := principalFrom(c)
	if p == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	bookings, err := h.service.ListByUser(c.Request.Context(), p.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	c.JSON(http.StatusOK, gin.H{"bookings": out})
}

func toBookingResponse(b domain.Booking) bookingResponse {
	return bookingResponse{
		SessionID:   b.SessionID,
		CarID:       b.CarID,
		PickupDate:  b.PickupDate.Format(domain.DateLayout),
		DropoffDate: b.DropoffDate.Format(domain.DateLayout),
		PickupTime:  b.PickupTime,
		DropoffTime: b.DropoffTime,
		Location:    b.Location,
		AmountCents: b.AmountCents,
		Currency:    b.Currency,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
}
