package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Domenick1991/carbooking/internal/domain"
	"github.com/Domenick1991/carbooking/internal/service/cars"
	"github.com/gin-gonic/gin"
)

type CarHandler struct {
	service cars.CarUseCase
}

type carRequest struct {
	Make         string  `json:"make"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	PricePerDay  float64 `json:"price_per_day"`
	Mileage      int     `json:"mileage"`
	CarType      string  `json:"car_type"`
	Transmission string  `json:"transmission"`
	ImageURL     string  `json:"image_url"`
}

type carResponse struct {
	ID           int64   `json:"id"`
	Make         string  `json:"make"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	PricePerDay  float64 `json:"price_per_day"`
	Mileage      int     `json:"mileage"`
	CarType      string  `json:"car_type"`
	Transmission string  `json:"transmission"`
	ImageURL     string  `json:"image_url"`
	CreatedAt    string  `json:"created_at"`
}

func NewCarHandler(service cars.CarUseCase) *CarHandler {
	return &CarHandler{service: service}
}

func (h *CarHandler) RegisterPublic(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
}

func (h *CarHandler) RegisterAdmin(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *CarHandler) list(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	filter := domain.CarFilter{
		Search:       c.Query("search"),
		CarType:      c.Query("carType"),
		Transmission: c.Query("transmission"),
		Page:         page,
		Limit:        limit,
	}

	list, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]carResponse, 0, len(list))
	for _, car := range list {
		out = append(out, toCarResponse(&car))
	}
	c.JSON(http.StatusOK, gin.H{"cars": out, "total": total})
}

func (h *CarHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	car, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrCarNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toCarResponse(car))
}

func (h *CarHandler) create(c *gin.Context) {
	var req carRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	car := fromCarRequest(req)
	if err := h.service.Create(c.Request.Context(), &car); err != nil {
		c.JSON(statusForCarError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, toCarResponse(&car))
}

func (h *CarHandler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req carRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	car := fromCarRequest(req)
	car.ID = id
	if err := h.service.Update(c.Request.Context(), &car); err != nil {
		c.JSON(statusForCarError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toCarResponse(&car))
}

func (h *CarHandler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(statusForCarError(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func statusForCarError(err error) int {
	switch {
	case errors.Is(err, domain.ErrCarNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidBooking):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func fromCarRequest(req carRequest) domain.Car {
	return domain.Car{
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		PricePerDay:  req.PricePerDay,
		Mileage:      req.Mileage,
		CarType:      req.CarType,
		Transmission: req.Transmission,
		ImageURL:     req.ImageURL,
	}
}

func toCarResponse(car *domain.Car) carResponse {
	return carResponse{
		ID:           car.ID,
		Make:         car.Make,
		Model:        car.Model,
		Year:         car.Year,
		PricePerDay:  car.PricePerDay,
		Mileage:      car.Mileage,
		CarType:      car.CarType,
		Transmission: car.Transmission,
		ImageURL:     car.ImageURL,
		CreatedAt:    car.CreatedAt.Format(time.RFC3339),
	}
}
