package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/carbooking/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCarUseCase struct {
	mock.Mock
}

func (m *MockCarUseCase) List(ctx context.Context, filter domain.CarFilter) ([]domain.Car, int, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Car), args.Int(1), args.Error(2)
}

func (m *MockCarUseCase) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

func (m *MockCarUseCase) Create(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}

func (m *MockCarUseCase) Update(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}

func (m *MockCarUseCase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func carsRouter(service *MockCarUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewCarHandler(service)
	group := router.Group("/cars")
	h.RegisterPublic(group)
	h.RegisterAdmin(group)
	return router
}

func TestCars_ListWithFilters(t *testing.T) {
	service := &MockCarUseCase{}
	service.On("List", mock.Anything, domain.CarFilter{
		Search:       "corolla",
		CarType:      "sedan",
		Transmission: "automatic",
		Page:         2,
		Limit:        5,
	}).Return([]domain.Car{{ID: 1, Make: "Toyota", Model: "Corolla", Year: 2022, PricePerDay: 50}}, 1, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cars/?search=corolla&carType=sedan&transmission=automatic&page=2&limit=5", nil)
	carsRouter(service).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Cars  []carResponse `json:"cars"`
		Total int           `json:"total"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "Toyota", resp.Cars[0].Make)
}

func TestCars_ListDefaultsPagination(t *testing.T) {
	service := &MockCarUseCase{}
	service.On("List", mock.Anything, domain.CarFilter{Page: 1, Limit: 10}).
		Return([]domain.Car{}, 0, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cars/", nil)
	carsRouter(service).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	service.AssertExpectations(t)
}

func TestCars_GetByID(t *testing.T) {
	service := &MockCarUseCase{}
	service.On("GetByID", mock.Anything, int64(7)).
		Return(&domain.Car{ID: 7, Make: "Honda", Model: "Civic", Year: 2021, PricePerDay: 60}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cars/7", nil)
	carsRouter(service).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp carResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, 60.0, resp.PricePerDay)
}

func TestCars_GetNotFound(t *testing.T) {
	service := &MockCarUseCase{}
	service.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrCarNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cars/99", nil)
	carsRouter(service).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCars_GetInvalidID(t *testing.T) {
	service := &MockCarUseCase{}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cars/abc", nil)
	carsRouter(service).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	service.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestCars_Create(t *testing.T) {
	service := &MockCarUseCase{}
	service.On("Create", mock.Anything, mock.MatchedBy(func(car *domain.Car) bool {
		return car.Make == "Kia" && car.Model == "Rio" && car.PricePerDay == 35
	})).Return(nil)

	body, _ := json.Marshal(carRequest{Make: "Kia", Model: "Rio", Year: 2020, PricePerDay: 35})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cars/", bytes.NewReader(body))
	carsRouter(service).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	service.AssertExpectations(t)
}

func TestCars_CreateValidationError(t *testing.T) {
	service := &MockCarUseCase{}
	service.On("Create", mock.Anything, mock.Anything).Return(domain.ErrInvalidBooking)

	body, _ := json.Marshal(carRequest{Model: "Rio"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cars/", bytes.NewReader(body))
	carsRouter(service).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCars_UpdateNotFound(t *testing.T) {
	service := &MockCarUseCase{}
	service.On("Update", mock.Anything, mock.MatchedBy(func(car *domain.Car) bool {
		return car.ID == 5
	})).Return(domain.ErrCarNotFound)

	body, _ := json.Marshal(carRequest{Make: "Kia", Model: "Rio", Year: 2020, PricePerDay: 35})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/cars/5", bytes.NewReader(body))
	carsRouter(service).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCars_Delete(t *testing.T) {
	service := &MockCarUseCase{}
	service.On("Delete", mock.Anything, int64(3)).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/cars/3", nil)
	carsRouter(service).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	service.AssertExpectations(t)
}
