package cars

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/carbooking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCarRepository struct {
	mock.Mock
}

func (m *MockCarRepository) List(ctx context.Context, filter domain.CarFilter) ([]domain.Car, int, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Car), args.Int(1), args.Error(2)
}

func (m *MockCarRepository) ListAll(ctx context.Context) ([]domain.Car, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Car), args.Error(1)
}

func (m *MockCarRepository) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

func (m *MockCarRepository) Create(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}

func (m *MockCarRepository) Update(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}

func (m *MockCarRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetCars(ctx context.Context) ([]domain.Car, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Car), args.Error(1)
}

func (m *MockCache) SetCars(ctx context.Context, cars []domain.Car) error {
	args := m.Called(ctx, cars)
	return args.Error(0)
}

func (m *MockCache) InvalidateCars(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func catalog() []domain.Car {
	return []domain.Car{
		{ID: 1, Make: "Toyota", Model: "Corolla", Year: 2022, PricePerDay: 50},
		{ID: 2, Make: "Honda", Model: "Civic", Year: 2021, PricePerDay: 60},
		{ID: 3, Make: "Tesla", Model: "Model 3", Year: 2023, PricePerDay: 120},
	}
}

func TestList_UnfilteredServedFromCache(t *testing.T) {
	repo := &MockCarRepository{}
	cache := &MockCache{}

	cache.On("GetCars", mock.Anything).Return(catalog(), nil)

	svc := NewCarService(repo, cache)
	cars, total, err := svc.List(context.Background(), domain.CarFilter{Page: 1, Limit: 10})

	assert.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, cars, 3)
	repo.AssertNotCalled(t, "ListAll", mock.Anything)
}

func TestList_CacheMissPopulatesCache(t *testing.T) {
	repo := &MockCarRepository{}
	cache := &MockCache{}

	cache.On("GetCars", mock.Anything).Return(nil, errors.New("redis: nil"))
	repo.On("ListAll", mock.Anything).Return(catalog(), nil)
	cache.On("SetCars", mock.Anything, catalog()).Return(nil)

	svc := NewCarService(repo, cache)
	cars, total, err := svc.List(context.Background(), domain.CarFilter{Page: 1, Limit: 2})

	assert.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, cars, 2)
	cache.AssertExpectations(t)
}

func TestList_FilteredBypassesCache(t *testing.T) {
	repo := &MockCarRepository{}
	cache := &MockCache{}

	filter := domain.CarFilter{Search: "tesla", Page: 1, Limit: 10}
	repo.On("List", mock.Anything, filter).Return(catalog()[2:], 1, nil)

	svc := NewCarService(repo, cache)
	cars, total, err := svc.List(context.Background(), filter)

	assert.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Tesla", cars[0].Make)
	cache.AssertNotCalled(t, "GetCars", mock.Anything)
}

func TestList_PaginationBounds(t *testing.T) {
	repo := &MockCarRepository{}
	cache := &MockCache{}

	cache.On("GetCars", mock.Anything).Return(catalog(), nil)

	svc := NewCarService(repo, cache)
	cars, total, err := svc.List(context.Background(), domain.CarFilter{Page: 5, Limit: 2})

	assert.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Empty(t, cars)
}

func TestCreate_InvalidatesCache(t *testing.T) {
	repo := &MockCarRepository{}
	cache := &MockCache{}

	car := &domain.Car{Make: "Kia", Model: "Rio", Year: 2020, PricePerDay: 35}
	repo.On("Create", mock.Anything, car).Return(nil)
	cache.On("InvalidateCars", mock.Anything).Return(nil)

	svc := NewCarService(repo, cache)
	err := svc.Create(context.Background(), car)

	assert.NoError(t, err)
	cache.AssertCalled(t, "InvalidateCars", mock.Anything)
}

func TestCreate_ValidationRejectsBadCar(t *testing.T) {
	repo := &MockCarRepository{}
	cache := &MockCache{}
	svc := NewCarService(repo, cache)

	err := svc.Create(context.Background(), &domain.Car{Model: "Rio", Year: 2020, PricePerDay: 35})
	assert.ErrorIs(t, err, domain.ErrInvalidBooking)

	err = svc.Create(context.Background(), &domain.Car{Make: "Kia", Model: "Rio", Year: 2020, PricePerDay: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidBooking)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	cache.AssertNotCalled(t, "InvalidateCars", mock.Anything)
}

func TestUpdate_InvalidatesCache(t *testing.T) {
	repo := &MockCarRepository{}
	cache := &MockCache{}

	car := &domain.Car{ID: 1, Make: "Toyota", Model: "Corolla", Year: 2022, PricePerDay: 55}
	repo.On("Update", mock.Anything, car).Return(nil)
	cache.On("InvalidateCars", mock.Anything).Return(nil)

	svc := NewCarService(repo, cache)
	err := svc.Update(context.Background(), car)

	assert.NoError(t, err)
	cache.AssertCalled(t, "InvalidateCars", mock.Anything)
}

func TestDelete_InvalidatesCache(t *testing.T) {
	repo := &MockCarRepository{}
	cache := &MockCache{}

	repo.On("Delete", mock.Anything, int64(1)).Return(nil)
	cache.On("InvalidateCars", mock.Anything).Return(nil)

	svc := NewCarService(repo, cache)
	err := svc.Delete(context.Background(), 1)

	assert.NoError(t, err)
	cache.AssertCalled(t, "InvalidateCars", mock.Anything)
}

func TestDelete_RepoErrorSkipsInvalidation(t *testing.T) {
	repo := &MockCarRepository{}
	cache := &MockCache{}

	repo.On("Delete", mock.Anything, int64(9)).Return(domain.ErrCarNotFound)

	svc := NewCarService(repo, cache)
	err := svc.Delete(context.Background(), 9)

	assert.ErrorIs(t, err, domain.ErrCarNotFound)
	cache.AssertNotCalled(t, "InvalidateCars", mock.Anything)
}
