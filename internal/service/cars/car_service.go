package cars

import (
	"context"
	"fmt"

	"github.com/Domenick1991/carbooking/internal/domain"
	"github.com/Domenick1991/carbooking/internal/repository"
)

type CarUseCase interface {
	List(ctx context.Context, filter domain.CarFilter) ([]domain.Car, int, error)
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
	Create(ctx context.Context, car *domain.Car) error
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id int64) error
}

type Cache interface {
	GetCars(ctx context.Context) ([]domain.Car, error)
	SetCars(ctx context.Context, cars []domain.Car) error
	InvalidateCars(ctx context.Context) error
}

type CarService struct {
	repo  repository.CarRepository
	cache Cache
}

func NewCarService(repo repository.CarRepository, cache Cache) *CarService {
	return &CarService{repo: repo, cache: cache}
}

// List serves filtered queries straight from the repository. Unfiltered
// listings go through the cached full catalog and are paginated in memory.
func (s *CarService) List(ctx context.Context, filter domain.CarFilter) ([]domain.Car, int, error) {
	if !filter.Empty() {
		return s.repo.List(ctx, filter)
	}

	var all []domain.Car
	if s.cache != nil {
		if cached, err := s.cache.GetCars(ctx); err == nil && cached != nil {
			all = cached
		}
	}
	if all == nil {
		var err error
		all, err = s.repo.ListAll(ctx)
		if err != nil {
			return nil, 0, err
		}
		if s.cache != nil {
			_ = s.cache.SetCars(ctx, all)
		}
	}

	return pageOf(all, filter.Page, filter.Limit), len(all), nil
}

func (s *CarService) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CarService) Create(ctx context.Context, car *domain.Car) error {
	if err := validateCar(car); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, car); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CarService) Update(ctx context.Context, car *domain.Car) error {
	if err := validateCar(car); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, car); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CarService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CarService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateCars(ctx)
	}
}

func validateCar(car *domain.Car) error {
	if car.Make == "" || car.Model == "" {
		return fmt.Errorf("%w: make and model are required", domain.ErrInvalidBooking)
	}
	if car.Year <= 0 {
		return fmt.Errorf("%w: year is required", domain.ErrInvalidBooking)
	}
	if car.PricePerDay <= 0 {
		return fmt.Errorf("%w: price per day must be positive", domain.ErrInvalidBooking)
	}
	return nil
}

func pageOf(cars []domain.Car, page, limit int) []domain.Car {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	start := (page - 1) * limit
	if start >= len(cars) {
		return []domain.Car{}
	}
	end := start + limit
	if end > len(cars) {
		end = len(cars)
	}
	return cars[start:end]
}

var _ CarUseCase = (*CarService)(nil)
