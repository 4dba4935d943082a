package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/carbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CarRepository interface {
	List(ctx context.Context, filter domain.CarFilter) ([]domain.Car, int, error)
	ListAll(ctx context.Context) ([]domain.Car, error)
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
	Create(ctx context.Context, car *domain.Car) error
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id int64) error
}

type PGCarRepository struct {
	db *pgxpool.Pool
}

func NewCarRepository(db *pgxpool.Pool) CarRepository {
	return &PGCarRepository{db: db}
}

const carColumns = `id, make, model, year, price_per_day, mileage, car_type, transmission, image_url, created_at, updated_at`

func (r *PGCarRepository) List(ctx context.Context, filter domain.CarFilter) ([]domain.Car, int, error) {
	where := ` WHERE 1=1`
	args := []any{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where += fmt.Sprintf(` AND (make ILIKE $%d OR model ILIKE $%d)`, len(args), len(args))
	}
	if filter.CarType != "" {
		args = append(args, filter.CarType)
		where += fmt.Sprintf(` AND car_type = $%d`, len(args))
	}
	if filter.Transmission != "" {
		args = append(args, filter.Transmission)
		where += fmt.Sprintf(` AND transmission = $%d`, len(args))
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM cars`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}
	args = append(args, limit, (page-1)*limit)
	query := `SELECT ` + carColumns + ` FROM cars` + where +
		fmt.Sprintf(` ORDER BY id LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	cars := make([]domain.Car, 0)
	for rows.Next() {
		var c domain.Car
		if err := rows.Scan(&c.ID, &c.Make, &c.Model, &c.Year, &c.PricePerDay, &c.Mileage, &c.CarType, &c.Transmission, &c.ImageURL, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, err
		}
		cars = append(cars, c)
	}
	return cars, total, rows.Err()
}

func (r *PGCarRepository) ListAll(ctx context.Context) ([]domain.Car, error) {
	rows, err := r.db.Query(ctx, `SELECT `+carColumns+` FROM cars ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cars := make([]domain.Car, 0)
	for rows.Next() {
		var c domain.Car
		if err := rows.Scan(&c.ID, &c.Make, &c.Model, &c.Year, &c.PricePerDay, &c.Mileage, &c.CarType, &c.Transmission, &c.ImageURL, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		cars = append(cars, c)
	}
	return cars, rows.Err()
}

func (r *PGCarRepository) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	row := r.db.QueryRow(ctx, `SELECT `+carColumns+` FROM cars WHERE id=$1`, id)
	var c domain.Car
	if err := row.Scan(&c.ID, &c.Make, &c.Model, &c.Year, &c.PricePerDay, &c.Mileage, &c.CarType, &c.Transmission, &c.ImageURL, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCarNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *PGCarRepository) Create(ctx context.Context, car *domain.Car) error {
	return r.db.QueryRow(ctx, `INSERT INTO cars (make, model, year, price_per_day, mileage, car_type, transmission, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		car.Make, car.Model, car.Year, car.PricePerDay, car.Mileage, car.CarType, car.Transmission, car.ImageURL).
		Scan(&car.ID, &car.CreatedAt, &car.UpdatedAt)
}

func (r *PGCarRepository) Update(ctx context.Context, car *domain.Car) error {
	row := r.db.QueryRow(ctx, `UPDATE cars SET make=$1, model=$2, year=$3, price_per_day=$4, mileage=$5, car_type=$6, transmission=$7, image_url=$8, updated_at=now()
		WHERE id=$9 RETURNING updated_at`,
		car.Make, car.Model, car.Year, car.PricePerDay, car.Mileage, car.CarType, car.Transmission, car.ImageURL, car.ID)
	if err := row.Scan(&car.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrCarNotFound
		}
		return err
	}
	return nil
}

func (r *PGCarRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM cars WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrCarNotFound
	}
	return nil
}

var _ CarRepository = (*PGCarRepository)(nil)
