package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/carbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	// CreateIfAbsent inserts the booking unless one with the same session
	// id already exists. Returns true when a row was inserted. The unique
	// constraint on session_id is the authoritative duplicate guard, so
	// racing inserts for the same session resolve to (false, nil).
	CreateIfAbsent(ctx context.Context, booking *domain.Booking) (bool, error)
	GetBySessionID(ctx context.Context, sessionID string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, session_id, user_id, car_id, pickup_date, dropoff_date, pickup_time, dropoff_time, location, amount_cents, currency, status, created_at`

func (r *PGBookingRepository) CreateIfAbsent(ctx context.Context, booking *domain.Booking) (bool, error) {
	row := r.db.QueryRow(ctx, `INSERT INTO bookings (session_id, user_id, car_id, pickup_date, dropoff_date, pickup_time, dropoff_time, location, amount_cents, currency, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (session_id) DO NOTHING
		RETURNING id, created_at`,
		booking.SessionID, booking.UserID, booking.CarID, booking.PickupDate, booking.DropoffDate,
		booking.PickupTime, booking.DropoffTime, booking.Location, booking.AmountCents, booking.Currency, booking.Status)
	if err := row.Scan(&booking.ID, &booking.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Conflict: a booking for this session already exists.
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *PGBookingRepository) GetBySessionID(ctx context.Context, sessionID string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE session_id=$1`, sessionID)
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.SessionID, &b.UserID, &b.CarID, &b.PickupDate, &b.DropoffDate, &b.PickupTime, &b.DropoffTime, &b.Location, &b.AmountCents, &b.Currency, &b.Status, &b.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *PGBookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.SessionID, &b.UserID, &b.CarID, &b.PickupDate, &b.DropoffDate, &b.PickupTime, &b.DropoffTime, &b.Location, &b.AmountCents, &b.Currency, &b.Status, &b.CreatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

var _ BookingRepository = (*PGBookingRepository)(nil)
