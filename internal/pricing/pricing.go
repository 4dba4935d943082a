// Package pricing computes the total charge for a rental period.
package pricing

import (
	"fmt"
	"math"
	"time"

	"github.com/Domenick1991/carbooking/internal/domain"
)

// TotalCents returns the total charge in minor currency units for renting a
// car at pricePerDay (major units) from pickup to dropoff. The charge is
// pricePerDay times the number of whole days, rounded up. The calculation
// runs in major units and converts to cents once at the end, so integer-day
// integer-cent rates never accumulate rounding drift.
func TotalCents(pricePerDay float64, pickup, dropoff time.Time) (int64, error) {
	if pricePerDay <= 0 {
		return 0, fmt.Errorf("%w: price per day must be positive", domain.ErrInvalidBooking)
	}

	days := Days(pickup, dropoff)
	if days <= 0 {
		return 0, fmt.Errorf("%w: dropoff must be after pickup", domain.ErrInvalidBooking)
	}

	total := pricePerDay * float64(days)
	cents := int64(math.Round(total * 100))
	if cents <= 0 || math.IsInf(total, 0) || math.IsNaN(total) {
		return 0, fmt.Errorf("%w: computed charge is not a positive amount", domain.ErrInvalidBooking)
	}
	return cents, nil
}

// Days is the billable day count: the ceiling of whole days between the two
// dates. Zero or negative spans are not billable.
func Days(pickup, dropoff time.Time) int {
	return int(math.Ceil(dropoff.Sub(pickup).Hours() / 24))
}
