package domain

import "errors"

var (
	// ErrCarNotFound: the referenced car does not exist in the catalog.
	ErrCarNotFound = errors.New("car not found")
	// ErrInvalidBooking: missing or invalid intent fields, or a
	// non-positive computed charge. Surfaced synchronously, never retried.
	ErrInvalidBooking = errors.New("invalid booking request")
	// ErrInvalidSignature: webhook payload failed authentication.
	ErrInvalidSignature = errors.New("invalid webhook signature")
	// ErrProviderUnavailable: the payment provider call failed.
	ErrProviderUnavailable = errors.New("payment provider unavailable")
)
