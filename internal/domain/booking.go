package domain

import "time"

type BookingStatus string

const (
	// BookingStatusPaid is the only status the reconciliation flow writes.
	BookingStatusPaid BookingStatus = "paid"
)

// GuestUserID marks bookings made without an authenticated principal.
const GuestUserID = "guest"

// Booking is the durable record of a paid checkout session. It is created
// exactly once per session (session_id carries a unique constraint) and is
// never mutated by this flow afterwards.
type Booking struct {
	ID          int64
	SessionID   string
	UserID      string
	CarID       int64
	PickupDate  time.Time
	DropoffDate time.Time
	PickupTime  string
	DropoffTime string
	Location    string
	AmountCents int64
	Currency    string
	Status      BookingStatus
	CreatedAt   time.Time
}

// PickupLocations is the set of physical pickup points offered at checkout.
var PickupLocations = []string{
	"Square One Mall",
	"Pearson International Airport (YYZ)",
	"Union Station",
}

func ValidPickupLocation(location string) bool {
	for _, l := range PickupLocations {
		if l == location {
			return true
		}
	}
	return false
}
