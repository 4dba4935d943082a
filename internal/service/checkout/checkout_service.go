package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/carbooking/config"
	"github.com/Domenick1991/carbooking/internal/auth"
	"github.com/Domenick1991/carbooking/internal/domain"
	"github.com/Domenick1991/carbooking/internal/payment"
	"github.com/Domenick1991/carbooking/internal/pricing"
	"github.com/Domenick1991/carbooking/internal/repository"
	"github.com/google/uuid"
)

const guestEmail = "guest@example.com"

type CheckoutUseCase interface {
	InitiateCheckout(ctx context.Context, input CheckoutInput, principal *auth.Principal) (*payment.Session, error)
	GetSession(ctx context.Context, sessionID string) (*payment.Session, error)
}

type CheckoutInput struct {
	CarID       int64  `json:"car_id"`
	PickupDate  string `json:"pickup_date"`
	DropoffDate string `json:"dropoff_date"`
	PickupTime  string `json:"pickup_time"`
	DropoffTime string `json:"dropoff_time"`
	Location    string `json:"location"`
}

type CheckoutService struct {
	cars     repository.CarRepository
	provider payment.Provider
	cfg      config.CheckoutConfig
}

func NewCheckoutService(cars repository.CarRepository, provider payment.Provider, cfg config.CheckoutConfig) *CheckoutService {
	return &CheckoutService{cars: cars, provider: provider, cfg: cfg}
}

// InitiateCheckout prices the requested rental and opens a provider
// checkout session carrying the full booking intent as metadata. Nothing is
// persisted locally; a Booking exists only after the payment webhook
// confirms the session was paid.
func (s *CheckoutService) InitiateCheckout(ctx context.Context, input CheckoutInput, principal *auth.Principal) (*payment.Session, error) {
	pickup, dropoff, err := validateInput(input)
	if err != nil {
		return nil, err
	}

	car, err := s.cars.GetByID(ctx, input.CarID)
	if err != nil {
		return nil, err
	}

	amountCents, err := pricing.TotalCents(car.PricePerDay, pickup, dropoff)
	if err != nil {
		return nil, err
	}

	userID := domain.GuestUserID
	customerEmail := guestEmail
	if principal != nil && principal.UserID != "" {
		userID = principal.UserID
		if principal.Email != "" {
			customerEmail = principal.Email
		}
	}

	intent := domain.BookingIntent{
		CarID:       car.ID,
		PickupDate:  pickup,
		DropoffDate: dropoff,
		PickupTime:  input.PickupTime,
		DropoffTime: input.DropoffTime,
		Location:    input.Location,
		UserID:      userID,
		AmountCents: amountCents,
		Currency:    s.cfg.Currency,
	}

	return s.provider.CreateCheckoutSession(ctx, payment.CreateSessionInput{
		ProductName:        fmt.Sprintf("%s %s", car.Make, car.Model),
		ProductDescription: fmt.Sprintf("Car booking for %d", car.Year),
		AmountCents:        amountCents,
		Currency:           s.cfg.Currency,
		CustomerEmail:      customerEmail,
		ClientReferenceID:  uuid.NewString(),
		Metadata:           intent.Metadata(),
		SuccessURL:         s.cfg.SuccessURL,
		CancelURL:          s.cfg.CancelURL,
	})
}

// GetSession is the read-only confirmation view behind the success
// redirect. It never creates bookings; that is exclusively the webhook's
// job, since a success URL can be loaded without completing payment.
func (s *CheckoutService) GetSession(ctx context.Context, sessionID string) (*payment.Session, error) {
	return s.provider.GetSession(ctx, sessionID)
}

func validateInput(input CheckoutInput) (pickup, dropoff time.Time, err error) {
	if input.CarID <= 0 {
		return pickup, dropoff, fmt.Errorf("%w: car id is required", domain.ErrInvalidBooking)
	}
	if input.PickupDate == "" || input.DropoffDate == "" || input.PickupTime == "" || input.DropoffTime == "" || input.Location == "" {
		return pickup, dropoff, fmt.Errorf("%w: missing booking data", domain.ErrInvalidBooking)
	}
	if !domain.ValidPickupLocation(input.Location) {
		return pickup, dropoff, fmt.Errorf("%w: unknown pickup location %q", domain.ErrInvalidBooking, input.Location)
	}
	pickup, err = time.Parse(domain.DateLayout, input.PickupDate)
	if err != nil {
		return pickup, dropoff, fmt.Errorf("%w: invalid pickup date", domain.ErrInvalidBooking)
	}
	dropoff, err = time.Parse(domain.DateLayout, input.DropoffDate)
	if err != nil {
		return pickup, dropoff, fmt.Errorf("%w: invalid dropoff date", domain.ErrInvalidBooking)
	}
	return pickup, dropoff, nil
}

var _ CheckoutUseCase = (*CheckoutService)(nil)
