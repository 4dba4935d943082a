package booking

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/carbooking/internal/domain"
	"github.com/Domenick1991/carbooking/internal/kafka"
	"github.com/Domenick1991/carbooking/internal/payment"
	"github.com/Domenick1991/carbooking/internal/repository"
)

type BookingUseCase interface {
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
	Reconcile(ctx context.Context, booking *domain.Booking) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	cars               repository.CarRepository
	provider           payment.Provider
	verifier           payment.EventVerifier
	producer           Producer
	notificationsTopic string
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	cars repository.CarRepository,
	provider payment.Provider,
	verifier payment.EventVerifier,
	producer Producer,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings: bookings,
		cars:     cars,
		provider: provider,
		verifier: verifier,
		producer: producer,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// HandleWebhook processes one provider delivery: verify, filter, confirm
// payment status, extract the intent, reconcile, acknowledge. The provider
// delivers at least once and in no particular order, so the whole pipeline
// is idempotent per session id. A returned error means the caller should
// answer non-200 so the provider retries; nil means acknowledged, whether
// or not this particular delivery created a booking.
func (s *BookingService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.verifier.VerifyEvent(payload, signature)
	if err != nil {
		return err
	}

	if event.Type != payment.EventCheckoutSessionCompleted || event.Session == nil {
		log.Printf("webhook: ignoring event %s (%s)", event.ID, event.Type)
		return nil
	}

	sess := event.Session
	// Re-fetch the session for an authoritative payment status. The
	// delivered payload is used as-is when the fetch fails; it was already
	// authenticated by the signature check.
	if s.provider != nil {
		if fresh, err := s.provider.GetSession(ctx, sess.ID); err == nil {
			fresh.Metadata = mergeMetadata(fresh.Metadata, sess.Metadata)
			sess = fresh
		} else {
			log.Printf("webhook: failed to refetch session %s, using payload: %v", sess.ID, err)
		}
	}

	if sess.PaymentStatus != payment.PaymentStatusPaid {
		log.Printf("webhook: session %s not paid (%s), skipping", sess.ID, sess.PaymentStatus)
		return nil
	}

	res := domain.ParseIntentMetadata(sess.Metadata)
	if !res.Complete() {
		// Missing fields get defaults; a malformed metadata entry must
		// never fail the webhook, the provider would retry forever.
		log.Printf("webhook: session %s metadata missing fields %v", sess.ID, res.Missing)
	}

	booking := &domain.Booking{
		SessionID:   sess.ID,
		UserID:      res.Intent.UserID,
		CarID:       res.Intent.CarID,
		PickupDate:  res.Intent.PickupDate,
		DropoffDate: res.Intent.DropoffDate,
		PickupTime:  res.Intent.PickupTime,
		DropoffTime: res.Intent.DropoffTime,
		Location:    res.Intent.Location,
		AmountCents: sess.AmountCents,
		Currency:    sess.Currency,
		Status:      domain.BookingStatusPaid,
	}

	created, err := s.Reconcile(ctx, booking)
	if err != nil {
		return fmt.Errorf("reconcile session %s: %w", sess.ID, err)
	}
	if created {
		s.notify(ctx, booking, sess.CustomerEmail)
	}
	return nil
}

// Reconcile persists at most one booking per session id. The duplicate
// check is advisory; the unique constraint on session_id decides races.
func (s *BookingService) Reconcile(ctx context.Context, booking *domain.Booking) (bool, error) {
	existing, err := s.bookings.GetBySessionID(ctx, booking.SessionID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	return s.bookings.CreateIfAbsent(ctx, booking)
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

// notify publishes the confirmation event. Failures are logged and
// swallowed: the booking is already durable and the payment must not be
// retried because an email could not be sent.
func (s *BookingService) notify(ctx context.Context, booking *domain.Booking, customerEmail string) {
	if s.producer == nil || s.notificationsTopic == "" {
		return
	}

	carName := "Unknown Car"
	if s.cars != nil && booking.CarID > 0 {
		if car, err := s.cars.GetByID(ctx, booking.CarID); err == nil {
			carName = fmt.Sprintf("%s %s", car.Make, car.Model)
		}
	}

	event := kafka.BookingConfirmedEvent{
		Type:          "booking_confirmed",
		SessionID:     booking.SessionID,
		UserID:        booking.UserID,
		CarID:         booking.CarID,
		CarName:       carName,
		CustomerEmail: customerEmail,
		PickupDate:    booking.PickupDate.Format(domain.DateLayout),
		DropoffDate:   booking.DropoffDate.Format(domain.DateLayout),
		Location:      booking.Location,
		AmountCents:   booking.AmountCents,
		Currency:      booking.Currency,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.producer.Publish(ctx, s.notificationsTopic, booking.SessionID, event); err != nil {
		log.Printf("WARNING: failed to publish booking_confirmed for session %s: %v", booking.SessionID, err)
	}
}

func mergeMetadata(fresh, delivered map[string]string) map[string]string {
	if len(fresh) > 0 {
		return fresh
	}
	return delivered
}

var _ BookingUseCase = (*BookingService)(nil)
