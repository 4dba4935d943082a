// Package payment wraps the external payment provider behind small
// interfaces so the services can be tested without network calls.
package payment

import "context"

const (
	// PaymentStatusPaid is the only session status that leads to a booking.
	PaymentStatusPaid = "paid"

	// EventCheckoutSessionCompleted is the only event type the webhook
	// flow acts on; everything else is acknowledged and dropped.
	EventCheckoutSessionCompleted = "checkout.session.completed"
)

// Session is the provider-owned record of one checkout attempt. It is
// referenced, never mutated, by this system.
type Session struct {
	ID            string
	URL           string
	PaymentStatus string
	AmountCents   int64
	Currency      string
	CustomerEmail string
	Metadata      map[string]string
}

// Event is one verified webhook delivery. Session is populated only for
// checkout-session events.
type Event struct {
	ID      string
	Type    string
	Session *Session
}

type CreateSessionInput struct {
	ProductName        string
	ProductDescription string
	AmountCents        int64
	Currency           string
	CustomerEmail      string
	ClientReferenceID  string
	Metadata           map[string]string
	SuccessURL         string
	CancelURL          string
}

type Provider interface {
	CreateCheckoutSession(ctx context.Context, input CreateSessionInput) (*Session, error)
	GetSession(ctx context.Context, id string) (*Session, error)
}

type EventVerifier interface {
	// VerifyEvent authenticates the raw payload against the shared webhook
	// secret. The payload must be the exact bytes received on the wire.
	VerifyEvent(payload []byte, signatureHeader string) (*Event, error)
}
