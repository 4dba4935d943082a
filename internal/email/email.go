package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Domenick1991/carbooking/internal/kafka"
)

type Sender interface {
	Send(ctx context.Context, event kafka.BookingConfirmedEvent) error
}

// MailerSendSender delivers confirmation emails through the MailerSend
// REST API. Missing configuration is logged and skipped rather than
// treated as an error: a booking is already persisted by the time a
// notification is attempted, and must never be retried because of email.
type MailerSendSender struct {
	apiKey      string
	fromAddress string
	fromName    string
	client      *http.Client
}

func NewMailerSendSender(apiKey, fromAddress, fromName string) *MailerSendSender {
	return &MailerSendSender{
		apiKey:      apiKey,
		fromAddress: fromAddress,
		fromName:    fromName,
		client:      &http.Client{Timeout: 15 * time.Second},
	}
}

type mailerSendRequest struct {
	From    mailerSendParty   `json:"from"`
	To      []mailerSendParty `json:"to"`
	Subject string            `json:"subject"`
	Text    string            `json:"text"`
}

type mailerSendParty struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

func (s *MailerSendSender) Send(ctx context.Context, event kafka.BookingConfirmedEvent) error {
	if s.apiKey == "" || s.fromAddress == "" {
		log.Printf("email: MailerSend not configured, skipping confirmation for session %s", event.SessionID)
		return nil
	}
	if event.CustomerEmail == "" {
		log.Printf("email: no customer email for session %s, skipping", event.SessionID)
		return nil
	}

	payload := mailerSendRequest{
		From:    mailerSendParty{Email: s.fromAddress, Name: s.fromName},
		To:      []mailerSendParty{{Email: event.CustomerEmail}},
		Subject: "Your Booking Confirmation",
		Text:    confirmationBody(event),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.mailersend.com/v1/email", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	res, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		msg, _ := io.ReadAll(res.Body)
		return fmt.Errorf("mailersend responded %d: %s", res.StatusCode, string(msg))
	}
	return nil
}

func confirmationBody(event kafka.BookingConfirmedEvent) string {
	amount := fmt.Sprintf("%.2f %s", float64(event.AmountCents)/100, strings.ToUpper(event.Currency))
	return fmt.Sprintf(
		"Hello,\n\nThank you for your booking!\n\nCar: %s\nPickup: %s at %s\nDropoff: %s\nAmount paid: %s\nBooking reference: %s\n",
		event.CarName, event.PickupDate, event.Location, event.DropoffDate, amount, event.SessionID,
	)
}

// ConsoleSender logs instead of sending; used when no mail provider is set.
type ConsoleSender struct{}

func NewConsoleSender() *ConsoleSender {
	return &ConsoleSender{}
}

func (s *ConsoleSender) Send(ctx context.Context, event kafka.BookingConfirmedEvent) error {
	log.Printf("send confirmation to %s for session %s (car %s, %s -> %s)",
		event.CustomerEmail, event.SessionID, event.CarName, event.PickupDate, event.DropoffDate)
	return nil
}

var (
	_ Sender = (*MailerSendSender)(nil)
	_ Sender = (*ConsoleSender)(nil)
)
