package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Domenick1991/carbooking/internal/domain"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"
)

type StripeProvider struct {
	webhookSecret string
}

func NewStripeProvider(secretKey, webhookSecret string) *StripeProvider {
	stripe.Key = secretKey
	return &StripeProvider{webhookSecret: webhookSecret}
}

func (p *StripeProvider) CreateCheckoutSession(ctx context.Context, in CreateSessionInput) (*Session, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail:     stripe.String(in.CustomerEmail),
		ClientReferenceID: stripe.String(in.ClientReferenceID),
		SuccessURL:        stripe.String(in.SuccessURL),
		CancelURL:         stripe.String(in.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(in.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(in.ProductName),
						Description: stripe.String(in.ProductDescription),
					},
					UnitAmount: stripe.Int64(in.AmountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx
	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}

	s, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: create checkout session: %v", domain.ErrProviderUnavailable, err)
	}
	return fromStripeSession(s), nil
}

func (p *StripeProvider) GetSession(ctx context.Context, id string) (*Session, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := session.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("%w: retrieve checkout session %s: %v", domain.ErrProviderUnavailable, id, err)
	}
	return fromStripeSession(s), nil
}

func (p *StripeProvider) VerifyEvent(payload []byte, signatureHeader string) (*Event, error) {
	event, err := webhook.ConstructEvent(payload, signatureHeader, p.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSignature, err)
	}

	out := &Event{ID: event.ID, Type: string(event.Type)}
	if out.Type == EventCheckoutSessionCompleted {
		var s stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
			return nil, fmt.Errorf("parse session payload: %w", err)
		}
		out.Session = fromStripeSession(&s)
	}
	return out, nil
}

func fromStripeSession(s *stripe.CheckoutSession) *Session {
	out := &Session{
		ID:            s.ID,
		URL:           s.URL,
		PaymentStatus: string(s.PaymentStatus),
		AmountCents:   s.AmountTotal,
		Currency:      string(s.Currency),
		CustomerEmail: s.CustomerEmail,
		Metadata:      s.Metadata,
	}
	if s.CustomerDetails != nil && s.CustomerDetails.Email != "" {
		out.CustomerEmail = s.CustomerDetails.Email
	}
	return out
}

var (
	_ Provider      = (*StripeProvider)(nil)
	_ EventVerifier = (*StripeProvider)(nil)
)
