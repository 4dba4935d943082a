package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// BookingConfirmedEvent is published to the notifications topic after a
// booking has been persisted. The worker turns it into a confirmation email.
type BookingConfirmedEvent struct {
	Type          string    `json:"type"`
	SessionID     string    `json:"session_id"`
	UserID        string    `json:"user_id"`
	CarID         int64     `json:"car_id"`
	CarName       string    `json:"car_name"`
	CustomerEmail string    `json:"customer_email"`
	PickupDate    string    `json:"pickup_date"`
	DropoffDate   string    `json:"dropoff_date"`
	Location      string    `json:"location"`
	AmountCents   int64     `json:"amount_cents"`
	Currency      string    `json:"currency"`
	CreatedAt     time.Time `json:"created_at"`
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	})
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
