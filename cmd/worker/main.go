package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/carbooking/config"
	"github.com/Domenick1991/carbooking/internal/email"
	"github.com/Domenick1991/carbooking/internal/kafka"
	kafkaGo "github.com/segmentio/kafka-go"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	var sender email.Sender
	if cfg.Secrets.MailerSendAPIKey != "" {
		sender = email.NewMailerSendSender(cfg.Secrets.MailerSendAPIKey, cfg.Secrets.MailFromAddress, cfg.Secrets.MailFromName)
	} else {
		sender = email.NewConsoleSender()
	}

	err = consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		var event kafka.BookingConfirmedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Printf("decode event error: %v", err)
			return nil
		}
		// Send failures are logged, never retried: the booking is already
		// persisted and the payment must not hinge on a confirmation email.
		if err := sender.Send(ctx, event); err != nil {
			log.Printf("send confirmation error for session %s: %v", event.SessionID, err)
		}
		return nil
	})
	if err != nil && ctx.Err() == nil {
		log.Fatalf("consumer stopped: %v", err)
	}
}
