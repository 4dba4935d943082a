package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/carbooking/api"
	"github.com/Domenick1991/carbooking/config"
	"github.com/Domenick1991/carbooking/internal/bootstrap"
	"github.com/Domenick1991/carbooking/internal/cache"
	"github.com/Domenick1991/carbooking/internal/kafka"
	"github.com/Domenick1991/carbooking/internal/payment"
	"github.com/Domenick1991/carbooking/internal/repository"
	"github.com/Domenick1991/carbooking/internal/service/booking"
	"github.com/Domenick1991/carbooking/internal/service/cars"
	"github.com/Domenick1991/carbooking/internal/service/checkout"
	"github.com/jackc/pgx/v5/pgxpool"
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

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Catalog.CacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	provider := payment.NewStripeProvider(cfg.Secrets.StripeSecretKey, cfg.Secrets.StripeWebhookSecret)

	carRepo := repository.NewCarRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	carService := cars.NewCarService(carRepo, redisCache)
	checkoutService := checkout.NewCheckoutService(carRepo, provider, cfg.Checkout)
	bookingService := booking.NewBookingService(
		bookingRepo,
		carRepo,
		provider,
		provider,
		producer,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	handlers := bootstrap.Handlers{
		Cars:     api.NewCarHandler(carService),
		Bookings: api.NewBookingHandler(bookingService),
		Checkout: api.NewCheckoutHandler(checkoutService),
		Webhook:  api.NewWebhookHandler(bookingService),
	}

	if err := bootstrap.Run(ctx, cfg, handlers); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
