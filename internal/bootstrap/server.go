package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/carbooking/api"
	"github.com/Domenick1991/carbooking/config"
	"github.com/Domenick1991/carbooking/internal/auth"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Cars     *api.CarHandler
	Bookings *api.BookingHandler
	Checkout *api.CheckoutHandler
	Webhook  *api.WebhookHandler
}

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, h Handlers) error {
	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: newRouter(cfg, h),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(cfg *config.Config, h Handlers) *gin.Engine {
	router := gin.Default()
	secret := cfg.Secrets.JWTSecret

	cars := router.Group("/cars")
	h.Cars.RegisterPublic(cars)

	adminCars := router.Group("/cars", api.AuthRequired(secret), api.RequireRole(auth.RoleAdmin))
	h.Cars.RegisterAdmin(adminCars)

	checkout := router.Group("/checkout", api.AuthOptional(secret))
	h.Checkout.Register(checkout)

	bookings := router.Group("/bookings", api.AuthRequired(secret))
	h.Bookings.Register(bookings)

	// No auth on the webhook: Stripe authenticates with its signature.
	webhook := router.Group("/webhook")
	h.Webhook.Register(webhook)

	return router
}
