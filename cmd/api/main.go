package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/bloomcart/checkout-backend/api/routes"
	cartsvc "github.com/bloomcart/checkout-backend/internal/cart"
	checkoutsvc "github.com/bloomcart/checkout-backend/internal/checkout"
	"github.com/bloomcart/checkout-backend/internal/orders"
	"github.com/bloomcart/checkout-backend/internal/payment"
	"github.com/bloomcart/checkout-backend/internal/profile"
	"github.com/bloomcart/checkout-backend/pkg/config"
	"github.com/bloomcart/checkout-backend/pkg/logger"
	"github.com/bloomcart/checkout-backend/pkg/metrics"
	"github.com/bloomcart/checkout-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "checkout-api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "checkout-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := closeAll(redisClient); err != nil {
			logg.Error(context.Background(), "error during shutdown cleanup", err)
		}
	}()

	pricing, err := cartsvc.NewPricing(cfg.Cart)
	if err != nil {
		logg.Error(context.Background(), "failed to parse cart pricing config", err)
		os.Exit(1)
	}
	cartRepo, err := cartsvc.NewRedisRepository(redisClient, cfg.Cart.TTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart repository", err)
		os.Exit(1)
	}
	cartService, err := cartsvc.NewService(cartRepo, pricing)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	sessionStore, err := checkoutsvc.NewRedisStore(redisClient, cfg.Checkout.SessionTTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create session store", err)
		os.Exit(1)
	}
	profileSource, err := profile.NewHTTPSource(cfg.Profile)
	if err != nil {
		logg.Error(context.Background(), "failed to create profile source", err)
		os.Exit(1)
	}
	publisher, err := orders.NewHTTPPublisher(cfg.Orders)
	if err != nil {
		logg.Error(context.Background(), "failed to create orders publisher", err)
		os.Exit(1)
	}

	checkoutService, err := checkoutsvc.NewService(checkoutsvc.ServiceParams{
		Store:     sessionStore,
		Cart:      cartService,
		Profiles:  profileSource,
		Gateway:   payment.NewSimulator(cfg.Payment),
		Publisher: publisher,
		Metrics:   metrics.NewCheckoutMetrics(prometheus.DefaultRegisterer),
		Config:    cfg.Checkout,
		Logger:    logg,
		Currency:  cfg.Payment.Currency,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting checkout api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, redisClient, checkoutService, cartService),
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "checkout api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-shutdownCtx.Done():
		logg.Info(ctx, "shutdown signal received")
		drainCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(drainCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}
}

func closeAll(closers ...interface{ Close() error }) error {
	var errs error
	for _, c := range closers {
		if c == nil {
			continue
		}
		errs = multierr.Append(errs, c.Close())
	}
	return errs
}
