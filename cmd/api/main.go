package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/skyburst/storefront-backend/api/routes"
	cartsvc "github.com/skyburst/storefront-backend/internal/cart"
	checkoutsvc "github.com/skyburst/storefront-backend/internal/checkout"
	"github.com/skyburst/storefront-backend/internal/orders"
	"github.com/skyburst/storefront-backend/pkg/config"
	"github.com/skyburst/storefront-backend/pkg/helcim"
	"github.com/skyburst/storefront-backend/pkg/logger"
	"github.com/skyburst/storefront-backend/pkg/metrics"
	"github.com/skyburst/storefront-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	helcimClient, err := helcim.NewClient(context.Background(), cfg.Helcim, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create helcim client", err)
		os.Exit(1)
	}

	cartClient, err := cartsvc.NewClient(cfg.CartAPI)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart client", err)
		os.Exit(1)
	}

	finalizer, err := orders.NewFinalizer(cfg.Orders)
	if err != nil {
		logg.Error(context.Background(), "failed to create purchase finalizer", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	checkoutMetrics := metrics.NewCheckoutMetrics(registry)

	coordinator, err := checkoutsvc.NewCoordinator(checkoutsvc.CoordinatorParams{
		Logger: logg,
		Config: cfg.Checkout,
		Tokens: helcimClient,
		NewWidget: func() checkoutsvc.PaymentWidget {
			return checkoutsvc.NewPresenceWidget(cfg.Checkout.WidgetPresenceTTL)
		},
		Finalizer: finalizer,
		Cache:     redisClient,
		Metrics:   checkoutMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout coordinator", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":        cfg.App.Env,
		"addr":       addr,
		"helcim_env": helcimClient.Environment(),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:      cfg,
			Logger:      logg,
			Redis:       redisClient,
			Carts:       cartClient,
			Settle:      cartsvc.NewSettleTracker(cfg.Checkout.SettleWindow),
			Coordinator: coordinator,
			Gatherer:    registry,
		}),
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-shutdown
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
	logg.Info(ctx, "api server stopped")
}
