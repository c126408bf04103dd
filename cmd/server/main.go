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
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/fjod/go_bookstore/internal/cart"
	"github.com/fjod/go_bookstore/internal/catalog"
	"github.com/fjod/go_bookstore/internal/checkout"
	"github.com/fjod/go_bookstore/internal/customer"
	h "github.com/fjod/go_bookstore/internal/http"
	"github.com/fjod/go_bookstore/internal/inventory"
	"github.com/fjod/go_bookstore/internal/order"
)

func main() {
	_ = godotenv.Load()

	// Logger
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	cfg := loadConfig()
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Info().
		Str("port", cfg.HTTPPort).
		Bool("seed", cfg.SeedOnStart).
		Msg("starting bookstore server")

	// Stores
	catalogStore := catalog.NewMemoryStore()
	customerStore := customer.NewMemoryStore()
	cartStore := cart.NewMemoryStore()
	orderLedger := order.NewMemoryLedger()
	inventoryLedger := inventory.NewLedger(catalogStore)

	if cfg.SeedOnStart {
		if err := seedSampleData(catalogStore, customerStore, cartStore); err != nil {
			log.Fatal().Err(err).Msg("failed to seed sample data")
		}
		log.Info().Msg("seeded sample catalog")
	}

	checkoutService := checkout.NewService(customerStore, cartStore, inventoryLedger, orderLedger, log.Logger)

	handlers := h.Handlers{
		Books:     h.NewBookHandler(catalogStore),
		Authors:   h.NewAuthorHandler(catalogStore),
		Customers: h.NewCustomerHandler(customerStore, cartStore, orderLedger),
		Cart:      h.NewCartHandler(cartStore, catalogStore, customerStore),
		Orders:    h.NewOrdersHandler(checkoutService, orderLedger, customerStore),
	}
	router := h.NewRouter(handlers, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(router, "bookstore-api"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Warn().Msg("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
