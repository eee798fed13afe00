package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/Care4Youth/care4youth"
	"github.com/Care4Youth/care4youth/api"
	"github.com/Care4Youth/care4youth/email"
	"github.com/Care4Youth/care4youth/internal/config"
	"github.com/Care4Youth/care4youth/payment"
	"github.com/Care4Youth/care4youth/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/urfave/cli/v2"
)

func Web(_ *cli.Context) error {
	slog.Info("Starting Care4Youth", slog.String("version", care4youth.Version))

	if config.C.Stripe.SecretKey == "" {
		return care4youth.Statusf(500, "stripe secret key not configured")
	}
	payments := payment.NewStripeProvider(config.C.Stripe.SecretKey)

	// Mail is optional: without SMTP the newsletter and volunteer
	// endpoints report an error, donations still work.
	mailer, err := email.NewMailer()
	if err != nil {
		slog.Warn("Mailer disabled", slog.Any("err", err))
		mailer = nil
	}

	// Initialize router
	r := chi.NewRouter()

	corsConfig := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	})
	r.Use(corsConfig.Handler)

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Timeout(20 * time.Second))

	r.Mount("/api", api.New(payments, mailer).Handler())
	r.Mount("/", web.NewWeb(config.C.Common.Debug).Handler())

	// for graceful setup and shutdown
	server := &http.Server{
		Addr:    net.JoinHostPort("", strconv.Itoa(config.C.Common.Port)),
		Handler: r,
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", slog.Any("err", err))
			cancel()
		}
	}()

	slog.Info("Successfully started", slog.Int("port", config.C.Common.Port))
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	<-ctx.Done()

	slog.Info("Shutting Down")
	shutdownCtx, timeout := context.WithTimeout(context.Background(), 5*time.Second)
	defer timeout()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Shutdown error", slog.Any("err", err))
	}

	return nil
}
