// Package app wires configuration, storage, and the HTTP server together.
package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/satdesk-webhooks/gen/oas"
	"github.com/xenking/satdesk-webhooks/internal/domain/auth"
	"github.com/xenking/satdesk-webhooks/internal/domain/order"
	"github.com/xenking/satdesk-webhooks/internal/handler"
	"github.com/xenking/satdesk-webhooks/internal/storage/memory"
	"github.com/xenking/satdesk-webhooks/internal/storage/postgres"
	"github.com/xenking/satdesk-webhooks/internal/webhook"
	"github.com/xenking/satdesk-webhooks/pkg/health"
	"github.com/xenking/satdesk-webhooks/pkg/httpmiddleware"
)

const serviceName = "satdesk-webhooks"

// Run creates all dependencies, starts the HTTP server, and handles graceful
// shutdown. It is the single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg.Info("Initializing", zap.String("addr", cfg.Addr))

	healthSvc := health.New()
	healthSvc.AddLivenessCheck("goroutines", time.Second, health.GoroutineCountCheck(10000))
	healthSvc.AddLivenessCheck("gc_pause", time.Second, health.GCMaxPauseCheck(time.Second))

	// Order storage: PostgreSQL when configured, otherwise process memory.
	var repo order.Repository
	if cfg.DatabaseURL != "" {
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return errors.Wrap(err, "create db pool")
		}
		defer pool.Close()

		if err := postgres.RunMigrations(ctx, pool); err != nil {
			return errors.Wrap(err, "run migrations")
		}
		healthSvc.AddReadinessCheck("postgres", 5*time.Second, health.PingCheck(pool.Ping))
		repo = postgres.NewOrderRepository(pool)
		lg.Info("Using PostgreSQL order store")
	} else {
		repo = memory.NewOrderRepository()
		lg.Warn("DATABASE_URL not set, orders are kept in memory and lost on restart")
	}

	if cfg.WebhookSecret == "" {
		lg.Warn("Webhook secret not configured, all deliveries will be rejected")
	}
	verifier := webhook.NewVerifier(cfg.WebhookSecret, cfg.ReplayWindow)

	var tokens *auth.Tokens
	if cfg.OperatorJWTSecret != "" {
		tokens = auth.NewTokens(cfg.OperatorJWTSecret)
	} else {
		lg.Warn("Operator JWT secret not configured, operator endpoints are unauthenticated")
	}

	// HTTP handlers.
	h, err := handler.NewHandler(
		handler.HandlerConfig{MaxBodyBytes: cfg.MaxBodyBytes, RequireOperator: tokens != nil},
		order.NewService(repo),
		verifier,
		m.MeterProvider().Meter(serviceName),
	)
	if err != nil {
		return errors.Wrap(err, "create handler")
	}
	securityHandler := handler.NewSecurityHandler(verifier, tokens)

	oasServer, err := oas.NewServer(h, securityHandler,
		oas.WithPathPrefix("/api"),
		oas.WithErrorHandler(handler.HandleError),
		oas.WithNotFound(handler.NotFound),
		oas.WithTracerProvider(m.TracerProvider()),
		oas.WithMeterProvider(m.MeterProvider()),
	)
	if err != nil {
		return errors.Wrap(err, "create oas server")
	}

	healthSvc.Start(ctx, 10*time.Second)
	healthSvc.SetReady(true)

	// Mux: health endpoints + ogen API routes on one server. Delivery bodies
	// are buffered ahead of the ogen server for signature checks.
	routeFinder := httpmiddleware.MakeRouteFinder(oasServer)
	mux := http.NewServeMux()
	mux.HandleFunc("/livez", healthSvc.LiveEndpoint)
	mux.HandleFunc("/readyz", healthSvc.ReadyEndpoint)
	mux.Handle("/api/", h.Deliveries(oasServer))

	server := &http.Server{
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
		Addr:              cfg.Addr,
		Handler: httpmiddleware.Wrap(mux,
			httpmiddleware.Recovery(),
			httpmiddleware.CORS(httpmiddleware.CORSConfig{
				AllowOrigins: cfg.CORS.Origins,
				AllowHeaders: []string{
					"Content-Type",
					"Authorization",
					webhook.SignatureHeader,
					webhook.TimestampHeader,
				},
				ExposeHeaders:    []string{httpmiddleware.RequestIDHeader},
				AllowCredentials: cfg.CORS.AllowCredentials,
				MaxAge:           86400,
			}),
			httpmiddleware.RateLimitWithCleanup(ctx, httpmiddleware.RateLimitConfig{
				Max:    cfg.RateLimit.Max,
				Window: cfg.RateLimit.Window,
				// Signed deliveries are exempt.
				Skip: handler.IsDelivery,
			}),
			httpmiddleware.RequestID(),
			httpmiddleware.InjectLogger(zctx.From(ctx)),
			httpmiddleware.Instrument(serviceName, routeFinder, m),
			httpmiddleware.LogRequests(routeFinder),
			httpmiddleware.Labeler(routeFinder),
		),
	}

	// Graceful shutdown: wait for context cancellation, drain, then stop.
	shutdownDone := make(chan struct{})
	go func() {
		<-ctx.Done()
		healthSvc.SetReady(false)
		lg.Info("Readiness set to false, draining", zap.Duration("delay", cfg.Graceful.ReadinessDelay))
		time.Sleep(cfg.Graceful.ReadinessDelay)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Graceful.ShutdownTimeout)
		defer cancel()

		lg.Info("Shutting down server", zap.Duration("timeout", cfg.Graceful.ShutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			lg.Error("Server shutdown error", zap.Error(err))
		}
		healthSvc.Stop()
		close(shutdownDone)
	}()

	lg.Info("Server listening", zap.String("addr", cfg.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "server")
	}
	<-shutdownDone
	return nil
}
