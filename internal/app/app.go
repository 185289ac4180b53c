package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/plantwater-backend/internal/auth"
	"github.com/heartmarshall/plantwater-backend/internal/config"
	"github.com/heartmarshall/plantwater-backend/internal/ledger"
	"github.com/heartmarshall/plantwater-backend/internal/reminder"
	"github.com/heartmarshall/plantwater-backend/internal/schedule"
	plantsvc "github.com/heartmarshall/plantwater-backend/internal/service/plant"
	"github.com/heartmarshall/plantwater-backend/internal/service/watering"
	"github.com/heartmarshall/plantwater-backend/internal/transport/middleware"
	"github.com/heartmarshall/plantwater-backend/internal/transport/rest"
)

const authRealm = "plantwater"

// Run is the application entry point. It loads configuration, opens the
// configured storage, wires the services and serves HTTP until ctx is
// cancelled, then shuts down gracefully and flushes the ledger.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage", cfg.Storage.Driver),
		slog.String("anchor", cfg.Schedule.Anchor.String()),
		slog.String("timezone", cfg.Schedule.Location.String()),
	)

	backends, err := OpenBackends(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer backends.Close()

	// Services.
	plants := plantsvc.NewService(logger, backends.Plants, backends.Tx)
	if err := plants.EnsureSeed(ctx); err != nil {
		return fmt.Errorf("seed plants: %w", err)
	}

	book := ledger.Open(ctx, backends.Snapshots, cfg.Storage.RecordName, logger)
	engine := schedule.New(cfg.Schedule.Anchor)
	wateringSvc := watering.NewService(logger, plants, book, engine, clockwork.NewRealClock(), watering.Options{
		Location: cfg.Schedule.Location,
		AlarmAt:  cfg.Reminder.AlarmTime,
	})

	// Reminder job.
	if cfg.Reminder.Enabled {
		rem := reminder.New(logger, wateringSvc, book, reminder.Config{
			At:       cfg.Reminder.At,
			Location: cfg.Schedule.Location,
		})
		if err := rem.Start(); err != nil {
			return err
		}
		defer rem.Stop()
	}

	// HTTP.
	handler, stop, err := newHandler(cfg, logger, backends, book, plants, engine, wateringSvc)
	if err != nil {
		return err
	}
	defer stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", slog.String("error", err.Error()))
	}
	if err := book.Flush(shutdownCtx); err != nil {
		logger.Error("final ledger flush failed", slog.String("error", err.Error()))
	}

	logger.Info("application stopped")
	return nil
}

// newHandler builds the routed, middleware-wrapped HTTP handler. The
// returned stop func releases the rate limiter.
func newHandler(
	cfg *config.Config,
	logger *slog.Logger,
	backends *Backends,
	book *ledger.Book,
	plants *plantsvc.Service,
	engine *schedule.Engine,
	wateringSvc *watering.Service,
) (http.Handler, func(), error) {
	var verifier interface {
		Verify(user, password string) bool
	}
	if cfg.Auth.Enabled() {
		creds, err := auth.NewCredentials(cfg.Auth.User, cfg.Auth.WritePasswordHash)
		if err != nil {
			return nil, nil, fmt.Errorf("auth credentials: %w", err)
		}
		verifier = creds
		logger.Info("basic auth enabled for write routes", slog.String("user", cfg.Auth.User))
	} else {
		logger.Warn("write routes are not password protected; set auth.write_password_hash")
	}

	limiter := middleware.NewRateLimiter(clockwork.NewRealClock(), cfg.RateLimit.CleanupInterval)

	mux := rest.NewMux(rest.Routes{
		Health:   rest.NewHealthHandler(backends.Snapshots, book, BuildVersion()),
		Plants:   rest.NewPlantHandler(plants, engine, wateringSvc, logger),
		Watering: rest.NewWateringHandler(wateringSvc, logger),
		Write: middleware.Chain(
			limiter.Limit(cfg.RateLimit.WritesPerMinute),
			middleware.BasicAuth(verifier, authRealm, logger),
		),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(mux)

	return handler, limiter.Stop, nil
}
