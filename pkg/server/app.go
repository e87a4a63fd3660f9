package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ForexPulse/internal/usecase"
	"ForexPulse/pkg/config"
	xhttp "ForexPulse/pkg/http"
	applogger "ForexPulse/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	refresher  *usecase.Refresher
	handler    xhttp.Handler
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, logger *applogger.Logger, refresher *usecase.Refresher, handler xhttp.Handler) *App {
	return &App{
		cfg:       cfg,
		logger:    logger,
		refresher: refresher,
		handler:   handler,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Populate the store before serving: the first reader should never see
	// an empty snapshot.
	initCtx, initCancel := context.WithTimeout(ctx, a.cfg.Producer.Timeout+5*time.Second)
	err := a.refresher.Refresh(initCtx)
	initCancel()
	if err != nil {
		a.logger.Error("initial refresh failed", applogger.Error(err))
		return err
	}
	a.logger.Info("initial signals generated")

	metricsPath := a.cfg.Metrics.Path
	if !a.cfg.Metrics.Enabled {
		metricsPath = ""
	}
	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsPath(metricsPath),
		xhttp.WithRateLimit(a.cfg.Server.RateLimit, a.cfg.Server.RateBurst),
	)
	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("server started",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("producer_mode", a.cfg.Producer.Mode),
	)

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
		return err
	}
	a.logger.Info("shutdown complete")
	return nil
}
