package di

import (
	"math/rand"
	"time"

	domrepo "ForexPulse/internal/domain/repository"
	"ForexPulse/internal/handler/api"
	internalrepo "ForexPulse/internal/repository"
	"ForexPulse/internal/service/producer"
	"ForexPulse/internal/usecase"
	"ForexPulse/pkg/config"
	xhttp "ForexPulse/pkg/http"
	applogger "ForexPulse/pkg/logger"
	"ForexPulse/pkg/metrics"
	"ForexPulse/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() domrepo.Metrics {
	return metrics.New()
}

// ProvideSignalStore creates the in-memory signal store.
func ProvideSignalStore(cfg *config.Config) domrepo.SignalStore {
	return internalrepo.NewMemorySignalStore(
		cfg.Signals.HistoryLimit,
		cfg.Signals.HitRate,
		rngFromSeed(cfg.Signals.Seed),
	)
}

// ProvideFallbackProducer creates the mock generator used when the external
// producer fails (and as the producer itself in mock mode).
func ProvideFallbackProducer(cfg *config.Config) *producer.MockProducer {
	return producer.NewMockProducer(cfg.Signals.Pairs, rngFromSeed(cfg.Signals.Seed))
}

// ProvideSignalProducer selects the producer variant by configuration.
func ProvideSignalProducer(cfg *config.Config, fallback *producer.MockProducer, logger *applogger.Logger) domrepo.SignalProducer {
	if cfg.Producer.Mode == "script" {
		return producer.NewScriptProducer(cfg.Producer.Command, cfg.Producer.Args, cfg.Producer.Timeout, logger)
	}
	return fallback
}

// ProvideRefresher wires the refresh policy.
func ProvideRefresher(
	store domrepo.SignalStore,
	prod domrepo.SignalProducer,
	fallback *producer.MockProducer,
	m domrepo.Metrics,
	cfg *config.Config,
	logger *applogger.Logger,
) *usecase.Refresher {
	return usecase.NewRefresher(store, prod, fallback, cfg.Signals.TTL, m, logger)
}

// ProvideFeed creates the websocket snapshot feed.
func ProvideFeed(logger *applogger.Logger) *api.Feed {
	return api.NewFeed(logger)
}

// ProvideHandler builds the HTTP handler and connects the feed to refreshes.
func ProvideHandler(logger *applogger.Logger, ref *usecase.Refresher, feed *api.Feed) xhttp.Handler {
	ref.SetOnRefresh(feed.Broadcast)
	return api.NewForexHandler(logger, ref, feed)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, logger *applogger.Logger, ref *usecase.Refresher, handler xhttp.Handler) *server.App {
	return server.New(cfg, logger, ref, handler)
}

func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
