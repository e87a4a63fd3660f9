package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"ForexPulse/internal/domain/models"
	domrepo "ForexPulse/internal/domain/repository"
	applogger "ForexPulse/pkg/logger"
)

// Refresher owns the read-through cache policy over the signal store:
// serve cached signals while they are fresh, refresh lazily on the first
// read after expiry, and absorb producer failures with the fallback
// generator so readers never observe them.
type Refresher struct {
	store    domrepo.SignalStore
	producer domrepo.SignalProducer
	fallback domrepo.SignalProducer
	ttl      time.Duration
	metrics  domrepo.Metrics
	logger   *applogger.Logger

	group     singleflight.Group
	onRefresh func(models.Snapshot)
}

// NewRefresher wires the refresh policy. fallback must not fail under normal
// conditions; it fully replaces a failed producer batch.
func NewRefresher(
	store domrepo.SignalStore,
	prod domrepo.SignalProducer,
	fallback domrepo.SignalProducer,
	ttl time.Duration,
	metrics domrepo.Metrics,
	logger *applogger.Logger,
) *Refresher {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Refresher{
		store:    store,
		producer: prod,
		fallback: fallback,
		ttl:      ttl,
		metrics:  metrics,
		logger:   logger,
	}
}

// SetOnRefresh registers a callback invoked with the fresh snapshot after
// every completed refresh (used to push updates to live dashboards).
func (r *Refresher) SetOnRefresh(fn func(models.Snapshot)) { r.onRefresh = fn }

// GetSignals returns the current snapshot, refreshing first when the cache
// expired or the store is still empty. Concurrent expired readers share a
// single in-flight refresh.
func (r *Refresher) GetSignals(ctx context.Context) (models.Snapshot, error) {
	if r.stale() {
		if err := r.Refresh(ctx); err != nil {
			return models.Snapshot{}, err
		}
	}
	signals, refreshedAt := r.store.Snapshot()
	return models.Snapshot{Timestamp: refreshedAt, Signals: signals}, nil
}

// GetPair returns the cached record for an exact pair match. It never
// triggers a refresh.
func (r *Refresher) GetPair(pair string) (models.SignalRecord, bool) {
	return r.store.GetPair(pair)
}

// GetHistory returns the full capped history; filtering is a client concern.
func (r *Refresher) GetHistory() models.HistorySnapshot {
	return models.HistorySnapshot{
		Timestamp: time.Now().UTC(),
		Signals:   r.store.History(),
	}
}

// Refresh runs one refresh cycle. Callers arriving while a refresh is in
// flight wait for that refresh instead of starting their own.
func (r *Refresher) Refresh(ctx context.Context) error {
	_, err, _ := r.group.Do("refresh", func() (interface{}, error) {
		return nil, r.doRefresh(ctx)
	})
	return err
}

func (r *Refresher) stale() bool {
	if r.store.Size() == 0 {
		return true
	}
	return time.Since(r.store.LastRefreshedAt()) >= r.ttl
}

func (r *Refresher) doRefresh(ctx context.Context) error {
	start := time.Now()
	source := "producer"

	records, err := r.producer.Produce(ctx)
	if err != nil {
		r.logger.Warn("signal producer failed, using fallback", applogger.Error(err))
		if r.metrics != nil {
			r.metrics.RecordError("producer")
		}
		source = "fallback"
		records, err = r.fallback.Produce(ctx)
		if err != nil {
			// Not expected: the fallback generator is local and total.
			if r.metrics != nil {
				r.metrics.RecordError("fallback")
			}
			return err
		}
	}

	r.store.Upsert(records)
	r.store.MergeHistory(records)
	r.store.MarkRefreshed(time.Now().UTC())

	if r.metrics != nil {
		r.metrics.RecordRefresh(source)
		r.metrics.RecordRefreshDuration(time.Since(start).Seconds())
		r.metrics.RecordCachedPairs(r.store.Size())
		r.metrics.RecordHistorySize(len(r.store.History()))
	}
	r.logger.Info("signals refreshed",
		applogger.String("source", source),
		applogger.Int("pairs", r.store.Size()),
		applogger.Duration("took_ms", time.Since(start)),
	)

	if r.onRefresh != nil {
		signals, refreshedAt := r.store.Snapshot()
		r.onRefresh(models.Snapshot{Timestamp: refreshedAt, Signals: signals})
	}
	return nil
}
