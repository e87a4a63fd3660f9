package dashboard

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"ForexPulse/internal/domain/models"
	xhttp "ForexPulse/pkg/http"
	applogger "ForexPulse/pkg/logger"
)

// Poller periodically fetches the signals endpoint and feeds the view state.
// A fetch that loses the race against a later one is discarded: responses
// are applied by issue order, not arrival order, so a slow old response
// never overwrites a newer view. A failed fetch substitutes locally
// generated mock signals so the view is never left blank.
type Poller struct {
	client   *xhttp.Client
	baseURL  string
	interval time.Duration
	state    *ViewState
	logger   *applogger.Logger
	rng      *rand.Rand

	seq      atomic.Int64
	mu       sync.Mutex
	applied  int64
	onUpdate func()
}

// NewPoller creates a poller against baseURL (e.g. http://localhost:3000).
func NewPoller(baseURL string, interval, timeout time.Duration, state *ViewState, logger *applogger.Logger) *Poller {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Poller{
		client:   xhttp.NewClient(xhttp.WithTimeout(timeout)),
		baseURL:  baseURL,
		interval: interval,
		state:    state,
		logger:   logger,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetOnUpdate registers a callback invoked after a fetch was applied.
func (p *Poller) SetOnUpdate(fn func()) { p.onUpdate = fn }

// Run fetches once immediately, then on every tick until ctx is done.
func (p *Poller) Run(ctx context.Context) error {
	p.FetchOnce(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.FetchOnce(ctx)
		}
	}
}

// FetchOnce performs one sequenced fetch-and-apply cycle.
func (p *Poller) FetchOnce(ctx context.Context) {
	seq := p.seq.Add(1)

	var snap models.Snapshot
	err := p.client.GetJSON(ctx, p.baseURL+"/api/forex/signals", &snap)
	if err != nil {
		p.logger.Warn("signal fetch failed, using local mock data", applogger.Error(err))
		snap = models.Snapshot{
			Timestamp: time.Now().UTC(),
			Signals:   GenerateMockSignals(nil, p.rng, time.Now().UTC()),
		}
	}

	p.apply(seq, snap)
}

// FetchHistory pulls the history endpoint; unlike signals there is no mock
// substitution: the history view just reports the failure.
func (p *Poller) FetchHistory(ctx context.Context) (models.HistorySnapshot, error) {
	var snap models.HistorySnapshot
	if err := p.client.GetJSON(ctx, p.baseURL+"/api/forex/history", &snap); err != nil {
		return models.HistorySnapshot{}, err
	}
	return snap, nil
}

func (p *Poller) apply(seq int64, snap models.Snapshot) {
	p.mu.Lock()
	if seq < p.applied {
		p.mu.Unlock()
		p.logger.Debug("stale fetch discarded")
		return
	}
	p.applied = seq
	p.mu.Unlock()

	p.state.SetSignals(snap.Signals)
	if p.onUpdate != nil {
		p.onUpdate()
	}
}
