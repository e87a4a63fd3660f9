package dashboard

import (
	"sync"

	"ForexPulse/internal/domain/models"
)

// PairAll selects every pair in the filter dimensions.
const PairAll = "all"

// ViewState holds the dashboard's selection state and the last fetched
// signal set. The derived view is always recomputed from these; the fetched
// set itself is never mutated by filtering.
type ViewState struct {
	mu                sync.RWMutex
	selectedPair      string
	selectedTimeframe string
	lastFetched       []models.SignalRecord
}

// NewViewState creates view state with an initial selection.
func NewViewState(pair, timeframe string) *ViewState {
	if pair == "" {
		pair = PairAll
	}
	return &ViewState{selectedPair: pair, selectedTimeframe: timeframe}
}

// SetSignals replaces the fetched signal set.
func (v *ViewState) SetSignals(signals []models.SignalRecord) {
	v.mu.Lock()
	v.lastFetched = signals
	v.mu.Unlock()
}

// Signals returns the last fetched signal set.
func (v *ViewState) Signals() []models.SignalRecord {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.lastFetched
}

// Select updates the filter selection.
func (v *ViewState) Select(pair, timeframe string) {
	v.mu.Lock()
	v.selectedPair = pair
	v.selectedTimeframe = timeframe
	v.mu.Unlock()
}

// Selection returns the current filter selection.
func (v *ViewState) Selection() (pair, timeframe string) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.selectedPair, v.selectedTimeframe
}

// View returns the derived view for the current selection.
func (v *ViewState) View() []models.SignalRecord {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return DeriveView(v.lastFetched, v.selectedPair, v.selectedTimeframe)
}

// Lookup finds the exact record for (pair, timeframe) in the fetched set
// rather than the derived view, so detail opens work regardless of the
// current filters.
func (v *ViewState) Lookup(pair, timeframe string) (models.SignalRecord, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	for _, s := range v.lastFetched {
		if s.Pair == pair && s.Timeframe == timeframe {
			return s, true
		}
	}
	return models.SignalRecord{}, false
}

// DeriveView returns the subsequence of signals matching the selection.
// Pure and order-preserving: pair "all" passes every pair, the timeframe is
// always exact-matched.
func DeriveView(signals []models.SignalRecord, pair, timeframe string) []models.SignalRecord {
	out := make([]models.SignalRecord, 0, len(signals))
	for _, s := range signals {
		if pair != PairAll && s.Pair != pair {
			continue
		}
		if s.Timeframe != timeframe {
			continue
		}
		out = append(out, s)
	}
	return out
}
