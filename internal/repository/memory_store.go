package repository

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"ForexPulse/internal/domain/models"
	domrepo "ForexPulse/internal/domain/repository"
	"ForexPulse/pkg/util"
)

// MemorySignalStore keeps the latest signal per pair and a bounded,
// day-deduplicated history. All state lives for the process lifetime only.
type MemorySignalStore struct {
	mu           sync.RWMutex
	latestByPair map[string]models.SignalRecord
	history      []models.HistoryEntry
	seen         map[string]struct{} // (pair|timeframe|day) keys present in history
	capacity     int
	hitRate      float64
	rng          *rand.Rand
	refreshedAt  time.Time
}

// NewMemorySignalStore creates an empty store. capacity bounds the history;
// hitRate is the probability a new history entry is marked Hit. A nil rng
// falls back to a time-seeded one; tests inject a fixed seed.
func NewMemorySignalStore(capacity int, hitRate float64, rng *rand.Rand) *MemorySignalStore {
	if capacity <= 0 {
		capacity = 100
	}
	if hitRate <= 0 || hitRate > 1 {
		hitRate = 0.85
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &MemorySignalStore{
		latestByPair: make(map[string]models.SignalRecord),
		seen:         make(map[string]struct{}),
		capacity:     capacity,
		hitRate:      hitRate,
		rng:          rng,
	}
}

// Upsert replaces the latest record per pair, last write wins.
func (s *MemorySignalStore) Upsert(records []models.SignalRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		s.latestByPair[r.Pair] = r
	}
}

// MergeHistory appends entries for unseen (pair, timeframe, calendar-day)
// keys, draws their result, then truncates to the newest capacity entries.
func (s *MemorySignalStore) MergeHistory(records []models.SignalRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range records {
		key := historyKey(r.Pair, r.Timeframe, r.Timestamp)
		if _, ok := s.seen[key]; ok {
			continue
		}
		result := models.ResultMiss
		if s.rng.Float64() < s.hitRate {
			result = models.ResultHit
		}
		s.history = append(s.history, models.HistoryEntry{SignalRecord: r, Result: result})
		s.seen[key] = struct{}{}
	}

	// newest first
	sort.SliceStable(s.history, func(i, j int) bool {
		return s.history[i].Timestamp.After(s.history[j].Timestamp)
	})

	if len(s.history) > s.capacity {
		for _, dropped := range s.history[s.capacity:] {
			delete(s.seen, historyKey(dropped.Pair, dropped.Timeframe, dropped.Timestamp))
		}
		s.history = s.history[:s.capacity]
	}
}

// Snapshot returns a copy of all latest-per-pair records, sorted by pair for
// stable output, plus the last refresh time.
func (s *MemorySignalStore) Snapshot() ([]models.SignalRecord, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.SignalRecord, 0, len(s.latestByPair))
	for _, r := range s.latestByPair {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Pair < out[j].Pair })
	return out, s.refreshedAt
}

// GetPair returns the latest record for an exact pair match.
func (s *MemorySignalStore) GetPair(pair string) (models.SignalRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.latestByPair[pair]
	return r, ok
}

// History returns a copy of the capped history, newest first.
func (s *MemorySignalStore) History() []models.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

// LastRefreshedAt returns when the store was last refreshed.
func (s *MemorySignalStore) LastRefreshedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshedAt
}

// MarkRefreshed records the completion time of a refresh.
func (s *MemorySignalStore) MarkRefreshed(t time.Time) {
	s.mu.Lock()
	s.refreshedAt = t
	s.mu.Unlock()
}

// Size returns the number of cached pairs.
func (s *MemorySignalStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.latestByPair)
}

func historyKey(pair, timeframe string, ts time.Time) string {
	return pair + "|" + timeframe + "|" + util.DayKey(ts)
}

var _ domrepo.SignalStore = (*MemorySignalStore)(nil)
