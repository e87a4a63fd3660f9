package repository

import (
	"context"
	"time"

	"ForexPulse/internal/domain/models"
)

// SignalProducer is the external model that emits one batch of signals.
// Any error (non-zero exit, malformed output, timeout) means the batch is
// unusable as a whole; partial output is never returned.
type SignalProducer interface {
	Produce(ctx context.Context) ([]models.SignalRecord, error)
}

// SignalStore holds the latest signal per pair plus a bounded history.
// Mutations happen only through the refresh path.
type SignalStore interface {
	// Upsert replaces the latest record for each record's pair.
	Upsert(records []models.SignalRecord)
	// MergeHistory appends entries for records whose (pair, timeframe,
	// calendar-day) key is not present yet, drawing a Hit/Miss result per
	// new entry, then truncates to the newest capacity entries.
	MergeHistory(records []models.SignalRecord)
	// Snapshot returns all latest-per-pair records and the last refresh time.
	Snapshot() ([]models.SignalRecord, time.Time)
	// GetPair returns the latest record for an exact pair match.
	GetPair(pair string) (models.SignalRecord, bool)
	// History returns the capped history, newest first.
	History() []models.HistoryEntry
	// LastRefreshedAt returns when the store was last refreshed.
	LastRefreshedAt() time.Time
	// MarkRefreshed records the completion time of a refresh.
	MarkRefreshed(t time.Time)
	// Size returns the number of cached pairs.
	Size() int
}

// Metrics records operational counters for the refresh pipeline.
type Metrics interface {
	RecordRefresh(source string)
	RecordRefreshDuration(seconds float64)
	RecordCachedPairs(n int)
	RecordHistorySize(n int)
	RecordError(kind string)
}
