package dashboard

import (
	"math/rand"
	"testing"
	"time"
)

func TestGenerateMockSignals(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	signals := GenerateMockSignals(nil, rand.New(rand.NewSource(3)), now)

	if len(signals) != len(defaultPairs) {
		t.Fatalf("expected %d signals, got %d", len(defaultPairs), len(signals))
	}
	for _, s := range signals {
		if s.Timeframe != "D1" {
			t.Errorf("%s: timeframe = %q, want D1", s.Pair, s.Timeframe)
		}
		if s.Timestamp.After(now.Add(time.Hour)) || s.Timestamp.Before(now.Add(-25*time.Hour)) {
			t.Errorf("%s: timestamp %v not within the last day of %v", s.Pair, s.Timestamp, now)
		}
		if s.Probability < 50 || s.Probability > 90 {
			t.Errorf("%s: probability %v out of range", s.Pair, s.Probability)
		}
		if len(s.UpcomingEvents) != 2 {
			t.Errorf("%s: expected 2 upcoming events, got %d", s.Pair, len(s.UpcomingEvents))
		}
	}
}

func TestGenerateMockSignalsCustomPairs(t *testing.T) {
	pairs := []string{"EUR/GBP"}
	signals := GenerateMockSignals(pairs, rand.New(rand.NewSource(3)), time.Now().UTC())
	if len(signals) != 1 || signals[0].Pair != "EUR/GBP" {
		t.Fatalf("unexpected signals: %v", signals)
	}
}
