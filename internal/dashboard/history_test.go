package dashboard

import (
	"testing"

	"ForexPulse/internal/domain/models"
)

func historySet() []models.HistoryEntry {
	return []models.HistoryEntry{
		{SignalRecord: models.SignalRecord{Pair: "EUR/USD", Timeframe: "D1"}, Result: models.ResultHit},
		{SignalRecord: models.SignalRecord{Pair: "EUR/USD", Timeframe: "H4"}, Result: models.ResultMiss},
		{SignalRecord: models.SignalRecord{Pair: "USD/JPY", Timeframe: "D1"}, Result: models.ResultHit},
		{SignalRecord: models.SignalRecord{Pair: "GBP/USD", Timeframe: "D1"}, Result: models.ResultHit},
	}
}

func TestFilterHistory(t *testing.T) {
	all := FilterHistory(historySet(), PairAll, TimeframeAll)
	if len(all) != 4 {
		t.Fatalf("all/all should pass everything, got %d", len(all))
	}

	byPair := FilterHistory(historySet(), "EUR/USD", TimeframeAll)
	if len(byPair) != 2 {
		t.Fatalf("expected 2 EUR/USD entries, got %d", len(byPair))
	}

	byBoth := FilterHistory(historySet(), "EUR/USD", "D1")
	if len(byBoth) != 1 {
		t.Fatalf("expected 1 EUR/USD D1 entry, got %d", len(byBoth))
	}

	none := FilterHistory(historySet(), "AUD/USD", "D1")
	if len(none) != 0 {
		t.Fatalf("expected no AUD/USD entries, got %d", len(none))
	}
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats(historySet())
	if stats.Total != 4 || stats.Verified != 4 {
		t.Fatalf("total/verified = %d/%d, want 4/4", stats.Total, stats.Verified)
	}
	if stats.SuccessRate != 75 {
		t.Fatalf("success rate = %v, want 75", stats.SuccessRate)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)
	if stats.Total != 0 || stats.SuccessRate != 0 {
		t.Fatalf("empty stats = %+v, want zeros", stats)
	}
}
