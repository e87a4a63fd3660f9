package dashboard

import "ForexPulse/internal/domain/models"

// TimeframeAll selects every timeframe when filtering history.
const TimeframeAll = "all"

// HistoryStats summarizes a (possibly filtered) history slice.
type HistoryStats struct {
	SuccessRate float64 // percent, 0 for an empty set
	Total       int
	Verified    int
}

// FilterHistory returns entries matching pair and timeframe; both accept
// "all". Order-preserving, input untouched.
func FilterHistory(entries []models.HistoryEntry, pair, timeframe string) []models.HistoryEntry {
	out := make([]models.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		if pair != PairAll && e.Pair != pair {
			continue
		}
		if timeframe != TimeframeAll && e.Timeframe != timeframe {
			continue
		}
		out = append(out, e)
	}
	return out
}

// ComputeStats derives the accuracy summary shown above the history table.
// Every entry counts as verified; the Hit/Miss draw stands in for a real
// verification oracle for now.
func ComputeStats(entries []models.HistoryEntry) HistoryStats {
	stats := HistoryStats{Total: len(entries), Verified: len(entries)}
	if len(entries) == 0 {
		return stats
	}
	hits := 0
	for _, e := range entries {
		if e.Result == models.ResultHit {
			hits++
		}
	}
	stats.SuccessRate = float64(hits) / float64(len(entries)) * 100
	return stats
}
