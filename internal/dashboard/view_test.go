package dashboard

import (
	"testing"

	"ForexPulse/internal/domain/models"
)

func signalSet() []models.SignalRecord {
	return []models.SignalRecord{
		{Pair: "EUR/USD", Timeframe: "D1"},
		{Pair: "USD/JPY", Timeframe: "D1"},
		{Pair: "EUR/USD", Timeframe: "H4"},
		{Pair: "GBP/USD", Timeframe: "D1"},
	}
}

func TestDeriveViewAllPairs(t *testing.T) {
	got := DeriveView(signalSet(), PairAll, "D1")
	if len(got) != 3 {
		t.Fatalf("expected 3 D1 records, got %d", len(got))
	}
	// order preserved
	if got[0].Pair != "EUR/USD" || got[1].Pair != "USD/JPY" || got[2].Pair != "GBP/USD" {
		t.Fatalf("order not preserved: %v", got)
	}
}

func TestDeriveViewSinglePair(t *testing.T) {
	all := DeriveView(signalSet(), PairAll, "D1")
	one := DeriveView(signalSet(), "EUR/USD", "D1")
	if len(one) != 1 {
		t.Fatalf("expected 1 record, got %d", len(one))
	}
	if len(one) > len(all) {
		t.Fatal("a specific pair can never yield more than all pairs")
	}
}

func TestDeriveViewTimeframeIsExact(t *testing.T) {
	got := DeriveView(signalSet(), "EUR/USD", "H4")
	if len(got) != 1 || got[0].Timeframe != "H4" {
		t.Fatalf("expected the single H4 record, got %v", got)
	}
	if got := DeriveView(signalSet(), "EUR/USD", "W1"); len(got) != 0 {
		t.Fatalf("expected no W1 records, got %v", got)
	}
}

func TestDeriveViewIsPure(t *testing.T) {
	in := signalSet()
	DeriveView(in, "EUR/USD", "D1")
	DeriveView(in, PairAll, "H4")
	if len(in) != 4 {
		t.Fatal("input slice was mutated")
	}

	a := DeriveView(in, "EUR/USD", "D1")
	b := DeriveView(in, "EUR/USD", "D1")
	if len(a) != len(b) {
		t.Fatal("repeated derivation diverged")
	}
}

func TestViewStateLookupIgnoresFilter(t *testing.T) {
	state := NewViewState("EUR/USD", "D1")
	state.SetSignals(signalSet())

	// USD/JPY is filtered out of the view but still present in the set
	if _, ok := state.Lookup("USD/JPY", "D1"); !ok {
		t.Fatal("lookup must search the fetched set, not the derived view")
	}
	if _, ok := state.Lookup("USD/JPY", "W1"); ok {
		t.Fatal("lookup must match the timeframe exactly")
	}
}

func TestViewStateSelect(t *testing.T) {
	state := NewViewState("", "D1")
	if pair, _ := state.Selection(); pair != PairAll {
		t.Fatalf("empty pair must default to %q, got %q", PairAll, pair)
	}

	state.SetSignals(signalSet())
	state.Select("GBP/USD", "D1")
	view := state.View()
	if len(view) != 1 || view[0].Pair != "GBP/USD" {
		t.Fatalf("unexpected view after selection: %v", view)
	}
}
