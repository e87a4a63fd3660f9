package dashboard

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"ForexPulse/internal/domain/models"
)

func sampleRecord() models.SignalRecord {
	return models.SignalRecord{
		Pair:        "EUR/USD",
		Timeframe:   "D1",
		Signal:      models.DirectionBuy,
		Probability: 72.5,
		Price:       1.0842,
		Timestamp:   time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC),
		Features:    models.Features{RSI: 45, MACD: 0.002, MA20: 1.08, BBUpper: 1.13, BBLower: 1.03},
		UpcomingEvents: []models.EconomicEvent{
			{Event: "Interest Rate Decision", Date: "2026-09-05", Impact: models.ImpactHigh},
		},
	}
}

func TestRenderCardsEmptyPlaceholder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer().RenderCards(&buf, nil); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No signals found") {
		t.Fatalf("missing empty-state placeholder: %q", buf.String())
	}
}

func TestRenderCards(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer().RenderCards(&buf, []models.SignalRecord{sampleRecord()}); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"EUR/USD", "Daily (D1)", "BUY", "1.0842", "72.5"} {
		if !strings.Contains(out, want) {
			t.Errorf("card output missing %q: %q", want, out)
		}
	}
}

func TestRenderDetail(t *testing.T) {
	var buf bytes.Buffer
	d := BuildDetailView(sampleRecord())
	if err := NewRenderer().RenderDetail(&buf, d); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Technical Indicators",
		"RSI (14)",
		"Market Sentiment",
		"Upcoming Economic Events",
		"Interest Rate Decision",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("detail output missing %q", want)
		}
	}
}

func TestRenderDetailNoEvents(t *testing.T) {
	rec := sampleRecord()
	rec.UpcomingEvents = nil

	var buf bytes.Buffer
	if err := NewRenderer().RenderDetail(&buf, BuildDetailView(rec)); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No relevant economic events found.") {
		t.Fatal("missing empty-events placeholder")
	}
}

func TestRenderHistory(t *testing.T) {
	var buf bytes.Buffer
	entries := []models.HistoryEntry{
		{SignalRecord: sampleRecord(), Result: models.ResultHit},
	}
	if err := NewRenderer().RenderHistory(&buf, entries, ComputeStats(entries)); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Success rate: 100.0%", "Signals: 1", "EUR/USD", "Hit"} {
		if !strings.Contains(out, want) {
			t.Errorf("history output missing %q: %q", want, out)
		}
	}
}
