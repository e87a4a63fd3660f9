package producer

import (
	"context"
	"math"
	"math/rand"
	"time"

	"ForexPulse/internal/domain/models"
	domrepo "ForexPulse/internal/domain/repository"
	"ForexPulse/pkg/util"
)

// DefaultPairs are the instruments the mock generator covers.
var DefaultPairs = []string{
	"EUR/USD", "USD/JPY", "GBP/USD", "USD/CHF",
	"AUD/USD", "USD/CAD", "NZD/USD", "USD/BRL",
}

var directions = []models.Direction{
	models.DirectionBuy,
	models.DirectionSell,
	models.DirectionNeutral,
}

// MockProducer synthesizes one demo signal per configured pair.
// It backs the fallback path and the "mock" producer mode.
type MockProducer struct {
	pairs []string
	rng   *rand.Rand
}

// NewMockProducer creates a generator over the given pairs. A nil rng falls
// back to a time-seeded one; tests inject a fixed seed for exact assertions.
func NewMockProducer(pairs []string, rng *rand.Rand) *MockProducer {
	if len(pairs) == 0 {
		pairs = DefaultPairs
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &MockProducer{pairs: pairs, rng: rng}
}

// Produce generates one D1 signal per pair. It never fails.
func (m *MockProducer) Produce(_ context.Context) ([]models.SignalRecord, error) {
	now := time.Now().UTC()
	out := make([]models.SignalRecord, 0, len(m.pairs))
	for _, pair := range m.pairs {
		out = append(out, m.generate(pair, now))
	}
	return out, nil
}

func (m *MockProducer) generate(pair string, ts time.Time) models.SignalRecord {
	price := roundTo(1+m.rng.Float64()*4, 4)
	return models.SignalRecord{
		Pair:        pair,
		Timeframe:   string(domrepo.TFD1),
		Signal:      directions[m.rng.Intn(len(directions))],
		Probability: roundTo(50+m.rng.Float64()*40, 1),
		Price:       price,
		Timestamp:   ts,
		Features: models.Features{
			RSI:     roundTo(30+m.rng.Float64()*40, 1),
			MACD:    roundTo(m.rng.Float64()*0.01-0.005, 4),
			MA20:    roundTo(price-0.01+m.rng.Float64()*0.02, 4),
			BBUpper: roundTo(price+0.05+m.rng.Float64()*0.02, 4),
			BBLower: roundTo(price-0.05-m.rng.Float64()*0.02, 4),
		},
		Sentiment: models.Sentiment{
			Overall:             m.sentimentScore(),
			EconomicIndicators:  m.sentimentScore(),
			CentralBankPolicies: m.sentimentScore(),
			GeopoliticalEvents:  m.sentimentScore(),
			MarketLiquidity:     m.sentimentScore(),
		},
		UpcomingEvents: []models.EconomicEvent{
			{Event: "Interest Rate Decision", Date: util.DateOffset(ts, 5), Impact: models.ImpactHigh},
			{Event: "Employment Report", Date: util.DateOffset(ts, 2), Impact: models.ImpactHigh},
		},
	}
}

func (m *MockProducer) sentimentScore() float64 {
	return roundTo(m.rng.Float64()*0.6-0.3, 2)
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}

var _ domrepo.SignalProducer = (*MockProducer)(nil)
