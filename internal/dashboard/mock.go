package dashboard

import (
	"math"
	"math/rand"
	"time"

	"ForexPulse/internal/domain/models"
	domrepo "ForexPulse/internal/domain/repository"
	"ForexPulse/pkg/util"
)

// defaultPairs mirrors the server's known instruments. The dashboard keeps
// its own generator so a dead server still yields a plausible view.
var defaultPairs = []string{
	"EUR/USD", "USD/JPY", "GBP/USD", "USD/CHF",
	"AUD/USD", "USD/CAD", "NZD/USD", "USD/BRL",
}

var mockDirections = []models.Direction{
	models.DirectionBuy,
	models.DirectionSell,
	models.DirectionNeutral,
}

// GenerateMockSignals synthesizes one D1 signal per pair, timestamped at a
// random point within the last 24 hours.
func GenerateMockSignals(pairs []string, rng *rand.Rand, now time.Time) []models.SignalRecord {
	if len(pairs) == 0 {
		pairs = defaultPairs
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	out := make([]models.SignalRecord, 0, len(pairs))
	for _, pair := range pairs {
		ts := now.Add(-time.Duration(rng.Intn(24)) * time.Hour).
			Truncate(time.Minute).
			Add(time.Duration(rng.Intn(60)) * time.Minute)
		price := fixed(1+rng.Float64()*4, 4)

		out = append(out, models.SignalRecord{
			Pair:        pair,
			Timeframe:   string(domrepo.TFD1),
			Signal:      mockDirections[rng.Intn(len(mockDirections))],
			Probability: fixed(50+rng.Float64()*40, 1),
			Price:       price,
			Timestamp:   ts,
			Features: models.Features{
				RSI:     fixed(30+rng.Float64()*40, 1),
				MACD:    fixed(rng.Float64()*0.01-0.005, 4),
				MA20:    fixed(price-0.01+rng.Float64()*0.02, 4),
				BBUpper: fixed(price+0.05+rng.Float64()*0.02, 4),
				BBLower: fixed(price-0.05-rng.Float64()*0.02, 4),
			},
			Sentiment: models.Sentiment{
				Overall:             fixed(rng.Float64()*0.6-0.3, 2),
				EconomicIndicators:  fixed(rng.Float64()*0.6-0.3, 2),
				CentralBankPolicies: fixed(rng.Float64()*0.6-0.3, 2),
				GeopoliticalEvents:  fixed(rng.Float64()*0.6-0.3, 2),
				MarketLiquidity:     fixed(rng.Float64()*0.6-0.3, 2),
			},
			UpcomingEvents: []models.EconomicEvent{
				{Event: "Interest Rate Decision", Date: util.DateOffset(ts, 5), Impact: models.ImpactHigh},
				{Event: "Employment Report", Date: util.DateOffset(ts, 2), Impact: models.ImpactHigh},
			},
		})
	}
	return out
}

func fixed(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}
