package models

import "time"

// Direction is the trading call carried by a signal.
type Direction string

const (
	DirectionBuy     Direction = "BUY"
	DirectionSell    Direction = "SELL"
	DirectionNeutral Direction = "NEUTRAL"
)

// Impact classifies how strongly an economic event is expected to move the pair.
type Impact string

const (
	ImpactLow    Impact = "Low"
	ImpactMedium Impact = "Medium"
	ImpactHigh   Impact = "High"
)

// Result records whether a historical signal played out.
type Result string

const (
	ResultHit  Result = "Hit"
	ResultMiss Result = "Miss"
)

// Features holds the technical indicator values attached to a signal.
// Bollinger bands are whatever the producer emitted; bb_lower <= price <= bb_upper
// is NOT guaranteed and must not be enforced here.
type Features struct {
	RSI     float64 `json:"rsi"`
	MACD    float64 `json:"macd"`
	MA20    float64 `json:"ma_20"`
	BBUpper float64 `json:"bb_upper"`
	BBLower float64 `json:"bb_lower"`
}

// Sentiment holds per-category sentiment scores in [-1, 1].
type Sentiment struct {
	Overall             float64 `json:"overall_sentiment"`
	EconomicIndicators  float64 `json:"economic_indicators"`
	CentralBankPolicies float64 `json:"central_bank_policies"`
	GeopoliticalEvents  float64 `json:"geopolitical_events"`
	MarketLiquidity     float64 `json:"market_liquidity"`
}

// EconomicEvent is an upcoming calendar event relevant to the pair.
type EconomicEvent struct {
	Event  string `json:"event"`
	Date   string `json:"date"` // YYYY-MM-DD
	Impact Impact `json:"impact"`
}

// SignalRecord is one trading call for a (pair, timeframe).
type SignalRecord struct {
	Pair           string          `json:"pair"`
	Timeframe      string          `json:"timeframe"`
	Signal         Direction       `json:"signal"`
	Probability    float64         `json:"probability"`
	Price          float64         `json:"price"`
	Timestamp      time.Time       `json:"timestamp"`
	Features       Features        `json:"features"`
	Sentiment      Sentiment       `json:"sentiment_analysis"`
	UpcomingEvents []EconomicEvent `json:"upcoming_events"`
}

// HistoryEntry is a SignalRecord plus its (simulated) outcome.
// The result is drawn at ingestion time; there is no real outcome tracking yet.
type HistoryEntry struct {
	SignalRecord
	Result Result `json:"result"`
}

// Snapshot is the wire shape of GET /api/forex/signals.
type Snapshot struct {
	Timestamp time.Time      `json:"timestamp"`
	Signals   []SignalRecord `json:"signals"`
}

// HistorySnapshot is the wire shape of GET /api/forex/history.
type HistorySnapshot struct {
	Timestamp time.Time      `json:"timestamp"`
	Signals   []HistoryEntry `json:"signals"`
}
