package dashboard

import (
	"fmt"

	"ForexPulse/internal/domain/models"
)

// Label is a presentation-only per-indicator classification. It is
// recomputed on every detail open and never written back to the record.
type Label string

const (
	LabelBuy     Label = "Buy"
	LabelSell    Label = "Sell"
	LabelNeutral Label = "Neutral"
)

// IndicatorRow is one line of the detail view's indicator table.
type IndicatorRow struct {
	Name  string
	Value string
	Label Label
}

// LabelRSI: oversold below 30 reads as Buy, overbought above 70 as Sell.
func LabelRSI(rsi float64) Label {
	switch {
	case rsi < 30:
		return LabelBuy
	case rsi > 70:
		return LabelSell
	default:
		return LabelNeutral
	}
}

// LabelMACD classifies around a +-0.001 dead zone.
func LabelMACD(macd float64) Label {
	switch {
	case macd > 0.001:
		return LabelBuy
	case macd < -0.001:
		return LabelSell
	default:
		return LabelNeutral
	}
}

// LabelMA compares price to the 20-period moving average.
func LabelMA(price, ma float64) Label {
	switch {
	case price > ma:
		return LabelBuy
	case price < ma:
		return LabelSell
	default:
		return LabelNeutral
	}
}

// LabelBollinger: price under the lower band reads as Buy, over the upper
// band as Sell.
func LabelBollinger(price, upper, lower float64) Label {
	switch {
	case price < lower:
		return LabelBuy
	case price > upper:
		return LabelSell
	default:
		return LabelNeutral
	}
}

// IndicatorRows builds the indicator table for one record.
func IndicatorRows(rec models.SignalRecord) []IndicatorRow {
	f := rec.Features
	return []IndicatorRow{
		{
			Name:  "RSI (14)",
			Value: fmt.Sprintf("%.1f", f.RSI),
			Label: LabelRSI(f.RSI),
		},
		{
			Name:  "MACD",
			Value: fmt.Sprintf("%.4f", f.MACD),
			Label: LabelMACD(f.MACD),
		},
		{
			Name:  "Moving Average (20)",
			Value: fmt.Sprintf("%.4f", f.MA20),
			Label: LabelMA(rec.Price, f.MA20),
		},
		{
			Name:  "Bollinger Bands",
			Value: fmt.Sprintf("upper %.4f / lower %.4f", f.BBUpper, f.BBLower),
			Label: LabelBollinger(rec.Price, f.BBUpper, f.BBLower),
		},
	}
}
