package dashboard

import (
	"fmt"
	"io"
	"strings"

	"ForexPulse/internal/domain/models"
)

// ChartData is the generic labels+values input of a bar chart renderer.
type ChartData struct {
	Labels []string
	Values []float64
	Min    float64
	Max    float64
}

// ChartRenderer draws a bar chart; the dashboard only prepares the data.
type ChartRenderer interface {
	RenderBarChart(w io.Writer, data ChartData) error
}

var sentimentLabels = []string{
	"Overall Sentiment",
	"Economic Indicators",
	"Central Bank Policies",
	"Geopolitical Events",
	"Market Liquidity",
}

// SentimentChartData maps the five sentiment scores onto a [-100, 100]
// display range.
func SentimentChartData(s models.Sentiment) ChartData {
	scores := []float64{
		s.Overall,
		s.EconomicIndicators,
		s.CentralBankPolicies,
		s.GeopoliticalEvents,
		s.MarketLiquidity,
	}
	values := make([]float64, len(scores))
	for i, v := range scores {
		values[i] = clamp(v*100, -100, 100)
	}
	return ChartData{
		Labels: append([]string(nil), sentimentLabels...),
		Values: values,
		Min:    -100,
		Max:    100,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// TextChartRenderer draws horizontal bars with ASCII blocks.
type TextChartRenderer struct {
	Width int // bar cells per direction
}

// RenderBarChart writes one bar line per label.
func (r TextChartRenderer) RenderBarChart(w io.Writer, data ChartData) error {
	width := r.Width
	if width <= 0 {
		width = 20
	}
	span := data.Max
	if -data.Min > span {
		span = -data.Min
	}
	if span == 0 {
		span = 1
	}
	for i, label := range data.Labels {
		v := data.Values[i]
		cells := int(v / span * float64(width))
		bar := ""
		if cells >= 0 {
			bar = strings.Repeat("+", cells)
		} else {
			bar = strings.Repeat("-", -cells)
		}
		if _, err := fmt.Fprintf(w, "  %-22s %7.1f%% %s\n", label, v, bar); err != nil {
			return err
		}
	}
	return nil
}
