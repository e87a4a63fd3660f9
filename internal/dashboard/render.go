package dashboard

import (
	"fmt"
	"io"
	"strings"

	"ForexPulse/internal/domain/models"
	domrepo "ForexPulse/internal/domain/repository"
)

// DetailView is everything the detail overlay shows for one record.
type DetailView struct {
	Record     models.SignalRecord
	Indicators []IndicatorRow
	Sentiment  ChartData
	Events     []models.EconomicEvent
}

// BuildDetailView assembles the detail overlay content. Pure; the record is
// not modified.
func BuildDetailView(rec models.SignalRecord) DetailView {
	return DetailView{
		Record:     rec,
		Indicators: IndicatorRows(rec),
		Sentiment:  SentimentChartData(rec.Sentiment),
		Events:     rec.UpcomingEvents,
	}
}

// Renderer writes dashboard views as text. It is the only part of the
// pipeline that knows about presentation; everything it consumes comes from
// the pure derivation functions.
type Renderer struct {
	Chart ChartRenderer
}

// NewRenderer creates a text renderer with the default chart adapter.
func NewRenderer() *Renderer {
	return &Renderer{Chart: TextChartRenderer{Width: 20}}
}

// RenderCards writes one card per record, or a single placeholder when the
// derived view is empty.
func (r *Renderer) RenderCards(w io.Writer, records []models.SignalRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No signals found for the selected criteria.")
		return err
	}
	for _, rec := range records {
		if err := r.renderCard(w, rec); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderCard(w io.Writer, rec models.SignalRecord) error {
	_, err := fmt.Fprintf(w, "[%s | %s]  %s  price=%.4f  probability=%.1f%%  %s\n",
		rec.Pair,
		domrepo.TimeframeName(domrepo.Timeframe(rec.Timeframe)),
		rec.Signal,
		rec.Price,
		rec.Probability,
		rec.Timestamp.Format("02/01 15:04"),
	)
	return err
}

// RenderDetail writes the detail overlay for one record.
func (r *Renderer) RenderDetail(w io.Writer, d DetailView) error {
	fmt.Fprintf(w, "%s | %s\n", d.Record.Pair, domrepo.TimeframeName(domrepo.Timeframe(d.Record.Timeframe)))
	fmt.Fprintf(w, "Signal: %s  Price: %.4f  Probability: %.1f%%  At: %s\n",
		d.Record.Signal, d.Record.Price, d.Record.Probability,
		d.Record.Timestamp.Format("2006-01-02 15:04:05"))

	fmt.Fprintln(w, "\nTechnical Indicators")
	for _, row := range d.Indicators {
		fmt.Fprintf(w, "  %-22s %-30s %s\n", row.Name, row.Value, row.Label)
	}

	fmt.Fprintln(w, "\nMarket Sentiment")
	if err := r.Chart.RenderBarChart(w, d.Sentiment); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nUpcoming Economic Events")
	if len(d.Events) == 0 {
		fmt.Fprintln(w, "  No relevant economic events found.")
		return nil
	}
	for _, e := range d.Events {
		fmt.Fprintf(w, "  %s  %s (%s impact)\n", e.Date, e.Event, e.Impact)
	}
	return nil
}

// RenderHistory writes the accuracy summary and the history table.
func (r *Renderer) RenderHistory(w io.Writer, entries []models.HistoryEntry, stats HistoryStats) error {
	fmt.Fprintf(w, "Success rate: %.1f%%  Signals: %d  Verified: %d\n",
		stats.SuccessRate, stats.Total, stats.Verified)
	if len(entries) == 0 {
		return nil
	}

	fmt.Fprintln(w, strings.Repeat("-", 78))
	for _, e := range entries {
		fmt.Fprintf(w, "%s  %-8s %-4s %-8s %8.4f %6.1f%%  %s\n",
			e.Timestamp.Format("2006-01-02 15:04"),
			e.Pair,
			e.Timeframe,
			e.Signal,
			e.Price,
			e.Probability,
			e.Result,
		)
	}
	return nil
}
