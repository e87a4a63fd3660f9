package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ForexPulse/internal/dashboard"
	"ForexPulse/pkg/config"
	applogger "ForexPulse/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "config file path")
	pair := flag.String("pair", "", "pair filter (overrides config, \"all\" for every pair)")
	timeframe := flag.String("timeframe", "", "timeframe filter (overrides config)")
	showHistory := flag.Bool("history", false, "also fetch and render the signal history")
	flag.Parse()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if *pair != "" {
		cfg.Dashboard.Pair = *pair
	}
	if *timeframe != "" {
		cfg.Dashboard.Timeframe = *timeframe
	}

	logger, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: "stderr", // keep the rendered dashboard on stdout
	})
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}

	state := dashboard.NewViewState(cfg.Dashboard.Pair, cfg.Dashboard.Timeframe)
	poller := dashboard.NewPoller(
		cfg.Dashboard.APIBaseURL,
		cfg.Dashboard.PollInterval,
		cfg.Dashboard.RequestTimeout,
		state,
		logger,
	)
	renderer := dashboard.NewRenderer()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	poller.SetOnUpdate(func() {
		view := state.View()
		if err := renderer.RenderCards(os.Stdout, view); err != nil {
			logger.Error("render failed", applogger.Error(err))
			return
		}
		// Detail overlays for the filtered cards, looked up from the full set.
		for _, card := range view {
			if rec, ok := state.Lookup(card.Pair, card.Timeframe); ok {
				detail := dashboard.BuildDetailView(rec)
				if err := renderer.RenderDetail(os.Stdout, detail); err != nil {
					logger.Error("render detail failed", applogger.Error(err))
				}
			}
		}
		if *showHistory {
			renderHistory(ctx, poller, renderer, state, logger)
		}
	})

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	if err := poller.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("poller stopped", applogger.Error(err))
		os.Exit(1)
	}
}

func renderHistory(ctx context.Context, poller *dashboard.Poller, renderer *dashboard.Renderer, state *dashboard.ViewState, logger *applogger.Logger) {
	snap, err := poller.FetchHistory(ctx)
	if err != nil {
		logger.Warn("history fetch failed", applogger.Error(err))
		return
	}
	pair, timeframe := state.Selection()
	filtered := dashboard.FilterHistory(snap.Signals, pair, timeframe)
	if err := renderer.RenderHistory(os.Stdout, filtered, dashboard.ComputeStats(filtered)); err != nil {
		logger.Error("render history failed", applogger.Error(err))
	}
}
