package main

import (
	"context"
	"fmt"

	"stock-advisor/internal/advisor"
	"stock-advisor/internal/advisor/advisorobs"
	"stock-advisor/internal/aggregator"
	"stock-advisor/internal/interfaces"
	"stock-advisor/internal/logger"
	"stock-advisor/internal/marketdata"
	"stock-advisor/internal/marketdata/marketobs"
	"stock-advisor/internal/news"
	"stock-advisor/internal/store"
	"stock-advisor/internal/trace"
)

// initializeSystem initializes the logger and tracer
func initializeSystem() error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := trace.Init(); err != nil {
		return fmt.Errorf("failed to initialize tracer: %w", err)
	}
	return nil
}

// loadConfig loads and returns the configuration
func loadConfig(ctx context.Context) (*store.Config, error) {
	cfg, err := store.LoadConfig("config.yaml")
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err)
		return nil, err
	}
	return cfg, nil
}

// newApp wires the clients, aggregator, and recommendation engine with
// observability middleware.
func newApp(ctx context.Context, cfg *store.Config) *App {
	market := marketobs.Wrap(marketdata.New(cfg))
	agg := aggregator.New(cfg, market, news.New(cfg))
	eng := advisor.NewEngine(initializeAdvisor(ctx, cfg))

	return &App{cfg: cfg, agg: agg, engine: eng}
}

// initializeAdvisor returns the configured advisor with observability
func initializeAdvisor(ctx context.Context, cfg *store.Config) interfaces.Advisor {
	var adv interfaces.Advisor
	switch cfg.LLM.Provider {
	case "GEMINI":
		adv = advisor.NewGemini(cfg)
	default:
		adv = advisor.NewNoop()
		logger.Warn(ctx, "No LLM provider configured - using Noop advisor (always Hold)")
	}
	return advisorobs.Wrap(adv)
}
