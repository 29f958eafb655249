package aggregator

import (
	"context"
	"errors"
	"fmt"

	"stock-advisor/internal/interfaces"
	"stock-advisor/internal/logger"
	"stock-advisor/internal/store"
	"stock-advisor/internal/trace"
	"stock-advisor/internal/types"
)

// maxRecommendations bounds the analyst rating rows kept in a snapshot.
const maxRecommendations = 5

// Aggregator composes the market data and news clients into one snapshot
// per request. It owns top-level error handling for the fetch pipeline:
// *types.NoDataError passes through untouched, anything else collapses into
// a single wrapped error with no partial snapshot.
type Aggregator struct {
	market  interfaces.MarketData
	news    interfaces.NewsSearcher
	maxNews int
}

func New(cfg *store.Config, market interfaces.MarketData, news interfaces.NewsSearcher) *Aggregator {
	return &Aggregator{
		market:  market,
		news:    news,
		maxNews: cfg.News.MaxResults,
	}
}

// Fetch builds a fresh snapshot for a ticker.
func (a *Aggregator) Fetch(ctx context.Context, ticker string) (*types.Snapshot, error) {
	ctx, span := trace.StartSpan(ctx, "aggregator-fetch")
	defer span.End()

	logger.Debug(ctx, "Building snapshot", "ticker", ticker)

	info, history, recs, err := a.market.Fetch(ctx, ticker)
	if err != nil {
		var nde *types.NoDataError
		if errors.As(err, &nde) {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected error fetching stock data: %w", err)
	}

	company := info.Name
	if company == "" {
		company = ticker
	}
	items, err := a.news.SearchStockNews(ctx, company, a.maxNews)
	if err != nil {
		return nil, fmt.Errorf("unexpected error fetching stock data: %w", err)
	}
	if len(items) > a.maxNews {
		items = items[:a.maxNews]
	}

	snap := &types.Snapshot{
		Ticker: ticker,
		Basic: types.BasicInfo{
			CompanyName: orNA(info.Name),
			Sector:      orNA(info.Sector),
			Industry:    orNA(info.Industry),
			MarketCap:   FormatMarketCap(info.MarketCap),
		},
		Price: types.PriceInfo{
			Current:    FormatPrice(info.CurrentPrice),
			High52Week: FormatPrice(info.High52Week),
			Low52Week:  FormatPrice(info.Low52Week),
		},
		Financials: types.FinancialHealth{
			PERatio:       FormatRatio(info.TrailingPE),
			DividendYield: FormatPercent(info.DividendYield),
			ROE:           FormatPercent(info.ReturnOnEq),
		},
		Recommendations: tail(recs, maxRecommendations),
		History:         history,
		News:            items,
	}

	logger.Info(ctx, "Snapshot built",
		"ticker", ticker,
		"company", snap.Basic.CompanyName,
		"bars", len(snap.History),
		"recommendations", len(snap.Recommendations),
		"news", len(snap.News),
	)
	return snap, nil
}

// tail returns the last n elements, preserving order.
func tail(recs []types.Recommendation, n int) []types.Recommendation {
	if len(recs) <= n {
		return recs
	}
	return recs[len(recs)-n:]
}

func orNA(s string) string {
	if s == "" {
		return types.NA
	}
	return s
}
