package marketobs

import (
	"context"

	"stock-advisor/internal/interfaces"
	"stock-advisor/internal/logger"
	"stock-advisor/internal/trace"
	"stock-advisor/internal/types"
)

// observableMarketData wraps a MarketData client with logging & tracing
type observableMarketData struct {
	md interfaces.MarketData
}

// Compile-time interface check
var _ interfaces.MarketData = (*observableMarketData)(nil)

// Wrap wraps a market data client with observability middleware
func Wrap(md interfaces.MarketData) interfaces.MarketData {
	return &observableMarketData{md: md}
}

func (om *observableMarketData) Fetch(ctx context.Context, ticker string) (types.CompanyInfo, []types.Bar, []types.Recommendation, error) {
	ctx, span := trace.StartSpan(ctx, "marketdata.Fetch")
	defer span.End()

	logger.DebugSkip(ctx, 1, "Fetching market data", "ticker", ticker)

	info, history, recs, err := om.md.Fetch(ctx, ticker)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Failed to fetch market data", err, "ticker", ticker)
		return types.CompanyInfo{}, nil, nil, err
	}

	logger.InfoSkip(ctx, 1, "Market data fetched",
		"ticker", ticker,
		"company", info.Name,
		"bars", len(history),
		"recommendations", len(recs),
	)
	return info, history, recs, nil
}
