package interfaces

import (
	"context"

	"stock-advisor/internal/types"
)

// NewsSearcher queries a web search provider for recent stock news.
// Provider errors propagate to the caller; the aggregator owns top-level
// error handling.
type NewsSearcher interface {
	SearchStockNews(ctx context.Context, company string, limit int) ([]types.NewsItem, error)
}
