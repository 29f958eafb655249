package interfaces

import (
	"context"

	"stock-advisor/internal/types"
)

// Aggregator composes market data and news into one snapshot per request.
type Aggregator interface {
	Fetch(ctx context.Context, ticker string) (*types.Snapshot, error)
}
