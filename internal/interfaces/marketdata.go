package interfaces

import (
	"context"

	"stock-advisor/internal/types"
)

// MarketData fetches everything the dashboard knows about one instrument:
// descriptive/financial info, trailing-1y daily history, and analyst
// recommendation rows. A failed or empty info lookup fails the whole fetch
// with *types.NoDataError; a failed recommendations lookup degrades to an
// empty slice instead of failing.
type MarketData interface {
	Fetch(ctx context.Context, ticker string) (types.CompanyInfo, []types.Bar, []types.Recommendation, error)
}
