package aggregator

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"stock-advisor/internal/types"
)

// Pure formatting functions over optional metrics. Absence always renders
// the "N/A" sentinel, never an empty string.

// FormatMarketCap renders a market cap as a thousands-separated currency
// string, e.g. 123456789 -> "$123,456,789".
func FormatMarketCap(m types.Metric) string {
	if !m.Valid {
		return types.NA
	}
	return "$" + humanize.Comma(int64(m.Value))
}

// FormatPercent renders a raw fraction as a percentage with two decimals,
// e.g. 0.0123 -> "1.23%".
func FormatPercent(m types.Metric) string {
	if !m.Valid {
		return types.NA
	}
	return fmt.Sprintf("%.2f%%", m.Value*100)
}

// FormatPrice renders a price with two decimals.
func FormatPrice(m types.Metric) string {
	if !m.Valid {
		return types.NA
	}
	return fmt.Sprintf("%.2f", m.Value)
}

// FormatRatio renders a plain ratio such as P/E with two decimals.
func FormatRatio(m types.Metric) string {
	if !m.Valid {
		return types.NA
	}
	return fmt.Sprintf("%.2f", m.Value)
}
