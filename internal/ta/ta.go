package ta

import "stock-advisor/internal/types"

// Indicator math over daily bar history. Results are optional metrics so a
// too-short history renders as absent instead of a bogus number.

// SMA returns the simple moving average of the last n closes.
func SMA(bars []types.Bar, n int) types.Metric {
	if len(bars) < n || n <= 0 {
		return types.Unavailable()
	}
	sum := 0.0
	for i := len(bars) - n; i < len(bars); i++ {
		sum += bars[i].Close
	}
	return types.Present(sum / float64(n))
}

// RSI returns the relative strength index over the trailing period.
func RSI(bars []types.Bar, period int) types.Metric {
	if len(bars) < period+1 || period <= 0 {
		return types.Unavailable()
	}
	gain, loss := 0.0, 0.0
	for i := len(bars) - period; i < len(bars); i++ {
		d := bars[i].Close - bars[i-1].Close
		if d > 0 {
			gain += d
		} else {
			loss -= d
		}
	}
	if loss == 0 {
		return types.Present(100.0)
	}
	rs := (gain / float64(period)) / (loss / float64(period))
	return types.Present(100.0 - (100.0 / (1.0 + rs)))
}

// Change returns the fractional close-to-close change across the whole
// history, e.g. 0.25 for a 25% gain.
func Change(bars []types.Bar) types.Metric {
	if len(bars) < 2 || bars[0].Close == 0 {
		return types.Unavailable()
	}
	first := bars[0].Close
	last := bars[len(bars)-1].Close
	return types.Present((last - first) / first)
}
