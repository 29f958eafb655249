package types

import "fmt"

// NoDataError reports that the market data provider could not resolve a
// ticker or returned an empty info payload. It terminates the pipeline and
// is shown to the user as-is; no snapshot is produced.
type NoDataError struct {
	Ticker string
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no data found for ticker: %s", e.Ticker)
}
