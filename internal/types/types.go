package types

// NA is the sentinel shown for any field whose source value is absent.
// Consumers must treat it as a valid display value, never as missing data.
const NA = "N/A"

// Metric is an optional numeric field. Provider payloads routinely omit
// fields, so absence is modeled explicitly instead of with zero values.
type Metric struct {
	Value float64
	Valid bool
}

// Present returns a Metric carrying v.
func Present(v float64) Metric { return Metric{Value: v, Valid: true} }

// Unavailable returns the absent Metric.
func Unavailable() Metric { return Metric{} }

// Bar is one daily OHLCV record.
type Bar struct {
	Ts                          int64
	Open, High, Low, Close, Vol float64
}

// CompanyInfo holds the raw descriptive and financial fields returned by
// the market data provider. String fields are empty when absent; numeric
// fields carry their own validity.
type CompanyInfo struct {
	Name          string
	Sector        string
	Industry      string
	MarketCap     Metric
	CurrentPrice  Metric
	High52Week    Metric
	Low52Week     Metric
	TrailingPE    Metric
	DividendYield Metric
	ReturnOnEq    Metric
}

// Empty reports whether the provider returned no usable info at all.
func (i CompanyInfo) Empty() bool {
	return i.Name == "" && i.Sector == "" && !i.CurrentPrice.Valid && !i.MarketCap.Valid
}

// Recommendation is one analyst rating row, oldest-first in sequences.
type Recommendation struct {
	Ts        int64
	Firm      string
	ToGrade   string
	FromGrade string
	Action    string
}

// NewsItem is one news article from the search provider.
type NewsItem struct {
	Title  string
	Source string
	URL    string
}

// BasicInfo is the formatted company identity section of a snapshot.
type BasicInfo struct {
	CompanyName string
	Sector      string
	Industry    string
	MarketCap   string
}

// PriceInfo is the formatted price section of a snapshot.
type PriceInfo struct {
	Current    string
	High52Week string
	Low52Week  string
}

// FinancialHealth is the formatted financial metrics section of a snapshot.
type FinancialHealth struct {
	PERatio       string
	DividendYield string
	ROE           string
}

// Snapshot is the aggregated point-in-time view of one ticker. It is built
// fresh per analysis request and never cached or shared.
type Snapshot struct {
	Ticker          string
	Basic           BasicInfo
	Price           PriceInfo
	Financials      FinancialHealth
	Recommendations []Recommendation // last 5, chronological order
	History         []Bar            // trailing 1y daily bars, ascending
	News            []NewsItem       // up to 10 articles
}

// Verdict is the parsed model output: first line as the decision headline,
// remaining non-blank lines as reasons. Headline content is not validated.
type Verdict struct {
	Headline string
	Reasons  []string
}

// Mode selects which view an analysis request renders.
type Mode int

const (
	ModeOverview Mode = iota
	ModePriceCharts
	ModeDecisionSupport
)

func (m Mode) String() string {
	switch m {
	case ModeOverview:
		return "Overview"
	case ModePriceCharts:
		return "Price Charts"
	case ModeDecisionSupport:
		return "AI Decision Support"
	default:
		return "Unknown"
	}
}

// Request carries the immutable parameters of one pipeline invocation.
type Request struct {
	Ticker string
	Mode   Mode
}
