package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"sort"
	"time"

	"stock-advisor/internal/api"
	"stock-advisor/internal/logger"
	"stock-advisor/internal/store"
	"stock-advisor/internal/trace"
	"stock-advisor/internal/types"
)

// Client talks to the Yahoo Finance public endpoints: the v8 chart API for
// daily history and the v10 quoteSummary API for company info and analyst
// recommendations. No retry anywhere; a failed call surfaces immediately.
type Client struct {
	baseURL      string
	historyRange string
	apiKeyEnv    string
	hc           *api.Client
}

func New(cfg *store.Config) *Client {
	return &Client{
		baseURL:      cfg.Market.BaseURL,
		historyRange: cfg.Market.HistoryRange,
		apiKeyEnv:    cfg.Market.APIKeyEnv,
		hc: api.NewClient(
			api.WithTimeout(30*time.Second),
			api.WithHeaders(api.YahooFinanceHeaders()),
			api.WithLogging(logger.IsDebugEnabled()),
		),
	}
}

// Fetch retrieves info, history, and recommendations for a ticker.
// The info lookup runs first: its failure or an empty payload is how an
// unresolvable ticker surfaces, so both cases fail the whole fetch with
// *types.NoDataError. A chart failure after resolved info is a plain error.
// A recommendations failure degrades to an empty slice.
func (c *Client) Fetch(ctx context.Context, ticker string) (types.CompanyInfo, []types.Bar, []types.Recommendation, error) {
	ctx, span := trace.StartSpan(ctx, "marketdata-fetch")
	defer span.End()

	info, err := c.fetchInfo(ctx, ticker)
	if err != nil {
		logger.ErrorWithErr(ctx, "Info lookup failed", err, "ticker", ticker)
		return types.CompanyInfo{}, nil, nil, &types.NoDataError{Ticker: ticker}
	}
	if info.Empty() {
		return types.CompanyInfo{}, nil, nil, &types.NoDataError{Ticker: ticker}
	}

	history, err := c.fetchChart(ctx, ticker)
	if err != nil {
		return types.CompanyInfo{}, nil, nil, err
	}

	recs, err := c.fetchRecommendations(ctx, ticker)
	if err != nil {
		logger.Warn(ctx, "Recommendations unavailable, continuing without them",
			"ticker", ticker, "error", err)
		recs = []types.Recommendation{}
	}

	return info, history, recs, nil
}

// chartResponse is the shape of the v8 chart API payload. Prices are
// pointers because Yahoo emits nulls for holidays and halts.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

func (c *Client) fetchChart(ctx context.Context, ticker string) ([]types.Bar, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=%s",
		c.baseURL, url.PathEscape(ticker), c.historyRange)

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("chart fetch: %w", err)
	}

	var chart chartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("chart decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("chart api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("chart: no data returned for %s", ticker)
	}

	result := chart.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	bars := make([]types.Bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil || quote.Open[i] == nil {
			continue // null bars (holidays etc.)
		}
		bars = append(bars, types.Bar{
			Ts:    ts,
			Open:  deref(quote.Open[i]),
			High:  deref(quote.High[i]),
			Low:   deref(quote.Low[i]),
			Close: deref(quote.Close[i]),
			Vol:   deref(quote.Volume[i]),
		})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Ts < bars[j].Ts })
	return bars, nil
}

// rawValue is Yahoo's {"raw": 1.23, "fmt": "1.23"} wrapper for numerics.
type rawValue struct {
	Raw *float64 `json:"raw"`
}

func (v rawValue) metric() types.Metric {
	if v.Raw == nil {
		return types.Unavailable()
	}
	return types.Present(*v.Raw)
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			Price *struct {
				LongName           string   `json:"longName"`
				MarketCap          rawValue `json:"marketCap"`
				RegularMarketPrice rawValue `json:"regularMarketPrice"`
			} `json:"price"`
			AssetProfile *struct {
				Sector   string `json:"sector"`
				Industry string `json:"industry"`
			} `json:"assetProfile"`
			SummaryDetail *struct {
				TrailingPE       rawValue `json:"trailingPE"`
				DividendYield    rawValue `json:"dividendYield"`
				FiftyTwoWeekHigh rawValue `json:"fiftyTwoWeekHigh"`
				FiftyTwoWeekLow  rawValue `json:"fiftyTwoWeekLow"`
			} `json:"summaryDetail"`
			FinancialData *struct {
				CurrentPrice   rawValue `json:"currentPrice"`
				ReturnOnEquity rawValue `json:"returnOnEquity"`
			} `json:"financialData"`
			UpgradeDowngradeHistory *struct {
				History []struct {
					EpochGradeDate int64  `json:"epochGradeDate"`
					Firm           string `json:"firm"`
					ToGrade        string `json:"toGrade"`
					FromGrade      string `json:"fromGrade"`
					Action         string `json:"action"`
				} `json:"history"`
			} `json:"upgradeDowngradeHistory"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

func (c *Client) fetchInfo(ctx context.Context, ticker string) (types.CompanyInfo, error) {
	resp, err := c.fetchQuoteSummary(ctx, ticker, "price,assetProfile,summaryDetail,financialData")
	if err != nil {
		return types.CompanyInfo{}, err
	}

	r := resp.QuoteSummary.Result[0]
	info := types.CompanyInfo{}
	if r.Price != nil {
		info.Name = r.Price.LongName
		info.MarketCap = r.Price.MarketCap.metric()
		info.CurrentPrice = r.Price.RegularMarketPrice.metric()
	}
	if r.AssetProfile != nil {
		info.Sector = r.AssetProfile.Sector
		info.Industry = r.AssetProfile.Industry
	}
	if r.SummaryDetail != nil {
		info.TrailingPE = r.SummaryDetail.TrailingPE.metric()
		info.DividendYield = r.SummaryDetail.DividendYield.metric()
		info.High52Week = r.SummaryDetail.FiftyTwoWeekHigh.metric()
		info.Low52Week = r.SummaryDetail.FiftyTwoWeekLow.metric()
	}
	if r.FinancialData != nil {
		info.ReturnOnEq = r.FinancialData.ReturnOnEquity.metric()
		// financialData's currentPrice is fresher than price's when present
		if m := r.FinancialData.CurrentPrice.metric(); m.Valid {
			info.CurrentPrice = m
		}
	}
	return info, nil
}

func (c *Client) fetchRecommendations(ctx context.Context, ticker string) ([]types.Recommendation, error) {
	resp, err := c.fetchQuoteSummary(ctx, ticker, "upgradeDowngradeHistory")
	if err != nil {
		return nil, err
	}

	r := resp.QuoteSummary.Result[0]
	if r.UpgradeDowngradeHistory == nil {
		return []types.Recommendation{}, nil
	}

	recs := make([]types.Recommendation, 0, len(r.UpgradeDowngradeHistory.History))
	for _, h := range r.UpgradeDowngradeHistory.History {
		recs = append(recs, types.Recommendation{
			Ts:        h.EpochGradeDate,
			Firm:      h.Firm,
			ToGrade:   h.ToGrade,
			FromGrade: h.FromGrade,
			Action:    h.Action,
		})
	}
	// Yahoo returns newest-first; callers expect chronological order.
	sort.Slice(recs, func(i, j int) bool { return recs[i].Ts < recs[j].Ts })
	return recs, nil
}

func (c *Client) fetchQuoteSummary(ctx context.Context, ticker, modules string) (*quoteSummaryResponse, error) {
	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=%s",
		c.baseURL, url.PathEscape(ticker), url.QueryEscape(modules))

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("quoteSummary fetch: %w", err)
	}

	var resp quoteSummaryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("quoteSummary decode: %w", err)
	}
	if resp.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("quoteSummary api error: %s", resp.QuoteSummary.Error.Description)
	}
	if len(resp.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("quoteSummary: empty result for %s", ticker)
	}
	return &resp, nil
}

func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	var headers map[string]string
	// Paid market intelligence tiers take a key; the public endpoints don't.
	if key := os.Getenv(c.apiKeyEnv); key != "" {
		headers = map[string]string{"X-API-KEY": key}
	}

	resp, err := c.hc.GET(ctx, u, headers)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
