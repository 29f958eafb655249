package ui

import (
	"bytes"
	"strings"
	"testing"

	"stock-advisor/internal/advisor"
	"stock-advisor/internal/types"
)

func testSnapshot() *types.Snapshot {
	return &types.Snapshot{
		Ticker: "NVDA",
		Basic: types.BasicInfo{
			CompanyName: "NVIDIA Corporation",
			Sector:      "Technology",
			Industry:    "Semiconductors",
			MarketCap:   "$123,456,789",
		},
		Price: types.PriceInfo{
			Current:    "123.45",
			High52Week: "150.00",
			Low52Week:  "90.00",
		},
		Financials: types.FinancialHealth{
			PERatio:       "45.68",
			DividendYield: "1.23%",
			ROE:           "55.00%",
		},
		Recommendations: []types.Recommendation{
			{Ts: 1700000000, Firm: "Example Securities", FromGrade: "Hold", ToGrade: "Buy", Action: "up"},
		},
		History: []types.Bar{
			{Ts: 1700000000, Close: 100, Vol: 1000},
			{Ts: 1700086400, Close: 105, Vol: 2000},
			{Ts: 1700172800, Close: 102, Vol: 1500},
		},
		News: []types.NewsItem{
			{Title: "NVIDIA beats earnings estimates", Source: "news.example.com", URL: "https://news.example.com/a"},
		},
	}
}

func TestRenderOverview(t *testing.T) {
	var buf bytes.Buffer
	RenderOverview(&buf, testSnapshot())
	out := buf.String()

	for _, want := range []string{
		"Company Overview: NVIDIA Corporation",
		"Technology",
		"$123,456,789",
		"123.45",
		"1.23%",
		"Example Securities",
		"Hold → Buy",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected overview to contain %q", want)
		}
	}
}

func TestRenderOverviewNoRecommendations(t *testing.T) {
	snap := testSnapshot()
	snap.Recommendations = nil

	var buf bytes.Buffer
	RenderOverview(&buf, snap)

	if !strings.Contains(buf.String(), "No recent recommendations available") {
		t.Error("Expected fallback line for missing recommendations")
	}
}

func TestRenderCharts(t *testing.T) {
	var buf bytes.Buffer
	RenderCharts(&buf, testSnapshot())
	out := buf.String()

	if !strings.Contains(out, "Stock Price Movement") {
		t.Error("Expected price chart section")
	}
	if !strings.Contains(out, "Trading Volume") {
		t.Error("Expected volume chart section")
	}
	// Axis carries the series extremes.
	if !strings.Contains(out, "105.00") || !strings.Contains(out, "100.00") {
		t.Errorf("Expected price axis labels in output:\n%s", out)
	}
	if !strings.Contains(out, "2023-11-14") {
		t.Error("Expected date axis")
	}
	// Three bars: period change is computable, 50-day SMA is not.
	if !strings.Contains(out, "2.00%") {
		t.Error("Expected period change indicator")
	}
	if !strings.Contains(out, "50-day SMA:") || !strings.Contains(out, "N/A") {
		t.Error("Expected absent indicators to render N/A")
	}
}

func TestRenderChartsNoHistory(t *testing.T) {
	snap := testSnapshot()
	snap.History = nil

	var buf bytes.Buffer
	RenderCharts(&buf, snap)

	if !strings.Contains(buf.String(), "No historical data available") {
		t.Error("Expected fallback line for missing history")
	}
}

func TestRenderAnalysis(t *testing.T) {
	var buf bytes.Buffer
	RenderAnalysis(&buf, testSnapshot(), "Sell\n- overvalued\n- weak guidance")
	out := buf.String()

	if !strings.Contains(out, ">>> Sell <<<") {
		t.Errorf("Expected decision headline, got:\n%s", out)
	}

	first := strings.Index(out, "- overvalued")
	second := strings.Index(out, "- weak guidance")
	if first < 0 || second < 0 || second < first {
		t.Errorf("Expected reasons in order, got:\n%s", out)
	}

	if !strings.Contains(out, "NVIDIA beats earnings estimates") {
		t.Error("Expected news section")
	}
	if !strings.Contains(out, "Source: news.example.com") {
		t.Error("Expected news source line")
	}
}

func TestRenderAnalysisUnbulletedReasons(t *testing.T) {
	var buf bytes.Buffer
	RenderAnalysis(&buf, testSnapshot(), "Buy\nstrong momentum\n• cheap valuation")
	out := buf.String()

	if !strings.Contains(out, "- strong momentum") {
		t.Error("Expected plain reason to get a bullet prefix")
	}
	if !strings.Contains(out, "• cheap valuation") {
		t.Error("Expected pre-bulleted reason to stay verbatim")
	}
}

func TestRenderAnalysisError(t *testing.T) {
	var buf bytes.Buffer
	errText := advisor.ErrorMarker + " Analysis Error: quota exceeded"
	RenderAnalysis(&buf, testSnapshot(), errText)
	out := buf.String()

	if !strings.Contains(out, errText) {
		t.Error("Expected error text rendered verbatim")
	}
	if strings.Contains(out, "Decision Recommendation") {
		t.Error("Expected no verdict section for a failed analysis")
	}
}

func TestRenderAnalysisLimitsNewsToThree(t *testing.T) {
	snap := testSnapshot()
	snap.News = []types.NewsItem{
		{Title: "one"}, {Title: "two"}, {Title: "three"}, {Title: "four"},
	}

	var buf bytes.Buffer
	RenderAnalysis(&buf, snap, "Hold\n- reason")

	if strings.Contains(buf.String(), "four") {
		t.Error("Expected only the top 3 headlines")
	}
}

func TestDownsample(t *testing.T) {
	vals := make([]float64, 100)
	for i := range vals {
		vals[i] = float64(i)
	}

	out := downsample(vals, 10)
	if len(out) != 10 {
		t.Fatalf("Expected 10 columns, got %d", len(out))
	}
	// Bucket averages stay monotone for a monotone series.
	for i := 1; i < len(out); i++ {
		if out[i] <= out[i-1] {
			t.Errorf("Expected increasing averages, got %v", out)
		}
	}

	short := []float64{1, 2, 3}
	if got := downsample(short, 10); len(got) != 3 {
		t.Errorf("Expected short series to pass through, got %d columns", len(got))
	}
}

func TestBounds(t *testing.T) {
	lo, hi := bounds([]float64{5, 3, 9, 7})
	if lo != 3 || hi != 9 {
		t.Errorf("Expected bounds 3..9, got %v..%v", lo, hi)
	}

	// A flat series must not produce a zero-height scale.
	lo, hi = bounds([]float64{4, 4, 4})
	if hi <= lo {
		t.Errorf("Expected non-degenerate bounds, got %v..%v", lo, hi)
	}
}
