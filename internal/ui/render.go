package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"stock-advisor/internal/advisor"
	"stock-advisor/internal/aggregator"
	"stock-advisor/internal/ta"
	"stock-advisor/internal/types"
)

// Terminal renderer for the three analysis views. All functions format a
// snapshot into plain text; nothing here mutates state or fetches data.

// RenderOverview writes the company overview view.
func RenderOverview(w io.Writer, snap *types.Snapshot) {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("\n📈 Company Overview: %s\n", snap.Basic.CompanyName))
	b.WriteString(divider())

	b.WriteString(fmt.Sprintf("  %-16s %s\n", "Sector:", snap.Basic.Sector))
	b.WriteString(fmt.Sprintf("  %-16s %s\n", "Industry:", snap.Basic.Industry))
	b.WriteString(fmt.Sprintf("  %-16s %s\n", "Market Cap:", snap.Basic.MarketCap))

	b.WriteString("\nPrice Performance\n")
	b.WriteString(fmt.Sprintf("  %-16s %s\n", "Current:", snap.Price.Current))
	b.WriteString(fmt.Sprintf("  %-16s %s\n", "52 Week High:", snap.Price.High52Week))
	b.WriteString(fmt.Sprintf("  %-16s %s\n", "52 Week Low:", snap.Price.Low52Week))

	b.WriteString("\nFinancial Health\n")
	b.WriteString(fmt.Sprintf("  %-16s %s\n", "P/E Ratio:", snap.Financials.PERatio))
	b.WriteString(fmt.Sprintf("  %-16s %s\n", "Dividend Yield:", snap.Financials.DividendYield))
	b.WriteString(fmt.Sprintf("  %-16s %s\n", "ROE:", snap.Financials.ROE))

	b.WriteString("\nRecent Analyst Recommendations\n")
	if len(snap.Recommendations) == 0 {
		b.WriteString("  No recent recommendations available\n")
	} else {
		for _, r := range snap.Recommendations {
			b.WriteString("  " + formatRecommendation(r) + "\n")
		}
	}

	fmt.Fprint(w, b.String())
}

// RenderCharts writes the price and volume chart view.
func RenderCharts(w io.Writer, snap *types.Snapshot) {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("\n📈 Price Analysis: %s\n", snap.Basic.CompanyName))
	b.WriteString(divider())

	if len(snap.History) == 0 {
		b.WriteString("  No historical data available\n")
		fmt.Fprint(w, b.String())
		return
	}

	b.WriteString("\nStock Price Movement (1y daily close)\n")
	b.WriteString(renderPriceChart(snap.History, chartWidth, chartHeight))

	b.WriteString("\nTrading Volume\n")
	b.WriteString(renderVolumeChart(snap.History, chartWidth, volumeHeight))

	b.WriteString("\nIndicators\n")
	b.WriteString(fmt.Sprintf("  %-16s %s\n", "50-day SMA:", aggregator.FormatPrice(ta.SMA(snap.History, 50))))
	b.WriteString(fmt.Sprintf("  %-16s %s\n", "14-day RSI:", aggregator.FormatRatio(ta.RSI(snap.History, 14))))
	b.WriteString(fmt.Sprintf("  %-16s %s\n", "Period Change:", aggregator.FormatPercent(ta.Change(snap.History))))

	fmt.Fprint(w, b.String())
}

// RenderAnalysis writes the AI decision support view. Any analysis string
// containing the failure marker is rendered as an error; everything else is
// parsed into a headline and bullet reasons.
func RenderAnalysis(w io.Writer, snap *types.Snapshot, analysis string) {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("\n📈 AI Decision Support: %s\n", snap.Basic.CompanyName))
	b.WriteString(divider())

	b.WriteString("\nRecent News\n")
	if len(snap.News) == 0 {
		b.WriteString("  No recent news found\n")
	}
	for i, item := range snap.News {
		if i >= 3 {
			break
		}
		b.WriteString(fmt.Sprintf("  • %s\n", item.Title))
		b.WriteString(fmt.Sprintf("    Source: %s | %s\n", item.Source, item.URL))
	}

	b.WriteString("\nAI Agent Investment Insights\n")
	if advisor.IsError(analysis) {
		b.WriteString(fmt.Sprintf("  %s\n", analysis))
		fmt.Fprint(w, b.String())
		return
	}

	v := advisor.ParseVerdict(analysis)
	b.WriteString("\nDecision Recommendation\n")
	b.WriteString(fmt.Sprintf("  >>> %s <<<\n", v.Headline))

	b.WriteString("\nKey Reasons\n")
	for _, reason := range v.Reasons {
		b.WriteString("  " + bullet(reason) + "\n")
	}

	fmt.Fprint(w, b.String())
}

func formatRecommendation(r types.Recommendation) string {
	date := time.Unix(r.Ts, 0).UTC().Format("2006-01-02")
	grade := r.ToGrade
	if r.FromGrade != "" && r.FromGrade != r.ToGrade {
		grade = r.FromGrade + " → " + r.ToGrade
	}
	return fmt.Sprintf("%s  %-24s %-22s %s", date, r.Firm, grade, r.Action)
}

// bullet keeps already-bulleted reasons verbatim and prefixes the rest.
func bullet(s string) string {
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "•") || strings.HasPrefix(s, "*") {
		return s
	}
	return "- " + s
}

func divider() string {
	return strings.Repeat("─", 64) + "\n"
}
