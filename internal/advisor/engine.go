package advisor

import (
	"context"
	"fmt"
	"strings"

	"stock-advisor/internal/interfaces"
	"stock-advisor/internal/logger"
	"stock-advisor/internal/types"
)

// ErrorMarker flags an analysis string as a failure. Renderers must treat
// any text containing it as an error regardless of the rest of the content.
const ErrorMarker = "❌"

// Engine turns a snapshot into an analysis: it builds the prompt, invokes
// the advisor, and hands back the raw response text. Provider failures are
// returned as a marker-prefixed string instead of an error so the single
// rendering path downstream can branch on the marker.
type Engine struct {
	advisor interfaces.Advisor
}

func NewEngine(a interfaces.Advisor) *Engine {
	return &Engine{advisor: a}
}

// Analyze generates the decision-support text for a snapshot.
func (e *Engine) Analyze(ctx context.Context, snap *types.Snapshot) string {
	prompt := BuildPrompt(snap)

	text, err := e.advisor.Generate(ctx, prompt)
	if err != nil {
		logger.ErrorWithErr(ctx, "Advisor call failed", err, "ticker", snap.Ticker)
		return fmt.Sprintf("%s Analysis Error: %v", ErrorMarker, err)
	}
	return text
}

// IsError reports whether an analysis string is a failure sentinel.
func IsError(text string) bool {
	return strings.Contains(text, ErrorMarker)
}

// ParseVerdict splits analysis text into a headline and reasons. Line 0 is
// the decision headline; subsequent non-blank lines are reasons. Headline
// content is deliberately not validated against Buy/Hold/Sell.
func ParseVerdict(text string) types.Verdict {
	lines := strings.Split(text, "\n")

	v := types.Verdict{Headline: strings.TrimSpace(lines[0])}
	for _, line := range lines[1:] {
		if s := strings.TrimSpace(line); s != "" {
			v.Reasons = append(v.Reasons, s)
		}
	}
	return v
}

// BuildPrompt renders the fixed analysis prompt for a snapshot. It embeds
// company identity, the key financial metrics, and the top 3 news titles.
func BuildPrompt(snap *types.Snapshot) string {
	var news strings.Builder
	for i, item := range snap.News {
		if i >= 3 {
			break
		}
		fmt.Fprintf(&news, "Title: %s\n", item.Title)
	}
	if news.Len() == 0 {
		news.WriteString("No recent headlines available.\n")
	}

	return fmt.Sprintf(`Provide a concise stock analysis and decision recommendation based on the following information:

Company Details:
- Name: %s
- Sector: %s
- Market Cap: %s

Financial Metrics:
- Current Price: %s
- P/E Ratio: %s
- Dividend Yield: %s

Recent News Headlines:
%s
Analysis Requirements:
1. Provide a clear decision recommendation (Buy/Hold/Sell) in the first line.
2. Summarize the key reasons for the recommendation in 2-3 bullet points.
3. Keep the analysis concise and focused on actionable insights.`,
		snap.Basic.CompanyName,
		snap.Basic.Sector,
		snap.Basic.MarketCap,
		snap.Price.Current,
		snap.Financials.PERatio,
		snap.Financials.DividendYield,
		news.String(),
	)
}
