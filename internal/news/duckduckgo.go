package news

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"stock-advisor/internal/logger"
	"stock-advisor/internal/store"
	"stock-advisor/internal/types"
)

// Sentinel defaults for absent article fields.
const (
	defaultTitle  = "N/A"
	defaultSource = "Unknown"
	defaultURL    = "#"
)

// Client searches the DuckDuckGo HTML endpoint for recent stock news.
// Results come back in provider order; no deduplication or re-ranking.
type Client struct {
	baseURL string
	timeout time.Duration
}

func New(cfg *store.Config) *Client {
	return &Client{
		baseURL: cfg.News.BaseURL,
		timeout: 30 * time.Second,
	}
}

// SearchStockNews returns up to limit news items for a company. The query is
// the company's display name (callers fall back to the ticker) plus the
// literal suffix "stock news". Provider errors propagate to the caller.
func (c *Client) SearchStockNews(ctx context.Context, company string, limit int) ([]types.NewsItem, error) {
	query := buildQuery(company)
	logger.Debug(ctx, "Searching news", "query", query, "limit", limit)

	items := []types.NewsItem{}

	col := colly.NewCollector(
		colly.AllowedDomains(hostOf(c.baseURL)),
		colly.MaxDepth(1),
	)
	col.SetRequestTimeout(c.timeout)

	col.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	})

	col.OnHTML("div.result", func(e *colly.HTMLElement) {
		if len(items) >= limit {
			return
		}
		if item, ok := parseResult(e.DOM); ok {
			items = append(items, item)
		}
	})

	searchURL := fmt.Sprintf("%s/html/?q=%s", c.baseURL, url.QueryEscape(query))
	if err := col.Visit(searchURL); err != nil {
		return nil, fmt.Errorf("news search failed: %w", err)
	}
	col.Wait()

	logger.Info(ctx, "News search completed", "query", query, "articles", len(items))
	return items, nil
}

// buildQuery composes the provider query string for a company.
func buildQuery(company string) string {
	return strings.TrimSpace(company) + " stock news"
}

// parseResult extracts one news item from a search result block. Blocks
// without a usable title link are skipped; other absent fields fall back to
// their sentinels.
func parseResult(sel *goquery.Selection) (types.NewsItem, bool) {
	link := sel.Find("a.result__a").First()
	title := strings.TrimSpace(link.Text())
	if title == "" {
		return types.NewsItem{}, false
	}

	item := types.NewsItem{
		Title:  title,
		Source: defaultSource,
		URL:    defaultURL,
	}

	if href, ok := link.Attr("href"); ok && href != "" {
		item.URL = href
	}
	if src := strings.TrimSpace(sel.Find("a.result__url").First().Text()); src != "" {
		item.Source = hostname(src)
	} else if item.URL != defaultURL {
		item.Source = hostname(item.URL)
	}
	return item, true
}

// hostname reduces a displayed or full URL to its host part.
func hostname(s string) string {
	s = strings.TrimSpace(s)
	if u, err := url.Parse(s); err == nil && u.Hostname() != "" {
		return u.Hostname()
	}
	if i := strings.IndexAny(s, "/?"); i > 0 {
		s = s[:i]
	}
	if s == "" {
		return defaultSource
	}
	return s
}

func hostOf(base string) string {
	u, err := url.Parse(base)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
