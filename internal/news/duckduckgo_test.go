package news

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"stock-advisor/internal/store"
)

const searchPage = `<html><body>
<div class="result">
  <a class="result__a" href="https://news.example.com/nvda-earnings">NVIDIA beats earnings estimates</a>
  <a class="result__url">news.example.com/nvda-earnings</a>
</div>
<div class="result">
  <a class="result__a" href="https://blog.example.org/ai-chips">AI chip demand keeps growing</a>
</div>
<div class="result">
  <a class="result__url">orphan.example.net</a>
</div>
</body></html>`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := store.DefaultConfig()
	cfg.News.BaseURL = srv.URL
	return New(cfg), srv
}

func TestBuildQuery(t *testing.T) {
	if got := buildQuery("NVIDIA Corporation"); got != "NVIDIA Corporation stock news" {
		t.Errorf("Unexpected query: %s", got)
	}
	if got := buildQuery("  AAPL  "); got != "AAPL stock news" {
		t.Errorf("Expected trimmed query, got %s", got)
	}
}

func TestSearchStockNews(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		fmt.Fprint(w, searchPage)
	})

	items, err := client.SearchStockNews(context.Background(), "NVIDIA Corporation", 10)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if gotQuery != "NVIDIA Corporation stock news" {
		t.Errorf("Unexpected provider query: %s", gotQuery)
	}

	// The title-less block is skipped.
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}

	if items[0].Title != "NVIDIA beats earnings estimates" {
		t.Errorf("Unexpected title: %s", items[0].Title)
	}
	if items[0].Source != "news.example.com" {
		t.Errorf("Expected displayed source host, got %s", items[0].Source)
	}
	if items[0].URL != "https://news.example.com/nvda-earnings" {
		t.Errorf("Unexpected URL: %s", items[0].URL)
	}

	// Missing result__url falls back to the link's hostname.
	if items[1].Source != "blog.example.org" {
		t.Errorf("Expected hostname fallback, got %s", items[1].Source)
	}
}

func TestSearchStockNewsRespectsLimit(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		for i := 0; i < 20; i++ {
			fmt.Fprintf(w, `<div class="result"><a class="result__a" href="https://e.com/%d">headline %d</a></div>`, i, i)
		}
	})

	items, err := client.SearchStockNews(context.Background(), "NVDA", 3)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(items) != 3 {
		t.Errorf("Expected 3 items, got %d", len(items))
	}
}

func TestSearchStockNewsPropagatesErrors(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	})

	if _, err := client.SearchStockNews(context.Background(), "NVDA", 10); err == nil {
		t.Error("Expected provider error to propagate")
	}
}

func TestHostname(t *testing.T) {
	cases := map[string]string{
		"https://news.example.com/article?id=1": "news.example.com",
		"news.example.com/article":              "news.example.com",
		"bare-host.com":                         "bare-host.com",
		"":                                      defaultSource,
	}

	for in, want := range cases {
		if got := hostname(in); got != want {
			t.Errorf("hostname(%q): expected %s, got %s", in, want, got)
		}
	}
}
