package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"stock-advisor/internal/advisor"
	"stock-advisor/internal/interfaces"
	"stock-advisor/internal/journal"
	"stock-advisor/internal/logger"
	"stock-advisor/internal/store"
	"stock-advisor/internal/trace"
	"stock-advisor/internal/types"
	"stock-advisor/internal/ui"
)

// journalRetentionDays controls when old verdict journals get gzipped.
const journalRetentionDays = 30

// App holds the wired pipeline. The only session state is the currently
// selected ticker, owned by the REPL in run; every pipeline invocation
// receives an immutable types.Request.
type App struct {
	cfg    *store.Config
	agg    interfaces.Aggregator
	engine *advisor.Engine
}

func main() {
	_ = godotenv.Load()

	if err := initializeSystem(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize:", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigc
		cancel()
	}()

	cfg, err := loadConfig(ctx)
	if err != nil {
		os.Exit(1)
	}

	app := newApp(ctx, cfg)

	if err := journal.CompressOlder(journalRetentionDays); err != nil {
		logger.Warn(ctx, "Journal compression failed", "error", err)
	}

	if err := app.run(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "dashboard:", err)
	}

	_ = trace.Shutdown(context.Background())
}

// run is the interactive loop: select a ticker, pick an analysis type,
// analyze. EOF and "quit" exit cleanly.
func (a *App) run(ctx context.Context, in io.Reader, out io.Writer) error {
	r := bufio.NewReader(in)

	fmt.Fprintln(out, "📈 Advanced Stock Analysis Dashboard with AI Decision Support")
	fmt.Fprintln(out, `Enter a ticker to analyze it, or "quit" to exit.`)

	ticker := a.cfg.DefaultTicker
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintf(out, "\nEnter stock ticker [%s]: ", ticker)
		line, err := r.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			return err
		}

		input := strings.TrimSpace(line)
		switch strings.ToLower(input) {
		case "quit", "exit", "bye":
			return nil
		case "":
			// keep current selection
		default:
			ticker = strings.ToUpper(input)
		}

		mode, err := readMode(r, out)
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			return err
		}

		a.analyze(ctx, types.Request{Ticker: ticker, Mode: mode}, out)
	}
}

// readMode asks for the analysis type; Overview is the default.
func readMode(r *bufio.Reader, out io.Writer) (types.Mode, error) {
	fmt.Fprint(out, "Analysis type: 1) Overview  2) Price Charts  3) AI Decision Support [1]: ")
	line, err := r.ReadString('\n')
	if err != nil {
		return types.ModeOverview, err
	}
	switch strings.TrimSpace(line) {
	case "2":
		return types.ModePriceCharts, nil
	case "3":
		return types.ModeDecisionSupport, nil
	default:
		return types.ModeOverview, nil
	}
}

// analyze executes one pipeline run. Failures are rendered to the user and
// never partial: a fetch error produces no snapshot output at all.
func (a *App) analyze(ctx context.Context, req types.Request, out io.Writer) {
	logger.Info(ctx, "Analyzing stock", "ticker", req.Ticker, "mode", req.Mode.String())

	snap, err := a.agg.Fetch(ctx, req.Ticker)
	if err != nil {
		var nde *types.NoDataError
		if errors.As(err, &nde) {
			fmt.Fprintf(out, "\n⚠️  %s\n", nde.Error())
		} else {
			fmt.Fprintf(out, "\n⚠️  %v\n", err)
		}
		return
	}

	switch req.Mode {
	case types.ModePriceCharts:
		ui.RenderCharts(out, snap)
	case types.ModeDecisionSupport:
		fmt.Fprintln(out, "\nGenerating AI-powered decision support...")
		analysis := a.engine.Analyze(ctx, snap)
		ui.RenderAnalysis(out, snap, analysis)
		if !advisor.IsError(analysis) {
			v := advisor.ParseVerdict(analysis)
			logger.Analysis(ctx, req.Ticker, req.Mode.String(), v.Headline, len(v.Reasons))
			if err := journal.Append(journal.Entry{
				Ticker:   req.Ticker,
				Mode:     req.Mode.String(),
				Headline: v.Headline,
				Reasons:  v.Reasons,
			}); err != nil {
				logger.Warn(ctx, "Failed to journal verdict", "ticker", req.Ticker, "error", err)
			}
		}
	default:
		ui.RenderOverview(out, snap)
	}
}
