package dashboard

import (
	"fmt"
	"strings"
	"time"

	"market-watch/src/models"
	"market-watch/src/utils"
)

// -----------------------------------------------------------------------------
// Renderer
// -----------------------------------------------------------------------------

// ANSI escape codes used by the dashboard. Disabled wholesale when color is
// off (non-TTY output, NO_COLOR environments).
const (
	ansiReset   = "\033[0m"
	ansiBold    = "\033[1m"
	ansiDim     = "\033[2m"
	ansiRed     = "\033[31m"
	ansiGreen   = "\033[32m"
	ansiYellow  = "\033[33m"
	ansiBlue    = "\033[34m"
	ansiMagenta = "\033[35m"
	ansiCyan    = "\033[36m"

	ansiClearScreen = "\033[2J\033[H"
)

const explanationWidth = 40

// Renderer draws a market summary as a full-screen terminal dashboard:
// header with market and clock, stock table with verdicts, news panel.
type Renderer struct {
	Color    bool
	Calendar *utils.TradingCalendar
}

// -----------------------------------------------------------------------------

func NewRenderer(color bool, cal *utils.TradingCalendar) *Renderer {
	return &Renderer{Color: color, Calendar: cal}
}

// -----------------------------------------------------------------------------

// Render produces the complete frame for one summary, clear-screen included.
func (r *Renderer) Render(summary *models.MMarketSummary) string {
	var b strings.Builder
	b.WriteString(ansiClearScreen)

	r.writeHeader(&b, summary)
	r.writeStocks(&b, summary)
	r.writeNews(&b, summary)
	r.writeFooter(&b)

	return b.String()
}

// -----------------------------------------------------------------------------

// RenderStartup is the one-time banner printed before the live loop begins.
func (r *Renderer) RenderStartup(summary *models.MMarketSummary, simulated bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", r.paint(ansiBold+ansiGreen,
		fmt.Sprintf("Starting %s Market Watch...", summary.Country)))

	if summary.Fallback {
		fmt.Fprintf(&b, "%s\n", r.paint(ansiYellow,
			fmt.Sprintf("Local market data not yet available for %s, showing global markets", summary.Country)))
	} else {
		fmt.Fprintf(&b, "%s\n", r.paint(ansiDim,
			fmt.Sprintf("Market: %s (%s)", summary.Country, summary.Currency)))
	}

	fmt.Fprintf(&b, "%s\n", r.paint(ansiDim,
		fmt.Sprintf("Tracking %d top stocks", len(summary.Stocks))))
	if simulated {
		fmt.Fprintf(&b, "%s\n", r.paint(ansiDim, "Using simulated market data"))
	}
	return b.String()
}

// -----------------------------------------------------------------------------

func (r *Renderer) writeHeader(b *strings.Builder, summary *models.MMarketSummary) {
	clock := time.Now().Format("15:04:05")

	status := ""
	if r.Calendar != nil {
		if r.Calendar.IsOpenAt(time.Now()) {
			status = " " + r.paint(ansiGreen, "[OPEN]")
		} else {
			status = " " + r.paint(ansiRed, "[CLOSED]")
		}
	}

	title := fmt.Sprintf("%s MARKET WATCH", strings.ToUpper(summary.Country))
	fmt.Fprintf(b, "%s%s  %s\n",
		r.paint(ansiBold+ansiMagenta, title), status, r.paint(ansiDim, clock))
	fmt.Fprintf(b, "%s\n", r.paint(ansiDim,
		"Indexes: "+strings.Join(summary.Indexes, ", ")))

	if summary.Fallback {
		fmt.Fprintf(b, "%s\n", r.paint(ansiYellow,
			"Showing global market data (no local coverage)"))
	}
	b.WriteString("\n")
}

// -----------------------------------------------------------------------------

func (r *Renderer) writeStocks(b *strings.Builder, summary *models.MMarketSummary) {
	fmt.Fprintf(b, "%s\n", r.paint(ansiBold+ansiBlue,
		fmt.Sprintf("%s Top Stocks (%s)", summary.Country, summary.Currency)))

	fmt.Fprintf(b, "%s\n", r.paint(ansiBold,
		fmt.Sprintf("%-12s %12s %16s %8s  %-*s",
			"Stock", "Price", "Change", "Action", explanationWidth, "Why?")))

	for _, stock := range summary.Stocks {
		s := stock.Snapshot
		rec := stock.Recommendation

		changeStr := fmt.Sprintf("%+.2f (%+.1f%%)", s.Change, s.ChangePercent)
		changeColor := ""
		switch {
		case s.Change > 0:
			changeColor = ansiGreen
		case s.Change < 0:
			changeColor = ansiRed
		}

		verdictColor := ansiYellow
		switch rec.Verdict {
		case models.VerdictBuy:
			verdictColor = ansiGreen
		case models.VerdictSell:
			verdictColor = ansiRed
		}

		why := s.Note
		if rec.Reason != "" {
			why = rec.Reason
		}
		if len(why) > explanationWidth {
			why = why[:explanationWidth-3] + "..."
		}

		fmt.Fprintf(b, "%-12s %12s %s %s  %s\n",
			r.paint(ansiCyan, fmt.Sprintf("$%s", s.Symbol)),
			fmt.Sprintf("%.2f %s", s.Price, summary.Currency),
			r.paint(changeColor, fmt.Sprintf("%16s", changeStr)),
			r.paint(verdictColor, fmt.Sprintf("%-8s", rec.Verdict.String())),
			r.paint(ansiDim, why))
	}
	b.WriteString("\n")
}

// -----------------------------------------------------------------------------

func (r *Renderer) writeNews(b *strings.Builder, summary *models.MMarketSummary) {
	fmt.Fprintf(b, "%s\n", r.paint(ansiBold+ansiYellow,
		fmt.Sprintf("%s Market News", summary.Country)))

	if len(summary.News) == 0 {
		fmt.Fprintf(b, "%s\n", r.paint(ansiDim, "Loading news..."))
		return
	}

	for _, item := range summary.News {
		fmt.Fprintf(b, "- %s\n", item.Headline)
		fmt.Fprintf(b, "  %s\n", r.paint(ansiDim, item.Explanation))

		if len(item.Impact) > 0 {
			var affected []string
			for sym, direction := range item.Impact {
				arrow := "v"
				color := ansiRed
				if direction == models.ImpactUp {
					arrow = "^"
					color = ansiGreen
				}
				affected = append(affected, r.paint(color, "$"+sym+arrow))
			}
			fmt.Fprintf(b, "  Affects: %s\n", strings.Join(affected, ", "))
		}
	}
	b.WriteString("\n")
}

// -----------------------------------------------------------------------------

func (r *Renderer) writeFooter(b *strings.Builder) {
	fmt.Fprintf(b, "%s\n", r.paint(ansiDim,
		"Press Ctrl+C to quit"))
}

// -----------------------------------------------------------------------------

func (r *Renderer) paint(code, text string) string {
	if !r.Color || code == "" {
		return text
	}
	return code + text + ansiReset
}
