package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"text/template"

	"github.com/globalstreet/postrack/internal/consolidate"
	"github.com/globalstreet/postrack/internal/models"
)

func (c *Cli) runTotals(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("totals", flag.ContinueOnError)
	fs.SetOutput(c.io)
	from := fs.String("from", today(), "period start (YYYY-MM-DD)")
	to := fs.String("to", today(), "period end (YYYY-MM-DD)")
	allDates := fs.Bool("all-dates", false, "ignore the period and consolidate everything")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !*allDates {
		if _, err := parseDate(*from); err != nil {
			return err
		}
		if _, err := parseDate(*to); err != nil {
			return err
		}
	}

	sess, err := c.session(ctx)
	if err != nil {
		return err
	}
	st, online := c.fetchState(ctx, sess.AccessToken)
	if !online {
		c.io.Println("Server unreachable, totals computed from the local cache.")
	}

	return renderTotals(c.io, st, *from, *to, *allDates)
}

// totalsView is the template payload for the consolidated totals screen.
type totalsView struct {
	Period  string
	Count   int
	Totals  consolidate.GlobalTotals
	Summary consolidate.Summary
}

// renderTotals consolidates the visible reports over the period and writes
// the aggregate breakdown. Split out from the command for testability.
func renderTotals(w io.Writer, st *models.AppState, from, to string, allDates bool) error {
	nonCollectors := consolidate.NonCollectorSet(st.Users)
	consolidated := consolidate.Consolidate(st.Reports, nonCollectors)
	consolidated = consolidate.FilterPeriod(consolidated, from, to, allDates)

	view := totalsView{
		Period:  fmt.Sprintf("%s to %s", from, to),
		Count:   len(consolidated),
		Totals:  consolidate.Global(consolidated),
		Summary: consolidate.Summarize(consolidated, st.Categories, st.Locations, st.Partners),
	}
	if allDates {
		view.Period = "all dates"
	}

	t, err := template.New("totals").Parse(totalsTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	if err := t.Execute(w, view); err != nil {
		return fmt.Errorf("failed to render totals: %w", err)
	}
	return nil
}
