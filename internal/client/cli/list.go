package cli

import (
	"context"
	"flag"
	"fmt"
	"text/template"

	"github.com/globalstreet/postrack/internal/consolidate"
	"github.com/globalstreet/postrack/internal/models"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing data type. Usage: postrack list <reports|shops|requests|cash>")
	}

	sess, err := c.session(ctx)
	if err != nil {
		return err
	}
	st, online := c.fetchState(ctx, sess.AccessToken)
	if !online {
		c.io.Println("Server unreachable, listing from the local cache.")
	}

	switch args[0] {
	case "reports", "report":
		return c.listReports(st, args[1:])
	case "shops", "shop":
		return c.render(shopsListTemplate, st.ShopsFor(sess.Username, models.UserRole(sess.Role)))
	case "requests", "request":
		return c.listRequests(st)
	case "cash":
		return c.render(cashListTemplate, st.CashReports)
	default:
		return fmt.Errorf("unknown data type: %s. Use: reports, shops, requests or cash", args[0])
	}
}

func (c *Cli) listReports(st *models.AppState, args []string) error {
	fs := flag.NewFlagSet("list reports", flag.ContinueOnError)
	fs.SetOutput(c.io)
	from := fs.String("from", "", "period start (YYYY-MM-DD)")
	to := fs.String("to", "", "period end (YYYY-MM-DD)")
	all := fs.Bool("all", false, "include deleted reports")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *from != "" {
		if _, err := parseDate(*from); err != nil {
			return err
		}
	}
	if *to != "" {
		if _, err := parseDate(*to); err != nil {
			return err
		}
	}

	reports := make([]models.DailyReport, 0, len(st.Reports))
	for _, r := range st.Reports {
		if r.IsDeleted && !*all {
			continue
		}
		reports = append(reports, r)
	}
	if *from != "" || *to != "" {
		end := *to
		if end == "" {
			end = "9999-12-31" // open-ended period
		}
		reports = consolidate.FilterPeriod(reports, *from, end, false)
	}
	return c.render(reportsListTemplate, reports)
}

func (c *Cli) listRequests(st *models.AppState) error {
	c.io.Println("=== Pending Requests ===")
	c.io.Println()

	count := 0
	for _, r := range st.MachineRequests {
		if r.Status != models.StatusPending {
			continue
		}
		count++
		c.io.Printf("- machine %s: TID %s (%s) on %s, by %s\n", r.ID, r.TID, r.Type, r.ShopName, r.Username)
	}
	for _, r := range st.ShopRequests {
		if r.Status != models.StatusPending {
			continue
		}
		count++
		c.io.Printf("- shop %s: %q in %s, by %s\n", r.ID, r.RequestedName, r.RequestedLocation, r.Username)
	}
	for _, r := range st.RenameRequests {
		if r.Status != models.StatusPending {
			continue
		}
		count++
		c.io.Printf("- rename %s: %q -> %q, by %s\n", r.ID, r.OldName, r.NewName, r.Username)
	}
	for _, r := range st.AccountRegistrations {
		if r.Status != models.StatusPending {
			continue
		}
		count++
		c.io.Printf("- registration %s: %s for shop %q\n", r.ID, r.Username, r.ShopName)
	}

	if count == 0 {
		c.io.Println("No pending requests.")
	} else {
		c.io.Println()
		c.io.Printf("%d pending request(s). Use 'postrack approve <kind> <id>' or 'postrack reject <kind> <id>'.\n", count)
	}
	return nil
}

// render executes one of the list templates straight into the terminal.
func (c *Cli) render(tmpl string, data any) error {
	t, err := template.New("list").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	if err := t.Execute(c.io, data); err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}
	return nil
}
