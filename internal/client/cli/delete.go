package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/globalstreet/postrack/internal/client/ops"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing report ID. Usage: postrack delete <report-id>")
	}
	reportID := args[0]

	sess, err := c.session(ctx)
	if err != nil {
		return err
	}
	st, _ := c.fetchState(ctx, sess.AccessToken)

	c.io.Println("=== Delete Report ===")
	c.io.Println()

	var found bool
	for _, r := range st.Reports {
		if r.ID == reportID {
			c.io.Println("About to delete:")
			c.io.Printf("  Date:      %s\n", r.Date)
			c.io.Printf("  Shop:      %s\n", r.ShopName)
			c.io.Printf("  Submitter: %s\n", r.Username)
			c.io.Printf("  Total:     %s\n", r.GrandTotal())
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("report not found with ID: %s", reportID)
	}

	c.io.Println()
	ok, err := c.confirm("Are you sure you want to delete this report? (yes/no): ")
	if err != nil {
		return err
	}
	if !ok {
		c.io.Println("Deletion cancelled.")
		return nil
	}

	sent, err := c.opsService.DeleteReport(ctx, sess.AccessToken, st, reportID)
	if err != nil {
		if errors.Is(err, ops.ErrNotFound) {
			return fmt.Errorf("report not found with ID: %s", reportID)
		}
		return err
	}

	c.io.Println()
	c.io.Println("Report deleted.")
	if !sent {
		c.io.Println("The deletion is queued and will sync when the server is reachable.")
	}
	c.io.Println("Note: deletion is a tombstone; the row stays in the store marked deleted.")

	return nil
}
