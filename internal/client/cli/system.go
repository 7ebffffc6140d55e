package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/globalstreet/postrack/internal/models"
)

// runSystem handles the admin-only system status controls: pausing
// reconciliation, forcing the submission date, broadcasting a message and
// requesting spot checks.
func (c *Cli) runSystem(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: postrack system <show|enable|disable|force-date|message|clear|spotcheck>")
	}

	sess, err := c.session(ctx)
	if err != nil {
		return err
	}
	st, _ := c.fetchState(ctx, sess.AccessToken)

	if args[0] == "show" {
		return c.showSystemStatus(st)
	}

	if sess.Role != string(models.RoleAdmin) {
		return fmt.Errorf("only admins can change the system status")
	}

	status := st.SystemStatus
	switch args[0] {
	case "enable":
		status.ReconciliationEnabled = true
	case "disable":
		status.ReconciliationEnabled = false
	case "force-date":
		if len(args) < 2 {
			return fmt.Errorf("usage: postrack system force-date <YYYY-MM-DD>")
		}
		date, dateErr := parseDate(args[1])
		if dateErr != nil {
			return dateErr
		}
		status.ForcedDate = date
	case "message":
		if len(args) < 2 {
			return fmt.Errorf("usage: postrack system message <text>")
		}
		status.GlobalMessage = strings.Join(args[1:], " ")
	case "clear":
		status.ForcedDate = ""
		status.GlobalMessage = ""
	case "spotcheck":
		return c.runSpotCheck(ctx, sess.AccessToken, st, args[1:])
	default:
		return fmt.Errorf("unknown system subcommand: %s", args[0])
	}

	sent := c.opsService.SetSystemStatus(ctx, sess.AccessToken, status)
	c.io.Println()
	c.io.Println("System status updated.")
	if !sent {
		c.io.Println("The change is queued and will sync when the server is reachable.")
	}
	return nil
}

func (c *Cli) showSystemStatus(st *models.AppState) error {
	s := st.SystemStatus
	c.io.Println("=== System Status ===")
	c.io.Println()
	if s.ReconciliationEnabled {
		c.io.Println("Reconciliation: enabled")
	} else {
		c.io.Println("Reconciliation: disabled")
	}
	if s.ForcedDate != "" {
		c.io.Printf("Forced date:    %s\n", s.ForcedDate)
	}
	if s.GlobalMessage != "" {
		c.io.Printf("Message:        %s\n", s.GlobalMessage)
	}
	if len(s.ActiveSpotRequests) > 0 {
		c.io.Printf("Spot checks:    %d shop(s) requested\n", len(s.ActiveSpotRequests))
		for _, id := range s.ActiveSpotRequests {
			name := id
			if shop := st.ShopByID(id); shop != nil {
				name = shop.Name
			}
			c.io.Printf("  - %s\n", name)
		}
	}
	return nil
}

func (c *Cli) runSpotCheck(ctx context.Context, accessToken string, st *models.AppState, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: postrack system spotcheck <shop-id> [shop-id...]")
	}
	for _, id := range args {
		if st.ShopByID(id) == nil {
			return fmt.Errorf("unknown shop: %s", id)
		}
	}

	sent := c.opsService.RequestSpotChecks(ctx, accessToken, st, args)
	c.io.Println()
	c.io.Printf("Spot checks requested for %d shop(s).\n", len(args))
	if !sent {
		c.io.Println("The request is queued and will sync when the server is reachable.")
	}
	return nil
}
