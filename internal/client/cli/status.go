package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/globalstreet/postrack/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	isAuth, err := c.authService.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}
	if !isAuth {
		c.io.Println("Session: not authenticated")
		c.io.Println()
		c.io.Println("Run 'postrack login' to authenticate.")
		return nil
	}

	sess, err := c.authService.ActiveSession(ctx)
	if err != nil {
		if errors.Is(err, auth.ErrSessionExpired) {
			c.io.Println("Session: expired")
			c.io.Println()
			c.io.Println("Run 'postrack login' again.")
			return nil
		}
		return err
	}

	expiresAt := time.Unix(sess.ExpiresAt, 0)
	c.io.Println("Session: authenticated")
	c.io.Printf("Username:      %s\n", sess.Username)
	c.io.Printf("Role:          %s\n", sess.Role)
	c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))

	st, online := c.fetchState(ctx, sess.AccessToken)
	c.io.Println()
	if online {
		c.io.Println("Server:  reachable")
	} else {
		c.io.Println("Server:  unreachable, showing cached state")
	}
	c.io.Printf("Rows cached:   %d\n", st.RowCount)
	if st.Quarantined > 0 {
		c.io.Printf("Quarantined:   %d row(s) failed to decode\n", st.Quarantined)
	}

	pending, err := c.syncService.PendingCount(ctx)
	if err != nil {
		c.io.Printf("Warning: failed to count pending writes: %v\n", err)
		return nil
	}
	if pending > 0 {
		c.io.Printf("Pending sync:  %d write(s) queued\n", pending)
		c.io.Println("Run 'postrack sync' to push them to the server.")
	} else {
		c.io.Println("All local writes are synchronized.")
	}

	if !st.SystemStatus.ReconciliationEnabled {
		c.io.Println()
		c.io.Println("Note: reconciliation submissions are currently disabled by the admin.")
	}
	if st.SystemStatus.GlobalMessage != "" {
		c.io.Println()
		c.io.Printf("Message: %s\n", st.SystemStatus.GlobalMessage)
	}

	return nil
}
