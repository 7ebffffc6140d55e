package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	username, err := c.readRequired("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	sess, err := c.authService.Login(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Login successful!")
	c.io.Printf("Username: %s\n", sess.Username)
	c.io.Printf("Role:     %s\n", sess.Role)
	c.io.Println()

	// Warm the local cache so the first read command works offline too.
	st, online := c.syncService.Fetch(ctx, sess.AccessToken, true)
	if online {
		c.io.Printf("Synced %d row(s) from the server.\n", st.RowCount)
	} else {
		c.io.Println("Server unreachable, working from the local cache.")
	}

	return nil
}
