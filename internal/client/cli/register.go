package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	username, err := c.readRequired("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	role, err := c.io.ReadInput("Role (admin, user, partner, reviewer, shop_user, partnership_manager) [user]: ")
	if err != nil {
		return fmt.Errorf("failed to read role: %w", err)
	}
	if role == "" {
		role = "user"
	}
	role = strings.ToLower(role)

	password, err := c.io.ReadPassword("Password (min 8 chars): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	confirmPassword, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if password != confirmPassword {
		return fmt.Errorf("passwords do not match")
	}

	c.io.Println()
	c.io.Println("Registering account...")

	resp, err := c.authService.Register(ctx, username, password, role)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Registration successful!")
	c.io.Printf("User ID:  %s\n", resp.UserID)
	c.io.Printf("Username: %s\n", username)
	c.io.Println()
	c.io.Println("Run 'postrack login' to start working.")

	return nil
}
