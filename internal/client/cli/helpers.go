package cli

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// parseDate validates a calendar day in the YYYY-MM-DD form the row store
// uses everywhere.
func parseDate(s string) (string, error) {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return s, nil
}

// parseAmount parses a money amount. Empty input means zero, which keeps
// the interactive prompts quick for fields that rarely apply.
func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount %q must not be negative", s)
	}
	return d, nil
}

// readAmount prompts until it gets a valid amount or an input error.
func (c *Cli) readAmount(prompt string) (decimal.Decimal, error) {
	input, err := c.io.ReadInput(prompt)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to read input: %w", err)
	}
	return parseAmount(input)
}

// readRequired prompts for a value that must not be empty.
func (c *Cli) readRequired(prompt string) (string, error) {
	input, err := c.io.ReadInput(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	if input == "" {
		return "", fmt.Errorf("value is required")
	}
	return input, nil
}

// confirm asks a yes/no question; only "yes" and "y" count as yes.
func (c *Cli) confirm(prompt string) (bool, error) {
	input, err := c.io.ReadInput(prompt)
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	return input == "yes" || input == "y", nil
}

// today is the submitter's local calendar day.
func today() string {
	return time.Now().Format("2006-01-02")
}
