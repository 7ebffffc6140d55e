package validation

import (
	"fmt"
	"regexp"

	"github.com/globalstreet/postrack/internal/models"
)

// UsernamePattern defines the accepted username format.
// Latin letters, digits and underscore; shop accounts commonly register
// with a plain phone number, which this pattern covers.
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)

const (
	// MinUsernameLen is the minimum username length
	MinUsernameLen = 3
	// MaxUsernameLen is the maximum username length
	MaxUsernameLen = 32
)

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// ValidateUsername checks that the username matches the accepted format:
// letters (a-z, A-Z), digits (0-9) and underscores, 3-32 characters.
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if len(username) < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}

	if !UsernamePattern.MatchString(username) {
		return fmt.Errorf("username can only contain letters (a-z, A-Z), numbers (0-9), and underscores (_)")
	}

	return nil
}

// IsPhoneUsername reports whether the username is an all-digit phone number.
// Shop registration requests use the shop's WhatsApp number as username.
func IsPhoneUsername(username string) bool {
	return digitsOnly.MatchString(username)
}

// ValidatePassword checks the minimum password requirements
func ValidatePassword(password string) error {
	const minPasswordLen = 8

	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLen)
	}

	return nil
}

// ValidateRole checks that the role is one of the known application roles.
func ValidateRole(role string) error {
	switch models.UserRole(role) {
	case models.RoleAdmin, models.RoleCollector, models.RolePartner,
		models.RoleReviewer, models.RoleShopUser, models.RolePartnershipManager:
		return nil
	case "":
		return fmt.Errorf("role cannot be empty")
	default:
		return fmt.Errorf("unknown role %q", role)
	}
}
