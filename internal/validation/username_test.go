package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{name: "lowercase", username: "collector1", wantErr: false},
		{name: "mixed case", username: "AdminUser", wantErr: false},
		{name: "with underscore", username: "shop_west", wantErr: false},
		{name: "phone number", username: "0551234567", wantErr: false},
		{name: "max length", username: "a1234567890123456789012345678901", wantErr: false},
		{name: "empty", username: "", wantErr: true},
		{name: "too short", username: "ab", wantErr: true},
		{name: "too long", username: "a12345678901234567890123456789012", wantErr: true},
		{name: "with space", username: "my shop", wantErr: true},
		{name: "with dash", username: "shop-west", wantErr: true},
		{name: "non latin", username: "متجر_الغربية", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsPhoneUsername(t *testing.T) {
	assert.True(t, IsPhoneUsername("0551234567"))
	assert.False(t, IsPhoneUsername("collector1"))
	assert.False(t, IsPhoneUsername("055123x"))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("longenough"))
}

func TestValidateRole(t *testing.T) {
	for _, role := range []string{"admin", "user", "partner", "reviewer", "shop_user", "partnership_manager"} {
		assert.NoError(t, ValidateRole(role), role)
	}
	assert.Error(t, ValidateRole(""))
	assert.Error(t, ValidateRole("superuser"))
}
