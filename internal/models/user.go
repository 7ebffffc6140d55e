package models

import "time"

// UserRole enumerates the application roles. Role drives consolidation:
// reports authored by shop_user or partner accounts lose to collector
// reports for the same shop and date.
type UserRole string

const (
	RoleAdmin              UserRole = "admin"
	RoleCollector          UserRole = "user" // field collector
	RolePartner            UserRole = "partner"
	RoleReviewer           UserRole = "reviewer"
	RoleShopUser           UserRole = "shop_user"
	RolePartnershipManager UserRole = "partnership_manager"
)

// User is one entry of the replicated users collection.
type User struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	Role        UserRole `json:"role"`
	PartnerName string   `json:"partnerName,omitempty"` // partner accounts only
	ShopID      string   `json:"shopId,omitempty"`      // shop accounts are bound to one shop
	Phone       string   `json:"phone,omitempty"`
}

// Account is a server-side login identity for the row store API.
type Account struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"` // bcrypt, never serialized
	Role         UserRole   `json:"role"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// RefreshToken is a long-lived opaque token exchanged for new access tokens.
type RefreshToken struct {
	Token     string    `json:"token"`
	AccountID string    `json:"account_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
