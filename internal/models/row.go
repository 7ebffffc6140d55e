package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Row is the atomic unit of replication: one key, an opaque JSON payload and
// the timestamp the writer stamped at write time. The remote store holds at
// most one row per key; a write with the same key replaces the prior row.
type Row struct {
	UpdatedAt time.Time       `json:"updated_at"` // stamped by the writer, drives delta sync
	Key       string          `json:"key"`        // globally unique, prefix encodes the entity type
	Data      json.RawMessage `json:"data"`       // entity payload, decoded at the state boundary
}

// Key prefixes for entity collections. Every row whose key does not carry one
// of these prefixes is a singleton addressed by its exact key.
const (
	PrefixReport       = "rep_"
	PrefixMachineReq   = "mreq_"
	PrefixShopReq      = "sreq_"
	PrefixRenameReq    = "rnreq_"
	PrefixRegistration = "accreg_"
	PrefixCashReport   = "cashrep_"
)

// Singleton row keys. Closed vocabulary: the reconstructor routes by exact
// match and ignores anything it does not know.
const (
	KeyShops        = "shops"
	KeyAssignments  = "assignments"
	KeyUsers        = "users"
	KeyPartners     = "partners"
	KeyCategories   = "categories"
	KeyLocations    = "locations"
	KeySystemStatus = "system_status"
)

// ReportKey returns the row key for a daily report id.
func ReportKey(id string) string { return PrefixReport + id }

// MachineRequestKey returns the row key for a machine request id.
func MachineRequestKey(id string) string { return PrefixMachineReq + id }

// ShopRequestKey returns the row key for a shop request id.
func ShopRequestKey(id string) string { return PrefixShopReq + id }

// RenameRequestKey returns the row key for a shop rename request id.
func RenameRequestKey(id string) string { return PrefixRenameReq + id }

// RegistrationKey returns the row key for an account registration request id.
func RegistrationKey(id string) string { return PrefixRegistration + id }

// CashReportKey returns the row key for a cash report id.
func CashReportKey(id string) string { return PrefixCashReport + id }

// HasEntityPrefix reports whether key belongs to one of the prefixed
// collections rather than the singleton vocabulary.
func HasEntityPrefix(key string) bool {
	for _, p := range []string{
		PrefixReport, PrefixMachineReq, PrefixShopReq,
		PrefixRenameReq, PrefixRegistration, PrefixCashReport,
	} {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}
