// Package state rebuilds the typed application state from the raw row cache.
package state

import (
	"encoding/json"
	"log/slog"
	"sort"
	"strings"

	"github.com/globalstreet/postrack/internal/models"
)

// Builder classifies raw rows by key prefix into typed collections. The key
// vocabulary is closed: prefixed collections, then singletons by exact key,
// anything else is ignored. Rows whose payload fails to decode are
// quarantined (counted and logged), never propagated downstream.
type Builder struct {
	logger *slog.Logger
}

// NewBuilder creates a state builder.
func NewBuilder(logger *slog.Logger) *Builder {
	return &Builder{logger: logger}
}

// Build reconstructs the full application state from rows. Reports and cash
// reports come back sorted newest first; collections are never nil.
func (b *Builder) Build(rows []models.Row) *models.AppState {
	st := models.NewAppState()
	st.RowCount = len(rows)

	for _, row := range rows {
		if ok := b.route(st, row); !ok {
			st.Quarantined++
		}
	}

	sort.Slice(st.Reports, func(i, j int) bool {
		return st.Reports[i].Timestamp > st.Reports[j].Timestamp
	})
	sort.Slice(st.CashReports, func(i, j int) bool {
		return st.CashReports[i].Timestamp > st.CashReports[j].Timestamp
	})

	return st
}

// route decodes one row into its collection. Returns false when the payload
// does not decode into the expected shape.
func (b *Builder) route(st *models.AppState, row models.Row) bool {
	switch {
	case strings.HasPrefix(row.Key, models.PrefixReport):
		var r models.DailyReport
		if !b.decode(row, &r) || r.ID == "" {
			return false
		}
		st.Reports = append(st.Reports, r)

	case strings.HasPrefix(row.Key, models.PrefixMachineReq):
		var r models.MachineRequest
		if !b.decode(row, &r) || r.ID == "" {
			return false
		}
		st.MachineRequests = append(st.MachineRequests, r)

	case strings.HasPrefix(row.Key, models.PrefixShopReq):
		var r models.ShopRequest
		if !b.decode(row, &r) || r.ID == "" {
			return false
		}
		st.ShopRequests = append(st.ShopRequests, r)

	case strings.HasPrefix(row.Key, models.PrefixRenameReq):
		var r models.ShopRenameRequest
		if !b.decode(row, &r) || r.ID == "" {
			return false
		}
		st.RenameRequests = append(st.RenameRequests, r)

	case strings.HasPrefix(row.Key, models.PrefixRegistration):
		var r models.AccountRegistrationRequest
		if !b.decode(row, &r) || r.ID == "" {
			return false
		}
		st.AccountRegistrations = append(st.AccountRegistrations, r)

	case strings.HasPrefix(row.Key, models.PrefixCashReport):
		var r models.CashReport
		if !b.decode(row, &r) || r.ID == "" {
			return false
		}
		st.CashReports = append(st.CashReports, r)

	case row.Key == models.KeyShops:
		var shops []models.Shop
		if !b.decode(row, &shops) {
			return false
		}
		st.Shops = compactByID(shops, func(s models.Shop) string { return s.ID })

	case row.Key == models.KeyAssignments:
		var assignments []models.UserAssignment
		if !b.decode(row, &assignments) {
			return false
		}
		st.Assignments = compactByID(assignments, func(a models.UserAssignment) string { return a.Username })

	case row.Key == models.KeyUsers:
		var users []models.User
		if !b.decode(row, &users) {
			return false
		}
		st.Users = compactByID(users, func(u models.User) string { return u.Username })

	case row.Key == models.KeyPartners:
		var partners []string
		if !b.decode(row, &partners) {
			return false
		}
		st.Partners = compactStrings(partners)

	case row.Key == models.KeyCategories:
		var categories []string
		if !b.decode(row, &categories) {
			return false
		}
		st.Categories = compactStrings(categories)

	case row.Key == models.KeyLocations:
		var locations []string
		if !b.decode(row, &locations) {
			return false
		}
		st.Locations = compactStrings(locations)

	case row.Key == models.KeySystemStatus:
		var status models.SystemStatus
		if !b.decode(row, &status) {
			return false
		}
		if status.ActiveSpotRequests == nil {
			status.ActiveSpotRequests = []string{}
		}
		st.SystemStatus = status

	default:
		// Unknown key: outside the closed vocabulary, dropped silently.
		b.logger.Debug("ignoring row with unknown key", "key", row.Key)
	}

	return true
}

func (b *Builder) decode(row models.Row, v any) bool {
	if err := json.Unmarshal(row.Data, v); err != nil {
		b.logger.Warn("quarantining undecodable row", "key", row.Key, "error", err)
		return false
	}
	return true
}

// compactByID drops entries missing their identifying field.
func compactByID[T any](items []T, id func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if id(item) != "" {
			out = append(out, item)
		}
	}
	return out
}

func compactStrings(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
