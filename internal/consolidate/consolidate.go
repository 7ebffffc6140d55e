// Package consolidate resolves one authoritative daily report per shop and
// date out of potentially duplicate, multi-author submissions, and derives
// the aggregate totals every summary view shares.
package consolidate

import (
	"sort"

	"github.com/globalstreet/postrack/internal/models"
)

// UsernameSet is a membership set of usernames.
type UsernameSet map[string]struct{}

// Contains reports whether username is in the set.
func (s UsernameSet) Contains(username string) bool {
	_, ok := s[username]
	return ok
}

// NonCollectorSet builds the set of usernames whose submissions rank below a
// field collector's: accounts with role shop_user or partner. This role-based
// set is the canonical collector classification; it must be supplied to
// Consolidate rather than recomputed from username shape.
func NonCollectorSet(users []models.User) UsernameSet {
	set := make(UsernameSet)
	for _, u := range users {
		if u.Role == models.RoleShopUser || u.Role == models.RolePartner {
			set[u.Username] = struct{}{}
		}
	}
	return set
}

// Consolidate selects exactly one report per (date, shopId) pair among all
// non-deleted, non-review reconciliation reports. Precedence within a pair:
// a collector-authored report beats a shop/partner-authored one regardless of
// timestamp; between reports of the same authorship class the later timestamp
// wins, with exact ties resolved by the greater report id. Pure function,
// deterministic and order-independent over its input;
// the result is sorted by date then shop id.
func Consolidate(reports []models.DailyReport, nonCollectors UsernameSet) []models.DailyReport {
	winners := make(map[string]models.DailyReport)

	for _, r := range reports {
		if r.IsDeleted || r.ReportType != models.ReportReconciliation || r.IsReview {
			continue
		}

		key := r.Date + "_" + r.ShopID
		existing, ok := winners[key]
		if !ok {
			winners[key] = r
			continue
		}

		if beats(r, existing, nonCollectors) {
			winners[key] = r
		}
	}

	out := make([]models.DailyReport, 0, len(winners))
	for _, r := range winners {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].ShopID < out[j].ShopID
	})
	return out
}

// beats reports whether candidate displaces incumbent for the same date+shop.
// Exact timestamp ties within the same authorship class fall through to a
// report-id comparison so the winner never depends on input order.
func beats(candidate, incumbent models.DailyReport, nonCollectors UsernameSet) bool {
	candCollector := !nonCollectors.Contains(candidate.Username)
	incCollector := !nonCollectors.Contains(incumbent.Username)

	if candCollector != incCollector {
		return candCollector
	}
	if candidate.Timestamp != incumbent.Timestamp {
		return candidate.Timestamp > incumbent.Timestamp
	}
	return candidate.ID > incumbent.ID
}

// FilterPeriod keeps reports whose date falls in [start, end]. Dates are
// YYYY-MM-DD strings, so lexicographic comparison is chronological. When
// ignoreDates is true the input passes through unchanged.
func FilterPeriod(reports []models.DailyReport, start, end string, ignoreDates bool) []models.DailyReport {
	if ignoreDates {
		return reports
	}
	out := make([]models.DailyReport, 0, len(reports))
	for _, r := range reports {
		if r.Date >= start && r.Date <= end {
			out = append(out, r)
		}
	}
	return out
}
