package consolidate

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/globalstreet/postrack/internal/models"
)

// GroupTotal is one named bucket of a grouped summary.
type GroupTotal struct {
	Name  string
	Total decimal.Decimal
}

// GlobalTotals are the headline numbers over a consolidated report set.
type GlobalTotals struct {
	Machines       decimal.Decimal // machine total across everyone
	DirectMachines decimal.Decimal // machine total of directly operated shops
	DirectCash     decimal.Decimal // cash received minus commission, direct shops
	PartnersTotal  decimal.Decimal // machines + net cash of partner shops
	Grand          decimal.Decimal // machines + net cash for everyone
}

// Summary is the grouped breakdown used by the analytics views.
type Summary struct {
	DirectSales  decimal.Decimal // grand total of directly operated shops
	PartnerSales decimal.Decimal // grand total of partner shops
	ByCategory   []GroupTotal
	ByLocation   []GroupTotal
	ByPartner    []GroupTotal
}

// Global computes the headline totals. Every quantity derives from the same
// per-report formulas (MachineTotal, NetCash, GrandTotal) the grouped views
// use, so the numbers always reconcile.
func Global(reports []models.DailyReport) GlobalTotals {
	var t GlobalTotals
	t.Machines = decimal.Zero
	t.DirectMachines = decimal.Zero
	t.DirectCash = decimal.Zero
	t.PartnersTotal = decimal.Zero

	cash := decimal.Zero
	for _, r := range reports {
		m := r.MachineTotal()
		t.Machines = t.Machines.Add(m)
		cash = cash.Add(r.NetCash())

		if r.IsDirect {
			t.DirectMachines = t.DirectMachines.Add(m)
			t.DirectCash = t.DirectCash.Add(r.CashReceived.Sub(r.Commission))
		} else {
			t.PartnersTotal = t.PartnersTotal.Add(r.GrandTotal())
		}
	}
	t.Grand = t.Machines.Add(cash)
	return t
}

// Summarize breaks the consolidated set down by operator type, category,
// location and partner. Buckets with a zero total are dropped; the rest are
// sorted by total descending.
func Summarize(reports []models.DailyReport, categories, locations, partners []string) Summary {
	s := Summary{
		DirectSales:  decimal.Zero,
		PartnerSales: decimal.Zero,
	}

	for _, r := range reports {
		if r.IsDirect {
			s.DirectSales = s.DirectSales.Add(r.GrandTotal())
		} else {
			s.PartnerSales = s.PartnerSales.Add(r.GrandTotal())
		}
	}

	s.ByCategory = groupBy(reports, categories, func(r models.DailyReport) string { return r.Category })
	s.ByLocation = groupBy(reports, locations, func(r models.DailyReport) string { return r.Location })
	s.ByPartner = groupBy(reports, partners, func(r models.DailyReport) string { return r.PartnerName })
	return s
}

// ByShop ranks shops by consolidated grand total, highest first.
func ByShop(reports []models.DailyReport) []GroupTotal {
	totals := make(map[string]decimal.Decimal)
	names := make(map[string]string)
	for _, r := range reports {
		cur, ok := totals[r.ShopID]
		if !ok {
			cur = decimal.Zero
		}
		totals[r.ShopID] = cur.Add(r.GrandTotal())
		if r.ShopName != "" {
			names[r.ShopID] = r.ShopName
		}
	}

	out := make([]GroupTotal, 0, len(totals))
	for shopID, total := range totals {
		name := names[shopID]
		if name == "" {
			name = shopID
		}
		out = append(out, GroupTotal{Name: name, Total: total})
	}
	sortTotals(out)
	return out
}

func groupBy(reports []models.DailyReport, buckets []string, key func(models.DailyReport) string) []GroupTotal {
	out := make([]GroupTotal, 0, len(buckets))
	for _, bucket := range buckets {
		total := decimal.Zero
		for _, r := range reports {
			if key(r) == bucket {
				total = total.Add(r.GrandTotal())
			}
		}
		if !total.IsZero() {
			out = append(out, GroupTotal{Name: bucket, Total: total})
		}
	}
	sortTotals(out)
	return out
}

func sortTotals(totals []GroupTotal) {
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total.GreaterThan(totals[j].Total)
	})
}
