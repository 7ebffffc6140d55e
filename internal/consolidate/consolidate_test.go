package consolidate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globalstreet/postrack/internal/models"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func report(id, username, date, shopID string, ts int64) models.DailyReport {
	return models.DailyReport{
		ID:         id,
		Username:   username,
		Date:       date,
		ShopID:     shopID,
		Timestamp:  ts,
		ReportType: models.ReportReconciliation,
	}
}

func TestNonCollectorSet(t *testing.T) {
	users := []models.User{
		{Username: "3", Role: models.RoleCollector},
		{Username: "shopA", Role: models.RoleShopUser},
		{Username: "partnerB", Role: models.RolePartner},
		{Username: "admin", Role: models.RoleAdmin},
		{Username: "007", Role: models.RolePartner}, // numeric name, still a partner
	}

	set := NonCollectorSet(users)

	assert.True(t, set.Contains("shopA"))
	assert.True(t, set.Contains("partnerB"))
	assert.True(t, set.Contains("007"), "role decides, not username shape")
	assert.False(t, set.Contains("3"))
	assert.False(t, set.Contains("admin"))
}

func TestConsolidate_CollectorBeatsPartnerRegardlessOfTimestamp(t *testing.T) {
	set := UsernameSet{"shopA": {}}

	collector := report("C", "5", "2024-01-01", "s1", 100)
	partner := report("P", "shopA", "2024-01-01", "s1", 200)

	for name, input := range map[string][]models.DailyReport{
		"collector first": {collector, partner},
		"partner first":   {partner, collector},
	} {
		t.Run(name, func(t *testing.T) {
			winners := Consolidate(input, set)
			require.Len(t, winners, 1)
			assert.Equal(t, "C", winners[0].ID)
		})
	}
}

func TestConsolidate_SameClassLaterTimestampWins(t *testing.T) {
	set := UsernameSet{}

	c1 := report("C1", "5", "2024-01-01", "s1", 100)
	c2 := report("C2", "5", "2024-01-01", "s1", 200)

	winners := Consolidate([]models.DailyReport{c1, c2}, set)
	require.Len(t, winners, 1)
	assert.Equal(t, "C2", winners[0].ID)

	// Order-independent
	winners = Consolidate([]models.DailyReport{c2, c1}, set)
	require.Len(t, winners, 1)
	assert.Equal(t, "C2", winners[0].ID)
}

func TestConsolidate_SameClassTimestampTieIsOrderIndependent(t *testing.T) {
	set := UsernameSet{}

	c1 := report("C1", "5", "2024-01-01", "s1", 1000)
	c2 := report("C2", "6", "2024-01-01", "s1", 1000)

	winners := Consolidate([]models.DailyReport{c1, c2}, set)
	require.Len(t, winners, 1)
	assert.Equal(t, "C2", winners[0].ID, "higher id wins an exact tie")

	winners = Consolidate([]models.DailyReport{c2, c1}, set)
	require.Len(t, winners, 1)
	assert.Equal(t, "C2", winners[0].ID, "winner must not depend on input order")
}

func TestConsolidate_PartnerSurvivesWithoutCollector(t *testing.T) {
	set := UsernameSet{"shopA": {}}

	p := report("P", "shopA", "2024-01-01", "s1", 100)
	winners := Consolidate([]models.DailyReport{p}, set)

	require.Len(t, winners, 1)
	assert.Equal(t, "P", winners[0].ID)
}

func TestConsolidate_ExclusionFilters(t *testing.T) {
	set := UsernameSet{}

	deleted := report("D", "5", "2024-01-01", "s1", 900)
	deleted.IsDeleted = true

	spot := report("S", "5", "2024-01-01", "s2", 900)
	spot.ReportType = models.ReportSpotCheck

	review := report("R", "5", "2024-01-01", "s3", 900)
	review.IsReview = true

	kept := report("K", "5", "2024-01-01", "s1", 100)

	winners := Consolidate([]models.DailyReport{deleted, spot, review, kept}, set)

	require.Len(t, winners, 1)
	assert.Equal(t, "K", winners[0].ID, "deleted, spot-check and review reports never win")
}

func TestConsolidate_OnePerDateShopPair(t *testing.T) {
	set := UsernameSet{}

	reports := []models.DailyReport{
		report("A", "5", "2024-01-01", "s1", 100),
		report("B", "5", "2024-01-01", "s2", 100),
		report("C", "5", "2024-01-02", "s1", 100),
		report("D", "5", "2024-01-02", "s1", 200), // supersedes C
	}

	winners := Consolidate(reports, set)
	require.Len(t, winners, 3)

	// Sorted by date then shop id
	assert.Equal(t, "A", winners[0].ID)
	assert.Equal(t, "B", winners[1].ID)
	assert.Equal(t, "D", winners[2].ID)
}

func TestFilterPeriod(t *testing.T) {
	reports := []models.DailyReport{
		report("A", "5", "2024-01-01", "s1", 1),
		report("B", "5", "2024-01-15", "s1", 1),
		report("C", "5", "2024-02-01", "s1", 1),
	}

	got := FilterPeriod(reports, "2024-01-01", "2024-01-31", false)
	require.Len(t, got, 2)

	got = FilterPeriod(reports, "2024-01-01", "2024-01-31", true)
	assert.Len(t, got, 3, "ignoreDates passes everything through")
}

// End-to-end scenario: collector submits a morning count, the shop account
// self-reports later the same day. The collector wins and the totals follow
// the winning report only.
func TestConsolidate_EndToEnd(t *testing.T) {
	users := []models.User{
		{Username: "shopuser1", Role: models.RoleShopUser},
	}
	set := NonCollectorSet(users)

	a := report("A", "3", "2024-01-01", "s1", 1000)
	a.CashReceived = dec(500)
	a.CashRemaining = dec(0)
	a.Commission = dec(50)
	a.POSMachines = []models.POSMachine{{ID: "m1", Amount: dec(200)}}

	b := report("B", "shopuser1", "2024-01-01", "s1", 2000)
	b.CashReceived = dec(0)
	b.CashRemaining = dec(480)
	b.Commission = dec(0)
	b.POSMachines = []models.POSMachine{{ID: "m1", Amount: dec(200)}}

	winners := Consolidate([]models.DailyReport{a, b}, set)
	require.Len(t, winners, 1)
	assert.Equal(t, "A", winners[0].ID)

	// grandTotal = 200 + 500 + 0 - 50 = 650
	assert.True(t, winners[0].GrandTotal().Equal(dec(650)),
		"got %s", winners[0].GrandTotal())

	totals := Global(winners)
	assert.True(t, totals.Grand.Equal(dec(650)))
	assert.True(t, totals.Machines.Equal(dec(200)))
}
