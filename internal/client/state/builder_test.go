package state

import (
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globalstreet/postrack/internal/models"
)

func testBuilder() *Builder {
	return NewBuilder(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

func row(key, payload string) models.Row {
	return models.Row{Key: key, Data: json.RawMessage(payload), UpdatedAt: time.Now()}
}

func TestBuild_EmptyCache(t *testing.T) {
	st := testBuilder().Build(nil)

	require.NotNil(t, st)
	assert.NotNil(t, st.Reports)
	assert.NotNil(t, st.Shops)
	assert.NotNil(t, st.Users)
	assert.Empty(t, st.Reports)
	assert.Equal(t, 0, st.RowCount)
	assert.True(t, st.SystemStatus.ReconciliationEnabled, "reconciliation defaults to enabled")
}

func TestBuild_RoutesByPrefix(t *testing.T) {
	rows := []models.Row{
		row("rep_1", `{"id":"1","shopId":"s1","timestamp":100}`),
		row("mreq_1", `{"id":"m1","shopId":"s1","status":"pending"}`),
		row("sreq_1", `{"id":"q1","requestedName":"New Kiosk","status":"pending"}`),
		row("rnreq_1", `{"id":"rn1","shopId":"s1","newName":"Renamed","status":"pending"}`),
		row("accreg_1", `{"id":"a1","username":"shop9","status":"pending"}`),
		row("cashrep_1", `{"id":"c1","timestamp":50}`),
		row("shops", `[{"id":"s1","name":"Kiosk 1"}]`),
		row("users", `[{"id":"u1","username":"3","role":"user"}]`),
		row("partners", `["Partner A"]`),
		row("categories", `["restaurants"]`),
		row("locations", `["gate"]`),
		row("assignments", `[{"username":"3","shopIds":["s1"]}]`),
		row("system_status", `{"reconciliationEnabled":false,"forcedDate":"2024-01-01"}`),
	}

	st := testBuilder().Build(rows)

	assert.Len(t, st.Reports, 1)
	assert.Len(t, st.MachineRequests, 1)
	assert.Len(t, st.ShopRequests, 1)
	assert.Len(t, st.RenameRequests, 1)
	assert.Len(t, st.AccountRegistrations, 1)
	assert.Len(t, st.CashReports, 1)
	assert.Len(t, st.Shops, 1)
	assert.Len(t, st.Users, 1)
	assert.Equal(t, []string{"Partner A"}, st.Partners)
	assert.Equal(t, []string{"restaurants"}, st.Categories)
	assert.Equal(t, []string{"gate"}, st.Locations)
	assert.Len(t, st.Assignments, 1)
	assert.False(t, st.SystemStatus.ReconciliationEnabled)
	assert.Equal(t, "2024-01-01", st.SystemStatus.ForcedDate)
	assert.Equal(t, len(rows), st.RowCount)
	assert.Equal(t, 0, st.Quarantined)
}

func TestBuild_ReportsSortedNewestFirst(t *testing.T) {
	rows := []models.Row{
		row("rep_old", `{"id":"old","timestamp":100}`),
		row("rep_new", `{"id":"new","timestamp":300}`),
		row("rep_mid", `{"id":"mid","timestamp":200}`),
	}

	st := testBuilder().Build(rows)

	require.Len(t, st.Reports, 3)
	assert.Equal(t, "new", st.Reports[0].ID)
	assert.Equal(t, "mid", st.Reports[1].ID)
	assert.Equal(t, "old", st.Reports[2].ID)
}

func TestBuild_QuarantinesUndecodableRows(t *testing.T) {
	rows := []models.Row{
		row("rep_bad", `{"id":`),               // truncated JSON
		row("rep_noid", `{"timestamp":1}`),     // decodes but has no id
		row("shops", `{"not":"an array"}`),     // wrong shape
		row("rep_ok", `{"id":"ok","timestamp":1}`),
	}

	st := testBuilder().Build(rows)

	require.Len(t, st.Reports, 1)
	assert.Equal(t, "ok", st.Reports[0].ID)
	assert.Empty(t, st.Shops)
	assert.Equal(t, 3, st.Quarantined)
}

func TestBuild_UnknownKeyIgnored(t *testing.T) {
	st := testBuilder().Build([]models.Row{row("mystery_key", `{"x":1}`)})

	assert.Equal(t, 1, st.RowCount)
	assert.Equal(t, 0, st.Quarantined, "unknown keys are not decode failures")
	assert.Empty(t, st.Reports)
}

func TestBuild_FiltersEntriesMissingIdentity(t *testing.T) {
	rows := []models.Row{
		row("shops", `[{"id":"s1","name":"A"},{"name":"no id"}]`),
		row("users", `[{"id":"u1","username":"3","role":"user"},{"id":"u2"}]`),
		row("partners", `["Partner A",""]`),
	}

	st := testBuilder().Build(rows)

	assert.Len(t, st.Shops, 1)
	assert.Len(t, st.Users, 1)
	assert.Equal(t, []string{"Partner A"}, st.Partners)
}
