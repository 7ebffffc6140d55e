package sync

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "github.com/globalstreet/postrack/internal/client/api"
	"github.com/globalstreet/postrack/internal/client/storage"
	"github.com/globalstreet/postrack/internal/models"
	"github.com/globalstreet/postrack/pkg/api"
)

// fixture wires the sync service to map-backed mocks so tests can observe
// every cache and queue interaction.
type fixture struct {
	service *Service
	api     *httpapi.ClientAPIMock
	cache   map[string]models.Row
	pending map[string]storage.PendingWrite
}

func newFixture(t *testing.T, upsert func(ctx context.Context, accessToken string, row api.Row) error,
	query func(ctx context.Context, accessToken string, since *time.Time) ([]api.Row, error),
) *fixture {
	t.Helper()

	f := &fixture{
		cache:   make(map[string]models.Row),
		pending: make(map[string]storage.PendingWrite),
	}

	f.api = &httpapi.ClientAPIMock{
		UpsertRowFunc: upsert,
		QueryRowsFunc: query,
	}

	cacheMock := &storage.RowCacheMock{
		LoadFunc: func(ctx context.Context) error { return nil },
		GetFunc: func(ctx context.Context, key string) (models.Row, error) {
			if row, ok := f.cache[key]; ok {
				return row, nil
			}
			return models.Row{}, storage.ErrRowNotFound
		},
		PutFunc: func(ctx context.Context, row models.Row) error {
			f.cache[row.Key] = row
			return nil
		},
		MergeFunc: func(ctx context.Context, rows []models.Row) error {
			for _, row := range rows {
				f.cache[row.Key] = row
			}
			return nil
		},
		AllFunc: func(ctx context.Context) ([]models.Row, error) {
			rows := make([]models.Row, 0, len(f.cache))
			for _, row := range f.cache {
				rows = append(rows, row)
			}
			return rows, nil
		},
		LatestTimestampFunc: func(ctx context.Context) (time.Time, error) {
			var latest time.Time
			for _, row := range f.cache {
				if row.UpdatedAt.After(latest) {
					latest = row.UpdatedAt
				}
			}
			return latest, nil
		},
		CountFunc: func(ctx context.Context) (int, error) { return len(f.cache), nil },
	}

	queueMock := &storage.PendingQueueMock{
		EnqueueFunc: func(ctx context.Context, key string, data json.RawMessage) error {
			f.pending[key] = storage.PendingWrite{Key: key, Data: data, EnqueuedAt: time.Now()}
			return nil
		},
		ListFunc: func(ctx context.Context) ([]storage.PendingWrite, error) {
			entries := make([]storage.PendingWrite, 0, len(f.pending))
			for _, pw := range f.pending {
				entries = append(entries, pw)
			}
			return entries, nil
		},
		RemoveFunc: func(ctx context.Context, key string) error {
			delete(f.pending, key)
			return nil
		},
		FailFunc: func(ctx context.Context, key string, maxAttempts int) (bool, error) {
			pw, ok := f.pending[key]
			if !ok {
				return false, nil
			}
			pw.Attempts++
			if pw.Attempts >= maxAttempts {
				delete(f.pending, key)
				return true, nil
			}
			f.pending[key] = pw
			return false, nil
		},
		LenFunc: func(ctx context.Context) (int, error) { return len(f.pending), nil },
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	f.service = NewService(f.api, cacheMock, queueMock, logger)
	return f
}

func okUpsert(ctx context.Context, accessToken string, row api.Row) error { return nil }

func noRows(ctx context.Context, accessToken string, since *time.Time) ([]api.Row, error) {
	return nil, nil
}

func TestWrite_Success(t *testing.T) {
	f := newFixture(t, okUpsert, noRows)

	ok := f.service.Write(context.Background(), "token", "rep_1", map[string]any{"id": "1"})

	assert.True(t, ok)
	assert.True(t, f.service.Online())
	assert.Empty(t, f.pending)

	// Row landed in the cache with a stamped timestamp.
	row, exists := f.cache["rep_1"]
	require.True(t, exists)
	assert.False(t, row.UpdatedAt.IsZero())

	calls := f.api.UpsertRowCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "rep_1", calls[0].Row.Key)
	assert.Equal(t, "token", calls[0].AccessToken)
}

func TestWrite_RemoteFailureEnqueuesAndKeepsLocalState(t *testing.T) {
	f := newFixture(t,
		func(ctx context.Context, accessToken string, row api.Row) error {
			return errors.New("connection refused")
		},
		noRows,
	)

	ok := f.service.Write(context.Background(), "token", "rep_1", map[string]any{"id": "1"})

	assert.False(t, ok)
	assert.False(t, f.service.Online())

	// Optimistic state is not rolled back.
	_, exists := f.cache["rep_1"]
	assert.True(t, exists, "local write must survive the remote failure")

	require.Len(t, f.pending, 1)
	assert.JSONEq(t, `{"id":"1"}`, string(f.pending["rep_1"].Data))
}

// Read-your-writes: a fetch after a failed write still reflects the write.
func TestFetch_ReadYourWrites(t *testing.T) {
	f := newFixture(t,
		func(ctx context.Context, accessToken string, row api.Row) error {
			return errors.New("offline")
		},
		func(ctx context.Context, accessToken string, since *time.Time) ([]api.Row, error) {
			return nil, errors.New("offline")
		},
	)

	report := models.DailyReport{ID: "1", ShopID: "s1", Date: "2024-01-01",
		ReportType: models.ReportReconciliation, Timestamp: 100}
	f.service.Write(context.Background(), "token", models.ReportKey("1"), report)

	st, online := f.service.Fetch(context.Background(), "token", false)

	assert.False(t, online)
	require.Len(t, st.Reports, 1)
	assert.Equal(t, "1", st.Reports[0].ID)
}

func TestFetch_DeltaUsesLatestCachedTimestamp(t *testing.T) {
	latest := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)

	f := newFixture(t, okUpsert, noRows)
	f.cache["rep_1"] = models.Row{Key: "rep_1", Data: json.RawMessage(`{"id":"1"}`),
		UpdatedAt: latest.Add(-time.Hour)}
	f.cache["rep_2"] = models.Row{Key: "rep_2", Data: json.RawMessage(`{"id":"2"}`),
		UpdatedAt: latest}

	_, online := f.service.Fetch(context.Background(), "token", false)
	assert.True(t, online)

	calls := f.api.QueryRowsCalls()
	require.Len(t, calls, 1)
	require.NotNil(t, calls[0].Since, "delta fetch must pass a since filter")
	assert.True(t, calls[0].Since.Equal(latest))
}

func TestFetch_ForceFullIgnoresTimestamp(t *testing.T) {
	f := newFixture(t, okUpsert, noRows)
	f.cache["rep_1"] = models.Row{Key: "rep_1", Data: json.RawMessage(`{"id":"1"}`),
		UpdatedAt: time.Now()}

	f.service.Fetch(context.Background(), "token", true)

	calls := f.api.QueryRowsCalls()
	require.Len(t, calls, 1)
	assert.Nil(t, calls[0].Since, "forceFull must request everything")
}

func TestFetch_EmptyCacheDoesFullFetch(t *testing.T) {
	f := newFixture(t, okUpsert, noRows)

	f.service.Fetch(context.Background(), "token", false)

	calls := f.api.QueryRowsCalls()
	require.Len(t, calls, 1)
	assert.Nil(t, calls[0].Since)
}

func TestFetch_MergesRowsAndRebuildsState(t *testing.T) {
	now := time.Now().UTC()
	f := newFixture(t, okUpsert,
		func(ctx context.Context, accessToken string, since *time.Time) ([]api.Row, error) {
			return []api.Row{
				{Key: "rep_1", Data: json.RawMessage(`{"id":"1","timestamp":100}`), UpdatedAt: now},
				{Key: "shops", Data: json.RawMessage(`[{"id":"s1","name":"Kiosk"}]`), UpdatedAt: now},
			}, nil
		},
	)

	st, online := f.service.Fetch(context.Background(), "token", false)

	assert.True(t, online)
	assert.Len(t, st.Reports, 1)
	assert.Len(t, st.Shops, 1)
	assert.Equal(t, 2, st.RowCount)
}

func TestFetch_OfflineServesCachedState(t *testing.T) {
	f := newFixture(t, okUpsert,
		func(ctx context.Context, accessToken string, since *time.Time) ([]api.Row, error) {
			return nil, errors.New("no route to host")
		},
	)
	f.cache["rep_1"] = models.Row{Key: "rep_1",
		Data: json.RawMessage(`{"id":"1","timestamp":100}`), UpdatedAt: time.Now()}

	st, online := f.service.Fetch(context.Background(), "token", false)

	assert.False(t, online)
	require.Len(t, st.Reports, 1, "stale-but-available beats nothing")
}

func TestDrain_SendsAndRemoves(t *testing.T) {
	f := newFixture(t, okUpsert, noRows)
	f.pending["rep_1"] = storage.PendingWrite{Key: "rep_1",
		Data: json.RawMessage(`{"id":"1"}`), EnqueuedAt: time.Now()}
	f.pending["rep_2"] = storage.PendingWrite{Key: "rep_2",
		Data: json.RawMessage(`{"id":"2"}`), EnqueuedAt: time.Now()}

	res := f.service.Drain(context.Background(), "token")

	assert.Equal(t, 2, res.Attempted)
	assert.Equal(t, 2, res.Sent)
	assert.Equal(t, 0, res.Remaining)
	assert.Empty(t, f.pending)
}

func TestDrain_FailedEntriesStayQueued(t *testing.T) {
	f := newFixture(t,
		func(ctx context.Context, accessToken string, row api.Row) error {
			if row.Key == "rep_bad" {
				return errors.New("rejected")
			}
			return nil
		},
		noRows,
	)
	f.pending["rep_ok"] = storage.PendingWrite{Key: "rep_ok",
		Data: json.RawMessage(`{}`), EnqueuedAt: time.Now()}
	f.pending["rep_bad"] = storage.PendingWrite{Key: "rep_bad",
		Data: json.RawMessage(`{}`), EnqueuedAt: time.Now()}

	res := f.service.Drain(context.Background(), "token")

	assert.Equal(t, 1, res.Sent)
	assert.Equal(t, 1, res.Remaining)
	_, stillThere := f.pending["rep_bad"]
	assert.True(t, stillThere)
}

func TestDrain_DropsPoisonAfterMaxAttempts(t *testing.T) {
	f := newFixture(t,
		func(ctx context.Context, accessToken string, row api.Row) error {
			return errors.New("schema violation")
		},
		noRows,
	)
	f.service.maxAttempts = 2
	f.pending["rep_bad"] = storage.PendingWrite{Key: "rep_bad",
		Data: json.RawMessage(`{}`), EnqueuedAt: time.Now()}

	res := f.service.Drain(context.Background(), "token")
	assert.Equal(t, 0, res.Dropped)

	res = f.service.Drain(context.Background(), "token")
	assert.Equal(t, 1, res.Dropped)
	assert.Empty(t, f.pending, "poison entry removed after hitting the cap")
}

func TestPendingCount(t *testing.T) {
	f := newFixture(t, okUpsert, noRows)
	f.pending["rep_1"] = storage.PendingWrite{Key: "rep_1", EnqueuedAt: time.Now()}

	n, err := f.service.PendingCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
