package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "github.com/globalstreet/postrack/internal/client/api"
	"github.com/globalstreet/postrack/internal/client/auth"
	"github.com/globalstreet/postrack/internal/client/iocli"
	"github.com/globalstreet/postrack/internal/client/ops"
	"github.com/globalstreet/postrack/internal/client/storage"
	"github.com/globalstreet/postrack/internal/client/sync"
	"github.com/globalstreet/postrack/internal/models"
	pkgapi "github.com/globalstreet/postrack/pkg/api"
)

// sessionStoreMock is an in-memory SessionStore.
type sessionStoreMock struct {
	sess *storage.Session
}

func (m *sessionStoreMock) SaveSession(_ context.Context, s *storage.Session) error {
	m.sess = s
	return nil
}

func (m *sessionStoreMock) GetSession(_ context.Context) (*storage.Session, error) {
	if m.sess == nil {
		return nil, storage.ErrSessionNotFound
	}
	return m.sess, nil
}

func (m *sessionStoreMock) DeleteSession(_ context.Context) error {
	m.sess = nil
	return nil
}

// cliFixture assembles a Cli over in-memory stores, a scripted terminal and
// a mocked server API.
type cliFixture struct {
	cli      *Cli
	api      *httpapi.ClientAPIMock
	sessions *sessionStoreMock
	cache    map[string]models.Row
	output   *bytes.Buffer
	inputs   []string // consumed by ReadInput/ReadPassword in order
}

func newCliFixture(t *testing.T) *cliFixture {
	t.Helper()
	f := &cliFixture{
		sessions: &sessionStoreMock{},
		cache:    make(map[string]models.Row),
		output:   &bytes.Buffer{},
	}

	f.api = &httpapi.ClientAPIMock{
		UpsertRowFunc: func(ctx context.Context, accessToken string, row pkgapi.Row) error {
			return nil
		},
		QueryRowsFunc: func(ctx context.Context, accessToken string, since *time.Time) ([]pkgapi.Row, error) {
			return nil, nil
		},
	}

	readLine := func(prompt string) (string, error) {
		if len(f.inputs) == 0 {
			return "", fmt.Errorf("no scripted input for prompt %q", prompt)
		}
		line := f.inputs[0]
		f.inputs = f.inputs[1:]
		return line, nil
	}
	termIO := &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			fmt.Fprintln(f.output, a...)
		},
		PrintfFunc: func(format string, a ...any) {
			fmt.Fprintf(f.output, format, a...)
		},
		ReadInputFunc:    readLine,
		ReadPasswordFunc: readLine,
		WriteFunc: func(p []byte) (int, error) {
			return f.output.Write(p)
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
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
		EnqueueFunc: func(ctx context.Context, key string, data json.RawMessage) error { return nil },
		ListFunc:    func(ctx context.Context) ([]storage.PendingWrite, error) { return nil, nil },
		RemoveFunc:  func(ctx context.Context, key string) error { return nil },
		FailFunc: func(ctx context.Context, key string, maxAttempts int) (bool, error) {
			return false, nil
		},
		LenFunc: func(ctx context.Context) (int, error) { return 0, nil },
	}

	authService := auth.NewService(f.api, f.sessions, logger)
	syncService := sync.NewService(f.api, cacheMock, queueMock, logger)
	opsService := ops.NewService(syncService, f.api, logger)
	f.cli = New(termIO, authService, syncService, opsService, logger)
	return f
}

// loginAs stores a live session without going through the server.
func (f *cliFixture) loginAs(t *testing.T, username, role string) {
	t.Helper()
	f.sessions.sess = &storage.Session{
		Username:    username,
		UserID:      "uid-" + username,
		Role:        role,
		AccessToken: "access-token",
		ExpiresAt:   time.Now().Add(time.Hour).Unix(),
	}
}

// seedRow puts an entity into the local row cache.
func (f *cliFixture) seedRow(t *testing.T, key string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f.cache[key] = models.Row{Key: key, Data: data, UpdatedAt: time.Now()}
}

func mintAccessToken(t *testing.T, userID, username, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"role":     role,
		"exp":      time.Now().Add(15 * time.Minute).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestRun_UnknownCommand(t *testing.T) {
	f := newCliFixture(t)
	err := f.cli.Run(context.Background(), "frobnicate", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
	assert.Contains(t, f.output.String(), "Usage:")
}

func TestRun_Login(t *testing.T) {
	f := newCliFixture(t)
	f.api.LoginFunc = func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
		assert.Equal(t, "hassan", req.Username)
		return &pkgapi.TokenResponse{
			AccessToken:  mintAccessToken(t, "u-1", "hassan", "user"),
			RefreshToken: "refresh-1",
			ExpiresIn:    900,
		}, nil
	}
	f.inputs = []string{"hassan", "secret-pass"}

	require.NoError(t, f.cli.Run(context.Background(), "login", nil))

	require.NotNil(t, f.sessions.sess)
	assert.Equal(t, "hassan", f.sessions.sess.Username)
	assert.Contains(t, f.output.String(), "Login successful")
}

func TestRun_StatusNotAuthenticated(t *testing.T) {
	f := newCliFixture(t)

	require.NoError(t, f.cli.Run(context.Background(), "status", nil))
	assert.Contains(t, f.output.String(), "not authenticated")
}

func TestRun_StatusAuthenticated(t *testing.T) {
	f := newCliFixture(t)
	f.loginAs(t, "hassan", "user")

	require.NoError(t, f.cli.Run(context.Background(), "status", nil))

	out := f.output.String()
	assert.Contains(t, out, "authenticated")
	assert.Contains(t, out, "hassan")
	assert.Contains(t, out, "All local writes are synchronized")
}

func TestRun_SubmitRequiresLogin(t *testing.T) {
	f := newCliFixture(t)

	err := f.cli.Run(context.Background(), "submit", []string{"report"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postrack login")
}

func TestRun_SubmitReport(t *testing.T) {
	f := newCliFixture(t)
	f.loginAs(t, "hassan", "user")
	f.seedRow(t, models.KeyShops, []models.Shop{{
		ID:           "s1",
		Name:         "Corner Kiosk",
		Location:     "Deira",
		IsDirect:     true,
		StandardTIDs: []models.ShopMachine{{TID: "8001"}},
	}})

	// shop, date (default), terminal amount, cash received, remaining,
	// commission, notes, confirm
	f.inputs = []string{"s1", "", "1250.50", "300", "0", "12.25", "", "yes"}

	require.NoError(t, f.cli.Run(context.Background(), "submit", []string{"report"}))

	out := f.output.String()
	assert.Contains(t, out, "Machine total: 1250.5")
	assert.Contains(t, out, "Report submitted")

	// The report row went to the server.
	var submitted []pkgapi.Row
	for _, call := range f.api.UpsertRowCalls() {
		submitted = append(submitted, call.Row)
	}
	require.Len(t, submitted, 1)
	var rep models.DailyReport
	require.NoError(t, json.Unmarshal(submitted[0].Data, &rep))
	assert.Equal(t, "Corner Kiosk", rep.ShopName)
	assert.Equal(t, "hassan", rep.Username)
	assert.True(t, rep.MachineTotal().Equal(decimal.RequireFromString("1250.50")))
}

func TestRun_SubmitReportCancelled(t *testing.T) {
	f := newCliFixture(t)
	f.loginAs(t, "hassan", "user")
	f.seedRow(t, models.KeyShops, []models.Shop{{
		ID: "s1", Name: "Corner Kiosk", Location: "Deira", IsDirect: true,
	}})

	f.inputs = []string{"1", "", "100", "0", "0", "", "no"}

	require.NoError(t, f.cli.Run(context.Background(), "submit", []string{"report"}))
	assert.Contains(t, f.output.String(), "cancelled")
	assert.Empty(t, f.api.UpsertRowCalls())
}

func TestRun_ListReportsFiltersTombstones(t *testing.T) {
	f := newCliFixture(t)
	f.loginAs(t, "hassan", "user")
	f.seedRow(t, models.ReportKey("r1"), models.DailyReport{
		ID: "r1", Date: "2025-06-01", ShopName: "Corner Kiosk", Username: "hassan",
		ReportType: models.ReportReconciliation,
	})
	f.seedRow(t, models.ReportKey("r2"), models.DailyReport{
		ID: "r2", Date: "2025-06-02", ShopName: "Corner Kiosk", Username: "hassan",
		ReportType: models.ReportReconciliation, IsDeleted: true,
	})

	require.NoError(t, f.cli.Run(context.Background(), "list", []string{"reports"}))

	out := f.output.String()
	assert.Contains(t, out, "r1")
	assert.NotContains(t, out, "r2")
}

func TestRun_ApproveRequiresAdmin(t *testing.T) {
	f := newCliFixture(t)
	f.loginAs(t, "hassan", "user")

	err := f.cli.Run(context.Background(), "approve", []string{"machine", "m1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only admins")
}

func TestRun_ApproveMachine(t *testing.T) {
	f := newCliFixture(t)
	f.loginAs(t, "amira", "admin")
	f.seedRow(t, models.KeyShops, []models.Shop{{ID: "s1", Name: "Corner Kiosk"}})
	f.seedRow(t, models.MachineRequestKey("m1"), models.MachineRequest{
		ID: "m1", ShopID: "s1", ShopName: "Corner Kiosk", TID: "8002",
		Type: "standard", Status: models.StatusPending, Username: "hassan",
	})

	require.NoError(t, f.cli.Run(context.Background(), "approve", []string{"machine", "m1"}))
	assert.Contains(t, f.output.String(), "approved")

	// Both the shops row and the request row are re-saved.
	assert.Len(t, f.api.UpsertRowCalls(), 2)
}

func TestRun_SystemDisableRequiresAdmin(t *testing.T) {
	f := newCliFixture(t)
	f.loginAs(t, "hassan", "user")

	err := f.cli.Run(context.Background(), "system", []string{"disable"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only admins")
}

func TestRun_SystemShow(t *testing.T) {
	f := newCliFixture(t)
	f.loginAs(t, "hassan", "user")
	f.seedRow(t, models.KeySystemStatus, models.SystemStatus{
		ReconciliationEnabled: false,
		GlobalMessage:         "counting in progress",
	})

	require.NoError(t, f.cli.Run(context.Background(), "system", []string{"show"}))

	out := f.output.String()
	assert.Contains(t, out, "Reconciliation: disabled")
	assert.Contains(t, out, "counting in progress")
}

func TestRun_Totals(t *testing.T) {
	f := newCliFixture(t)
	f.loginAs(t, "amira", "admin")
	f.seedRow(t, models.ReportKey("r1"), models.DailyReport{
		ID: "r1", Date: "2025-06-01", ShopID: "s1", ShopName: "Corner Kiosk",
		Username: "hassan", IsDirect: true,
		ReportType: models.ReportReconciliation,
		POSMachines: []models.POSMachine{
			{ID: "8001", TID: "8001", Type: "standard", Amount: decimal.NewFromInt(1000)},
		},
		CashReceived: decimal.NewFromInt(500),
		Commission:   decimal.NewFromInt(50),
	})

	require.NoError(t, f.cli.Run(context.Background(), "totals",
		[]string{"-from", "2025-06-01", "-to", "2025-06-30"}))

	out := f.output.String()
	assert.Contains(t, out, "Reports counted: 1")
	assert.Contains(t, out, "Machines total:  1000")
	assert.Contains(t, out, "Grand total:     1450")
}

func TestRun_Logout(t *testing.T) {
	f := newCliFixture(t)
	f.loginAs(t, "hassan", "user")
	f.api.LogoutFunc = func(ctx context.Context, accessToken string) error { return nil }

	require.NoError(t, f.cli.Run(context.Background(), "logout", nil))
	assert.Nil(t, f.sessions.sess)
}
