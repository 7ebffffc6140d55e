package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/globalstreet/postrack/internal/client/auth"
	"github.com/globalstreet/postrack/internal/client/iocli"
	"github.com/globalstreet/postrack/internal/client/ops"
	"github.com/globalstreet/postrack/internal/client/storage"
	"github.com/globalstreet/postrack/internal/client/sync"
	"github.com/globalstreet/postrack/internal/models"
)

// Cli wires terminal commands to the auth, sync and ops services. One Cli
// instance serves one invocation of the binary.
type Cli struct {
	io          iocli.IO
	authService *auth.Service
	syncService *sync.Service
	opsService  *ops.Service
	logger      *slog.Logger
}

func New(io iocli.IO, authService *auth.Service, syncService *sync.Service, opsService *ops.Service, logger *slog.Logger) *Cli {
	return &Cli{
		io:          io,
		authService: authService,
		syncService: syncService,
		opsService:  opsService,
		logger:      logger,
	}
}

// Run dispatches a command. Unknown commands print usage and return an error.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "submit":
		return c.runSubmit(ctx, args)
	case "list":
		return c.runList(ctx, args)
	case "totals":
		return c.runTotals(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "request":
		return c.runRequest(ctx, args)
	case "approve":
		return c.runApprove(ctx, args)
	case "reject":
		return c.runReject(ctx, args)
	case "system":
		return c.runSystem(ctx, args)
	case "sync":
		return c.runSync(ctx)
	case "watch":
		return c.runWatch(ctx)
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// PrintUsage writes the top-level help text.
func (c *Cli) PrintUsage() {
	c.io.Printf("%s", usageText)
}

// session returns a live session, refreshing tokens when needed. Auth
// errors are rewritten into actionable messages.
func (c *Cli) session(ctx context.Context) (*storage.Session, error) {
	sess, err := c.authService.ActiveSession(ctx)
	if err != nil {
		if errors.Is(err, auth.ErrNotAuthenticated) {
			return nil, fmt.Errorf("not authenticated. Please run 'postrack login' first")
		}
		if errors.Is(err, auth.ErrSessionExpired) {
			return nil, fmt.Errorf("session expired. Please run 'postrack login' again")
		}
		return nil, err
	}
	return sess, nil
}

// fetchState pulls the freshest state the client can get: the server delta
// when online, the local cache otherwise.
func (c *Cli) fetchState(ctx context.Context, accessToken string) (*models.AppState, bool) {
	return c.syncService.Fetch(ctx, accessToken, false)
}
