package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/globalstreet/postrack/internal/models"
	"github.com/globalstreet/postrack/pkg/api"
)

// contextKey is the type for request context keys
type contextKey string

const (
	// UserIDKey is the context key holding the authenticated account id
	UserIDKey contextKey = "user_id"
	// UsernameKey is the context key holding the authenticated username
	UsernameKey contextKey = "username"
	// RoleKey is the context key holding the authenticated role
	RoleKey contextKey = "role"
)

// GetUserID extracts the account id from the request context
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}

// GetUsername extracts the username from the request context
func GetUsername(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}

// GetRole extracts the role from the request context
func GetRole(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok
}

// RowStorage is the narrow storage interface the rows handler needs
type RowStorage interface {
	UpsertRow(ctx context.Context, row *models.Row) error
	GetRows(ctx context.Context) ([]models.Row, error)
	GetRowsSince(ctx context.Context, since time.Time) ([]models.Row, error)
}

// RowsHandler serves the replicated row store
type RowsHandler struct {
	logger  *slog.Logger
	storage RowStorage
}

// NewRowsHandler creates a new rows handler
func NewRowsHandler(logger *slog.Logger, storage RowStorage) *RowsHandler {
	return &RowsHandler{
		logger:  logger,
		storage: storage,
	}
}

// HandleRows dispatches GET and POST requests on /api/v1/rows
func (h *RowsHandler) HandleRows(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Set by AuthMiddleware
	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.Error("user id not found in context")
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleQuery(w, r, userID)
	case http.MethodPost:
		h.handleUpsert(w, r, userID)
	default:
		h.sendError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleQuery serves GET /api/v1/rows?since=<RFC3339Nano>
// Without since it returns the full dataset; with since, only rows updated
// strictly after that instant. Both orderings are ascending by updated_at.
func (h *RowsHandler) handleQuery(w http.ResponseWriter, r *http.Request, userID string) {
	ctx := r.Context()

	var rows []models.Row
	var err error

	sinceStr := r.URL.Query().Get("since")
	if sinceStr != "" {
		since, perr := time.Parse(time.RFC3339Nano, sinceStr)
		if perr != nil {
			h.logger.Warn("invalid since parameter", "since", sinceStr, "error", perr)
			h.sendError(w, "invalid since parameter, want an RFC 3339 timestamp", http.StatusBadRequest)
			return
		}
		rows, err = h.storage.GetRowsSince(ctx, since)
	} else {
		rows, err = h.storage.GetRows(ctx)
	}

	if err != nil {
		h.logger.Error("failed to query rows", "error", err, "user_id", userID)
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	apiRows := make([]api.Row, 0, len(rows))
	for _, row := range rows {
		apiRows = append(apiRows, api.Row{
			Key:       row.Key,
			Data:      row.Data,
			UpdatedAt: row.UpdatedAt,
		})
	}

	resp := api.RowsResponse{
		Rows:  apiRows,
		Count: len(apiRows),
	}

	h.sendJSON(w, resp, http.StatusOK)

	h.logger.Info("rows query", "user_id", userID, "since", sinceStr, "count", len(apiRows))
}

// handleUpsert serves POST /api/v1/rows
// Inserts the row or replaces the existing row with the same key.
func (h *RowsHandler) handleUpsert(w http.ResponseWriter, r *http.Request, userID string) {
	ctx := r.Context()

	var req api.UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode upsert request", "error", err)
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Row.Key == "" {
		h.sendError(w, "row key is required", http.StatusUnprocessableEntity)
		return
	}
	if len(req.Row.Data) == 0 {
		h.sendError(w, "row data is required", http.StatusUnprocessableEntity)
		return
	}
	if req.Row.UpdatedAt.IsZero() {
		h.sendError(w, "row updated_at is required", http.StatusUnprocessableEntity)
		return
	}

	row := &models.Row{
		Key:       req.Row.Key,
		Data:      req.Row.Data,
		UpdatedAt: req.Row.UpdatedAt,
	}

	if err := h.storage.UpsertRow(ctx, row); err != nil {
		h.logger.Error("failed to upsert row", "error", err, "key", row.Key)
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.UpsertResponse{
		Key:       row.Key,
		UpdatedAt: row.UpdatedAt,
	}

	h.sendJSON(w, resp, http.StatusOK)

	h.logger.Info("row upserted", "user_id", userID, "key", row.Key)
}

func (h *RowsHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

func (h *RowsHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	h.sendJSON(w, api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}, statusCode)
}
