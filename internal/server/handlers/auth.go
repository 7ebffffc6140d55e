package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/globalstreet/postrack/internal/models"
	"github.com/globalstreet/postrack/internal/server/storage"
	"github.com/globalstreet/postrack/internal/validation"
	"github.com/globalstreet/postrack/pkg/api"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	logger         *slog.Logger
	accountStorage storage.AccountStorage
	tokenStorage   storage.TokenStorage
	jwtConfig      JWTConfig
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(logger *slog.Logger, accountStorage storage.AccountStorage, tokenStorage storage.TokenStorage, jwtConfig JWTConfig) *AuthHandler {
	return &AuthHandler{
		logger:         logger,
		accountStorage: accountStorage,
		tokenStorage:   tokenStorage,
		jwtConfig:      jwtConfig,
	}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode register request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateUsername(req.Username); err != nil {
		h.logger.WarnContext(ctx, "invalid username", slog.String("username", req.Username), slog.Any("error", err))
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidateRole(req.Role); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	accountID := uuid.New().String()

	account := &models.Account{
		ID:           accountID,
		Username:     req.Username,
		PasswordHash: string(passwordHash),
		Role:         models.UserRole(req.Role),
		CreatedAt:    time.Now(),
	}

	if err := h.accountStorage.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, storage.ErrAccountAlreadyExists) {
			h.logger.WarnContext(ctx, "account already exists", slog.String("username", req.Username))
			h.sendError(w, "username already taken", http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create account", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "account registered",
		slog.String("username", req.Username),
		slog.String("user_id", accountID),
		slog.String("role", req.Role))

	resp := api.RegisterResponse{
		UserID:  accountID,
		Message: "Account registered successfully",
	}

	h.sendJSON(w, resp, http.StatusCreated)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode login request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateUsername(req.Username); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Password == "" {
		h.sendError(w, "password is required", http.StatusBadRequest)
		return
	}

	account, err := h.accountStorage.GetAccountByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrAccountNotFound) {
			h.logger.WarnContext(ctx, "login failed: account not found", slog.String("username", req.Username))
			h.sendError(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get account", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		h.logger.WarnContext(ctx, "login failed: invalid password", slog.String("username", req.Username))
		h.sendError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	accessToken, expiresIn, err := GenerateAccessToken(h.jwtConfig, account.ID, account.Username, string(account.Role))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	refreshToken, expiresAt, err := GenerateRefreshToken(h.jwtConfig)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate refresh token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	token := &models.RefreshToken{
		Token:     refreshToken,
		AccountID: account.ID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}

	if err := h.tokenStorage.SaveRefreshToken(ctx, token); err != nil {
		h.logger.ErrorContext(ctx, "failed to save refresh token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Not critical, log but don't fail the login
	if err := h.accountStorage.UpdateLastLogin(ctx, account.ID, time.Now()); err != nil {
		h.logger.WarnContext(ctx, "failed to update last login", slog.Any("error", err))
	}

	h.logger.InfoContext(ctx, "login",
		slog.String("username", req.Username),
		slog.String("user_id", account.ID))

	resp := api.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// Refresh handles POST /api/v1/auth/refresh
// Exchanges a valid refresh token for a new token pair
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	refreshToken, ok := bearerToken(r)
	if !ok {
		h.sendError(w, "Authorization header with Bearer token is required", http.StatusUnauthorized)
		return
	}

	storedToken, err := h.tokenStorage.GetRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			h.logger.WarnContext(ctx, "refresh token not found")
			h.sendError(w, "invalid refresh token", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get refresh token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if time.Now().After(storedToken.ExpiresAt) {
		h.logger.WarnContext(ctx, "refresh token expired", slog.String("user_id", storedToken.AccountID))
		h.sendError(w, "refresh token expired", http.StatusUnauthorized)
		return
	}

	account, err := h.accountStorage.GetAccountByID(ctx, storedToken.AccountID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get account", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	newAccessToken, expiresIn, err := GenerateAccessToken(h.jwtConfig, account.ID, account.Username, string(account.Role))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	newRefreshToken, newExpiresAt, err := GenerateRefreshToken(h.jwtConfig)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate refresh token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Rotate: the presented token is single use
	if err := h.tokenStorage.DeleteRefreshToken(ctx, refreshToken); err != nil {
		h.logger.WarnContext(ctx, "failed to delete old refresh token", slog.Any("error", err))
	}

	newToken := &models.RefreshToken{
		Token:     newRefreshToken,
		AccountID: account.ID,
		ExpiresAt: newExpiresAt,
		CreatedAt: time.Now(),
	}

	if err := h.tokenStorage.SaveRefreshToken(ctx, newToken); err != nil {
		h.logger.ErrorContext(ctx, "failed to save refresh token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "tokens refreshed", slog.String("user_id", account.ID))

	resp := api.TokenResponse{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
		ExpiresIn:    expiresIn,
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// Logout handles POST /api/v1/auth/logout
// Deletes every refresh token of the account, logging out all devices
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	accessToken, ok := bearerToken(r)
	if !ok {
		h.sendError(w, "Authorization header with Bearer token is required", http.StatusUnauthorized)
		return
	}

	claims, err := ValidateAccessToken(h.jwtConfig, accessToken)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid access token", slog.Any("error", err))
		h.sendError(w, "invalid or expired access token", http.StatusUnauthorized)
		return
	}

	deletedCount, err := h.tokenStorage.DeleteAccountTokens(ctx, claims.UserID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to delete account tokens", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "logout",
		slog.String("user_id", claims.UserID),
		slog.Int("tokens_deleted", deletedCount))

	w.WriteHeader(http.StatusNoContent)
}

// bearerToken extracts the token from an "Authorization: Bearer <t>" header.
func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	const bearerPrefix = "Bearer "
	if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	return authHeader[len(bearerPrefix):], true
}

// sendJSON writes a JSON response
func (h *AuthHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError writes a JSON error response
func (h *AuthHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	h.sendJSON(w, resp, statusCode)
}
