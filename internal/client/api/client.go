package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/globalstreet/postrack/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI is the remote row store contract the sync layer depends on.
type ClientAPI interface {
	// Register creates a new server account.
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)

	// Login authenticates an account and returns an access token.
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)

	// UpsertRow inserts or replaces the row with its key (replace on conflict).
	UpsertRow(ctx context.Context, accessToken string, row api.Row) error

	// QueryRows returns rows with updated_at strictly greater than since,
	// ordered ascending by updated_at. A nil since returns all rows.
	QueryRows(ctx context.Context, accessToken string, since *time.Time) ([]api.Row, error)

	// Refresh exchanges a refresh token for a new token pair.
	Refresh(ctx context.Context, refreshToken string) (*api.TokenResponse, error)

	// Logout revokes every refresh token of the account.
	Logout(ctx context.Context, accessToken string) error
}

// Client is the HTTP client for the row store server.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new API client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Carry Authorization across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Register creates a new server account.
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login authenticates an account.
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// UpsertRow inserts or replaces one row, keyed by row.Key.
func (c *Client) UpsertRow(ctx context.Context, accessToken string, row api.Row) error {
	req := api.UpsertRequest{Row: row}
	var resp api.UpsertResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/rows", accessToken, req, &resp); err != nil {
		return fmt.Errorf("upsert request failed: %w", err)
	}
	return nil
}

// QueryRows fetches the delta (or everything when since is nil).
func (c *Client) QueryRows(ctx context.Context, accessToken string, since *time.Time) ([]api.Row, error) {
	path := "/api/v1/rows"
	if since != nil {
		path += "?since=" + url.QueryEscape(since.Format(time.RFC3339Nano))
	}

	var resp api.RowsResponse
	if err := c.doRequest(ctx, http.MethodGet, path, accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("rows query failed: %w", err)
	}
	return resp.Rows, nil
}

// Refresh exchanges a refresh token for a new token pair. The presented
// token is single use; the server rotates it.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/refresh", refreshToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}

// Logout revokes every refresh token of the account.
func (c *Client) Logout(ctx context.Context, accessToken string) error {
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/logout", accessToken, nil, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// doRequest performs one HTTP round trip with JSON encoding on both sides.
func (c *Client) doRequest(ctx context.Context, method, path, accessToken string, body, result interface{}) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
