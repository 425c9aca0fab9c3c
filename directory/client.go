// Package directory talks to the remote session directory. The catalog store
// is its only consumer; failures are reported as errors and the store decides
// how to degrade.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ibelong/models"
)

// TokenSource supplies the already-established bearer credential, if any.
// Attaching it is this client's job; obtaining it is the auth layer's.
type TokenSource func() string

// Client fetches session records from the directory.
type Client interface {
	GetSessions(ctx context.Context) ([]models.SupportSession, error)
	GetSessionByID(ctx context.Context, id string) (*models.SupportSession, error)
}

// HTTPClient is the production Client implementation.
type HTTPClient struct {
	baseURL string
	token   TokenSource
	http    *http.Client
}

// NewHTTPClient builds a client for the directory at baseURL. token may be nil
// when no credential is established yet.
func NewHTTPClient(baseURL string, timeout time.Duration, token TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

// sessionsEnvelope mirrors the backend response shape: { success, data }.
type sessionsEnvelope struct {
	Success bool                    `json:"success"`
	Data    []models.SupportSession `json:"data"`
}

type sessionEnvelope struct {
	Success bool                   `json:"success"`
	Data    *models.SupportSession `json:"data"`
}

func (c *HTTPClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != nil {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("directory returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// GetSessions returns the current session list.
func (c *HTTPClient) GetSessions(ctx context.Context) ([]models.SupportSession, error) {
	var env sessionsEnvelope
	if err := c.get(ctx, "/sessions", &env); err != nil {
		return nil, err
	}
	if !env.Success || env.Data == nil {
		return nil, fmt.Errorf("directory response was not successful")
	}
	return env.Data, nil
}

// GetSessionByID returns a single session, or nil when the directory does not
// know the id.
func (c *HTTPClient) GetSessionByID(ctx context.Context, id string) (*models.SupportSession, error) {
	var env sessionEnvelope
	if err := c.get(ctx, "/sessions/"+id, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, nil
	}
	return env.Data, nil
}
