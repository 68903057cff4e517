package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirpyerre/customer-portal/internal/core/domain"
)

const defaultTimeout = 5 * time.Second

// Config captures the settings for reaching the identity provider.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the external identity provider over HTTP. Each call is a
// single attempt; retry policy, if any, belongs to the provider side, not
// here. Errors are returned raw — the auth service decides what the user
// gets to see.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type exchangeRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type exchangeResponse struct {
	AccessToken string `json:"access_token"`
}

// ExchangeCredentials trades credentials for an access token via
// POST <base>/auth/login.
func (c *Client) ExchangeCredentials(ctx context.Context, email, password string) (string, error) {
	body, err := json.Marshal(exchangeRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("credential exchange: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("credential exchange: provider returned %d", resp.StatusCode)
	}

	var out exchangeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("credential exchange: decode response: %w", err)
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("credential exchange: empty access token")
	}
	return out.AccessToken, nil
}

type profileResponse struct {
	// Some provider deployments return numeric IDs, some strings.
	ID    json.Number `json:"id"`
	Email string      `json:"email"`
	Role  string      `json:"role"`
}

// FetchProfile resolves an access token to the principal's profile via
// GET <base>/auth/me.
func (c *Client) FetchProfile(ctx context.Context, accessToken string) (*domain.Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/me", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("profile fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("profile fetch: provider returned %d", resp.StatusCode)
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var out profileResponse
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("profile fetch: decode response: %w", err)
	}
	if out.ID.String() == "" || out.Role == "" {
		return nil, fmt.Errorf("profile fetch: incomplete profile")
	}

	return &domain.Profile{
		SubjectID: out.ID.String(),
		Email:     out.Email,
		Role:      out.Role,
	}, nil
}
