package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const remoteTimeout = 10 * time.Second

// RemoteVerifier resolves tokens by asking the identity provider's user
// endpoint. Used when the JWT secret is not shared with this process.
type RemoteVerifier struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewRemoteVerifier builds a verifier against the provider at baseURL.
func NewRemoteVerifier(baseURL, apiKey string) (*RemoteVerifier, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" || strings.TrimSpace(apiKey) == "" {
		return nil, ErrNotConfigured
	}
	return &RemoteVerifier{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: remoteTimeout},
	}, nil
}

type remoteUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Verify asks the provider who the token belongs to.
func (v *RemoteVerifier) Verify(ctx context.Context, token string) (Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return Identity{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", v.apiKey)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return Identity{}, fmt.Errorf("identity lookup: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return Identity{}, ErrInvalidToken
	default:
		return Identity{}, fmt.Errorf("identity lookup: unexpected status %d", resp.StatusCode)
	}

	var user remoteUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return Identity{}, fmt.Errorf("identity lookup: decode: %w", err)
	}
	if user.ID == "" {
		return Identity{}, ErrInvalidToken
	}

	return Identity{ID: user.ID, Email: user.Email}, nil
}
