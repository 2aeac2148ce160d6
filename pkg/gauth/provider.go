// Package gauth supplies authorized Google API credentials to the task
// and calendar clients. Tokens are refreshed lazily by the underlying
// oauth2 token source, which serializes refreshes internally so
// concurrent callers never trigger duplicate refresh requests.
package gauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Provider exchanges stored OAuth credentials for valid bearer tokens.
type Provider struct {
	config *oauth2.Config
	source oauth2.TokenSource
}

// NewProvider loads an OAuth Desktop App credentials file plus a
// previously authorized token file (see scripts/gauth) and returns a
// self-refreshing credential provider for the given scopes.
func NewProvider(ctx context.Context, credentialsPath, tokenPath string, scopes ...string) (*Provider, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	config, err := google.ConfigFromJSON(data, scopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}

	tokenData, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("no authorized token at %q, run scripts/gauth first: %w", tokenPath, err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(tokenData, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token file %q: %w", tokenPath, err)
	}

	return &Provider{
		config: config,
		source: config.TokenSource(ctx, &tok),
	}, nil
}

// Token returns a valid bearer token, refreshing it first if expired.
func (p *Provider) Token() (*oauth2.Token, error) {
	tok, err := p.source.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to obtain google credentials: %w", err)
	}
	return tok, nil
}

// Client returns an HTTP client that injects the bearer token into
// every request.
func (p *Provider) Client(ctx context.Context) *http.Client {
	return oauth2.NewClient(ctx, p.source)
}
