package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	ngrokMaxAttempts  = 10
	ngrokRetryDelay   = 3 * time.Second
	ngrokQueryTimeout = 5 * time.Second
)

// ngrokTunnelsResponse matches the /api/tunnels response from the ngrok local API.
type ngrokTunnelsResponse struct {
	Tunnels []ngrokTunnel `json:"tunnels"`
}

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

// detectNgrokURL queries the ngrok local API and returns the first HTTPS
// tunnel URL. Retries handle the ngrok container startup race.
func detectNgrokURL(ctx context.Context, ngrokAPIBase string) (string, error) {
	client := &http.Client{Timeout: ngrokQueryTimeout}

	var lastErr error
	for attempt := 1; attempt <= ngrokMaxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(ngrokRetryDelay):
			}
		}

		url, err := queryNgrokTunnels(ctx, client, ngrokAPIBase)
		if err != nil {
			lastErr = err
			continue
		}
		return url, nil
	}

	return "", fmt.Errorf("ngrok not ready after %d attempts: %w", ngrokMaxAttempts, lastErr)
}

func queryNgrokTunnels(ctx context.Context, client *http.Client, ngrokAPIBase string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ngrokAPIBase+"/api/tunnels", nil)
	if err != nil {
		return "", fmt.Errorf("failed to create ngrok API request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ngrok API not reachable: %w", err)
	}
	defer resp.Body.Close()

	var tunnels ngrokTunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return "", fmt.Errorf("failed to decode ngrok API response: %w", err)
	}

	for _, t := range tunnels.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(tunnels.Tunnels) > 0 {
		return tunnels.Tunnels[0].PublicURL, nil
	}
	return "", fmt.Errorf("ngrok has no active tunnels")
}
