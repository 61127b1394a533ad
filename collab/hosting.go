package collab

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// TokenEnvVar names the environment variable the hosting client reads its
// bearer token from when none is supplied directly.
const TokenEnvVar = "QUILL_HOSTING_TOKEN"

const defaultHostingTimeout = 30 * time.Second

// PublishRequest describes one site deploy.
type PublishRequest struct {
	SiteID    string `json:"site_id,omitempty"`
	SiteName  string `json:"site_name,omitempty"`
	SourceDir string `json:"source_dir"`
	RequestID string `json:"request_id,omitempty"`
}

// Deploy is the hosting provider's answer to a publish request.
type Deploy struct {
	DeployID string `json:"deploy_id"`
	SiteID   string `json:"site_id"`
	URL      string `json:"url"`
	State    string `json:"state,omitempty"`
}

// HostingError reports a non-success response from the hosting API.
type HostingError struct {
	StatusCode int
	Body       string
}

func (e *HostingError) Error() string {
	body := strings.TrimSpace(e.Body)
	if len(body) > 200 {
		body = body[:200] + "…"
	}
	return fmt.Sprintf("hosting API returned %d: %s", e.StatusCode, body)
}

// Hosting publishes rendered sites.
type Hosting interface {
	Publish(ctx context.Context, req PublishRequest) (Deploy, error)
}

// HTTPHosting talks to the hosting provider's JSON API with a bearer token.
type HTTPHosting struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewHTTPHosting creates a hosting client. An empty token falls back to the
// QUILL_HOSTING_TOKEN environment variable; token validation beyond presence
// is the provider's concern.
func NewHTTPHosting(baseURL, token string) (*HTTPHosting, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("collab: hosting base URL is required")
	}
	if token == "" {
		token = os.Getenv(TokenEnvVar)
	}
	if token == "" {
		return nil, fmt.Errorf("collab: hosting token is missing; set %s", TokenEnvVar)
	}
	return &HTTPHosting{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: defaultHostingTimeout},
	}, nil
}

// Publish sends one deploy request and decodes the provider's response.
func (h *HTTPHosting) Publish(ctx context.Context, req PublishRequest) (Deploy, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return Deploy{}, fmt.Errorf("collab: encode publish request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/deploys", bytes.NewReader(payload))
	if err != nil {
		return Deploy{}, fmt.Errorf("collab: build publish request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+h.token)

	resp, err := h.client.Do(httpReq)
	if err != nil {
		return Deploy{}, fmt.Errorf("collab: publish request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Deploy{}, fmt.Errorf("collab: read publish response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Deploy{}, &HostingError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var deploy Deploy
	if err := json.Unmarshal(body, &deploy); err != nil {
		return Deploy{}, fmt.Errorf("collab: decode publish response: %w", err)
	}
	return deploy, nil
}
