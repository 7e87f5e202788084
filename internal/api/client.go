package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/driftline/erdreq/internal/domain"
)

const (
	requestERDPath   = "/api/request-erd"
	maxErrorBodySize = 1 << 20 // 1MB
)

// Client talks to the diagram service. It carries the base URL and API
// key from configuration; neither is read from the environment here, so
// the client stays testable without process-wide state.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

// NewClient creates a diagram service client. The base URL is normalized
// to have no trailing slash.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		APIKey:  apiKey,
		HTTP: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

// erdRequestBody is the wire format of an ERD request.
type erdRequestBody struct {
	RequesterEmail     string `json:"requester_email"`
	URL                string `json:"url"`
	SourceName         string `json:"source_name"`
	SourceDefinitionID string `json:"source_definition_id"`
}

// RequestERD submits an ERD request for the given source on behalf of the
// requester email. Any 2xx response is success; a non-2xx response is
// returned as *APIError with whatever diagnostic message the body held.
// The email is sent exactly as given: shape validation is the caller's
// concern and is advisory only.
func (c *Client) RequestERD(ctx context.Context, requesterEmail string, source domain.SourceInfo) error {
	body := erdRequestBody{
		RequesterEmail:     requesterEmail,
		URL:                source.URL,
		SourceName:         source.Name,
		SourceDefinitionID: source.DefinitionID,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+requestERDPath, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp)
	}

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// apiError builds an *APIError from a non-2xx response. The body read is
// bounded. If the body is JSON with an "error" or "message" field that
// field is used; otherwise the raw text stands, so a non-JSON error body
// never breaks diagnostics.
func apiError(resp *http.Response) *APIError {
	limited := io.LimitReader(resp.Body, maxErrorBodySize)
	body, _ := io.ReadAll(limited)
	message := strings.TrimSpace(string(body))

	if len(body) > 0 {
		var payload struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &payload); err == nil {
			if payload.Error != "" {
				message = payload.Error
			} else if payload.Message != "" {
				message = payload.Message
			}
		}
	}

	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	return &APIError{StatusCode: resp.StatusCode, Message: message}
}
