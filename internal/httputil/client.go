// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP transport used to reach the FRED API.
package httputil

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/pdiddy/fred-engine/pkg/types"
)

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	// Message is the API's error_message when the body carried one, else the
	// trimmed body.
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// Client performs GET requests against a FRED-style JSON API. It adds the
// api_key and file_type=json parameters to every request.
type Client struct {
	rc     *resty.Client
	apiKey string
	log    zerolog.Logger
}

// NewClient builds a Client from cfg. The logger receives one debug event per
// request.
func NewClient(cfg types.FREDConfig, log zerolog.Logger) *Client {
	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	if cfg.UserAgent != "" {
		rc.SetHeader("User-Agent", cfg.UserAgent)
	}
	return &Client{rc: rc, apiKey: cfg.APIKey, log: log}
}

// Get requests path with params and returns the raw JSON body. Network
// failures, non-2xx statuses, and bodies that are not JSON are errors.
func (c *Client) Get(ctx context.Context, path string, params map[string]string) (json.RawMessage, error) {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetQueryParam("api_key", c.apiKey).
		SetQueryParam("file_type", "json").
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}

	c.log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("fred request")

	body := resp.Body()
	if !resp.IsSuccess() {
		return nil, &StatusError{StatusCode: resp.StatusCode(), Message: errorMessage(body)}
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("GET %s: response body is not valid JSON", path)
	}
	return json.RawMessage(body), nil
}

// errorMessage extracts FRED's error_message field, falling back to the body.
func errorMessage(body []byte) string {
	var e struct {
		Message string `json:"error_message"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
		return e.Message
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}
