// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fred implements the series operations exposed by fred-engine:
// free-text series search, the high-frequency indicator ranking, and
// single-series lookup. Each operation builds query parameters, fetches
// through a Fetcher, validates the JSON response, and returns a single text
// block holding an indented JSON document.
package fred

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"
)

// Endpoint paths relative to the API root.
const (
	pathSeriesSearch = "series/search"
	pathSeries       = "series"
)

// Fetcher performs a GET against an endpoint path with query parameters and
// returns the raw JSON body. Implementations fail on network errors and
// non-2xx statuses. *httputil.Client satisfies it.
type Fetcher interface {
	Get(ctx context.Context, path string, params map[string]string) (json.RawMessage, error)
}

// Service runs the series operations against a Fetcher. It holds no mutable
// state and is safe for concurrent use.
type Service struct {
	fetcher Fetcher
	log     zerolog.Logger
}

// NewService returns a Service that fetches through f and logs to log.
func NewService(f Fetcher, log zerolog.Logger) *Service {
	return &Service{fetcher: f, log: log}
}

// fetch wraps any Fetcher failure in a TransportError.
func (s *Service) fetch(ctx context.Context, path string, params map[string]string) (json.RawMessage, error) {
	body, err := s.fetcher.Get(ctx, path, params)
	if err != nil {
		return nil, &TransportError{Path: path, Err: err}
	}
	return body, nil
}
