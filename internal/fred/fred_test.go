// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fred

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/fred-engine/pkg/types"
)

// --- fake fetcher ---

type fetchCall struct {
	path   string
	params map[string]string
}

// fakeFetcher serves canned bodies keyed by path, or by "path:filter_value"
// when the request carries a filter_value.
type fakeFetcher struct {
	mu        sync.Mutex
	responses map[string]string
	errs      map[string]error
	calls     []fetchCall
}

func (f *fakeFetcher) Get(_ context.Context, path string, params map[string]string) (json.RawMessage, error) {
	f.mu.Lock()
	f.calls = append(f.calls, fetchCall{path: path, params: params})
	f.mu.Unlock()

	key := path
	if v := params["filter_value"]; v != "" {
		key += ":" + v
	}
	if err, ok := f.errs[key]; ok {
		return nil, err
	}
	body, ok := f.responses[key]
	if !ok {
		return nil, fmt.Errorf("no fixture for %s", key)
	}
	return json.RawMessage(body), nil
}

func (f *fakeFetcher) callFor(t *testing.T, filterValue string) fetchCall {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c.params["filter_value"] == filterValue {
			return c
		}
	}
	t.Fatalf("no call with filter_value %q", filterValue)
	return fetchCall{}
}

func newTestService(f *fakeFetcher) *Service {
	return NewService(f, zerolog.Nop())
}

// --- fixtures ---

func seriesFixture(id string, popularity int, notes string) map[string]any {
	s := map[string]any{
		"id":                        id,
		"realtime_start":            "2026-10-18",
		"realtime_end":              "2026-10-18",
		"title":                     "Series " + id,
		"observation_start":         "2000-01-03",
		"observation_end":           "2026-10-16",
		"frequency":                 "Daily",
		"frequency_short":           "D",
		"units":                     "Percent",
		"units_short":               "%",
		"seasonal_adjustment":       "Not Seasonally Adjusted",
		"seasonal_adjustment_short": "NSA",
		"last_updated":              "2026-10-17 15:16:01-05",
		"popularity":                popularity,
	}
	if notes != "" {
		s["notes"] = notes
	}
	return s
}

func searchBody(t *testing.T, count, offset, limit int, series ...map[string]any) string {
	t.Helper()
	if series == nil {
		series = []map[string]any{}
	}
	b, err := json.Marshal(map[string]any{
		"realtime_start": "2026-10-18",
		"realtime_end":   "2026-10-18",
		"order_by":       "popularity",
		"sort_order":     "desc",
		"count":          count,
		"offset":         offset,
		"limit":          limit,
		"seriess":        series,
	})
	require.NoError(t, err)
	return string(b)
}

func lookupBody(t *testing.T, series ...map[string]any) string {
	t.Helper()
	if series == nil {
		series = []map[string]any{}
	}
	b, err := json.Marshal(map[string]any{
		"realtime_start": "2026-10-18",
		"realtime_end":   "2026-10-18",
		"seriess":        series,
	})
	require.NoError(t, err)
	return string(b)
}

// decodeContent checks the single-text-block convention and decodes its JSON.
func decodeContent(t *testing.T, content []types.TextContent, v any) {
	t.Helper()
	require.Len(t, content, 1)
	require.Equal(t, "text", content[0].Type)
	require.NoError(t, json.Unmarshal([]byte(content[0].Text), v))
}
