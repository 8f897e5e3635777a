// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fred

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Options ---

func TestSearchOptionsParamsOmitsAbsentFields(t *testing.T) {
	tests := []struct {
		name string
		opts SearchOptions
		want map[string]string
	}{
		{"empty", SearchOptions{}, map[string]string{}},
		{"text only", SearchOptions{SearchText: "treasury"}, map[string]string{"search_text": "treasury"}},
		{
			"all fields",
			SearchOptions{
				SearchText:      "oil",
				SearchType:      "full_text",
				TagNames:        "usa,daily",
				ExcludeTagNames: "discontinued",
				Limit:           25,
				Offset:          50,
				OrderBy:         "popularity",
				SortOrder:       "desc",
				FilterVariable:  "frequency",
				FilterValue:     "Weekly",
			},
			map[string]string{
				"search_text":       "oil",
				"search_type":       "full_text",
				"tag_names":         "usa,daily",
				"exclude_tag_names": "discontinued",
				"limit":             "25",
				"offset":            "50",
				"order_by":          "popularity",
				"sort_order":        "desc",
				"filter_variable":   "frequency",
				"filter_value":      "Weekly",
			},
		},
		{"zero offset omitted", SearchOptions{Limit: 10}, map[string]string{"limit": "10"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.Params())
		})
	}
}

func TestSearchOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    SearchOptions
		wantErr string
	}{
		{"empty is valid", SearchOptions{}, ""},
		{"valid enums", SearchOptions{SearchType: "series_id", OrderBy: "last_updated", SortOrder: "asc"}, ""},
		{"bad search type", SearchOptions{SearchType: "fuzzy"}, "search_type must be one of: full_text, series_id"},
		{"bad order by", SearchOptions{OrderBy: "random"}, "order_by must be one of"},
		{"bad sort order", SearchOptions{SortOrder: "up"}, "sort_order must be one of: asc, desc"},
		{"bad filter variable", SearchOptions{FilterVariable: "geography", FilterValue: "US"}, "filter_variable must be one of"},
		{"limit too large", SearchOptions{Limit: 1001}, "limit must be at most 1000"},
		{"negative limit", SearchOptions{Limit: -1}, "limit must be at least 1"},
		{"negative offset", SearchOptions{Offset: -5}, "offset must be at least 0"},
		{"filter variable without value", SearchOptions{FilterVariable: "units"}, "filter_value is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, "search options", ve.Subject)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// --- Formatting helpers ---

func TestShowingRange(t *testing.T) {
	for _, count := range []int{1, 5, 19, 20, 21, 100} {
		for _, offset := range []int{0, 1, 10, 50} {
			for _, limit := range []int{1, 10, 20, 1000} {
				from, to := showingRange(offset, limit, count)
				assert.Equal(t, offset+1, from)
				assert.Equal(t, min(offset+limit, count), to)
				if offset < count {
					assert.LessOrEqual(t, from, to, "offset=%d limit=%d count=%d", offset, limit, count)
				}
			}
		}
	}
	assert.Equal(t, "11-15 of 15", showing(10, 10, 15))
	assert.Equal(t, "1-25 of 8432", showing(0, 25, 8432))
}

func TestTruncateNotes(t *testing.T) {
	tests := []struct {
		name  string
		notes string
		limit int
		want  string
	}{
		{"empty", "", 200, ""},
		{"under limit", "short note", 200, "short note"},
		{"at limit", strings.Repeat("a", 200), 200, strings.Repeat("a", 200)},
		{"over limit", strings.Repeat("a", 201), 200, strings.Repeat("a", 200) + "..."},
		{"indicator limit", strings.Repeat("b", 151), 150, strings.Repeat("b", 150) + "..."},
		{"counts characters not bytes", strings.Repeat("é", 151), 150, strings.Repeat("é", 150) + "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncateNotes(tt.notes, tt.limit))
		})
	}
}

// --- SeriesSearch ---

func TestSeriesSearchFormatsResult(t *testing.T) {
	longNotes := strings.Repeat("n", 250)
	f := &fakeFetcher{responses: map[string]string{
		pathSeriesSearch: searchBody(t, 42, 10, 2,
			seriesFixture("DGS10", 95, longNotes),
			seriesFixture("DGS2", 80, "Short <b>note</b> & more"),
		),
	}}

	content, err := newTestService(f).SeriesSearch(context.Background(), SearchOptions{
		SearchText: "treasury",
		Limit:      2,
		Offset:     10,
	})
	require.NoError(t, err)

	var got searchSummary
	decodeContent(t, content, &got)
	assert.Equal(t, 42, got.TotalCount)
	assert.Equal(t, "11-12 of 42", got.Showing)
	require.Len(t, got.Series, 2)

	first := got.Series[0]
	assert.Equal(t, "DGS10", first.ID)
	assert.Equal(t, "Series DGS10", first.Title)
	assert.Equal(t, "Percent", first.Units)
	assert.Equal(t, "Daily", first.Frequency)
	assert.Equal(t, "Not Seasonally Adjusted", first.SeasonalAdjustment)
	assert.Equal(t, "2000-01-03 to 2026-10-16", first.ObservationRange)
	assert.Equal(t, "2026-10-17 15:16:01-05", first.LastUpdated)
	assert.Equal(t, 95, first.Popularity)
	assert.Equal(t, strings.Repeat("n", 200)+"...", first.Notes)

	assert.Equal(t, "Short <b>note</b> & more", got.Series[1].Notes)
	assert.Contains(t, content[0].Text, "<b>", "HTML must not be escaped")
	assert.Contains(t, content[0].Text, "\n  \"total_count\": 42", "output must be indented")

	require.Len(t, f.calls, 1)
	assert.Equal(t, map[string]string{"search_text": "treasury", "limit": "2", "offset": "10"}, f.calls[0].params)
}

func TestSeriesSearchOmitsEmptyNotes(t *testing.T) {
	f := &fakeFetcher{responses: map[string]string{
		pathSeriesSearch: searchBody(t, 1, 0, 1000, seriesFixture("GDP", 90, "")),
	}}

	content, err := newTestService(f).SeriesSearch(context.Background(), SearchOptions{SearchText: "gdp"})
	require.NoError(t, err)
	assert.NotContains(t, content[0].Text, `"notes"`)
}

func TestSeriesSearchValidationFailures(t *testing.T) {
	missingTitle := seriesFixture("DGS10", 95, "")
	delete(missingTitle, "title")

	mistyped := seriesFixture("DGS10", 95, "")
	mistyped["popularity"] = "high"

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"series missing title", searchBody(t, 1, 0, 1, missingTitle), "seriess[0].title is required"},
		{"popularity not a number", searchBody(t, 1, 0, 1, mistyped), "popularity"},
		{"missing seriess", `{"order_by":"popularity","sort_order":"desc","count":0,"offset":0,"limit":10}`, "seriess is required"},
		{"missing count", `{"order_by":"popularity","sort_order":"desc","offset":0,"limit":10,"seriess":[]}`, "count is required"},
		{"document is an array", `[]`, "document must be"},
		{"null series entry", `{"order_by":"popularity","sort_order":"desc","count":1,"offset":0,"limit":10,"seriess":[null]}`, "seriess[0].id is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeFetcher{responses: map[string]string{pathSeriesSearch: tt.body}}

			content, err := newTestService(f).SeriesSearch(context.Background(), SearchOptions{SearchText: "x"})
			require.Error(t, err)
			assert.Nil(t, content)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "want *ValidationError, got %v", err)
			assert.Equal(t, "search response", ve.Subject)

			var oe *OpError
			require.True(t, errors.As(err, &oe))
			assert.Equal(t, OpSeriesSearch, oe.Op)
			assert.True(t, strings.HasPrefix(err.Error(), "series search failed: "), err.Error())
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestSeriesSearchTransportFailure(t *testing.T) {
	f := &fakeFetcher{errs: map[string]error{pathSeriesSearch: errors.New("HTTP 500: upstream down")}}

	content, err := newTestService(f).SeriesSearch(context.Background(), SearchOptions{SearchText: "x"})
	require.Error(t, err)
	assert.Nil(t, content)

	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, pathSeriesSearch, te.Path)
	assert.Equal(t, "series search failed: request series/search: HTTP 500: upstream down", err.Error())
}

func TestSeriesSearchInvalidOptionsSkipRequest(t *testing.T) {
	f := &fakeFetcher{}

	_, err := newTestService(f).SeriesSearch(context.Background(), SearchOptions{SortOrder: "sideways"})
	require.Error(t, err)
	assert.Empty(t, f.calls)

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
}
