// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fred

import (
	"context"
	"errors"
	"strconv"

	"github.com/pdiddy/fred-engine/pkg/types"
)

// SearchOptions filters a series search. Zero values are treated as absent
// and left out of the request.
type SearchOptions struct {
	SearchText      string `json:"search_text"`
	SearchType      string `json:"search_type" validate:"omitempty,oneof=full_text series_id"`
	TagNames        string `json:"tag_names"`
	ExcludeTagNames string `json:"exclude_tag_names"`
	Limit           int    `json:"limit" validate:"omitempty,min=1,max=1000"`
	Offset          int    `json:"offset" validate:"min=0"`
	OrderBy         string `json:"order_by" validate:"omitempty,oneof=search_rank series_id title units frequency seasonal_adjustment realtime_start realtime_end last_updated observation_start observation_end popularity group_popularity"`
	SortOrder       string `json:"sort_order" validate:"omitempty,oneof=asc desc"`
	FilterVariable  string `json:"filter_variable" validate:"omitempty,oneof=frequency units seasonal_adjustment"`
	FilterValue     string `json:"filter_value"`
}

// Validate checks enumerated fields and ranges before any request is made.
func (o SearchOptions) Validate() error {
	if err := validate.Struct(o); err != nil {
		return &ValidationError{Subject: "search options", Err: describe(err)}
	}
	if o.FilterVariable != "" && o.FilterValue == "" {
		return &ValidationError{Subject: "search options", Err: errors.New("filter_value is required when filter_variable is set")}
	}
	return nil
}

// Params returns the query parameters for the set fields only.
func (o SearchOptions) Params() map[string]string {
	p := make(map[string]string)
	set := func(k, v string) {
		if v != "" {
			p[k] = v
		}
	}
	set("search_text", o.SearchText)
	set("search_type", o.SearchType)
	set("tag_names", o.TagNames)
	set("exclude_tag_names", o.ExcludeTagNames)
	if o.Limit > 0 {
		p["limit"] = strconv.Itoa(o.Limit)
	}
	if o.Offset > 0 {
		p["offset"] = strconv.Itoa(o.Offset)
	}
	set("order_by", o.OrderBy)
	set("sort_order", o.SortOrder)
	set("filter_variable", o.FilterVariable)
	set("filter_value", o.FilterValue)
	return p
}

type searchSummary struct {
	TotalCount int             `json:"total_count"`
	Showing    string          `json:"showing"`
	Series     []seriesSummary `json:"series"`
}

// SeriesSearch runs a series search and returns the total count, the page
// range, and a summary per series with notes cut to 200 characters.
func (s *Service) SeriesSearch(ctx context.Context, opts SearchOptions) ([]types.TextContent, error) {
	res, err := s.search(ctx, opts)
	if err != nil {
		return nil, wrapOp(OpSeriesSearch, err)
	}

	out := searchSummary{
		TotalCount: res.Count,
		Showing:    showing(res.Offset, res.Limit, res.Count),
		Series:     make([]seriesSummary, 0, len(res.Series)),
	}
	for _, r := range res.Series {
		out.Series = append(out.Series, summarize(r, searchNotesLimit))
	}

	content, err := render(out)
	if err != nil {
		return nil, wrapOp(OpSeriesSearch, err)
	}
	return content, nil
}

// search validates opts, fetches series/search, and validates the response.
func (s *Service) search(ctx context.Context, opts SearchOptions) (*types.SearchResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	body, err := s.fetch(ctx, pathSeriesSearch, opts.Params())
	if err != nil {
		return nil, err
	}
	res, err := decodeSearch(body)
	if err != nil {
		return nil, err
	}
	s.log.Debug().
		Str("search_text", opts.SearchText).
		Str("filter_value", opts.FilterValue).
		Int("count", res.Count).
		Int("returned", len(res.Series)).
		Msg("series search")
	return res, nil
}
