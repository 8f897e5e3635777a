// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fred

import (
	"context"
	"errors"
	"strings"

	"github.com/pdiddy/fred-engine/pkg/types"
)

// SeriesInfo looks up one series by ID and returns its full detail with
// notes untruncated. A lookup with no match fails with a *NotFoundError.
func (s *Service) SeriesInfo(ctx context.Context, seriesID string) ([]types.TextContent, error) {
	rec, err := s.lookup(ctx, seriesID)
	if err != nil {
		return nil, wrapOp(OpSeriesInfo, err)
	}
	content, err := render(summarize(rec, 0))
	if err != nil {
		return nil, wrapOp(OpSeriesInfo, err)
	}
	return content, nil
}

// lookup returns the first record of a series lookup.
func (s *Service) lookup(ctx context.Context, seriesID string) (types.SeriesRecord, error) {
	if strings.TrimSpace(seriesID) == "" {
		return types.SeriesRecord{}, &ValidationError{Subject: "series id", Err: errors.New("must not be empty")}
	}
	body, err := s.fetch(ctx, pathSeries, map[string]string{"series_id": seriesID})
	if err != nil {
		return types.SeriesRecord{}, err
	}
	series, err := decodeLookup(body)
	if err != nil {
		return types.SeriesRecord{}, err
	}
	if len(series) == 0 {
		return types.SeriesRecord{}, &NotFoundError{SeriesID: seriesID}
	}
	s.log.Debug().Str("series_id", seriesID).Int("matches", len(series)).Msg("series lookup")
	return series[0], nil
}
