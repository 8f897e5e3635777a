// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fred

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/fred-engine/pkg/types"
)

// DefaultIndicatorCount is used when HighFrequencyIndicators gets n <= 0.
const DefaultIndicatorCount = 100

type indicatorSummary struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	FrequencyClass     string `json:"frequency_class"`
	Units              string `json:"units"`
	Frequency          string `json:"frequency"`
	SeasonalAdjustment string `json:"seasonal_adjustment"`
	ObservationRange   string `json:"observation_range"`
	LastUpdated        string `json:"last_updated"`
	Popularity         int    `json:"popularity"`
	Notes              string `json:"notes,omitempty"`
}

type indicatorsSummary struct {
	Description string             `json:"description"`
	TotalDaily  int                `json:"total_daily_series"`
	TotalWeekly int                `json:"total_weekly_series"`
	Showing     int                `json:"showing"`
	Indicators  []indicatorSummary `json:"indicators"`
}

// perClassLimit is ceil(n/2). Each frequency class is fetched with this
// limit regardless of how the other class ranks.
func perClassLimit(n int) int {
	return (n + 1) / 2
}

// frequencyQuery selects the most popular series of one frequency class.
func frequencyQuery(class string, limit int) SearchOptions {
	return SearchOptions{
		FilterVariable: "frequency",
		FilterValue:    class,
		OrderBy:        "popularity",
		SortOrder:      "desc",
		Limit:          limit,
	}
}

// HighFrequencyIndicators returns the n most popular Daily and Weekly series.
// Both classes are fetched concurrently with ceil(n/2) each, merged, sorted by
// popularity (stable, Daily first on ties), and cut to n. If either fetch
// fails the whole call fails.
func (s *Service) HighFrequencyIndicators(ctx context.Context, n int) ([]types.TextContent, error) {
	if n <= 0 {
		n = DefaultIndicatorCount
	}
	limit := perClassLimit(n)

	var daily, weekly *types.SearchResult
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := s.search(gctx, frequencyQuery(types.FrequencyDaily, limit))
		daily = res
		return err
	})
	g.Go(func() error {
		res, err := s.search(gctx, frequencyQuery(types.FrequencyWeekly, limit))
		weekly = res
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, wrapOp(OpHighFrequency, err)
	}

	top := mergeByPopularity(n,
		tag(daily.Series, types.FrequencyDaily),
		tag(weekly.Series, types.FrequencyWeekly),
	)
	s.log.Debug().
		Int("requested", n).
		Int("per_class", limit).
		Int("daily", len(daily.Series)).
		Int("weekly", len(weekly.Series)).
		Int("shown", len(top)).
		Msg("high-frequency indicators")

	out := indicatorsSummary{
		Description: fmt.Sprintf("Top %d most popular high-frequency (daily and weekly) indicators", n),
		TotalDaily:  daily.Count,
		TotalWeekly: weekly.Count,
		Showing:     len(top),
		Indicators:  make([]indicatorSummary, 0, len(top)),
	}
	for _, ind := range top {
		sum := summarize(ind.SeriesRecord, indicatorNotesLimit)
		out.Indicators = append(out.Indicators, indicatorSummary{
			ID:                 sum.ID,
			Title:              sum.Title,
			FrequencyClass:     ind.FrequencyClass,
			Units:              sum.Units,
			Frequency:          sum.Frequency,
			SeasonalAdjustment: sum.SeasonalAdjustment,
			ObservationRange:   sum.ObservationRange,
			LastUpdated:        sum.LastUpdated,
			Popularity:         sum.Popularity,
			Notes:              sum.Notes,
		})
	}

	content, err := render(out)
	if err != nil {
		return nil, wrapOp(OpHighFrequency, err)
	}
	return content, nil
}

func tag(records []types.SeriesRecord, class string) []types.TaggedIndicator {
	out := make([]types.TaggedIndicator, 0, len(records))
	for _, r := range records {
		out = append(out, types.TaggedIndicator{SeriesRecord: r, FrequencyClass: class})
	}
	return out
}

// mergeByPopularity concatenates the classes in order, sorts by popularity
// descending keeping concatenation order on ties, and keeps the first n.
func mergeByPopularity(n int, classes ...[]types.TaggedIndicator) []types.TaggedIndicator {
	var all []types.TaggedIndicator
	for _, c := range classes {
		all = append(all, c...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Popularity > all[j].Popularity
	})
	if len(all) > n {
		all = all[:n]
	}
	return all
}
