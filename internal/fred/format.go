// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fred

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/fred-engine/pkg/types"
)

// Notes limits, in characters, for the two list views. Series info is untruncated.
const (
	searchNotesLimit    = 200
	indicatorNotesLimit = 150
)

const ellipsis = "..."

// seriesSummary is the per-series view shared by all three operations.
type seriesSummary struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Units              string `json:"units"`
	Frequency          string `json:"frequency"`
	SeasonalAdjustment string `json:"seasonal_adjustment"`
	ObservationRange   string `json:"observation_range"`
	LastUpdated        string `json:"last_updated"`
	Popularity         int    `json:"popularity"`
	Notes              string `json:"notes,omitempty"`
}

// summarize builds the view of r. A notesLimit of zero keeps notes whole.
func summarize(r types.SeriesRecord, notesLimit int) seriesSummary {
	notes := r.Notes
	if notesLimit > 0 {
		notes = truncateNotes(notes, notesLimit)
	}
	return seriesSummary{
		ID:                 r.ID,
		Title:              r.Title,
		Units:              r.Units,
		Frequency:          r.Frequency,
		SeasonalAdjustment: r.SeasonalAdjustment,
		ObservationRange:   observationRange(r),
		LastUpdated:        r.LastUpdated,
		Popularity:         r.Popularity,
		Notes:              notes,
	}
}

func observationRange(r types.SeriesRecord) string {
	return r.ObservationStart + " to " + r.ObservationEnd
}

// truncateNotes keeps the first limit characters of notes and appends an
// ellipsis only when something was cut.
func truncateNotes(notes string, limit int) string {
	runes := []rune(notes)
	if len(runes) <= limit {
		return notes
	}
	return string(runes[:limit]) + ellipsis
}

// showingRange returns the 1-based first and last positions of a page.
func showingRange(offset, limit, count int) (from, to int) {
	return offset + 1, min(offset+limit, count)
}

func showing(offset, limit, count int) string {
	from, to := showingRange(offset, limit, count)
	return fmt.Sprintf("%d-%d of %d", from, to, count)
}

// render encodes v as indented JSON inside a single text block.
func render(v any) ([]types.TextContent, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}
	return []types.TextContent{types.NewTextContent(strings.TrimSuffix(buf.String(), "\n"))}, nil
}
