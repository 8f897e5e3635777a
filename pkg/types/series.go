// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for fred-engine: the series
// records returned by the FRED series endpoints, the tagged indicators built
// by the high-frequency aggregation, the text content blocks every operation
// returns, and the configuration tree.
package types

// Frequency classes queried by the high-frequency aggregation.
const (
	FrequencyDaily  = "Daily"
	FrequencyWeekly = "Weekly"
)

// SeriesRecord is one validated series from a FRED series response. Values
// are copied out of the wire payload after validation and never mutated.
type SeriesRecord struct {
	// ID is the FRED series identifier (e.g. "DGS10").
	ID string `json:"id" yaml:"id"`

	Title string `json:"title" yaml:"title"`

	// ObservationStart and ObservationEnd are YYYY-MM-DD dates as sent by FRED.
	ObservationStart string `json:"observation_start" yaml:"observation_start"`
	ObservationEnd   string `json:"observation_end" yaml:"observation_end"`

	Frequency      string `json:"frequency" yaml:"frequency"`
	FrequencyShort string `json:"frequency_short" yaml:"frequency_short"`

	Units      string `json:"units" yaml:"units"`
	UnitsShort string `json:"units_short" yaml:"units_short"`

	SeasonalAdjustment      string `json:"seasonal_adjustment" yaml:"seasonal_adjustment"`
	SeasonalAdjustmentShort string `json:"seasonal_adjustment_short" yaml:"seasonal_adjustment_short"`

	// LastUpdated is the FRED timestamp string, kept verbatim.
	LastUpdated string `json:"last_updated" yaml:"last_updated"`

	// Popularity is the FRED popularity score; higher means more used.
	Popularity int `json:"popularity" yaml:"popularity"`

	// Notes is free text and may be empty.
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// SearchResult is a validated series/search response.
type SearchResult struct {
	OrderBy   string         `json:"order_by" yaml:"order_by"`
	SortOrder string         `json:"sort_order" yaml:"sort_order"`
	Count     int            `json:"count" yaml:"count"`
	Offset    int            `json:"offset" yaml:"offset"`
	Limit     int            `json:"limit" yaml:"limit"`
	Series    []SeriesRecord `json:"seriess" yaml:"seriess"`
}

// TaggedIndicator is a SeriesRecord labelled with the frequency class it was
// fetched under ("Daily" or "Weekly").
type TaggedIndicator struct {
	SeriesRecord
	FrequencyClass string `json:"frequency_class" yaml:"frequency_class"`
}

// TextContent is a single text block returned by an operation. Text holds an
// indented JSON document.
type TextContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewTextContent returns a text block carrying s.
func NewTextContent(s string) TextContent {
	return TextContent{Type: "text", Text: s}
}
