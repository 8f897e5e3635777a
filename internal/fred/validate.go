// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fred

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pdiddy/fred-engine/pkg/types"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// Report fields by their JSON names so messages match the payload.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// Wire shapes. Pointer fields distinguish a missing key from a zero value:
// required on a pointer fails only when the key is absent or null.

type wireSeries struct {
	ID                      *string `json:"id" validate:"required"`
	Title                   *string `json:"title" validate:"required"`
	ObservationStart        *string `json:"observation_start" validate:"required"`
	ObservationEnd          *string `json:"observation_end" validate:"required"`
	Frequency               *string `json:"frequency" validate:"required"`
	FrequencyShort          *string `json:"frequency_short" validate:"required"`
	Units                   *string `json:"units" validate:"required"`
	UnitsShort              *string `json:"units_short" validate:"required"`
	SeasonalAdjustment      *string `json:"seasonal_adjustment" validate:"required"`
	SeasonalAdjustmentShort *string `json:"seasonal_adjustment_short" validate:"required"`
	LastUpdated             *string `json:"last_updated" validate:"required"`
	Popularity              *int    `json:"popularity" validate:"required"`
	Notes                   *string `json:"notes"`
}

type wireSearch struct {
	OrderBy   *string      `json:"order_by" validate:"required"`
	SortOrder *string      `json:"sort_order" validate:"required"`
	Count     *int         `json:"count" validate:"required"`
	Offset    *int         `json:"offset" validate:"required"`
	Limit     *int         `json:"limit" validate:"required"`
	Series    []wireSeries `json:"seriess" validate:"required,dive"`
}

type wireLookup struct {
	Series []wireSeries `json:"seriess" validate:"required,dive"`
}

// decodeSearch validates a series/search body and copies it out.
func decodeSearch(body []byte) (*types.SearchResult, error) {
	var w wireSearch
	if err := decodeValid("search response", body, &w); err != nil {
		return nil, err
	}
	return &types.SearchResult{
		OrderBy:   *w.OrderBy,
		SortOrder: *w.SortOrder,
		Count:     *w.Count,
		Offset:    *w.Offset,
		Limit:     *w.Limit,
		Series:    records(w.Series),
	}, nil
}

// decodeLookup validates a series lookup body and returns its records.
func decodeLookup(body []byte) ([]types.SeriesRecord, error) {
	var w wireLookup
	if err := decodeValid("series response", body, &w); err != nil {
		return nil, err
	}
	return records(w.Series), nil
}

// decodeValid unmarshals body into v and runs struct validation. Any failure
// is a *ValidationError; nothing is coerced or defaulted.
func decodeValid(subject string, body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		var ute *json.UnmarshalTypeError
		if errors.As(err, &ute) {
			field := ute.Field
			if field == "" {
				field = "document"
			}
			err = fmt.Errorf("%s must be %s, got JSON %s", field, ute.Type, ute.Value)
		}
		return &ValidationError{Subject: subject, Err: err}
	}
	if err := validate.Struct(v); err != nil {
		return &ValidationError{Subject: subject, Err: describe(err)}
	}
	return nil
}

func records(ws []wireSeries) []types.SeriesRecord {
	out := make([]types.SeriesRecord, 0, len(ws))
	for _, w := range ws {
		out = append(out, types.SeriesRecord{
			ID:                      *w.ID,
			Title:                   *w.Title,
			ObservationStart:        *w.ObservationStart,
			ObservationEnd:          *w.ObservationEnd,
			Frequency:               *w.Frequency,
			FrequencyShort:          *w.FrequencyShort,
			Units:                   *w.Units,
			UnitsShort:              *w.UnitsShort,
			SeasonalAdjustment:      *w.SeasonalAdjustment,
			SeasonalAdjustmentShort: *w.SeasonalAdjustmentShort,
			LastUpdated:             *w.LastUpdated,
			Popularity:              *w.Popularity,
			Notes:                   deref(w.Notes),
		})
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// describe flattens validator errors into one readable error.
func describe(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	msgs := make([]string, 0, len(ves))
	for _, fe := range ves {
		msgs = append(msgs, fieldMessage(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	// Drop the root struct name: "wireSearch.seriess[0].title" -> "seriess[0].title".
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
}
