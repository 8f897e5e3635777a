// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fred

import (
	"errors"
	"fmt"
)

// Operation names used as the OpError prefix.
const (
	OpSeriesSearch  = "series search"
	OpHighFrequency = "high-frequency indicators"
	OpSeriesInfo    = "series info"
)

// ErrNotFound matches every NotFoundError through errors.Is.
var ErrNotFound = errors.New("series not found")

// ValidationError reports input options or a response payload that does not
// have the expected shape.
type ValidationError struct {
	// Subject names what failed, e.g. "search response" or "search options".
	Subject string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Subject, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NotFoundError reports a series lookup that matched nothing.
type NotFoundError struct {
	SeriesID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("series not found: %s", e.SeriesID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// TransportError wraps a failure returned by the Fetcher.
type TransportError struct {
	Path string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request %s: %v", e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// OpError is the single error every public operation returns. Err is one of
// *ValidationError, *NotFoundError, *TransportError, or a context error.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapOp(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Err: err}
}
