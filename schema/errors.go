package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the failure classes of a trajectory run.
var (
	ErrUpstreamUnavailable   = errors.New("upstream data source unavailable")
	ErrUnresolvedSelection   = errors.New("requested countries not found")
	ErrConfigurationConflict = errors.New("conflicting configuration")
	ErrInvalidSmoothing      = errors.New("invalid smoothing parameters")
	ErrEmptySeries           = errors.New("empty daily series")
)

// UnresolvedSelectionError lists requested countries that never matched,
// plus every identifier the feed did offer.
type UnresolvedSelectionError struct {
	Missing   []string
	Available []string
}

// Error implements the error interface.
func (e *UnresolvedSelectionError) Error() string {
	return fmt.Sprintf("could not find [%s]; please correct or use an alternative spelling. Available identifiers: %s",
		strings.Join(e.Missing, ", "), strings.Join(e.Available, ", "))
}

// Unwrap lets errors.Is match ErrUnresolvedSelection.
func (e *UnresolvedSelectionError) Unwrap() error {
	return ErrUnresolvedSelection
}
