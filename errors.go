package marketdesk

import (
	"errors"
	"fmt"
	"strings"
)

// SymbolNotFoundError is returned when a provider has no data for a singular entity
// (quote, profile, ratios, key metrics).
type SymbolNotFoundError struct {
	Symbol Symbol
}

func (e *SymbolNotFoundError) Error() string { return fmt.Sprintf("symbol not found: %s", e.Symbol) }

// RateLimitError is returned when a provider answers with HTTP 429. It is never retried.
type RateLimitError struct {
	Provider string
}

func (e *RateLimitError) Error() string {
	if e.Provider == "" {
		return "rate limit exceeded"
	}
	return fmt.Sprintf("%s: rate limit exceeded", e.Provider)
}

// GatewayError is any other non-success outcome of a provider call.
type GatewayError struct {
	Message    string
	StatusCode int
}

func (e *GatewayError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// ErrNotFound is matched by errors about local store misses.
var ErrNotFound = errors.New("not found")

// HoldingNotFoundError is returned when removing or updating a symbol absent from the portfolio.
type HoldingNotFoundError struct {
	Symbol Symbol
}

func (e *HoldingNotFoundError) Error() string {
	return fmt.Sprintf("symbol %s not found in portfolio", e.Symbol)
}

func (e *HoldingNotFoundError) Unwrap() error { return ErrNotFound }

// InvalidPeriodError is returned for unsupported period tokens.
type InvalidPeriodError struct {
	Period string
	Valid  []string
}

func (e *InvalidPeriodError) Error() string {
	return fmt.Sprintf("invalid period: %s. Valid: %s", e.Period, strings.Join(e.Valid, ", "))
}

// ErrSessionClosed is returned by gateways used outside of an Open/Close scope.
var ErrSessionClosed = errors.New("session is not open")

// BatchError is returned by FetchAll when every fetch failed and at least one failure
// was not a SymbolNotFoundError.
type BatchError struct {
	Errs []error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("all %d fetches failed: %v", len(e.Errs), errors.Join(e.Errs...))
}

func (e *BatchError) Unwrap() []error { return e.Errs }

// IsNotFound reports whether err means "no data for this symbol".
func IsNotFound(err error) bool {
	var nf *SymbolNotFoundError
	return errors.As(err, &nf)
}
