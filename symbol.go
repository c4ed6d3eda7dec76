package marketdesk

import (
	"slices"
	"strings"
)

// Symbol is an uppercase ticker, or an index code prefixed with '^'.
type Symbol string

// NewSymbol normalizes s into a Symbol.
func NewSymbol(s string) Symbol { return Symbol(strings.ToUpper(strings.TrimSpace(s))) }

// Symbols normalizes a list of tickers, preserving order and duplicates.
func Symbols(tickers ...string) []Symbol {
	out := make([]Symbol, 0, len(tickers))
	for _, t := range tickers {
		out = append(out, NewSymbol(t))
	}
	return out
}

// IsIndex returns true for index codes like ^GSPC.
func (s Symbol) IsIndex() bool { return strings.HasPrefix(string(s), "^") }

func (s Symbol) String() string { return string(s) }

// UnmarshalText normalizes symbols read from providers or from disk, as values and as map keys.
func (s *Symbol) UnmarshalText(text []byte) error {
	*s = NewSymbol(string(text))
	return nil
}

// Unique returns symbols without duplicates, keeping the first occurrence.
func Unique(symbols []Symbol) []Symbol {
	out := make([]Symbol, 0, len(symbols))
	for _, s := range symbols {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
