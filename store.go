package marketdesk

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultWatchlist is the name of the watchlist used when none is given.
const DefaultWatchlist = "default"

// Watchlists maps a watchlist name to its ordered symbols.
type Watchlists map[string][]Symbol

// HoldingRecord is a persisted holding: a share count and the total amount paid for it.
type HoldingRecord struct {
	Shares    float64 `json:"shares"`
	TotalCost float64 `json:"total_cost"`
}

// UnmarshalJSON reads the total_cost schema, and the legacy per-share cost_basis
// schema converted to a total cost.
func (h *HoldingRecord) UnmarshalJSON(data []byte) error {
	var raw struct {
		Shares    float64  `json:"shares"`
		TotalCost *float64 `json:"total_cost"`
		CostBasis *float64 `json:"cost_basis"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	h.Shares = raw.Shares
	switch {
	case raw.TotalCost != nil:
		h.TotalCost = *raw.TotalCost
	case raw.CostBasis != nil:
		h.TotalCost = raw.Shares * *raw.CostBasis
	default:
		h.TotalCost = 0
	}
	return nil
}

// Holdings maps a symbol to its holding record.
type Holdings map[Symbol]HoldingRecord

// UnmarshalJSON normalizes the symbols. Records whose symbols only differ by case or
// spacing are merged: their shares and total costs add up.
func (h *Holdings) UnmarshalJSON(data []byte) error {
	var raw map[string]HoldingRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*h = nil
		return nil
	}
	out := make(Holdings, len(raw))
	for key, rec := range raw {
		symbol := NewSymbol(key)
		merged := out[symbol]
		merged.Shares += rec.Shares
		merged.TotalCost += rec.TotalCost
		out[symbol] = merged
	}
	*h = out
	return nil
}

// Symbols returns the held symbols.
func (h Holdings) Symbols() []Symbol {
	out := make([]Symbol, 0, len(h))
	for s := range h {
		out = append(out, s)
	}
	return out
}

// WatchlistSource loads and saves watchlists.
type WatchlistSource interface {
	Load() Watchlists
	Save(Watchlists) error
}

// HoldingSource loads and saves holdings.
type HoldingSource interface {
	Load() Holdings
	Save(Holdings) error
}

// WatchlistStore persists watchlists to a JSON file.
type WatchlistStore struct {
	path string
}

func NewWatchlistStore(path string) *WatchlistStore { return &WatchlistStore{path: path} }

// Load returns the stored watchlists. A missing, unreadable or malformed file returns
// the single empty "default" watchlist.
func (s *WatchlistStore) Load() Watchlists {
	var w Watchlists
	if err := readJSON(s.path, &w); err != nil || w == nil {
		return Watchlists{DefaultWatchlist: {}}
	}
	for name, symbols := range w {
		if symbols == nil {
			w[name] = []Symbol{}
		}
	}
	return w
}

// Save rewrites the whole file.
func (s *WatchlistStore) Save(w Watchlists) error { return writeJSON(s.path, w) }

// Exists reports whether the file exists.
func (s *WatchlistStore) Exists() bool { return exists(s.path) }

// PortfolioStore persists holdings to a JSON file.
type PortfolioStore struct {
	path string
}

func NewPortfolioStore(path string) *PortfolioStore { return &PortfolioStore{path: path} }

// Load returns the stored holdings. A missing, unreadable or malformed file returns
// an empty map.
func (s *PortfolioStore) Load() Holdings {
	var h Holdings
	if err := readJSON(s.path, &h); err != nil || h == nil {
		return Holdings{}
	}
	return h
}

// Save rewrites the whole file.
func (s *PortfolioStore) Save(h Holdings) error { return writeJSON(s.path, h) }

// Exists reports whether the file exists.
func (s *PortfolioStore) Exists() bool { return exists(s.path) }

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	// a top level that is not an object fails to decode into a map.
	return json.Unmarshal(data, v)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create data directory: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}
