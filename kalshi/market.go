package kalshi

import (
	"fmt"
	"strconv"
)

// Market is a binary prediction market. Prices are in cents.
type Market struct {
	Ticker        string  `json:"ticker"`
	Title         string  `json:"title"`
	Status        string  `json:"status"`
	YesBid        *int    `json:"yes_bid"`
	NoBid         *int    `json:"no_bid"`
	YesAsk        *int    `json:"yes_ask"`
	NoAsk         *int    `json:"no_ask"`
	LastPrice     *int    `json:"last_price"`
	PreviousPrice *int    `json:"previous_price"`
	Volume24h     int     `json:"volume_24h"`
	OpenInterest  *int    `json:"open_interest"`
	CloseTime     *string `json:"close_time"`
	SeriesTicker  string  `json:"series_ticker"`
}

func dollars(cents *int) (float64, bool) {
	if cents == nil {
		return 0, false
	}
	return float64(*cents) / 100, true
}

// YesPrice returns the yes bid in dollars.
func (m Market) YesPrice() (float64, bool) { return dollars(m.YesBid) }

// NoPrice returns the no bid in dollars.
func (m Market) NoPrice() (float64, bool) { return dollars(m.NoBid) }

// LastPriceDollars returns the last traded price in dollars.
func (m Market) LastPriceDollars() (float64, bool) { return dollars(m.LastPrice) }

// ChangeCents is the last price minus the previous price, 0 when either is unknown.
func (m Market) ChangeCents() int {
	if m.LastPrice == nil || m.PreviousPrice == nil {
		return 0
	}
	return *m.LastPrice - *m.PreviousPrice
}

// Direction returns "up", "down" or "neutral" according to ChangeCents.
func (m Market) Direction() string {
	switch c := m.ChangeCents(); {
	case c > 0:
		return "up"
	case c < 0:
		return "down"
	default:
		return "neutral"
	}
}

// FormatCents formats a price like "62c", or "-" when unknown.
func FormatCents(cents *int) string {
	if cents == nil {
		return "-"
	}
	return strconv.Itoa(*cents) + "c"
}

// FormatChange formats the change with its sign, like "+3c".
func FormatChange(m Market) string {
	if c := m.ChangeCents(); c > 0 {
		return fmt.Sprintf("+%dc", c)
	} else if c < 0 {
		return fmt.Sprintf("%dc", c)
	}
	return "0c"
}

// FormatVolume formats a contract count like "1.2M" or "3.4K".
func FormatVolume(volume int) string {
	switch {
	case volume >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(volume)/1_000_000)
	case volume >= 1_000:
		return fmt.Sprintf("%.1fK", float64(volume)/1_000)
	default:
		return strconv.Itoa(volume)
	}
}
