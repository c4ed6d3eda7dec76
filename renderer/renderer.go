// Package renderer renders market data as markdown documents.
package renderer

import (
	"github.com/etnz/marketdesk"
)

// money formats an amount in cur.
func money(v float64, cur marketdesk.Currency) string { return marketdesk.M(v, cur).String() }

// signed formats an amount in cur with its sign, "-" when zero.
func signed(v float64, cur marketdesk.Currency) string { return marketdesk.M(v, cur).SignedString() }

func percent(v float64) string { return marketdesk.Percent(v).SignedString() }

// compact formats an optional large amount like "$2.95T", "-" when absent.
func compact(v *float64, cur marketdesk.Currency) string {
	if v == nil {
		return "-"
	}
	return marketdesk.M(*v, cur).Compact()
}

// arrow returns a direction marker for a change.
func arrow(direction string) string {
	switch direction {
	case "up":
		return "▲"
	case "down":
		return "▼"
	default:
		return "="
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
