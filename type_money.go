package marketdesk

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a monetary amount for display.
//
// Arithmetic on holdings stays in float64, Money only rounds and formats.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   Currency
}

// M returns value in the currency cur.
func M(value float64, cur Currency) Money {
	return Money{value: decimal.NewFromFloat(value), cur: cur}
}

// Dollars returns value in USD.
func Dollars(value float64) Money { return M(value, USD) }

// currency returns the go-money currency for the ISO code.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur.Code).Currency()
}

// String formats the amount with the currency symbol, e.g. "-$1,234.56".
func (m Money) String() string {
	cur := m.currency()
	f := money.NewFormatter(cur.Fraction, ".", ",", m.cur.Symbol, "$1")
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return f.Format(dec.IntPart())
}

func (m Money) Currency() Currency { return m.cur }
func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) IsPositive() bool   { return m.value.IsPositive() }
func (m Money) IsNegative() bool   { return m.value.IsNegative() }
func (m Money) Float() float64     { return m.value.InexactFloat64() }

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.value.Round(int32(m.currency().Fraction)).IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// Compact formats large amounts with a T, B or M suffix, e.g. "$2.95T".
func (m Money) Compact() string {
	v := m.value.InexactFloat64()
	abs := math.Abs(v)
	sign := ""
	if v < 0 {
		sign = "-"
	}
	switch {
	case abs >= 1e12:
		return fmt.Sprintf("%s%s%.2fT", sign, m.cur.Symbol, abs/1e12)
	case abs >= 1e9:
		return fmt.Sprintf("%s%s%.2fB", sign, m.cur.Symbol, abs/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%s%s%.2fM", sign, m.cur.Symbol, abs/1e6)
	default:
		return M(math.Round(v), m.cur).String()
	}
}

// FormatMarketCap formats an optional market cap, "N/A" when absent.
func FormatMarketCap(v *float64, cur Currency) string {
	if v == nil {
		return "N/A"
	}
	return M(*v, cur).Compact()
}

// FormatVolume formats a share volume with a B, M or K suffix.
func FormatVolume(v float64) string {
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.2fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.2fK", v/1e3)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
