package marketdesk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrencyOf(t *testing.T) {
	testCases := []struct {
		exchange string
		want     string
	}{
		{"NASDAQ", "$"},
		{"", "$"},
		{"MARS", "$"},
		{"LSE", "£"},
		{"XETRA", "€"},
		{"Euronext Paris", "€"},
		{"HKSE", "HK$"},
		{"hong kong", "HK$"},
		{"JPX", "¥"},
		{"KRX", "₩"},
		{"NSE", "₹"},
		{"ASX", "A$"},
		{"TSX", "C$"},
		{"B3", "R$"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, CurrencyOf(tc.exchange).Symbol, "CurrencyOf(%q)", tc.exchange)
	}
}

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		money Money
		want  string
	}{
		{Dollars(1234.56), "$1,234.56"},
		{Dollars(-1234.56), "-$1,234.56"},
		{Dollars(0.005), "$0.01"},
		{M(26551.2, CurrencyOf("LSE")), "£26,551.20"},
		{M(-72.8, CurrencyOf("HKEX")), "-HK$72.80"},
		{M(1500, CurrencyOf("JPX")), "¥1,500"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, tc.money.String())
	}
}

func TestMoney_SignedString(t *testing.T) {
	assert.Equal(t, "+$12.00", Dollars(12).SignedString())
	assert.Equal(t, "-$12.00", Dollars(-12).SignedString())
	assert.Equal(t, "-", Dollars(0).SignedString())
}

func TestFormatMarketCap(t *testing.T) {
	assert.Equal(t, "N/A", FormatMarketCap(nil, USD))
	assert.Equal(t, "$2.95T", FormatMarketCap(ptr(2.95e12), USD))
	assert.Equal(t, "$15.20B", FormatMarketCap(ptr(15.2e9), USD))
	assert.Equal(t, "€350.00M", FormatMarketCap(ptr(350e6), CurrencyOf("XETRA")))
}

func TestFormatVolume(t *testing.T) {
	assert.Equal(t, "1.20B", FormatVolume(1.2e9))
	assert.Equal(t, "45.67M", FormatVolume(45_670_000))
	assert.Equal(t, "12.50K", FormatVolume(12_500))
	assert.Equal(t, "999", FormatVolume(999))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "12.50%", Percent(12.5).String())
	assert.Equal(t, "+12.50%", Percent(12.5).SignedString())
	assert.Equal(t, "-0.27%", Percent(-0.2734).SignedString())
	assert.Equal(t, "+0.00%", Percent(0).SignedString())
	assert.True(t, Percent(1.00001).Equal(1))
	assert.Equal(t, "-", OptionalPercent(nil))
	assert.Equal(t, "28.40", Ratio(ptr(28.4)))
}
