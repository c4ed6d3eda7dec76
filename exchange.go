package marketdesk

import "strings"

// Currency is the display currency of an exchange: its ISO code and the symbol
// printed in front of amounts.
type Currency struct {
	Code   string
	Symbol string
}

// USD is the default currency.
var USD = Currency{"USD", "$"}

// exchangeCurrencies is the static exchange to currency table. It is ordered since
// partial matches return the first hit.
var exchangeCurrencies = []struct {
	exchange string
	currency Currency
}{
	{"NYSE", USD},
	{"NASDAQ", USD},
	{"AMEX", USD},
	{"NYSEArca", USD},
	{"BATS", USD},
	{"OTC", USD},
	{"JPX", Currency{"JPY", "¥"}},
	{"TSE", Currency{"JPY", "¥"}},
	{"Tokyo", Currency{"JPY", "¥"}},
	{"LSE", Currency{"GBP", "£"}},
	{"London", Currency{"GBP", "£"}},
	{"XETRA", Currency{"EUR", "€"}},
	{"Frankfurt", Currency{"EUR", "€"}},
	{"Euronext", Currency{"EUR", "€"}},
	{"Paris", Currency{"EUR", "€"}},
	{"Amsterdam", Currency{"EUR", "€"}},
	{"Brussels", Currency{"EUR", "€"}},
	{"Milan", Currency{"EUR", "€"}},
	{"SIX", Currency{"CHF", "CHF "}},
	{"Swiss", Currency{"CHF", "CHF "}},
	{"HKEX", Currency{"HKD", "HK$"}},
	{"HKSE", Currency{"HKD", "HK$"}},
	{"HKG", Currency{"HKD", "HK$"}},
	{"Hong Kong", Currency{"HKD", "HK$"}},
	{"Shanghai", Currency{"CNY", "¥"}},
	{"Shenzhen", Currency{"CNY", "¥"}},
	{"SSE", Currency{"CNY", "¥"}},
	{"SZSE", Currency{"CNY", "¥"}},
	{"KRX", Currency{"KRW", "₩"}},
	{"KSC", Currency{"KRW", "₩"}},
	{"KOSPI", Currency{"KRW", "₩"}},
	{"Korea", Currency{"KRW", "₩"}},
	{"NSE", Currency{"INR", "₹"}},
	{"BSE", Currency{"INR", "₹"}},
	{"ASX", Currency{"AUD", "A$"}},
	{"TSX", Currency{"CAD", "C$"}},
	{"Toronto", Currency{"CAD", "C$"}},
	{"SGX", Currency{"SGD", "S$"}},
	{"TWSE", Currency{"TWD", "NT$"}},
	{"Taiwan", Currency{"TWD", "NT$"}},
	{"BOVESPA", Currency{"BRL", "R$"}},
	{"B3", Currency{"BRL", "R$"}},
}

// CurrencyOf returns the display currency of an exchange code.
//
// Exact matches win, then case-insensitive partial matches in either direction.
// Unknown or empty exchanges are USD.
func CurrencyOf(exchange string) Currency {
	if exchange == "" {
		return USD
	}
	for _, e := range exchangeCurrencies {
		if e.exchange == exchange {
			return e.currency
		}
	}
	lower := strings.ToLower(exchange)
	for _, e := range exchangeCurrencies {
		key := strings.ToLower(e.exchange)
		if strings.Contains(lower, key) || strings.Contains(key, lower) {
			return e.currency
		}
	}
	return USD
}
