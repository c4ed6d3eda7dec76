package marketdesk

// Region groups world indices for display.
type Region struct {
	Name    string
	Indices []Symbol
}

// WorldRegions lists the tracked world equity indices.
var WorldRegions = []Region{
	{"US Markets", Symbols("^GSPC", "^DJI", "^IXIC", "^RUT")},
	{"Europe", Symbols("^FTSE", "^GDAXI", "^FCHI", "^STOXX50E", "^IBEX", "^AEX")},
	{"Asia-Pacific", Symbols("^N225", "^HSI", "^KS11", "^AXJO", "^BSESN", "^TWII", "^STI")},
}

// WorldIndices returns all index symbols of WorldRegions.
func WorldIndices() []Symbol {
	var out []Symbol
	for _, r := range WorldRegions {
		out = append(out, r.Indices...)
	}
	return out
}

var indexNames = map[Symbol]string{
	"^GSPC":     "S&P 500",
	"^DJI":      "Dow Jones",
	"^IXIC":     "NASDAQ",
	"^RUT":      "Russell 2000",
	"^FTSE":     "FTSE 100",
	"^GDAXI":    "DAX",
	"^FCHI":     "CAC 40",
	"^STOXX50E": "Euro STOXX",
	"^IBEX":     "IBEX 35",
	"^AEX":      "AEX",
	"^N225":     "Nikkei 225",
	"^HSI":      "Hang Seng",
	"^KS11":     "KOSPI",
	"^AXJO":     "ASX 200",
	"^BSESN":    "Sensex",
	"^TWII":     "Taiwan",
	"^STI":      "Singapore",
}

// IndexName returns the display name of an index, or the symbol itself.
func IndexName(s Symbol) string {
	if name, ok := indexNames[s]; ok {
		return name
	}
	return string(s)
}

// ForexETFs are currency ETFs used as a forex proxy.
var ForexETFs = []Symbol{"FXE", "FXY", "FXB", "FXC", "FXA", "UUP"}

var forexNames = map[Symbol]string{
	"FXE": "Euro",
	"FXY": "Japanese Yen",
	"FXB": "British Pound",
	"FXC": "Canadian Dollar",
	"FXA": "Australian Dollar",
	"UUP": "US Dollar Index",
}

// ForexName returns the currency tracked by a currency ETF.
func ForexName(s Symbol) string {
	if name, ok := forexNames[s]; ok {
		return name
	}
	return string(s)
}

// Maturity is a point of the treasury yield curve.
type Maturity struct {
	Label string // "10Y"
	Name  string // "10 Year"
}

// Maturities of the treasury curve, shortest first.
var Maturities = []Maturity{
	{"1M", "1 Month"},
	{"3M", "3 Month"},
	{"6M", "6 Month"},
	{"1Y", "1 Year"},
	{"2Y", "2 Year"},
	{"5Y", "5 Year"},
	{"10Y", "10 Year"},
	{"30Y", "30 Year"},
}

// TreasuryRates is one day of the treasury yield curve, in percent, keyed by maturity label.
type TreasuryRates struct {
	Date   string
	Yields map[string]float64
}

// Yield returns the yield for a maturity label.
func (t TreasuryRates) Yield(label string) (float64, bool) {
	v, ok := t.Yields[label]
	return v, ok
}

// TreasuryCurve is the current curve and the previous one when available.
type TreasuryCurve struct {
	Current  TreasuryRates
	Previous *TreasuryRates
}

// ChangeBP returns the change in basis points of a maturity since the previous day.
func (c TreasuryCurve) ChangeBP(label string) (float64, bool) {
	if c.Previous == nil {
		return 0, false
	}
	cur, ok := c.Current.Yield(label)
	if !ok {
		return 0, false
	}
	prev, ok := c.Previous.Yield(label)
	if !ok {
		return 0, false
	}
	return (cur - prev) * 100, true
}

// Spread10Y2Y returns the 10Y minus 2Y spread in percent.
func (c TreasuryCurve) Spread10Y2Y() (float64, bool) {
	y10, ok := c.Current.Yield("10Y")
	if !ok {
		return 0, false
	}
	y2, ok := c.Current.Yield("2Y")
	if !ok {
		return 0, false
	}
	return y10 - y2, true
}
