package marketdesk

import "strings"

// Profile is a company profile.
type Profile struct {
	Symbol       Symbol   `json:"symbol"`
	CompanyName  string   `json:"companyName"`
	Exchange     string   `json:"exchange"`
	Industry     string   `json:"industry"`
	Sector       string   `json:"sector"`
	Description  string   `json:"description"`
	CEO          string   `json:"ceo"`
	Website      string   `json:"website"`
	MarketCap    *float64 `json:"marketCap"`
	Price        float64  `json:"price"`
	Beta         *float64 `json:"beta"`
	AvgVolume    *float64 `json:"averageVolume"`
	LastDividend *float64 `json:"lastDividend"`
	DCF          *float64 `json:"dcf"`
	Country      string   `json:"country"`
	City         string   `json:"city"`
	Employees    *string  `json:"fullTimeEmployees"`
	IPODate      *string  `json:"ipoDate"`
}

// Ratios are trailing twelve month financial ratios.
type Ratios struct {
	Symbol                Symbol   `json:"symbol"`
	GrossProfitMargin     *float64 `json:"grossProfitMarginTTM"`
	OperatingProfitMargin *float64 `json:"operatingProfitMarginTTM"`
	NetProfitMargin       *float64 `json:"netProfitMarginTTM"`
	ReturnOnAssets        *float64 `json:"returnOnAssetsTTM"`
	ReturnOnEquity        *float64 `json:"returnOnEquityTTM"`
	CurrentRatio          *float64 `json:"currentRatioTTM"`
	QuickRatio            *float64 `json:"quickRatioTTM"`
	CashRatio             *float64 `json:"cashRatioTTM"`
	InventoryTurnover     *float64 `json:"inventoryTurnoverTTM"`
	ReceivablesTurnover   *float64 `json:"receivablesTurnoverTTM"`
	AssetTurnover         *float64 `json:"assetTurnoverTTM"`
	PE                    *float64 `json:"priceToEarningsRatioTTM"`
	PEG                   *float64 `json:"priceToEarningsGrowthRatioTTM"`
	PriceToBook           *float64 `json:"priceToBookRatioTTM"`
	PriceToSales          *float64 `json:"priceToSalesRatioTTM"`
	DebtRatio             *float64 `json:"debtRatioTTM"`
	DebtToEquity          *float64 `json:"debtEquityRatioTTM"`
	InterestCoverage      *float64 `json:"interestCoverageTTM"`
	DividendYield         *float64 `json:"dividendYieldTTM"`
	PayoutRatio           *float64 `json:"payoutRatioTTM"`
}

// KeyMetrics are trailing twelve month key metrics.
type KeyMetrics struct {
	Symbol                    Symbol   `json:"symbol"`
	MarketCap                 *float64 `json:"marketCap"`
	EnterpriseValue           *float64 `json:"enterpriseValueTTM"`
	EVToSales                 *float64 `json:"evToSalesTTM"`
	EVToEBITDA                *float64 `json:"evToEBITDATTM"`
	EVToOperatingCashFlow     *float64 `json:"evToOperatingCashFlowTTM"`
	EVToFreeCashFlow          *float64 `json:"evToFreeCashFlowTTM"`
	NetDebtToEBITDA           *float64 `json:"netDebtToEBITDATTM"`
	CurrentRatio              *float64 `json:"currentRatioTTM"`
	ROE                       *float64 `json:"returnOnEquityTTM"`
	ROA                       *float64 `json:"returnOnAssetsTTM"`
	ROIC                      *float64 `json:"returnOnInvestedCapitalTTM"`
	RevenuePerShare           *float64 `json:"revenuePerShareTTM"`
	BookValuePerShare         *float64 `json:"bookValuePerShareTTM"`
	TangibleBookValuePerShare *float64 `json:"tangibleBookValuePerShareTTM"`
	FreeCashFlowPerShare      *float64 `json:"freeCashFlowPerShareTTM"`
	WorkingCapital            *float64 `json:"workingCapitalTTM"`
	InvestedCapital           *float64 `json:"investedCapitalTTM"`
	GrahamNumber              *float64 `json:"grahamNumberTTM"`
}

// StatementPeriod selects annual or quarterly financial statements.
type StatementPeriod string

const (
	Annual    StatementPeriod = "annual"
	Quarterly StatementPeriod = "quarter"
)

// ParseStatementPeriod parses "annual" or "quarter" (also "quarterly", "q", "a").
func ParseStatementPeriod(s string) (StatementPeriod, error) {
	switch strings.ToLower(s) {
	case "annual", "a", "":
		return Annual, nil
	case "quarter", "quarterly", "q":
		return Quarterly, nil
	default:
		return "", &InvalidPeriodError{Period: s, Valid: []string{string(Annual), string(Quarterly)}}
	}
}

// StatementKind names the three financial statements.
type StatementKind string

const (
	Income   StatementKind = "income"
	Balance  StatementKind = "balance"
	CashFlow StatementKind = "cashflow"
)

// ParseStatementKind parses a statement name.
func ParseStatementKind(s string) (StatementKind, error) {
	switch strings.ToLower(s) {
	case "income", "is":
		return Income, nil
	case "balance", "bs":
		return Balance, nil
	case "cashflow", "cash-flow", "cf":
		return CashFlow, nil
	default:
		return "", &InvalidPeriodError{Period: s, Valid: []string{string(Income), string(Balance), string(CashFlow)}}
	}
}

// statementHeader is shared by all statements.
type statementHeader struct {
	Date       string  `json:"date"`
	Symbol     Symbol  `json:"symbol"`
	Period     string  `json:"period"`
	FiscalYear *string `json:"fiscalYear"`
}

// Label names the statement period, like "FY 2024" or "Q3 2024", or its date.
func (h statementHeader) Label() string {
	if h.FiscalYear == nil || h.Period == "" {
		return h.Date
	}
	return h.Period + " " + *h.FiscalYear
}

// IncomeStatement is one period of an income statement.
type IncomeStatement struct {
	statementHeader
	Revenue           *float64 `json:"revenue"`
	CostOfRevenue     *float64 `json:"costOfRevenue"`
	GrossProfit       *float64 `json:"grossProfit"`
	OperatingExpenses *float64 `json:"operatingExpenses"`
	OperatingIncome   *float64 `json:"operatingIncome"`
	IncomeBeforeTax   *float64 `json:"incomeBeforeTax"`
	NetIncome         *float64 `json:"netIncome"`
	EPS               *float64 `json:"eps"`
	EPSDiluted        *float64 `json:"epsDiluted"`
	EBITDA            *float64 `json:"ebitda"`
}

// BalanceSheet is one period of a balance sheet.
type BalanceSheet struct {
	statementHeader
	TotalAssets                *float64 `json:"totalAssets"`
	TotalCurrentAssets         *float64 `json:"totalCurrentAssets"`
	CashAndEquivalents         *float64 `json:"cashAndCashEquivalents"`
	ShortTermInvestments       *float64 `json:"shortTermInvestments"`
	NetReceivables             *float64 `json:"netReceivables"`
	Inventory                  *float64 `json:"inventory"`
	TotalNonCurrentAssets      *float64 `json:"totalNonCurrentAssets"`
	PropertyPlantEquipment     *float64 `json:"propertyPlantEquipmentNet"`
	Goodwill                   *float64 `json:"goodwill"`
	IntangibleAssets           *float64 `json:"intangibleAssets"`
	TotalLiabilities           *float64 `json:"totalLiabilities"`
	TotalCurrentLiabilities    *float64 `json:"totalCurrentLiabilities"`
	AccountsPayable            *float64 `json:"accountPayables"`
	ShortTermDebt              *float64 `json:"shortTermDebt"`
	TotalNonCurrentLiabilities *float64 `json:"totalNonCurrentLiabilities"`
	LongTermDebt               *float64 `json:"longTermDebt"`
	TotalStockholdersEquity    *float64 `json:"totalStockholdersEquity"`
	RetainedEarnings           *float64 `json:"retainedEarnings"`
	CommonStock                *float64 `json:"commonStock"`
	TotalDebt                  *float64 `json:"totalDebt"`
	NetDebt                    *float64 `json:"netDebt"`
}

// CashFlowStatement is one period of a cash flow statement.
type CashFlowStatement struct {
	statementHeader
	NetIncome                *float64 `json:"netIncome"`
	DepreciationAmortization *float64 `json:"depreciationAndAmortization"`
	StockBasedCompensation   *float64 `json:"stockBasedCompensation"`
	ChangeInWorkingCapital   *float64 `json:"changeInWorkingCapital"`
	OperatingCashFlow        *float64 `json:"operatingCashFlow"`
	CapitalExpenditure       *float64 `json:"capitalExpenditure"`
	Acquisitions             *float64 `json:"acquisitionsNet"`
	PurchasesOfInvestments   *float64 `json:"purchasesOfInvestments"`
	SalesOfInvestments       *float64 `json:"salesMaturitiesOfInvestments"`
	InvestingCashFlow        *float64 `json:"netCashProvidedByInvestingActivities"`
	DebtRepayment            *float64 `json:"netDebtIssuance"`
	StockRepurchased         *float64 `json:"commonStockRepurchased"`
	DividendsPaid            *float64 `json:"netDividendsPaid"`
	FinancingCashFlow        *float64 `json:"netCashProvidedByFinancingActivities"`
	NetChangeInCash          *float64 `json:"netChangeInCash"`
	FreeCashFlow             *float64 `json:"freeCashFlow"`
}
