/*
Package marketdesk is the core of a terminal market-data desk.

It joins quotes, period price changes and valuation ratios from a market data
gateway into watchlist entries, and values a portfolio of holdings with gain/loss
and 1D, MTD and YTD performance.

# Holdings

A holding is persisted as a share count and the total cost paid for those shares:

	{"AAPL": {"shares": 80, "total_cost": 26624.00}}

The total cost is an absolute amount, never a per-share price. Adding shares to an
existing holding adds both the shares and the cost:

	p.Add("AAPL", 10, 3500) // shares 90, total_cost 30124

# Batches

Every multi-symbol fetch goes through [FetchAll]: requests are issued concurrently
and individual failures are dropped. Callers must re-key results by [Symbol] since
the result order follows completion.

# Gateways

The [Gateway] interface is implemented by the fmp package. Bonds, economic
indicators and prediction markets come from the eodhd, fred and kalshi packages.
*/
package marketdesk
