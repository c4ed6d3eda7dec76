package date

import (
	"fmt"
	"strings"
)

// Period is a calendar period used to compute "to-date" boundaries.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		return fmt.Sprintf("period(%d)", int(p))
	}
}

// ToDateName returns the short "-to-date" label for the period (e.g., "MTD").
func (p Period) ToDateName() string {
	switch p {
	case Daily:
		return "1D"
	case Weekly:
		return "WTD"
	case Monthly:
		return "MTD"
	case Quarterly:
		return "QTD"
	case Yearly:
		return "YTD"
	default:
		return p.String()
	}
}

var periodNames = map[string]Period{
	"daily": Daily, "day": Daily, "1d": Daily,
	"weekly": Weekly, "week": Weekly, "wtd": Weekly,
	"monthly": Monthly, "month": Monthly, "mtd": Monthly,
	"quarterly": Quarterly, "quarter": Quarterly, "qtd": Quarterly,
	"yearly": Yearly, "year": Yearly, "ytd": Yearly,
}

// ParsePeriod reads a period name ("monthly"), its short form ("month") or its
// to-date label ("MTD"), case insensitive.
func ParsePeriod(s string) (Period, error) {
	p, ok := periodNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Daily, fmt.Errorf("unknown period %q want daily, weekly, monthly, quarterly or yearly", s)
	}
	return p, nil
}
