package date

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// ToDate returns the range from the start of d's period up to d.
func ToDate(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d}
}

// LastDays returns the range covering the n days before d, and d.
func LastDays(d Date, n int) Range {
	return Range{From: d.Add(-n), To: d}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }
