package marketdesk

import "fmt"

type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString always prints the sign, positive and zero as "+".
func (p Percent) SignedString() string {
	return fmt.Sprintf("%+.2f%%", float64(p))
}

// OptionalPercent formats an optional percent, "-" when absent.
func OptionalPercent(v *float64) string {
	if v == nil {
		return "-"
	}
	return Percent(*v).SignedString()
}

// Ratio formats an optional plain ratio with two decimals, "-" when absent.
func Ratio(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}
