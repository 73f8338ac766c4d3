package money

import "fmt"

// Money is a currency amount stored as an integer count of minor units
// (cents). All arithmetic stays in integer space so sums and totals never
// drift the way float64 math does.
type Money int64

// FromCents wraps a raw minor-unit count.
func FromCents(cents int64) Money {
	return Money(cents)
}

// Cents returns the raw minor-unit count.
func (m Money) Cents() int64 {
	return int64(m)
}

func (m Money) Add(other Money) Money {
	return m + other
}

func (m Money) Sub(other Money) Money {
	return m - other
}

// MulQty multiplies the amount by an integer quantity. Quantity must be
// non-negative; callers validate before computing totals.
func (m Money) MulQty(qty int64) Money {
	return Money(int64(m) * qty)
}

func (m Money) IsNegative() bool {
	return m < 0
}

// String formats the amount as major.minor, e.g. 3500 -> "35.00".
// Negative amounts keep the sign on the major part.
func (m Money) String() string {
	cents := int64(m)
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
