package pricing

// DiscountType selects how DiscountValue is interpreted.
type DiscountType string

const (
	DiscountNone       DiscountType = "none"
	DiscountPercentage DiscountType = "percentage"
	DiscountAmount     DiscountType = "amount"
)

// Valid reports whether t is a known discount type.
func (t DiscountType) Valid() bool {
	switch t {
	case DiscountNone, DiscountPercentage, DiscountAmount:
		return true
	}
	return false
}

// ApplyDiscount returns base reduced by the given discount, floored at zero.
// Negative discount values are the caller's responsibility to reject; the
// form layer validates them before they reach this package.
func ApplyDiscount(base float64, typ DiscountType, value float64) float64 {
	var out float64
	switch typ {
	case DiscountPercentage:
		out = base - base*value/100
	case DiscountAmount:
		out = base - value
	default:
		out = base
	}
	if out < 0 {
		return 0
	}
	return out
}

// discountTotal computes the total discount over an order of quantity units,
// each priced at perUnit. A percentage discount applies to the order total;
// a fixed amount discount applies once to the whole order, not per unit.
func discountTotal(perUnit float64, quantity int, typ DiscountType, value float64) float64 {
	orderTotal := perUnit * float64(quantity)
	switch typ {
	case DiscountPercentage:
		return orderTotal * value / 100
	case DiscountAmount:
		return value
	default:
		return 0
	}
}
