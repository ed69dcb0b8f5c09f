package pricing

// PaymentMethod selects how the remaining balance is settled.
type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "cash"
	PaymentCard        PaymentMethod = "card"
	PaymentTransfer    PaymentMethod = "transfer"
	PaymentInstallment PaymentMethod = "installment"
	PaymentPromissory  PaymentMethod = "promissory_note"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer, PaymentInstallment, PaymentPromissory:
		return true
	}
	return false
}

// AllowedInstallmentCounts are the plans the clinic offers.
var AllowedInstallmentCounts = []int{3, 6, 9, 12, 18, 24}

// IsAllowedInstallmentCount reports whether n is one of the offered plans.
func IsAllowedInstallmentCount(n int) bool {
	for _, c := range AllowedInstallmentCounts {
		if n == c {
			return true
		}
	}
	return false
}

// MonthlyInstallment divides a remaining balance into count equal monthly
// payments. An unset or zero count yields zero rather than a division by zero.
func MonthlyInstallment(remaining float64, count int) float64 {
	if count <= 0 || remaining <= 0 {
		return 0
	}
	return remaining / float64(count)
}
