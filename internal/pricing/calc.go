package pricing

// Ear identifies which side an assignment covers. Bilateral assignments
// price two units.
type Ear string

const (
	EarLeft  Ear = "left"
	EarRight Ear = "right"
	EarBoth  Ear = "both"
)

// Valid reports whether e is a known ear side.
func (e Ear) Valid() bool {
	switch e {
	case EarLeft, EarRight, EarBoth:
		return true
	}
	return false
}

// Quantity returns the number of priced units for the side.
func (e Ear) Quantity() int {
	if e == EarBoth {
		return 2
	}
	return 1
}

// Input carries everything the calculator needs. All monetary values are TRY.
type Input struct {
	ListPrice     float64
	SGKSchemeKey  string
	DiscountType  DiscountType
	DiscountValue float64
	Ear           Ear
	DownPayment   float64
}

// Result is fully derived from Input; none of these fields are ever accepted
// from a client.
type Result struct {
	// SalePrice is the final per-unit price after subsidy and discount.
	SalePrice float64 `json:"sale_price"`
	// SGKReduction is the total subsidy over all units.
	SGKReduction float64 `json:"sgk_reduction"`
	// PatientPayment is the total owed by the patient across all units.
	PatientPayment float64 `json:"patient_payment"`
	// RemainingAmount is PatientPayment minus the down payment, floored at zero.
	RemainingAmount float64 `json:"remaining_amount"`
}

// Compute derives the full pricing result for an assignment. The order of
// operations is a business rule: subsidy reduces the per-unit price first,
// then the discount is taken over the whole order and split evenly across
// units. A non-positive list price yields an all-zero result.
func Compute(table SchemeTable, in Input) Result {
	if in.ListPrice <= 0 {
		return Result{}
	}

	quantity := in.Ear.Quantity()

	sgkPerUnit := ResolveSGK(table, in.SGKSchemeKey, in.ListPrice)

	beforeDiscount := in.ListPrice - sgkPerUnit
	if beforeDiscount < 0 {
		beforeDiscount = 0
	}

	total := discountTotal(beforeDiscount, quantity, in.DiscountType, in.DiscountValue)
	perUnitDiscount := total / float64(quantity)

	salePrice := beforeDiscount - perUnitDiscount
	if salePrice < 0 {
		salePrice = 0
	}

	patientPayment := salePrice * float64(quantity)

	remaining := patientPayment - in.DownPayment
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		SalePrice:       salePrice,
		SGKReduction:    sgkPerUnit * float64(quantity),
		PatientPayment:  patientPayment,
		RemainingAmount: remaining,
	}
}
