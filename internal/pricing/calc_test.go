package pricing

import (
	"math"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestResolveSGK_NoCoverage(t *testing.T) {
	table := LegacyTable()

	for _, key := range []string{"", SchemeKeyNoCoverage} {
		if got := ResolveSGK(table, key, 18000); got != 0 {
			t.Errorf("ResolveSGK(%q) = %v, want 0", key, got)
		}
	}
}

func TestResolveSGK_UnknownKey(t *testing.T) {
	if got := ResolveSGK(LegacyTable(), "under5_student", 18000); got != 0 {
		t.Errorf("ResolveSGK(unknown) = %v, want 0", got)
	}
}

func TestResolveSGK_NeverExceedsListPrice(t *testing.T) {
	table := LegacyTable()

	for key := range table {
		for _, listPrice := range []float64{100, 3391.36, 5000, 18000} {
			got := ResolveSGK(table, key, listPrice)
			if got < 0 {
				t.Errorf("ResolveSGK(%q, %v) = %v, negative", key, listPrice, got)
			}
			if got > listPrice {
				t.Errorf("ResolveSGK(%q, %v) = %v, exceeds list price", key, listPrice, got)
			}
		}
	}
}

func TestResolveSGK_PercentRule(t *testing.T) {
	table := SchemeTable{
		"over18_working": {CoveragePercent: 20, MaxAmount: 3000},
	}

	tests := []struct {
		listPrice float64
		want      float64
	}{
		{10000, 2000},  // 20% under cap
		{20000, 3000},  // capped
		{0, 0},         // nothing to cover
	}
	for _, tt := range tests {
		if got := ResolveSGK(table, "over18_working", tt.listPrice); !almostEqual(got, tt.want) {
			t.Errorf("ResolveSGK(percent, %v) = %v, want %v", tt.listPrice, got, tt.want)
		}
	}
}

func TestEffectiveTable_Fallback(t *testing.T) {
	if _, fallback := EffectiveTable(nil); !fallback {
		t.Error("EffectiveTable(nil) should report fallback")
	}
	if _, fallback := EffectiveTable(SchemeTable{}); !fallback {
		t.Error("EffectiveTable(empty) should report fallback")
	}

	configured := SchemeTable{"over18_working": {Amount: 4000}}
	table, fallback := EffectiveTable(configured)
	if fallback {
		t.Error("EffectiveTable(configured) should not report fallback")
	}
	if table["over18_working"].Amount != 4000 {
		t.Error("EffectiveTable should return the configured table unchanged")
	}
}

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		name  string
		base  float64
		typ   DiscountType
		value float64
		want  float64
	}{
		{"none", 1000, DiscountNone, 50, 1000},
		{"percentage", 1000, DiscountPercentage, 10, 900},
		{"amount", 1000, DiscountAmount, 250, 750},
		{"amount exceeding base floors at zero", 1000, DiscountAmount, 2000, 0},
		{"full percentage", 1000, DiscountPercentage, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyDiscount(tt.base, tt.typ, tt.value); !almostEqual(got, tt.want) {
				t.Errorf("ApplyDiscount() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompute_NoCoverageKeepsListPrice(t *testing.T) {
	res := Compute(LegacyTable(), Input{
		ListPrice:    18000,
		SGKSchemeKey: SchemeKeyNoCoverage,
		DiscountType: DiscountNone,
		Ear:          EarLeft,
	})

	if res.SGKReduction != 0 {
		t.Errorf("SGKReduction = %v, want 0", res.SGKReduction)
	}
	if !almostEqual(res.SalePrice, 18000) {
		t.Errorf("SalePrice = %v, want 18000", res.SalePrice)
	}
}

func TestCompute_Over18WorkingUnilateral(t *testing.T) {
	res := Compute(LegacyTable(), Input{
		ListPrice:    18000,
		SGKSchemeKey: "over18_working",
		DiscountType: DiscountNone,
		Ear:          EarLeft,
	})

	if !almostEqual(res.SGKReduction, 3391.36) {
		t.Errorf("SGKReduction = %v, want 3391.36", res.SGKReduction)
	}
	if !almostEqual(res.SalePrice, 14608.64) {
		t.Errorf("SalePrice = %v, want 14608.64", res.SalePrice)
	}
	if !almostEqual(res.PatientPayment, 14608.64) {
		t.Errorf("PatientPayment = %v, want 14608.64", res.PatientPayment)
	}
}

func TestCompute_BilateralAmountDiscountSplitsEvenly(t *testing.T) {
	res := Compute(LegacyTable(), Input{
		ListPrice:     18000,
		SGKSchemeKey:  "over18_working",
		DiscountType:  DiscountAmount,
		DiscountValue: 1000,
		Ear:           EarBoth,
	})

	// 1000 TRY is a total discount, split 500 per unit.
	if !almostEqual(res.SGKReduction, 6782.72) {
		t.Errorf("SGKReduction = %v, want 6782.72", res.SGKReduction)
	}
	if !almostEqual(res.SalePrice, 14108.64) {
		t.Errorf("SalePrice = %v, want 14108.64", res.SalePrice)
	}
	if !almostEqual(res.PatientPayment, 28217.28) {
		t.Errorf("PatientPayment = %v, want 28217.28", res.PatientPayment)
	}
	if !almostEqual(res.PatientPayment, 2*res.SalePrice) {
		t.Error("bilateral patient payment must be twice the per-unit sale price")
	}
}

func TestCompute_BilateralPercentageDiscount(t *testing.T) {
	res := Compute(LegacyTable(), Input{
		ListPrice:     10000,
		SGKSchemeKey:  SchemeKeyNoCoverage,
		DiscountType:  DiscountPercentage,
		DiscountValue: 10,
		Ear:           EarBoth,
	})

	// Percentage applies to the order total, so per-unit ends at 9000 either way.
	if !almostEqual(res.SalePrice, 9000) {
		t.Errorf("SalePrice = %v, want 9000", res.SalePrice)
	}
	if !almostEqual(res.PatientPayment, 18000) {
		t.Errorf("PatientPayment = %v, want 18000", res.PatientPayment)
	}
}

func TestCompute_RemainingNeverNegative(t *testing.T) {
	res := Compute(LegacyTable(), Input{
		ListPrice:    5000,
		SGKSchemeKey: SchemeKeyNoCoverage,
		DiscountType: DiscountNone,
		Ear:          EarRight,
		DownPayment:  9999,
	})

	if res.RemainingAmount != 0 {
		t.Errorf("RemainingAmount = %v, want 0 when down payment exceeds total", res.RemainingAmount)
	}
}

func TestCompute_ZeroListPrice(t *testing.T) {
	for _, lp := range []float64{0, -100} {
		res := Compute(LegacyTable(), Input{
			ListPrice:     lp,
			SGKSchemeKey:  "over18_working",
			DiscountType:  DiscountPercentage,
			DiscountValue: 10,
			Ear:           EarBoth,
		})
		if res != (Result{}) {
			t.Errorf("Compute(listPrice=%v) = %+v, want all-zero result", lp, res)
		}
	}
}

func TestMonthlyInstallment(t *testing.T) {
	for _, count := range AllowedInstallmentCounts {
		remaining := 14608.64
		monthly := MonthlyInstallment(remaining, count)
		if diff := math.Abs(monthly*float64(count) - remaining); diff > 0.01 {
			t.Errorf("count %d: monthly*count differs from remaining by %v", count, diff)
		}
	}

	if got := MonthlyInstallment(10000, 0); got != 0 {
		t.Errorf("MonthlyInstallment(_, 0) = %v, want 0", got)
	}
	if got := MonthlyInstallment(0, 12); got != 0 {
		t.Errorf("MonthlyInstallment(0, _) = %v, want 0", got)
	}
}

func TestIsAllowedInstallmentCount(t *testing.T) {
	if !IsAllowedInstallmentCount(12) {
		t.Error("12 should be an allowed plan")
	}
	if IsAllowedInstallmentCount(7) {
		t.Error("7 should not be an allowed plan")
	}
}
