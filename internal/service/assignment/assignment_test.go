package assignment

import (
	"testing"
)

func TestValidatePricing(t *testing.T) {
	tests := []struct {
		name    string
		req     PricingRequest
		wantErr error
	}{
		{
			name: "cash with no discount",
			req: PricingRequest{
				SGKSchemeKey:  "over18_working",
				DiscountType:  "none",
				PaymentMethod: "cash",
			},
			wantErr: nil,
		},
		{
			name: "valid installment count",
			req: PricingRequest{
				SGKSchemeKey:     "no_coverage",
				DiscountType:     "percentage",
				DiscountValue:    10,
				PaymentMethod:    "installment",
				InstallmentCount: 12,
			},
			wantErr: nil,
		},
		{
			name: "unknown discount type",
			req: PricingRequest{
				DiscountType:  "bogus",
				PaymentMethod: "cash",
			},
			wantErr: ErrInvalidDiscount,
		},
		{
			name: "unknown payment method",
			req: PricingRequest{
				DiscountType:  "none",
				PaymentMethod: "cheque",
			},
			wantErr: ErrInvalidPaymentMethod,
		},
		{
			name: "installment count outside allowed set",
			req: PricingRequest{
				DiscountType:     "none",
				PaymentMethod:    "installment",
				InstallmentCount: 7,
			},
			wantErr: ErrInvalidInstallment,
		},
		{
			name: "zero installment count rejected for installment method",
			req: PricingRequest{
				DiscountType:  "none",
				PaymentMethod: "installment",
			},
			wantErr: ErrInvalidInstallment,
		},
		{
			name: "installment count ignored for cash",
			req: PricingRequest{
				DiscountType:     "none",
				PaymentMethod:    "cash",
				InstallmentCount: 7,
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePricing(tt.req)
			if err != tt.wantErr {
				t.Errorf("validatePricing() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
