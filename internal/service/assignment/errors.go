package assignment

import "errors"

var (
	ErrAssignmentNotFound     = errors.New("device assignment not found")
	ErrLoanerNotFound         = errors.New("loaner device not found")
	ErrLoanerAlreadyReturned  = errors.New("loaner device already returned")
	ErrAssignmentNotActive    = errors.New("assignment is not active")
	ErrInvalidEar             = errors.New("invalid ear side")
	ErrInvalidDiscount        = errors.New("invalid discount type")
	ErrInvalidInstallment     = errors.New("installment count must be one of 3, 6, 9, 12, 18, 24")
	ErrInvalidPaymentMethod   = errors.New("invalid payment method")
)
