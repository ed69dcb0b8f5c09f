package payment

import "errors"

var (
	ErrPaymentNotFound    = errors.New("payment record not found")
	ErrNoteNotFound       = errors.New("promissory note not found")
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrInvalidMethod      = errors.New("invalid payment method")
	ErrOverpayment        = errors.New("payment exceeds the remaining balance")
	ErrNoteNotPending     = errors.New("promissory note is not pending")
	ErrInvalidInstallment = errors.New("installment count must be one of 3, 6, 9, 12, 18, 24")
)
