package domain

import "errors"

var (
	// Not-found errors, always scoped to the requesting user.
	ErrAccountNotFound     = errors.New("account not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrCardNotFound        = errors.New("credit card not found")
	ErrInvoiceNotFound     = errors.New("invoice not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrGoalNotFound        = errors.New("goal not found")
	ErrInvestmentNotFound  = errors.New("investment not found")

	// Conflict errors
	ErrInvoiceAlreadyPaid = errors.New("invoice is already paid")

	// Validation errors
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidType         = errors.New("type must be income or expense")
	ErrMissingAttribution  = errors.New("transaction requires an account or a credit card")
	ErrDoubleAttribution   = errors.New("transaction cannot reference both an account and a credit card")
	ErrCardRequiresExpense = errors.New("income cannot be billed to a credit card")
	ErrInvalidRecurrence   = errors.New("invalid recurrence cadence")
	ErrInvalidInstallments = errors.New("installment count must be at least 1")
	ErrSameAccount         = errors.New("cannot transfer to same account")
	ErrInvalidDescription  = errors.New("description too long")
	ErrInvalidDay          = errors.New("day of month must be between 1 and 31")
)
