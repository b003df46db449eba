package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxType is the direction of a transaction.
type TxType string

const (
	TxIncome  TxType = "income"
	TxExpense TxType = "expense"
)

// Valid reports whether t is a known transaction type.
func (t TxType) Valid() bool {
	return t == TxIncome || t == TxExpense
}

// Cadence is a recurrence interval.
type Cadence string

const (
	CadenceDaily   Cadence = "daily"
	CadenceWeekly  Cadence = "weekly"
	CadenceMonthly Cadence = "monthly"
	CadenceYearly  Cadence = "yearly"
)

// Valid reports whether c is a known cadence.
func (c Cadence) Valid() bool {
	switch c {
	case CadenceDaily, CadenceWeekly, CadenceMonthly, CadenceYearly:
		return true
	}
	return false
}

// Advance returns the next due date after from. Monthly and yearly steps use
// calendar arithmetic, so end-of-month dates normalize the way time.AddDate
// does (Jan 31 + 1 month lands in early March).
func (c Cadence) Advance(from time.Time) time.Time {
	switch c {
	case CadenceDaily:
		return from.AddDate(0, 0, 1)
	case CadenceWeekly:
		return from.AddDate(0, 0, 7)
	case CadenceMonthly:
		return from.AddDate(0, 1, 0)
	case CadenceYearly:
		return from.AddDate(1, 0, 0)
	}
	return from
}

// Transaction is a single ledger row. Exactly one of AccountID or
// CreditCardID is set, except for transfer legs which carry an account and
// no category. A row with Recurring=true is a recurring definition; rows it
// materializes point back at it through RecurrenceGroupID.
type Transaction struct {
	ID           string
	UserID       string
	AccountID    *string
	CategoryID   *string
	CreditCardID *string
	Description  string
	Amount       decimal.Decimal
	Type         TxType
	Date         time.Time

	Recurring         bool
	Recurrence        *Cadence
	NextDueDate       *time.Time
	RecurrenceCount   *int
	RecurrenceCurrent int
	RecurrenceGroupID *string
	RecurrencePaused  bool

	Installments       *int
	InstallmentCurrent *int

	CreatedAt time.Time
}

// SignedAmount is the transaction's effect on an account balance:
// income contributes +Amount, expense contributes -Amount.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TxIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}

// InstallmentCount returns the number of invoice buckets this transaction
// spreads across, at least 1.
func (t *Transaction) InstallmentCount() int {
	if t.Installments != nil && *t.Installments > 1 {
		return *t.Installments
	}
	return 1
}

// ActiveRecurrence reports whether the row is a recurring definition the
// sweep should fire: recurring, not paused, with a due date set.
func (t *Transaction) ActiveRecurrence() bool {
	return t.Recurring && !t.RecurrencePaused && t.NextDueDate != nil
}
