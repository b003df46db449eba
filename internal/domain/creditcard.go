package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CreditCard is a card with a monthly statement cycle. ClosingDay is the
// day-of-month the statement closes; purchases after it roll into the next
// month's invoice.
type CreditCard struct {
	ID         string
	UserID     string
	Name       string
	Limit      decimal.Decimal
	ClosingDay int
	DueDay     int
	Color      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AvailableLimit is the limit minus the given used amount.
func (c *CreditCard) AvailableLimit(used decimal.Decimal) decimal.Decimal {
	return c.Limit.Sub(used)
}

// Invoice is one monthly bucket of card charges. Buckets are created on
// first accrual and never deleted, only zeroed or paid.
type Invoice struct {
	ID                string
	CreditCardID      string
	UserID            string
	ReferenceMonth    string
	Total             decimal.Decimal
	Paid              bool
	PaidAt            *time.Time
	PaidWithAccountID *string
	CreatedAt         time.Time
}

// InvoiceMonth computes the reference month ("YYYY-MM") a purchase dated at
// date belongs to for a card closing on closingDay. A purchase strictly
// after the closing day belongs to the next month; December rolls into
// January of the following year.
func InvoiceMonth(date time.Time, closingDay int) string {
	year, month, day := date.Date()
	if day > closingDay {
		month++
		if month > time.December {
			month = time.January
			year++
		}
	}
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// InstallmentShare splits amount over count installments, rounded to the
// currency's minor unit. The shares can drift a cent from the original
// total across all installments; reversal uses the same rounding so a
// create followed by a delete still cancels exactly.
func InstallmentShare(amount decimal.Decimal, count int) decimal.Decimal {
	if count <= 1 {
		return amount
	}
	return amount.Div(decimal.NewFromInt(int64(count))).Round(2)
}
