package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a savings target. Goals have no ledger effect; progress is
// tracked independently of account balances.
type Goal struct {
	ID            string
	UserID        string
	Name          string
	Target        decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      *time.Time
	Color         string
	CreatedAt     time.Time
}
