package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investment is an externally held position (CDB, stocks, funds). Like
// goals it has no ledger effect; principal and current value are
// user-maintained snapshots.
type Investment struct {
	ID           string
	UserID       string
	Name         string
	Type         string
	Principal    decimal.Decimal
	CurrentValue decimal.Decimal
	ReturnRate   decimal.Decimal
	StartDate    time.Time
	CreatedAt    time.Time
}
