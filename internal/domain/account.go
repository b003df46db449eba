package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType tags how an account is held.
type AccountType string

const (
	AccountWallet     AccountType = "wallet"
	AccountChecking   AccountType = "checking"
	AccountDigital    AccountType = "digital"
	AccountInvestment AccountType = "investment"
)

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	switch t {
	case AccountWallet, AccountChecking, AccountDigital, AccountInvestment:
		return true
	}
	return false
}

// Account holds a user's balance. The balance is only ever changed through
// the balance store's delta primitive; it is never overwritten wholesale by
// the ledger engine.
type Account struct {
	ID        string
	UserID    string
	Name      string
	Type      AccountType
	Balance   decimal.Decimal
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
