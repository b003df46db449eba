package domain

import "time"

// Category labels transactions for reporting.
type Category struct {
	ID        string
	UserID    string
	Name      string
	Color     string
	Icon      string
	Type      TxType
	CreatedAt time.Time
}
