package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dhomini-pereira/nexo-api/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id, userID string) (*domain.Account, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
	Delete(ctx context.Context, id, userID string) error
	// ApplyDelta adds a signed amount to an account balance as a single
	// atomic read-modify-write inside the unit of work. This is the only
	// way the engine ever changes a balance.
	ApplyDelta(ctx context.Context, uow UnitOfWork, accountID string, delta decimal.Decimal) error
}

// TransactionRepository defines data access for transactions.
type TransactionRepository interface {
	Create(ctx context.Context, uow UnitOfWork, tx *domain.Transaction) error
	GetByID(ctx context.Context, id, userID string) (*domain.Transaction, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Transaction, error)
	ListByGroup(ctx context.Context, groupID, userID string) ([]*domain.Transaction, error)
	// ListDueRecurring returns active recurring definitions whose next due
	// date is on or before today. Paused definitions are excluded.
	ListDueRecurring(ctx context.Context, today time.Time) ([]*domain.Transaction, error)
	Update(ctx context.Context, uow UnitOfWork, tx *domain.Transaction) error
	Delete(ctx context.Context, uow UnitOfWork, id, userID string) error
	// DeleteByGroup removes every materialized occurrence of a recurring
	// definition and returns the deleted rows so their effects can be
	// reversed.
	DeleteByGroup(ctx context.Context, uow UnitOfWork, groupID, userID string) ([]*domain.Transaction, error)
	// UpdateRecurrence advances a definition's schedule state in place.
	UpdateRecurrence(ctx context.Context, uow UnitOfWork, id string, nextDueDate *time.Time, current int, recurring bool) error
	SetPaused(ctx context.Context, id, userID string, paused bool) (*domain.Transaction, error)
}

// CardRepository defines data access for credit cards.
type CardRepository interface {
	Create(ctx context.Context, card *domain.CreditCard) error
	GetByID(ctx context.Context, id, userID string) (*domain.CreditCard, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.CreditCard, error)
	Update(ctx context.Context, card *domain.CreditCard) error
	Delete(ctx context.Context, id, userID string) error
}

// InvoiceRepository defines data access for credit card invoices.
type InvoiceRepository interface {
	// Accrue upserts amount into the (card, month) bucket: inserts an
	// unpaid bucket with total = amount, or adds amount to the existing
	// bucket's total.
	Accrue(ctx context.Context, uow UnitOfWork, cardID, userID, month string, amount decimal.Decimal) error
	// Subtract removes amount from the bucket's total, clamped at zero.
	Subtract(ctx context.Context, uow UnitOfWork, cardID, month string, amount decimal.Decimal) error
	GetByIDForUpdate(ctx context.Context, uow UnitOfWork, id, userID string) (*domain.Invoice, error)
	ListByCard(ctx context.Context, cardID, userID string) ([]*domain.Invoice, error)
	MarkPaid(ctx context.Context, uow UnitOfWork, id, userID, accountID string, paidAt time.Time) (*domain.Invoice, error)
	// UsedAmount is the sum of totals over the card's unpaid invoices.
	UsedAmount(ctx context.Context, cardID string) (decimal.Decimal, error)
}

// CategoryRepository defines data access for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id, userID string) (*domain.Category, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id, userID string) error
}

// GoalRepository defines data access for goals.
type GoalRepository interface {
	Create(ctx context.Context, goal *domain.Goal) error
	GetByID(ctx context.Context, id, userID string) (*domain.Goal, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Goal, error)
	Update(ctx context.Context, goal *domain.Goal) error
	Delete(ctx context.Context, id, userID string) error
}

// InvestmentRepository defines data access for investments.
type InvestmentRepository interface {
	Create(ctx context.Context, investment *domain.Investment) error
	GetByID(ctx context.Context, id, userID string) (*domain.Investment, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Investment, error)
	Update(ctx context.Context, investment *domain.Investment) error
	Delete(ctx context.Context, id, userID string) error
}

// PushTokenRepository defines data access for push tokens.
type PushTokenRepository interface {
	Register(ctx context.Context, token *domain.PushToken) error
	ListByUser(ctx context.Context, userID string) ([]*domain.PushToken, error)
	Delete(ctx context.Context, userID, token string) error
}

// UnitOfWork represents one database transaction. Every persistence call
// inside a ledger operation shares the same handle, so the operation
// commits or rolls back as a whole.
type UnitOfWork interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TxManager begins units of work.
type TxManager interface {
	Begin(ctx context.Context) (UnitOfWork, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// PushNotifier delivers a push notification to every device of a user.
// Failures are tolerated; the caller must never let them affect committed
// financial state.
type PushNotifier interface {
	SendPush(ctx context.Context, userID, title, body string) error
}

// Retrier retries an operation on transient failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
