package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dhomini-pereira/nexo-api/internal/usecase"
)

type pgxPool interface {
	Begin(context.Context) (pgx.Tx, error)
}

// TxManager implements usecase.TxManager on a pgx pool.
type TxManager struct {
	pool pgxPool
}

// NewTxManager creates a new TxManager.
func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return newTxManagerWithPool(pool)
}

func newTxManagerWithPool(pool pgxPool) *TxManager {
	return &TxManager{pool: pool}
}

// Begin starts a new unit of work.
func (m *TxManager) Begin(ctx context.Context) (usecase.UnitOfWork, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}

	return &Uow{tx: tx}, nil
}

// Uow wraps a pgx transaction.
type Uow struct {
	tx pgx.Tx
}

// Commit commits the transaction.
func (u *Uow) Commit(ctx context.Context) error {
	return u.tx.Commit(ctx)
}

// Rollback rolls back the transaction.
func (u *Uow) Rollback(ctx context.Context) error {
	return u.tx.Rollback(ctx)
}

// PgxTx returns the underlying pgx.Tx.
func (u *Uow) PgxTx() pgx.Tx {
	return u.tx
}

// uowTx unwraps the pgx transaction carried by a unit of work. Repositories
// only ever receive units of work produced by this package's TxManager.
func uowTx(uow usecase.UnitOfWork) pgx.Tx {
	return uow.(*Uow).PgxTx()
}
