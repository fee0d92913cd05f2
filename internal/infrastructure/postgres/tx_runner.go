package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/pos-tracker/internal/application/inventory"
	"github.com/jhoicas/pos-tracker/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool        *pgxpool.Pool
	lockTimeout time.Duration
}

// NewTxRunner construye el runner. lockTimeout acota la espera por bloqueos de fila
// (SET LOCAL lock_timeout); 0 deja el valor del servidor.
func NewTxRunner(pool *pgxpool.Pool, lockTimeout time.Duration) *TxRunner {
	return &TxRunner{pool: pool, lockTimeout: lockTimeout}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.InventoryItemRepository,
	adjRepo repository.InventoryAdjustmentRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return mapError(err, "begin transaction")
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	if r.lockTimeout > 0 {
		// SET no admite placeholders.
		if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", r.lockTimeout.Milliseconds())); err != nil {
			return mapError(err, "set lock_timeout")
		}
	}

	if err := fn(NewInventoryItemRepository(tx), NewInventoryAdjustmentRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return mapError(err, "commit transaction")
	}
	return nil
}
