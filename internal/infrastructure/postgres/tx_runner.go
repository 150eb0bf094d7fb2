package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Estacionamientos-api/internal/application/abonos"
	"github.com/jhoicas/Estacionamientos-api/internal/domain/repository"
)

// Ensure TxRunner implements abonos.PeriodosTxRunner.
var _ abonos.PeriodosTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunPeriodos inicia una transacción, ejecuta fn con el repo de períodos atado a la tx y hace Commit o Rollback.
func (r *TxRunner) RunPeriodos(ctx context.Context, fn func(periodoRepo repository.PeriodoAbonoRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewPeriodoAbonoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
